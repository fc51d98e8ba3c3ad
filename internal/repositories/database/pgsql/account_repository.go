package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/myerp_ledger/internal/apperrors"
	"github.com/SscSPs/myerp_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/myerp_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/myerp_ledger/internal/models"
	"github.com/SscSPs/myerp_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for the chart of accounts.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountReader {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxAccountRepository implements portsrepo.AccountReader
var _ portsrepo.AccountReader = (*PgxAccountRepository)(nil)

const selectAccountColumns = `SELECT account_code, label, account_type FROM accounts`

func scanAccounts(rows pgx.Rows) ([]domain.Account, error) {
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		var m models.Account
		if err := rows.Scan(&m.AccountCode, &m.Label, &m.AccountType); err != nil {
			return nil, apperrors.NewTechnical(apperrors.CodePersistence, "failed to scan account row", err)
		}
		accounts = append(accounts, mapping.ToDomainAccount(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewTechnical(apperrors.CodePersistence, "error iterating account rows", err)
	}
	return accounts, nil
}

// ListAccounts retrieves every account ordered by code.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	rows, err := r.Pool.Query(ctx, selectAccountColumns+` ORDER BY account_code`)
	if err != nil {
		return nil, apperrors.NewTechnical(apperrors.CodePersistence, "failed to list accounts", err)
	}
	accounts, err := scanAccounts(rows)
	if err != nil {
		return nil, err
	}
	if accounts == nil {
		accounts = []domain.Account{}
	}
	return accounts, nil
}

// FindAccountByCode retrieves one account by its code.
func (r *PgxAccountRepository) FindAccountByCode(ctx context.Context, code int) (*domain.Account, error) {
	var m models.Account
	err := r.Pool.QueryRow(ctx, selectAccountColumns+` WHERE account_code = $1`, code).
		Scan(&m.AccountCode, &m.Label, &m.AccountType)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("account %d not found", code)
		}
		return nil, apperrors.NewTechnical(apperrors.CodePersistence, "failed to find account", err)
	}
	account := mapping.ToDomainAccount(m)
	return &account, nil
}

// FindAccountsByCodes retrieves the existing accounts among codes in one query.
func (r *PgxAccountRepository) FindAccountsByCodes(ctx context.Context, codes []int) (map[int]domain.Account, error) {
	result := make(map[int]domain.Account, len(codes))
	if len(codes) == 0 {
		return result, nil
	}

	rows, err := r.Pool.Query(ctx, selectAccountColumns+` WHERE account_code = ANY($1)`, codes)
	if err != nil {
		return nil, apperrors.NewTechnical(apperrors.CodePersistence, "failed to find accounts by codes", err)
	}
	accounts, err := scanAccounts(rows)
	if err != nil {
		return nil, err
	}
	for _, a := range accounts {
		result[a.Code] = a
	}
	return result, nil
}
