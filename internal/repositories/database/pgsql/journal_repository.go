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

type PgxJournalRepository struct {
	BaseRepository
}

// newPgxJournalRepository creates a new repository for journals.
func newPgxJournalRepository(pool *pgxpool.Pool) portsrepo.JournalReader {
	return &PgxJournalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxJournalRepository implements portsrepo.JournalReader
var _ portsrepo.JournalReader = (*PgxJournalRepository)(nil)

// ListJournals retrieves every journal ordered by code.
func (r *PgxJournalRepository) ListJournals(ctx context.Context) ([]domain.Journal, error) {
	rows, err := r.Pool.Query(ctx, `SELECT journal_code, label FROM journals ORDER BY journal_code`)
	if err != nil {
		return nil, apperrors.NewTechnical(apperrors.CodePersistence, "failed to list journals", err)
	}
	defer rows.Close()

	journals := []domain.Journal{}
	for rows.Next() {
		var m models.Journal
		if err := rows.Scan(&m.JournalCode, &m.Label); err != nil {
			return nil, apperrors.NewTechnical(apperrors.CodePersistence, "failed to scan journal row", err)
		}
		journals = append(journals, mapping.ToDomainJournal(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewTechnical(apperrors.CodePersistence, "error iterating journal rows", err)
	}
	return journals, nil
}

// FindJournalByCode retrieves a journal by its code.
func (r *PgxJournalRepository) FindJournalByCode(ctx context.Context, code string) (*domain.Journal, error) {
	var m models.Journal
	err := r.Pool.QueryRow(ctx, `SELECT journal_code, label FROM journals WHERE journal_code = $1`, code).
		Scan(&m.JournalCode, &m.Label)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("journal %s not found", code)
		}
		return nil, apperrors.NewTechnical(apperrors.CodePersistence, "failed to find journal "+code, err)
	}
	journal := mapping.ToDomainJournal(m)
	return &journal, nil
}
