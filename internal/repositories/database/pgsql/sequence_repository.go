package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/myerp_ledger/internal/apperrors"
	"github.com/SscSPs/myerp_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/myerp_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxSequenceRepository struct {
	BaseRepository
}

// newPgxSequenceRepository creates a new repository for the journal sequence counters.
func newPgxSequenceRepository(pool *pgxpool.Pool) portsrepo.SequenceStore {
	return &PgxSequenceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxSequenceRepository implements portsrepo.SequenceStore
var _ portsrepo.SequenceStore = (*PgxSequenceRepository)(nil)

func (r *PgxSequenceRepository) FindSequence(ctx context.Context, key domain.SequenceKey) (int, error) {
	var value int
	err := r.Pool.QueryRow(ctx,
		`SELECT last_value FROM journal_sequences WHERE journal_code = $1 AND year = $2`,
		key.JournalCode, key.Year,
	).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.NewNotFound("no sequence for %s", key)
		}
		return 0, apperrors.NewTechnical(apperrors.CodePersistence, "failed to read sequence "+key.String(), err)
	}
	return value, nil
}

// NextSequence creates or increments the counter in a single statement; Postgres holds the
// row lock until the statement completes, so concurrent callers serialize on it.
func (r *PgxSequenceRepository) NextSequence(ctx context.Context, key domain.SequenceKey) (int, error) {
	var value int
	err := r.Pool.QueryRow(ctx, `
		INSERT INTO journal_sequences (journal_code, year, last_value)
		VALUES ($1, $2, 1)
		ON CONFLICT (journal_code, year)
		DO UPDATE SET last_value = journal_sequences.last_value + 1
		RETURNING last_value;`,
		key.JournalCode, key.Year,
	).Scan(&value)
	if err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			return 0, apperrors.NewNotFound("journal %s not found", key.JournalCode)
		}
		return 0, apperrors.NewTechnical(apperrors.CodePersistence, "failed to advance sequence "+key.String(), err)
	}
	return value, nil
}

func (r *PgxSequenceRepository) UpsertSequence(ctx context.Context, key domain.SequenceKey, value int) error {
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO journal_sequences (journal_code, year, last_value)
		VALUES ($1, $2, $3)
		ON CONFLICT (journal_code, year)
		DO UPDATE SET last_value = EXCLUDED.last_value;`,
		key.JournalCode, key.Year, value,
	)
	if err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			return apperrors.NewNotFound("journal %s not found", key.JournalCode)
		}
		return apperrors.NewTechnical(apperrors.CodePersistence, "failed to upsert sequence "+key.String(), err)
	}
	return nil
}
