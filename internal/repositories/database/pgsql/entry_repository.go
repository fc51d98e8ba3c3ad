package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/SscSPs/myerp_ledger/internal/apperrors"
	"github.com/SscSPs/myerp_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/myerp_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/myerp_ledger/internal/models"
	"github.com/SscSPs/myerp_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxEntryRepository struct {
	BaseRepository
}

// newPgxEntryRepository creates a new repository for entries and their lines.
func newPgxEntryRepository(pool *pgxpool.Pool) portsrepo.EntryRepositoryFacade {
	return &PgxEntryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxEntryRepository implements portsrepo.EntryRepositoryFacade
var _ portsrepo.EntryRepositoryFacade = (*PgxEntryRepository)(nil)

const selectEntryColumns = `
	SELECT entry_id, journal_code, entry_date, reference, label, created_at, last_updated_at
	FROM entries`

const insertLineQuery = `
	INSERT INTO entry_lines (entry_id, line_no, account_code, line_type, amount, label)
	VALUES ($1, $2, $3, $4, $5, $6);`

func scanEntry(row pgx.Row) (models.Entry, error) {
	var m models.Entry
	err := row.Scan(&m.EntryID, &m.JournalCode, &m.EntryDate, &m.Reference, &m.Label, &m.CreatedAt, &m.LastUpdatedAt)
	return m, err
}

// queryEntries runs an entry query and attaches the lines of every returned entry.
func (r *PgxEntryRepository) queryEntries(ctx context.Context, query string, args ...any) ([]domain.Entry, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewTechnical(apperrors.CodePersistence, "failed to query entries", err)
	}
	defer rows.Close()

	var headers []models.Entry
	for rows.Next() {
		m, err := scanEntry(rows)
		if err != nil {
			return nil, apperrors.NewTechnical(apperrors.CodePersistence, "failed to scan entry row", err)
		}
		headers = append(headers, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewTechnical(apperrors.CodePersistence, "error iterating entry rows", err)
	}

	ids := make([]int64, len(headers))
	for i, h := range headers {
		ids[i] = h.EntryID
	}
	lines, err := r.findLinesByEntryIDs(ctx, r.Pool, ids)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.Entry, len(headers))
	for i, h := range headers {
		entries[i] = mapping.ToDomainEntry(h, lines[h.EntryID])
	}
	return entries, nil
}

// findLinesByEntryIDs loads the lines of several entries, grouped by entry and ordered by line number.
func (r *PgxEntryRepository) findLinesByEntryIDs(ctx context.Context, q querier, ids []int64) (map[int64][]models.EntryLine, error) {
	result := make(map[int64][]models.EntryLine, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	rows, err := q.Query(ctx, `
		SELECT entry_id, line_no, account_code, line_type, amount, label
		FROM entry_lines
		WHERE entry_id = ANY($1)
		ORDER BY entry_id, line_no`, ids)
	if err != nil {
		return nil, apperrors.NewTechnical(apperrors.CodePersistence, "failed to query entry lines", err)
	}
	defer rows.Close()

	for rows.Next() {
		var l models.EntryLine
		if err := rows.Scan(&l.EntryID, &l.LineNo, &l.AccountCode, &l.LineType, &l.Amount, &l.Label); err != nil {
			return nil, apperrors.NewTechnical(apperrors.CodePersistence, "failed to scan entry line row", err)
		}
		result[l.EntryID] = append(result[l.EntryID], l)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewTechnical(apperrors.CodePersistence, "error iterating entry line rows", err)
	}
	return result, nil
}

func (r *PgxEntryRepository) ListEntries(ctx context.Context) ([]domain.Entry, error) {
	entries, err := r.queryEntries(ctx, selectEntryColumns+` ORDER BY entry_date, entry_id`)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []domain.Entry{}
	}
	return entries, nil
}

func (r *PgxEntryRepository) ListEntriesByDateRange(ctx context.Context, start, end time.Time) ([]domain.Entry, error) {
	entries, err := r.queryEntries(ctx,
		selectEntryColumns+` WHERE entry_date BETWEEN $1::date AND $2::date ORDER BY entry_date, entry_id`, start, end)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, apperrors.NewNotFound("no entries between %s and %s", start.Format(time.DateOnly), end.Format(time.DateOnly))
	}
	return entries, nil
}

func (r *PgxEntryRepository) findOne(ctx context.Context, notFound *apperrors.AppError, where string, arg any) (*domain.Entry, error) {
	m, err := scanEntry(r.Pool.QueryRow(ctx, selectEntryColumns+` WHERE `+where, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, notFound
		}
		return nil, apperrors.NewTechnical(apperrors.CodePersistence, "failed to find entry", err)
	}

	lines, err := r.findLinesByEntryIDs(ctx, r.Pool, []int64{m.EntryID})
	if err != nil {
		return nil, err
	}
	entry := mapping.ToDomainEntry(m, lines[m.EntryID])
	return &entry, nil
}

func (r *PgxEntryRepository) FindEntryByID(ctx context.Context, id int64) (*domain.Entry, error) {
	return r.findOne(ctx, apperrors.NewNotFound("entry %d not found", id), `entry_id = $1`, id)
}

func (r *PgxEntryRepository) FindEntryByReference(ctx context.Context, ref string) (*domain.Entry, error) {
	return r.findOne(ctx, apperrors.NewNotFound("entry with reference %s not found", ref), `reference = $1`, ref)
}

// FindLinesForAccount retrieves the lines booked on an account; nil bounds are open.
func (r *PgxEntryRepository) FindLinesForAccount(ctx context.Context, accountCode int, start, end *time.Time) ([]domain.EntryLine, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT l.entry_id, l.line_no, l.account_code, l.line_type, l.amount, l.label
		FROM entry_lines l
		JOIN entries e ON e.entry_id = l.entry_id
		WHERE l.account_code = $1
		  AND ($2::date IS NULL OR e.entry_date >= $2::date)
		  AND ($3::date IS NULL OR e.entry_date <= $3::date)
		ORDER BY e.entry_date, l.entry_id, l.line_no`, accountCode, start, end)
	if err != nil {
		return nil, apperrors.NewTechnical(apperrors.CodePersistence, "failed to query account lines", err)
	}
	defer rows.Close()

	var lines []models.EntryLine
	for rows.Next() {
		var l models.EntryLine
		if err := rows.Scan(&l.EntryID, &l.LineNo, &l.AccountCode, &l.LineType, &l.Amount, &l.Label); err != nil {
			return nil, apperrors.NewTechnical(apperrors.CodePersistence, "failed to scan account line row", err)
		}
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewTechnical(apperrors.CodePersistence, "error iterating account line rows", err)
	}
	return mapping.ToDomainEntryLines(lines), nil
}

// InsertEntry saves the entry header and its lines within one DB transaction.
func (r *PgxEntryRepository) InsertEntry(ctx context.Context, entry domain.Entry) (int64, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer r.Rollback(ctx, tx) // Ignored once committed

	model := mapping.ToModelEntry(entry)
	now := time.Now().UTC()

	var id int64
	err = tx.QueryRow(ctx, `
		INSERT INTO entries (journal_code, entry_date, reference, label, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
		RETURNING entry_id;`,
		model.JournalCode, model.EntryDate, model.Reference, model.Label, now,
	).Scan(&id)
	if err != nil {
		return 0, translateWriteError(err, "failed to insert entry "+model.Reference)
	}

	entry.ID = id
	if err := r.insertLines(ctx, tx, entry); err != nil {
		return 0, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}
	return id, nil
}

// UpdateEntry replaces the header fields and all lines of an entry. The reference column is never rewritten.
func (r *PgxEntryRepository) UpdateEntry(ctx context.Context, entry domain.Entry) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	model := mapping.ToModelEntry(entry)
	tag, err := tx.Exec(ctx, `
		UPDATE entries
		SET journal_code = $2, entry_date = $3, label = $4, last_updated_at = $5
		WHERE entry_id = $1;`,
		model.EntryID, model.JournalCode, model.EntryDate, model.Label, time.Now().UTC(),
	)
	if err != nil {
		return translateWriteError(err, "failed to update entry")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFound("entry %d not found", entry.ID)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM entry_lines WHERE entry_id = $1`, entry.ID); err != nil {
		return apperrors.NewTechnical(apperrors.CodePersistence, "failed to clear entry lines", err)
	}
	if err := r.insertLines(ctx, tx, entry); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// DeleteEntry removes an entry; its lines go with it through the foreign key cascade.
func (r *PgxEntryRepository) DeleteEntry(ctx context.Context, id int64) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM entries WHERE entry_id = $1`, id)
	if err != nil {
		return apperrors.NewTechnical(apperrors.CodePersistence, "failed to delete entry", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFound("entry %d not found", id)
	}
	return nil
}

// insertLines queues one insert per line and sends them as a single batch.
func (r *PgxEntryRepository) insertLines(ctx context.Context, tx pgx.Tx, entry domain.Entry) error {
	batch := &pgx.Batch{}
	for _, l := range mapping.ToModelEntryLines(entry) {
		batch.Queue(insertLineQuery, l.EntryID, l.LineNo, l.AccountCode, l.LineType, l.Amount, l.Label)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil { // Close reports the first failed command
		return translateWriteError(err, "failed to insert entry lines")
	}
	return nil
}

// translateWriteError maps constraint violations to Functional errors and the rest to Technical.
func translateWriteError(err error, message string) error {
	switch pgErrorCode(err) {
	case pgUniqueViolation:
		return apperrors.NewDuplicateReference(message)
	case pgForeignKeyViolation:
		return apperrors.NewFunctional(apperrors.CodeEntryValidation, message,
			apperrors.Detail{Message: "unknown journal or account"})
	}
	return apperrors.NewTechnical(apperrors.CodePersistence, message, err)
}
