package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/myerp_ledger/internal/core/domain"
)

// EntryReader defines read operations for accounting entries and their lines.
type EntryReader interface {
	// ListEntries retrieves every entry with its lines, ordered by date then id.
	ListEntries(ctx context.Context) ([]domain.Entry, error)

	// ListEntriesByDateRange retrieves entries dated within [start, end] inclusive.
	// Returns apperrors.ErrNotFound when the window holds no entry.
	ListEntriesByDateRange(ctx context.Context, start, end time.Time) ([]domain.Entry, error)

	// FindEntryByID retrieves one entry with its lines. Returns apperrors.ErrNotFound when absent.
	FindEntryByID(ctx context.Context, id int64) (*domain.Entry, error)

	// FindEntryByReference retrieves the entry carrying ref. Returns apperrors.ErrNotFound when absent.
	FindEntryByReference(ctx context.Context, ref string) (*domain.Entry, error)

	// FindLinesForAccount retrieves the lines booked on an account. A nil bound leaves that side open.
	FindLinesForAccount(ctx context.Context, accountCode int, start, end *time.Time) ([]domain.EntryLine, error)
}

// EntryWriter defines write operations for accounting entries.
type EntryWriter interface {
	// InsertEntry persists a new entry with its lines and returns the assigned identifier.
	InsertEntry(ctx context.Context, entry domain.Entry) (int64, error)

	// UpdateEntry replaces the header and lines of an existing entry.
	// Returns apperrors.ErrNotFound when the id does not exist.
	UpdateEntry(ctx context.Context, entry domain.Entry) error

	// DeleteEntry removes an entry and its lines. Returns apperrors.ErrNotFound when the id does not exist.
	DeleteEntry(ctx context.Context, id int64) error
}

// EntryRepositoryFacade combines all entry-related repository interfaces.
type EntryRepositoryFacade interface {
	EntryReader
	EntryWriter
}
