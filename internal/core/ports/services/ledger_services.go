package services

import (
	"context"

	"github.com/SscSPs/myerp_ledger/internal/core/domain"
)

// LedgerReaderSvc defines read operations exposed by the ledger.
type LedgerReaderSvc interface {
	ListAccounts(ctx context.Context) ([]domain.Account, error)
	ListJournals(ctx context.Context) ([]domain.Journal, error)
	ListEntries(ctx context.Context) ([]domain.Entry, error)

	// ListEntriesByDate lists entries dated within [start, end]; an empty window is NotFound.
	ListEntriesByDate(ctx context.Context, start, end string) ([]domain.Entry, error)

	GetEntry(ctx context.Context, id int64) (*domain.Entry, error)
}

// LedgerWriterSvc defines the entry lifecycle operations.
type LedgerWriterSvc interface {
	// InsertEntry validates, references and persists a new entry. The entry's ID and
	// Reference fields are set on success.
	InsertEntry(ctx context.Context, entry *domain.Entry) error

	// UpdateEntry validates and persists changes to an existing entry. Its reference is immutable.
	UpdateEntry(ctx context.Context, entry *domain.Entry) error

	// DeleteEntry removes an entry by identifier.
	DeleteEntry(ctx context.Context, id int64) error
}

// LedgerSvcFacade combines all ledger service interfaces.
// This is a facade for clients that need access to all operations
type LedgerSvcFacade interface {
	LedgerReaderSvc
	LedgerWriterSvc
	ReferenceGeneratorSvc
	EntryValidatorSvc
	BalanceCalculatorSvc
}
