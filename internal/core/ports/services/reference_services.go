package services

import (
	"context"

	"github.com/SscSPs/myerp_ledger/internal/core/domain"
)

// ReferenceGeneratorSvc attaches journal references and administers the sequence counters behind them.
type ReferenceGeneratorSvc interface {
	// AddReference attaches JOURNAL-YYYY/NNNNN to entry. It is a no-op when the entry already
	// carries a reference. The entry is not persisted, but the counter advance is.
	AddReference(ctx context.Context, entry *domain.Entry) error

	// GetSequenceValue returns the last sequence value of a journal for a year.
	GetSequenceValue(ctx context.Context, journalCode string, year int) (int, error)

	// UpsertSequenceValue overrides the last sequence value of a journal for a year.
	UpsertSequenceValue(ctx context.Context, journalCode string, year int, value int) error
}
