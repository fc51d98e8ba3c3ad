package repositories

import (
	"context"

	"github.com/SscSPs/myerp_ledger/internal/core/domain"
)

// JournalReader defines read operations for journals.
type JournalReader interface {
	// ListJournals retrieves every journal ordered by code.
	ListJournals(ctx context.Context) ([]domain.Journal, error)

	// FindJournalByCode retrieves one journal. Returns apperrors.ErrNotFound when absent.
	FindJournalByCode(ctx context.Context, code string) (*domain.Journal, error)
}
