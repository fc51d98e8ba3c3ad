package repositories

import (
	"context"

	"github.com/SscSPs/myerp_ledger/internal/core/domain"
)

// SequenceStore persists the last sequence number used per (journal code, year).
type SequenceStore interface {
	// FindSequence returns the last value for key. Returns apperrors.ErrNotFound when no counter exists.
	FindSequence(ctx context.Context, key domain.SequenceKey) (int, error)

	// NextSequence atomically increments the counter for key, creating it at 1 when absent,
	// and returns the new value. Concurrent callers never observe the same value.
	NextSequence(ctx context.Context, key domain.SequenceKey) (int, error)

	// UpsertSequence sets the counter for key to value, creating it when absent.
	UpsertSequence(ctx context.Context, key domain.SequenceKey, value int) error
}
