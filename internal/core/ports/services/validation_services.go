package services

import (
	"context"

	"github.com/SscSPs/myerp_ledger/internal/core/domain"
)

// EntryValidatorSvc checks an entry against the bookkeeping rules.
type EntryValidatorSvc interface {
	// CheckEntry returns a Functional apperrors.AppError listing every violated rule, or nil.
	CheckEntry(ctx context.Context, entry *domain.Entry) error
}
