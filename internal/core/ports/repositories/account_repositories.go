package repositories

import (
	"context"

	"github.com/SscSPs/myerp_ledger/internal/core/domain"
)

// AccountReader defines read operations for the chart of accounts.
type AccountReader interface {
	// ListAccounts retrieves every account ordered by code.
	ListAccounts(ctx context.Context) ([]domain.Account, error)

	// FindAccountByCode retrieves one account. Returns apperrors.ErrNotFound when absent.
	FindAccountByCode(ctx context.Context, code int) (*domain.Account, error)

	// FindAccountsByCodes retrieves the accounts that exist among codes, keyed by code.
	// Missing codes are simply absent from the map.
	FindAccountsByCodes(ctx context.Context, codes []int) (map[int]domain.Account, error)
}
