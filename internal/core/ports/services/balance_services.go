package services

import (
	"context"

	"github.com/SscSPs/myerp_ledger/internal/core/domain"
)

// BalanceCalculatorSvc computes account balances from entry lines.
type BalanceCalculatorSvc interface {
	// GetAccountBalance computes the balance of an account over all its lines.
	GetAccountBalance(ctx context.Context, accountCode int) (*domain.AccountBalance, error)

	// GetAccountBalanceByDate computes the balance over entries dated within [start, end].
	GetAccountBalanceByDate(ctx context.Context, accountCode int, start, end string) (*domain.AccountBalance, error)

	// GetAccountBalances computes the unbounded balance of several accounts.
	GetAccountBalances(ctx context.Context, accountCodes []int) ([]domain.AccountBalance, error)
}
