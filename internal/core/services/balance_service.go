package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SscSPs/myerp_ledger/internal/apperrors"
	"github.com/SscSPs/myerp_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/myerp_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/myerp_ledger/internal/core/ports/services"
	"github.com/SscSPs/myerp_ledger/internal/utils/dates"
	"golang.org/x/sync/errgroup"
)

// maxParallelBalances bounds the concurrent line queries of GetAccountBalances.
const maxParallelBalances = 8

// balanceService derives account balances from the stored entry lines.
type balanceService struct {
	BaseService
	accountRepo portsrepo.AccountReader
	entryRepo   portsrepo.EntryReader
}

// NewBalanceService creates a new BalanceCalculatorSvc.
func NewBalanceService(accountRepo portsrepo.AccountReader, entryRepo portsrepo.EntryReader) portssvc.BalanceCalculatorSvc {
	return &balanceService{
		accountRepo: accountRepo,
		entryRepo:   entryRepo,
	}
}

var _ portssvc.BalanceCalculatorSvc = (*balanceService)(nil)

// GetAccountBalance sums every line of the account. An account without lines has a zero balance.
func (s *balanceService) GetAccountBalance(ctx context.Context, accountCode int) (*domain.AccountBalance, error) {
	lines, err := s.entryRepo.FindLinesForAccount(ctx, accountCode, nil, nil)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch account lines", slog.Int("account_code", accountCode))
		return nil, asTechnical(err, "failed to fetch lines for account")
	}
	balance := domain.NewAccountBalance(accountCode, nil, nil, lines)
	return &balance, nil
}

// GetAccountBalanceByDate sums the lines of entries dated within [start, end].
func (s *balanceService) GetAccountBalanceByDate(ctx context.Context, accountCode int, start, end string) (*domain.AccountBalance, error) {
	from, to, err := dates.ParseRange(start, end)
	if err != nil {
		return nil, err
	}

	if _, err := s.accountRepo.FindAccountByCode(ctx, accountCode); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFound("account %d not found", accountCode)
		}
		s.LogError(ctx, err, "Failed to look up account", slog.Int("account_code", accountCode))
		return nil, asTechnical(err, "failed to look up account")
	}

	upper := dates.EndOfDay(to)
	lines, err := s.entryRepo.FindLinesForAccount(ctx, accountCode, &from, &upper)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch account lines", slog.Int("account_code", accountCode),
			slog.String("start", start), slog.String("end", end))
		return nil, asTechnical(err, "failed to fetch lines for account")
	}

	balance := domain.NewAccountBalance(accountCode, &from, &to, lines)
	return &balance, nil
}

// GetAccountBalances computes the unbounded balance of each account in parallel.
// Results keep the order of accountCodes.
func (s *balanceService) GetAccountBalances(ctx context.Context, accountCodes []int) ([]domain.AccountBalance, error) {
	results := make([]domain.AccountBalance, len(accountCodes))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelBalances)
	for i, code := range accountCodes {
		i, code := i, code
		g.Go(func() error {
			balance, err := s.GetAccountBalance(gctx, code)
			if err != nil {
				return err
			}
			results[i] = *balance
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
