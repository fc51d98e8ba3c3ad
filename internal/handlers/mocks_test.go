package handlers_test

import (
	"context"

	"github.com/SscSPs/myerp_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/myerp_ledger/internal/core/ports/services"
	"github.com/stretchr/testify/mock"
)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}
func (m *MockLedgerService) ListJournals(ctx context.Context) ([]domain.Journal, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Journal), args.Error(1)
}
func (m *MockLedgerService) ListEntries(ctx context.Context) ([]domain.Entry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Entry), args.Error(1)
}
func (m *MockLedgerService) ListEntriesByDate(ctx context.Context, start, end string) ([]domain.Entry, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Entry), args.Error(1)
}
func (m *MockLedgerService) GetEntry(ctx context.Context, id int64) (*domain.Entry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Entry), args.Error(1)
}
func (m *MockLedgerService) InsertEntry(ctx context.Context, entry *domain.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}
func (m *MockLedgerService) UpdateEntry(ctx context.Context, entry *domain.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}
func (m *MockLedgerService) DeleteEntry(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockLedgerService) AddReference(ctx context.Context, entry *domain.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}
func (m *MockLedgerService) GetSequenceValue(ctx context.Context, journalCode string, year int) (int, error) {
	args := m.Called(ctx, journalCode, year)
	return args.Int(0), args.Error(1)
}
func (m *MockLedgerService) UpsertSequenceValue(ctx context.Context, journalCode string, year int, value int) error {
	args := m.Called(ctx, journalCode, year, value)
	return args.Error(0)
}
func (m *MockLedgerService) CheckEntry(ctx context.Context, entry *domain.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}
func (m *MockLedgerService) GetAccountBalance(ctx context.Context, accountCode int) (*domain.AccountBalance, error) {
	args := m.Called(ctx, accountCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountBalance), args.Error(1)
}
func (m *MockLedgerService) GetAccountBalanceByDate(ctx context.Context, accountCode int, start, end string) (*domain.AccountBalance, error) {
	args := m.Called(ctx, accountCode, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountBalance), args.Error(1)
}
func (m *MockLedgerService) GetAccountBalances(ctx context.Context, accountCodes []int) ([]domain.AccountBalance, error) {
	args := m.Called(ctx, accountCodes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountBalance), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)
