package services_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/myerp_ledger/internal/apperrors"
	"github.com/SscSPs/myerp_ledger/internal/core/domain"
	"github.com/SscSPs/myerp_ledger/internal/core/ports/events"
	portsrepo "github.com/SscSPs/myerp_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/myerp_ledger/internal/core/ports/services"
	"github.com/SscSPs/myerp_ledger/internal/core/services"
	"github.com/SscSPs/myerp_ledger/internal/platform/config"
	"github.com/SscSPs/myerp_ledger/internal/repositories/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type LedgerServiceTestSuite struct {
	suite.Suite
	mockAccounts  *MockAccountRepository
	mockJournals  *MockJournalRepository
	mockEntries   *MockEntryRepository
	mockSequences *MockSequenceStore
	mockPublisher *MockEventPublisher
	service       portssvc.LedgerSvcFacade
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockAccounts = new(MockAccountRepository)
	suite.mockJournals = new(MockJournalRepository)
	suite.mockEntries = new(MockEntryRepository)
	suite.mockSequences = new(MockSequenceStore)
	suite.mockPublisher = new(MockEventPublisher)

	repos := portsrepo.RepositoryProvider{
		AccountRepo:  suite.mockAccounts,
		JournalRepo:  suite.mockJournals,
		EntryRepo:    suite.mockEntries,
		SequenceRepo: suite.mockSequences,
	}
	suite.service = services.NewLedgerService(
		repos,
		services.NewReferenceService(suite.mockSequences, suite.mockJournals),
		services.NewValidationService(suite.mockAccounts, suite.mockJournals, suite.mockEntries),
		services.NewBalanceService(suite.mockAccounts, suite.mockEntries),
		services.WithEventPublisher(suite.mockPublisher),
		services.WithClock(func() time.Time { return time.Date(2016, 12, 31, 10, 0, 0, 0, time.UTC) }),
	)
}

func (suite *LedgerServiceTestSuite) knownReferenceData() {
	suite.mockAccounts.On("FindAccountsByCodes", mock.Anything, mock.Anything).Return(
		map[int]domain.Account{411: {Code: 411}, 512: {Code: 512}}, nil).Maybe()
	suite.mockJournals.On("FindJournalByCode", mock.Anything, "BQ").Return(&domain.Journal{Code: "BQ"}, nil).Maybe()
}

func (suite *LedgerServiceTestSuite) TestInsertEntry_Success() {
	ctx := context.Background()
	suite.knownReferenceData()
	entry := balancedEntry()

	suite.mockSequences.On("NextSequence", ctx, domain.SequenceKey{JournalCode: "BQ", Year: 2016}).Return(3, nil).Once()
	suite.mockEntries.On("InsertEntry", ctx, mock.MatchedBy(func(e domain.Entry) bool {
		return e.Reference == "BQ-2016/00003"
	})).Return(int64(42), nil).Once()
	suite.mockPublisher.On("Publish", ctx, mock.MatchedBy(func(ev events.EntryEvent) bool {
		return ev.Type == events.EntryInserted && ev.EntryID == 42 && ev.Reference == "BQ-2016/00003" && ev.EventID != ""
	})).Return(nil).Once()

	err := suite.service.InsertEntry(ctx, entry)

	suite.Require().NoError(err)
	suite.Equal(int64(42), entry.ID)
	suite.Equal("BQ-2016/00003", entry.Reference)
	suite.mockEntries.AssertExpectations(suite.T())
	suite.mockPublisher.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestInsertEntry_InvalidEntryIsNotReferenced() {
	ctx := context.Background()
	suite.knownReferenceData()
	entry := balancedEntry()
	entry.Lines = entry.Lines[:1]

	err := suite.service.InsertEntry(ctx, entry)

	suite.ErrorIs(err, apperrors.ErrFunctional)
	suite.Empty(entry.Reference)
	suite.mockSequences.AssertNotCalled(suite.T(), "NextSequence", mock.Anything, mock.Anything)
	suite.mockEntries.AssertNotCalled(suite.T(), "InsertEntry", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestInsertEntry_RejectsExistingID() {
	entry := balancedEntry()
	entry.ID = 5

	err := suite.service.InsertEntry(context.Background(), entry)

	suite.ErrorIs(err, apperrors.ErrFunctional)
}

func (suite *LedgerServiceTestSuite) TestInsertEntry_PersistenceFailureKeepsSequenceGap() {
	ctx := context.Background()
	suite.knownReferenceData()
	entry := balancedEntry()

	suite.mockSequences.On("NextSequence", ctx, mock.Anything).Return(9, nil).Once()
	suite.mockEntries.On("InsertEntry", ctx, mock.Anything).Return(int64(0), assert.AnError).Once()

	err := suite.service.InsertEntry(ctx, entry)

	suite.ErrorIs(err, apperrors.ErrTechnical)
	suite.Zero(entry.ID)
	suite.mockSequences.AssertNotCalled(suite.T(), "UpsertSequence", mock.Anything, mock.Anything, mock.Anything)
	suite.mockPublisher.AssertNotCalled(suite.T(), "Publish", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestInsertEntry_PublishFailureDoesNotFail() {
	ctx := context.Background()
	suite.knownReferenceData()

	suite.mockSequences.On("NextSequence", ctx, mock.Anything).Return(1, nil).Once()
	suite.mockEntries.On("InsertEntry", ctx, mock.Anything).Return(int64(1), nil).Once()
	suite.mockPublisher.On("Publish", ctx, mock.Anything).Return(assert.AnError).Once()

	suite.NoError(suite.service.InsertEntry(ctx, balancedEntry()))
}

func (suite *LedgerServiceTestSuite) TestInsertEntry_DrawsAgainWhenReferenceIsTaken() {
	ctx := events.WithActor(context.Background(), "user-1")
	suite.knownReferenceData()
	entry := balancedEntry()
	key := domain.SequenceKey{JournalCode: "BQ", Year: 2016}

	suite.mockSequences.On("NextSequence", ctx, key).Return(1, nil).Once()
	suite.mockSequences.On("NextSequence", ctx, key).Return(2, nil).Once()
	suite.mockEntries.On("InsertEntry", ctx, mock.MatchedBy(func(e domain.Entry) bool {
		return e.Reference == "BQ-2016/00001"
	})).Return(int64(0), apperrors.NewDuplicateReference("failed to insert entry BQ-2016/00001")).Once()
	suite.mockEntries.On("InsertEntry", ctx, mock.MatchedBy(func(e domain.Entry) bool {
		return e.Reference == "BQ-2016/00002"
	})).Return(int64(8), nil).Once()
	suite.mockPublisher.On("Publish", ctx, mock.MatchedBy(func(ev events.EntryEvent) bool {
		return ev.Reference == "BQ-2016/00002" && ev.Actor == "user-1"
	})).Return(nil).Once()

	suite.Require().NoError(suite.service.InsertEntry(ctx, entry))
	suite.Equal(int64(8), entry.ID)
	suite.Equal("BQ-2016/00002", entry.Reference)
	suite.mockSequences.AssertExpectations(suite.T())
	suite.mockEntries.AssertExpectations(suite.T())
	suite.mockPublisher.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestInsertEntry_SuppliedReferenceTakenIsFunctional() {
	ctx := context.Background()
	suite.knownReferenceData()
	entry := balancedEntry()
	entry.Reference = "BQ-2016/00005"

	suite.mockEntries.On("FindEntryByReference", ctx, "BQ-2016/00005").
		Return(nil, apperrors.NewNotFound("entry with reference %s not found", "BQ-2016/00005")).Once()
	suite.mockEntries.On("InsertEntry", ctx, mock.Anything).
		Return(int64(0), apperrors.NewDuplicateReference("failed to insert entry BQ-2016/00005")).Once()

	err := suite.service.InsertEntry(ctx, entry)

	suite.ErrorIs(err, apperrors.ErrFunctional)
	suite.True(apperrors.IsDuplicateReference(err))
	suite.Equal("BQ-2016/00005", entry.Reference)
	suite.mockSequences.AssertNotCalled(suite.T(), "NextSequence", mock.Anything, mock.Anything)
	suite.mockEntries.AssertNumberOfCalls(suite.T(), "InsertEntry", 1)
}

func (suite *LedgerServiceTestSuite) TestUpdateEntry_RequiresIdentifierAndReference() {
	entry := balancedEntry()
	suite.ErrorIs(suite.service.UpdateEntry(context.Background(), entry), apperrors.ErrFunctional)

	entry.ID = 1
	suite.ErrorIs(suite.service.UpdateEntry(context.Background(), entry), apperrors.ErrFunctional)
}

func (suite *LedgerServiceTestSuite) TestUpdateEntry_ReferenceCannotChange() {
	ctx := context.Background()
	entry := balancedEntry()
	entry.ID = 1
	entry.Reference = "BQ-2016/00002"

	suite.mockEntries.On("FindEntryByID", ctx, int64(1)).Return(&domain.Entry{ID: 1, Reference: "BQ-2016/00001"}, nil).Once()

	err := suite.service.UpdateEntry(ctx, entry)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrFunctional)
	var appErr *apperrors.AppError
	suite.Require().ErrorAs(err, &appErr)
	suite.Equal(apperrors.CodeReferenceChanged, appErr.Code)
	suite.mockEntries.AssertNotCalled(suite.T(), "UpdateEntry", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestUpdateEntry_Success() {
	ctx := context.Background()
	suite.knownReferenceData()
	entry := balancedEntry()
	entry.ID = 1
	entry.Reference = "BQ-2016/00001"
	entry.Label = "Corrected label"

	suite.mockEntries.On("FindEntryByID", ctx, int64(1)).Return(&domain.Entry{ID: 1, Reference: "BQ-2016/00001"}, nil).Once()
	suite.mockEntries.On("FindEntryByReference", ctx, "BQ-2016/00001").Return(&domain.Entry{ID: 1}, nil).Once()
	suite.mockEntries.On("UpdateEntry", ctx, *entry).Return(nil).Once()
	suite.mockPublisher.On("Publish", ctx, mock.MatchedBy(func(ev events.EntryEvent) bool {
		return ev.Type == events.EntryUpdated && ev.EntryID == 1
	})).Return(nil).Once()

	suite.Require().NoError(suite.service.UpdateEntry(ctx, entry))
	suite.mockEntries.AssertExpectations(suite.T())
	suite.mockPublisher.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestUpdateEntry_UnknownID() {
	ctx := context.Background()
	entry := balancedEntry()
	entry.ID = 77
	entry.Reference = "BQ-2016/00001"

	suite.mockEntries.On("FindEntryByID", ctx, int64(77)).Return(nil, apperrors.NewNotFound("entry 77 not found")).Once()

	suite.ErrorIs(suite.service.UpdateEntry(ctx, entry), apperrors.ErrNotFound)
}

func (suite *LedgerServiceTestSuite) TestDeleteEntry_AbsentIDSurfacesNotFound() {
	ctx := context.Background()
	suite.mockEntries.On("DeleteEntry", ctx, int64(404)).Return(apperrors.NewNotFound("entry 404 not found")).Once()

	err := suite.service.DeleteEntry(ctx, 404)

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockPublisher.AssertNotCalled(suite.T(), "Publish", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestDeleteEntry_Success() {
	ctx := context.Background()
	suite.mockEntries.On("DeleteEntry", ctx, int64(3)).Return(nil).Once()
	suite.mockPublisher.On("Publish", ctx, mock.MatchedBy(func(ev events.EntryEvent) bool {
		return ev.Type == events.EntryDeleted && ev.EntryID == 3
	})).Return(nil).Once()

	suite.NoError(suite.service.DeleteEntry(ctx, 3))
	suite.mockPublisher.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestListEntriesByDate() {
	ctx := context.Background()
	start := time.Date(2016, 1, 1, 0, 0, 0, 0, time.UTC)

	suite.mockEntries.On("ListEntriesByDateRange", ctx, start, mock.AnythingOfType("time.Time")).Return(
		[]domain.Entry{{ID: 1}}, nil).Once()

	entries, err := suite.service.ListEntriesByDate(ctx, "2016-01-01", "2016-12-31")

	suite.Require().NoError(err)
	suite.Len(entries, 1)
}

func (suite *LedgerServiceTestSuite) TestListEntriesByDate_EmptyWindowIsNotFound() {
	ctx := context.Background()
	suite.mockEntries.On("ListEntriesByDateRange", ctx, mock.Anything, mock.Anything).Return(
		nil, apperrors.NewNotFound("no entries")).Once()

	_, err := suite.service.ListEntriesByDate(ctx, "2030-01-01", "2030-12-31")
	suite.ErrorIs(err, apperrors.ErrNotFound)

	_, err = suite.service.ListEntriesByDate(ctx, "garbage", "2030-12-31")
	suite.ErrorIs(err, apperrors.ErrTechnical)
}

func (suite *LedgerServiceTestSuite) TestListPassThrough() {
	ctx := context.Background()
	suite.mockAccounts.On("ListAccounts", ctx).Return([]domain.Account{{Code: 411}}, nil).Once()
	suite.mockJournals.On("ListJournals", ctx).Return(nil, assert.AnError).Once()
	suite.mockEntries.On("ListEntries", ctx).Return([]domain.Entry{}, nil).Once()

	accounts, err := suite.service.ListAccounts(ctx)
	suite.Require().NoError(err)
	suite.Len(accounts, 1)

	_, err = suite.service.ListJournals(ctx)
	suite.ErrorIs(err, apperrors.ErrTechnical)

	entries, err := suite.service.ListEntries(ctx)
	suite.Require().NoError(err)
	suite.Empty(entries)
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}

// TestLedger_EndToEndOnMemoryStore runs the wired container against the in-memory store.
func TestLedger_EndToEndOnMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	store.AddAccounts(domain.Account{Code: 411, Label: "Customers"}, domain.Account{Code: 512, Label: "Bank"})
	store.AddJournals(domain.Journal{Code: "BQ", Label: "Bank"})

	container := services.NewServiceContainer(&config.Config{CurrencyPrecision: 2}, memory.NewRepositoryProvider(store), nil)

	first := balancedEntry()
	require.NoError(t, container.Ledger.InsertEntry(ctx, first))
	second := balancedEntry()
	require.NoError(t, container.Ledger.InsertEntry(ctx, second))

	assert.Equal(t, "BQ-2016/00001", first.Reference)
	assert.Equal(t, "BQ-2016/00002", second.Reference)

	last, err := container.Reference.GetSequenceValue(ctx, "BQ", 2016)
	require.NoError(t, err)
	assert.Equal(t, 2, last)

	balance, err := container.Balance.GetAccountBalance(ctx, 512)
	require.NoError(t, err)
	assert.True(t, balance.Net.Equal(decimal.NewFromInt(200)))

	second.Label = "Updated"
	require.NoError(t, container.Ledger.UpdateEntry(ctx, second))
	stored, err := container.Ledger.GetEntry(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, "Updated", stored.Label)

	require.NoError(t, container.Ledger.DeleteEntry(ctx, first.ID))
	assert.ErrorIs(t, container.Ledger.DeleteEntry(ctx, first.ID), apperrors.ErrNotFound)
}

func TestLedger_SuppliedReferenceIsNotIssuedAgain(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	store.AddAccounts(domain.Account{Code: 411, Label: "Customers"}, domain.Account{Code: 512, Label: "Bank"})
	store.AddJournals(domain.Journal{Code: "BQ", Label: "Bank"})
	container := services.NewServiceContainer(&config.Config{CurrencyPrecision: 2}, memory.NewRepositoryProvider(store), nil)

	supplied := balancedEntry()
	supplied.Reference = "BQ-2016/00001"
	require.NoError(t, container.Ledger.InsertEntry(ctx, supplied))

	drawn := balancedEntry()
	require.NoError(t, container.Ledger.InsertEntry(ctx, drawn))
	assert.Equal(t, "BQ-2016/00002", drawn.Reference)

	entries, err := container.Ledger.ListEntries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.NotEqual(t, entries[0].Reference, entries[1].Reference)
}

func TestLedger_ConcurrentInsertsWithSameReference(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	store.AddAccounts(domain.Account{Code: 411, Label: "Customers"}, domain.Account{Code: 512, Label: "Bank"})
	store.AddJournals(domain.Journal{Code: "BQ", Label: "Bank"})
	container := services.NewServiceContainer(&config.Config{CurrencyPrecision: 2}, memory.NewRepositoryProvider(store), nil)
	const n = 20

	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			entry := balancedEntry()
			entry.Reference = "BQ-2016/00003"
			errs <- container.Ledger.InsertEntry(ctx, entry)
		}()
	}
	wg.Wait()
	close(errs)

	succeeded := 0
	for err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, apperrors.ErrFunctional)
		assert.True(t, apperrors.IsDuplicateReference(err), "unexpected error: %v", err)
	}
	assert.Equal(t, 1, succeeded)

	entries, err := container.Ledger.ListEntries(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
