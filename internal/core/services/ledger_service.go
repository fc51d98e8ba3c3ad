package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/SscSPs/myerp_ledger/internal/apperrors"
	"github.com/SscSPs/myerp_ledger/internal/core/domain"
	"github.com/SscSPs/myerp_ledger/internal/core/ports/events"
	portsrepo "github.com/SscSPs/myerp_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/myerp_ledger/internal/core/ports/services"
	"github.com/SscSPs/myerp_ledger/internal/utils/dates"
	"github.com/google/uuid"
)

// ledgerService orchestrates the entry lifecycle on top of the reference, validation and
// balance services.
type ledgerService struct {
	BaseService
	portssvc.ReferenceGeneratorSvc
	portssvc.EntryValidatorSvc
	portssvc.BalanceCalculatorSvc

	accountRepo portsrepo.AccountReader
	journalRepo portsrepo.JournalReader
	entryRepo   portsrepo.EntryRepositoryFacade
	publisher   events.EventPublisher
	now         func() time.Time
}

// maxReferenceDraws bounds how many sequence values one insert may consume.
const maxReferenceDraws = 10

// LedgerServiceOption is a functional option for configuring the ledger service
type LedgerServiceOption func(*ledgerService)

// WithEventPublisher sets where entry change events are sent.
func WithEventPublisher(publisher events.EventPublisher) LedgerServiceOption {
	return func(s *ledgerService) {
		if publisher != nil {
			s.publisher = publisher
		}
	}
}

// WithClock overrides the time source used to stamp events.
func WithClock(now func() time.Time) LedgerServiceOption {
	return func(s *ledgerService) {
		s.now = now
	}
}

// NewLedgerService creates a new LedgerSvcFacade.
func NewLedgerService(
	repos portsrepo.RepositoryProvider,
	reference portssvc.ReferenceGeneratorSvc,
	validator portssvc.EntryValidatorSvc,
	balance portssvc.BalanceCalculatorSvc,
	options ...LedgerServiceOption,
) portssvc.LedgerSvcFacade {
	svc := &ledgerService{
		ReferenceGeneratorSvc: reference,
		EntryValidatorSvc:     validator,
		BalanceCalculatorSvc:  balance,
		accountRepo:           repos.AccountRepo,
		journalRepo:           repos.JournalRepo,
		entryRepo:             repos.EntryRepo,
		publisher:             events.NoopPublisher{},
		now:                   time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

func (s *ledgerService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts")
		return nil, asTechnical(err, "failed to list accounts")
	}
	return accounts, nil
}

func (s *ledgerService) ListJournals(ctx context.Context) ([]domain.Journal, error) {
	journals, err := s.journalRepo.ListJournals(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list journals")
		return nil, asTechnical(err, "failed to list journals")
	}
	return journals, nil
}

func (s *ledgerService) ListEntries(ctx context.Context) ([]domain.Entry, error) {
	entries, err := s.entryRepo.ListEntries(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list entries")
		return nil, asTechnical(err, "failed to list entries")
	}
	return entries, nil
}

// ListEntriesByDate lists the entries dated within [start, end]. An empty window is NotFound.
func (s *ledgerService) ListEntriesByDate(ctx context.Context, start, end string) ([]domain.Entry, error) {
	from, to, err := dates.ParseRange(start, end)
	if err != nil {
		return nil, err
	}

	entries, err := s.entryRepo.ListEntriesByDateRange(ctx, from, dates.EndOfDay(to))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFound("no entries between %s and %s", start, end)
		}
		s.LogError(ctx, err, "Failed to list entries by date", slog.String("start", start), slog.String("end", end))
		return nil, asTechnical(err, "failed to list entries by date")
	}
	if len(entries) == 0 {
		return nil, apperrors.NewNotFound("no entries between %s and %s", start, end)
	}
	return entries, nil
}

func (s *ledgerService) GetEntry(ctx context.Context, id int64) (*domain.Entry, error) {
	entry, err := s.entryRepo.FindEntryByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFound("entry %d not found", id)
		}
		s.LogError(ctx, err, "Failed to get entry", slog.Int64("entry_id", id))
		return nil, asTechnical(err, "failed to get entry")
	}
	return entry, nil
}

// InsertEntry validates, references and persists a new entry.
// When persistence fails after a reference was attached, the sequence value stays consumed.
func (s *ledgerService) InsertEntry(ctx context.Context, entry *domain.Entry) error {
	if entry == nil {
		return apperrors.NewFunctional(apperrors.CodeEntryValidation, "entry is required")
	}
	if entry.HasID() {
		return apperrors.NewFunctional(apperrors.CodeUnexpectedIdentifier, "a new entry must not carry an identifier")
	}

	if err := s.CheckEntry(ctx, entry); err != nil {
		return err
	}

	id, err := s.insertReferenced(ctx, entry)
	if err != nil {
		return err
	}
	entry.ID = id

	s.LogInfo(ctx, "Entry inserted", slog.Int64("entry_id", id), slog.String("reference", entry.Reference))
	s.publish(ctx, events.EntryInserted, entry)
	return nil
}

// insertReferenced persists entry, drawing a reference first when it has none.
// A drawn reference the store already holds, e.g. one a caller supplied earlier, is
// skipped and the next value is drawn, up to maxReferenceDraws times.
func (s *ledgerService) insertReferenced(ctx context.Context, entry *domain.Entry) (int64, error) {
	generated := !entry.HasReference()
	for draw := 1; ; draw++ {
		if generated {
			entry.Reference = ""
			if err := s.AddReference(ctx, entry); err != nil {
				return 0, err
			}
		}

		id, err := s.entryRepo.InsertEntry(ctx, *entry)
		if err == nil {
			return id, nil
		}
		if generated && draw < maxReferenceDraws && apperrors.IsDuplicateReference(err) {
			s.LogWarn(ctx, "Drawn reference already used, drawing again", slog.String("reference", entry.Reference))
			continue
		}
		if apperrors.IsDuplicateReference(err) {
			return 0, err
		}
		s.LogError(ctx, err, "Failed to insert entry", slog.String("reference", entry.Reference))
		return 0, asTechnical(err, "failed to insert entry "+entry.Reference)
	}
}

// UpdateEntry persists changes to an existing entry. The stored reference must be kept.
func (s *ledgerService) UpdateEntry(ctx context.Context, entry *domain.Entry) error {
	if entry == nil || !entry.HasID() {
		return apperrors.NewFunctional(apperrors.CodeMissingIdentifier, "an entry identifier is required for update")
	}
	if !entry.HasReference() {
		return apperrors.NewFunctional(apperrors.CodeMissingIdentifier, "an entry reference is required for update")
	}

	stored, err := s.entryRepo.FindEntryByID(ctx, entry.ID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFound("entry %d not found", entry.ID)
		}
		s.LogError(ctx, err, "Failed to load entry for update", slog.Int64("entry_id", entry.ID))
		return asTechnical(err, "failed to load entry")
	}
	if stored.Reference != entry.Reference {
		return apperrors.NewFunctional(apperrors.CodeReferenceChanged, "the reference of an entry cannot be changed",
			apperrors.Detail{Field: "reference", Message: "stored " + stored.Reference + ", got " + entry.Reference})
	}

	if err := s.CheckEntry(ctx, entry); err != nil {
		return err
	}

	if err := s.entryRepo.UpdateEntry(ctx, *entry); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		s.LogError(ctx, err, "Failed to update entry", slog.Int64("entry_id", entry.ID))
		return asTechnical(err, "failed to update entry")
	}

	s.LogInfo(ctx, "Entry updated", slog.Int64("entry_id", entry.ID), slog.String("reference", entry.Reference))
	s.publish(ctx, events.EntryUpdated, entry)
	return nil
}

// DeleteEntry removes an entry. An absent id surfaces the repository's NotFound.
func (s *ledgerService) DeleteEntry(ctx context.Context, id int64) error {
	if err := s.entryRepo.DeleteEntry(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		s.LogError(ctx, err, "Failed to delete entry", slog.Int64("entry_id", id))
		return asTechnical(err, "failed to delete entry")
	}

	s.LogInfo(ctx, "Entry deleted", slog.Int64("entry_id", id))
	s.publish(ctx, events.EntryDeleted, &domain.Entry{ID: id})
	return nil
}

// publish sends a change event. Failures are logged only.
func (s *ledgerService) publish(ctx context.Context, eventType events.EntryEventType, entry *domain.Entry) {
	event := events.EntryEvent{
		EventID:     uuid.NewString(),
		Type:        eventType,
		EntryID:     entry.ID,
		Reference:   entry.Reference,
		JournalCode: entry.JournalCode,
		Actor:       events.ActorFromContext(ctx),
		OccurredAt:  s.now().UTC(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.LogWarn(ctx, "Failed to publish entry event",
			slog.String("error", err.Error()),
			slog.String("event_type", string(eventType)),
			slog.Int64("entry_id", entry.ID))
	}
}
