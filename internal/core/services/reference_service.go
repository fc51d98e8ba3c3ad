package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/myerp_ledger/internal/apperrors"
	"github.com/SscSPs/myerp_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/myerp_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/myerp_ledger/internal/core/ports/services"
)

// referenceService issues entry references from the per-journal, per-year counters.
type referenceService struct {
	BaseService
	sequenceStore portsrepo.SequenceStore
	journalRepo   portsrepo.JournalReader
}

// NewReferenceService creates a new ReferenceGeneratorSvc.
func NewReferenceService(sequenceStore portsrepo.SequenceStore, journalRepo portsrepo.JournalReader) portssvc.ReferenceGeneratorSvc {
	return &referenceService{
		sequenceStore: sequenceStore,
		journalRepo:   journalRepo,
	}
}

var _ portssvc.ReferenceGeneratorSvc = (*referenceService)(nil)

// AddReference attaches the next reference of the entry's journal and year.
// The sequence advance is not tied to the entry being saved: a discarded entry leaves a gap.
func (s *referenceService) AddReference(ctx context.Context, entry *domain.Entry) error {
	if entry == nil {
		return apperrors.NewFunctional(apperrors.CodeInvalidJournalOrDate, "entry is required")
	}
	if entry.HasReference() {
		s.LogDebug(ctx, "Entry already has a reference, leaving it untouched", slog.String("reference", entry.Reference))
		return nil
	}
	if strings.TrimSpace(entry.JournalCode) == "" {
		return apperrors.NewFunctional(apperrors.CodeInvalidJournalOrDate, "journal code is required to build a reference")
	}
	if entry.Date.IsZero() {
		return apperrors.NewFunctional(apperrors.CodeInvalidJournalOrDate, "entry date is required to build a reference")
	}

	key := domain.NewSequenceKey(entry.JournalCode, entry.Year())
	next, err := s.sequenceStore.NextSequence(ctx, key)
	if err != nil {
		s.LogError(ctx, err, "Failed to advance journal sequence", slog.String("sequence", key.String()))
		return asTechnical(err, "failed to advance sequence "+key.String())
	}

	entry.Reference = domain.FormatReference(key.JournalCode, key.Year, next)
	s.LogInfo(ctx, "Reference attached to entry", slog.String("reference", entry.Reference))
	return nil
}

// GetSequenceValue reads the counter without changing it.
func (s *referenceService) GetSequenceValue(ctx context.Context, journalCode string, year int) (int, error) {
	key := domain.NewSequenceKey(journalCode, year)
	value, err := s.sequenceStore.FindSequence(ctx, key)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return 0, err
		}
		s.LogError(ctx, err, "Failed to read journal sequence", slog.String("sequence", key.String()))
		return 0, asTechnical(err, "failed to read sequence "+key.String())
	}
	return value, nil
}

// UpsertSequenceValue overrides the counter. An unknown journal is NotFound; a missing
// counter is created.
func (s *referenceService) UpsertSequenceValue(ctx context.Context, journalCode string, year int, value int) error {
	if value < 0 {
		return apperrors.NewFunctional(apperrors.CodeInvalidSequence, fmt.Sprintf("sequence value must not be negative, got %d", value))
	}
	key := domain.NewSequenceKey(journalCode, year)

	if _, err := s.journalRepo.FindJournalByCode(ctx, key.JournalCode); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFound("journal %s not found", key.JournalCode)
		}
		return asTechnical(err, "failed to look up journal "+key.JournalCode)
	}

	if err := s.sequenceStore.UpsertSequence(ctx, key, value); err != nil {
		s.LogError(ctx, err, "Failed to upsert journal sequence", slog.String("sequence", key.String()), slog.Int("value", value))
		return asTechnical(err, "failed to upsert sequence "+key.String())
	}

	s.LogInfo(ctx, "Journal sequence overridden", slog.String("sequence", key.String()), slog.Int("value", value))
	return nil
}

// asTechnical keeps typed errors as they are and wraps anything else as Technical.
func asTechnical(err error, message string) error {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return apperrors.NewTechnical(apperrors.CodePersistence, message, err)
}
