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

// Bookkeeping rule codes reported in validation details.
const (
	RuleMinOneLine     = "RG_Compta_1"
	RuleDebitAndCredit = "RG_Compta_2"
	RuleKnownAccount   = "RG_Compta_3"
	RuleBalanced       = "RG_Compta_5"
	RuleKnownJournal   = "RG_Compta_JOURNAL"
	RuleRequired       = "RG_Compta_REQUIRED"
	RuleAmount         = "RG_Compta_AMOUNT"
	RuleReference      = "RG_Compta_REFERENCE"
	RuleUniqueRef      = apperrors.RuleUniqueReference
)

// DefaultCurrencyPrecision is the number of fractional digits amounts are compared at.
const DefaultCurrencyPrecision int32 = 2

// validationService checks entries against the bookkeeping rules.
type validationService struct {
	BaseService
	accountRepo portsrepo.AccountReader
	journalRepo portsrepo.JournalReader
	entryRepo   portsrepo.EntryReader
	precision   int32
}

// ValidationServiceOption is a functional option for configuring the validation service
type ValidationServiceOption func(*validationService)

// WithCurrencyPrecision sets the number of fractional digits used for the balance check.
func WithCurrencyPrecision(precision int32) ValidationServiceOption {
	return func(s *validationService) {
		if precision >= 0 {
			s.precision = precision
		}
	}
}

// NewValidationService creates a new EntryValidatorSvc.
func NewValidationService(accountRepo portsrepo.AccountReader, journalRepo portsrepo.JournalReader, entryRepo portsrepo.EntryReader, options ...ValidationServiceOption) portssvc.EntryValidatorSvc {
	svc := &validationService{
		accountRepo: accountRepo,
		journalRepo: journalRepo,
		entryRepo:   entryRepo,
		precision:   DefaultCurrencyPrecision,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.EntryValidatorSvc = (*validationService)(nil)

// CheckEntry evaluates every rule and reports all violations together.
// It performs read-only lookups and never persists or references the entry.
func (s *validationService) CheckEntry(ctx context.Context, entry *domain.Entry) error {
	if entry == nil {
		return apperrors.NewFunctional(apperrors.CodeEntryValidation, "entry is required")
	}

	var violations []apperrors.Detail
	add := func(rule, field, format string, args ...any) {
		violations = append(violations, apperrors.Detail{Rule: rule, Field: field, Message: fmt.Sprintf(format, args...)})
	}

	// Line structure
	if len(entry.Lines) == 0 {
		add(RuleMinOneLine, "lines", "entry must have at least one line")
	}
	debitLines, creditLines := 0, 0
	for i, line := range entry.Lines {
		if line.Amount.IsNegative() {
			add(RuleAmount, fmt.Sprintf("lines[%d].amount", i), "amount must not be negative, got %s", line.Amount.String())
		}
		switch line.Type {
		case domain.Debit:
			if line.Amount.IsPositive() {
				debitLines++
			}
		case domain.Credit:
			if line.Amount.IsPositive() {
				creditLines++
			}
		default:
			add(RuleAmount, fmt.Sprintf("lines[%d].type", i), "line type must be %s or %s, got %q", domain.Debit, domain.Credit, line.Type)
		}
	}
	if len(entry.Lines) < 2 || debitLines == 0 || creditLines == 0 {
		add(RuleDebitAndCredit, "lines", "entry must have at least two lines with at least one debit and one credit (lines=%d, debit=%d, credit=%d)",
			len(entry.Lines), debitLines, creditLines)
	}

	// Accounts referenced by the lines
	if len(entry.Lines) > 0 {
		codes := uniqueAccountCodes(entry.Lines)
		accounts, err := s.accountRepo.FindAccountsByCodes(ctx, codes)
		if err != nil {
			s.LogError(ctx, err, "Failed to look up accounts for entry validation")
			return asTechnical(err, "failed to look up accounts")
		}
		for _, code := range codes {
			if _, ok := accounts[code]; !ok {
				add(RuleKnownAccount, "lines.accountCode", "account %d does not exist", code)
			}
		}
	}

	// Balance
	if imbalance := entry.Imbalance(s.precision); !imbalance.IsZero() {
		add(RuleBalanced, "lines", "entry is not balanced: debit %s, credit %s, difference %s",
			entry.TotalDebit().StringFixed(s.precision),
			entry.TotalCredit().StringFixed(s.precision),
			imbalance.StringFixed(s.precision))
	}

	// Header
	if strings.TrimSpace(entry.Label) == "" {
		add(RuleRequired, "label", "label is required")
	}
	if entry.Date.IsZero() {
		add(RuleRequired, "date", "date is required")
	}
	if strings.TrimSpace(entry.JournalCode) == "" {
		add(RuleRequired, "journalCode", "journal code is required")
	} else if _, err := s.journalRepo.FindJournalByCode(ctx, strings.ToUpper(entry.JournalCode)); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to look up journal for entry validation", slog.String("journal_code", entry.JournalCode))
			return asTechnical(err, "failed to look up journal "+entry.JournalCode)
		}
		add(RuleKnownJournal, "journalCode", "journal %s does not exist", entry.JournalCode)
	}

	// Reference, when one is already attached
	if entry.HasReference() {
		if err := s.checkReference(ctx, entry, add); err != nil {
			return err
		}
	}

	if len(violations) > 0 {
		s.LogDebug(ctx, "Entry failed validation", slog.Int("violations", len(violations)))
		return apperrors.NewFunctional(apperrors.CodeEntryValidation, "entry violates bookkeeping rules", violations...)
	}
	return nil
}

func (s *validationService) checkReference(ctx context.Context, entry *domain.Entry, add func(rule, field, format string, args ...any)) error {
	code, year, _, err := domain.ParseReference(entry.Reference)
	if err != nil {
		add(RuleReference, "reference", "%s", err.Error())
		return nil
	}
	if code != strings.ToUpper(entry.JournalCode) {
		add(RuleReference, "reference", "reference journal %s does not match entry journal %s", code, entry.JournalCode)
	}
	if !entry.Date.IsZero() && year != entry.Year() {
		add(RuleReference, "reference", "reference year %d does not match entry year %d", year, entry.Year())
	}

	existing, err := s.entryRepo.FindEntryByReference(ctx, entry.Reference)
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
	case err != nil:
		s.LogError(ctx, err, "Failed to look up entry by reference", slog.String("reference", entry.Reference))
		return asTechnical(err, "failed to look up reference "+entry.Reference)
	case existing.ID != entry.ID:
		add(RuleUniqueRef, "reference", "reference %s is already used by entry %d", entry.Reference, existing.ID)
	}
	return nil
}

// uniqueAccountCodes returns the distinct account codes of lines in first-seen order.
func uniqueAccountCodes(lines []domain.EntryLine) []int {
	seen := make(map[int]struct{}, len(lines))
	result := make([]int, 0, len(lines))
	for _, l := range lines {
		if _, ok := seen[l.AccountCode]; !ok {
			seen[l.AccountCode] = struct{}{}
			result = append(result, l.AccountCode)
		}
	}
	return result
}
