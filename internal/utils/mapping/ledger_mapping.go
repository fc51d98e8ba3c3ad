package mapping

import (
	"strings"

	"github.com/SscSPs/myerp_ledger/internal/core/domain"
	"github.com/SscSPs/myerp_ledger/internal/models"
)

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		Code:  m.AccountCode,
		Label: m.Label,
		Type:  domain.AccountType(m.AccountType),
	}
}

// ToDomainJournal converts a model Journal to a domain Journal
func ToDomainJournal(m models.Journal) domain.Journal {
	return domain.Journal{
		Code:  m.JournalCode,
		Label: m.Label,
	}
}

// ToModelEntry converts a domain Entry to a model Entry. The journal code is stored upper case.
func ToModelEntry(d domain.Entry) models.Entry {
	return models.Entry{
		EntryID:     d.ID,
		JournalCode: strings.ToUpper(d.JournalCode),
		EntryDate:   d.Date,
		Reference:   d.Reference,
		Label:       d.Label,
	}
}

// ToModelEntryLines converts the lines of a domain Entry, numbering them from 1.
func ToModelEntryLines(d domain.Entry) []models.EntryLine {
	lines := make([]models.EntryLine, len(d.Lines))
	for i, l := range d.Lines {
		lines[i] = models.EntryLine{
			EntryID:     d.ID,
			LineNo:      i + 1,
			AccountCode: l.AccountCode,
			LineType:    models.LineType(l.Type),
			Amount:      l.Amount,
			Label:       l.Label,
		}
	}
	return lines
}

// ToDomainEntry converts a model Entry and its lines to a domain Entry
func ToDomainEntry(m models.Entry, lines []models.EntryLine) domain.Entry {
	return domain.Entry{
		ID:          m.EntryID,
		JournalCode: m.JournalCode,
		Date:        m.EntryDate,
		Reference:   m.Reference,
		Label:       m.Label,
		Lines:       ToDomainEntryLines(lines),
	}
}

// ToDomainEntryLines converts model lines to domain lines, keeping their order.
func ToDomainEntryLines(lines []models.EntryLine) []domain.EntryLine {
	result := make([]domain.EntryLine, len(lines))
	for i, l := range lines {
		result[i] = domain.EntryLine{
			AccountCode: l.AccountCode,
			Type:        domain.LineType(l.LineType),
			Amount:      l.Amount,
			Label:       l.Label,
		}
	}
	return result
}
