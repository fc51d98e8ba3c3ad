package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineType indicates on which side of the entry a line is booked.
type LineType string

const (
	Debit  LineType = "DEBIT"
	Credit LineType = "CREDIT"
)

// EntryLine is a single debit or credit movement on one account.
type EntryLine struct {
	AccountCode int             `json:"accountCode"`
	Type        LineType        `json:"type"`
	Amount      decimal.Decimal `json:"amount"` // Non-negative; the side is carried by Type
	Label       string          `json:"label,omitempty"`
}

// NewDebitLine returns a line debiting accountCode.
func NewDebitLine(accountCode int, amount decimal.Decimal, label string) EntryLine {
	return EntryLine{AccountCode: accountCode, Type: Debit, Amount: amount, Label: label}
}

// NewCreditLine returns a line crediting accountCode.
func NewCreditLine(accountCode int, amount decimal.Decimal, label string) EntryLine {
	return EntryLine{AccountCode: accountCode, Type: Credit, Amount: amount, Label: label}
}

// Debit returns the debited amount, zero for a credit line.
func (l EntryLine) Debit() decimal.Decimal {
	if l.Type == Debit {
		return l.Amount
	}
	return decimal.Zero
}

// Credit returns the credited amount, zero for a debit line.
func (l EntryLine) Credit() decimal.Decimal {
	if l.Type == Credit {
		return l.Amount
	}
	return decimal.Zero
}

// Entry is a set of debit/credit lines recorded against a journal on a date.
type Entry struct {
	ID          int64       `json:"id"`                  // Zero until the entry is persisted
	JournalCode string      `json:"journalCode"`
	Date        time.Time   `json:"date"`
	Reference   string      `json:"reference,omitempty"` // Empty until a reference is attached
	Label       string      `json:"label"`
	Lines       []EntryLine `json:"lines"`
}

// HasID reports whether the entry has been persisted.
func (e *Entry) HasID() bool {
	return e.ID > 0
}

// HasReference reports whether a reference has been attached.
func (e *Entry) HasReference() bool {
	return e.Reference != ""
}

// Year is the accounting year the entry belongs to.
func (e *Entry) Year() int {
	return e.Date.Year()
}

// TotalDebit sums the debit side of the entry.
func (e *Entry) TotalDebit() decimal.Decimal {
	total := decimal.Zero
	for _, l := range e.Lines {
		total = total.Add(l.Debit())
	}
	return total
}

// TotalCredit sums the credit side of the entry.
func (e *Entry) TotalCredit() decimal.Decimal {
	total := decimal.Zero
	for _, l := range e.Lines {
		total = total.Add(l.Credit())
	}
	return total
}

// Imbalance returns debit minus credit, both rounded to precision fractional digits.
func (e *Entry) Imbalance(precision int32) decimal.Decimal {
	return e.TotalDebit().Round(precision).Sub(e.TotalCredit().Round(precision))
}

// IsBalanced reports whether debits equal credits at the given precision.
func (e *Entry) IsBalanced(precision int32) bool {
	return e.Imbalance(precision).IsZero()
}
