package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineType mirrors the line_type column.
type LineType string

const (
	Debit  LineType = "DEBIT"
	Credit LineType = "CREDIT"
)

// AuditFields holds the bookkeeping timestamps maintained by the repository.
type AuditFields struct {
	CreatedAt     time.Time `db:"created_at"`
	LastUpdatedAt time.Time `db:"last_updated_at"`
}

// Entry is a row of the entries table.
type Entry struct {
	EntryID     int64     `db:"entry_id"` // Primary Key, BIGSERIAL
	JournalCode string    `db:"journal_code"`
	EntryDate   time.Time `db:"entry_date"`
	Reference   string    `db:"reference"` // Unique
	Label       string    `db:"label"`
	AuditFields
}

// EntryLine is a row of the entry_lines table.
type EntryLine struct {
	EntryID     int64           `db:"entry_id"` // FK -> Entry.EntryID, cascade on delete
	LineNo      int             `db:"line_no"`
	AccountCode int             `db:"account_code"`
	LineType    LineType        `db:"line_type"`
	Amount      decimal.Decimal `db:"amount"` // NUMERIC(15,2), non-negative
	Label       string          `db:"label"`
}
