package models

// Journal is a row of the journals table.
type Journal struct {
	JournalCode string `db:"journal_code"` // Primary Key, upper case
	Label       string `db:"label"`
}

// JournalSequence is a row of the journal_sequences table.
type JournalSequence struct {
	JournalCode string `db:"journal_code"` // FK -> Journal.JournalCode
	Year        int    `db:"year"`
	LastValue   int    `db:"last_value"`
}
