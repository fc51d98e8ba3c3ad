package models

// AccountType mirrors the account_type column.
type AccountType string

// Account is a row of the accounts table.
type Account struct {
	AccountCode int         `db:"account_code"` // Primary Key
	Label       string      `db:"label"`
	AccountType AccountType `db:"account_type"`
}
