package domain

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Income    AccountType = "INCOME"
	Expense   AccountType = "EXPENSE"
)

// Account is an entry in the chart of accounts, identified by its numeric code.
// Accounts are reference data and never mutated by the ledger core.
type Account struct {
	Code  int         `json:"code"`
	Label string      `json:"label"`
	Type  AccountType `json:"type"`
}
