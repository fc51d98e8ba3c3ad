package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountBalance is the derived balance of an account, optionally over a date window.
// It is recomputed on every query.
type AccountBalance struct {
	AccountCode int             `json:"accountCode"`
	Start       *time.Time      `json:"start,omitempty"`
	End         *time.Time      `json:"end,omitempty"`
	DebitTotal  decimal.Decimal `json:"debitTotal"`
	CreditTotal decimal.Decimal `json:"creditTotal"`
	Net         decimal.Decimal `json:"net"` // DebitTotal - CreditTotal
}

// NewAccountBalance sums lines into a balance for accountCode.
func NewAccountBalance(accountCode int, start, end *time.Time, lines []EntryLine) AccountBalance {
	debit := decimal.Zero
	credit := decimal.Zero
	for _, l := range lines {
		debit = debit.Add(l.Debit())
		credit = credit.Add(l.Credit())
	}
	return AccountBalance{
		AccountCode: accountCode,
		Start:       start,
		End:         end,
		DebitTotal:  debit,
		CreditTotal: credit,
		Net:         debit.Sub(credit),
	}
}
