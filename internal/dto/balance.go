package dto

import (
	"github.com/SscSPs/myerp_ledger/internal/core/domain"
	"github.com/SscSPs/myerp_ledger/internal/utils/dates"
	"github.com/shopspring/decimal"
)

// AccountBalanceResponse is the derived balance of an account.
type AccountBalanceResponse struct {
	AccountCode int             `json:"accountCode"`
	Start       string          `json:"start,omitempty"`
	End         string          `json:"end,omitempty"`
	DebitTotal  decimal.Decimal `json:"debitTotal" swaggertype:"string"`
	CreditTotal decimal.Decimal `json:"creditTotal" swaggertype:"string"`
	Net         decimal.Decimal `json:"net" swaggertype:"string"`
}

// ToAccountBalanceResponse converts a domain balance.
func ToAccountBalanceResponse(b domain.AccountBalance) AccountBalanceResponse {
	resp := AccountBalanceResponse{
		AccountCode: b.AccountCode,
		DebitTotal:  b.DebitTotal,
		CreditTotal: b.CreditTotal,
		Net:         b.Net,
	}
	if b.Start != nil {
		resp.Start = b.Start.Format(dates.Layouts[0])
	}
	if b.End != nil {
		resp.End = b.End.Format(dates.Layouts[0])
	}
	return resp
}

// DateRangeParams are the optional window of a balance or entry query.
type DateRangeParams struct {
	Start string `form:"start"`
	End   string `form:"end"`
}
