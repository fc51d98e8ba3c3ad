package dto

import (
	"strings"

	"github.com/SscSPs/myerp_ledger/internal/core/domain"
	"github.com/SscSPs/myerp_ledger/internal/utils/dates"
	"github.com/shopspring/decimal"
)

// EntryLineRequest is one debit or credit line of an entry payload.
type EntryLineRequest struct {
	AccountCode int             `json:"accountCode" binding:"required,gt=0" example:"512"`
	Type        string          `json:"type" binding:"required,oneof=DEBIT CREDIT debit credit" example:"DEBIT"`
	Amount      decimal.Decimal `json:"amount" swaggertype:"string" example:"100.00"`
	Label       string          `json:"label,omitempty" binding:"max=200"`
}

// EntryRequest is the payload used to create, update or validate an entry.
// Bookkeeping rules are checked by the ledger, not by binding.
type EntryRequest struct {
	JournalCode string             `json:"journalCode" binding:"omitempty,journalcode" example:"BQ"`
	Date        string             `json:"date" binding:"required" example:"2016-12-31"`
	Reference   string             `json:"reference,omitempty" example:"BQ-2016/00001"`
	Label       string             `json:"label" binding:"max=200" example:"Customer payment"`
	Lines       []EntryLineRequest `json:"lines" binding:"dive"`
}

// ToDomain converts the payload into a domain entry. Only the date can fail to convert.
func (r EntryRequest) ToDomain() (domain.Entry, error) {
	date, err := dates.ParseDate(r.Date)
	if err != nil {
		return domain.Entry{}, err
	}

	lines := make([]domain.EntryLine, len(r.Lines))
	for i, l := range r.Lines {
		lines[i] = domain.EntryLine{
			AccountCode: l.AccountCode,
			Type:        domain.LineType(strings.ToUpper(l.Type)),
			Amount:      l.Amount,
			Label:       l.Label,
		}
	}

	return domain.Entry{
		JournalCode: strings.ToUpper(strings.TrimSpace(r.JournalCode)),
		Date:        date,
		Reference:   strings.TrimSpace(r.Reference),
		Label:       strings.TrimSpace(r.Label),
		Lines:       lines,
	}, nil
}

// EntryLineResponse is one line of an entry as returned by the API.
type EntryLineResponse struct {
	AccountCode int             `json:"accountCode"`
	Type        domain.LineType `json:"type"`
	Amount      decimal.Decimal `json:"amount" swaggertype:"string"`
	Label       string          `json:"label,omitempty"`
}

// EntryResponse is an entry as returned by the API.
type EntryResponse struct {
	ID          int64               `json:"id,omitempty"`
	JournalCode string              `json:"journalCode"`
	Date        string              `json:"date"`
	Reference   string              `json:"reference,omitempty"`
	Label       string              `json:"label"`
	Lines       []EntryLineResponse `json:"lines"`
	TotalDebit  decimal.Decimal     `json:"totalDebit" swaggertype:"string"`
	TotalCredit decimal.Decimal     `json:"totalCredit" swaggertype:"string"`
}

// ToEntryResponse converts a domain entry to its API representation.
func ToEntryResponse(e domain.Entry) EntryResponse {
	lines := make([]EntryLineResponse, len(e.Lines))
	for i, l := range e.Lines {
		lines[i] = EntryLineResponse{AccountCode: l.AccountCode, Type: l.Type, Amount: l.Amount, Label: l.Label}
	}
	return EntryResponse{
		ID:          e.ID,
		JournalCode: e.JournalCode,
		Date:        e.Date.Format(dates.Layouts[0]),
		Reference:   e.Reference,
		Label:       e.Label,
		Lines:       lines,
		TotalDebit:  e.TotalDebit(),
		TotalCredit: e.TotalCredit(),
	}
}

// ToEntryResponses converts a list of domain entries.
func ToEntryResponses(entries []domain.Entry) []EntryResponse {
	result := make([]EntryResponse, len(entries))
	for i, e := range entries {
		result[i] = ToEntryResponse(e)
	}
	return result
}

// ValidationResponse reports the outcome of a dry-run validation.
type ValidationResponse struct {
	Valid bool `json:"valid"`
}
