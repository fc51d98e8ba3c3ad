package dto

import "github.com/SscSPs/myerp_ledger/internal/core/domain"

// AccountResponse is an account of the chart of accounts.
type AccountResponse struct {
	Code  int                `json:"code"`
	Label string             `json:"label"`
	Type  domain.AccountType `json:"type"`
}

// JournalResponse is a journal.
type JournalResponse struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

// ToAccountResponses converts domain accounts.
func ToAccountResponses(accounts []domain.Account) []AccountResponse {
	result := make([]AccountResponse, len(accounts))
	for i, a := range accounts {
		result[i] = AccountResponse{Code: a.Code, Label: a.Label, Type: a.Type}
	}
	return result
}

// ToJournalResponses converts domain journals.
func ToJournalResponses(journals []domain.Journal) []JournalResponse {
	result := make([]JournalResponse, len(journals))
	for i, j := range journals {
		result[i] = JournalResponse{Code: j.Code, Label: j.Label}
	}
	return result
}
