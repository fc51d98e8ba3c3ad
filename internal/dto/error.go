package dto

import "github.com/SscSPs/myerp_ledger/internal/apperrors"

// ErrorResponse is the body of every failed API call.
type ErrorResponse struct {
	Error   string             `json:"error"`
	Code    string             `json:"code,omitempty"`
	Details []apperrors.Detail `json:"details,omitempty"`
}
