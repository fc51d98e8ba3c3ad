package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a failure raised by the ledger core.
type Kind string

const (
	// Functional is a business-rule violation the caller can fix and retry.
	Functional Kind = "FUNCTIONAL"
	// NotFound means a referenced identifier does not exist.
	NotFound Kind = "NOT_FOUND"
	// Technical covers unparsable input and persistence failures.
	Technical Kind = "TECHNICAL"
)

// ErrFunctional, ErrNotFound and ErrTechnical let callers match on a kind with errors.Is.
var (
	ErrFunctional = errors.New("functional error")
	ErrNotFound   = errors.New("resource not found")
	ErrTechnical  = errors.New("technical error")
)

// Error codes carried by AppError.Code.
const (
	CodeInvalidJournalOrDate = "InvalidJournalOrDate"
	CodeEntryValidation      = "EntryValidation"
	CodeReferenceChanged     = "ReferenceChanged"
	CodeMissingIdentifier    = "MissingIdentifier"
	CodeUnexpectedIdentifier = "UnexpectedIdentifier"
	CodeInvalidDateRange     = "InvalidDateRange"
	CodeInvalidDate          = "InvalidDate"
	CodeInvalidSequence      = "InvalidSequence"
	CodePersistence          = "Persistence"
)

// RuleUniqueReference is reported when a reference is already held by another entry.
const RuleUniqueReference = "RG_Compta_UNIQUE"

// Detail is one structured item attached to an AppError, e.g. a violated rule.
type Detail struct {
	Rule    string `json:"rule,omitempty"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// AppError is the tagged error returned across the core.
type AppError struct {
	Kind    Kind
	Code    string
	Message string
	Details []Detail
	Err     error
}

func (e *AppError) Error() string {
	var b strings.Builder
	b.WriteString(e.Message)
	for i, d := range e.Details {
		if i == 0 {
			b.WriteString(": ")
		} else {
			b.WriteString("; ")
		}
		if d.Rule != "" {
			b.WriteString(d.Rule)
			b.WriteString(" ")
		}
		b.WriteString(d.Message)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches the kind sentinels so errors.Is(err, ErrNotFound) works through wrapping.
func (e *AppError) Is(target error) bool {
	switch target {
	case ErrFunctional:
		return e.Kind == Functional
	case ErrNotFound:
		return e.Kind == NotFound
	case ErrTechnical:
		return e.Kind == Technical
	}
	return false
}

// NewFunctional returns a business-rule violation.
func NewFunctional(code, message string, details ...Detail) *AppError {
	return &AppError{Kind: Functional, Code: code, Message: message, Details: details}
}

// NewDuplicateReference returns the Functional error raised when a store refuses a reference it already holds.
func NewDuplicateReference(message string) *AppError {
	return NewFunctional(CodeEntryValidation, message,
		Detail{Rule: RuleUniqueReference, Field: "reference", Message: "reference already used"})
}

// NewNotFound returns a NotFound error for the described resource.
func NewNotFound(format string, args ...any) *AppError {
	return &AppError{Kind: NotFound, Message: fmt.Sprintf(format, args...)}
}

// NewTechnical wraps err as a Technical failure.
func NewTechnical(code, message string, err error) *AppError {
	return &AppError{Kind: Technical, Code: code, Message: message, Err: err}
}

// KindOf reports the kind of err. Untyped errors are Technical.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	if errors.Is(err, ErrNotFound) {
		return NotFound
	}
	if errors.Is(err, ErrFunctional) {
		return Functional
	}
	return Technical
}

// DetailsOf returns the structured details of err, if any.
func DetailsOf(err error) []Detail {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Details
	}
	return nil
}

// IsDuplicateReference reports whether err was raised for a reference already in use.
func IsDuplicateReference(err error) bool {
	for _, d := range DetailsOf(err) {
		if d.Rule == RuleUniqueReference {
			return true
		}
	}
	return false
}
