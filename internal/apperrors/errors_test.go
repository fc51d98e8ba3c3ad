package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_IsMatchesKind(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		target error
		want   bool
	}{
		{"functional", NewFunctional(CodeEntryValidation, "bad entry"), ErrFunctional, true},
		{"functional is not notfound", NewFunctional(CodeEntryValidation, "bad entry"), ErrNotFound, false},
		{"notfound", NewNotFound("journal %s", "BQ"), ErrNotFound, true},
		{"technical", NewTechnical(CodePersistence, "db down", errors.New("boom")), ErrTechnical, true},
		{"wrapped notfound", fmt.Errorf("lookup: %w", NewNotFound("account %d", 411)), ErrNotFound, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errors.Is(tt.err, tt.target))
		})
	}
}

func TestAppError_ErrorIncludesDetails(t *testing.T) {
	err := NewFunctional(CodeEntryValidation, "entry is invalid",
		Detail{Rule: "RG_Compta_1", Message: "entry must have at least one line"},
		Detail{Rule: "RG_Compta_5", Message: "difference is 10.00"},
	)

	assert.Equal(t, "entry is invalid: RG_Compta_1 entry must have at least one line; RG_Compta_5 difference is 10.00", err.Error())
	assert.Len(t, DetailsOf(err), 2)
}

func TestAppError_UnwrapKeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewTechnical(CodePersistence, "failed to insert entry", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, Functional, KindOf(NewFunctional(CodeReferenceChanged, "x")))
	assert.Equal(t, NotFound, KindOf(fmt.Errorf("wrap: %w", NewNotFound("x"))))
	assert.Equal(t, NotFound, KindOf(fmt.Errorf("wrap: %w", ErrNotFound)))
	assert.Equal(t, Technical, KindOf(errors.New("plain")))
}

func TestIsDuplicateReference(t *testing.T) {
	dup := NewDuplicateReference("failed to insert entry BQ-2016/00001")

	assert.ErrorIs(t, dup, ErrFunctional)
	assert.True(t, IsDuplicateReference(dup))
	assert.True(t, IsDuplicateReference(fmt.Errorf("insert: %w", dup)))
	assert.False(t, IsDuplicateReference(NewFunctional(CodeEntryValidation, "bad entry", Detail{Rule: "RG_Compta_5", Message: "unbalanced"})))
	assert.False(t, IsDuplicateReference(errors.New("boom")))
}
