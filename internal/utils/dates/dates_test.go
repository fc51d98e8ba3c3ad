package dates

import (
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/myerp_ledger/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	want := time.Date(2016, 12, 31, 0, 0, 0, 0, time.UTC)

	got, err := ParseDate("2016-12-31")
	require.NoError(t, err)
	assert.True(t, want.Equal(got))

	got, err = ParseDate(" 31/12/2016 ")
	require.NoError(t, err)
	assert.True(t, want.Equal(got))
}

func TestParseDate_Invalid(t *testing.T) {
	for _, s := range []string{"", "2016-13-01", "31-12-2016", "yesterday"} {
		_, err := ParseDate(s)
		require.Error(t, err, s)
		assert.True(t, errors.Is(err, apperrors.ErrTechnical), s)
	}
}

func TestParseRange(t *testing.T) {
	from, to, err := ParseRange("2016-01-01", "2016-12-31")
	require.NoError(t, err)
	assert.Equal(t, 2016, from.Year())
	assert.Equal(t, time.December, to.Month())

	_, _, err = ParseRange("2016-12-31", "2016-01-01")
	assert.True(t, errors.Is(err, apperrors.ErrFunctional))

	_, _, err = ParseRange("2016-01-01", "nope")
	assert.True(t, errors.Is(err, apperrors.ErrTechnical))
}

func TestEndOfDay(t *testing.T) {
	d := time.Date(2016, 6, 15, 13, 45, 0, 0, time.UTC)
	assert.True(t, EndOfDay(d).After(d))
	assert.Equal(t, 15, EndOfDay(d).Day())
	assert.True(t, Truncate(d).Equal(time.Date(2016, 6, 15, 0, 0, 0, 0, time.UTC)))
}
