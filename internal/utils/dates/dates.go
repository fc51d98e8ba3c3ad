package dates

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/myerp_ledger/internal/apperrors"
)

// Layouts accepted for caller-supplied dates, canonical first.
var Layouts = []string{
	"2006-01-02",
	"02/01/2006",
}

// ParseDate parses s into a calendar date at midnight UTC.
// Unparsable input is a Technical error.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range Layouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, apperrors.NewTechnical(apperrors.CodeInvalidDate,
		fmt.Sprintf("unparsable date %q, expected YYYY-MM-DD or DD/MM/YYYY", s), nil)
}

// ParseRange parses both bounds of an inclusive window. start after end is Functional.
func ParseRange(start, end string) (time.Time, time.Time, error) {
	from, err := ParseDate(start)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	to, err := ParseDate(end)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if from.After(to) {
		return time.Time{}, time.Time{}, apperrors.NewFunctional(apperrors.CodeInvalidDateRange,
			fmt.Sprintf("start date %s is after end date %s", from.Format(Layouts[0]), to.Format(Layouts[0])))
	}
	return from, to, nil
}

// Truncate drops the time of day, keeping the calendar date in UTC.
func Truncate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// EndOfDay returns the last instant of t's calendar date, used as an inclusive upper bound.
func EndOfDay(t time.Time) time.Time {
	return Truncate(t).Add(24*time.Hour - time.Nanosecond)
}
