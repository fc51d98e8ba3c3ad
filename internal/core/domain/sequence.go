package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// SequenceKey identifies the reference counter of a journal for one year.
type SequenceKey struct {
	JournalCode string `json:"journalCode"`
	Year        int    `json:"year"`
}

// NewSequenceKey normalises the journal code to upper case.
func NewSequenceKey(journalCode string, year int) SequenceKey {
	return SequenceKey{JournalCode: strings.ToUpper(strings.TrimSpace(journalCode)), Year: year}
}

func (k SequenceKey) String() string {
	return fmt.Sprintf("%s/%04d", k.JournalCode, k.Year)
}

// SequenceCounter holds the last sequence number assigned for a key.
type SequenceCounter struct {
	SequenceKey
	LastValue int `json:"lastValue"`
}

// referencePattern matches JOURNAL-YYYY/NNNNN; the sequence widens past five digits.
var referencePattern = regexp.MustCompile(`^([A-Z0-9]+)-(\d{4})/(\d{5,})$`)

// FormatReference renders a reference as JOURNAL-YYYY/NNNNN.
func FormatReference(journalCode string, year, sequence int) string {
	return fmt.Sprintf("%s-%04d/%05d", strings.ToUpper(journalCode), year, sequence)
}

// ParseReference splits a reference into its journal code, year and sequence.
func ParseReference(ref string) (journalCode string, year, sequence int, err error) {
	m := referencePattern.FindStringSubmatch(ref)
	if m == nil {
		return "", 0, 0, fmt.Errorf("invalid reference format: %q", ref)
	}
	year, err = strconv.Atoi(m[2])
	if err != nil {
		return "", 0, 0, fmt.Errorf("invalid year in reference %q: %w", ref, err)
	}
	sequence, err = strconv.Atoi(m[3])
	if err != nil {
		return "", 0, 0, fmt.Errorf("invalid sequence in reference %q: %w", ref, err)
	}
	return m[1], year, sequence, nil
}
