package dto

// SequenceResponse is the last value of a journal counter for a year.
type SequenceResponse struct {
	JournalCode string `json:"journalCode"`
	Year        int    `json:"year"`
	LastValue   int    `json:"lastValue"`
}

// UpsertSequenceRequest overrides a journal counter.
type UpsertSequenceRequest struct {
	Value *int `json:"value" binding:"required,min=0" example:"41"`
}
