package domain

// Journal is a named ledger category (bank, purchases, ...) with its own reference sequence.
type Journal struct {
	Code  string `json:"code"` // e.g. "BQ"
	Label string `json:"label"`
}
