package entities

// TrendingTerm tracks how often a marked token has occurred across all
// ingested posts. The term is stored without its leading marker. The
// occurrence count is the only in-place mutation in the data model and it
// only ever increases.
type TrendingTerm struct {
	term        string
	occurrences int
}

// NewTrendingTerm creates a counter for a term seen for the first time.
func NewTrendingTerm(term string) *TrendingTerm {
	return &TrendingTerm{
		term:        term,
		occurrences: 1,
	}
}

// Term returns the tracked token, without its leading marker
func (t *TrendingTerm) Term() string {
	return t.term
}

// Occurrences returns how many times the term has occurred so far
func (t *TrendingTerm) Occurrences() int {
	return t.occurrences
}

// RecordUse increments the occurrence count by one
func (t *TrendingTerm) RecordUse() {
	t.occurrences++
}
