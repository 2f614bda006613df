package domain

// Scorer defines the contract for combining the match scores of a group of
// candidates into a single aggregate result.
// Implementations must be pure: repeated calls with the same inputs return
// equal results and neither argument is modified.
type Scorer interface {
	// ScorePeople scores every record against the opinion set and returns
	// the weighted aggregate together with the person score distribution.
	//
	// Degenerate inputs (an empty opinion set, no records, or no record
	// answering any opinionated question) are not errors; they yield a
	// result with HasScore set to false.
	//
	// Example:
	//
	//	result := scorer.ScorePeople(domain.Opinions{"q1": 1}, records)
	//	if !result.HasScore {
	//	    // render the neutral state
	//	}
	ScorePeople(opinions Opinions, records []Record) AggregateResult
}
