package correction

/*
RankedSet is the ordered output of one pipeline run: candidates sorted
descending by score with duplicates already collapsed. An empty set is
a valid terminal outcome, not an error.
*/
type RankedSet struct {
	candidates []Candidate
}

// NewRankedSet wraps an already ranked, deduplicated candidate slice.
func NewRankedSet(candidates []Candidate) RankedSet {
	return RankedSet{candidates: candidates}
}

// Len returns the number of candidates in the set.
func (r RankedSet) Len() int { return len(r.candidates) }

// Empty reports whether the set holds no candidates.
func (r RankedSet) Empty() bool { return len(r.candidates) == 0 }

// At returns the candidate at index i, or false when i is out of range.
func (r RankedSet) At(i int) (Candidate, bool) {
	if i < 0 || i >= len(r.candidates) {
		return Candidate{}, false
	}
	return r.candidates[i], true
}

// Candidates returns a copy of the ordered candidate list.
func (r RankedSet) Candidates() []Candidate {
	out := make([]Candidate, len(r.candidates))
	copy(out, r.candidates)
	return out
}
