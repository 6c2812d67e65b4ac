/*
Package similarity provides the normalized string-distance measure used
by the ranking stage.
*/
package similarity

import (
	"github.com/agnivade/levenshtein"

	"github.com/haiphamcoder/thefuck-go/internal/core/ports"
)

// LevenshteinScorer measures similarity as 1 - d/maxLen, where d is the
// Levenshtein edit distance over runes. Identical strings score 1.0,
// fully disjoint strings approach 0.0.
type LevenshteinScorer struct{}

// NewLevenshteinScorer creates a new LevenshteinScorer.
func NewLevenshteinScorer() ports.TextScorer {
	return &LevenshteinScorer{}
}

// Similarity implements the ports.TextScorer interface.
func (s *LevenshteinScorer) Similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	la := len([]rune(a))
	lb := len([]rune(b))
	longest := la
	if lb > longest {
		longest = lb
	}
	if longest == 0 {
		return 1.0
	}
	d := levenshtein.ComputeDistance(a, b)
	sim := 1.0 - float64(d)/float64(longest)
	if sim < 0 {
		return 0.0
	}
	return sim
}
