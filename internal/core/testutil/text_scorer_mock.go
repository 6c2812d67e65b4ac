package testutil

import "github.com/haiphamcoder/thefuck-go/internal/core/ports"

// MockTextScorer is a mock implementation of the ports.TextScorer
// interface. The default behavior scores everything 1.0, which makes
// ranking depend on rule priority alone.
type MockTextScorer struct {
	SimilarityFunc func(a, b string) float64
}

// Similarity mocks the Similarity method.
func (m *MockTextScorer) Similarity(a, b string) float64 {
	if m.SimilarityFunc != nil {
		return m.SimilarityFunc(a, b)
	}
	return 1.0
}

// Ensure MockTextScorer implements the ports.TextScorer interface.
var _ ports.TextScorer = (*MockTextScorer)(nil)
