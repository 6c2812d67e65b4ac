package testutil

import (
	"context"

	"github.com/haiphamcoder/thefuck-go/internal/core/domain/command"
	"github.com/haiphamcoder/thefuck-go/internal/core/domain/correction"
	"github.com/haiphamcoder/thefuck-go/internal/core/ports"
)

// MockRule is a mock implementation of the ports.Rule interface.
type MockRule struct {
	NameValue           string
	PriorityValue       int
	RequiresOutputValue bool
	MatchesFunc         func(ctx context.Context, cmd command.Context) (bool, error)
	CandidatesFunc      func(ctx context.Context, cmd command.Context) ([]correction.Candidate, error)
}

// Name mocks the Name method.
func (m *MockRule) Name() string { return m.NameValue }

// Priority mocks the Priority method.
func (m *MockRule) Priority() int { return m.PriorityValue }

// RequiresOutput mocks the RequiresOutput method.
func (m *MockRule) RequiresOutput() bool { return m.RequiresOutputValue }

// Matches mocks the Matches method.
func (m *MockRule) Matches(ctx context.Context, cmd command.Context) (bool, error) {
	if m.MatchesFunc != nil {
		return m.MatchesFunc(ctx, cmd)
	}
	return false, nil
}

// Candidates mocks the Candidates method.
func (m *MockRule) Candidates(ctx context.Context, cmd command.Context) ([]correction.Candidate, error) {
	if m.CandidatesFunc != nil {
		return m.CandidatesFunc(ctx, cmd)
	}
	return nil, nil
}

// Ensure MockRule implements the ports.Rule interface.
var _ ports.Rule = (*MockRule)(nil)
