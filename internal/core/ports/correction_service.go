package ports

import (
	"context"

	"github.com/haiphamcoder/thefuck-go/internal/core/domain/command"
	"github.com/haiphamcoder/thefuck-go/internal/core/domain/correction"
)

/*
CorrectionService runs the rule matching and ranking pipeline for one
failed command. The returned set ordering is fully deterministic for a
fixed Context and enabled rule set, regardless of how much concurrency
the matching stage used.
*/
type CorrectionService interface {
	// Correct evaluates every enabled rule against cmd and returns the
	// ranked, deduplicated result set. An empty set is a valid result.
	// The error is non-nil only for caller cancellation.
	Correct(ctx context.Context, cmd command.Context) (correction.RankedSet, error)
}
