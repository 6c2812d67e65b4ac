package ports

import (
	"context"

	"github.com/haiphamcoder/thefuck-go/internal/core/domain/command"
	"github.com/haiphamcoder/thefuck-go/internal/core/domain/correction"
)

/*
Rule is the capability contract every correction rule implements. This
is a driven port: concrete rule variants are registered explicitly by
the bootstrap, and the registry never needs to know their identity
beyond this surface.

Matches and Candidates must be pure with respect to external state: no
mutation of the Context, no writes. Any probing I/O a rule performs
(e.g. checking PATH for a binary) must honor ctx cancellation. A rule
returning an error, or panicking, is treated as a non-match for that
run; the fault is recorded on the diagnostics channel and never aborts
the pipeline.
*/
type Rule interface {
	// Name uniquely identifies the rule within a registry instance.
	Name() string

	// Priority orders rules; lower values are preferred on ties.
	Priority() int

	// RequiresOutput reports whether the rule needs non-empty
	// stdout/stderr to be meaningfully evaluated. Used as a cheap
	// pre-filter before Matches is called.
	RequiresOutput() bool

	// Matches is a cheap predicate deciding whether the rule applies.
	Matches(ctx context.Context, cmd command.Context) (bool, error)

	// Candidates proposes corrections. Only invoked after Matches
	// returned true; may return more than one candidate, or none.
	Candidates(ctx context.Context, cmd command.Context) ([]correction.Candidate, error)
}
