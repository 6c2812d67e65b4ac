package ports

import (
	"context"

	"github.com/haiphamcoder/thefuck-go/internal/core/domain/correction"
)

/*
SelectionSession exposes the selection and execution contract for one
ranked result set. A session starts in the Presented state and reaches
exactly one terminal state: Applied, PartiallyApplied or Rejected.
The session applies side effects of the chosen candidate but never
executes the final command itself; re-execution belongs to the shell
collaborator.
*/
type SelectionSession interface {
	// Select applies the side effects of candidate i in listed order
	// and returns the outcome. An out-of-range index yields a Rejected
	// outcome with no side effects applied. Once effect application
	// has begun it runs to completion or per-effect failure,
	// regardless of ctx.
	Select(ctx context.Context, i int) correction.Outcome

	// Reject ends the session with no candidate chosen and no side
	// effects applied.
	Reject() correction.Outcome

	// State returns the session's current state.
	State() correction.State
}

/*
EffectApplier executes one side effect descriptor against the real
world: an environment mutation or an auxiliary command run through the
shell capability. This is a driven port implemented by the OS adapter.
*/
type EffectApplier interface {
	Apply(ctx context.Context, effect correction.SideEffect) error
}
