/*
Package selection implements the selection and execution contract: a
small state machine that takes a ranked result set from Presented
through Selected to a terminal Applied, PartiallyApplied or Rejected
outcome. Side effects of the chosen candidate are applied in order and
never rolled back; the final command itself is returned to the caller
for re-execution, never run here.
*/
package selection

import (
	"context"
	"sync"

	"github.com/haiphamcoder/thefuck-go/internal/core/domain/correction"
	"github.com/haiphamcoder/thefuck-go/internal/core/ports"
)

type session struct {
	mu      sync.Mutex
	state   correction.State
	set     correction.RankedSet
	applier ports.EffectApplier
}

// NewSession presents a ranked result set for selection. It panics if
// applier is nil.
func NewSession(set correction.RankedSet, applier ports.EffectApplier) ports.SelectionSession {
	if applier == nil {
		panic("applier cannot be nil")
	}
	return &session{
		state:   correction.StatePresented,
		set:     set,
		applier: applier,
	}
}

// State returns the session's current state.
func (s *session) State() correction.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

/*
Select chooses candidate i. An out-of-range index, a session already in
a terminal state, or cancellation before any effect has begun all yield
a Rejected outcome with no side effects applied. Once effect
application starts it runs to completion or per-effect failure,
regardless of ctx.
*/
func (s *session) Select(ctx context.Context, i int) correction.Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != correction.StatePresented {
		return correction.Outcome{State: s.state}
	}

	chosen, ok := s.set.At(i)
	if !ok {
		s.state = correction.StateRejected
		return correction.Outcome{State: correction.StateRejected}
	}

	// Cancellation between Presented and Selected discards the set.
	if ctx.Err() != nil {
		s.state = correction.StateRejected
		return correction.Outcome{State: correction.StateRejected}
	}

	s.state = correction.StateSelected

	// Effects run to completion once started; detach from caller
	// cancellation so an interrupt cannot abandon a half-applied step.
	effectCtx := context.WithoutCancel(ctx)

	applied := make([]correction.SideEffect, 0, len(chosen.SideEffects))
	for idx, effect := range chosen.SideEffects {
		if err := s.applier.Apply(effectCtx, effect); err != nil {
			s.state = correction.StatePartiallyApplied
			return correction.Outcome{
				State:          correction.StatePartiallyApplied,
				FinalCommand:   chosen.CommandText,
				AppliedEffects: applied,
				Failure:        &correction.EffectFailure{Effect: effect, Index: idx, Err: err},
			}
		}
		applied = append(applied, effect)
	}

	s.state = correction.StateApplied
	return correction.Outcome{
		State:          correction.StateApplied,
		FinalCommand:   chosen.CommandText,
		AppliedEffects: applied,
	}
}

// Reject ends the session with no candidate chosen.
func (s *session) Reject() correction.Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == correction.StatePresented {
		s.state = correction.StateRejected
	}
	return correction.Outcome{State: s.state}
}
