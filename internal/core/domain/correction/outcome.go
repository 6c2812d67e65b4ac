package correction

import "fmt"

// State names a terminal (or intermediate) state of the selection
// state machine: Presented -> Selected -> Applied, or Presented ->
// Rejected, with PartiallyApplied as the failure-terminal of Selected.
type State int

const (
	StatePresented State = iota
	StateSelected
	StateApplied
	StatePartiallyApplied
	StateRejected
)

// String returns the state name used in diagnostics and CLI output.
func (s State) String() string {
	switch s {
	case StatePresented:
		return "presented"
	case StateSelected:
		return "selected"
	case StateApplied:
		return "applied"
	case StatePartiallyApplied:
		return "partially-applied"
	case StateRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

/*
EffectFailure carries the detail of a side effect that failed while a
selected candidate was being applied. Effects already applied before
the failure are never rolled back.
*/
type EffectFailure struct {
	Effect SideEffect
	Index  int
	Err    error
}

// Error implements the error interface.
func (f *EffectFailure) Error() string {
	return fmt.Sprintf("side effect %d failed: %v", f.Index, f.Err)
}

// Unwrap exposes the underlying cause.
func (f *EffectFailure) Unwrap() error { return f.Err }

/*
Outcome is the result of one selection. FinalCommand is set for Applied
and PartiallyApplied outcomes; AppliedEffects lists the side effects
that completed, in application order; Failure is non-nil only for
PartiallyApplied.
*/
type Outcome struct {
	State          State
	FinalCommand   string
	AppliedEffects []SideEffect
	Failure        *EffectFailure
}
