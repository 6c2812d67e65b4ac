/*
Package correction defines the core domain entities produced by the
pipeline: correction candidates, their side effects, the ranked result
set, and the outcome of applying a selected candidate.
*/
package correction

// EffectKind discriminates the supported side-effect descriptors.
type EffectKind int

const (
	// EffectSetEnv sets an environment variable before re-execution.
	EffectSetEnv EffectKind = iota
	// EffectRunCommand runs an auxiliary command before re-execution.
	EffectRunCommand
)

/*
SideEffect describes one action to perform after a candidate is chosen
and before the corrected command is re-executed. Side effects are
opaque to ranking and compared by value when duplicates are merged.
*/
type SideEffect struct {
	Kind EffectKind

	// Name and Value are set for EffectSetEnv.
	Name  string
	Value string

	// Command is set for EffectRunCommand.
	Command string
}

// SetEnv builds an environment-mutation side effect.
func SetEnv(name, value string) SideEffect {
	return SideEffect{Kind: EffectSetEnv, Name: name, Value: value}
}

// RunCommand builds an auxiliary-command side effect.
func RunCommand(cmd string) SideEffect {
	return SideEffect{Kind: EffectRunCommand, Command: cmd}
}

/*
Candidate is one proposed replacement for a failed command. SourceRule
and Score are filled in by the ranking stage; rules only provide the
command text and any side effects.
*/
type Candidate struct {
	// CommandText is the fully formed replacement command. Never empty.
	CommandText string

	// SideEffects are applied in order after selection.
	SideEffects []SideEffect

	// SourceRule names the rule that produced (or, after dedup, won)
	// this candidate.
	SourceRule string

	// Score is the combined relevance in [0.0, 1.0]; higher is better.
	Score float64
}

// HasSideEffects reports whether the candidate carries at least one
// side effect.
func (c Candidate) HasSideEffects() bool { return len(c.SideEffects) > 0 }
