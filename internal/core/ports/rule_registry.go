package ports

import "errors"

// ErrUnknownRule indicates a lookup, enable or disable referencing a
// name that was never registered. Fatal to that registry operation
// only.
var ErrUnknownRule = errors.New("unknown rule")

// ErrDuplicateRule indicates a Register call with a name already held
// by the registry.
var ErrDuplicateRule = errors.New("rule already registered")

/*
RegisteredRule pairs a rule with its registration ordinal. The ordinal
is the tie-break between rules of equal priority, both for iteration
order and for ranking.
*/
type RegisteredRule struct {
	Rule    Rule
	Ordinal int
}

// RuleStatus is the listing view of one registry entry.
type RuleStatus struct {
	Name           string
	Priority       int
	Enabled        bool
	RequiresOutput bool
}

/*
RuleRegistry holds the full set of known rules and serves the enabled
subset in a stable order: ascending priority value, then registration
order. Mutations are serialized; readers observe a consistent snapshot
taken when Enabled is called, never a view that changes mid-run.
*/
type RuleRegistry interface {
	// Register adds a rule. Returns ErrDuplicateRule when the name is
	// already taken.
	Register(rule Rule) error

	// Enable marks a rule enabled. Returns ErrUnknownRule for
	// unregistered names.
	Enable(name string) error

	// Disable marks a rule disabled. Returns ErrUnknownRule for
	// unregistered names.
	Disable(name string) error

	// Lookup returns a registered rule by name.
	Lookup(name string) (Rule, error)

	// Enabled returns the enabled subset as a stable-ordered snapshot.
	// The returned slice is owned by the caller.
	Enabled() []RegisteredRule

	// All lists every registered rule's status in registry order.
	All() []RuleStatus
}
