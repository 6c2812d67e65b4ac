/*
Package ruleregistry holds the full set of known correction rules,
tracks per-rule enabled state, and serves the enabled subset to the
matching stage in a stable order: ascending priority value, then
registration order.
*/
package ruleregistry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/haiphamcoder/thefuck-go/internal/core/ports"
)

type entry struct {
	rule    ports.Rule
	ordinal int
	enabled bool
}

type registry struct {
	mu      sync.RWMutex
	byName  map[string]*entry
	order   []*entry               // registration order
	enabled []ports.RegisteredRule // cached stable-ordered enabled view, nil when stale
}

// New creates an empty registry. Rules are registered explicitly by the
// bootstrap; the registry performs no discovery of its own.
func New() ports.RuleRegistry {
	return &registry{byName: make(map[string]*entry)}
}

// Register adds a rule, enabled by default.
func (r *registry) Register(rule ports.Rule) error {
	if rule == nil {
		return fmt.Errorf("cannot register a nil rule")
	}
	name := rule.Name()
	if name == "" {
		return fmt.Errorf("cannot register a rule with an empty name")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byName[name]; exists {
		return fmt.Errorf("%w: %s", ports.ErrDuplicateRule, name)
	}
	e := &entry{rule: rule, ordinal: len(r.order), enabled: true}
	r.byName[name] = e
	r.order = append(r.order, e)
	r.enabled = nil // invalidate cached view
	return nil
}

// Enable marks a rule enabled and invalidates the cached view.
func (r *registry) Enable(name string) error {
	return r.setEnabled(name, true)
}

// Disable marks a rule disabled and invalidates the cached view.
func (r *registry) Disable(name string) error {
	return r.setEnabled(name, false)
}

func (r *registry) setEnabled(name string, enabled bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.byName[name]
	if !ok {
		return fmt.Errorf("%w: %s", ports.ErrUnknownRule, name)
	}
	if e.enabled != enabled {
		e.enabled = enabled
		r.enabled = nil
	}
	return nil
}

// Lookup returns a registered rule by name.
func (r *registry) Lookup(name string) (ports.Rule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ports.ErrUnknownRule, name)
	}
	return e.rule, nil
}

/*
Enabled returns the enabled subset, ordered by ascending priority and
then registration order. The view is computed once and cached until the
next mutation; a pipeline run takes this snapshot at its start and is
never affected by later enable/disable calls.
*/
func (r *registry) Enabled() []ports.RegisteredRule {
	r.mu.RLock()
	if r.enabled != nil {
		view := r.enabled
		r.mu.RUnlock()
		return copyView(view)
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.enabled == nil { // may have been rebuilt while upgrading the lock
		view := make([]ports.RegisteredRule, 0, len(r.order))
		for _, e := range r.order {
			if e.enabled {
				view = append(view, ports.RegisteredRule{Rule: e.rule, Ordinal: e.ordinal})
			}
		}
		sort.SliceStable(view, func(i, j int) bool {
			pi, pj := view[i].Rule.Priority(), view[j].Rule.Priority()
			if pi != pj {
				return pi < pj
			}
			return view[i].Ordinal < view[j].Ordinal
		})
		r.enabled = view
	}
	return copyView(r.enabled)
}

// All lists every registered rule's status in registration order.
func (r *registry) All() []ports.RuleStatus {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]ports.RuleStatus, 0, len(r.order))
	for _, e := range r.order {
		out = append(out, ports.RuleStatus{
			Name:           e.rule.Name(),
			Priority:       e.rule.Priority(),
			Enabled:        e.enabled,
			RequiresOutput: e.rule.RequiresOutput(),
		})
	}
	return out
}

func copyView(view []ports.RegisteredRule) []ports.RegisteredRule {
	out := make([]ports.RegisteredRule, len(view))
	copy(out, view)
	return out
}
