package ports

import "time"

/*
Diagnostics is the write-only sink for non-fatal pipeline events: rule
faults and timeouts recovered as non-matches. The core writes
structured events and never reads back.
*/
type Diagnostics interface {
	// RuleFault records a rule whose evaluation returned an error or
	// panicked. stage is "matches" or "candidates".
	RuleFault(rule, stage string, err error)

	// RuleTimeout records a rule that exceeded the per-rule evaluation
	// budget.
	RuleTimeout(rule string, budget time.Duration)
}

// NopDiagnostics discards every event.
type NopDiagnostics struct{}

func (NopDiagnostics) RuleFault(string, string, error) {}
func (NopDiagnostics) RuleTimeout(string, time.Duration) {}

var _ Diagnostics = NopDiagnostics{}
