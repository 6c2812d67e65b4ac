package testutil

import (
	"sync"
	"time"

	"github.com/haiphamcoder/thefuck-go/internal/core/ports"
)

// FaultEvent records one RuleFault call.
type FaultEvent struct {
	Rule  string
	Stage string
	Err   error
}

// TimeoutEvent records one RuleTimeout call.
type TimeoutEvent struct {
	Rule   string
	Budget time.Duration
}

// MockDiagnostics is a recording implementation of the
// ports.Diagnostics interface, safe for concurrent use.
type MockDiagnostics struct {
	mu       sync.Mutex
	Faults   []FaultEvent
	Timeouts []TimeoutEvent
}

// RuleFault mocks the RuleFault method.
func (m *MockDiagnostics) RuleFault(rule, stage string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Faults = append(m.Faults, FaultEvent{Rule: rule, Stage: stage, Err: err})
}

// RuleTimeout mocks the RuleTimeout method.
func (m *MockDiagnostics) RuleTimeout(rule string, budget time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Timeouts = append(m.Timeouts, TimeoutEvent{Rule: rule, Budget: budget})
}

// FaultCount returns how many faults were recorded.
func (m *MockDiagnostics) FaultCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Faults)
}

// TimeoutCount returns how many timeouts were recorded.
func (m *MockDiagnostics) TimeoutCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Timeouts)
}

// Ensure MockDiagnostics implements the ports.Diagnostics interface.
var _ ports.Diagnostics = (*MockDiagnostics)(nil)
