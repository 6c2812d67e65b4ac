package testutil

import (
	"context"

	"github.com/haiphamcoder/thefuck-go/internal/core/ports"
)

// MockCommandExecutor is a mock implementation of the
// ports.CommandExecutor interface.
type MockCommandExecutor struct {
	ExecuteFunc func(ctx context.Context, shellName, commandLine string) (ports.ExecutionResult, error)
	Calls       []string
}

// Execute mocks the Execute method and records the command line.
func (m *MockCommandExecutor) Execute(ctx context.Context, shellName, commandLine string) (ports.ExecutionResult, error) {
	m.Calls = append(m.Calls, commandLine)
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(ctx, shellName, commandLine)
	}
	return ports.ExecutionResult{}, nil
}

// Ensure MockCommandExecutor implements the ports.CommandExecutor interface.
var _ ports.CommandExecutor = (*MockCommandExecutor)(nil)
