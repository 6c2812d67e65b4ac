package rules

import (
	"context"
	"strings"

	"github.com/haiphamcoder/thefuck-go/internal/core/domain/command"
	"github.com/haiphamcoder/thefuck-go/internal/core/domain/correction"
	"github.com/haiphamcoder/thefuck-go/internal/core/ports"
)

// PythonCommand runs a .py script through the interpreter when it was
// invoked directly but is not executable.
type PythonCommand struct {
	base
}

// NewPythonCommand creates the python_command rule.
func NewPythonCommand() ports.Rule {
	return &PythonCommand{base{name: "python_command", priority: 800, requiresOutput: true}}
}

// Matches implements the ports.Rule interface.
func (r *PythonCommand) Matches(_ context.Context, cmd command.Context) (bool, error) {
	if !strings.HasSuffix(cmd.Program(), ".py") {
		return false, nil
	}
	return outputContains(cmd, "permission denied"), nil
}

// Candidates implements the ports.Rule interface.
func (r *PythonCommand) Candidates(_ context.Context, cmd command.Context) ([]correction.Candidate, error) {
	return []correction.Candidate{
		{CommandText: "python " + strings.TrimSpace(cmd.Raw())},
	}, nil
}
