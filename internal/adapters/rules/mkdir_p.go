package rules

import (
	"context"
	"strings"

	"github.com/haiphamcoder/thefuck-go/internal/core/domain/command"
	"github.com/haiphamcoder/thefuck-go/internal/core/domain/correction"
	"github.com/haiphamcoder/thefuck-go/internal/core/ports"
)

// MkdirP adds -p when mkdir refused to create a path with missing
// parents.
type MkdirP struct {
	base
}

// NewMkdirP creates the mkdir_p rule.
func NewMkdirP() ports.Rule {
	return &MkdirP{base{name: "mkdir_p", priority: 600, requiresOutput: true}}
}

// Matches implements the ports.Rule interface.
func (r *MkdirP) Matches(_ context.Context, cmd command.Context) (bool, error) {
	if cmd.Program() != "mkdir" || cmd.ContainsArgument("-p") {
		return false, nil
	}
	return outputContains(cmd, "no such file or directory"), nil
}

// Candidates implements the ports.Rule interface.
func (r *MkdirP) Candidates(_ context.Context, cmd command.Context) ([]correction.Candidate, error) {
	text := strings.Replace(cmd.Raw(), "mkdir", "mkdir -p", 1)
	return []correction.Candidate{{CommandText: text}}, nil
}
