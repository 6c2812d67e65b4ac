package rules

import (
	"context"
	"strings"

	"github.com/haiphamcoder/thefuck-go/internal/core/domain/command"
	"github.com/haiphamcoder/thefuck-go/internal/core/domain/correction"
	"github.com/haiphamcoder/thefuck-go/internal/core/ports"
)

var sudoMarkers = []string{
	"permission denied",
	"eacces",
	"must be root",
	"operation not permitted",
	"you cannot perform this operation unless you are root",
	"requested operation requires superuser privilege",
}

// Sudo proposes re-running a permission-refused command under sudo.
type Sudo struct {
	base
}

// NewSudo creates the sudo rule.
func NewSudo() ports.Rule {
	return &Sudo{base{name: "sudo", priority: 100, requiresOutput: true}}
}

// Matches implements the ports.Rule interface.
func (r *Sudo) Matches(_ context.Context, cmd command.Context) (bool, error) {
	if cmd.Program() == "sudo" {
		return false, nil
	}
	return outputContains(cmd, sudoMarkers...), nil
}

// Candidates implements the ports.Rule interface.
func (r *Sudo) Candidates(_ context.Context, cmd command.Context) ([]correction.Candidate, error) {
	return []correction.Candidate{
		{CommandText: "sudo " + strings.TrimSpace(cmd.Raw())},
	}, nil
}
