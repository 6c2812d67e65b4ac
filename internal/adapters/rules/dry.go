package rules

import (
	"context"
	"strings"

	"github.com/haiphamcoder/thefuck-go/internal/core/domain/command"
	"github.com/haiphamcoder/thefuck-go/internal/core/domain/correction"
	"github.com/haiphamcoder/thefuck-go/internal/core/ports"
)

// Dry removes a doubled leading word ("git git push" -> "git push").
// The only built-in rule that works without captured output.
type Dry struct {
	base
}

// NewDry creates the dry rule.
func NewDry() ports.Rule {
	return &Dry{base{name: "dry", priority: 900, requiresOutput: false}}
}

// Matches implements the ports.Rule interface.
func (r *Dry) Matches(_ context.Context, cmd command.Context) (bool, error) {
	first, ok := cmd.Argument(0)
	return ok && first == cmd.Program(), nil
}

// Candidates implements the ports.Rule interface.
func (r *Dry) Candidates(_ context.Context, cmd command.Context) ([]correction.Candidate, error) {
	trimmed := strings.TrimSpace(cmd.Raw())
	text := strings.TrimSpace(strings.TrimPrefix(trimmed, cmd.Program()))
	return []correction.Candidate{{CommandText: text}}, nil
}
