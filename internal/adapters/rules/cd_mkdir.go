package rules

import (
	"context"

	"github.com/haiphamcoder/thefuck-go/internal/core/domain/command"
	"github.com/haiphamcoder/thefuck-go/internal/core/domain/correction"
	"github.com/haiphamcoder/thefuck-go/internal/core/ports"
)

// CdMkdir proposes creating the missing directory before retrying the
// cd. The candidate text equals the original command; what changes is
// the mkdir side effect that runs first.
type CdMkdir struct {
	base
}

// NewCdMkdir creates the cd_mkdir rule.
func NewCdMkdir() ports.Rule {
	return &CdMkdir{base{name: "cd_mkdir", priority: 500, requiresOutput: true}}
}

// Matches implements the ports.Rule interface.
func (r *CdMkdir) Matches(_ context.Context, cmd command.Context) (bool, error) {
	if cmd.Program() != "cd" {
		return false, nil
	}
	if _, ok := cmd.Argument(0); !ok {
		return false, nil
	}
	return outputContains(cmd,
		"no such file or directory",
		"does not exist",
		"can't cd to",
	), nil
}

// Candidates implements the ports.Rule interface.
func (r *CdMkdir) Candidates(_ context.Context, cmd command.Context) ([]correction.Candidate, error) {
	dir, _ := cmd.Argument(0)
	return []correction.Candidate{
		{
			CommandText: cmd.Raw(),
			SideEffects: []correction.SideEffect{
				correction.RunCommand("mkdir -p " + quoteIfNeeded(dir)),
			},
		},
	}, nil
}
