package rules

import (
	"context"
	"strings"

	"github.com/haiphamcoder/thefuck-go/internal/core/domain/command"
	"github.com/haiphamcoder/thefuck-go/internal/core/domain/correction"
	"github.com/haiphamcoder/thefuck-go/internal/core/ports"
)

// AptGetInstall retries an apt operation under sudo when it failed on
// the dpkg lock or on cache permissions. Overlaps with the generic
// sudo rule on purpose; the dedup stage merges the shared candidate.
type AptGetInstall struct {
	base
}

// NewAptGetInstall creates the apt_get_install rule.
func NewAptGetInstall() ports.Rule {
	return &AptGetInstall{base{name: "apt_get_install", priority: 700, requiresOutput: true}}
}

// Matches implements the ports.Rule interface.
func (r *AptGetInstall) Matches(_ context.Context, cmd command.Context) (bool, error) {
	if cmd.Program() != "apt" && cmd.Program() != "apt-get" {
		return false, nil
	}
	return outputContains(cmd,
		"could not open lock file",
		"permission denied",
		"are you root?",
	), nil
}

// Candidates implements the ports.Rule interface.
func (r *AptGetInstall) Candidates(_ context.Context, cmd command.Context) ([]correction.Candidate, error) {
	return []correction.Candidate{
		{CommandText: "sudo " + strings.TrimSpace(cmd.Raw())},
	}, nil
}
