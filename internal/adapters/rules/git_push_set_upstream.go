package rules

import (
	"context"
	"regexp"
	"strings"

	"github.com/haiphamcoder/thefuck-go/internal/core/domain/command"
	"github.com/haiphamcoder/thefuck-go/internal/core/domain/correction"
	"github.com/haiphamcoder/thefuck-go/internal/core/ports"
)

// setUpstreamPattern extracts the push command git itself suggests in
// its "no upstream branch" hint.
var setUpstreamPattern = regexp.MustCompile(`git push --set-upstream \S+ \S+`)

// GitPushSetUpstream turns git's "no upstream branch" refusal into the
// push command git suggests in its own hint.
type GitPushSetUpstream struct {
	base
}

// NewGitPushSetUpstream creates the git_push_set_upstream rule.
func NewGitPushSetUpstream() ports.Rule {
	return &GitPushSetUpstream{base{name: "git_push_set_upstream", priority: 200, requiresOutput: true}}
}

// Matches implements the ports.Rule interface.
func (r *GitPushSetUpstream) Matches(_ context.Context, cmd command.Context) (bool, error) {
	if cmd.Program() != "git" || !cmd.ContainsArgument("push") {
		return false, nil
	}
	return strings.Contains(cmd.Output(), "--set-upstream"), nil
}

// Candidates implements the ports.Rule interface.
func (r *GitPushSetUpstream) Candidates(_ context.Context, cmd command.Context) ([]correction.Candidate, error) {
	suggested := setUpstreamPattern.FindString(cmd.Output())
	if suggested == "" {
		return nil, nil
	}

	// Carry over any extra push arguments the user typed beyond the
	// bare "git push" (e.g. --force), appended after the suggestion.
	var extras []string
	for _, a := range cmd.Arguments() {
		if a != "push" {
			extras = append(extras, a)
		}
	}

	text := suggested
	if len(extras) > 0 {
		text += " " + strings.Join(extras, " ")
	}
	return []correction.Candidate{{CommandText: text}}, nil
}
