package rules

import (
	"context"
	"regexp"
	"strings"

	"github.com/haiphamcoder/thefuck-go/internal/core/domain/command"
	"github.com/haiphamcoder/thefuck-go/internal/core/domain/correction"
	"github.com/haiphamcoder/thefuck-go/internal/core/ports"
)

var (
	gitNotCommandPattern = regexp.MustCompile(`git: '([^']+)' is not a git command`)
	gitSimilarHeader     = regexp.MustCompile(`(?i)most similar commands? (?:is|are)`)
)

// GitNotCommand rewrites a mistyped git subcommand using the "most
// similar command" suggestions git prints. Produces one candidate per
// suggestion.
type GitNotCommand struct {
	base
}

// NewGitNotCommand creates the git_not_command rule.
func NewGitNotCommand() ports.Rule {
	return &GitNotCommand{base{name: "git_not_command", priority: 300, requiresOutput: true}}
}

// Matches implements the ports.Rule interface.
func (r *GitNotCommand) Matches(_ context.Context, cmd command.Context) (bool, error) {
	if cmd.Program() != "git" {
		return false, nil
	}
	return gitNotCommandPattern.MatchString(cmd.Output()), nil
}

// Candidates implements the ports.Rule interface.
func (r *GitNotCommand) Candidates(_ context.Context, cmd command.Context) ([]correction.Candidate, error) {
	out := cmd.Output()
	m := gitNotCommandPattern.FindStringSubmatch(out)
	if m == nil {
		return nil, nil
	}
	wrong := m[1]

	var candidates []correction.Candidate
	for _, suggestion := range parseGitSuggestions(out) {
		text := strings.Replace(cmd.Raw(), wrong, suggestion, 1)
		if text == cmd.Raw() {
			continue
		}
		candidates = append(candidates, correction.Candidate{CommandText: text})
	}
	return candidates, nil
}

// parseGitSuggestions reads the indented suggestion list git prints
// under its "The most similar command(s)" header.
func parseGitSuggestions(out string) []string {
	lines := strings.Split(out, "\n")
	var suggestions []string
	inList := false
	for _, line := range lines {
		if gitSimilarHeader.MatchString(line) {
			inList = true
			continue
		}
		if !inList {
			continue
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || !strings.HasPrefix(line, "\t") && !strings.HasPrefix(line, " ") {
			break
		}
		suggestions = append(suggestions, trimmed)
	}
	return suggestions
}
