/*
Package rules provides the built-in correction rules. Each rule is a
small matcher+corrector over the failed-command context; priorities
follow the convention that lower values are preferred, with 1000 as
the neutral default.
*/
package rules

import (
	"context"
	"strings"

	"github.com/haiphamcoder/thefuck-go/internal/core/domain/command"
	"github.com/haiphamcoder/thefuck-go/internal/core/ports"
)

// base carries the static metadata shared by every built-in rule.
type base struct {
	name           string
	priority       int
	requiresOutput bool
}

func (b base) Name() string         { return b.name }
func (b base) Priority() int        { return b.priority }
func (b base) RequiresOutput() bool { return b.requiresOutput }

// Defaults returns the full built-in rule set, in registration order.
// The bootstrap registers these explicitly; nothing here is discovered
// dynamically.
func Defaults() []ports.Rule {
	return []ports.Rule{
		NewSudo(),
		NewGitPushSetUpstream(),
		NewGitNotCommand(),
		NewNoCommand(NewPathLister()),
		NewCdMkdir(),
		NewMkdirP(),
		NewAptGetInstall(),
		NewPythonCommand(),
		NewDry(),
	}
}

// outputContains reports whether the combined output contains any of
// the given markers, case-insensitively.
func outputContains(cmd command.Context, markers ...string) bool {
	out := strings.ToLower(cmd.Output())
	for _, m := range markers {
		if strings.Contains(out, strings.ToLower(m)) {
			return true
		}
	}
	return false
}

// quoteIfNeeded wraps a rebuilt token in single quotes when it contains
// whitespace, so candidate command text stays shell-safe.
func quoteIfNeeded(token string) string {
	if strings.ContainsAny(token, " \t") {
		return "'" + strings.ReplaceAll(token, "'", `'\''`) + "'"
	}
	return token
}

// ctxDone is a cooperative cancellation check for rules that loop over
// larger inputs.
func ctxDone(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return true
	default:
		return false
	}
}
