package shell

import (
	"fmt"

	"github.com/haiphamcoder/thefuck-go/internal/core/domain/command"
	"github.com/haiphamcoder/thefuck-go/internal/core/ports"
)

// Capability bundles a shell dialect's tokenizer with its alias glue.
type Capability struct {
	kind command.ShellKind
	tok  command.Tokenizer
}

// ForKind returns the capability for a shell kind. Unknown kinds fall
// back to POSIX-style quoting, the most common dialect on the systems
// this tool targets.
func ForKind(kind command.ShellKind) ports.ShellCapability {
	tok := command.Tokenizer(PosixTokenizer{})
	if kind == command.KindPowerShell || kind == command.KindCmd {
		tok = PowerShellTokenizer{}
	}
	return &Capability{kind: kind, tok: tok}
}

// Kind implements the ports.ShellCapability interface.
func (c *Capability) Kind() command.ShellKind { return c.kind }

// Tokenize implements the command.Tokenizer interface.
func (c *Capability) Tokenize(raw string) ([]string, error) {
	return c.tok.Tokenize(raw)
}

/*
AliasSnippet returns the per-shell function definition that captures
the previous command from history, pipes it through the corrector and
re-executes the chosen fix. Printed by the `alias` command; the user
sources it from their shell configuration.
*/
func (c *Capability) AliasSnippet(aliasName string) string {
	switch c.kind {
	case command.KindZsh:
		return fmt.Sprintf(`%[1]s() {
    TF_PREVIOUS=$(fc -ln -1 | tail -n 1)
    TF_CMD=$(thefuck fix --shell zsh -- "$TF_PREVIOUS") && eval "$TF_CMD"
    test -n "$TF_CMD" && print -s "$TF_CMD"
}`, aliasName)
	case command.KindFish:
		return fmt.Sprintf(`function %[1]s
    set -l tf_previous $history[1]
    set -l tf_cmd (thefuck fix --shell fish -- "$tf_previous")
    if test -n "$tf_cmd"
        eval $tf_cmd
    end
end`, aliasName)
	case command.KindPowerShell, command.KindCmd:
		return fmt.Sprintf(`function %[1]s {
    $tfPrevious = (Get-History -Count 1).CommandLine
    $tfCmd = thefuck fix --shell powershell -- "$tfPrevious"
    if ($tfCmd) { Invoke-Expression $tfCmd }
}`, aliasName)
	default:
		// bash and POSIX-compatible shells
		return fmt.Sprintf(`%[1]s() {
    TF_PREVIOUS=$(fc -ln -1 | tail -n 1)
    TF_CMD=$(thefuck fix --shell bash -- "$TF_PREVIOUS") && eval "$TF_CMD"
    test -n "$TF_CMD" && history -s "$TF_CMD"
}`, aliasName)
	}
}
