package ports

import "github.com/haiphamcoder/thefuck-go/internal/core/domain/command"

/*
ShellCapability is the small per-dialect surface the engine may query
through a Context's shell kind: tokenization under the dialect's
quoting rules, and the glue snippet that installs the corrector in that
shell. The core never assumes a specific shell's full feature set
beyond this contract.
*/
type ShellCapability interface {
	command.Tokenizer

	// Kind returns the dialect this capability implements.
	Kind() command.ShellKind

	// AliasSnippet returns the shell function/alias definition that
	// captures the previous command and pipes it through the corrector
	// binary under the given alias name.
	AliasSnippet(aliasName string) string
}
