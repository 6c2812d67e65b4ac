/*
Package command defines the core domain entity for a failed command
invocation: an immutable Context carrying the command text, its
tokenized view, exit status, captured output and environment snapshot.
*/
package command

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidContext indicates that a Context could not be constructed
// from the given inputs (empty command text, or tokenization failure).
var ErrInvalidContext = errors.New("invalid command context")

/*
Tokenizer splits a raw command line into tokens under the quoting rules
of a specific shell dialect. Implementations must be pure and
deterministic: identical input always yields identical tokens.
*/
type Tokenizer interface {
	Tokenize(raw string) ([]string, error)
}

/*
Context is an immutable snapshot of one failed command invocation.
It is constructed once per correction request and shared read-only
across concurrently evaluated rules; all accessors return copies of
mutable data.
*/
type Context struct {
	raw      string
	program  string
	args     []string
	exitCode int
	stdout   string
	stderr   string
	kind     ShellKind
	env      map[string]string
}

// NewContext builds a Context from a failed invocation. The raw text is
// tokenized with the supplied shell tokenizer; an empty raw text or a
// tokenization failure yields an error wrapping ErrInvalidContext.
func NewContext(
	raw string,
	exitCode int,
	stdout, stderr string,
	kind ShellKind,
	env map[string]string,
	tok Tokenizer,
) (Context, error) {
	if strings.TrimSpace(raw) == "" {
		return Context{}, fmt.Errorf("%w: command text is empty", ErrInvalidContext)
	}
	if tok == nil {
		return Context{}, fmt.Errorf("%w: no tokenizer supplied", ErrInvalidContext)
	}

	tokens, err := tok.Tokenize(strings.TrimSpace(raw))
	if err != nil {
		return Context{}, fmt.Errorf("%w: tokenizing %q: %v", ErrInvalidContext, raw, err)
	}
	if len(tokens) == 0 {
		return Context{}, fmt.Errorf("%w: command text has no tokens", ErrInvalidContext)
	}

	// Defensive copy: the caller keeps ownership of its map.
	envCopy := make(map[string]string, len(env))
	for k, v := range env {
		envCopy[k] = v
	}

	return Context{
		raw:      raw,
		program:  tokens[0],
		args:     tokens[1:],
		exitCode: exitCode,
		stdout:   stdout,
		stderr:   stderr,
		kind:     kind,
		env:      envCopy,
	}, nil
}

// Raw returns the exact text the user typed.
func (c Context) Raw() string { return c.raw }

// Program returns the first token of the command, normally the
// executable name.
func (c Context) Program() string { return c.program }

// Arguments returns a copy of the tokens following the program name.
func (c Context) Arguments() []string {
	out := make([]string, len(c.args))
	copy(out, c.args)
	return out
}

// Argument returns the i-th argument, or "" and false when i is out of
// range.
func (c Context) Argument(i int) (string, bool) {
	if i < 0 || i >= len(c.args) {
		return "", false
	}
	return c.args[i], true
}

// ExitCode returns the exit status of the failed run.
func (c Context) ExitCode() int { return c.exitCode }

// Stdout returns the captured standard output, possibly truncated by
// the caller.
func (c Context) Stdout() string { return c.stdout }

// Stderr returns the captured standard error, possibly truncated by
// the caller.
func (c Context) Stderr() string { return c.stderr }

// Output returns stderr followed by stdout as one searchable blob.
// Most rules match against diagnostics regardless of which stream the
// program wrote them to.
func (c Context) Output() string {
	switch {
	case c.stderr == "":
		return c.stdout
	case c.stdout == "":
		return c.stderr
	default:
		return c.stderr + "\n" + c.stdout
	}
}

// HasOutput reports whether either captured stream is non-empty.
func (c Context) HasOutput() bool {
	return c.stdout != "" || c.stderr != ""
}

// Kind returns the shell dialect tag.
func (c Context) Kind() ShellKind { return c.kind }

// Env looks up one variable from the environment snapshot.
func (c Context) Env(name string) (string, bool) {
	v, ok := c.env[name]
	return v, ok
}

// EnvSnapshot returns a copy of the environment snapshot.
func (c Context) EnvSnapshot() map[string]string {
	out := make(map[string]string, len(c.env))
	for k, v := range c.env {
		out[k] = v
	}
	return out
}

// ContainsArgument reports whether any argument equals arg,
// case-insensitively.
func (c Context) ContainsArgument(arg string) bool {
	for _, a := range c.args {
		if strings.EqualFold(a, arg) {
			return true
		}
	}
	return false
}
