package testutil

import (
	"testing"

	"github.com/haiphamcoder/thefuck-go/internal/core/domain/command"
)

// NewContext builds a whitespace-tokenized bash Context for tests and
// fails the test on construction errors.
func NewContext(t *testing.T, raw string, exitCode int, stdout, stderr string, env map[string]string) command.Context {
	t.Helper()
	ctx, err := command.NewContext(raw, exitCode, stdout, stderr, command.KindBash, env, &MockTokenizer{})
	if err != nil {
		t.Fatalf("NewContext(%q) returned unexpected error: %v", raw, err)
	}
	return ctx
}
