package testutil

import (
	"strings"

	"github.com/haiphamcoder/thefuck-go/internal/core/domain/command"
)

// MockTokenizer is a mock implementation of the command.Tokenizer
// interface. The default behavior splits on whitespace.
type MockTokenizer struct {
	TokenizeFunc func(raw string) ([]string, error)
}

// Tokenize mocks the Tokenize method.
func (m *MockTokenizer) Tokenize(raw string) ([]string, error) {
	if m.TokenizeFunc != nil {
		return m.TokenizeFunc(raw)
	}
	return strings.Fields(raw), nil
}

// Ensure MockTokenizer implements the command.Tokenizer interface.
var _ command.Tokenizer = (*MockTokenizer)(nil)
