/*
Package shell implements the per-dialect shell capabilities: quote-aware
tokenization and the glue snippets that install the corrector as a shell
function.
*/
package shell

import (
	"errors"
	"strings"
	"unicode"
)

// Tokenization failure modes. Context construction wraps these under
// the invalid-context error.
var (
	ErrUnbalancedQuote = errors.New("unbalanced quote")
	ErrTrailingEscape  = errors.New("trailing escape character")
)

// PosixTokenizer splits command lines under POSIX-style quoting rules:
// double quotes, single quotes and backslash escapes. It is a basic
// lexer, not a full shell grammar; metacharacters like | and ; stay
// inside the token they appear in.
type PosixTokenizer struct{}

// Tokenize implements the command.Tokenizer interface.
func (PosixTokenizer) Tokenize(raw string) ([]string, error) {
	var tokens []string
	var current strings.Builder
	inDouble := false
	inSingle := false
	escaped := false
	tokenStarted := false

	flush := func() {
		if tokenStarted {
			tokens = append(tokens, current.String())
			current.Reset()
			tokenStarted = false
		}
	}

	for _, r := range raw {
		if escaped {
			current.WriteRune(r)
			tokenStarted = true
			escaped = false
			continue
		}

		switch {
		case r == '\\' && !inSingle:
			// Backslash is literal inside single quotes.
			escaped = true
			tokenStarted = true
		case r == '"' && !inSingle:
			inDouble = !inDouble
			tokenStarted = true
		case r == '\'' && !inDouble:
			inSingle = !inSingle
			tokenStarted = true
		case unicode.IsSpace(r) && !inDouble && !inSingle:
			flush()
		default:
			current.WriteRune(r)
			tokenStarted = true
		}
	}

	if escaped {
		return nil, ErrTrailingEscape
	}
	if inDouble || inSingle {
		return nil, ErrUnbalancedQuote
	}
	flush()
	return tokens, nil
}
