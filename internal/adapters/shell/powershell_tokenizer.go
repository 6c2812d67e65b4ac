package shell

import (
	"strings"
	"unicode"
)

// PowerShellTokenizer splits command lines under PowerShell quoting
// rules: backtick escapes, double and single quotes, and doubled
// quotes as the in-quote escape ("" inside "...", '' inside '...').
type PowerShellTokenizer struct{}

// Tokenize implements the command.Tokenizer interface.
func (PowerShellTokenizer) Tokenize(raw string) ([]string, error) {
	var tokens []string
	var current strings.Builder
	var quote rune // 0 when outside quotes
	escaped := false
	tokenStarted := false

	flush := func() {
		if tokenStarted {
			tokens = append(tokens, current.String())
			current.Reset()
			tokenStarted = false
		}
	}

	runes := []rune(raw)
	for i := 0; i < len(runes); i++ {
		r := runes[i]

		if escaped {
			current.WriteRune(r)
			tokenStarted = true
			escaped = false
			continue
		}

		switch {
		case r == '`' && quote != '\'':
			// Backtick escapes the next character outside single quotes.
			escaped = true
			tokenStarted = true
		case quote != 0 && r == quote:
			// A doubled quote inside a quoted span is a literal quote.
			if i+1 < len(runes) && runes[i+1] == quote {
				current.WriteRune(quote)
				tokenStarted = true
				i++
				continue
			}
			quote = 0
			tokenStarted = true
		case quote == 0 && (r == '"' || r == '\''):
			quote = r
			tokenStarted = true
		case quote == 0 && unicode.IsSpace(r):
			flush()
		default:
			current.WriteRune(r)
			tokenStarted = true
		}
	}

	if escaped {
		return nil, ErrTrailingEscape
	}
	if quote != 0 {
		return nil, ErrUnbalancedQuote
	}
	flush()
	return tokens, nil
}
