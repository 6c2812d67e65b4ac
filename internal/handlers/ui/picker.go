/*
Package ui renders the candidate picker and the color palette for the
CLI handlers. It consumes the core's output contract only; the
selection policy itself stays with the caller.
*/
package ui

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/haiphamcoder/thefuck-go/internal/core/domain/correction"
)

// ErrPickerCancelled indicates the user declined every candidate.
var ErrPickerCancelled = fmt.Errorf("selection cancelled by user")

/*
PickCandidate prints the ranked candidates to out, numbered from 1,
and reads the chosen number from in. Empty input selects the top
candidate; "n", "none" or "q" cancels. Returns the zero-based index.
*/
func PickCandidate(in io.Reader, out io.Writer, set correction.RankedSet) (int, error) {
	fmt.Fprintln(out, HeaderColor("Did you mean:"))
	for i, c := range set.Candidates() {
		fmt.Fprintf(out, "  %d. %s %s\n",
			i+1,
			CandidateColor(c.CommandText),
			SourceRuleColor(fmt.Sprintf("[%s %.2f]", c.SourceRule, c.Score)))
		for _, effect := range c.SideEffects {
			fmt.Fprintf(out, "     %s\n", SideEffectColor(describeEffect(effect)))
		}
	}
	fmt.Fprint(out, PromptColor(fmt.Sprintf("Select [1-%d], Enter for 1, n to cancel: ", set.Len())))

	reader := bufio.NewReader(in)
	input, err := reader.ReadString('\n')
	if err != nil && input == "" {
		return 0, fmt.Errorf("failed to read selection: %w", err)
	}

	choice := strings.ToLower(strings.TrimSpace(input))
	switch choice {
	case "":
		return 0, nil
	case "n", "none", "q", "quit":
		return 0, ErrPickerCancelled
	}

	num, err := strconv.Atoi(choice)
	if err != nil || num < 1 || num > set.Len() {
		return 0, fmt.Errorf("invalid selection %q (expected 1-%d)", choice, set.Len())
	}
	return num - 1, nil
}

func describeEffect(effect correction.SideEffect) string {
	switch effect.Kind {
	case correction.EffectSetEnv:
		return fmt.Sprintf("+ set %s=%s", effect.Name, effect.Value)
	case correction.EffectRunCommand:
		return fmt.Sprintf("+ run %s", effect.Command)
	default:
		return "+ unknown effect"
	}
}
