package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/haiphamcoder/thefuck-go/internal/core/domain/command"
	"github.com/haiphamcoder/thefuck-go/internal/core/domain/correction"
	"github.com/haiphamcoder/thefuck-go/internal/core/services/selection"
	"github.com/haiphamcoder/thefuck-go/internal/handlers/ui"
)

// NewFixCommand creates the 'fix' subcommand.
func NewFixCommand(deps Dependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fix [flags] -- [command...]",
		Short: "Propose corrections for the previous failed command.",
		Long: `Evaluates the failed command against the enabled rules and prints the
chosen correction to stdout for the shell function to re-execute.
When no command is given, the previous entry of the shell history is used.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFixCmd(cmd, args, deps)
		},
	}

	cmd.Flags().BoolP("yes", "y", false, "Apply the top candidate without confirmation.")
	cmd.Flags().String("shell", "", "Shell dialect (bash, zsh, fish, powershell, cmd); defaults to $SHELL.")
	cmd.Flags().Int("exit-code", 0, "Exit code of the failed command (skips the capture re-run).")
	cmd.Flags().String("stdout", "", "Captured stdout of the failed command.")
	cmd.Flags().String("stderr", "", "Captured stderr of the failed command.")

	return cmd
}

func runFixCmd(cmd *cobra.Command, args []string, deps Dependencies) error {
	flags, err := parseFixFlags(cmd)
	if err != nil {
		return err
	}

	raw, err := resolveFailedCommand(args, deps)
	if err != nil {
		return err
	}

	capability := capabilityFor(flags.shellName)

	capture, err := resolveCapture(cmd.Context(), raw, flags, capability.Kind(), deps)
	if err != nil {
		return err
	}

	cmdCtx, err := command.NewContext(
		raw,
		capture.exitCode,
		capture.stdout,
		capture.stderr,
		capability.Kind(),
		environSnapshot(),
		capability,
	)
	if err != nil {
		return fmt.Errorf("could not build command context: %w", err)
	}

	set, err := deps.Corrector.Correct(cmd.Context(), cmdCtx)
	if err != nil {
		return fmt.Errorf("correction pipeline failed: %w", err)
	}

	if set.Empty() {
		// An empty set is a valid outcome, not an error.
		fmt.Fprintln(os.Stderr, ui.InfoColor("No fucks given: no rule matched this command."))
		return nil
	}

	index := 0
	if !flags.autoApply && deps.Settings.Confirm() {
		index, err = ui.PickCandidate(cmd.InOrStdin(), os.Stderr, set)
		if errors.Is(err, ui.ErrPickerCancelled) {
			session := selection.NewSession(set, deps.Applier)
			session.Reject()
			return nil
		}
		if err != nil {
			return err
		}
	}

	session := selection.NewSession(set, deps.Applier)
	outcome := session.Select(cmd.Context(), index)
	return reportOutcome(cmd, outcome)
}

// reportOutcome prints the corrected command to stdout and any
// side-effect failure to stderr. Stdout carries only the command text,
// ready for the shell function to eval.
func reportOutcome(cmd *cobra.Command, outcome correction.Outcome) error {
	switch outcome.State {
	case correction.StateApplied:
		fmt.Fprintln(cmd.OutOrStdout(), outcome.FinalCommand)
		return nil
	case correction.StatePartiallyApplied:
		fmt.Fprintln(os.Stderr, ui.WarningColor(fmt.Sprintf(
			"Side effect failed (%d applied before it): %v",
			len(outcome.AppliedEffects), outcome.Failure)))
		fmt.Fprintln(cmd.OutOrStdout(), outcome.FinalCommand)
		return nil
	case correction.StateRejected:
		fmt.Fprintln(os.Stderr, ui.InfoColor("No correction applied."))
		return nil
	default:
		return fmt.Errorf("unexpected selection state %s", outcome.State)
	}
}

// environSnapshot materializes the process environment as the
// read-only snapshot the context carries.
func environSnapshot() map[string]string {
	env := make(map[string]string)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			env[k] = v
		}
	}
	return env
}
