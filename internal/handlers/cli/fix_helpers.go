package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/haiphamcoder/thefuck-go/internal/adapters/shell"
	"github.com/haiphamcoder/thefuck-go/internal/core/domain/command"
	"github.com/haiphamcoder/thefuck-go/internal/core/ports"
)

type fixFlags struct {
	autoApply bool
	shellName string
	exitCode  int
	stdout    string
	stderr    string
	captured  bool // exit-code/stdout/stderr explicitly provided
}

func parseFixFlags(cmd *cobra.Command) (fixFlags, error) {
	autoApply, _ := cmd.Flags().GetBool("yes")
	shellName, _ := cmd.Flags().GetString("shell")
	exitCode, _ := cmd.Flags().GetInt("exit-code")
	stdout, _ := cmd.Flags().GetString("stdout")
	stderr, _ := cmd.Flags().GetString("stderr")

	if shellName == "" {
		shellName = filepath.Base(os.Getenv("SHELL"))
	}

	captured := cmd.Flags().Changed("exit-code") ||
		cmd.Flags().Changed("stdout") ||
		cmd.Flags().Changed("stderr")

	return fixFlags{
		autoApply: autoApply,
		shellName: shellName,
		exitCode:  exitCode,
		stdout:    stdout,
		stderr:    stderr,
		captured:  captured,
	}, nil
}

// capabilityFor resolves the shell capability from a shell name.
func capabilityFor(shellName string) ports.ShellCapability {
	return shell.ForKind(command.KindFromString(shellName))
}

/*
resolveFailedCommand determines the command to correct: explicit
trailing arguments win, then the TF_HISTORY variable exported by the
shell glue, then the newest shell history entry.
*/
func resolveFailedCommand(args []string, deps Dependencies) (string, error) {
	if len(args) > 0 {
		return strings.TrimSpace(strings.Join(args, " ")), nil
	}
	if fromEnv := strings.TrimSpace(os.Getenv("TF_HISTORY")); fromEnv != "" {
		return fromEnv, nil
	}
	if deps.History == nil {
		return "", fmt.Errorf("no command given and history access is unavailable")
	}
	last, err := deps.History.LastCommand()
	if err != nil {
		return "", fmt.Errorf("could not read the previous command (%s): %w",
			deps.History.GetSourceIdentifier(), err)
	}
	return last, nil
}

type capturedRun struct {
	exitCode int
	stdout   string
	stderr   string
}

/*
resolveCapture produces the failed run's output. Explicit flag values
and TF_* variables exported by the shell glue take precedence; without
them the command is re-run once through the shell to observe its
output, the same capture the original invocation would have produced.
*/
func resolveCapture(
	ctx context.Context,
	raw string,
	flags fixFlags,
	kind command.ShellKind,
	deps Dependencies,
) (capturedRun, error) {
	if flags.captured {
		return capturedRun{exitCode: flags.exitCode, stdout: flags.stdout, stderr: flags.stderr}, nil
	}

	if out, ok := os.LookupEnv("TF_STDERR"); ok {
		run := capturedRun{stderr: out, stdout: os.Getenv("TF_STDOUT")}
		if n, ok := envExitCode(); ok {
			run.exitCode = n
		}
		return run, nil
	}

	if deps.Executor == nil {
		return capturedRun{}, fmt.Errorf("no captured output and no executor to re-run the command")
	}
	result, err := deps.Executor.Execute(ctx, kind.String(), raw)
	if err != nil {
		return capturedRun{}, fmt.Errorf("re-running failed command for capture: %w", err)
	}
	return capturedRun{exitCode: result.ExitCode, stdout: result.Stdout, stderr: result.Stderr}, nil
}

func envExitCode() (int, bool) {
	v := os.Getenv("TF_EXIT_CODE")
	if v == "" {
		return 0, false
	}
	var n int
	if _, err := fmt.Sscanf(v, "%d", &n); err != nil {
		return 0, false
	}
	return n, true
}
