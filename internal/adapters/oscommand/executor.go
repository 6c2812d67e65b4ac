package oscommand

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/haiphamcoder/thefuck-go/internal/core/ports"
)

// OSCommandExecutor implements the CommandExecutor interface using the
// operating system's shell.
type OSCommandExecutor struct{}

// NewOSCommandExecutor creates a new OSCommandExecutor.
func NewOSCommandExecutor() ports.CommandExecutor {
	return &OSCommandExecutor{}
}

// Execute runs the given command line in a shell and captures stdout,
// stderr and the exit code. A non-zero exit is not an error; only a
// failure to start the shell at all is. It attempts to use the
// system's default SHELL, falling back to common shells if not set.
func (e *OSCommandExecutor) Execute(ctx context.Context, shellName, commandLine string) (ports.ExecutionResult, error) {
	shellExecPath := os.Getenv("SHELL")
	if shellExecPath == "" {
		switch shellName {
		case "bash":
			shellExecPath = "/bin/bash"
		case "zsh":
			shellExecPath = "/bin/zsh"
		default:
			shellExecPath = "/bin/sh"
		}
	}

	cmd := exec.CommandContext(ctx, shellExecPath, "-c", commandLine)
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	err := cmd.Run()
	result := ports.ExecutionResult{
		Stdout: outBuf.String(),
		Stderr: errBuf.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// The command ran and failed; that is exactly the outcome
			// the caller wants to inspect.
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		return result, fmt.Errorf("executing command with shell '%s': %w", shellExecPath, err)
	}
	return result, nil
}
