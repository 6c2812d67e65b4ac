package ports

import "context"

// ExecutionResult captures one synchronous command run.
type ExecutionResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

/*
CommandExecutor runs a command line through a shell and captures its
result synchronously. It backs both the re-run that captures a failed
command's output and the run-command side effects.
*/
type CommandExecutor interface {
	Execute(ctx context.Context, shellName, commandLine string) (ExecutionResult, error)
}
