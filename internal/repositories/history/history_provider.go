/*
Package history reads the user's shell history file to recover the
command that just failed, for invocations where the shell glue did not
pass it explicitly.
*/
package history

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/haiphamcoder/thefuck-go/internal/core/ports"
)

/*
HistoryProvider provides the most recent entry of a file-based shell
history. It implements the ports.HistoryProvider interface.
*/
type HistoryProvider struct {
	Shell            string
	HistoryFile      string // absolute path
	cmdExecutor      ports.CommandExecutor
	sourceIdentifier string
}

// NewHistoryProvider creates a file-based history provider. The
// history file location is resolved once at construction; a missing
// file is not fatal, LastCommand will report it when actually needed.
func NewHistoryProvider(cmdExecutor ports.CommandExecutor, fileFinder ports.HistoryFileFinder) (ports.HistoryProvider, error) {
	if cmdExecutor == nil {
		return nil, fmt.Errorf("command executor cannot be nil")
	}

	shellPath := os.Getenv("SHELL")
	if shellPath == "" {
		return nil, fmt.Errorf("SHELL environment variable not set")
	}
	shellName := strings.ToLower(filepath.Base(shellPath))

	histFilePath, err := fileFinder.Find()
	if err != nil {
		return &HistoryProvider{
			Shell:            shellName,
			cmdExecutor:      cmdExecutor,
			sourceIdentifier: fmt.Sprintf("Shell: %s (history file not found or configured)", shellName),
		}, nil
	}

	return &HistoryProvider{
		HistoryFile:      histFilePath,
		Shell:            shellName,
		cmdExecutor:      cmdExecutor,
		sourceIdentifier: fmt.Sprintf("File: %s", toUserFriendlyPath(histFilePath)),
	}, nil
}

// GetSourceIdentifier implements the ports.HistoryProvider interface.
func (hp *HistoryProvider) GetSourceIdentifier() string {
	return hp.sourceIdentifier
}

/*
LastCommand implements the ports.HistoryProvider interface. It tails
the history file through the shell executor and returns the newest
entry that is not the corrector invocation itself.
*/
func (hp *HistoryProvider) LastCommand() (string, error) {
	if hp.HistoryFile == "" {
		return "", fmt.Errorf("history file not found or configured for shell %s", hp.Shell)
	}

	// A handful of trailing lines is enough to skip past our own
	// invocation and any blank entries.
	pipeline := fmt.Sprintf("tail -n 10 '%s'", hp.HistoryFile)
	result, err := hp.cmdExecutor.Execute(context.Background(), hp.Shell, pipeline)
	if err != nil {
		return "", fmt.Errorf("reading history tail: %w", err)
	}
	if result.ExitCode != 0 {
		return "", fmt.Errorf("reading history tail: exit %d: %s", result.ExitCode, strings.TrimSpace(result.Stderr))
	}

	entry := newestForeignEntry(result.Stdout)
	if entry == "" {
		return "", fmt.Errorf("no usable entry in history file %s", toUserFriendlyPath(hp.HistoryFile))
	}
	return entry, nil
}
