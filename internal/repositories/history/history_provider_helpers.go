package history

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"regexp"
	"strings"
)

// zshExtendedPrefix strips zsh EXTENDED_HISTORY metadata
// (": 1700000000:0;command" -> "command").
var zshExtendedPrefix = regexp.MustCompile(`^:\s*\d+:\d+;`)

// toUserFriendlyPath converts an absolute path to a ~/-based path if
// it's under the user's home directory. If the home directory cannot
// be determined or the path is not under home, it returns the original
// path.
func toUserFriendlyPath(absPath string) string {
	usr, err := user.Current()
	if err != nil {
		return absPath
	}
	homeDir := usr.HomeDir

	if !strings.HasPrefix(absPath, homeDir) {
		return absPath
	}
	if absPath == homeDir {
		return "~"
	}

	relPath, err := filepath.Rel(homeDir, absPath)
	if err != nil {
		return absPath
	}
	return filepath.Join("~", relPath)
}

// findUserHistoryFile attempts to find a shell history file by
// checking the HISTFILE environment variable and common locations.
func findUserHistoryFile() (string, error) {
	usr, err := user.Current()
	if err != nil {
		return "", fmt.Errorf("getting current user: %w", err)
	}
	homeDir := usr.HomeDir

	if histFileEnvVal := os.Getenv("HISTFILE"); histFileEnvVal != "" {
		pathToCheck := histFileEnvVal
		if !filepath.IsAbs(pathToCheck) {
			pathToCheck = filepath.Join(homeDir, pathToCheck)
		}
		if _, err := os.Stat(pathToCheck); err == nil {
			return pathToCheck, nil
		}
	}

	potentialPaths := []string{
		filepath.Join(homeDir, ".zsh_history"),
		filepath.Join(homeDir, ".bash_history"),
		filepath.Join(homeDir, ".local", "share", "fish", "fish_history"),
	}
	for _, p := range potentialPaths {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	return "", fmt.Errorf("could not automatically find a shell history file; set the HISTFILE environment variable")
}

/*
newestForeignEntry walks the tailed history lines from newest to
oldest and returns the first real command: blank lines, zsh extended
metadata and invocations of the corrector itself are skipped.
*/
func newestForeignEntry(tail string) string {
	lines := strings.Split(tail, "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		entry := strings.TrimSpace(zshExtendedPrefix.ReplaceAllString(strings.TrimSpace(lines[i]), ""))
		if entry == "" {
			continue
		}
		program := strings.Fields(entry)[0]
		if program == "thefuck" || strings.HasSuffix(program, "/thefuck") {
			continue
		}
		return entry
	}
	return ""
}
