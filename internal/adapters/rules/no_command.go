package rules

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/haiphamcoder/thefuck-go/internal/core/domain/command"
	"github.com/haiphamcoder/thefuck-go/internal/core/domain/correction"
	"github.com/haiphamcoder/thefuck-go/internal/core/ports"
)

// exit code the shell reports for an unresolvable command name.
const exitCommandNotFound = 127

// maxProgramDistance bounds how far a typo may be from a real
// executable to still be proposed.
const maxProgramDistance = 2

// ExecutableLister enumerates candidate program names. The production
// implementation walks the directories of the PATH value captured in
// the environment snapshot; tests substitute a fixed list.
type ExecutableLister interface {
	List(ctx context.Context, pathValue string) []string
}

// PathLister lists executables from the directories of a PATH string.
type PathLister struct{}

// NewPathLister creates a PathLister.
func NewPathLister() ExecutableLister {
	return &PathLister{}
}

// List implements the ExecutableLister interface. Unreadable
// directories are skipped; the walk stops early on cancellation.
func (PathLister) List(ctx context.Context, pathValue string) []string {
	seen := make(map[string]struct{})
	var names []string
	for _, dir := range filepath.SplitList(pathValue) {
		if ctxDone(ctx) {
			break
		}
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			name := entry.Name()
			if _, dup := seen[name]; !dup {
				seen[name] = struct{}{}
				names = append(names, name)
			}
		}
	}
	return names
}

// NoCommand proposes the nearest executable names when the shell could
// not resolve the program at all.
type NoCommand struct {
	base
	lister ExecutableLister
}

// NewNoCommand creates the no_command rule. It panics if lister is nil.
func NewNoCommand(lister ExecutableLister) ports.Rule {
	if lister == nil {
		panic("lister cannot be nil")
	}
	return &NoCommand{
		base:   base{name: "no_command", priority: 400, requiresOutput: true},
		lister: lister,
	}
}

// Matches implements the ports.Rule interface.
func (r *NoCommand) Matches(_ context.Context, cmd command.Context) (bool, error) {
	if cmd.ExitCode() == exitCommandNotFound {
		return true, nil
	}
	return outputContains(cmd, "command not found", "not recognized as the name of a cmdlet"), nil
}

// Candidates implements the ports.Rule interface. One candidate per
// executable within edit distance 2 of the typed program, nearest
// first.
func (r *NoCommand) Candidates(ctx context.Context, cmd command.Context) ([]correction.Candidate, error) {
	pathValue, ok := cmd.Env("PATH")
	if !ok || pathValue == "" {
		return nil, nil
	}

	program := cmd.Program()
	type match struct {
		name string
		dist int
	}
	var matches []match
	for _, name := range r.lister.List(ctx, pathValue) {
		if ctxDone(ctx) {
			return nil, ctx.Err()
		}
		if name == program {
			continue
		}
		d := levenshtein.ComputeDistance(program, name)
		if d <= maxProgramDistance {
			matches = append(matches, match{name: name, dist: d})
		}
	}

	// Nearest first; equal distances alphabetical for determinism.
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].dist != matches[j].dist {
			return matches[i].dist < matches[j].dist
		}
		return matches[i].name < matches[j].name
	})

	rest := ""
	if idx := strings.Index(cmd.Raw(), program); idx >= 0 {
		rest = cmd.Raw()[idx+len(program):]
	}

	var candidates []correction.Candidate
	for _, m := range matches {
		candidates = append(candidates, correction.Candidate{CommandText: m.name + rest})
	}
	return candidates, nil
}
