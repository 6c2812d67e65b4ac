package oscommand

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/haiphamcoder/thefuck-go/internal/core/domain/correction"
	"github.com/haiphamcoder/thefuck-go/internal/core/ports"
)

// EffectApplier executes side-effect descriptors against the real
// world: environment mutations in this process, auxiliary commands
// through the shell executor.
type EffectApplier struct {
	shellName string
	executor  ports.CommandExecutor
}

// NewEffectApplier creates an applier running auxiliary commands
// through the given executor under the named shell. It panics if
// executor is nil.
func NewEffectApplier(shellName string, executor ports.CommandExecutor) ports.EffectApplier {
	if executor == nil {
		panic("executor cannot be nil")
	}
	return &EffectApplier{shellName: shellName, executor: executor}
}

// Apply implements the ports.EffectApplier interface.
func (a *EffectApplier) Apply(ctx context.Context, effect correction.SideEffect) error {
	switch effect.Kind {
	case correction.EffectSetEnv:
		if effect.Name == "" {
			return fmt.Errorf("set-env effect with empty variable name")
		}
		if err := os.Setenv(effect.Name, effect.Value); err != nil {
			return fmt.Errorf("setting %s: %w", effect.Name, err)
		}
		return nil
	case correction.EffectRunCommand:
		if strings.TrimSpace(effect.Command) == "" {
			return fmt.Errorf("run-command effect with empty command")
		}
		result, err := a.executor.Execute(ctx, a.shellName, effect.Command)
		if err != nil {
			return fmt.Errorf("running %q: %w", effect.Command, err)
		}
		if result.ExitCode != 0 {
			return fmt.Errorf("running %q: exit %d: %s",
				effect.Command, result.ExitCode, strings.TrimSpace(result.Stderr))
		}
		return nil
	default:
		return fmt.Errorf("unsupported side effect kind %d", effect.Kind)
	}
}
