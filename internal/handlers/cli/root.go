package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/haiphamcoder/thefuck-go/internal/core/ports"
	"github.com/haiphamcoder/thefuck-go/internal/repositories/settings"
)

/*
Dependencies bundles the collaborators the CLI handlers drive. History
may be nil; the fix command then requires the failed command on the
command line.
*/
type Dependencies struct {
	Corrector ports.CorrectionService
	Registry  ports.RuleRegistry
	Executor  ports.CommandExecutor
	Applier   ports.EffectApplier
	History   ports.HistoryProvider
	Settings  settings.Settings
}

func NewRootCommand(version string, deps Dependencies) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "thefuck",
		Short: "thefuck corrects your previous console command.",
		Long: `thefuck inspects a failed shell command, its exit status and captured
output, and proposes ranked, syntactically valid replacements.`,
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if deps.Corrector == nil && cmd.Name() == "fix" {
				return fmt.Errorf("correction service not initialized for command %s", cmd.Name())
			}
			if deps.Registry == nil && cmd.Name() == "rules" {
				return fmt.Errorf("rule registry not initialized for command %s", cmd.Name())
			}
			return nil
		},
	}

	rootCmd.AddCommand(NewFixCommand(deps))
	rootCmd.AddCommand(NewRulesCommand(deps.Registry))
	rootCmd.AddCommand(NewAliasCommand())

	return rootCmd
}
