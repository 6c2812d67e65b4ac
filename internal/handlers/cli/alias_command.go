package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/haiphamcoder/thefuck-go/internal/adapters/shell"
	"github.com/haiphamcoder/thefuck-go/internal/core/domain/command"
)

const defaultAliasName = "fuck"

// NewAliasCommand creates the 'alias' subcommand.
func NewAliasCommand() *cobra.Command {
	var shellName string

	cmd := &cobra.Command{
		Use:   "alias [name]",
		Short: "Print the shell function that hooks the corrector into your shell.",
		Long: `Prints the per-shell glue snippet. Add its output to your shell
configuration, e.g.:

  eval "$(thefuck alias)"           # bash/zsh
  thefuck alias | source            # fish`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := defaultAliasName
			if len(args) == 1 && args[0] != "" {
				name = args[0]
			}
			if shellName == "" {
				shellName = filepath.Base(os.Getenv("SHELL"))
			}
			capability := shell.ForKind(command.KindFromString(shellName))
			fmt.Fprintln(cmd.OutOrStdout(), capability.AliasSnippet(name))
			return nil
		},
	}

	cmd.Flags().StringVar(&shellName, "shell", "", "Shell dialect to emit the snippet for; defaults to $SHELL.")

	return cmd
}
