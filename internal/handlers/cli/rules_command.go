package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/haiphamcoder/thefuck-go/internal/core/ports"
	"github.com/haiphamcoder/thefuck-go/internal/handlers/ui"
)

// NewRulesCommand creates the 'rules' subcommand.
func NewRulesCommand(registry ports.RuleRegistry) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List registered correction rules.",
		Long:  `Displays every registered rule with its priority and enabled state.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRulesCmd(cmd, args, registry)
		},
	}
	return cmd
}

func runRulesCmd(
	_ *cobra.Command,
	_ []string,
	registry ports.RuleRegistry,
) error {
	statuses := registry.All()
	if len(statuses) == 0 {
		fmt.Println(ui.InfoColor("No rules registered."))
		return nil
	}

	fmt.Println(ui.HeaderColor("Registered rules (lower priority value = preferred):"))

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Rule", "Priority", "Enabled", "Needs Output"})
	table.SetBorder(true)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
	})

	for _, s := range statuses {
		table.Append([]string{
			s.Name,
			strconv.Itoa(s.Priority),
			yesNo(s.Enabled),
			yesNo(s.RequiresOutput),
		})
	}
	table.Render()
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
