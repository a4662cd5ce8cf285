package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/ecfg/internal/app"
)

func (c *CLI) newRunCmd() *cobra.Command {
	var (
		index int
		all   bool
	)

	cmd := &cobra.Command{
		Use:   "run [tasks...]",
		Short: "Run tasks without the dashboard",
		Long: "Run the named tasks in the given order, the task at --index, or every task.\n" +
			"With no selection every task runs. The run stops at the first failing task.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			run := app.RunOptions{Names: args, All: all}
			if cmd.Flags().Changed("index") {
				run.Index = &index
			}
			return c.app.Run(cmd.Context(), c.opts, run)
		},
	}
	cmd.Flags().IntVarP(&index, "index", "i", 0, "Run the task at this position of the task list")
	cmd.Flags().BoolVarP(&all, "all", "a", false, "Run every task in declared order")
	cmd.MarkFlagsMutuallyExclusive("index", "all")
	return cmd
}
