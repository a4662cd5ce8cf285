package commands

import "github.com/spf13/cobra"

func (c *CLI) newDistroCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "distro",
		Short: "Print the distribution packages are applied for",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Distro(cmd.Context(), c.opts, cmd.OutOrStdout())
		},
	}
}
