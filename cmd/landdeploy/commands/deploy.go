package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newDeployCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Run the deployment tasks against a network",
		Long: "Run the registered deployment tasks in dependency order.\n" +
			"With --tags only the tasks carrying one of the tags, and their dependencies, are run.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tags, _ := cmd.Flags().GetStringSlice("tags")
			return c.app.Deploy(cmd.Context(), c.GetConfigPath(), c.network(cmd), tags)
		},
	}
	c.addNetworkFlag(cmd)
	cmd.Flags().StringSliceP("tags", "t", nil, "Only run tasks with one of these tags")
	return cmd
}
