package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func (c *CLI) newDeploymentsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deployments",
		Short: "List recorded deployments of a network",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			network := c.network(cmd)
			statuses, err := c.app.Deployments(c.GetConfigPath(), network)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(statuses) == 0 {
				_, _ = fmt.Fprintf(out, "no deployments recorded on %s\n", network)
				return nil
			}

			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "CONTRACT\tADDRESS\tBLOCK\tGAS\tDEPLOYED\tARTIFACT")
			for _, s := range statuses {
				deployed := "-"
				if !s.Timestamp.IsZero() {
					deployed = humanize.Time(s.Timestamp)
				}
				_, _ = fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\t%s\n",
					s.Name, s.Address, s.BlockNumber, humanize.Comma(int64(s.GasUsed)), deployed, s.Drift) //nolint:gosec // gas fits in int64
			}
			return w.Flush()
		},
	}
	c.addNetworkFlag(cmd)
	return cmd
}
