package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newBootstrapCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bootstrap",
		Short: "Clone the upstream checkout and regenerate per-project configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Bootstrap(cmd.Context())
		},
	}
}
