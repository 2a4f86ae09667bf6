package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newLinesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lines <culture-id>",
		Short: "Calculate the planting lines for a culture",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := identityArg(args[0])
			if err != nil {
				return err
			}
			lines, err := c.app.CalculateLines(cmd.Context(), id)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: %.1f planting lines\n", id, lines)
			return nil
		},
	}
}
