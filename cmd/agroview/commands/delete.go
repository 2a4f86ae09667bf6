package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <culture-id>",
		Short: "Delete a culture",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := identityArg(args[0])
			if err != nil {
				return err
			}
			msg, err := c.app.DeleteCulture(cmd.Context(), id)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), msg)
			return nil
		},
	}
}
