package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [culture-id]",
		Short: "Load the weather analysis for one culture, or all of them",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			force, _ := cmd.Flags().GetBool("force")

			if len(args) == 0 {
				return c.app.AnalyzeAll(cmd.Context(), force)
			}
			id, err := identityArg(args[0])
			if err != nil {
				return err
			}
			return c.app.Analyze(cmd.Context(), id, force)
		},
	}
	cmd.Flags().BoolP("force", "f", false, "Refresh from the server even when a stored analysis exists")
	return cmd
}
