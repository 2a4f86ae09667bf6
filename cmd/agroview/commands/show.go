package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.farmtech.dev/agroview/internal/core/domain"
)

func (c *CLI) newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <culture-id>",
		Short: "Show a single culture",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := identityArg(args[0])
			if err != nil {
				return err
			}

			cu, err := c.app.ShowCulture(cmd.Context(), id)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "%s  %s\n", cu.ID, cu.Type.DisplayName())
			_, _ = fmt.Fprintf(out, "  area:     %.2f ha\n", cu.Area)
			_, _ = fmt.Fprintf(out, "  spacing:  %.2f m\n", cu.Spacing)
			if cu.PlantingLines > 0 {
				_, _ = fmt.Fprintf(out, "  lines:    %.1f\n", cu.PlantingLines)
			}
			if cu.Variety != "" {
				_, _ = fmt.Fprintf(out, "  variety:  %s\n", cu.Variety)
			}
			if cu.Cycle != "" {
				_, _ = fmt.Fprintf(out, "  cycle:    %s\n", cu.Cycle)
			}
			if cu.Type == domain.CultureCana {
				_, _ = fmt.Fprintf(out, "  irrigated: %t\n", cu.Irrigation)
			}
			return nil
		},
	}
}
