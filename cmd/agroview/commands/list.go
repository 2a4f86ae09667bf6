package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.farmtech.dev/agroview/internal/core/domain"
)

func (c *CLI) newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the registered cultures",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			all, _ := cmd.Flags().GetBool("all")

			cultures, err := c.app.ListCultures(cmd.Context(), all)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(cultures) == 0 {
				_, _ = fmt.Fprintln(out, "no cultures registered")
				return nil
			}

			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "ID\tTYPE\tAREA (ha)\tSPACING (m)\tLINES\tDETAILS")
			for _, cu := range cultures {
				details := cu.Variety
				if cu.Type == domain.CultureCana {
					details = cu.Cycle
					if cu.Irrigation {
						details += " (irrigated)"
					}
				}
				id := cu.ID.String()
				if cu.Deleted {
					id += " (deleted)"
				}
				_, _ = fmt.Fprintf(w, "%s\t%s\t%.2f\t%.2f\t%.1f\t%s\n",
					id, cu.Type.DisplayName(), cu.Area, cu.Spacing, cu.PlantingLines, details)
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolP("all", "a", false, "Include soft-deleted cultures")
	return cmd
}
