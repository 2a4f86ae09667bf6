package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.farmtech.dev/agroview/internal/app"
	"go.farmtech.dev/agroview/internal/core/domain"
)

func (c *CLI) newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate <soja|cana>",
		Short: "Generate random cultures for statistical analysis",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cultureType, err := domain.ParseCultureType(args[0])
			if err != nil {
				return err
			}
			samples, _ := cmd.Flags().GetInt("samples")
			stats, _ := cmd.Flags().GetBool("stats")

			result, err := c.app.GenerateCultures(cmd.Context(), app.GenerateRequest{
				Type:           cultureType,
				Samples:        samples,
				WithStatistics: stats,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if result.Message != "" {
				_, _ = fmt.Fprintln(out, result.Message)
			}
			for _, cu := range result.Created {
				_, _ = fmt.Fprintf(out, "  %s  %s  %.2f ha\n", cu.ID, cu.Type.DisplayName(), cu.Area)
			}
			if stats && len(result.Statistics) > 0 {
				_, _ = fmt.Fprintf(out, "statistics: %s\n", result.Statistics)
			}
			return nil
		},
	}
	cmd.Flags().IntP("samples", "n", 10, "Number of cultures to generate (1-100)")
	cmd.Flags().Bool("stats", false, "Include the statistical summary in the output")
	return cmd
}
