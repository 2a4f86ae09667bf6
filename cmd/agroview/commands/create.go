package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.farmtech.dev/agroview/internal/app"
	"go.farmtech.dev/agroview/internal/core/domain"
)

func (c *CLI) newCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create <soja|cana>",
		Short: "Create a new culture",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cultureType, err := domain.ParseCultureType(args[0])
			if err != nil {
				return err
			}
			area, _ := cmd.Flags().GetFloat64("area")
			spacing, _ := cmd.Flags().GetFloat64("spacing")
			variety, _ := cmd.Flags().GetString("variety")
			cycle, _ := cmd.Flags().GetString("cycle")
			irrigation, _ := cmd.Flags().GetBool("irrigation")

			msg, err := c.app.CreateCulture(cmd.Context(), app.CreateCultureRequest{
				Type:       cultureType,
				Area:       area,
				Spacing:    spacing,
				Variety:    variety,
				Cycle:      cycle,
				Irrigation: irrigation,
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), msg)
			return nil
		},
	}
	cmd.Flags().Float64P("area", "A", 0, "Planted area in hectares")
	cmd.Flags().Float64P("spacing", "s", 0, "Row spacing in meters")
	cmd.Flags().String("variety", "", "Soja variety")
	cmd.Flags().String("cycle", "", "Cana cycle: curto, médio or longo")
	cmd.Flags().Bool("irrigation", false, "Whether the cana field is irrigated")
	_ = cmd.MarkFlagRequired("area")
	_ = cmd.MarkFlagRequired("spacing")
	return cmd
}
