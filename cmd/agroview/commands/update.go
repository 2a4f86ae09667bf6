package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.farmtech.dev/agroview/internal/app"
)

func (c *CLI) newUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <culture-id>",
		Short: "Update fields of an existing culture",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := identityArg(args[0])
			if err != nil {
				return err
			}

			var req app.UpdateCultureRequest
			if cmd.Flags().Changed("area") {
				v, _ := cmd.Flags().GetFloat64("area")
				req.Area = &v
			}
			if cmd.Flags().Changed("spacing") {
				v, _ := cmd.Flags().GetFloat64("spacing")
				req.Spacing = &v
			}
			if cmd.Flags().Changed("variety") {
				v, _ := cmd.Flags().GetString("variety")
				req.Variety = &v
			}
			if cmd.Flags().Changed("cycle") {
				v, _ := cmd.Flags().GetString("cycle")
				req.Cycle = &v
			}
			if cmd.Flags().Changed("irrigation") {
				v, _ := cmd.Flags().GetBool("irrigation")
				req.Irrigation = &v
			}

			msg, err := c.app.UpdateCulture(cmd.Context(), id, req)
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
	return cmd
}
