package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"LCA/internal/calc/equivalency"
	"LCA/internal/calc/impact"
)

func newCatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List materials and energy sources with their impact factors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			const tabPadding = 2
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, tabPadding, ' ', 0)

			fmt.Fprintln(w, "ID\tName\tUnit\tCO2\tWater\tEnergy\tAcid")
			for _, m := range impact.Materials() {
				v, _ := impact.MaterialFactor(m)
				writeFactorRow(w, m.String(), m.Label(), "kg", v)
			}
			for _, e := range impact.EnergySources() {
				v, _ := impact.EnergyFactor(e)
				writeFactorRow(w, e.String(), e.Label(), "kWh", v)
			}
			return w.Flush()
		},
	}
}

func writeFactorRow(w *tabwriter.Writer, id, label, unit string, v impact.Vector) {
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n", id, label, unit,
		equivalency.FormatFloat(v.CO2, 3),
		equivalency.FormatFloat(v.Water, 3),
		equivalency.FormatFloat(v.Energy, 1),
		equivalency.FormatFloat(v.Acid, 4))
}
