package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"LCA/internal/calc/equivalency"
	"LCA/internal/calc/impact"
)

// inputFlags holds the four calculation flags shared by calc and report.
type inputFlags struct {
	material   string
	materialKg float64
	energy     string
	energyKWh  float64
	maxAmount  float64
}

func (f *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.material, "material", "", "material id (see catalog)")
	cmd.Flags().Float64Var(&f.materialKg, "material-kg", 0, "material amount in kg")
	cmd.Flags().StringVar(&f.energy, "energy", "", "energy source id (see catalog)")
	cmd.Flags().Float64Var(&f.energyKWh, "energy-kwh", 0, "energy amount in kWh")
	cmd.Flags().Float64Var(&f.maxAmount, "max-amount", impact.DefaultMaxAmount, "upper bound for both amounts")
	_ = cmd.MarkFlagRequired("material")
	_ = cmd.MarkFlagRequired("energy")
}

func (f *inputFlags) input() (impact.Input, error) {
	material, err := impact.ParseMaterial(f.material)
	if err != nil {
		return impact.Input{}, err
	}
	energy, err := impact.ParseEnergySource(f.energy)
	if err != nil {
		return impact.Input{}, err
	}
	return impact.Input{
		Material:         material,
		MaterialAmountKg: f.materialKg,
		EnergySource:     energy,
		EnergyAmountKWh:  f.energyKWh,
	}, nil
}

func (f *inputFlags) calculate() (impact.Input, impact.Result, error) {
	in, err := f.input()
	if err != nil {
		return impact.Input{}, impact.Result{}, err
	}
	res, err := impact.CalculateWithLimit(in, f.maxAmount)
	if err != nil {
		return impact.Input{}, impact.Result{}, err
	}
	logger.Debug().
		Str("material", in.Material.String()).
		Str("energy_source", in.EnergySource.String()).
		Msg("calculated")
	return in, res, nil
}

func newCalcCmd() *cobra.Command {
	var (
		flags  inputFlags
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Calculate the four impact values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, res, err := flags.calculate()
			if err != nil {
				return err
			}
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(impact.Response{Input: in, Result: res, Entries: res.Entries()})
			}
			return printResult(cmd, res)
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")

	return cmd
}

func printResult(cmd *cobra.Command, res impact.Result) error {
	const tabPadding = 2
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, tabPadding, ' ', tabwriter.AlignRight)
	for _, e := range res.Entries() {
		fmt.Fprintf(w, "%s:\t%s\t\n", e.Label, equivalency.FormatFloat(e.Value, 2))
	}
	if err := w.Flush(); err != nil {
		return err
	}
	if eq, err := equivalency.Calculate(res.CO2Kg); err == nil && !eq.IsEmpty {
		fmt.Fprintln(cmd.OutOrStdout(), eq.DisplayText)
	}
	return nil
}
