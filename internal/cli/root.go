package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"LCA/internal/logging"
)

// logger is the package-level logger for CLI operations.
var logger = zerolog.Nop()

// NewRootCmd creates the root command of lcactl. Subcommands run the same
// calculation and report code as the HTTP service, without a server.
func NewRootCmd(ver string) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "lcactl",
		Short:        "Life cycle impact calculator",
		Long:         "lcactl: estimate CO2, water, energy and acidification impacts of a material and an energy source",
		Version:      ver,
		Example:      rootCmdExample,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level, _ := cmd.Flags().GetString("log-level")
			logger = logging.NewWithWriter(logging.Config{Level: level, Format: "console"}, cmd.ErrOrStderr())
			return nil
		},
	}

	cmd.PersistentFlags().String("log-level", "warn", "log level (debug, info, warn, error)")
	cmd.AddCommand(newCatalogCmd(), newCalcCmd(), newReportCmd(), newHashPasswordCmd())

	return cmd
}

const rootCmdExample = `  # List materials and energy sources
  lcactl catalog

  # Calculate impacts for 100 kg ethylene and 50 kWh natural gas
  lcactl calc --material ethylene --material-kg 100 --energy natural_gas --energy-kwh 50

  # Write the PDF report
  lcactl report --material ethylene --material-kg 100 --energy natural_gas --energy-kwh 50 --out LCA_Report.pdf

  # Hash the admin password for LCA_ADMIN_PASSWORD_HASH
  lcactl hash-password 's3cret'`
