package cli

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"LCA/internal/calc/report"
)

func newReportCmd() *cobra.Command {
	var (
		flags inputFlags
		out   string
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Write the PDF report for a calculation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, res, err := flags.calculate()
			if err != nil {
				return err
			}

			var buf bytes.Buffer
			err = report.Render(&buf, report.Input{
				Request:     in,
				Result:      res,
				Reference:   uuid.NewString(),
				GeneratedAt: time.Now(),
			})
			if err != nil {
				return err
			}
			if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("writing report: %w", err)
			}
			logger.Info().Str("path", out).Int("bytes", buf.Len()).Msg("report written")
			fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", out)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&out, "out", "o", report.FileName, "output file")

	return cmd
}
