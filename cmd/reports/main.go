// Command reports produces ad-hoc time-series and categorical reports from
// spreadsheet files. It is a thin driver over the session/report packages:
// decoding, classification and aggregation all live in internal/domain.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/FACorreiaa/sheet-insights/pkg/config"
)

var (
	cfg    *config.Config
	logger *slog.Logger

	inputFiles []string
	sheetName  string

	rootCmd = &cobra.Command{
		Use:   "reports",
		Short: "Ad-hoc spreadsheet reports: monthly, per-project, per-purchase-order",
		Long: `reports loads one or two spreadsheet files (.xlsx, .xls, .csv), infers which
columns look like dates, amounts, categories and order identifiers, and
aggregates them into monthly, per-project or per-purchase-order totals.`,
		SilenceUsage:      true,
		PersistentPreRunE: initRun,
	}
)

func init() {
	rootCmd.PersistentFlags().StringArrayVarP(&inputFiles, "file", "f", nil, "input file (repeatable, at most 2 per run)")
	rootCmd.PersistentFlags().StringVarP(&sheetName, "sheet", "s", "", "worksheet name (defaults to the only eligible sheet)")

	rootCmd.AddCommand(sheetsCmd())
	rootCmd.AddCommand(columnsCmd())
	rootCmd.AddCommand(monthlyCmd())
	rootCmd.AddCommand(projectCmd())
	rootCmd.AddCommand(poCmd())
	rootCmd.AddCommand(exportCmd())
}

func initRun(_ *cobra.Command, _ []string) error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return err
	}

	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Logging.Level}))
	slog.SetDefault(logger)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
