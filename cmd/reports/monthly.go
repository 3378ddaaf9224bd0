package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/FACorreiaa/sheet-insights/internal/domain/report"
)

func monthlyCmd() *cobra.Command {
	var dateCol, valueCol string

	cmd := &cobra.Command{
		Use:   "monthly",
		Short: "Monthly totals of a numeric column",
		RunE: func(_ *cobra.Command, _ []string) error {
			svc, err := loadSession()
			if err != nil {
				return err
			}
			ws, err := activeWorksheet(svc)
			if err != nil {
				return err
			}

			buckets := report.MonthlyReport{DateColumn: dateCol, ValueColumn: valueCol}.Run(ws)
			return printBuckets(buckets, "MONTH")
		},
	}

	cmd.Flags().StringVar(&dateCol, "date-col", "", "date column name")
	cmd.Flags().StringVar(&valueCol, "value-col", "", "numeric value column name")
	_ = cmd.MarkFlagRequired("date-col")
	_ = cmd.MarkFlagRequired("value-col")
	return cmd
}

// printBuckets renders an aggregation result, distinguishing a valid-but-empty
// result from an incomplete selection (the latter never reaches here; cobra
// rejects missing required flags).
func printBuckets(buckets []report.Bucket, labelHeader string) error {
	if len(buckets) == 0 {
		fmt.Println("no data found for this selection")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "%s\tTOTAL\n", labelHeader)
	truncated := 0
	for i, b := range buckets {
		if i >= cfg.Display.MaxTableRows {
			truncated = len(buckets) - i
			break
		}
		fmt.Fprintf(w, "%s\t%s\n", b.Label, formatTotal(b.Total))
	}
	if err := w.Flush(); err != nil {
		return err
	}
	if truncated > 0 {
		fmt.Printf("... %d more rows (REPORTS_MAX_TABLE_ROWS=%d)\n", truncated, cfg.Display.MaxTableRows)
	}
	return nil
}
