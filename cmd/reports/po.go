package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/FACorreiaa/sheet-insights/internal/domain/report"
)

func poCmd() *cobra.Command {
	var dateCol, valueCol, orderCol, month string

	cmd := &cobra.Command{
		Use:   "po",
		Short: "Per-purchase-order totals within one month, largest first",
		RunE: func(_ *cobra.Command, _ []string) error {
			svc, err := loadSession()
			if err != nil {
				return err
			}
			ws, err := activeWorksheet(svc)
			if err != nil {
				return err
			}

			// Without a month selection, show the picker options instead.
			if month == "" {
				options := report.MonthOptions(ws, dateCol)
				if len(options) == 0 {
					fmt.Println("no parseable dates found in this column")
					return nil
				}
				for _, opt := range options {
					fmt.Printf("%s\t%s\n", opt.Key, opt.Label)
				}
				return nil
			}

			r := report.PurchaseOrderReport{
				DateColumn:  dateCol,
				ValueColumn: valueCol,
				OrderColumn: orderCol,
				Month:       month,
			}
			return printBuckets(r.Run(ws), "ORDER")
		},
	}

	cmd.Flags().StringVar(&dateCol, "date-col", "", "date column name")
	cmd.Flags().StringVar(&valueCol, "value-col", "", "numeric value column name")
	cmd.Flags().StringVar(&orderCol, "order-col", "", "purchase-order identifier column name")
	cmd.Flags().StringVar(&month, "month", "", "month key (YYYY-MM); omit to list options")
	_ = cmd.MarkFlagRequired("date-col")
	_ = cmd.MarkFlagRequired("value-col")
	_ = cmd.MarkFlagRequired("order-col")
	return cmd
}
