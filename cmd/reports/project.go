package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/FACorreiaa/sheet-insights/internal/domain/report"
)

func projectCmd() *cobra.Command {
	var dateCol, valueCol, projectCol, project, month, search string

	cmd := &cobra.Command{
		Use:   "project",
		Short: "Per-project totals, monthly or drilled into one month",
		RunE: func(_ *cobra.Command, _ []string) error {
			svc, err := loadSession()
			if err != nil {
				return err
			}
			ws, err := activeWorksheet(svc)
			if err != nil {
				return err
			}

			// Without a project selection, show the picker options instead.
			if project == "" {
				options := report.ProjectOptions(ws, projectCol)
				if search != "" {
					options = report.SearchProjects(options, search)
				}
				if len(options) == 0 {
					fmt.Println("no projects found in this column")
					return nil
				}
				for _, opt := range options {
					fmt.Println(opt)
				}
				return nil
			}

			r := report.ProjectReport{
				DateColumn:    dateCol,
				ValueColumn:   valueCol,
				ProjectColumn: projectCol,
				Project:       project,
				Month:         month,
			}
			header := "MONTH"
			if month != "" {
				header = "DATE"
			}
			return printBuckets(r.Run(ws), header)
		},
	}

	cmd.Flags().StringVar(&dateCol, "date-col", "", "date column name")
	cmd.Flags().StringVar(&valueCol, "value-col", "", "numeric value column name")
	cmd.Flags().StringVar(&projectCol, "project-col", "", "project/category column name")
	cmd.Flags().StringVar(&project, "project", "", "project value to report on (omit to list options)")
	cmd.Flags().StringVar(&month, "month", "", "optional month key (YYYY-MM) for the per-row detail view")
	cmd.Flags().StringVar(&search, "search", "", "fuzzy-filter the project list")
	_ = cmd.MarkFlagRequired("date-col")
	_ = cmd.MarkFlagRequired("value-col")
	_ = cmd.MarkFlagRequired("project-col")
	return cmd
}
