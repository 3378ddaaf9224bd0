package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/FACorreiaa/sheet-insights/internal/domain/classify"
)

func sheetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sheets",
		Short: "List loaded worksheets and their report eligibility",
		RunE: func(_ *cobra.Command, _ []string) error {
			svc, err := loadSession()
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "FILE\tSHEET\tROWS\tMONTHLY\tPROJECT\tPURCHASE-ORDER")
			for _, ws := range svc.State().Worksheets() {
				monthly := classify.Eligible(ws, classify.RoleDate, classify.RoleNumeric)
				project := classify.Eligible(ws, classify.RoleDate, classify.RoleNumeric, classify.RoleText)
				po := classify.Eligible(ws, classify.RoleDate, classify.RoleNumeric, classify.RoleIdentifier)
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\t%s\n",
					ws.FileName, ws.SheetName, ws.RowCount(), yesNo(monthly), yesNo(project), yesNo(po))
			}
			return w.Flush()
		},
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
