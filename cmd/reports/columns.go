package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/FACorreiaa/sheet-insights/internal/domain/classify"
)

func columnsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "columns",
		Short: "Show inferred column roles for a worksheet",
		RunE: func(_ *cobra.Command, _ []string) error {
			svc, err := loadSession()
			if err != nil {
				return err
			}
			ws, err := activeWorksheet(svc)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "COLUMN\tROLES")
			for _, cc := range classify.ClassifyAll(ws) {
				fmt.Fprintf(w, "%s\t%s\n", cc.Name, roleList(cc.Classification))
			}
			return w.Flush()
		},
	}
}

func roleList(c classify.Classification) string {
	var roles []string
	if c.DateLike {
		roles = append(roles, "date")
	}
	if c.Numeric {
		roles = append(roles, "numeric")
	}
	if c.TextCategory {
		roles = append(roles, "category")
	}
	if c.IdentifierLike {
		roles = append(roles, "identifier")
	}
	if len(roles) == 0 {
		return "-"
	}
	return strings.Join(roles, ", ")
}
