package report

import (
	"strings"
	"time"

	"github.com/FACorreiaa/sheet-insights/internal/domain/dataset"
)

// PurchaseOrderReport sums a numeric column per purchase-order identifier for
// rows dated inside the selected month. Buckets are keyed by the raw string
// form of the identifier cell and emitted in descending-total order, not
// chronologically.
type PurchaseOrderReport struct {
	DateColumn  string
	ValueColumn string
	OrderColumn string

	// Month is the selected "2006-01" window; the report is empty without it.
	Month string
}

// Run aggregates per order identifier within the month window.
func (r PurchaseOrderReport) Run(ws *dataset.Worksheet) []Bucket {
	start, ok := monthStart(r.Month)
	if !ok {
		return nil
	}
	end := start.AddDate(0, 1, 0)

	return Aggregate(ws, Query{
		DateColumn:  r.DateColumn,
		ValueColumn: r.ValueColumn,
		Filter: func(row dataset.Row) bool {
			t, ok := dataset.CellTime(row.Cell(r.DateColumn))
			if !ok || t.Before(start) || !t.Before(end) {
				return false
			}
			return identifierText(row.Cell(r.OrderColumn)) != ""
		},
		GroupKey: func(t time.Time, row dataset.Row) GroupKey {
			id := identifierText(row.Cell(r.OrderColumn))
			return GroupKey{Key: id, Label: id, At: t}
		},
		Less: byTotalDesc,
	})
}

// identifierText renders an identifier cell as its raw string form. Numeric
// ids keep the text they were decoded from.
func identifierText(c dataset.Cell) string {
	return strings.TrimSpace(c.Display())
}
