package report

import (
	"time"

	"github.com/FACorreiaa/sheet-insights/internal/domain/dataset"
)

// MonthlyReport sums a numeric column into calendar-month buckets.
type MonthlyReport struct {
	DateColumn  string
	ValueColumn string
}

// Run aggregates every row into year-month buckets, emitted chronologically
// by month start.
func (r MonthlyReport) Run(ws *dataset.Worksheet) []Bucket {
	return Aggregate(ws, Query{
		DateColumn:  r.DateColumn,
		ValueColumn: r.ValueColumn,
		GroupKey:    func(t time.Time, _ dataset.Row) GroupKey { return monthOf(t) },
		Less:        chronological,
	})
}
