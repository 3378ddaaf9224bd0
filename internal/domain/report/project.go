package report

import (
	"strconv"
	"time"

	"github.com/FACorreiaa/sheet-insights/internal/domain/dataset"
)

// ProjectReport sums a numeric column into calendar-month buckets for rows
// whose project column equals Project exactly (case-sensitive). When Month is
// additionally set (a "2006-01" key), the report switches to a detail view:
// one bucket per matching row inside that month, no summation.
type ProjectReport struct {
	DateColumn    string
	ValueColumn   string
	ProjectColumn string
	Project       string

	// Month is optional; non-empty selects the detail view.
	Month string
}

// Run produces either the monthly totals or the per-row detail view.
func (r ProjectReport) Run(ws *dataset.Worksheet) []Bucket {
	if r.Month != "" {
		return r.detail(ws)
	}

	return Aggregate(ws, Query{
		DateColumn:  r.DateColumn,
		ValueColumn: r.ValueColumn,
		GroupKey:    func(t time.Time, _ dataset.Row) GroupKey { return monthOf(t) },
		Filter:      r.matchesProject,
		Less:        chronological,
	})
}

func (r ProjectReport) matchesProject(row dataset.Row) bool {
	s, ok := row.Cell(r.ProjectColumn).AsString()
	return ok && s == r.Project
}

// detail emits one bucket per matching row in the selected month. Bucket keys
// are the 0-based emission index; totals carry the single row's value. Rows
// keep worksheet order.
func (r ProjectReport) detail(ws *dataset.Worksheet) []Bucket {
	start, ok := monthStart(r.Month)
	if !ok {
		return nil
	}
	end := start.AddDate(0, 1, 0)

	var buckets []Bucket
	for _, row := range ws.Rows {
		if !r.matchesProject(row) {
			continue
		}
		t, ok := dataset.CellTime(row.Cell(r.DateColumn))
		if !ok || t.Before(start) || !t.Before(end) {
			continue
		}
		value, ok := row.Cell(r.ValueColumn).AsNumber()
		if !ok {
			continue
		}
		buckets = append(buckets, Bucket{
			Key:   strconv.Itoa(len(buckets)),
			Label: t.Format("02/01/2006"),
			Total: value,
			At:    t,
		})
	}
	return buckets
}

// monthStart parses a "2006-01" bucket key into the month's first instant.
func monthStart(key string) (time.Time, bool) {
	t, err := time.Parse("2006-01", key)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
