// Package report implements the shared aggregation engine and the monthly,
// project and purchase-order report strategies on top of it. The engine is a
// pure computation over an already-loaded worksheet; bad rows are excluded
// silently, never surfaced as errors.
package report

import (
	"sort"
	"time"

	"github.com/FACorreiaa/sheet-insights/internal/domain/dataset"
)

// Bucket is one grouped-and-summed output row of an aggregation. Key is a
// sortable string ("2024-03", a raw order id); Label is the human form
// ("03/2024", a project name). At carries the timestamp that produced the
// bucket, used by chronological comparators.
type Bucket struct {
	Key   string
	Label string
	Total float64
	At    time.Time
}

// GroupKey is the bucket identity a grouping function derives from a row.
type GroupKey struct {
	Key   string
	Label string
	At    time.Time
}

// Query configures one aggregation run.
type Query struct {
	DateColumn  string
	ValueColumn string

	// GroupKey maps the row's parsed date plus the row itself to a bucket.
	GroupKey func(t time.Time, row dataset.Row) GroupKey

	// Filter skips rows when it returns false. Optional.
	Filter func(row dataset.Row) bool

	// Less orders the emitted buckets. Optional; insertion order when nil.
	Less func(a, b Bucket) bool
}

// Aggregate runs the query over every row of the worksheet.
//
// Per row: the filter runs first; the date cell must be a timestamp or a
// parseable date string; the value cell must be a number (strings are never
// coerced). Rows failing any step are skipped without error. Totals use
// plain float64 addition; results are display-only, never persisted.
func Aggregate(ws *dataset.Worksheet, q Query) []Bucket {
	byKey := make(map[string]int)
	var buckets []Bucket

	for _, row := range ws.Rows {
		if q.Filter != nil && !q.Filter(row) {
			continue
		}

		t, ok := dataset.CellTime(row.Cell(q.DateColumn))
		if !ok {
			continue
		}

		value, ok := row.Cell(q.ValueColumn).AsNumber()
		if !ok {
			continue
		}

		key := q.GroupKey(t, row)
		idx, exists := byKey[key.Key]
		if !exists {
			idx = len(buckets)
			byKey[key.Key] = idx
			buckets = append(buckets, Bucket{Key: key.Key, Label: key.Label, At: key.At})
		}
		buckets[idx].Total += value
	}

	if q.Less != nil {
		sort.SliceStable(buckets, func(i, j int) bool { return q.Less(buckets[i], buckets[j]) })
	}
	return buckets
}

// monthOf normalizes a timestamp to its calendar month bucket.
func monthOf(t time.Time) GroupKey {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return GroupKey{
		Key:   t.Format("2006-01"),
		Label: t.Format("01/2006"),
		At:    start,
	}
}

func chronological(a, b Bucket) bool { return a.At.Before(b.At) }

func byTotalDesc(a, b Bucket) bool { return a.Total > b.Total }
