package report

import (
	"sort"

	"github.com/FACorreiaa/sheet-insights/internal/domain/dataset"
)

// MonthOption is one entry of a "select a month" picker.
type MonthOption struct {
	Key   string // "2006-01"
	Label string // "01/2006"
}

// MonthOptions returns the distinct months present in a date column,
// chronologically. It parses dates with the exact rules the aggregation
// engine uses, so a month offered here never comes back empty solely because
// the picker and the engine disagreed on a date string.
func MonthOptions(ws *dataset.Worksheet, dateColumn string) []MonthOption {
	seen := make(map[string]MonthOption)
	for _, row := range ws.Rows {
		t, ok := dataset.CellTime(row.Cell(dateColumn))
		if !ok {
			continue
		}
		key := monthOf(t)
		if _, dup := seen[key.Key]; !dup {
			seen[key.Key] = MonthOption{Key: key.Key, Label: key.Label}
		}
	}

	options := make([]MonthOption, 0, len(seen))
	for _, opt := range seen {
		options = append(options, opt)
	}
	sort.Slice(options, func(i, j int) bool { return options[i].Key < options[j].Key })
	return options
}

// ProjectOptions returns the distinct non-empty string values of a category
// column, in first-seen row order, the same extraction the project filter
// matches against.
func ProjectOptions(ws *dataset.Worksheet, projectColumn string) []string {
	seen := make(map[string]struct{})
	var options []string
	for _, row := range ws.Rows {
		s, ok := row.Cell(projectColumn).AsString()
		if !ok || s == "" {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		options = append(options, s)
	}
	return options
}
