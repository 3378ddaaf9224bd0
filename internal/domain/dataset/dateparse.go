package dataset

import (
	"strings"
	"time"
)

// dateFormats are tried in order. DD/MM before MM/DD: ambiguous numeric dates
// resolve to the European reading, matching the import pipeline's bias.
var dateFormats = []string{
	"2006-01-02",
	"02/01/2006",
	"01/02/2006",
	"02-01-2006",
	"01-02-2006",
	"2006/01/02",
	"02.01.2006",
	"2006-01-02T15:04:05Z",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"02/01/2006 15:04",
	"01/02/2006 15:04",
}

// ParseTime attempts to parse a date string against the known formats.
// ok is false when no format matches; callers treat that as evidence absence,
// never as an error. The classifier and the aggregation engine both go through
// here so a string that classifies as date-like also aggregates as a date.
func ParseTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, format := range dateFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// CellTime resolves a cell to a timestamp for date-role consumption: time
// cells pass through, strings go through ParseTime, every other kind fails.
func CellTime(c Cell) (time.Time, bool) {
	if t, ok := c.AsTime(); ok {
		return t, true
	}
	if s, ok := c.AsString(); ok {
		return ParseTime(s)
	}
	return time.Time{}, false
}
