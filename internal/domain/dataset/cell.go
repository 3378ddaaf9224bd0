// Package dataset holds the normalized in-memory representation of loaded
// spreadsheet data: typed cells, worksheets keyed by (file, sheet), and the
// flexible date parsing shared by classification and aggregation.
package dataset

import (
	"strconv"
	"time"
)

// Kind identifies the type a Cell was created with. It never changes after
// construction; callers coerce at the point of consumption instead.
type Kind int

const (
	KindNull Kind = iota
	KindString
	KindNumber
	KindBool
	KindTime
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindTime:
		return "time"
	default:
		return "null"
	}
}

// Cell is a tagged value: exactly one of string, number, bool or time, or
// null/absent. Formatted optionally carries a precomputed display string from
// the decoder (e.g. the raw text excelize rendered for a styled cell).
type Cell struct {
	kind Kind
	str  string
	num  float64
	b    bool
	t    time.Time

	Formatted string
}

// Null is the absent cell. Zero-value Cells are also null.
var Null = Cell{}

// String creates a string-tagged cell.
func String(s string) Cell { return Cell{kind: KindString, str: s} }

// Number creates a number-tagged cell.
func Number(f float64) Cell { return Cell{kind: KindNumber, num: f} }

// Bool creates a bool-tagged cell.
func Bool(b bool) Cell { return Cell{kind: KindBool, b: b} }

// Time creates a time-tagged cell.
func Time(t time.Time) Cell { return Cell{kind: KindTime, t: t} }

// Kind returns the tag the cell was created with.
func (c Cell) Kind() Kind { return c.kind }

// IsNull reports whether the cell is absent.
func (c Cell) IsNull() bool { return c.kind == KindNull }

// AsString returns the string value. ok is false for every other kind.
func (c Cell) AsString() (string, bool) {
	if c.kind != KindString {
		return "", false
	}
	return c.str, true
}

// AsNumber returns the numeric value. ok is false for every other kind;
// strings are never coerced here.
func (c Cell) AsNumber() (float64, bool) {
	if c.kind != KindNumber {
		return 0, false
	}
	return c.num, true
}

// AsBool returns the boolean value. ok is false for every other kind.
func (c Cell) AsBool() (bool, bool) {
	if c.kind != KindBool {
		return false, false
	}
	return c.b, true
}

// AsTime returns the timestamp value. ok is false for every other kind.
func (c Cell) AsTime() (time.Time, bool) {
	if c.kind != KindTime {
		return time.Time{}, false
	}
	return c.t, true
}

// Display returns the cell's human-readable text: the precomputed Formatted
// string when present, otherwise a plain rendering of the raw value.
func (c Cell) Display() string {
	if c.Formatted != "" {
		return c.Formatted
	}
	switch c.kind {
	case KindString:
		return c.str
	case KindNumber:
		return strconv.FormatFloat(c.num, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(c.b)
	case KindTime:
		return c.t.Format("2006-01-02")
	default:
		return ""
	}
}
