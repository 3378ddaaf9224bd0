// Package classify infers column roles for loaded worksheets. Verdicts come
// from a bounded prefix sample of each column, never a full scan: sparse or
// irregular columns may classify wrong, which is an accepted trade for speed
// on large sheets.
package classify

import (
	"strings"

	"github.com/FACorreiaa/sheet-insights/internal/domain/dataset"
)

// Sampling depths. Classification looks at up to five leading rows;
// eligibility (eligibility.go) deliberately looks at only the first. The
// depths differ on purpose and produce different answers on sparse data;
// both are part of the observable behavior.
const (
	classifySampleDepth    = 5
	eligibilitySampleDepth = 1
)

// identifierKeywords mark order-identifier columns by header name.
var identifierKeywords = []string{"order", "po", "purchase"}

// Classification is the role verdict for one column. Roles are not exclusive:
// a numeric order id is both Numeric and IdentifierLike.
type Classification struct {
	DateLike       bool
	Numeric        bool
	TextCategory   bool
	IdentifierLike bool
}

// None reports whether the column matched no role at all.
func (c Classification) None() bool {
	return !c.DateLike && !c.Numeric && !c.TextCategory && !c.IdentifierLike
}

// Classify inspects up to min(5, rows) leading cells of a column. An empty
// worksheet classifies as no role. Malformed cells are excluded from
// evidence; nothing here ever fails.
func Classify(ws *dataset.Worksheet, column string) Classification {
	return classifyDepth(ws, column, classifySampleDepth)
}

// ColumnClassification pairs a column name with its verdict, in header order.
type ColumnClassification struct {
	Name string
	Classification
}

// ClassifyAll classifies every column of a worksheet, preserving column
// order. Used to populate selection pickers.
func ClassifyAll(ws *dataset.Worksheet) []ColumnClassification {
	out := make([]ColumnClassification, 0, len(ws.Columns))
	for _, col := range ws.Columns {
		out = append(out, ColumnClassification{Name: col, Classification: Classify(ws, col)})
	}
	return out
}

func classifyDepth(ws *dataset.Worksheet, column string, depth int) Classification {
	var c Classification
	if depth > len(ws.Rows) {
		depth = len(ws.Rows)
	}

	hasNonEmptyString := false
	sampled := 0
	stringOrNumeric := false

	for _, row := range ws.Rows[:depth] {
		cell := row.Cell(column)
		if cell.IsNull() {
			continue
		}
		sampled++

		if _, ok := dataset.CellTime(cell); ok {
			c.DateLike = true
		}
		if _, ok := cell.AsNumber(); ok {
			c.Numeric = true
			stringOrNumeric = true
		}
		if s, ok := cell.AsString(); ok {
			stringOrNumeric = true
			if strings.TrimSpace(s) != "" {
				hasNonEmptyString = true
			}
		}
	}

	// Date-like strings are excluded from the category role so a date column
	// never doubles as a grouping dimension.
	c.TextCategory = hasNonEmptyString && !c.DateLike

	c.IdentifierLike = sampled > 0 && stringOrNumeric && identifierHeader(column)

	return c
}

func identifierHeader(column string) bool {
	h := strings.ToLower(column)
	for _, kw := range identifierKeywords {
		if strings.Contains(h, kw) {
			return true
		}
	}
	return false
}
