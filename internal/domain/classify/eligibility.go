package classify

import "github.com/FACorreiaa/sheet-insights/internal/domain/dataset"

// Role is a semantic column requirement a report type can demand.
type Role int

const (
	RoleDate Role = iota
	RoleNumeric
	RoleText
	RoleIdentifier
)

func (r Role) String() string {
	switch r {
	case RoleDate:
		return "date"
	case RoleNumeric:
		return "numeric"
	case RoleText:
		return "text"
	case RoleIdentifier:
		return "identifier"
	default:
		return "unknown"
	}
}

// Eligible reports whether a worksheet offers at least one column for every
// required role, judged from first-data-row evidence only. This is a cheap
// pre-filter that runs before the five-row classification populates pickers;
// a sheet whose first row is blank in a date column fails here even when rows
// two through five carry dates.
func Eligible(ws *dataset.Worksheet, roles ...Role) bool {
	if ws.RowCount() == 0 {
		return false
	}

	for _, role := range roles {
		if !anyColumnSatisfies(ws, role) {
			return false
		}
	}
	return true
}

func anyColumnSatisfies(ws *dataset.Worksheet, role Role) bool {
	for _, col := range ws.Columns {
		c := classifyDepth(ws, col, eligibilitySampleDepth)
		switch role {
		case RoleDate:
			if c.DateLike {
				return true
			}
		case RoleNumeric:
			if c.Numeric {
				return true
			}
		case RoleText:
			if c.TextCategory {
				return true
			}
		case RoleIdentifier:
			if c.IdentifierLike {
				return true
			}
		}
	}
	return false
}
