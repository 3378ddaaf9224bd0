package dataset

import "fmt"

// Row maps column name to cell. Every declared column has an entry; missing
// source cells are stored as Null so lookups never distinguish "absent key"
// from "absent value".
type Row map[string]Cell

// Cell returns the cell for a column, Null when the row has no entry.
func (r Row) Cell(column string) Cell {
	if c, ok := r[column]; ok {
		return c
	}
	return Null
}

// Worksheet is one sheet of tabular data. The (FileName, SheetName) pair is
// the stable identity used everywhere; sheet names alone may collide across
// loaded files.
type Worksheet struct {
	FileName  string
	SheetName string

	// Columns is the header row; its order is display order.
	Columns []string
	Rows    []Row

	// Raw is the untyped row-major grid as decoded, header included, kept for
	// export round-trips. May be nil for worksheets built in memory.
	Raw [][]string
}

// Key returns the unique worksheet identity.
func (w *Worksheet) Key() string {
	return fmt.Sprintf("%s::%s", w.FileName, w.SheetName)
}

// RowCount returns the number of data rows.
func (w *Worksheet) RowCount() int { return len(w.Rows) }

// NewWorksheet builds a worksheet from typed rows, padding every row with
// Null entries for declared columns it lacks.
func NewWorksheet(fileName, sheetName string, columns []string, rows []Row) *Worksheet {
	ws := &Worksheet{
		FileName:  fileName,
		SheetName: sheetName,
		Columns:   columns,
		Rows:      make([]Row, 0, len(rows)),
	}
	for _, row := range rows {
		normalized := make(Row, len(columns))
		for _, col := range columns {
			normalized[col] = row.Cell(col)
		}
		ws.Rows = append(ws.Rows, normalized)
	}
	return ws
}
