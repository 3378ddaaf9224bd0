package decoder

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/FACorreiaa/sheet-insights/internal/domain/dataset"
)

// decodeCSV reads a CSV file as a single worksheet named after the file's
// base name. The full grid is read with encoding/csv (gocsv's map form loses
// column order); the typed rows come from gocsv keyed by header name, with a
// grid fallback when headers needed cleaning to stay unique.
func decodeCSV(fileName string, data []byte) ([]*dataset.Worksheet, error) {
	data = normalizeBytes(data)

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	grid, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse csv: %w", err)
	}

	sheetName := strings.TrimSuffix(filepath.Base(fileName), filepath.Ext(fileName))

	ws := worksheetFromGrid(fileName, sheetName, grid)
	if ws == nil {
		return nil, nil
	}

	// When cleaning left the header names untouched, rebuild the rows from
	// gocsv's header-keyed maps; they apply the same quoting rules struct
	// imports use elsewhere in the pipeline.
	if rows, ok := rowsFromMaps(data, ws.Columns); ok {
		ws = dataset.NewWorksheet(fileName, sheetName, ws.Columns, rows)
		ws.Raw = grid
	}

	return []*dataset.Worksheet{ws}, nil
}

func rowsFromMaps(data []byte, columns []string) ([]dataset.Row, bool) {
	maps, err := gocsv.CSVToMaps(bytes.NewReader(data))
	if err != nil {
		return nil, false
	}

	// Every cleaned column name must exist verbatim in the maps, otherwise
	// the header row was blank or duplicated somewhere and the grid path
	// already handled it.
	if len(maps) > 0 {
		for _, col := range columns {
			if _, ok := maps[0][col]; !ok {
				return nil, false
			}
		}
	}

	rows := make([]dataset.Row, 0, len(maps))
	for _, m := range maps {
		row := make(dataset.Row, len(columns))
		for _, col := range columns {
			row[col] = typeCell(m[col])
		}
		rows = append(rows, row)
	}
	return rows, true
}
