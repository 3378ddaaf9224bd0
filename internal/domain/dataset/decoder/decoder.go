// Package decoder turns raw spreadsheet file bytes into dataset worksheets.
// It supports .xlsx, .xls and .csv; every other extension is rejected before
// any decode is attempted. Worksheets with zero data rows are dropped
// silently.
package decoder

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/FACorreiaa/sheet-insights/internal/domain/dataset"
)

var (
	// ErrUnsupportedExtension is returned for any file that is not
	// .xlsx, .xls or .csv (case-insensitive).
	ErrUnsupportedExtension = errors.New("unsupported file extension")

	// ErrNoWorksheets is returned when a file decoded cleanly but every
	// sheet was empty.
	ErrNoWorksheets = errors.New("no worksheets with data rows found")
)

// SupportedExtension reports whether the file name carries a decodable
// extension.
func SupportedExtension(fileName string) bool {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".xlsx", ".xls", ".csv":
		return true
	}
	return false
}

// Decode parses file bytes into one worksheet per non-empty sheet.
func Decode(fileName string, data []byte) ([]*dataset.Worksheet, error) {
	var (
		sheets []*dataset.Worksheet
		err    error
	)

	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".xlsx":
		sheets, err = decodeXLSX(fileName, data)
	case ".xls":
		sheets, err = decodeXLS(fileName, data)
	case ".csv":
		sheets, err = decodeCSV(fileName, data)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedExtension, filepath.Ext(fileName))
	}
	if err != nil {
		return nil, err
	}

	if len(sheets) == 0 {
		return nil, ErrNoWorksheets
	}
	return sheets, nil
}

// worksheetFromGrid builds a typed worksheet from an untyped row-major grid.
// The first row is the header; a grid without at least one data row yields
// nil, which callers drop without surfacing an error.
func worksheetFromGrid(fileName, sheetName string, grid [][]string) *dataset.Worksheet {
	if len(grid) < 2 {
		return nil
	}

	columns := headerNames(grid[0])
	rows := make([]dataset.Row, 0, len(grid)-1)
	for _, record := range grid[1:] {
		row := make(dataset.Row, len(columns))
		for i, col := range columns {
			if i < len(record) {
				row[col] = typeCell(record[i])
			} else {
				row[col] = dataset.Null
			}
		}
		rows = append(rows, row)
	}

	ws := dataset.NewWorksheet(fileName, sheetName, columns, rows)
	ws.Raw = grid
	return ws
}

// headerNames cleans the header row: blank headers get positional names and
// duplicates get a numeric suffix so row maps never clobber each other.
func headerNames(header []string) []string {
	names := make([]string, len(header))
	seen := make(map[string]int, len(header))
	for i, h := range header {
		name := strings.TrimSpace(h)
		if name == "" {
			name = fmt.Sprintf("Column %d", i+1)
		}
		if n, dup := seen[name]; dup {
			seen[name] = n + 1
			name = fmt.Sprintf("%s (%d)", name, n+1)
		}
		seen[name]++
		names[i] = name
	}
	return names
}

// typeCell assigns a tag to a raw cell string. Numbers must parse strictly
// (no thousands separators); anything else stays a string. The raw text is
// kept as the display string for non-string tags.
func typeCell(raw string) dataset.Cell {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return dataset.Null
	}

	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		c := dataset.Number(f)
		c.Formatted = trimmed
		return c
	}

	if strings.EqualFold(trimmed, "true") || strings.EqualFold(trimmed, "false") {
		c := dataset.Bool(strings.EqualFold(trimmed, "true"))
		c.Formatted = trimmed
		return c
	}

	return dataset.String(trimmed)
}

// normalizeBytes strips a UTF-8 BOM and falls back to a latin-1 reading for
// files that are not valid UTF-8, so header matching works on accented names.
func normalizeBytes(data []byte) []byte {
	if len(data) >= 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF {
		data = data[3:]
	}
	if utf8.Valid(data) {
		return data
	}
	runes := make([]rune, len(data))
	for i, b := range data {
		runes[i] = rune(b)
	}
	return []byte(string(runes))
}
