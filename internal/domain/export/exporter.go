// Package export encodes a loaded worksheet back into a downloadable XLSX
// file. Export always prefers the raw untyped grid captured at decode time;
// only worksheets built in memory fall back to each cell's display string.
package export

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/FACorreiaa/sheet-insights/internal/domain/dataset"
)

// FileName returns the download name for a worksheet export:
// {original-file-base-name}_{worksheet-name}.xlsx.
func FileName(ws *dataset.Worksheet) string {
	base := strings.TrimSuffix(filepath.Base(ws.FileName), filepath.Ext(ws.FileName))
	return fmt.Sprintf("%s_%s.xlsx", base, ws.SheetName)
}

// Worksheet encodes the sheet (header row plus data grid) as XLSX bytes.
func Worksheet(ws *dataset.Worksheet) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := ws.SheetName
	if sheetName == "" {
		sheetName = "Sheet1"
	}
	f.SetSheetName("Sheet1", sheetName)

	for i, record := range grid(ws) {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, fmt.Errorf("failed to address row %d: %w", i+1, err)
		}
		row := make([]interface{}, len(record))
		for j, v := range record {
			row[j] = v
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// grid returns the row-major cell text, header included.
func grid(ws *dataset.Worksheet) [][]string {
	if ws.Raw != nil {
		return ws.Raw
	}

	out := make([][]string, 0, len(ws.Rows)+1)
	out = append(out, ws.Columns)
	for _, row := range ws.Rows {
		record := make([]string, len(ws.Columns))
		for j, col := range ws.Columns {
			record[j] = row.Cell(col).Display()
		}
		out = append(out, record)
	}
	return out
}
