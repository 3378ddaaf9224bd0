package decoder

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/FACorreiaa/sheet-insights/internal/domain/dataset"
)

// decodeXLSX reads every sheet of an XLSX workbook. Sheets that fail to read
// or hold no data rows are skipped, not fatal; only a file that cannot be
// opened at all surfaces an error.
func decodeXLSX(fileName string, data []byte) ([]*dataset.Worksheet, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open xlsx file: %w", err)
	}
	defer f.Close()

	var sheets []*dataset.Worksheet
	for _, sheetName := range f.GetSheetList() {
		grid, err := f.GetRows(sheetName)
		if err != nil {
			continue
		}
		if ws := worksheetFromGrid(fileName, sheetName, grid); ws != nil {
			sheets = append(sheets, ws)
		}
	}
	return sheets, nil
}
