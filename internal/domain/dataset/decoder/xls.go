package decoder

import (
	"bytes"
	"fmt"

	"github.com/shakinm/xlsReader/xls"

	"github.com/FACorreiaa/sheet-insights/internal/domain/dataset"
)

// decodeXLS reads every sheet of a legacy BIFF workbook.
func decodeXLS(fileName string, data []byte) ([]*dataset.Worksheet, error) {
	book, err := xls.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open xls file: %w", err)
	}

	var sheets []*dataset.Worksheet
	for i := 0; i < book.GetNumberSheets(); i++ {
		sheet, err := book.GetSheet(i)
		if err != nil || sheet == nil {
			continue
		}

		var grid [][]string
		for _, xlsRow := range sheet.GetRows() {
			var record []string
			for _, col := range xlsRow.GetCols() {
				record = append(record, col.GetString())
			}
			grid = append(grid, record)
		}

		if ws := worksheetFromGrid(fileName, sheet.GetName(), grid); ws != nil {
			sheets = append(sheets, ws)
		}
	}
	return sheets, nil
}
