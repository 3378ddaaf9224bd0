package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/FACorreiaa/sheet-insights/internal/domain/dataset"
)

func TestFileName(t *testing.T) {
	ws := &dataset.Worksheet{FileName: "costs 2024.xlsx", SheetName: "Sheet1"}
	assert.Equal(t, "costs 2024_Sheet1.xlsx", FileName(ws))

	ws = &dataset.Worksheet{FileName: "orders.csv", SheetName: "orders"}
	assert.Equal(t, "orders_orders.xlsx", FileName(ws))
}

func TestWorksheet(t *testing.T) {
	t.Run("raw grid round-trips untouched", func(t *testing.T) {
		raw := [][]string{
			{"Date", "Amount"},
			{"15/01/2024", "1.234,50"},
			{"20/01/2024", ""},
		}
		ws := dataset.NewWorksheet("costs.csv", "costs", []string{"Date", "Amount"}, nil)
		ws.Raw = raw

		data, err := Worksheet(ws)
		require.NoError(t, err)

		got := readBack(t, data, "costs")
		assert.Equal(t, "Date", got[0][0])
		assert.Equal(t, "1.234,50", got[1][1], "raw text survives even when it never parsed as a number")
		assert.Equal(t, "15/01/2024", got[1][0])
	})

	t.Run("falls back to display strings without a raw grid", func(t *testing.T) {
		amount := dataset.Number(99.5)
		amount.Formatted = "99,50 €"
		ws := dataset.NewWorksheet("memory.xlsx", "Data", []string{"Project", "Amount"}, []dataset.Row{
			{"Project": dataset.String("Alpha"), "Amount": amount},
			{"Project": dataset.String("Beta"), "Amount": dataset.Null},
		})

		data, err := Worksheet(ws)
		require.NoError(t, err)

		got := readBack(t, data, "Data")
		require.Len(t, got, 3)
		assert.Equal(t, []string{"Project", "Amount"}, got[0])
		assert.Equal(t, "99,50 €", got[1][1], "display prefers the formatted text")
		assert.Equal(t, "Alpha", got[1][0])
	})

	t.Run("blank sheet name exports as Sheet1", func(t *testing.T) {
		ws := dataset.NewWorksheet("x.csv", "", []string{"A"}, []dataset.Row{
			{"A": dataset.String("v")},
		})

		data, err := Worksheet(ws)
		require.NoError(t, err)

		got := readBack(t, data, "Sheet1")
		require.Len(t, got, 2)
		assert.Equal(t, "v", got[1][0])
	})
}

func readBack(t *testing.T, data []byte, sheet string) [][]string {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(sheet)
	require.NoError(t, err)
	return rows
}
