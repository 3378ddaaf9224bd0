package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewWorksheet(t *testing.T) {
	t.Run("pads missing columns with null", func(t *testing.T) {
		ws := NewWorksheet("a.xlsx", "Sheet1", []string{"Date", "Amount", "Project"}, []Row{
			{"Date": String("2024-01-01"), "Amount": Number(10)},
		})

		row := ws.Rows[0]
		assert.True(t, row.Cell("Project").IsNull())
		assert.False(t, row.Cell("Amount").IsNull())
	})

	t.Run("key combines file and sheet name", func(t *testing.T) {
		a := NewWorksheet("a.xlsx", "Data", nil, nil)
		b := NewWorksheet("b.xlsx", "Data", nil, nil)
		assert.NotEqual(t, a.Key(), b.Key())
	})

	t.Run("row lookup of undeclared column is null", func(t *testing.T) {
		ws := NewWorksheet("a.xlsx", "Sheet1", []string{"Date"}, []Row{
			{"Date": String("2024-01-01")},
		})
		assert.True(t, ws.Rows[0].Cell("Nope").IsNull())
	})
}
