package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/sheet-insights/internal/domain/dataset"
)

func orderRow(date, order string, amount float64) dataset.Row {
	row := dataset.Row{
		"Date":   dataset.String(date),
		"Amount": dataset.Number(amount),
	}
	if order != "" {
		row["Order"] = dataset.String(order)
	} else {
		row["Order"] = dataset.Null
	}
	return row
}

func TestPurchaseOrderReport(t *testing.T) {
	base := PurchaseOrderReport{
		DateColumn:  "Date",
		ValueColumn: "Amount",
		OrderColumn: "Order",
		Month:       "2024-03",
	}

	t.Run("descending by total, not chronological", func(t *testing.T) {
		ws := sheet([]string{"Date", "Order", "Amount"}, []dataset.Row{
			orderRow("2024-03-05", "PO-1", 200),
			orderRow("2024-03-10", "PO-2", 500),
		})

		buckets := base.Run(ws)

		require.Len(t, buckets, 2)
		assert.Equal(t, "PO-2", buckets[0].Key)
		assert.Equal(t, 500.0, buckets[0].Total)
		assert.Equal(t, "PO-1", buckets[1].Key)
		assert.Equal(t, 200.0, buckets[1].Total)
	})

	t.Run("sums repeated identifiers", func(t *testing.T) {
		ws := sheet([]string{"Date", "Order", "Amount"}, []dataset.Row{
			orderRow("2024-03-01", "PO-1", 100),
			orderRow("2024-03-15", "PO-1", 100),
			orderRow("2024-03-20", "PO-2", 150),
		})

		buckets := base.Run(ws)
		require.Len(t, buckets, 2)
		assert.Equal(t, "PO-1", buckets[0].Key)
		assert.Equal(t, 200.0, buckets[0].Total)
	})

	t.Run("month window is inclusive of the last day", func(t *testing.T) {
		ws := sheet([]string{"Date", "Order", "Amount"}, []dataset.Row{
			orderRow("2024-03-01", "PO-first", 1),
			orderRow("2024-03-31", "PO-last", 2),
			orderRow("2024-02-29", "PO-before", 4),
			orderRow("2024-04-01", "PO-after", 8),
		})

		buckets := base.Run(ws)
		require.Len(t, buckets, 2)
		total := buckets[0].Total + buckets[1].Total
		assert.Equal(t, 3.0, total)
	})

	t.Run("rows without an identifier are excluded", func(t *testing.T) {
		ws := sheet([]string{"Date", "Order", "Amount"}, []dataset.Row{
			orderRow("2024-03-05", "PO-1", 10),
			orderRow("2024-03-06", "", 99),
		})

		buckets := base.Run(ws)
		require.Len(t, buckets, 1)
		assert.Equal(t, "PO-1", buckets[0].Key)
	})

	t.Run("numeric identifiers keep their raw text", func(t *testing.T) {
		order := dataset.Number(1001)
		order.Formatted = "1001"
		ws := sheet([]string{"Date", "Order", "Amount"}, []dataset.Row{
			{"Date": dataset.String("2024-03-05"), "Order": order, "Amount": dataset.Number(7)},
		})

		buckets := base.Run(ws)
		require.Len(t, buckets, 1)
		assert.Equal(t, "1001", buckets[0].Key)
	})

	t.Run("no month selected yields nothing", func(t *testing.T) {
		r := base
		r.Month = ""
		ws := sheet([]string{"Date", "Order", "Amount"}, []dataset.Row{
			orderRow("2024-03-05", "PO-1", 10),
		})
		assert.Empty(t, r.Run(ws))
	})
}
