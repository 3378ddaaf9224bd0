package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/sheet-insights/internal/domain/dataset"
)

func TestMonthOptions(t *testing.T) {
	t.Run("distinct months in chronological order", func(t *testing.T) {
		ws := sheet([]string{"Date", "Amount"}, []dataset.Row{
			costRow("2024-02-10", 1),
			costRow("2024-01-05", 1),
			costRow("2024-02-20", 1),
			{"Date": dataset.String("garbage"), "Amount": dataset.Number(1)},
		})

		options := MonthOptions(ws, "Date")

		require.Len(t, options, 2)
		assert.Equal(t, "2024-01", options[0].Key)
		assert.Equal(t, "01/2024", options[0].Label)
		assert.Equal(t, "2024-02", options[1].Key)
	})

	t.Run("picker and aggregation agree on date rules", func(t *testing.T) {
		// Every offered month must produce at least one monthly bucket.
		ws := sheet([]string{"Date", "Amount"}, []dataset.Row{
			costRow("15/03/2024", 10),
			costRow("2024-04-01", 20),
		})

		options := MonthOptions(ws, "Date")
		buckets := MonthlyReport{DateColumn: "Date", ValueColumn: "Amount"}.Run(ws)

		require.Equal(t, len(options), len(buckets))
		for i, opt := range options {
			assert.Equal(t, opt.Key, buckets[i].Key)
		}
	})
}

func TestProjectOptions(t *testing.T) {
	t.Run("distinct non-empty strings in first-seen order", func(t *testing.T) {
		ws := sheet([]string{"Project"}, []dataset.Row{
			{"Project": dataset.String("Beta")},
			{"Project": dataset.String("Alpha")},
			{"Project": dataset.String("Beta")},
			{"Project": dataset.Null},
			{"Project": dataset.Number(12)}, // not a string value
		})

		assert.Equal(t, []string{"Beta", "Alpha"}, ProjectOptions(ws, "Project"))
	})
}

func TestSearchProjects(t *testing.T) {
	t.Run("fuzzy narrows and ranks", func(t *testing.T) {
		options := []string{"Website Redesign", "Mobile App", "Data Warehouse"}

		matches := SearchProjects(options, "web")
		require.NotEmpty(t, matches)
		assert.Equal(t, "Website Redesign", matches[0])
	})

	t.Run("empty query returns everything", func(t *testing.T) {
		options := []string{"A", "B"}
		assert.Equal(t, options, SearchProjects(options, ""))
	})
}
