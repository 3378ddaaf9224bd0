package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/FACorreiaa/sheet-insights/internal/domain/dataset"
)

func TestEligible(t *testing.T) {
	t.Run("zero data rows is ineligible for every role set", func(t *testing.T) {
		ws := sheet([]string{"Date", "Amount"}, nil)

		assert.False(t, Eligible(ws))
		assert.False(t, Eligible(ws, RoleDate))
		assert.False(t, Eligible(ws, RoleDate, RoleNumeric))
		assert.False(t, Eligible(ws, RoleDate, RoleNumeric, RoleText, RoleIdentifier))
	})

	t.Run("every required role needs a satisfying column", func(t *testing.T) {
		ws := sheet([]string{"Date", "Amount", "Project"}, []dataset.Row{
			{"Date": dataset.String("2024-01-15"), "Amount": dataset.Number(10), "Project": dataset.String("Alpha")},
		})

		assert.True(t, Eligible(ws, RoleDate, RoleNumeric))
		assert.True(t, Eligible(ws, RoleDate, RoleNumeric, RoleText))
		assert.False(t, Eligible(ws, RoleDate, RoleNumeric, RoleIdentifier))
	})

	t.Run("only the first data row counts", func(t *testing.T) {
		// Blank date in row one, real dates after: the classifier's five-row
		// sample would see them, the eligibility pre-filter does not.
		ws := sheet([]string{"Date", "Amount"}, []dataset.Row{
			{"Date": dataset.Null, "Amount": dataset.Number(1)},
			{"Date": dataset.String("2024-01-15"), "Amount": dataset.Number(2)},
			{"Date": dataset.String("2024-01-16"), "Amount": dataset.Number(3)},
		})

		assert.False(t, Eligible(ws, RoleDate, RoleNumeric))
		assert.True(t, Classify(ws, "Date").DateLike, "classification still offers the column")
	})

	t.Run("identifier role from the first row", func(t *testing.T) {
		ws := sheet([]string{"Date", "Amount", "PO"}, []dataset.Row{
			{"Date": dataset.String("2024-01-15"), "Amount": dataset.Number(10), "PO": dataset.String("PO-1")},
		})

		assert.True(t, Eligible(ws, RoleDate, RoleNumeric, RoleIdentifier))
	})

	t.Run("text role excludes date-like columns", func(t *testing.T) {
		// The only string column parses as a date, so no column fills the
		// text role.
		ws := sheet([]string{"Date", "Amount"}, []dataset.Row{
			{"Date": dataset.String("2024-01-15"), "Amount": dataset.Number(10)},
		})

		assert.False(t, Eligible(ws, RoleText))
	})
}
