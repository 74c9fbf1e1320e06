package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkbook(t *testing.T) {
	f, err := Workbook(sampleExpenses())
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Expenses"}, f.GetSheetList())

	rows, err := f.GetRows("Expenses")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"Date", "Title", "Category", "Amount", "Notes"}, rows[0])
	assert.Equal(t, []string{"2025-03-14", "Groceries, weekly", "Food", "82.5", `the "good" bakery`}, rows[1])

	// trailing empty cells are trimmed by GetRows
	assert.Equal(t, []string{"2025-03-01", "Bus pass", "Transport", "30"}, rows[2])
}

func TestWorkbookEmpty(t *testing.T) {
	f, err := Workbook(nil)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Expenses")
	require.NoError(t, err)
	require.Len(t, rows, 1, "only the header row")
}
