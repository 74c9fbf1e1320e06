package export

import (
	"fmt"

	"github.com/trackify/trackify-backend/internal/domain/models"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Expenses"

// Workbook renders the expenses as an XLSX workbook with the same columns as
// the CSV export.
func Workbook(expenses []models.Expense) (*excelize.File, error) {
	f := excelize.NewFile()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("error creating sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	header := []interface{}{"Date", "Title", "Category", "Amount", "Notes"}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("error writing header row: %w", err)
	}

	for i, expense := range expenses {
		row := []interface{}{
			expense.Date.Format("2006-01-02"),
			expense.Title,
			expense.Category,
			expense.Amount,
			expense.Notes,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("error locating row %d: %w", i+2, err)
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("error writing row %d: %w", i+2, err)
		}
	}

	f.SetColWidth(sheetName, "A", "A", 12)
	f.SetColWidth(sheetName, "B", "B", 28)
	f.SetColWidth(sheetName, "E", "E", 36)

	return f, nil
}
