package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"spendlog/internal/core"
	"spendlog/internal/stats"
)

const sheetName = "Expenses"

// XLSX writes a styled workbook with the same columns as the CSV export
// plus a summary row (grand total and record count).
func XLSX(w io.Writer, list []core.Expense) error {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", sheetName)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	summaryStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"FFC000"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	f.SetColWidth(sheetName, "A", "A", 28)
	f.SetColWidth(sheetName, "B", "B", 12)
	f.SetColWidth(sheetName, "C", "C", 18)
	f.SetColWidth(sheetName, "D", "D", 12)
	f.SetColWidth(sheetName, "E", "E", 16)
	f.SetColWidth(sheetName, "F", "F", 32)

	headers := []string{"Title", "Amount", "Category", "Date", "Payment", "Notes"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for i, e := range list {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), e.Title)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), e.Amount)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), core.CategoryByID(e.Category).Label)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), e.Date.String())
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), string(e.Payment))
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), e.Notes)
	}

	summaryRow := len(list) + 2
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", summaryRow), "Total")
	f.SetCellValue(sheetName, fmt.Sprintf("B%d", summaryRow), stats.Total(list))
	f.SetCellValue(sheetName, fmt.Sprintf("C%d", summaryRow), fmt.Sprintf("%d records", len(list)))
	f.MergeCell(sheetName, fmt.Sprintf("C%d", summaryRow), fmt.Sprintf("F%d", summaryRow))
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("F%d", summaryRow), summaryStyle)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
