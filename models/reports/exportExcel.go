package reports

import (
	"io"

	"github.com/mmdatafocus/pizza_sales/models"
	"github.com/xuri/excelize/v2"
)

// ExportExcel writes the same table as ExportCsv into a single-sheet workbook.
// Prices are numeric cells so spreadsheet formulas work on them.
func ExportExcel(w io.Writer, store *models.RowStore, orders []models.Order) error {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := ExportExcelSheetName
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return err
	}

	columns := exportColumns(store)
	header := make([]interface{}, len(columns))
	for i, col := range columns {
		header[i] = col
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return err
	}

	// Add data
	for i, o := range orders {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := make([]interface{}, len(columns))
		for j, col := range columns {
			if col == models.ColumnPrice {
				values[j] = o.Price.InexactFloat64()
				continue
			}
			values[j] = o.Value(col)
		}
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return err
		}
	}

	return f.Write(w)
}
