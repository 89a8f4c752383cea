package reports

import (
	"encoding/csv"
	"io"

	"github.com/mmdatafocus/pizza_sales/models"
)

const (
	ExportFileName       = "Pizza_Sales"
	CsvContentType       = "text/csv"
	ExcelContentType     = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	ExportExcelSheetName = "Pizza_Sales"
)

// schema columns written when the store has no columns of its own (schema error)
var defaultExportColumns = []string{
	models.ColumnOrderDate,
	models.ColumnName,
	models.ColumnSize,
	models.ColumnCategory,
	models.ColumnPrice,
}

func exportColumns(store *models.RowStore) []string {
	if cols := store.Columns(); len(cols) > 0 {
		return cols
	}
	return defaultExportColumns
}

func exportRecord(o models.Order, columns []string) []string {
	record := make([]string, len(columns))
	for i, col := range columns {
		record[i] = o.Value(col)
	}
	return record
}

// ExportCsv writes the header and one UTF-8 line per order, no aggregation.
// Callers pass the date-filtered orders so the download covers the whole
// selected window regardless of the attribute filters.
func ExportCsv(w io.Writer, store *models.RowStore, orders []models.Order) error {
	columns := exportColumns(store)
	cw := csv.NewWriter(w)
	if err := cw.Write(columns); err != nil {
		return err
	}
	for _, o := range orders {
		if err := cw.Write(exportRecord(o, columns)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
