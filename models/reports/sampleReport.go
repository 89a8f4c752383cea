package reports

import (
	"github.com/mmdatafocus/pizza_sales/models"
	"github.com/shopspring/decimal"
)

// SummaryRow is the projection shown in the summary table.
type SummaryRow struct {
	Name     string          `json:"name"`
	Category string          `json:"type"`
	Size     string          `json:"size"`
	Price    decimal.Decimal `json:"price"`
}

// ScatterPoint is one order of the sales vs size scatter plot.
type ScatterPoint struct {
	Size  string          `json:"size"`
	Price decimal.Decimal `json:"price"`
}

func head(orders []models.Order, n int) []models.Order {
	if n < 0 {
		n = 0
	}
	if n > len(orders) {
		n = len(orders)
	}
	return orders[:n]
}

// GetSummaryRows returns the first n orders, projected to name/type/size/price.
func GetSummaryRows(orders []models.Order, n int) []SummaryRow {
	rows := head(orders, n)
	out := make([]SummaryRow, 0, len(rows))
	for _, o := range rows {
		out = append(out, SummaryRow{Name: o.Name, Category: o.Category, Size: o.Size, Price: o.Price})
	}
	return out
}

// GetSampleOrders returns the first n orders with every column.
func GetSampleOrders(orders []models.Order, n int) []models.Order {
	rows := head(orders, n)
	out := make([]models.Order, len(rows))
	copy(out, rows)
	return out
}

func GetScatterPoints(orders []models.Order) []ScatterPoint {
	out := make([]ScatterPoint, 0, len(orders))
	for _, o := range orders {
		out = append(out, ScatterPoint{Size: o.Size, Price: o.Price})
	}
	return out
}
