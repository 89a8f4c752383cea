package models

import "github.com/shopspring/decimal"

// Column names of the normalised schema.
const (
	ColumnOrderDate = "order_date"
	ColumnName      = "name"
	ColumnSize      = "size"
	ColumnCategory  = "type"
	ColumnPrice     = "price"
)

// Order is one pizza sold: a single line of the dataset.
type Order struct {
	OrderDate OrderDate       `json:"order_date"`
	Name      string          `json:"name"`
	Size      string          `json:"size"`
	Category  string          `json:"type"`
	Price     decimal.Decimal `json:"price"`
	// Extra holds the remaining columns of the uploaded file (id, time, ...).
	Extra map[string]string `json:"extra,omitempty"`
}

// Value returns the cell of the given normalised column as text.
func (o Order) Value(column string) string {
	switch column {
	case ColumnOrderDate:
		return o.OrderDate.String()
	case ColumnName:
		return o.Name
	case ColumnSize:
		return o.Size
	case ColumnCategory:
		return o.Category
	case ColumnPrice:
		return o.Price.String()
	default:
		return o.Extra[column]
	}
}
