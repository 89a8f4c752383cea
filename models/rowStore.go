package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mmdatafocus/pizza_sales/utils"
)

// Schema errors. NewRowStore returns them together with an empty, usable store.
var (
	ErrMissingDateColumn = errors.New("column 'date' not found in dataset")
	ErrMissingColumn     = errors.New("required column not found in dataset")
)

const sourceDateColumn = "date"

// columns left behind by earlier exports (pandas index, R row names)
var droppedColumns = map[string]bool{
	"unnamed: 0": true,
	"x":          true,
}

var requiredColumns = []string{ColumnName, ColumnSize, ColumnCategory, ColumnPrice}

// RowStore is the in-memory dataset of one session. It is immutable once
// built, so concurrent readers need no locking.
type RowStore struct {
	columns []string
	orders  []Order
	// rows dropped because the date or price could not be parsed
	skipped int
}

// EmptyRowStore is the "no data" store used after a schema error.
func EmptyRowStore() *RowStore {
	return &RowStore{}
}

// NormalizeHeader trims and lower-cases a header cell. Blank headers get the
// "unnamed: <index>" name spreadsheet tools give them.
func NormalizeHeader(header string, index int) string {
	h := strings.ToLower(strings.TrimSpace(header))
	if h == "" {
		return fmt.Sprintf("unnamed: %d", index)
	}
	return h
}

// NewRowStore applies the Order schema to a raw table.
func NewRowStore(table utils.Table) (*RowStore, error) {
	index := map[string]int{}
	var columns []string
	hasDate := false
	for i, h := range table.Header {
		name := NormalizeHeader(h, i)
		if name == sourceDateColumn && !hasDate {
			name = ColumnOrderDate
			hasDate = true
		} else if name == ColumnOrderDate {
			// only a column literally named "date" feeds order_date
			continue
		}
		if droppedColumns[name] {
			continue
		}
		if _, dup := index[name]; dup {
			// first occurrence wins
			continue
		}
		index[name] = i
		columns = append(columns, name)
	}

	if !hasDate {
		return EmptyRowStore(), ErrMissingDateColumn
	}
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return EmptyRowStore(), fmt.Errorf("%w: %s", ErrMissingColumn, col)
		}
	}

	store := &RowStore{columns: columns, orders: make([]Order, 0, len(table.Rows))}
	for _, row := range table.Rows {
		cell := func(col string) string {
			i := index[col]
			if i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}

		date, err := ParseOrderDate(cell(ColumnOrderDate))
		if err != nil {
			store.skipped++
			continue
		}
		price, err := utils.ParseDecimal(cell(ColumnPrice))
		if err != nil {
			store.skipped++
			continue
		}

		order := Order{
			OrderDate: date,
			Name:      cell(ColumnName),
			Size:      cell(ColumnSize),
			Category:  cell(ColumnCategory),
			Price:     price,
		}
		for _, col := range columns {
			if isSchemaColumn(col) {
				continue
			}
			if order.Extra == nil {
				order.Extra = map[string]string{}
			}
			order.Extra[col] = cell(col)
		}
		store.orders = append(store.orders, order)
	}
	return store, nil
}

func isSchemaColumn(col string) bool {
	switch col {
	case ColumnOrderDate, ColumnName, ColumnSize, ColumnCategory, ColumnPrice:
		return true
	}
	return false
}

// Columns are the normalised column names in file order.
func (s *RowStore) Columns() []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s.columns))
	copy(out, s.columns)
	return out
}

// Orders returns the rows in store order. The slice is a copy; the Extra maps are shared and must not be modified.
func (s *RowStore) Orders() []Order {
	if s == nil {
		return []Order{}
	}
	out := make([]Order, len(s.orders))
	copy(out, s.orders)
	return out
}

func (s *RowStore) Len() int {
	if s == nil {
		return 0
	}
	return len(s.orders)
}

func (s *RowStore) IsEmpty() bool {
	return s.Len() == 0
}

// Skipped is the number of source rows left out for an unparseable date or price.
func (s *RowStore) Skipped() int {
	if s == nil {
		return 0
	}
	return s.skipped
}

// DateBounds returns the earliest and latest order date. ok is false for an empty store.
func (s *RowStore) DateBounds() (minDate OrderDate, maxDate OrderDate, ok bool) {
	if s.IsEmpty() {
		return OrderDate{}, OrderDate{}, false
	}
	minDate, maxDate = s.orders[0].OrderDate, s.orders[0].OrderDate
	for _, o := range s.orders[1:] {
		if o.OrderDate.Before(minDate) {
			minDate = o.OrderDate
		}
		if o.OrderDate.After(maxDate) {
			maxDate = o.OrderDate
		}
	}
	return minDate, maxDate, true
}
