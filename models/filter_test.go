package models_test

import (
	"testing"
	"time"

	"github.com/mmdatafocus/pizza_sales/models"
	"github.com/stretchr/testify/assert"
)

const sampleOrders = `date,name,size,type,price
2023-01-05,Margherita,M,Classic,12.50
2023-02-10,Pepperoni,L,Classic,15.00
2022-12-20,Veggie,S,Specialty,10.00
`

func datePtr(year int, month time.Month, day int) *models.OrderDate {
	d := models.NewOrderDate(year, month, day)
	return &d
}

func orderNames(orders []models.Order) []string {
	names := make([]string, 0, len(orders))
	for _, o := range orders {
		names = append(names, o.Name)
	}
	return names
}

func TestFilterByDate(t *testing.T) {
	store := readStore(t, sampleOrders)

	tests := []struct {
		name     string
		r        models.DateRange
		expected []string
	}{
		{"no bounds keeps everything", models.DateRange{}, []string{"Margherita", "Pepperoni", "Veggie"}},
		{"year 2023", models.DateRange{Start: datePtr(2023, 1, 1), End: datePtr(2023, 12, 31)}, []string{"Margherita", "Pepperoni"}},
		{"bounds are inclusive", models.DateRange{Start: datePtr(2023, 1, 5), End: datePtr(2023, 2, 10)}, []string{"Margherita", "Pepperoni"}},
		{"open start", models.DateRange{End: datePtr(2023, 1, 5)}, []string{"Margherita", "Veggie"}},
		{"open end", models.DateRange{Start: datePtr(2023, 2, 1)}, []string{"Pepperoni"}},
		{"start after end", models.DateRange{Start: datePtr(2023, 12, 31), End: datePtr(2023, 1, 1)}, []string{}},
		{"outside data", models.DateRange{Start: datePtr(2030, 1, 1)}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := models.FilterByDate(store, tt.r)
			assert.NotNil(t, got)
			assert.Equal(t, tt.expected, orderNames(got))
		})
	}
}

func TestFilterByDate_EmptyStore(t *testing.T) {
	got := models.FilterByDate(models.EmptyRowStore(), models.DateRange{Start: datePtr(2023, 1, 1)})
	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.Empty(t, models.FilterByDate(nil, models.DateRange{}))
}

func TestDateRange_Resolve(t *testing.T) {
	store := readStore(t, sampleOrders)

	w, ok := models.DateRange{End: datePtr(2023, 1, 31)}.Resolve(store)
	assert.True(t, ok)
	assert.Equal(t, "2022-12-20", w.Start.String())
	assert.Equal(t, "2023-01-31", w.End.String())

	_, ok = models.DateRange{}.Resolve(models.EmptyRowStore())
	assert.False(t, ok)
}

func TestAttributeFilter_Apply(t *testing.T) {
	orders := readStore(t, sampleOrders).Orders()

	tests := []struct {
		name     string
		filter   models.AttributeFilter
		expected []string
	}{
		{"empty filter", models.AttributeFilter{}, []string{"Margherita", "Pepperoni", "Veggie"}},
		{"by name", models.AttributeFilter{Names: []string{"Pepperoni", "Veggie"}}, []string{"Pepperoni", "Veggie"}},
		{"by size", models.AttributeFilter{Sizes: []string{"M"}}, []string{"Margherita"}},
		{"by category", models.AttributeFilter{Categories: []string{"Classic"}}, []string{"Margherita", "Pepperoni"}},
		{"fields combine", models.AttributeFilter{Sizes: []string{"S", "L"}, Categories: []string{"Classic"}}, []string{"Pepperoni"}},
		{"case sensitive", models.AttributeFilter{Names: []string{"margherita"}}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, orderNames(tt.filter.Apply(orders)))
		})
	}
}

func TestAttributeFilter_Idempotent(t *testing.T) {
	orders := readStore(t, sampleOrders).Orders()
	f := models.AttributeFilter{Categories: []string{"Classic"}}

	once := f.Apply(orders)
	assert.Equal(t, once, f.Apply(once))
	assert.Len(t, orders, 3)
	assert.True(t, models.AttributeFilter{}.IsEmpty())
	assert.False(t, f.IsEmpty())
}
