package reports_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/mmdatafocus/pizza_sales/models"
	"github.com/mmdatafocus/pizza_sales/models/reports"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleOrders = `date,name,size,type,price
2023-01-05,Margherita,M,Classic,12.50
2023-02-10,Pepperoni,L,Classic,15.00
2022-12-20,Veggie,S,Specialty,10.00
`

func readStore(t *testing.T, csv string) *models.RowStore {
	t.Helper()
	store, err := models.ReadRowStore("orders.csv", strings.NewReader(csv))
	require.NoError(t, err)
	return store
}

func datePtr(year int, month time.Month, day int) *models.OrderDate {
	d := models.NewOrderDate(year, month, day)
	return &d
}

func year2023() models.DateRange {
	return models.DateRange{Start: datePtr(2023, 1, 1), End: datePtr(2023, 12, 31)}
}

func assertDecimal(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(expected).Equal(actual), "expected %s, got %s", expected, actual)
}

func TestRunDashboard_DateWindow(t *testing.T) {
	store := readStore(t, sampleOrders)

	d, err := reports.RunDashboard(context.Background(), store, reports.DashboardFilter{DateRange: year2023()})
	require.NoError(t, err)

	assert.Equal(t, 2, d.DateOrderCount)
	assert.Equal(t, 2, d.OrderCount)
	assertDecimal(t, "27.5", d.TotalSales)

	require.Len(t, d.CategoryTotals, 1)
	assert.Equal(t, "Classic", d.CategoryTotals[0].Category)
	assertDecimal(t, "27.5", d.CategoryTotals[0].Price)

	require.Len(t, d.PizzaTotals, 2)
	assert.Equal(t, "Margherita", d.PizzaTotals[0].Name)
	assertDecimal(t, "12.5", d.PizzaTotals[0].Price)
	assert.Equal(t, "Pepperoni", d.PizzaTotals[1].Name)
	assertDecimal(t, "15", d.PizzaTotals[1].Price)

	require.Len(t, d.TimeSeries, 2)
	assert.Equal(t, "2023-Jan", d.TimeSeries[0].MonthYear)
	assertDecimal(t, "12.5", d.TimeSeries[0].Price)
	assert.Equal(t, "2023-Feb", d.TimeSeries[1].MonthYear)
	assertDecimal(t, "15", d.TimeSeries[1].Price)

	require.NotNil(t, d.Window)
	assert.Equal(t, "2023-01-01", d.Window.Start.String())
	assert.Equal(t, "2023-12-31", d.Window.End.String())
	assert.Equal(t, "2022-12-20", d.Options.MinDate.String())
	assert.Equal(t, "2023-02-10", d.Options.MaxDate.String())
	assert.Equal(t, []string{"Margherita", "Pepperoni"}, d.Options.Names)
}

func TestRunDashboard_AttributeFilterLeavesExportAlone(t *testing.T) {
	store := readStore(t, sampleOrders)
	filter := reports.DashboardFilter{
		DateRange:  models.DateRange{Start: datePtr(2022, 1, 1), End: datePtr(2023, 12, 31)},
		Attributes: models.AttributeFilter{Names: []string{"Veggie"}},
	}

	d, err := reports.RunDashboard(context.Background(), store, filter)
	require.NoError(t, err)
	require.Len(t, d.PizzaTotals, 1)
	assert.Equal(t, "Veggie", d.PizzaTotals[0].Name)
	assertDecimal(t, "10", d.PizzaTotals[0].Price)
	assert.Equal(t, 3, d.DateOrderCount)
	assert.Equal(t, 1, d.OrderCount)

	exported := reports.DateFilteredOrders(context.Background(), store, filter.DateRange)
	assert.Len(t, exported, 3)
	assert.Equal(t, []string{"Margherita", "Pepperoni", "Veggie"}, d.Options.Names)
}

func TestRunDashboard_TotalsAgree(t *testing.T) {
	store := readStore(t, `date,name,size,type,price
2015-01-01,hawaiian,M,classic,13.25
2015-01-01,classic_dlx,M,classic,16
2015-01-02,five_cheese,L,veggie,18.5
2015-02-11,hawaiian,L,classic,16.5
2015-02-14,thai_ckn,S,chicken,12.75
2015-03-03,five_cheese,L,veggie,18.5
`)

	d, err := reports.RunDashboard(context.Background(), store, reports.DashboardFilter{})
	require.NoError(t, err)

	assertDecimal(t, "95.5", d.TotalSales)
	sum := func(values ...decimal.Decimal) decimal.Decimal { return decimal.Sum(decimal.Zero, values...) }

	var cats, pizzas, sizes, months, roots []decimal.Decimal
	for _, c := range d.CategoryTotals {
		cats = append(cats, c.Price)
	}
	for _, p := range d.PizzaTotals {
		pizzas = append(pizzas, p.Price)
	}
	for _, s := range d.SizeTotals {
		sizes = append(sizes, s.Price)
	}
	for _, m := range d.TimeSeries {
		months = append(months, m.Price)
	}
	for _, h := range d.Hierarchy {
		roots = append(roots, h.Price)
	}
	for _, values := range [][]decimal.Decimal{cats, pizzas, sizes, months, roots} {
		assertDecimal(t, "95.5", sum(values...))
	}
	assert.Len(t, d.Scatter, 6)
	assert.Len(t, d.SummaryRows, 5)
	assert.Len(t, d.SampleRows, 6)
}

func TestRunDashboard_RowLimits(t *testing.T) {
	store := readStore(t, sampleOrders)

	d, err := reports.RunDashboard(context.Background(), store, reports.DashboardFilter{SummaryRows: 1, SampleRows: 2})
	require.NoError(t, err)
	require.Len(t, d.SummaryRows, 1)
	assert.Equal(t, reports.SummaryRow{Name: "Margherita", Category: "Classic", Size: "M", Price: d.SummaryRows[0].Price}, d.SummaryRows[0])
	assert.Len(t, d.SampleRows, 2)
}

func TestRunDashboard_EmptyStore(t *testing.T) {
	for _, store := range []*models.RowStore{nil, models.EmptyRowStore()} {
		d, err := reports.RunDashboard(context.Background(), store, reports.DashboardFilter{DateRange: year2023()})
		require.NoError(t, err)

		assert.Nil(t, d.Window)
		assert.Zero(t, d.OrderCount)
		assert.True(t, d.TotalSales.IsZero())
		assert.NotNil(t, d.CategoryTotals)
		assert.Empty(t, d.CategoryTotals)
		assert.Empty(t, d.PizzaTotals)
		assert.Empty(t, d.TimeSeries)
		assert.Empty(t, d.Hierarchy)
		assert.Empty(t, d.SizeTotals)
		assert.Empty(t, d.SummaryRows)
		assert.Empty(t, d.SampleRows)
		assert.Empty(t, d.Scatter)
		assert.Empty(t, d.Options.Names)
		assert.Nil(t, d.Options.MinDate)
	}
}

func TestRunDashboard_StartAfterEnd(t *testing.T) {
	store := readStore(t, sampleOrders)
	filter := reports.DashboardFilter{DateRange: models.DateRange{Start: datePtr(2023, 12, 31), End: datePtr(2023, 1, 1)}}

	d, err := reports.RunDashboard(context.Background(), store, filter)
	require.NoError(t, err)
	assert.Zero(t, d.DateOrderCount)
	assert.Empty(t, d.CategoryTotals)
	assert.Empty(t, d.Options.Names)
}

func TestRunDashboard_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := reports.RunDashboard(ctx, readStore(t, sampleOrders), reports.DashboardFilter{})
	assert.ErrorIs(t, err, context.Canceled)
}
