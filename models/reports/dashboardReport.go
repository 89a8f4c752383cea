package reports

import (
	"context"
	"time"

	"github.com/mmdatafocus/pizza_sales/config"
	"github.com/mmdatafocus/pizza_sales/models"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

// DashboardFilter carries everything the filter widgets can set.
type DashboardFilter struct {
	DateRange  models.DateRange       `json:"date_range"`
	Attributes models.AttributeFilter `json:"attributes"`
	// zero means the configured default (5 and 500)
	SummaryRows int `json:"summary_rows,omitempty"`
	SampleRows  int `json:"sample_rows,omitempty"`
}

// Dashboard holds every derived view for one filter state.
type Dashboard struct {
	// nil when the store is empty
	Window         *models.DateWindow `json:"window"`
	DateOrderCount int                `json:"date_order_count"`
	OrderCount     int                `json:"order_count"`
	TotalSales     decimal.Decimal    `json:"total_sales"`

	CategoryTotals []CategoryTotal   `json:"category_totals"`
	PizzaTotals    []PizzaTotal      `json:"pizza_totals"`
	TimeSeries     []TimeSeriesPoint `json:"time_series"`
	Hierarchy      []*HierarchyNode  `json:"hierarchy"`
	SizeTotals     []SizeTotal       `json:"size_totals"`
	SummaryRows    []SummaryRow      `json:"summary_rows"`
	SampleRows     []models.Order    `json:"sample_rows"`
	Scatter        []ScatterPoint    `json:"scatter"`
	Options        FilterOptions     `json:"options"`
}

// DateFilteredOrders is the date-window branch of the pipeline. It feeds the
// export and the filter options; attribute filters never apply to it.
func DateFilteredOrders(ctx context.Context, store *models.RowStore, r models.DateRange) []models.Order {
	_, span := startSpan(ctx, "DateFilteredOrders")
	defer span.End()

	orders := models.FilterByDate(store, r)
	span.SetAttributes(attribute.Int("orders", len(orders)))
	return orders
}

// RunDashboard runs one complete pass: date filter, attribute filter, then
// every aggregation over the attribute-filtered orders. It is defined for any
// filter combination; the only error is a cancelled context.
func RunDashboard(ctx context.Context, store *models.RowStore, filter DashboardFilter) (*Dashboard, error) {
	started := time.Now()
	ctx, span := startSpan(ctx, "RunDashboard")
	defer span.End()

	if store == nil {
		store = models.EmptyRowStore()
	}

	dated := DateFilteredOrders(ctx, store, filter.DateRange)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	_, attrSpan := startSpan(ctx, "AttributeFilter")
	orders := filter.Attributes.Apply(dated)
	attrSpan.SetAttributes(attribute.Int("orders", len(orders)))
	attrSpan.End()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	summaryRows := filter.SummaryRows
	if summaryRows <= 0 {
		summaryRows = config.SummaryRowLimit()
	}
	sampleRows := filter.SampleRows
	if sampleRows <= 0 {
		sampleRows = config.RawSampleRowLimit()
	}

	_, aggSpan := startSpan(ctx, "Aggregate")
	d := &Dashboard{
		DateOrderCount: len(dated),
		OrderCount:     len(orders),
		TotalSales:     TotalSales(orders),
		CategoryTotals: GetCategoryTotals(orders),
		PizzaTotals:    GetPizzaTotals(orders),
		TimeSeries:     GetTimeSeries(orders),
		Hierarchy:      GetHierarchyTotals(orders),
		SizeTotals:     GetSizeTotals(orders),
		SummaryRows:    GetSummaryRows(orders, summaryRows),
		SampleRows:     GetSampleOrders(orders, sampleRows),
		Scatter:        GetScatterPoints(orders),
		Options:        GetFilterOptions(store, dated),
	}
	aggSpan.End()

	if w, ok := filter.DateRange.Resolve(store); ok {
		d.Window = &w
	}

	logSlowReport(ctx, "RunDashboard", started, logrus.Fields{
		"store_rows": store.Len(),
		"orders":     len(orders),
	})
	return d, nil
}
