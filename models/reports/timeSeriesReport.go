package reports

import (
	"sort"

	"github.com/mmdatafocus/pizza_sales/models"
	"github.com/shopspring/decimal"
)

type TimeSeriesPoint struct {
	MonthYear string           `json:"month_year"`
	Month     models.OrderDate `json:"month"`
	Price     decimal.Decimal  `json:"price"`
}

// GetTimeSeries sums price per calendar month. Buckets are sorted by the first
// day of the month and the "2006-Jan" label is attached afterwards, so the
// order never depends on the label text.
func GetTimeSeries(orders []models.Order) []TimeSeriesPoint {
	points := make([]TimeSeriesPoint, 0)
	byMonth := make(map[string]int)
	for _, o := range orders {
		month := o.OrderDate.MonthStart()
		key := month.String()
		i, ok := byMonth[key]
		if !ok {
			i = len(points)
			byMonth[key] = i
			points = append(points, TimeSeriesPoint{MonthYear: month.MonthYear(), Month: month})
		}
		points[i].Price = points[i].Price.Add(o.Price)
	}

	sort.SliceStable(points, func(i, j int) bool { return points[i].Month.Before(points[j].Month) })
	return points
}
