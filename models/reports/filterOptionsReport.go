package reports

import (
	"github.com/mmdatafocus/pizza_sales/models"
	"github.com/mmdatafocus/pizza_sales/utils"
)

// FilterOptions populate the filter widgets: distinct values of the
// date-filtered orders and the date bounds of the whole store.
type FilterOptions struct {
	Names      []string          `json:"names"`
	Sizes      []string          `json:"sizes"`
	Categories []string          `json:"categories"`
	MinDate    *models.OrderDate `json:"min_date"`
	MaxDate    *models.OrderDate `json:"max_date"`
}

func GetFilterOptions(store *models.RowStore, dateFiltered []models.Order) FilterOptions {
	opts := FilterOptions{Names: []string{}, Sizes: []string{}, Categories: []string{}}
	names := make([]string, 0, len(dateFiltered))
	sizes := make([]string, 0, len(dateFiltered))
	categories := make([]string, 0, len(dateFiltered))
	for _, o := range dateFiltered {
		names = append(names, o.Name)
		sizes = append(sizes, o.Size)
		categories = append(categories, o.Category)
	}
	if len(dateFiltered) > 0 {
		opts.Names = utils.UniqueSlice(names)
		opts.Sizes = utils.UniqueSlice(sizes)
		opts.Categories = utils.UniqueSlice(categories)
	}
	if minDate, maxDate, ok := store.DateBounds(); ok {
		opts.MinDate, opts.MaxDate = &minDate, &maxDate
	}
	return opts
}
