package reports

import (
	"github.com/mmdatafocus/pizza_sales/models"
	"github.com/shopspring/decimal"
)

type CategoryTotal struct {
	Category string          `json:"type"`
	Price    decimal.Decimal `json:"price"`
}

type PizzaTotal struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

type SizeTotal struct {
	Size  string          `json:"size"`
	Price decimal.Decimal `json:"price"`
}

// groupSum sums price per key. Keys come back in first-seen order; display
// order is up to the renderer.
func groupSum(orders []models.Order, key func(models.Order) string) ([]string, map[string]decimal.Decimal) {
	keys := make([]string, 0)
	sums := make(map[string]decimal.Decimal)
	for _, o := range orders {
		k := key(o)
		sum, seen := sums[k]
		if !seen {
			keys = append(keys, k)
		}
		sums[k] = sum.Add(o.Price)
	}
	return keys, sums
}

func GetCategoryTotals(orders []models.Order) []CategoryTotal {
	keys, sums := groupSum(orders, func(o models.Order) string { return o.Category })
	out := make([]CategoryTotal, 0, len(keys))
	for _, k := range keys {
		out = append(out, CategoryTotal{Category: k, Price: sums[k]})
	}
	return out
}

func GetPizzaTotals(orders []models.Order) []PizzaTotal {
	keys, sums := groupSum(orders, func(o models.Order) string { return o.Name })
	out := make([]PizzaTotal, 0, len(keys))
	for _, k := range keys {
		out = append(out, PizzaTotal{Name: k, Price: sums[k]})
	}
	return out
}

func GetSizeTotals(orders []models.Order) []SizeTotal {
	keys, sums := groupSum(orders, func(o models.Order) string { return o.Size })
	out := make([]SizeTotal, 0, len(keys))
	for _, k := range keys {
		out = append(out, SizeTotal{Size: k, Price: sums[k]})
	}
	return out
}

// TotalSales is the plain sum of price over orders.
func TotalSales(orders []models.Order) decimal.Decimal {
	total := decimal.Zero
	for _, o := range orders {
		total = total.Add(o.Price)
	}
	return total
}
