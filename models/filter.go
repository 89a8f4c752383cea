package models

// DateRange is an inclusive [Start, End] window. A nil bound defaults to the
// earliest/latest order date of the store.
type DateRange struct {
	Start *OrderDate `json:"start,omitempty"`
	End   *OrderDate `json:"end,omitempty"`
}

// DateWindow is a DateRange with both bounds resolved.
type DateWindow struct {
	Start OrderDate `json:"start"`
	End   OrderDate `json:"end"`
}

func (w DateWindow) Contains(d OrderDate) bool {
	return !d.Before(w.Start) && !d.After(w.End)
}

// Resolve fills missing bounds from the store. ok is false for an empty store.
func (r DateRange) Resolve(store *RowStore) (DateWindow, bool) {
	minDate, maxDate, ok := store.DateBounds()
	if !ok {
		return DateWindow{}, false
	}
	w := DateWindow{Start: minDate, End: maxDate}
	if r.Start != nil {
		w.Start = *r.Start
	}
	if r.End != nil {
		w.End = *r.End
	}
	return w, true
}

// FilterByDate keeps the orders with Start <= order_date <= End, in store order.
// An empty store or a window with Start after End gives an empty result.
func FilterByDate(store *RowStore, r DateRange) []Order {
	w, ok := r.Resolve(store)
	if !ok || w.Start.After(w.End) {
		return []Order{}
	}
	out := make([]Order, 0, store.Len())
	for _, o := range store.orders {
		if w.Contains(o.OrderDate) {
			out = append(out, o)
		}
	}
	return out
}

// AttributeFilter restricts orders by name, size and category. Each set is
// optional: an empty set puts no constraint on its field.
type AttributeFilter struct {
	Names      []string `json:"names,omitempty"`
	Sizes      []string `json:"sizes,omitempty"`
	Categories []string `json:"categories,omitempty"`
}

func (f AttributeFilter) IsEmpty() bool {
	return len(f.Names) == 0 && len(f.Sizes) == 0 && len(f.Categories) == 0
}

// Apply keeps the orders passing every non-empty set. Order is preserved and
// the input is not modified.
func (f AttributeFilter) Apply(orders []Order) []Order {
	names, sizes, categories := toSet(f.Names), toSet(f.Sizes), toSet(f.Categories)

	out := make([]Order, 0, len(orders))
	for _, o := range orders {
		if !allowed(names, o.Name) || !allowed(sizes, o.Size) || !allowed(categories, o.Category) {
			continue
		}
		out = append(out, o)
	}
	return out
}

func toSet(values []string) map[string]struct{} {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

func allowed(set map[string]struct{}, value string) bool {
	if set == nil {
		return true
	}
	_, ok := set[value]
	return ok
}
