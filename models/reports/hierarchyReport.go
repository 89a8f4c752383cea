package reports

import (
	"github.com/mmdatafocus/pizza_sales/models"
	"github.com/shopspring/decimal"
)

const (
	HierarchyLevelCategory = "type"
	HierarchyLevelName     = "name"
	HierarchyLevelSize     = "size"
)

// HierarchyNode is one box of the category → name → size treemap. A leaf
// holds the summed price of its (category, name, size) orders; every other
// node holds the sum of its children.
type HierarchyNode struct {
	Label    string           `json:"label"`
	Level    string           `json:"level"`
	Price    decimal.Decimal  `json:"price"`
	Children []*HierarchyNode `json:"children,omitempty"`

	index map[string]*HierarchyNode
}

func (n *HierarchyNode) child(label string, level string) *HierarchyNode {
	if n.index == nil {
		n.index = map[string]*HierarchyNode{}
	}
	c, ok := n.index[label]
	if !ok {
		c = &HierarchyNode{Label: label, Level: level}
		n.index[label] = c
		n.Children = append(n.Children, c)
	}
	return c
}

// rollUp sets every inner node to the sum of its children.
func (n *HierarchyNode) rollUp() decimal.Decimal {
	if len(n.Children) == 0 {
		return n.Price
	}
	sum := decimal.Zero
	for _, c := range n.Children {
		sum = sum.Add(c.rollUp())
	}
	n.Price = sum
	n.index = nil
	return sum
}

// GetHierarchyTotals returns one root per category, in first-seen order.
func GetHierarchyTotals(orders []models.Order) []*HierarchyNode {
	root := &HierarchyNode{}
	for _, o := range orders {
		leaf := root.
			child(o.Category, HierarchyLevelCategory).
			child(o.Name, HierarchyLevelName).
			child(o.Size, HierarchyLevelSize)
		leaf.Price = leaf.Price.Add(o.Price)
	}
	root.rollUp()
	if root.Children == nil {
		return []*HierarchyNode{}
	}
	return root.Children
}
