package order

import (
	"cosme-store/internal/domain/cart"
	"cosme-store/internal/pkg/errs"

	"github.com/jinzhu/copier"
)

// Item is a point-in-time copy of a cart line. Later catalog edits never
// reach it.
type Item struct {
	ProductID   string `json:"productId"`
	VariantSize string `json:"variantSize"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
	UnitPrice   int64  `json:"unitPrice"`
	Quantity    int    `json:"quantity"`
}

func (i Item) Amount() int64 {
	return max(i.UnitPrice, 0) * int64(i.Quantity)
}

func ItemsFromLines(lines []cart.Line) ([]Item, error) {
	items := make([]Item, 0, len(lines))
	if err := copier.Copy(&items, &lines); err != nil {
		return nil, errs.Wrap(err, "copy cart lines into order items")
	}
	return items, nil
}

func subtotal(items []Item) int64 {
	var s int64
	for _, it := range items {
		s += it.Amount()
	}
	return s
}
