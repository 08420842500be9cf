package cart

import (
	"strings"
	"time"
)

const lineIDSeparator = "|"

// LineID identifies a cart line by product and variant size.
type LineID string

func NewLineID(productID, variantSize string) LineID {
	return LineID(productID + lineIDSeparator + variantSize)
}

// Split returns the product id and variant size encoded in id.
func (id LineID) Split() (productID, variantSize string, ok bool) {
	return strings.Cut(string(id), lineIDSeparator)
}

// Snapshot is the product display data copied into the cart when a line is added.
type Snapshot struct {
	Name        string
	Image       string
	Description string
	Category    string
	UnitPrice   int64
}

type Line struct {
	ProductID   string
	VariantSize string
	Quantity    int
	Snapshot
	AddedAt time.Time
}

func (l Line) ID() LineID {
	return NewLineID(l.ProductID, l.VariantSize)
}

// Amount is unit price times quantity; a missing or negative price counts as 0.
func (l Line) Amount() int64 {
	if l.UnitPrice <= 0 {
		return 0
	}
	return l.UnitPrice * int64(l.Quantity)
}

type Totals struct {
	TotalItems  int   `json:"totalItems"`
	TotalAmount int64 `json:"totalAmount"`
}

func sum(lines []Line) Totals {
	var t Totals
	for _, l := range lines {
		t.TotalItems += l.Quantity
		t.TotalAmount += l.Amount()
	}
	return t
}
