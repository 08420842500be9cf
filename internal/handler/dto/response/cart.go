package response

import (
	"time"

	"cosme-store/internal/domain/cart"
	"cosme-store/internal/domain/order"
	"cosme-store/internal/domain/voucher"
	"cosme-store/internal/usecase/commands"
)

type CartLineResponse struct {
	LineID      string    `json:"lineId"`
	ProductID   string    `json:"productId"`
	VariantSize string    `json:"variantSize"`
	Name        string    `json:"name"`
	Image       string    `json:"image"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category,omitempty"`
	Price       int64     `json:"price"`
	Quantity    int       `json:"quantity"`
	Amount      int64     `json:"amount"`
	Selected    bool      `json:"selected"`
	AddedAt     time.Time `json:"addedAt"`
}

type CartResponse struct {
	Items               []CartLineResponse     `json:"items"`
	Totals              cart.Totals            `json:"totals"`
	SelectedTotals      cart.Totals            `json:"selectedTotals"`
	Vouchers            []voucher.Applied      `json:"vouchers"`
	Pricing             order.Pricing          `json:"pricing"`
	InvalidatedVouchers []voucher.Invalidation `json:"invalidatedVouchers,omitempty"`
	Version             int64                  `json:"version"`
}

func FromCartState(s *commands.CartState) *CartResponse {
	selected := make(map[cart.LineID]bool, len(s.Selected))
	for _, id := range s.Selected {
		selected[id] = true
	}
	items := make([]CartLineResponse, len(s.Lines))
	for i, l := range s.Lines {
		items[i] = CartLineResponse{
			LineID:      string(l.ID()),
			ProductID:   l.ProductID,
			VariantSize: l.VariantSize,
			Name:        l.Name,
			Image:       l.Image,
			Description: l.Description,
			Category:    l.Category,
			Price:       l.UnitPrice,
			Quantity:    l.Quantity,
			Amount:      l.Amount(),
			Selected:    selected[l.ID()],
			AddedAt:     l.AddedAt,
		}
	}
	vouchers := s.Vouchers
	if vouchers == nil {
		vouchers = []voucher.Applied{}
	}
	return &CartResponse{
		Items:               items,
		Totals:              s.Totals,
		SelectedTotals:      s.SelectedTotals,
		Vouchers:            vouchers,
		Pricing:             s.Pricing,
		InvalidatedVouchers: s.InvalidatedVouchers,
		Version:             s.Version,
	}
}
