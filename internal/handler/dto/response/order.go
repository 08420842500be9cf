package response

import (
	"cosme-store/internal/domain/order"
	"cosme-store/internal/usecase/commands"
	"cosme-store/internal/usecase/queries"

	"github.com/google/uuid"
)

type CheckoutResponse struct {
	OrderID uuid.UUID     `json:"orderId"`
	Status  string        `json:"status"`
	Pricing order.Pricing `json:"pricing"`
}

func FromCheckoutResult(r *commands.CheckoutResult) *CheckoutResponse {
	return &CheckoutResponse{OrderID: r.OrderID, Status: r.Status.String(), Pricing: r.Pricing}
}

type OrderListResponse struct {
	Items      []*queries.OrderListItem `json:"items"`
	NextCursor string                   `json:"nextCursor,omitempty"`
}

func FromOrderList(items []*queries.OrderListItem, next *queries.Cursor) *OrderListResponse {
	if items == nil {
		items = []*queries.OrderListItem{}
	}
	res := &OrderListResponse{Items: items}
	if next != nil {
		res.NextCursor = next.After
	}
	return res
}

type ImportProductsResponse struct {
	Imported int `json:"imported"`
}
