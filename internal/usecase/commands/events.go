package commands

import (
	"time"

	"cosme-store/internal/domain/order"

	"github.com/google/uuid"
)

// Outbox event types published for orders.
const (
	EventOrderCreated       = "order.created"
	EventOrderCancelled     = "order.cancelled"
	EventOrderStatusChanged = "order.status_changed"
)

// OrderEvent is the outbox payload of every order event.
type OrderEvent struct {
	OrderID     uuid.UUID    `json:"orderId"`
	UserID      uuid.UUID    `json:"userId"`
	Status      order.Status `json:"status"`
	TotalAmount int64        `json:"totalAmount"`
	Items       []order.Item `json:"items"`
	Vouchers    []string     `json:"vouchers,omitempty"`
	At          time.Time    `json:"at"`
}

func newOrderEvent(o *order.Order) OrderEvent {
	codes := make([]string, 0, len(o.Vouchers()))
	for _, a := range o.Vouchers() {
		codes = append(codes, a.Code)
	}
	return OrderEvent{
		OrderID:     o.ID(),
		UserID:      o.UserID(),
		Status:      o.Status(),
		TotalAmount: o.Pricing().TotalAmount,
		Items:       o.Items(),
		Vouchers:    codes,
		At:          o.UpdatedAt(),
	}
}
