//go:build unit || e2e || integration

package builder

import (
	"time"

	"cosme-store/internal/domain/order"
	"cosme-store/internal/domain/voucher"

	"github.com/google/uuid"
)

type OrderBuilder struct {
	UserID      uuid.UUID
	Items       []order.Item
	ShippingFee int64
	Product     int64
	Shipping    int64
	Payment     order.Payment
	Address     order.ShippingAddress
	Vouchers    []voucher.Applied
	Now         time.Time
}

func NewOrderBuilder() *OrderBuilder {
	return &OrderBuilder{
		UserID: uuid.New(),
		Items: []order.Item{
			{ProductID: "prod-serum", VariantSize: "30ml", Name: "Hydrating Serum", Category: "skincare", UnitPrice: 100000, Quantity: 2},
		},
		ShippingFee: 30000,
		Payment:     order.Payment{Method: order.PaymentCOD},
		Address: order.ShippingAddress{
			RecipientName: "Lan Anh",
			Phone:         "0901234567",
			Street:        "12 Nguyen Hue",
			ProvinceCode:  "79",
			ProvinceName:  "Ho Chi Minh",
			DistrictCode:  "760",
			DistrictName:  "Quan 1",
			WardCode:      "26734",
			WardName:      "Ben Nghe",
		},
		Now: time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *OrderBuilder) With(mutate func(*OrderBuilder)) *OrderBuilder {
	mutate(b)
	return b
}

func (b *OrderBuilder) WithItems(items ...order.Item) *OrderBuilder {
	b.Items = items
	return b
}

func (b *OrderBuilder) WithDiscounts(product, shipping int64) *OrderBuilder {
	b.Product, b.Shipping = product, shipping
	return b
}

func (b *OrderBuilder) Params() order.Params {
	var sub int64
	for _, it := range b.Items {
		sub += it.Amount()
	}
	return order.Params{
		UserID:   b.UserID,
		Items:    b.Items,
		Pricing:  order.ComputePricing(sub, b.Product, b.Shipping, b.ShippingFee),
		Payment:  b.Payment,
		Address:  b.Address,
		Vouchers: b.Vouchers,
	}
}

func (b *OrderBuilder) BuildDomain() (*order.Order, error) {
	return order.New(b.Params(), b.Now)
}

// BuildWithStatus reconstructs a stored order in the given status.
func (b *OrderBuilder) BuildWithStatus(status order.Status) *order.Order {
	return order.Reconstruct(uuid.New(), b.Params(), status, b.Now, b.Now)
}
