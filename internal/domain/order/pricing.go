package order

// Pricing holds the amounts frozen onto an order at checkout.
//
// DiscountAmount is the voucher discount actually taken, capped at the items
// subtotal, so TotalAmount == ItemsSubtotal - DiscountAmount + ShippingCost
// always holds and the total is never negative.
type Pricing struct {
	ItemsSubtotal    int64 `json:"itemsSubtotal"`
	ProductDiscount  int64 `json:"productDiscount"`
	ShippingDiscount int64 `json:"shippingDiscount"`
	DiscountAmount   int64 `json:"discountAmount"`
	ShippingCost     int64 `json:"shippingCost"`
	TotalAmount      int64 `json:"totalAmount"`
}

func ComputePricing(subtotal, productDiscount, shippingDiscount, shippingFee int64) Pricing {
	subtotal = max(subtotal, 0)
	productDiscount = max(productDiscount, 0)
	shippingDiscount = max(shippingDiscount, 0)
	shippingFee = max(shippingFee, 0)

	discount := productDiscount + shippingDiscount
	return Pricing{
		ItemsSubtotal:    subtotal,
		ProductDiscount:  productDiscount,
		ShippingDiscount: shippingDiscount,
		DiscountAmount:   min(discount, subtotal),
		ShippingCost:     shippingFee,
		TotalAmount:      max(0, subtotal-discount) + shippingFee,
	}
}
