package voucher

import "github.com/shopspring/decimal"

// ComputeProductDiscount is the amount a product voucher takes off orderAmount.
// Percentages are uncapped; fixed amounts are not clamped to the order here.
func ComputeProductDiscount(v *Voucher, orderAmount int64) int64 {
	if v == nil || v.typ != TypeProduct {
		return 0
	}
	d := raw(v, orderAmount)
	if d < 0 {
		return 0
	}
	return d
}

// ComputeShippingDiscount is the amount a shipping voucher takes off
// shippingCost; it never exceeds shippingCost.
func ComputeShippingDiscount(v *Voucher, shippingCost int64) int64 {
	if v == nil || v.typ != TypeShipping || shippingCost <= 0 {
		return 0
	}
	d := raw(v, shippingCost)
	if d < 0 {
		return 0
	}
	return min(d, shippingCost)
}

// Compute dispatches on the voucher type.
func Compute(v *Voucher, orderAmount, shippingCost int64) int64 {
	if v == nil {
		return 0
	}
	if v.typ == TypeShipping {
		return ComputeShippingDiscount(v, shippingCost)
	}
	return ComputeProductDiscount(v, orderAmount)
}

func raw(v *Voucher, base int64) int64 {
	switch v.discountType {
	case DiscountPercentage:
		return decimal.NewFromInt(base).Mul(v.discountValue).Div(hundred).Round(0).IntPart()
	case DiscountFixed:
		return v.discountValue.Round(0).IntPart()
	default:
		return 0
	}
}
