package voucher

import "time"

// Applied is a voucher held in a cart slot together with the discount
// computed when it was last evaluated.
type Applied struct {
	Code         string       `json:"code" bson:"code"`
	Type         Type         `json:"type" bson:"type"`
	DiscountType DiscountType `json:"discountType" bson:"discount_type"`
	Discount     int64        `json:"discountAmount" bson:"discount"`
}

// Slots holds at most one applied voucher per type.
type Slots struct {
	Product  *Applied `json:"product,omitempty" bson:"product,omitempty"`
	Shipping *Applied `json:"shipping,omitempty" bson:"shipping,omitempty"`
}

func (s *Slots) Get(t Type) (Applied, bool) {
	p := s.slot(t)
	if p == nil || *p == nil {
		return Applied{}, false
	}
	return **p, true
}

// Set overwrites the slot matching a.Type.
func (s *Slots) Set(a Applied) {
	if p := s.slot(a.Type); p != nil {
		cp := a
		*p = &cp
	}
}

func (s *Slots) Clear(t Type) {
	if p := s.slot(t); p != nil {
		*p = nil
	}
}

func (s *Slots) ClearAll() {
	s.Product = nil
	s.Shipping = nil
}

func (s *Slots) ProductDiscount() int64 {
	if s.Product == nil {
		return 0
	}
	return s.Product.Discount
}

func (s *Slots) ShippingDiscount() int64 {
	if s.Shipping == nil {
		return 0
	}
	return s.Shipping.Discount
}

// Applied lists the occupied slots, product first.
func (s *Slots) Applied() []Applied {
	var out []Applied
	for _, t := range []Type{TypeProduct, TypeShipping} {
		if a, ok := s.Get(t); ok {
			out = append(out, a)
		}
	}
	return out
}

func (s *Slots) slot(t Type) **Applied {
	switch t {
	case TypeProduct:
		return &s.Product
	case TypeShipping:
		return &s.Shipping
	default:
		return nil
	}
}

// Context is what a voucher is evaluated against.
type Context struct {
	OrderAmount  int64
	ShippingCost int64
	Now          time.Time
}

// Apply validates v for the slot category and, on success, stores it in
// slots replacing any voucher of the same type. slots is untouched on failure.
func Apply(slots *Slots, category Type, code string, v *Voucher, ctx Context) (Applied, error) {
	if err := Validate(v, code, ctx.OrderAmount, ctx.Now); err != nil {
		return Applied{}, err
	}
	if v.typ != category {
		return Applied{}, &ValidationError{Reason: ReasonTypeMismatch, Code: v.code}
	}
	a := Applied{
		Code:         v.code,
		Type:         v.typ,
		DiscountType: v.discountType,
		Discount:     Compute(v, ctx.OrderAmount, ctx.ShippingCost),
	}
	slots.Set(a)
	return a, nil
}

// Invalidation records a voucher dropped from a slot during Reevaluate.
type Invalidation struct {
	Code   string `json:"code"`
	Type   Type   `json:"type"`
	Reason Reason `json:"reason"`
}

// Reevaluate re-validates every applied voucher against ctx using the current
// voucher records in current (keyed by type; nil means the code no longer
// exists). Valid vouchers get their discount recomputed; invalid ones are
// cleared and reported.
func Reevaluate(slots *Slots, current map[Type]*Voucher, ctx Context) []Invalidation {
	var dropped []Invalidation
	for _, a := range slots.Applied() {
		v := current[a.Type]
		if _, err := Apply(slots, a.Type, a.Code, v, ctx); err != nil {
			reason, _ := ReasonOf(err)
			slots.Clear(a.Type)
			dropped = append(dropped, Invalidation{Code: a.Code, Type: a.Type, Reason: reason})
		}
	}
	return dropped
}
