package voucher

import "strings"

// Type is the category a voucher discounts. A cart holds at most one applied
// voucher per type.
type Type string

const (
	TypeProduct  Type = "product"
	TypeShipping Type = "shipping"
)

func (t Type) IsValid() bool {
	return t == TypeProduct || t == TypeShipping
}

func ParseType(s string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(s)))
	if !t.IsValid() {
		return "", ErrInvalidType
	}
	return t, nil
}

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

func (d DiscountType) IsValid() bool {
	return d == DiscountPercentage || d == DiscountFixed
}

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// NormalizeCode is the match key for voucher codes: trimmed and upper-cased.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
