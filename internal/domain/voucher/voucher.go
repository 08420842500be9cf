package voucher

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidType         = errors.New("voucher type must be product or shipping")
	ErrInvalidDiscountType = errors.New("discount type must be percentage or fixed")
	ErrInvalidDiscount     = errors.New("discount value out of range")
	ErrInvalidWindow       = errors.New("voucher end date precedes start date")
	ErrInvalidCode         = errors.New("voucher code is required")
	ErrInvalidUsageLimit   = errors.New("usage limit must be positive")
	ErrInvalidMinOrder     = errors.New("minimum order must not be negative")
)

var hundred = decimal.NewFromInt(100)

// Voucher is a discount definition owned by the catalog.
type Voucher struct {
	id            uuid.UUID
	code          string
	typ           Type
	discountType  DiscountType
	discountValue decimal.Decimal
	minOrder      int64
	startDate     time.Time
	endDate       time.Time
	status        Status
	usageCount    int
	usageLimit    *int
	description   string
}

type Params struct {
	Code          string
	Type          Type
	DiscountType  DiscountType
	DiscountValue decimal.Decimal
	MinOrder      int64
	StartDate     time.Time
	EndDate       time.Time
	Status        Status
	UsageLimit    *int
	Description   string
}

// New validates p and returns a voucher with zero usage.
func New(p Params) (*Voucher, error) {
	code := NormalizeCode(p.Code)
	switch {
	case code == "":
		return nil, ErrInvalidCode
	case !p.Type.IsValid():
		return nil, ErrInvalidType
	case !p.DiscountType.IsValid():
		return nil, ErrInvalidDiscountType
	case p.DiscountValue.IsNegative():
		return nil, ErrInvalidDiscount
	case p.DiscountType == DiscountPercentage && p.DiscountValue.GreaterThan(hundred):
		return nil, ErrInvalidDiscount
	case p.MinOrder < 0:
		return nil, ErrInvalidMinOrder
	case p.EndDate.Before(p.StartDate):
		return nil, ErrInvalidWindow
	case p.UsageLimit != nil && *p.UsageLimit < 1:
		return nil, ErrInvalidUsageLimit
	}
	status := p.Status
	if status == "" {
		status = StatusActive
	}
	return &Voucher{
		id:            uuid.New(),
		code:          code,
		typ:           p.Type,
		discountType:  p.DiscountType,
		discountValue: p.DiscountValue,
		minOrder:      p.MinOrder,
		startDate:     p.StartDate,
		endDate:       p.EndDate,
		status:        status,
		usageLimit:    p.UsageLimit,
		description:   p.Description,
	}, nil
}

// Reconstruct loads a stored voucher as-is, without range checks.
func Reconstruct(id uuid.UUID, p Params, usageCount int) *Voucher {
	return &Voucher{
		id:            id,
		code:          NormalizeCode(p.Code),
		typ:           p.Type,
		discountType:  p.DiscountType,
		discountValue: p.DiscountValue,
		minOrder:      p.MinOrder,
		startDate:     p.StartDate,
		endDate:       p.EndDate,
		status:        p.Status,
		usageCount:    usageCount,
		usageLimit:    p.UsageLimit,
		description:   p.Description,
	}
}

func (v *Voucher) ID() uuid.UUID                  { return v.id }
func (v *Voucher) Code() string                   { return v.code }
func (v *Voucher) Type() Type                     { return v.typ }
func (v *Voucher) DiscountType() DiscountType     { return v.discountType }
func (v *Voucher) DiscountValue() decimal.Decimal { return v.discountValue }
func (v *Voucher) MinOrder() int64                { return v.minOrder }
func (v *Voucher) StartDate() time.Time           { return v.startDate }
func (v *Voucher) EndDate() time.Time             { return v.endDate }
func (v *Voucher) Status() Status                 { return v.status }
func (v *Voucher) UsageCount() int                { return v.usageCount }
func (v *Voucher) UsageLimit() *int               { return v.usageLimit }
func (v *Voucher) Description() string            { return v.description }

func (v *Voucher) exhausted() bool {
	return v.usageLimit != nil && v.usageCount >= *v.usageLimit
}
