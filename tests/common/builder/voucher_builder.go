//go:build unit || e2e || integration

package builder

import (
	"time"

	"cosme-store/internal/domain/voucher"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type VoucherBuilder struct {
	ID            uuid.UUID
	Code          string
	Type          voucher.Type
	DiscountType  voucher.DiscountType
	DiscountValue string
	MinOrder      int64
	StartDate     time.Time
	EndDate       time.Time
	Status        voucher.Status
	UsageCount    int
	UsageLimit    *int
}

// NewVoucherBuilder returns SALE10: 10% off products from 50.000 VND, valid
// through 2026.
func NewVoucherBuilder() *VoucherBuilder {
	return &VoucherBuilder{
		ID:            uuid.New(),
		Code:          "SALE10",
		Type:          voucher.TypeProduct,
		DiscountType:  voucher.DiscountPercentage,
		DiscountValue: "10",
		MinOrder:      50000,
		StartDate:     time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:       time.Date(2026, 12, 31, 23, 59, 59, 0, time.UTC),
		Status:        voucher.StatusActive,
	}
}

func (b *VoucherBuilder) With(mutate func(*VoucherBuilder)) *VoucherBuilder {
	mutate(b)
	return b
}

// AsFreeShipping turns the voucher into a fixed shipping voucher worth amount.
func (b *VoucherBuilder) AsFreeShipping(code string, amount int64) *VoucherBuilder {
	b.Code = code
	b.Type = voucher.TypeShipping
	b.DiscountType = voucher.DiscountFixed
	b.DiscountValue = decimal.NewFromInt(amount).String()
	b.MinOrder = 0
	return b
}

func (b *VoucherBuilder) WithUsage(count, limit int) *VoucherBuilder {
	b.UsageCount = count
	b.UsageLimit = &limit
	return b
}

func (b *VoucherBuilder) Params() voucher.Params {
	return voucher.Params{
		Code:          b.Code,
		Type:          b.Type,
		DiscountType:  b.DiscountType,
		DiscountValue: decimal.RequireFromString(b.DiscountValue),
		MinOrder:      b.MinOrder,
		StartDate:     b.StartDate,
		EndDate:       b.EndDate,
		Status:        b.Status,
		UsageLimit:    b.UsageLimit,
	}
}

func (b *VoucherBuilder) BuildDomain() *voucher.Voucher {
	return voucher.Reconstruct(b.ID, b.Params(), b.UsageCount)
}
