package converter

import (
	"cosme-store/internal/domain/voucher"
	"cosme-store/internal/infra/pgsql"
	"cosme-store/internal/pkg/errs"
	"cosme-store/internal/pkg/pgconv"

	"github.com/shopspring/decimal"
)

func VoucherFromRow(r pgsql.VoucherRow) (*voucher.Voucher, error) {
	value, err := decimal.NewFromString(r.DiscountValue)
	if err != nil {
		return nil, errs.Wrapf(err, "voucher %s discount value %q", r.Code, r.DiscountValue)
	}
	return voucher.Reconstruct(r.ID, voucher.Params{
		Code:          r.Code,
		Type:          voucher.Type(r.Type),
		DiscountType:  voucher.DiscountType(r.DiscountType),
		DiscountValue: value,
		MinOrder:      r.MinOrder,
		StartDate:     pgconv.TimeFromPgtype(r.StartDate),
		EndDate:       pgconv.TimeFromPgtype(r.EndDate),
		Status:        voucher.Status(r.Status),
		UsageLimit:    pgconv.Int4PtrFromPgtype(r.UsageLimit),
		Description:   r.Description,
	}, int(r.UsageCount)), nil
}
