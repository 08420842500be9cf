package readstore

import (
	"context"
	"time"

	"cosme-store/internal/domain/voucher"
	"cosme-store/internal/infra"
	"cosme-store/internal/infra/pgsql"
	"cosme-store/internal/infra/repository/converter"
	"cosme-store/internal/pkg/pgconv"
	"cosme-store/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type VoucherReadQueries interface {
	GetVoucherByCode(ctx context.Context, db pgsql.DBTX, code string) (pgsql.VoucherRow, error)
	ListActiveVouchers(ctx context.Context, db pgsql.DBTX, at pgtype.Timestamptz) ([]pgsql.VoucherRow, error)
}

type VoucherReadStore struct {
	queries VoucherReadQueries
	db      pgsql.DBTX
}

func NewVoucherReadStore(queries VoucherReadQueries, db pgsql.DBTX) *VoucherReadStore {
	return &VoucherReadStore{queries: queries, db: db}
}

// Load looks a voucher up by code, case-insensitively.
func (r *VoucherReadStore) Load(ctx context.Context, code string) (*voucher.Voucher, error) {
	row, err := r.queries.GetVoucherByCode(ctx, r.db, voucher.NormalizeCode(code))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get voucher "+code, err)
	}
	v, err := converter.VoucherFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt voucher "+code, err, infra.KindDBFailure)
	}
	return v, nil
}

func (r *VoucherReadStore) FindActive(ctx context.Context, at time.Time) ([]*queries.VoucherView, error) {
	rows, err := r.queries.ListActiveVouchers(ctx, r.db, pgconv.TimeToPgtype(at))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active vouchers", err)
	}
	views := make([]*queries.VoucherView, 0, len(rows))
	for _, row := range rows {
		v, err := converter.VoucherFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr("corrupt voucher "+row.Code, err, infra.KindDBFailure)
		}
		view := &queries.VoucherView{
			Code:          v.Code(),
			Type:          v.Type(),
			DiscountType:  v.DiscountType(),
			DiscountValue: v.DiscountValue().String(),
			MinOrder:      v.MinOrder(),
			StartDate:     v.StartDate(),
			EndDate:       v.EndDate(),
			Description:   v.Description(),
		}
		if limit := v.UsageLimit(); limit != nil {
			remaining := *limit - v.UsageCount()
			view.Remaining = &remaining
		}
		views = append(views, view)
	}
	return views, nil
}
