package repository

import (
	"context"

	"cosme-store/internal/infra"
	"cosme-store/internal/infra/pgsql"
)

type VoucherWriteQueries interface {
	RedeemVoucher(ctx context.Context, db pgsql.DBTX, code string) (int64, error)
	ReleaseVoucher(ctx context.Context, db pgsql.DBTX, code string) error
}

type VoucherRepository struct {
	queries VoucherWriteQueries
	db      pgsql.DBTX
}

func NewVoucherRepository(queries VoucherWriteQueries, db pgsql.DBTX) *VoucherRepository {
	return &VoucherRepository{queries: queries, db: db}
}

// Redeem counts one use of code. A code that is unknown or has hit its usage
// limit yields a KindConflict error.
func (r *VoucherRepository) Redeem(ctx context.Context, tx pgsql.DBTX, code string) error {
	n, err := r.queries.RedeemVoucher(ctx, tx, code)
	if err != nil {
		return infra.WrapRepoErr("failed to redeem voucher "+code, err)
	}
	if n == 0 {
		return infra.WrapRepoErr("voucher "+code+" has no remaining uses", nil, infra.KindConflict)
	}
	return nil
}

func (r *VoucherRepository) Release(ctx context.Context, tx pgsql.DBTX, code string) error {
	if err := r.queries.ReleaseVoucher(ctx, tx, code); err != nil {
		return infra.WrapRepoErr("failed to release voucher "+code, err)
	}
	return nil
}
