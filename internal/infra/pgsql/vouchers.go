package pgsql

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type VoucherRow struct {
	ID            uuid.UUID
	Code          string
	Type          string
	DiscountType  string
	DiscountValue string
	MinOrder      int64
	StartDate     pgtype.Timestamptz
	EndDate       pgtype.Timestamptz
	Status        string
	UsageCount    int32
	UsageLimit    pgtype.Int4
	Description   string
}

const voucherColumns = `id, code, type, discount_type, discount_value::text, min_order,
    start_date, end_date, status, usage_count, usage_limit, description`

func scanVoucher(row pgx.Row) (VoucherRow, error) {
	var v VoucherRow
	err := row.Scan(&v.ID, &v.Code, &v.Type, &v.DiscountType, &v.DiscountValue, &v.MinOrder,
		&v.StartDate, &v.EndDate, &v.Status, &v.UsageCount, &v.UsageLimit, &v.Description)
	return v, err
}

const getVoucherByCode = `SELECT ` + voucherColumns + ` FROM vouchers WHERE code = upper($1)`

func (q *Queries) GetVoucherByCode(ctx context.Context, db DBTX, code string) (VoucherRow, error) {
	return scanVoucher(db.QueryRow(ctx, getVoucherByCode, code))
}

const listActiveVouchers = `
SELECT ` + voucherColumns + `
FROM vouchers
WHERE status = 'active'
  AND start_date <= $1 AND end_date >= $1
  AND (usage_limit IS NULL OR usage_count < usage_limit)
ORDER BY type, end_date, code`

func (q *Queries) ListActiveVouchers(ctx context.Context, db DBTX, at pgtype.Timestamptz) ([]VoucherRow, error) {
	rows, err := db.Query(ctx, listActiveVouchers, at)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanVoucher)
}

const redeemVoucher = `
UPDATE vouchers SET usage_count = usage_count + 1
WHERE code = upper($1)
  AND (usage_limit IS NULL OR usage_count < usage_limit)`

// RedeemVoucher counts one use; zero rows means the code is unknown or its
// usage limit has been reached.
func (q *Queries) RedeemVoucher(ctx context.Context, db DBTX, code string) (int64, error) {
	tag, err := db.Exec(ctx, redeemVoucher, code)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const releaseVoucher = `
UPDATE vouchers SET usage_count = usage_count - 1
WHERE code = upper($1) AND usage_count > 0`

func (q *Queries) ReleaseVoucher(ctx context.Context, db DBTX, code string) error {
	_, err := db.Exec(ctx, releaseVoucher, code)
	return err
}
