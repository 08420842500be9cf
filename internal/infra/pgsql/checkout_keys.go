package pgsql

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type CheckoutKeyRow struct {
	UserID      uuid.UUID
	Key         uuid.UUID
	RequestHash string
	OrderID     uuid.UUID
	ExpiresAt   pgtype.Timestamptz
	CreatedAt   pgtype.Timestamptz
}

// An expired key is taken over by the new request; a live one is left alone
// and no row is affected.
const upsertCheckoutKey = `
INSERT INTO checkout_keys (user_id, key, request_hash, order_id, expires_at, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (user_id, key) DO UPDATE
SET request_hash = EXCLUDED.request_hash,
    order_id     = EXCLUDED.order_id,
    expires_at   = EXCLUDED.expires_at,
    created_at   = EXCLUDED.created_at
WHERE checkout_keys.expires_at <= EXCLUDED.created_at`

func (q *Queries) UpsertCheckoutKey(ctx context.Context, db DBTX, k CheckoutKeyRow) (int64, error) {
	tag, err := db.Exec(ctx, upsertCheckoutKey, k.UserID, k.Key, k.RequestHash, k.OrderID, k.ExpiresAt, k.CreatedAt)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const getCheckoutKey = `
SELECT user_id, key, request_hash, order_id, expires_at, created_at
FROM checkout_keys
WHERE user_id = $1 AND key = $2`

func (q *Queries) GetCheckoutKey(ctx context.Context, db DBTX, userID, key uuid.UUID) (CheckoutKeyRow, error) {
	var k CheckoutKeyRow
	err := db.QueryRow(ctx, getCheckoutKey, userID, key).
		Scan(&k.UserID, &k.Key, &k.RequestHash, &k.OrderID, &k.ExpiresAt, &k.CreatedAt)
	return k, err
}
