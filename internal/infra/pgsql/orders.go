package pgsql

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// OrderRow carries items, shipping address and vouchers as raw JSON.
type OrderRow struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	Items            []byte
	ItemsSubtotal    int64
	ProductDiscount  int64
	ShippingDiscount int64
	DiscountAmount   int64
	ShippingCost     int64
	TotalAmount      int64
	PaymentMethod    string
	PaymentIntentID  string
	Status           string
	ShippingAddress  []byte
	Vouchers         []byte
	CreatedAt        pgtype.Timestamptz
	UpdatedAt        pgtype.Timestamptz
}

const orderColumns = `id, user_id, items, items_subtotal, product_discount, shipping_discount,
    discount_amount, shipping_cost, total_amount, payment_method, payment_intent_id, status,
    shipping_address, vouchers, created_at, updated_at`

func scanOrder(row pgx.Row) (OrderRow, error) {
	var o OrderRow
	err := row.Scan(&o.ID, &o.UserID, &o.Items, &o.ItemsSubtotal, &o.ProductDiscount, &o.ShippingDiscount,
		&o.DiscountAmount, &o.ShippingCost, &o.TotalAmount, &o.PaymentMethod, &o.PaymentIntentID, &o.Status,
		&o.ShippingAddress, &o.Vouchers, &o.CreatedAt, &o.UpdatedAt)
	return o, err
}

const insertOrder = `
INSERT INTO orders (` + orderColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`

func (q *Queries) InsertOrder(ctx context.Context, db DBTX, o OrderRow) error {
	_, err := db.Exec(ctx, insertOrder, o.ID, o.UserID, o.Items, o.ItemsSubtotal, o.ProductDiscount, o.ShippingDiscount,
		o.DiscountAmount, o.ShippingCost, o.TotalAmount, o.PaymentMethod, o.PaymentIntentID, o.Status,
		o.ShippingAddress, o.Vouchers, o.CreatedAt, o.UpdatedAt)
	return err
}

const getOrder = `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`

func (q *Queries) GetOrder(ctx context.Context, db DBTX, id uuid.UUID) (OrderRow, error) {
	return scanOrder(db.QueryRow(ctx, getOrder, id))
}

const getOrderForUpdate = getOrder + ` FOR UPDATE`

func (q *Queries) GetOrderForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (OrderRow, error) {
	return scanOrder(db.QueryRow(ctx, getOrderForUpdate, id))
}

const updateOrderStatus = `UPDATE orders SET status = $2, updated_at = $3 WHERE id = $1`

type UpdateOrderStatusParams struct {
	ID        uuid.UUID
	Status    string
	UpdatedAt pgtype.Timestamptz
}

func (q *Queries) UpdateOrderStatus(ctx context.Context, db DBTX, arg UpdateOrderStatusParams) (int64, error) {
	tag, err := db.Exec(ctx, updateOrderStatus, arg.ID, arg.Status, arg.UpdatedAt)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const listOrdersByUserFirstPage = `
SELECT ` + orderColumns + `
FROM orders
WHERE user_id = $1
ORDER BY created_at DESC, id DESC
LIMIT $2`

func (q *Queries) ListOrdersByUserFirstPage(ctx context.Context, db DBTX, userID uuid.UUID, limit int32) ([]OrderRow, error) {
	rows, err := db.Query(ctx, listOrdersByUserFirstPage, userID, limit)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanOrder)
}

const listOrdersByUserKeyset = `
SELECT ` + orderColumns + `
FROM orders
WHERE user_id = $1 AND (created_at, id) < ($2, $3)
ORDER BY created_at DESC, id DESC
LIMIT $4`

type ListOrdersByUserKeysetParams struct {
	UserID    uuid.UUID
	CreatedAt pgtype.Timestamptz
	ID        uuid.UUID
	Limit     int32
}

func (q *Queries) ListOrdersByUserKeyset(ctx context.Context, db DBTX, arg ListOrdersByUserKeysetParams) ([]OrderRow, error) {
	rows, err := db.Query(ctx, listOrdersByUserKeyset, arg.UserID, arg.CreatedAt, arg.ID, arg.Limit)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanOrder)
}

const findDeliveredOrderWithProduct = `
SELECT id
FROM orders
WHERE user_id = $1
  AND status = 'delivered'
  AND items @> jsonb_build_array(jsonb_build_object('productId', $2::text))
ORDER BY updated_at DESC
LIMIT 1`

func (q *Queries) FindDeliveredOrderWithProduct(ctx context.Context, db DBTX, userID uuid.UUID, productID string) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.QueryRow(ctx, findDeliveredOrderWithProduct, userID, productID).Scan(&id)
	return id, err
}
