package repository

import (
	"context"

	"cosme-store/internal/domain/order"
	"cosme-store/internal/infra"
	"cosme-store/internal/infra/pgsql"
	"cosme-store/internal/infra/repository/converter"
	"cosme-store/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type OrderWriteQueries interface {
	InsertOrder(ctx context.Context, db pgsql.DBTX, o pgsql.OrderRow) error
	GetOrderForUpdate(ctx context.Context, db pgsql.DBTX, id uuid.UUID) (pgsql.OrderRow, error)
	UpdateOrderStatus(ctx context.Context, db pgsql.DBTX, arg pgsql.UpdateOrderStatusParams) (int64, error)
}

type OrderRepository struct {
	queries OrderWriteQueries
	db      pgsql.DBTX
}

func NewOrderRepository(queries OrderWriteQueries, db pgsql.DBTX) *OrderRepository {
	return &OrderRepository{queries: queries, db: db}
}

func (r *OrderRepository) Create(ctx context.Context, tx pgsql.DBTX, o *order.Order) error {
	row, err := converter.OrderToRow(o)
	if err != nil {
		return infra.WrapRepoErr("failed to encode order", err, infra.KindDBFailure)
	}
	if err := r.queries.InsertOrder(ctx, tx, row); err != nil {
		return infra.WrapRepoErr("failed to insert order", err)
	}
	return nil
}

// FindForUpdate loads an order and locks its row for the rest of the transaction.
func (r *OrderRepository) FindForUpdate(ctx context.Context, tx pgsql.DBTX, id uuid.UUID) (*order.Order, error) {
	row, err := r.queries.GetOrderForUpdate(ctx, tx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load order "+id.String(), err)
	}
	o, err := converter.OrderFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt order row", err, infra.KindDBFailure)
	}
	return o, nil
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, tx pgsql.DBTX, o *order.Order) error {
	n, err := r.queries.UpdateOrderStatus(ctx, tx, pgsql.UpdateOrderStatusParams{
		ID:        o.ID(),
		Status:    o.Status().String(),
		UpdatedAt: pgconv.TimeToPgtype(o.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update order status", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("order "+o.ID().String()+" not found", nil, infra.KindNotFound)
	}
	return nil
}
