package readstore

import (
	"context"
	"time"

	"cosme-store/internal/domain/order"
	"cosme-store/internal/infra"
	"cosme-store/internal/infra/pgsql"
	"cosme-store/internal/infra/repository/converter"
	"cosme-store/internal/pkg/pgconv"
	"cosme-store/internal/usecase/queries"

	"github.com/google/uuid"
)

type OrderReadQueries interface {
	GetOrder(ctx context.Context, db pgsql.DBTX, id uuid.UUID) (pgsql.OrderRow, error)
	ListOrdersByUserFirstPage(ctx context.Context, db pgsql.DBTX, userID uuid.UUID, limit int32) ([]pgsql.OrderRow, error)
	ListOrdersByUserKeyset(ctx context.Context, db pgsql.DBTX, arg pgsql.ListOrdersByUserKeysetParams) ([]pgsql.OrderRow, error)
	FindDeliveredOrderWithProduct(ctx context.Context, db pgsql.DBTX, userID uuid.UUID, productID string) (uuid.UUID, error)
}

type OrderReadStore struct {
	queries OrderReadQueries
	db      pgsql.DBTX
}

func NewOrderReadStore(queries OrderReadQueries, db pgsql.DBTX) *OrderReadStore {
	return &OrderReadStore{queries: queries, db: db}
}

func (r *OrderReadStore) Load(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	row, err := r.queries.GetOrder(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get order "+id.String(), err)
	}
	o, err := converter.OrderFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt order "+id.String(), err, infra.KindDBFailure)
	}
	return o, nil
}

func (r *OrderReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.OrderView, error) {
	o, err := r.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	return &queries.OrderView{
		ID:              o.ID(),
		UserID:          o.UserID(),
		Items:           o.Items(),
		Pricing:         o.Pricing(),
		Payment:         o.Payment(),
		Status:          o.Status().String(),
		ShippingAddress: o.Address(),
		Vouchers:        o.Vouchers(),
		CreatedAt:       o.CreatedAt(),
		UpdatedAt:       o.UpdatedAt(),
	}, nil
}

func (r *OrderReadStore) FindByUserFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.OrderListItem, error) {
	rows, err := r.queries.ListOrdersByUserFirstPage(ctx, r.db, userID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders", err)
	}
	return toOrderListItems(rows)
}

func (r *OrderReadStore) FindByUserKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.OrderListItem, error) {
	rows, err := r.queries.ListOrdersByUserKeyset(ctx, r.db, pgsql.ListOrdersByUserKeysetParams{
		UserID:    userID,
		CreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		ID:        lastID,
		Limit:     limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders after cursor", err)
	}
	return toOrderListItems(rows)
}

func (r *OrderReadStore) DeliveredOrderWithProduct(ctx context.Context, userID uuid.UUID, productID string) (uuid.UUID, error) {
	id, err := r.queries.FindDeliveredOrderWithProduct(ctx, r.db, userID, productID)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("no delivered order with "+productID, err)
	}
	return id, nil
}

func toOrderListItems(rows []pgsql.OrderRow) ([]*queries.OrderListItem, error) {
	items := make([]*queries.OrderListItem, 0, len(rows))
	for _, row := range rows {
		o, err := converter.OrderFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr("corrupt order "+row.ID.String(), err, infra.KindDBFailure)
		}
		count := 0
		for _, it := range o.Items() {
			count += it.Quantity
		}
		items = append(items, &queries.OrderListItem{
			ID:          o.ID(),
			Status:      o.Status().String(),
			ItemCount:   count,
			TotalAmount: o.Pricing().TotalAmount,
			CreatedAt:   o.CreatedAt(),
		})
	}
	return items, nil
}
