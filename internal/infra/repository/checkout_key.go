package repository

import (
	"context"

	"cosme-store/internal/infra"
	"cosme-store/internal/infra/pgsql"
	"cosme-store/internal/pkg/pgconv"
	"cosme-store/internal/usecase/shared"
)

type CheckoutKeyWriteQueries interface {
	UpsertCheckoutKey(ctx context.Context, db pgsql.DBTX, k pgsql.CheckoutKeyRow) (int64, error)
}

type CheckoutKeyRepository struct {
	queries CheckoutKeyWriteQueries
	db      pgsql.DBTX
}

func NewCheckoutKeyRepository(queries CheckoutKeyWriteQueries, db pgsql.DBTX) *CheckoutKeyRepository {
	return &CheckoutKeyRepository{queries: queries, db: db}
}

func (r *CheckoutKeyRepository) Record(ctx context.Context, tx pgsql.DBTX, k shared.CheckoutKey) error {
	affected, err := r.queries.UpsertCheckoutKey(ctx, tx, pgsql.CheckoutKeyRow{
		UserID:      k.UserID,
		Key:         k.Key,
		RequestHash: k.RequestHash,
		OrderID:     k.OrderID,
		ExpiresAt:   pgconv.TimeToPgtype(k.ExpiresAt),
		CreatedAt:   pgconv.TimeToPgtype(k.CreatedAt),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to record checkout key", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("checkout key "+k.Key.String()+" is already in use", nil, infra.KindDuplicateKey)
	}
	return nil
}
