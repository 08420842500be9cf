package readstore

import (
	"context"

	"cosme-store/internal/infra"
	"cosme-store/internal/infra/pgsql"
	"cosme-store/internal/pkg/pgconv"
	"cosme-store/internal/usecase/shared"

	"github.com/google/uuid"
)

type CheckoutKeyReadQueries interface {
	GetCheckoutKey(ctx context.Context, db pgsql.DBTX, userID, key uuid.UUID) (pgsql.CheckoutKeyRow, error)
}

type CheckoutKeyReadStore struct {
	queries CheckoutKeyReadQueries
	db      pgsql.DBTX
}

func NewCheckoutKeyReadStore(queries CheckoutKeyReadQueries, db pgsql.DBTX) *CheckoutKeyReadStore {
	return &CheckoutKeyReadStore{queries: queries, db: db}
}

func (r *CheckoutKeyReadStore) Load(ctx context.Context, userID, key uuid.UUID) (*shared.CheckoutKey, error) {
	row, err := r.queries.GetCheckoutKey(ctx, r.db, userID, key)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get checkout key", err)
	}
	return &shared.CheckoutKey{
		UserID:      row.UserID,
		Key:         row.Key,
		RequestHash: row.RequestHash,
		OrderID:     row.OrderID,
		ExpiresAt:   pgconv.TimeFromPgtype(row.ExpiresAt),
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}
