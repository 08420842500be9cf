package repository

import (
	"context"

	"cosme-store/internal/infra"
	"cosme-store/internal/infra/pgsql"
)

type RatingStatsQueries interface {
	RecalcProductRatingStats(ctx context.Context, db pgsql.DBTX, productID string) error
}

type RatingStatsRepository struct {
	queries RatingStatsQueries
	db      pgsql.DBTX
}

func NewRatingStatsRepository(queries RatingStatsQueries, db pgsql.DBTX) *RatingStatsRepository {
	return &RatingStatsRepository{queries: queries, db: db}
}

func (r *RatingStatsRepository) Recalc(ctx context.Context, tx pgsql.DBTX, productID string) error {
	if err := r.queries.RecalcProductRatingStats(ctx, tx, productID); err != nil {
		return infra.WrapRepoErr("failed to recalc rating stats for "+productID, err)
	}
	return nil
}
