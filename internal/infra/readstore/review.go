package readstore

import (
	"context"
	"time"

	"cosme-store/internal/domain/review"
	"cosme-store/internal/infra"
	"cosme-store/internal/infra/pgsql"
	"cosme-store/internal/infra/repository/converter"
	"cosme-store/internal/pkg/pgconv"
	"cosme-store/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReviewReadQueries interface {
	GetReview(ctx context.Context, db pgsql.DBTX, id uuid.UUID) (pgsql.ReviewRow, error)
	ListReviewsByProductFirstPage(ctx context.Context, db pgsql.DBTX, arg pgsql.ListReviewsByProductParams) ([]pgsql.ReviewListRow, error)
	ListReviewsByProductKeyset(ctx context.Context, db pgsql.DBTX, arg pgsql.ListReviewsByProductParams) ([]pgsql.ReviewListRow, error)
	GetProductRatingStats(ctx context.Context, db pgsql.DBTX, productID string) (pgsql.RatingStatsRow, error)
}

type ReviewReadStore struct {
	queries ReviewReadQueries
	db      pgsql.DBTX
}

func NewReviewReadStore(queries ReviewReadQueries, db pgsql.DBTX) *ReviewReadStore {
	return &ReviewReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReviewReadStore) Load(ctx context.Context, id uuid.UUID) (*review.Review, error) {
	row, err := r.queries.GetReview(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get review", err)
	}
	rev, err := converter.ReviewFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt review", err, infra.KindDBFailure)
	}
	return rev, nil
}

func (r *ReviewReadStore) FindByProductFirstPage(ctx context.Context, productID string, limit int32, minRating, maxRating *int) ([]*queries.ReviewListItem, error) {
	rows, err := r.queries.ListReviewsByProductFirstPage(ctx, r.db, pgsql.ListReviewsByProductParams{
		ProductID: productID,
		Limit:     limit,
		MinRating: pgconv.IntPtrToPgtype(minRating),
		MaxRating: pgconv.IntPtrToPgtype(maxRating),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get reviews first page by product", err)
	}
	return mapReviewRows(rows), nil
}

func (r *ReviewReadStore) FindByProductKeyset(ctx context.Context, productID string, lastCreatedAt time.Time, lastID uuid.UUID, limit int32, minRating, maxRating *int) ([]*queries.ReviewListItem, error) {
	rows, err := r.queries.ListReviewsByProductKeyset(ctx, r.db, pgsql.ListReviewsByProductParams{
		ProductID: productID,
		Limit:     limit,
		MinRating: pgconv.IntPtrToPgtype(minRating),
		MaxRating: pgconv.IntPtrToPgtype(maxRating),
		CreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		ID:        lastID,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get reviews keyset by product", err)
	}
	return mapReviewRows(rows), nil
}

func (r *ReviewReadStore) GetProductRatingStats(ctx context.Context, productID string) (*queries.ProductRatingStats, error) {
	row, err := r.queries.GetProductRatingStats(ctx, r.db, productID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get rating stats", err)
	}
	return &queries.ProductRatingStats{
		ProductID:     row.ProductID,
		TotalReviews:  row.TotalReviews,
		AverageRating: row.AverageRating,
		Rating1Count:  row.Rating1Count,
		Rating2Count:  row.Rating2Count,
		Rating3Count:  row.Rating3Count,
		Rating4Count:  row.Rating4Count,
		Rating5Count:  row.Rating5Count,
		UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func mapReviewRows(rows []pgsql.ReviewListRow) []*queries.ReviewListItem {
	items := make([]*queries.ReviewListItem, len(rows))
	for i, row := range rows {
		items[i] = &queries.ReviewListItem{
			ID:          row.ID,
			UserID:      row.UserID,
			DisplayName: row.DisplayName,
			Rating:      row.Rating,
			Comment:     row.Comment,
			CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return items
}
