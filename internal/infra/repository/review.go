package repository

import (
	"context"

	"cosme-store/internal/domain/review"
	"cosme-store/internal/infra"
	"cosme-store/internal/infra/pgsql"
	"cosme-store/internal/infra/repository/converter"

	"github.com/google/uuid"
)

type ReviewWriteQueries interface {
	CreateReview(ctx context.Context, db pgsql.DBTX, r pgsql.ReviewRow) error
	UpdateReview(ctx context.Context, db pgsql.DBTX, arg pgsql.UpdateReviewParams) (int64, error)
	DeleteReview(ctx context.Context, db pgsql.DBTX, id uuid.UUID) (int64, error)
}

type ReviewRepository struct {
	queries ReviewWriteQueries
	db      pgsql.DBTX
}

func NewReviewRepository(queries ReviewWriteQueries, db pgsql.DBTX) *ReviewRepository {
	return &ReviewRepository{
		queries: queries,
		db:      db,
	}
}

// Create inserts rev. A second review by the same user for the same product
// yields KindDuplicateKey.
func (r *ReviewRepository) Create(ctx context.Context, tx pgsql.DBTX, rev *review.Review) (uuid.UUID, error) {
	if err := r.queries.CreateReview(ctx, tx, converter.ReviewToRow(rev)); err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create review", err)
	}
	return rev.ID(), nil
}

func (r *ReviewRepository) Update(ctx context.Context, tx pgsql.DBTX, rev *review.Review) error {
	row := converter.ReviewToRow(rev)
	n, err := r.queries.UpdateReview(ctx, tx, pgsql.UpdateReviewParams{
		ID:        row.ID,
		Rating:    row.Rating,
		Comment:   row.Comment,
		UpdatedAt: row.UpdatedAt,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update review", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("review not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReviewRepository) Delete(ctx context.Context, tx pgsql.DBTX, reviewID uuid.UUID) error {
	n, err := r.queries.DeleteReview(ctx, tx, reviewID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete review", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("review not found", nil, infra.KindNotFound)
	}
	return nil
}
