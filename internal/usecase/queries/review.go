package queries

import (
	"context"
	"time"

	"cosme-store/internal/infra"

	"github.com/google/uuid"
)

type ReviewReadStore interface {
	FindByProductFirstPage(ctx context.Context, productID string, limit int32, minRating, maxRating *int) ([]*ReviewListItem, error)
	FindByProductKeyset(ctx context.Context, productID string, lastCreatedAt time.Time, lastID uuid.UUID, limit int32, minRating, maxRating *int) ([]*ReviewListItem, error)
	GetProductRatingStats(ctx context.Context, productID string) (*ProductRatingStats, error)
}

type ReviewQueries interface {
	ListByProduct(ctx context.Context, productID string, filters ReviewFilters, cursor *Cursor, limit int) ([]*ReviewListItem, *Cursor, error)
	GetProductRatingStats(ctx context.Context, productID string) (*ProductRatingStats, error)
}

type reviewQueriesImpl struct {
	repo ReviewReadStore
}

func NewReviewQueries(repo ReviewReadStore) ReviewQueries {
	return &reviewQueriesImpl{repo: repo}
}

func (q *reviewQueriesImpl) ListByProduct(ctx context.Context, productID string, filters ReviewFilters, cursor *Cursor, limit int) ([]*ReviewListItem, *Cursor, error) {
	limit = ValidateLimit(limit)
	var rows []*ReviewListItem
	var err error
	if cursor.isFirstPage() {
		rows, err = q.repo.FindByProductFirstPage(ctx, productID, int32(limit+1), filters.MinRating, filters.MaxRating)
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.repo.FindByProductKeyset(ctx, productID, lastCreatedAt, lastID, int32(limit+1), filters.MinRating, filters.MaxRating)
	}
	if err != nil {
		return nil, nil, err
	}
	rows, next := page(rows, limit, func(r *ReviewListItem) (time.Time, uuid.UUID) { return r.CreatedAt, r.ID })
	return rows, next, nil
}

// GetProductRatingStats reports zero counts for a product nobody has reviewed.
func (q *reviewQueriesImpl) GetProductRatingStats(ctx context.Context, productID string) (*ProductRatingStats, error) {
	stats, err := q.repo.GetProductRatingStats(ctx, productID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return &ProductRatingStats{ProductID: productID}, nil
		}
		return nil, err
	}
	return stats, nil
}
