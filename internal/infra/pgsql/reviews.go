package pgsql

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReviewRow struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	ProductID string
	OrderID   uuid.UUID
	Rating    int32
	Comment   string
	CreatedAt pgtype.Timestamptz
	UpdatedAt pgtype.Timestamptz
}

// ReviewListRow is a review joined with its author's display name.
type ReviewListRow struct {
	ReviewRow
	DisplayName string
}

type RatingStatsRow struct {
	ProductID     string
	TotalReviews  int32
	AverageRating float64
	Rating1Count  int32
	Rating2Count  int32
	Rating3Count  int32
	Rating4Count  int32
	Rating5Count  int32
	UpdatedAt     pgtype.Timestamptz
}

const reviewColumns = `r.id, r.user_id, r.product_id, r.order_id, r.rating, r.comment, r.created_at, r.updated_at`

func scanReview(row pgx.Row) (ReviewRow, error) {
	var r ReviewRow
	err := row.Scan(&r.ID, &r.UserID, &r.ProductID, &r.OrderID, &r.Rating, &r.Comment, &r.CreatedAt, &r.UpdatedAt)
	return r, err
}

func scanReviewListRow(row pgx.Row) (ReviewListRow, error) {
	var r ReviewListRow
	err := row.Scan(&r.ID, &r.UserID, &r.ProductID, &r.OrderID, &r.Rating, &r.Comment, &r.CreatedAt, &r.UpdatedAt, &r.DisplayName)
	return r, err
}

const createReview = `
INSERT INTO reviews (id, user_id, product_id, order_id, rating, comment, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

func (q *Queries) CreateReview(ctx context.Context, db DBTX, r ReviewRow) error {
	_, err := db.Exec(ctx, createReview, r.ID, r.UserID, r.ProductID, r.OrderID, r.Rating, r.Comment, r.CreatedAt, r.UpdatedAt)
	return err
}

const getReview = `SELECT ` + reviewColumns + ` FROM reviews r WHERE r.id = $1`

func (q *Queries) GetReview(ctx context.Context, db DBTX, id uuid.UUID) (ReviewRow, error) {
	return scanReview(db.QueryRow(ctx, getReview, id))
}

const updateReview = `UPDATE reviews SET rating = $2, comment = $3, updated_at = $4 WHERE id = $1`

type UpdateReviewParams struct {
	ID        uuid.UUID
	Rating    int32
	Comment   string
	UpdatedAt pgtype.Timestamptz
}

func (q *Queries) UpdateReview(ctx context.Context, db DBTX, arg UpdateReviewParams) (int64, error) {
	tag, err := db.Exec(ctx, updateReview, arg.ID, arg.Rating, arg.Comment, arg.UpdatedAt)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const deleteReview = `DELETE FROM reviews WHERE id = $1`

func (q *Queries) DeleteReview(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	tag, err := db.Exec(ctx, deleteReview, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const listReviewsByProductFirstPage = `
SELECT ` + reviewColumns + `, u.display_name
FROM reviews r JOIN users u ON u.id = r.user_id
WHERE r.product_id = $1
  AND ($3::int IS NULL OR r.rating >= $3)
  AND ($4::int IS NULL OR r.rating <= $4)
ORDER BY r.created_at DESC, r.id DESC
LIMIT $2`

type ListReviewsByProductParams struct {
	ProductID string
	Limit     int32
	MinRating pgtype.Int4
	MaxRating pgtype.Int4
	// Keyset position; ignored on the first page.
	CreatedAt pgtype.Timestamptz
	ID        uuid.UUID
}

func (q *Queries) ListReviewsByProductFirstPage(ctx context.Context, db DBTX, arg ListReviewsByProductParams) ([]ReviewListRow, error) {
	rows, err := db.Query(ctx, listReviewsByProductFirstPage, arg.ProductID, arg.Limit, arg.MinRating, arg.MaxRating)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanReviewListRow)
}

const listReviewsByProductKeyset = `
SELECT ` + reviewColumns + `, u.display_name
FROM reviews r JOIN users u ON u.id = r.user_id
WHERE r.product_id = $1
  AND ($3::int IS NULL OR r.rating >= $3)
  AND ($4::int IS NULL OR r.rating <= $4)
  AND (r.created_at, r.id) < ($5, $6)
ORDER BY r.created_at DESC, r.id DESC
LIMIT $2`

func (q *Queries) ListReviewsByProductKeyset(ctx context.Context, db DBTX, arg ListReviewsByProductParams) ([]ReviewListRow, error) {
	rows, err := db.Query(ctx, listReviewsByProductKeyset, arg.ProductID, arg.Limit, arg.MinRating, arg.MaxRating, arg.CreatedAt, arg.ID)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanReviewListRow)
}

const recalcProductRatingStats = `
INSERT INTO product_rating_stats AS s (
    product_id, total_reviews, average_rating,
    rating1_count, rating2_count, rating3_count, rating4_count, rating5_count, updated_at)
SELECT $1,
       count(*),
       coalesce(round(avg(rating)::numeric, 2), 0),
       count(*) FILTER (WHERE rating = 1),
       count(*) FILTER (WHERE rating = 2),
       count(*) FILTER (WHERE rating = 3),
       count(*) FILTER (WHERE rating = 4),
       count(*) FILTER (WHERE rating = 5),
       now()
FROM reviews WHERE product_id = $1
ON CONFLICT (product_id) DO UPDATE SET
    total_reviews = EXCLUDED.total_reviews,
    average_rating = EXCLUDED.average_rating,
    rating1_count = EXCLUDED.rating1_count,
    rating2_count = EXCLUDED.rating2_count,
    rating3_count = EXCLUDED.rating3_count,
    rating4_count = EXCLUDED.rating4_count,
    rating5_count = EXCLUDED.rating5_count,
    updated_at = EXCLUDED.updated_at`

func (q *Queries) RecalcProductRatingStats(ctx context.Context, db DBTX, productID string) error {
	_, err := db.Exec(ctx, recalcProductRatingStats, productID)
	return err
}

const getProductRatingStats = `
SELECT product_id, total_reviews, average_rating::float8,
       rating1_count, rating2_count, rating3_count, rating4_count, rating5_count, updated_at
FROM product_rating_stats WHERE product_id = $1`

func (q *Queries) GetProductRatingStats(ctx context.Context, db DBTX, productID string) (RatingStatsRow, error) {
	var s RatingStatsRow
	err := db.QueryRow(ctx, getProductRatingStats, productID).Scan(&s.ProductID, &s.TotalReviews, &s.AverageRating,
		&s.Rating1Count, &s.Rating2Count, &s.Rating3Count, &s.Rating4Count, &s.Rating5Count, &s.UpdatedAt)
	return s, err
}
