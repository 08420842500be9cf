//go:build unit || e2e || integration

package builder

import (
	"time"

	domreview "cosme-store/internal/domain/review"
	reqdto "cosme-store/internal/handler/dto/request"
	"cosme-store/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReviewBuilder struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	DisplayName string
	ProductID   string
	OrderID     uuid.UUID
	Rating      int
	Comment     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewReviewBuilder() *ReviewBuilder {
	now := time.Now()
	return &ReviewBuilder{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		DisplayName: "Lan Anh",
		ProductID:   "prod-serum",
		OrderID:     uuid.New(),
		Rating:      5,
		Comment:     "Absorbs quickly, no sticky finish.",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (r *ReviewBuilder) With(mutate func(*ReviewBuilder)) *ReviewBuilder {
	mutate(r)
	return r
}

// Build methods
func (r *ReviewBuilder) BuildDomain() (*domreview.Review, error) {
	return domreview.NewReview(uuid.Nil, r.UserID, r.ProductID, r.OrderID, r.Rating, r.Comment, r.CreatedAt)
}

func (r *ReviewBuilder) BuildCreateRequestDTO() reqdto.CreateReviewRequest {
	return reqdto.CreateReviewRequest{Rating: r.Rating, Comment: r.Comment}
}

func (r *ReviewBuilder) BuildListItem() *queries.ReviewListItem {
	return &queries.ReviewListItem{
		ID:          r.ID,
		UserID:      r.UserID,
		DisplayName: r.DisplayName,
		Rating:      int32(r.Rating),
		Comment:     r.Comment,
		CreatedAt:   r.CreatedAt,
	}
}

// Fluent builder methods
func (r *ReviewBuilder) WithUserID(userID uuid.UUID) *ReviewBuilder {
	r.UserID = userID
	return r
}

func (r *ReviewBuilder) WithProductID(productID string) *ReviewBuilder {
	r.ProductID = productID
	return r
}

func (r *ReviewBuilder) WithOrderID(orderID uuid.UUID) *ReviewBuilder {
	r.OrderID = orderID
	return r
}

func (r *ReviewBuilder) WithRating(rating int) *ReviewBuilder {
	r.Rating = rating
	return r
}

func (r *ReviewBuilder) WithComment(comment string) *ReviewBuilder {
	r.Comment = comment
	return r
}

func (r *ReviewBuilder) AsPoorRating() *ReviewBuilder {
	r.Rating = 1
	r.Comment = "Broke me out after two days"
	return r
}
