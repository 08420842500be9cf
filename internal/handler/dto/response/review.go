package response

import (
	"cosme-store/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreateReviewResponse struct {
	ReviewID uuid.UUID `json:"reviewId"`
}

type ReviewListItemResponse struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Rating      int32  `json:"rating"`
	Comment     string `json:"comment"`
	CreatedAt   int64  `json:"createdAt"`
}

type ReviewListResponse struct {
	Items      []*ReviewListItemResponse `json:"items"`
	NextCursor string                    `json:"nextCursor,omitempty"`
}

func FromReviewList(items []*queries.ReviewListItem, next *queries.Cursor) *ReviewListResponse {
	res := &ReviewListResponse{Items: make([]*ReviewListItemResponse, len(items))}
	for i, it := range items {
		res.Items[i] = &ReviewListItemResponse{
			ID:          it.ID.String(),
			DisplayName: it.DisplayName,
			Rating:      it.Rating,
			Comment:     it.Comment,
			CreatedAt:   it.CreatedAt.Unix(),
		}
	}
	if next != nil {
		res.NextCursor = next.After
	}
	return res
}

type ProductRatingStatsResponse struct {
	ProductID     string  `json:"productId"`
	TotalReviews  int32   `json:"totalReviews"`
	AverageRating float64 `json:"averageRating"`
	Rating1Count  int32   `json:"rating1Count"`
	Rating2Count  int32   `json:"rating2Count"`
	Rating3Count  int32   `json:"rating3Count"`
	Rating4Count  int32   `json:"rating4Count"`
	Rating5Count  int32   `json:"rating5Count"`
	UpdatedAt     int64   `json:"updatedAt"`
}

func FromProductRatingStats(s *queries.ProductRatingStats) *ProductRatingStatsResponse {
	res := &ProductRatingStatsResponse{
		ProductID:     s.ProductID,
		TotalReviews:  s.TotalReviews,
		AverageRating: s.AverageRating,
		Rating1Count:  s.Rating1Count,
		Rating2Count:  s.Rating2Count,
		Rating3Count:  s.Rating3Count,
		Rating4Count:  s.Rating4Count,
		Rating5Count:  s.Rating5Count,
	}
	if !s.UpdatedAt.IsZero() {
		res.UpdatedAt = s.UpdatedAt.Unix()
	}
	return res
}
