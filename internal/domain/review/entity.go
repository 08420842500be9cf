package review

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Review struct {
	id        uuid.UUID
	userID    uuid.UUID
	productID string
	orderID   uuid.UUID
	rating    Rating
	comment   Comment
	createdAt time.Time
	updatedAt time.Time
}

// NewReview builds a review of productID backed by the delivered order orderID.
func NewReview(id, userID uuid.UUID, productID string, orderID uuid.UUID, ratingValue int, commentText string, now time.Time) (*Review, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return nil, ErrMissingProduct
	}

	rating, err := NewRating(ratingValue)
	if err != nil {
		return nil, err
	}

	comment, err := NewComment(commentText)
	if err != nil {
		return nil, err
	}

	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Review{
		id:        id,
		userID:    userID,
		productID: productID,
		orderID:   orderID,
		rating:    rating,
		comment:   comment,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func Reconstruct(id, userID uuid.UUID, productID string, orderID uuid.UUID, rating Rating, comment Comment, createdAt, updatedAt time.Time) *Review {
	return &Review{
		id:        id,
		userID:    userID,
		productID: productID,
		orderID:   orderID,
		rating:    rating,
		comment:   comment,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Edit replaces rating and comment; nil leaves a field as is.
func (r *Review) Edit(rating *int, comment *string, now time.Time) error {
	next := *r
	if rating != nil {
		v, err := NewRating(*rating)
		if err != nil {
			return err
		}
		next.rating = v
	}
	if comment != nil {
		c, err := NewComment(*comment)
		if err != nil {
			return err
		}
		next.comment = c
	}
	next.updatedAt = now
	*r = next
	return nil
}

func (r *Review) IsAuthor(userID uuid.UUID) bool {
	return r.userID == userID
}

func (r *Review) ID() uuid.UUID        { return r.id }
func (r *Review) UserID() uuid.UUID    { return r.userID }
func (r *Review) ProductID() string    { return r.productID }
func (r *Review) OrderID() uuid.UUID   { return r.orderID }
func (r *Review) Rating() Rating       { return r.rating }
func (r *Review) Comment() Comment     { return r.comment }
func (r *Review) CreatedAt() time.Time { return r.createdAt }
func (r *Review) UpdatedAt() time.Time { return r.updatedAt }
