package review

import "errors"

var (
	ErrInvalidRating  = errors.New("rating must be between 1 and 5")
	ErrEmptyComment   = errors.New("comment cannot be empty")
	ErrCommentTooLong = errors.New("comment exceeds maximum length")
	ErrMissingProduct = errors.New("review must reference a product")

	ErrNotEligible         = errors.New("a delivered order containing this product is required to review it")
	ErrReviewAlreadyExists = errors.New("review already exists for this product")
	ErrNotAuthor           = errors.New("only the author can change this review")
)
