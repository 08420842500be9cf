package review

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type EligibilityInput struct {
	UserID    uuid.UUID
	ProductID string
	Now       time.Time
}

// EligibilityChecker returns the delivered order that entitles the user to
// review the product, or ErrNotEligible.
type EligibilityChecker interface {
	EligibleOrder(ctx context.Context, input EligibilityInput) (uuid.UUID, error)
}
