package commands

import (
	"context"

	domreview "cosme-store/internal/domain/review"
	"cosme-store/internal/infra"
	"cosme-store/internal/pkg/clock"
	"cosme-store/internal/usecase/queries"
	"cosme-store/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateReviewResult struct {
	ReviewID uuid.UUID
}

type ReviewCommands interface {
	CreateReview(ctx context.Context, req CreateReviewRequest, userID uuid.UUID) (*CreateReviewResult, error)
	UpdateReview(ctx context.Context, reviewID uuid.UUID, req UpdateReviewRequest, actorID uuid.UUID) error
	DeleteReview(ctx context.Context, reviewID uuid.UUID, actorID uuid.UUID, actorRole string) error
}

type reviewUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewReviewUseCase(uow shared.UnitOfWork, clk clock.Clock) ReviewCommands {
	return &reviewUseCaseImpl{uow: uow, clock: clk}
}

type CreateReviewRequest struct {
	ProductID string
	Rating    int
	Comment   string
}

// UpdateReviewRequest changes only the fields that are set.
type UpdateReviewRequest struct {
	Rating  *int
	Comment *string
}

func (uc *reviewUseCaseImpl) CreateReview(ctx context.Context, req CreateReviewRequest, userID uuid.UUID) (*CreateReviewResult, error) {
	now := uc.clock.Now()
	// Validate the input before asking the database about eligibility.
	if _, err := domreview.NewReview(uuid.Nil, userID, req.ProductID, uuid.Nil, req.Rating, req.Comment, now); err != nil {
		return nil, err
	}

	orderID, err := uc.EligibleOrder(ctx, domreview.EligibilityInput{UserID: userID, ProductID: req.ProductID, Now: now})
	if err != nil {
		return nil, err
	}

	rev, err := domreview.NewReview(uuid.New(), userID, req.ProductID, orderID, req.Rating, req.Comment, now)
	if err != nil {
		return nil, err
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.Reviews().Create(ctx, tx.DB(), rev)
		if derr != nil {
			switch {
			case infra.IsKind(derr, infra.KindDuplicateKey):
				return domreview.ErrReviewAlreadyExists
			case infra.IsKind(derr, infra.KindForeignKeyViolated):
				return ErrProductNotFound
			}
			return derr
		}
		createdID = id
		return tx.RatingStats().Recalc(ctx, tx.DB(), rev.ProductID())
	})
	if err != nil {
		return nil, err
	}
	return &CreateReviewResult{ReviewID: createdID}, nil
}

func (uc *reviewUseCaseImpl) UpdateReview(ctx context.Context, reviewID uuid.UUID, req UpdateReviewRequest, actorID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rev, derr := tx.Reads().ReviewByID(ctx, reviewID)
		if derr != nil {
			return notFoundAs(derr, ErrReviewNotFound)
		}
		if !rev.IsAuthor(actorID) {
			return domreview.ErrNotAuthor
		}

		if derr = rev.Edit(req.Rating, req.Comment, uc.clock.Now()); derr != nil {
			return derr
		}
		if derr = tx.Reviews().Update(ctx, tx.DB(), rev); derr != nil {
			return notFoundAs(derr, ErrReviewNotFound)
		}
		return tx.RatingStats().Recalc(ctx, tx.DB(), rev.ProductID())
	})
}

func (uc *reviewUseCaseImpl) DeleteReview(ctx context.Context, reviewID uuid.UUID, actorID uuid.UUID, actorRole string) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rev, derr := tx.Reads().ReviewByID(ctx, reviewID)
		if derr != nil {
			return notFoundAs(derr, ErrReviewNotFound)
		}
		if actorRole != queries.RoleAdmin && !rev.IsAuthor(actorID) {
			return domreview.ErrNotAuthor
		}
		if derr = tx.Reviews().Delete(ctx, tx.DB(), reviewID); derr != nil {
			return notFoundAs(derr, ErrReviewNotFound)
		}
		return tx.RatingStats().Recalc(ctx, tx.DB(), rev.ProductID())
	})
}

// EligibleOrder implements domreview.EligibilityChecker.
func (uc *reviewUseCaseImpl) EligibleOrder(ctx context.Context, input domreview.EligibilityInput) (uuid.UUID, error) {
	orderID, err := uc.uow.CommandReads().DeliveredOrderWithProduct(ctx, input.UserID, input.ProductID)
	if err != nil {
		return uuid.Nil, notFoundAs(err, domreview.ErrNotEligible)
	}
	return orderID, nil
}
