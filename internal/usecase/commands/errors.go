package commands

import (
	"cosme-store/internal/domain/auth"
	"cosme-store/internal/infra"
	"cosme-store/internal/pkg/errs"
)

var (
	ErrProductNotFound = errs.Mark(errs.New("product not found"), errs.ErrNotFound)
	ErrOrderNotFound   = errs.Mark(errs.New("order not found"), errs.ErrNotFound)
	ErrReviewNotFound  = errs.Mark(errs.New("review not found"), errs.ErrNotFound)
	ErrUserNotFound    = errs.Mark(errs.New("user not found"), errs.ErrNotFound)

	ErrEmptySelection = errs.Mark(errs.New("no cart lines are selected"), errs.ErrValidation)
	ErrCartBusy       = errs.Mark(errs.New("cart keeps changing concurrently, try again"), errs.ErrStateConflict)
	ErrEmailTaken     = errs.Mark(errs.New("email is already registered"), errs.ErrStateConflict)

	ErrIdempotencyKeyReused = errs.Mark(errs.New("idempotency key was already used for a different checkout"), errs.ErrStateConflict)
	ErrCheckoutInProgress   = errs.Mark(errs.New("a checkout with this idempotency key is already in progress"), errs.ErrStateConflict)

	ErrInvalidCredentials = errs.Mark(auth.ErrInvalidCredentials, errs.ErrUnauthorized)
	ErrTokenValidation    = errs.Mark(errs.New("token validation failed"), errs.ErrUnauthorized)
	ErrSessionExpired     = errs.Mark(errs.New("session expired"), errs.ErrUnauthorized)
	ErrUserInactive       = errs.Mark(errs.New("user inactive"), errs.ErrForbidden)
	ErrTokenGeneration    = errs.New("token generation failed")
)

// notFoundAs replaces a repository not-found error with sentinel and leaves
// every other error as is.
func notFoundAs(err, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return sentinel
	}
	return err
}
