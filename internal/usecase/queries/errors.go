package queries

import (
	"cosme-store/internal/pkg/errs"
)

var (
	ErrInvalidCursor   = errs.Mark(errs.New("invalid cursor"), errs.ErrValidation)
	ErrProductNotFound = errs.Mark(errs.New("product not found"), errs.ErrNotFound)
	ErrOrderNotFound   = errs.Mark(errs.New("order not found"), errs.ErrNotFound)
	ErrReviewNotFound  = errs.Mark(errs.New("review not found"), errs.ErrNotFound)
	ErrUserNotFound    = errs.Mark(errs.New("user not found"), errs.ErrNotFound)
	ErrUserInactive    = errs.Mark(errs.New("user inactive"), errs.ErrForbidden)
)
