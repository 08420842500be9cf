package httperr

import (
	"errors"
	"net/http"

	"cosme-store/internal/domain/cart"
	"cosme-store/internal/domain/order"
	"cosme-store/internal/domain/product"
	"cosme-store/internal/domain/review"
	"cosme-store/internal/domain/user"
	"cosme-store/internal/domain/voucher"
	"cosme-store/internal/infra"
	"cosme-store/internal/pkg/errs"
	"cosme-store/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// VoucherDetail is attached to 422 responses so clients can tell why a code
// was refused.
type VoucherDetail struct {
	Reason   string `json:"reason"`
	Code     string `json:"code"`
	MinOrder int64  `json:"min_order,omitempty"`
}

var errUnauthenticated = errors.New("request is not authenticated")

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		err = errors.New(msg)
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Abort maps err to a status code and a client-safe message. Server-side
// failures never leak their text.
func Abort(c *gin.Context, err error) {
	status := StatusOf(err)
	msg := err.Error()
	if status >= http.StatusInternalServerError {
		msg = http.StatusText(status)
	}
	AbortWithError(c, status, err, msg, detailOf(err))
}

func AbortUnauthenticated(c *gin.Context) {
	AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
}

func AbortBadRequest(c *gin.Context, err error) {
	AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
}

var (
	badRequest = []error{
		errs.ErrValidation,
		cart.ErrInvalidQuantity, cart.ErrInvalidLine,
		order.ErrEmptyOrder, order.ErrInvalidAddress, order.ErrInvalidPaymentMethod,
		order.ErrMissingPaymentIntent, order.ErrInvalidStatus,
		product.ErrMissingVariantKey, product.ErrInvalidPrice, product.ErrInvalidStock,
		product.ErrInvalidProduct, product.ErrInvalidProductID, product.ErrDuplicateVariant,
		review.ErrInvalidRating, review.ErrEmptyComment, review.ErrCommentTooLong, review.ErrMissingProduct,
		user.ErrInvalidEmail, user.ErrInvalidRole, user.ErrPasswordTooWeak,
		user.ErrInvalidDisplayName, user.ErrInvalidPhone,
		voucher.ErrInvalidType,
	}
	notFound = []error{
		errs.ErrNotFound,
		cart.ErrLineNotFound, product.ErrVariantNotFound, shared.ErrGeographyNotFound,
	}
	conflict = []error{
		errs.ErrStateConflict, shared.ErrCartVersionConflict,
		product.ErrInsufficientStock,
		order.ErrNotCancellable, order.ErrInvalidTransition, order.ErrSubtotalMismatch,
		review.ErrReviewAlreadyExists,
	}
	forbidden = []error{
		errs.ErrForbidden, review.ErrNotEligible, review.ErrNotAuthor,
	}
)

func StatusOf(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, voucher.ErrVoucherInvalid):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrUnauthorized):
		return http.StatusUnauthorized
	case isAny(err, forbidden):
		return http.StatusForbidden
	case isAny(err, notFound):
		return http.StatusNotFound
	case isAny(err, conflict):
		return http.StatusConflict
	case isAny(err, badRequest):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrUnavailable), infra.IsKind(err, infra.KindUnavailable):
		return http.StatusServiceUnavailable
	case infra.IsKind(err, infra.KindNotFound):
		return http.StatusNotFound
	case infra.IsKind(err, infra.KindDuplicateKey), infra.IsKind(err, infra.KindConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func detailOf(err error) any {
	var ve *voucher.ValidationError
	if errors.As(err, &ve) {
		return VoucherDetail{Reason: string(ve.Reason), Code: ve.Code, MinOrder: ve.MinOrder}
	}
	return nil
}

func isAny(err error, targets []error) bool {
	for _, t := range targets {
		if errors.Is(err, t) {
			return true
		}
	}
	return false
}
