package voucher

import (
	"errors"
	"fmt"
	"time"

	"cosme-store/internal/pkg/money"
)

// ErrVoucherInvalid matches every *ValidationError.
var ErrVoucherInvalid = errors.New("voucher is not applicable")

type Reason string

// Reasons in the order Validate checks them.
const (
	ReasonNotFound       Reason = "not_found"
	ReasonInactive       Reason = "inactive"
	ReasonNotYetActive   Reason = "not_yet_active"
	ReasonExpired        Reason = "expired"
	ReasonUsageExhausted Reason = "usage_exhausted"
	ReasonBelowMinimum   Reason = "below_minimum"
	ReasonTypeMismatch   Reason = "type_mismatch"
)

type ValidationError struct {
	Reason   Reason
	Code     string
	MinOrder int64
}

func (e *ValidationError) Error() string {
	switch e.Reason {
	case ReasonNotFound:
		return fmt.Sprintf("voucher %s does not exist", e.Code)
	case ReasonInactive:
		return fmt.Sprintf("voucher %s is no longer valid", e.Code)
	case ReasonNotYetActive:
		return fmt.Sprintf("voucher %s is not yet active", e.Code)
	case ReasonExpired:
		return fmt.Sprintf("voucher %s has expired", e.Code)
	case ReasonUsageExhausted:
		return fmt.Sprintf("voucher %s has reached its usage limit", e.Code)
	case ReasonBelowMinimum:
		return fmt.Sprintf("voucher %s requires a minimum order of %s", e.Code, money.Format(e.MinOrder))
	case ReasonTypeMismatch:
		return fmt.Sprintf("voucher %s cannot be used in this slot", e.Code)
	default:
		return fmt.Sprintf("voucher %s is not applicable", e.Code)
	}
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrVoucherInvalid
}

// ReasonOf extracts the validation reason from err, if any.
func ReasonOf(err error) (Reason, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Reason, true
	}
	return "", false
}

// Validate returns nil when v applies to an order of orderAmount at now, or the
// first failing check as a *ValidationError. A nil v is reported as not found
// under code.
func Validate(v *Voucher, code string, orderAmount int64, now time.Time) error {
	if v == nil {
		return &ValidationError{Reason: ReasonNotFound, Code: NormalizeCode(code)}
	}
	fail := func(r Reason) error {
		return &ValidationError{Reason: r, Code: v.code, MinOrder: v.minOrder}
	}
	switch {
	case v.status != StatusActive:
		return fail(ReasonInactive)
	case now.Before(v.startDate):
		return fail(ReasonNotYetActive)
	case now.After(v.endDate):
		return fail(ReasonExpired)
	case v.exhausted():
		return fail(ReasonUsageExhausted)
	case orderAmount < v.minOrder:
		return fail(ReasonBelowMinimum)
	}
	return nil
}
