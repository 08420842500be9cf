package order

import (
	"errors"
	"time"

	"cosme-store/internal/domain/voucher"
	"cosme-store/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrNotCancellable       = errors.New("order can only be cancelled while pending or processing")
	ErrInvalidTransition    = errors.New("order status transition not allowed")
	ErrInvalidStatus        = errors.New("unknown order status")
	ErrEmptyOrder           = errors.New("order has no items")
	ErrInvalidAddress       = errors.New("shipping address is incomplete")
	ErrInvalidPaymentMethod = errors.New("payment method must be cod or card")
	ErrMissingPaymentIntent = errors.New("card payment requires a payment intent id")
	ErrSubtotalMismatch     = errors.New("order subtotal does not match its items")
)

type Order struct {
	id        uuid.UUID
	userID    uuid.UUID
	items     []Item
	pricing   Pricing
	payment   Payment
	status    Status
	address   ShippingAddress
	vouchers  []voucher.Applied
	createdAt time.Time
	updatedAt time.Time
}

type Params struct {
	UserID   uuid.UUID
	Items    []Item
	Pricing  Pricing
	Payment  Payment
	Address  ShippingAddress
	Vouchers []voucher.Applied
}

// New creates a pending order. The pricing subtotal must equal the sum of the
// item amounts.
func New(p Params, now time.Time) (*Order, error) {
	if len(p.Items) == 0 {
		return nil, ErrEmptyOrder
	}
	for _, it := range p.Items {
		if it.Quantity < 1 {
			return nil, errs.Mark(errs.Newf("item %s/%s has quantity %d", it.ProductID, it.VariantSize, it.Quantity), ErrEmptyOrder)
		}
	}
	if got := subtotal(p.Items); got != p.Pricing.ItemsSubtotal {
		return nil, errs.Mark(errs.Newf("items sum to %d, pricing says %d", got, p.Pricing.ItemsSubtotal), ErrSubtotalMismatch)
	}
	if err := p.Address.Validate(); err != nil {
		return nil, err
	}
	if p.Payment.Method != PaymentCOD && p.Payment.Method != PaymentCard {
		return nil, ErrInvalidPaymentMethod
	}
	return &Order{
		id:        uuid.New(),
		userID:    p.UserID,
		items:     append([]Item(nil), p.Items...),
		pricing:   p.Pricing,
		payment:   p.Payment,
		status:    StatusPending,
		address:   p.Address,
		vouchers:  append([]voucher.Applied(nil), p.Vouchers...),
		createdAt: now,
		updatedAt: now,
	}, nil
}

func Reconstruct(id uuid.UUID, p Params, status Status, createdAt, updatedAt time.Time) *Order {
	return &Order{
		id:        id,
		userID:    p.UserID,
		items:     p.Items,
		pricing:   p.Pricing,
		payment:   p.Payment,
		status:    status,
		address:   p.Address,
		vouchers:  p.Vouchers,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Cancel moves a pending or processing order to cancelled. Any other status
// is left untouched.
func (o *Order) Cancel(now time.Time) error {
	if !o.status.Cancellable() {
		return errs.Mark(errs.Newf("order %s is %s", o.id, o.status), ErrNotCancellable)
	}
	o.status = StatusCancelled
	o.updatedAt = now
	return nil
}

// AdvanceTo applies an administrative status change. Only the next forward
// step or a cancellation is accepted.
func (o *Order) AdvanceTo(next Status, now time.Time) error {
	if !next.IsValid() {
		return ErrInvalidStatus
	}
	if next == StatusCancelled {
		return o.Cancel(now)
	}
	if forward[o.status] != next {
		return errs.Mark(errs.Newf("order %s: %s -> %s", o.id, o.status, next), ErrInvalidTransition)
	}
	o.status = next
	o.updatedAt = now
	return nil
}

func (o *Order) BelongsTo(userID uuid.UUID) bool {
	return o.userID == userID
}

func (o *Order) HasProduct(productID string) bool {
	for _, it := range o.items {
		if it.ProductID == productID {
			return true
		}
	}
	return false
}

func (o *Order) ID() uuid.UUID               { return o.id }
func (o *Order) UserID() uuid.UUID           { return o.userID }
func (o *Order) Items() []Item               { return append([]Item(nil), o.items...) }
func (o *Order) Pricing() Pricing            { return o.pricing }
func (o *Order) Payment() Payment            { return o.payment }
func (o *Order) Status() Status              { return o.status }
func (o *Order) Address() ShippingAddress    { return o.address }
func (o *Order) Vouchers() []voucher.Applied { return append([]voucher.Applied(nil), o.vouchers...) }
func (o *Order) CreatedAt() time.Time        { return o.createdAt }
func (o *Order) UpdatedAt() time.Time        { return o.updatedAt }
