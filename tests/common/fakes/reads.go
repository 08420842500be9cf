//go:build unit

package fakes

import (
	"context"

	"cosme-store/internal/domain/order"
	"cosme-store/internal/domain/product"
	"cosme-store/internal/domain/review"
	"cosme-store/internal/domain/user"
	"cosme-store/internal/domain/voucher"
	"cosme-store/internal/usecase/shared"

	"github.com/google/uuid"
)

// reads runs with u.mu held by the caller.
type reads struct{ u *UnitOfWork }

func (r reads) ProductByID(_ context.Context, id string) (*product.Product, error) {
	if err := r.u.hit(OpReadProduct); err != nil {
		return nil, err
	}
	p, ok := r.u.st.products[id]
	if !ok {
		return nil, notFound("product not found")
	}
	return cloneProduct(p, p.Variants()), nil
}

func (r reads) VoucherByCode(_ context.Context, code string) (*voucher.Voucher, error) {
	if err := r.u.hit(OpReadVoucher); err != nil {
		return nil, err
	}
	rec, ok := r.u.st.vouchers[voucher.NormalizeCode(code)]
	if !ok {
		return nil, notFound("voucher not found")
	}
	return voucher.Reconstruct(rec.id, rec.params, rec.usage), nil
}

func (r reads) UserByEmail(_ context.Context, email string) (*user.User, error) {
	for _, usr := range r.u.st.users {
		if usr.Email().Value() == email {
			return cloneUser(usr), nil
		}
	}
	return nil, notFound("user not found")
}

func (r reads) UserByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	usr, ok := r.u.st.users[id]
	if !ok {
		return nil, notFound("user not found")
	}
	return cloneUser(usr), nil
}

func (r reads) ReviewByID(_ context.Context, id uuid.UUID) (*review.Review, error) {
	rev, ok := r.u.st.reviews[id]
	if !ok {
		return nil, notFound("review not found")
	}
	return cloneReview(rev), nil
}

func (r reads) OrderByID(_ context.Context, id uuid.UUID) (*order.Order, error) {
	o, ok := r.u.st.orders[id]
	if !ok {
		return nil, notFound("order not found")
	}
	return cloneOrder(o), nil
}

func (r reads) DeliveredOrderWithProduct(_ context.Context, userID uuid.UUID, productID string) (uuid.UUID, error) {
	var newest *order.Order
	for _, o := range r.u.st.orders {
		if !o.BelongsTo(userID) || o.Status() != order.StatusDelivered || !o.HasProduct(productID) {
			continue
		}
		if newest == nil || o.CreatedAt().After(newest.CreatedAt()) {
			newest = o
		}
	}
	if newest == nil {
		return uuid.Nil, notFound("no delivered order with product")
	}
	return newest.ID(), nil
}

func (r reads) CheckoutKey(_ context.Context, userID, key uuid.UUID) (*shared.CheckoutKey, error) {
	k, ok := r.u.st.keys[checkoutKeyID{userID, key}]
	if !ok {
		return nil, notFound("checkout key not found")
	}
	return &k, nil
}

// lockedReads serves CommandReads outside a transaction.
type lockedReads struct{ u *UnitOfWork }

func (r lockedReads) ProductByID(ctx context.Context, id string) (*product.Product, error) {
	r.u.mu.Lock()
	defer r.u.mu.Unlock()
	return reads(r).ProductByID(ctx, id)
}

func (r lockedReads) VoucherByCode(ctx context.Context, code string) (*voucher.Voucher, error) {
	r.u.mu.Lock()
	defer r.u.mu.Unlock()
	return reads(r).VoucherByCode(ctx, code)
}

func (r lockedReads) UserByEmail(ctx context.Context, email string) (*user.User, error) {
	r.u.mu.Lock()
	defer r.u.mu.Unlock()
	return reads(r).UserByEmail(ctx, email)
}

func (r lockedReads) UserByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	r.u.mu.Lock()
	defer r.u.mu.Unlock()
	return reads(r).UserByID(ctx, id)
}

func (r lockedReads) ReviewByID(ctx context.Context, id uuid.UUID) (*review.Review, error) {
	r.u.mu.Lock()
	defer r.u.mu.Unlock()
	return reads(r).ReviewByID(ctx, id)
}

func (r lockedReads) OrderByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	r.u.mu.Lock()
	defer r.u.mu.Unlock()
	return reads(r).OrderByID(ctx, id)
}

func (r lockedReads) DeliveredOrderWithProduct(ctx context.Context, userID uuid.UUID, productID string) (uuid.UUID, error) {
	r.u.mu.Lock()
	defer r.u.mu.Unlock()
	return reads(r).DeliveredOrderWithProduct(ctx, userID, productID)
}

func (r lockedReads) CheckoutKey(ctx context.Context, userID, key uuid.UUID) (*shared.CheckoutKey, error) {
	r.u.mu.Lock()
	defer r.u.mu.Unlock()
	return reads(r).CheckoutKey(ctx, userID, key)
}
