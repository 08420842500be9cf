//go:build unit

package fakes

import (
	"context"
	"time"

	"cosme-store/internal/domain/order"
	"cosme-store/internal/domain/product"
	"cosme-store/internal/domain/review"
	"cosme-store/internal/domain/user"
	"cosme-store/internal/domain/voucher"
	"cosme-store/internal/infra"
	"cosme-store/internal/infra/pgsql"
	"cosme-store/internal/usecase/shared"

	"github.com/google/uuid"
)

// fakeTx and its repositories run with u.mu already held by Within.
type fakeTx struct {
	u *UnitOfWork
}

func (t *fakeTx) Stock() shared.StockRepository              { return stockRepo{t.u} }
func (t *fakeTx) Products() shared.ProductRepository         { return productRepo{t.u} }
func (t *fakeTx) Vouchers() shared.VoucherRepository         { return voucherRepo{t.u} }
func (t *fakeTx) Orders() shared.OrderRepository             { return orderRepo{t.u} }
func (t *fakeTx) Outbox() shared.OutboxRepository            { return outboxRepo{t.u} }
func (t *fakeTx) Users() shared.UserRepository               { return userRepo{t.u} }
func (t *fakeTx) Reviews() shared.ReviewRepository           { return reviewRepo{t.u} }
func (t *fakeTx) RatingStats() shared.RatingStatsRepository  { return ratingStatsRepo{t.u} }
func (t *fakeTx) CheckoutKeys() shared.CheckoutKeyRepository { return checkoutKeyRepo{t.u} }
func (t *fakeTx) Reads() shared.CommandReads                 { return reads{t.u} }
func (t *fakeTx) DB() pgsql.DBTX                             { return nil }

type stockRepo struct{ u *UnitOfWork }

func (r stockRepo) LockVariant(_ context.Context, _ pgsql.DBTX, productID, size string) (product.Variant, error) {
	if err := r.u.hit(OpLockVariant); err != nil {
		return product.Variant{}, err
	}
	p, ok := r.u.st.products[productID]
	if !ok {
		return product.Variant{}, notFound("variant " + productID + "/" + size + " not found")
	}
	v, err := p.Variant(size)
	if err != nil {
		return product.Variant{}, notFound("variant " + productID + "/" + size + " not found")
	}
	return v, nil
}

func (r stockRepo) UpdateStock(_ context.Context, _ pgsql.DBTX, productID, size string, qty int) error {
	if err := r.u.hit(OpUpdateStock); err != nil {
		return err
	}
	p, ok := r.u.st.products[productID]
	if !ok {
		return notFound("variant " + productID + "/" + size + " not found")
	}
	variants := p.Variants()
	found := false
	for i, v := range variants {
		if v.Size() != size {
			continue
		}
		nv, err := product.NewVariant(size, v.Price(), qty)
		if err != nil {
			return infra.WrapRepoErr("stock check violated", err, infra.KindDBFailure)
		}
		variants[i] = nv
		found = true
	}
	if !found {
		return notFound("variant " + productID + "/" + size + " not found")
	}
	r.u.st.products[productID] = cloneProduct(p, variants)
	return nil
}

type productRepo struct{ u *UnitOfWork }

func (r productRepo) Upsert(_ context.Context, _ pgsql.DBTX, p *product.Product, _ time.Time) error {
	if err := r.u.hit(OpUpsertProduct); err != nil {
		return err
	}
	r.u.st.products[p.ID()] = cloneProduct(p, p.Variants())
	return nil
}

type voucherRepo struct{ u *UnitOfWork }

func (r voucherRepo) Redeem(_ context.Context, _ pgsql.DBTX, code string) error {
	if err := r.u.hit(OpRedeem); err != nil {
		return err
	}
	key := voucher.NormalizeCode(code)
	rec, ok := r.u.st.vouchers[key]
	if !ok || (rec.params.UsageLimit != nil && rec.usage >= *rec.params.UsageLimit) {
		return infra.WrapRepoErr("voucher "+code+" has no remaining uses", nil, infra.KindConflict)
	}
	rec.usage++
	r.u.st.vouchers[key] = rec
	return nil
}

func (r voucherRepo) Release(_ context.Context, _ pgsql.DBTX, code string) error {
	if err := r.u.hit(OpRelease); err != nil {
		return err
	}
	key := voucher.NormalizeCode(code)
	if rec, ok := r.u.st.vouchers[key]; ok {
		rec.usage = max(rec.usage-1, 0)
		r.u.st.vouchers[key] = rec
	}
	return nil
}

type orderRepo struct{ u *UnitOfWork }

func (r orderRepo) Create(_ context.Context, _ pgsql.DBTX, o *order.Order) error {
	if err := r.u.hit(OpCreateOrder); err != nil {
		return err
	}
	if _, dup := r.u.st.orders[o.ID()]; dup {
		return infra.WrapRepoErr("order exists", nil, infra.KindDuplicateKey)
	}
	r.u.st.orders[o.ID()] = cloneOrder(o)
	return nil
}

func (r orderRepo) FindForUpdate(_ context.Context, _ pgsql.DBTX, id uuid.UUID) (*order.Order, error) {
	o, ok := r.u.st.orders[id]
	if !ok {
		return nil, notFound("order not found")
	}
	return cloneOrder(o), nil
}

func (r orderRepo) UpdateStatus(_ context.Context, _ pgsql.DBTX, o *order.Order) error {
	if err := r.u.hit(OpUpdateOrder); err != nil {
		return err
	}
	if _, ok := r.u.st.orders[o.ID()]; !ok {
		return notFound("order not found")
	}
	r.u.st.orders[o.ID()] = cloneOrder(o)
	return nil
}

type outboxRepo struct{ u *UnitOfWork }

func (r outboxRepo) Append(_ context.Context, _ pgsql.DBTX, orderID uuid.UUID, eventType string, payload any, at time.Time) error {
	if err := r.u.hit(OpAppendEvent); err != nil {
		return err
	}
	r.u.st.events = append(r.u.st.events, Event{OrderID: orderID, Type: eventType, Payload: payload, At: at})
	return nil
}

type userRepo struct{ u *UnitOfWork }

func (r userRepo) Create(_ context.Context, _ pgsql.DBTX, usr *user.User) error {
	if err := r.u.hit(OpCreateUser); err != nil {
		return err
	}
	for _, existing := range r.u.st.users {
		if existing.Email() == usr.Email() {
			return infra.WrapRepoErr("email already registered", nil, infra.KindDuplicateKey)
		}
	}
	r.u.st.users[usr.ID()] = cloneUser(usr)
	return nil
}

func (r userRepo) UpdateLastLogin(_ context.Context, _ pgsql.DBTX, userID uuid.UUID, at time.Time) error {
	if _, ok := r.u.st.users[userID]; !ok {
		return notFound("user not found")
	}
	r.u.st.lastLogin[userID] = at
	return nil
}

func (r userRepo) UpdateProfile(_ context.Context, _ pgsql.DBTX, usr *user.User) error {
	if _, ok := r.u.st.users[usr.ID()]; !ok {
		return notFound("user not found")
	}
	r.u.st.users[usr.ID()] = cloneUser(usr)
	return nil
}

type reviewRepo struct{ u *UnitOfWork }

func (r reviewRepo) Create(_ context.Context, _ pgsql.DBTX, rev *review.Review) (uuid.UUID, error) {
	if _, ok := r.u.st.products[rev.ProductID()]; !ok {
		return uuid.Nil, infra.WrapRepoErr("product missing", nil, infra.KindForeignKeyViolated)
	}
	for _, existing := range r.u.st.reviews {
		if existing.UserID() == rev.UserID() && existing.ProductID() == rev.ProductID() {
			return uuid.Nil, infra.WrapRepoErr("review exists", nil, infra.KindDuplicateKey)
		}
	}
	r.u.st.reviews[rev.ID()] = cloneReview(rev)
	return rev.ID(), nil
}

func (r reviewRepo) Update(_ context.Context, _ pgsql.DBTX, rev *review.Review) error {
	if _, ok := r.u.st.reviews[rev.ID()]; !ok {
		return notFound("review not found")
	}
	r.u.st.reviews[rev.ID()] = cloneReview(rev)
	return nil
}

func (r reviewRepo) Delete(_ context.Context, _ pgsql.DBTX, reviewID uuid.UUID) error {
	if _, ok := r.u.st.reviews[reviewID]; !ok {
		return notFound("review not found")
	}
	delete(r.u.st.reviews, reviewID)
	return nil
}

type ratingStatsRepo struct{ u *UnitOfWork }

func (r ratingStatsRepo) Recalc(_ context.Context, _ pgsql.DBTX, productID string) error {
	r.u.st.recalcs = append(r.u.st.recalcs, productID)
	return nil
}

type checkoutKeyRepo struct{ u *UnitOfWork }

func (r checkoutKeyRepo) Record(_ context.Context, _ pgsql.DBTX, k shared.CheckoutKey) error {
	if err := r.u.hit(OpRecordKey); err != nil {
		return err
	}
	id := checkoutKeyID{k.UserID, k.Key}
	if prev, ok := r.u.st.keys[id]; ok && prev.ExpiresAt.After(k.CreatedAt) {
		return infra.WrapRepoErr("checkout key is already in use", nil, infra.KindDuplicateKey)
	}
	r.u.st.keys[id] = k
	return nil
}
