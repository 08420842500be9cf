//go:build unit

// Package fakes holds in-memory stand-ins for the persistence ports so use
// cases can be tested without Postgres or Mongo.
package fakes

import (
	"context"
	"maps"
	"slices"
	"sync"
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

// Failure points accepted by UnitOfWork.Fail.
const (
	OpLockVariant   = "stock.lock"
	OpUpdateStock   = "stock.update"
	OpRedeem        = "vouchers.redeem"
	OpRelease       = "vouchers.release"
	OpCreateOrder   = "orders.create"
	OpUpdateOrder   = "orders.update"
	OpAppendEvent   = "outbox.append"
	OpCreateUser    = "users.create"
	OpUpsertProduct = "products.upsert"
	OpReadVoucher   = "reads.voucher"
	OpReadProduct   = "reads.product"
	OpRecordKey     = "checkoutkeys.record"
)

type Event struct {
	OrderID uuid.UUID
	Type    string
	Payload any
	At      time.Time
}

type checkoutKeyID struct{ user, key uuid.UUID }

type voucherRecord struct {
	id     uuid.UUID
	params voucher.Params
	usage  int
}

type state struct {
	products  map[string]*product.Product
	vouchers  map[string]voucherRecord
	orders    map[uuid.UUID]*order.Order
	users     map[uuid.UUID]*user.User
	lastLogin map[uuid.UUID]time.Time
	reviews   map[uuid.UUID]*review.Review
	keys      map[checkoutKeyID]shared.CheckoutKey
	events    []Event
	recalcs   []string
}

func (s state) clone() state {
	return state{
		products:  maps.Clone(s.products),
		vouchers:  maps.Clone(s.vouchers),
		orders:    maps.Clone(s.orders),
		users:     maps.Clone(s.users),
		lastLogin: maps.Clone(s.lastLogin),
		reviews:   maps.Clone(s.reviews),
		keys:      maps.Clone(s.keys),
		events:    slices.Clone(s.events),
		recalcs:   slices.Clone(s.recalcs),
	}
}

// UnitOfWork keeps every aggregate in maps. Within runs one transaction at a
// time and restores the previous state when fn fails. Stored aggregates are
// never handed out; callers always get copies.
type UnitOfWork struct {
	mu    sync.Mutex
	st    state
	fail  map[string]error
	calls map[string]int

	Commits   int
	Rollbacks int
}

func NewUnitOfWork() *UnitOfWork {
	return &UnitOfWork{
		st: state{
			products:  map[string]*product.Product{},
			vouchers:  map[string]voucherRecord{},
			orders:    map[uuid.UUID]*order.Order{},
			users:     map[uuid.UUID]*user.User{},
			lastLogin: map[uuid.UUID]time.Time{},
			reviews:   map[uuid.UUID]*review.Review{},
			keys:      map[checkoutKeyID]shared.CheckoutKey{},
		},
		fail:  map[string]error{},
		calls: map[string]int{},
	}
}

var _ shared.UnitOfWork = (*UnitOfWork)(nil)

// Fail makes op return err from now on. A nil err clears the failure.
func (u *UnitOfWork) Fail(op string, err error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if err == nil {
		delete(u.fail, op)
		return
	}
	u.fail[op] = err
}

// Calls reports how many times op ran.
func (u *UnitOfWork) Calls(op string) int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.calls[op]
}

func (u *UnitOfWork) hit(op string) error {
	u.calls[op]++
	return u.fail[op]
}

func (u *UnitOfWork) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	saved := u.st.clone()
	if err := fn(ctx, &fakeTx{u: u}); err != nil {
		u.st = saved
		u.Rollbacks++
		return err
	}
	u.Commits++
	return nil
}

func (u *UnitOfWork) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db pgsql.DBTX) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	return fn(ctx, nil)
}

func (u *UnitOfWork) WithDB(ctx context.Context, fn func(ctx context.Context, db pgsql.DBTX) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	return fn(ctx, nil)
}

func (u *UnitOfWork) CommandReads() shared.CommandReads {
	return lockedReads{u: u}
}

// Seeding and inspection.

func (u *UnitOfWork) AddProduct(p *product.Product) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.st.products[p.ID()] = cloneProduct(p, p.Variants())
}

func (u *UnitOfWork) AddVoucher(id uuid.UUID, p voucher.Params, usage int) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.st.vouchers[voucher.NormalizeCode(p.Code)] = voucherRecord{id: id, params: p, usage: usage}
}

func (u *UnitOfWork) AddOrder(o *order.Order) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.st.orders[o.ID()] = cloneOrder(o)
}

func (u *UnitOfWork) AddUser(usr *user.User) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.st.users[usr.ID()] = cloneUser(usr)
}

func (u *UnitOfWork) AddReview(r *review.Review) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.st.reviews[r.ID()] = cloneReview(r)
}

func (u *UnitOfWork) Stock(productID, size string) (int, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	p, ok := u.st.products[productID]
	if !ok {
		return 0, false
	}
	v, err := p.Variant(size)
	if err != nil {
		return 0, false
	}
	return v.StockQty(), true
}

func (u *UnitOfWork) Product(id string) (*product.Product, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	p, ok := u.st.products[id]
	if !ok {
		return nil, false
	}
	return cloneProduct(p, p.Variants()), true
}

func (u *UnitOfWork) VoucherUsage(code string) int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.st.vouchers[voucher.NormalizeCode(code)].usage
}

func (u *UnitOfWork) Order(id uuid.UUID) (*order.Order, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	o, ok := u.st.orders[id]
	if !ok {
		return nil, false
	}
	return cloneOrder(o), true
}

func (u *UnitOfWork) Orders() []*order.Order {
	u.mu.Lock()
	defer u.mu.Unlock()
	out := make([]*order.Order, 0, len(u.st.orders))
	for _, o := range u.st.orders {
		out = append(out, cloneOrder(o))
	}
	return out
}

func (u *UnitOfWork) User(id uuid.UUID) (*user.User, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	usr, ok := u.st.users[id]
	if !ok {
		return nil, false
	}
	return cloneUser(usr), true
}

func (u *UnitOfWork) UserByEmail(email string) (*user.User, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	for _, usr := range u.st.users {
		if usr.Email().Value() == email {
			return cloneUser(usr), true
		}
	}
	return nil, false
}

func (u *UnitOfWork) LastLogin(id uuid.UUID) (time.Time, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	t, ok := u.st.lastLogin[id]
	return t, ok
}

func (u *UnitOfWork) Review(id uuid.UUID) (*review.Review, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	r, ok := u.st.reviews[id]
	if !ok {
		return nil, false
	}
	return cloneReview(r), true
}

func (u *UnitOfWork) AddCheckoutKey(k shared.CheckoutKey) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.st.keys[checkoutKeyID{k.UserID, k.Key}] = k
}

func (u *UnitOfWork) Events() []Event {
	u.mu.Lock()
	defer u.mu.Unlock()
	return slices.Clone(u.st.events)
}

func (u *UnitOfWork) Recalcs() []string {
	u.mu.Lock()
	defer u.mu.Unlock()
	return slices.Clone(u.st.recalcs)
}

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindNotFound)
}

func cloneProduct(p *product.Product, variants []product.Variant) *product.Product {
	return product.Reconstruct(p.ID(), p.Name(), p.Description(), p.Category(), p.Image(), variants, p.CreatedAt(), p.UpdatedAt())
}

func cloneOrder(o *order.Order) *order.Order {
	return order.Reconstruct(o.ID(), order.Params{
		UserID:   o.UserID(),
		Items:    o.Items(),
		Pricing:  o.Pricing(),
		Payment:  o.Payment(),
		Address:  o.Address(),
		Vouchers: o.Vouchers(),
	}, o.Status(), o.CreatedAt(), o.UpdatedAt())
}

func cloneUser(usr *user.User) *user.User {
	return user.Reconstruct(usr.ID(), usr.Email(), usr.PasswordHash(), usr.Role(), usr.DisplayName(), usr.Phone(),
		usr.LastLogin(), usr.IsActive(), usr.CreatedAt(), usr.UpdatedAt())
}

func cloneReview(r *review.Review) *review.Review {
	return review.Reconstruct(r.ID(), r.UserID(), r.ProductID(), r.OrderID(), r.Rating(), r.Comment(), r.CreatedAt(), r.UpdatedAt())
}
