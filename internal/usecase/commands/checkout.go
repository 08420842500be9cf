package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"time"

	"cosme-store/internal/domain/cart"
	"cosme-store/internal/domain/order"
	"cosme-store/internal/domain/voucher"
	"cosme-store/internal/infra"
	"cosme-store/internal/pkg/clock"
	"cosme-store/internal/pkg/keylock"
	"cosme-store/internal/usecase/shared"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// ShippingInfo is the address the customer typed in. Names are optional;
// they are resolved from the codes and only used when resolution fails.
type ShippingInfo struct {
	RecipientName string
	Phone         string
	Street        string
	ProvinceCode  string
	ProvinceName  string
	DistrictCode  string
	DistrictName  string
	WardCode      string
	WardName      string
	Note          string
}

// checkoutKeyTTL is how long an Idempotency-Key keeps pointing at its order.
const checkoutKeyTTL = 24 * time.Hour

type CheckoutRequest struct {
	Shipping        ShippingInfo
	PaymentMethod   string
	PaymentIntentID string
	// IdempotencyKey is optional. A retry with the same key and body gets
	// the order placed by the first attempt.
	IdempotencyKey uuid.UUID `json:"-"`
}

type CheckoutResult struct {
	OrderID  uuid.UUID
	Status   order.Status
	Pricing  order.Pricing
	Replayed bool
}

type CheckoutCommands interface {
	// PlaceOrder turns the selected cart lines into a pending order. Stock,
	// voucher usage, the order row and its outbox event commit together.
	PlaceOrder(ctx context.Context, userID uuid.UUID, req CheckoutRequest) (*CheckoutResult, error)
}

type checkoutCommandsImpl struct {
	uow         shared.UnitOfWork
	writer      *cartWriter
	geo         shared.Geography
	stock       *StockLedger
	clock       clock.Clock
	shippingFee int64
}

func NewCheckoutCommands(uow shared.UnitOfWork, store shared.CartStore, locks *keylock.Locker, geo shared.Geography,
	stock *StockLedger, clk clock.Clock, settings CartSettings) CheckoutCommands {
	return &checkoutCommandsImpl{
		uow:         uow,
		writer:      newCartWriter(store, locks, settings.SaveRetries),
		geo:         geo,
		stock:       stock,
		clock:       clk,
		shippingFee: settings.ShippingFee,
	}
}

func (uc *checkoutCommandsImpl) PlaceOrder(ctx context.Context, userID uuid.UUID, req CheckoutRequest) (*CheckoutResult, error) {
	payment, err := order.NewPayment(req.PaymentMethod, req.PaymentIntentID)
	if err != nil {
		return nil, err
	}

	unlock := uc.writer.lock(userID)
	defer unlock()

	now := uc.clock.Now()
	requestHash := hashCheckoutRequest(req)
	if req.IdempotencyKey != uuid.Nil {
		prior, err := uc.priorCheckout(ctx, userID, req.IdempotencyKey, requestHash, now)
		if err != nil || prior != nil {
			return prior, err
		}
	}

	c, err := uc.writer.store.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	lines := c.Ledger.SelectedLines()
	if len(lines) == 0 {
		return nil, ErrEmptySelection
	}
	items, err := order.ItemsFromLines(lines)
	if err != nil {
		return nil, err
	}

	subtotal := c.Ledger.SelectedTotals().TotalAmount
	slots, err := uc.revalidateVouchers(ctx, c.Vouchers, voucher.Context{
		OrderAmount:  subtotal,
		ShippingCost: uc.shippingFee,
		Now:          now,
	})
	if err != nil {
		return nil, err
	}

	address, err := uc.resolveAddress(ctx, req.Shipping)
	if err != nil {
		return nil, err
	}

	o, err := order.New(order.Params{
		UserID:   userID,
		Items:    items,
		Pricing:  order.ComputePricing(subtotal, slots.ProductDiscount(), slots.ShippingDiscount(), uc.shippingFee),
		Payment:  payment,
		Address:  address,
		Vouchers: slots.Applied(),
	}, now)
	if err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := uc.stock.DecreaseStock(ctx, tx, o.Items()); err != nil {
			return err
		}
		for _, a := range o.Vouchers() {
			if err := tx.Vouchers().Redeem(ctx, tx.DB(), a.Code); err != nil {
				if infra.IsKind(err, infra.KindConflict) {
					return &voucher.ValidationError{Reason: voucher.ReasonUsageExhausted, Code: a.Code}
				}
				return err
			}
		}
		if err := tx.Orders().Create(ctx, tx.DB(), o); err != nil {
			return err
		}
		if req.IdempotencyKey != uuid.Nil {
			err := tx.CheckoutKeys().Record(ctx, tx.DB(), shared.CheckoutKey{
				UserID:      userID,
				Key:         req.IdempotencyKey,
				RequestHash: requestHash,
				OrderID:     o.ID(),
				ExpiresAt:   now.Add(checkoutKeyTTL),
				CreatedAt:   now,
			})
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrCheckoutInProgress
			}
			if err != nil {
				return err
			}
		}
		return tx.Outbox().Append(ctx, tx.DB(), o.ID(), EventOrderCreated, newOrderEvent(o), now)
	})
	if err != nil {
		return nil, err
	}

	slog.Info("order placed",
		slog.String("order_id", o.ID().String()),
		slog.String("user_id", userID.String()),
		slog.Int64("total_amount", o.Pricing().TotalAmount))

	uc.clearOrderedLines(ctx, userID, lines)

	return &CheckoutResult{OrderID: o.ID(), Status: o.Status(), Pricing: o.Pricing()}, nil
}

// priorCheckout returns the order an unexpired key already produced. The
// same key with a different body is refused.
func (uc *checkoutCommandsImpl) priorCheckout(ctx context.Context, userID, key uuid.UUID, requestHash string, now time.Time) (*CheckoutResult, error) {
	reads := uc.uow.CommandReads()
	k, err := reads.CheckoutKey(ctx, userID, key)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if !k.ExpiresAt.After(now) {
		return nil, nil
	}
	if k.RequestHash != requestHash {
		return nil, ErrIdempotencyKeyReused
	}

	o, err := reads.OrderByID(ctx, k.OrderID)
	if err != nil {
		return nil, notFoundAs(err, ErrOrderNotFound)
	}
	slog.Info("checkout replayed",
		slog.String("order_id", o.ID().String()),
		slog.String("user_id", userID.String()),
		slog.String("idempotency_key", key.String()))
	return &CheckoutResult{OrderID: o.ID(), Status: o.Status(), Pricing: o.Pricing(), Replayed: true}, nil
}

func hashCheckoutRequest(req CheckoutRequest) string {
	data, _ := json.Marshal(req)
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// revalidateVouchers checks every applied voucher against its current record
// and recomputes its discount. Any voucher that stopped qualifying fails the
// checkout so the customer sees the new price before paying it.
func (uc *checkoutCommandsImpl) revalidateVouchers(ctx context.Context, held voucher.Slots, vctx voucher.Context) (voucher.Slots, error) {
	var fresh voucher.Slots
	for _, a := range held.Applied() {
		v, err := uc.uow.CommandReads().VoucherByCode(ctx, a.Code)
		if err != nil {
			if !infra.IsKind(err, infra.KindNotFound) {
				return voucher.Slots{}, err
			}
			v = nil
		}
		if _, err := voucher.Apply(&fresh, a.Type, a.Code, v, vctx); err != nil {
			return voucher.Slots{}, err
		}
	}
	return fresh, nil
}

// resolveAddress looks the three division names up concurrently. A failed
// lookup keeps the name the client sent.
func (uc *checkoutCommandsImpl) resolveAddress(ctx context.Context, in ShippingInfo) (order.ShippingAddress, error) {
	addr := order.ShippingAddress{
		RecipientName: in.RecipientName,
		Phone:         in.Phone,
		Street:        in.Street,
		ProvinceCode:  in.ProvinceCode,
		ProvinceName:  in.ProvinceName,
		DistrictCode:  in.DistrictCode,
		DistrictName:  in.DistrictName,
		WardCode:      in.WardCode,
		WardName:      in.WardName,
		Note:          in.Note,
	}
	if err := addr.Validate(); err != nil {
		return order.ShippingAddress{}, err
	}

	g, gctx := errgroup.WithContext(ctx)
	resolve := func(kind, code string, list func(context.Context) ([]shared.Division, error), dst *string) {
		g.Go(func() error {
			divisions, err := list(gctx)
			if err != nil {
				if ctxErr := gctx.Err(); ctxErr != nil {
					return ctxErr
				}
				slog.Warn("address name lookup failed, keeping client value",
					slog.String("kind", kind),
					slog.String("code", code),
					slog.String("error", err.Error()))
				return nil
			}
			for _, d := range divisions {
				if d.Code == code {
					*dst = d.Name
					return nil
				}
			}
			slog.Warn("address code not found, keeping client value",
				slog.String("kind", kind),
				slog.String("code", code))
			return nil
		})
	}
	resolve("province", addr.ProvinceCode, uc.geo.Provinces, &addr.ProvinceName)
	resolve("district", addr.DistrictCode, func(ctx context.Context) ([]shared.Division, error) {
		return uc.geo.Districts(ctx, in.ProvinceCode)
	}, &addr.DistrictName)
	resolve("ward", addr.WardCode, func(ctx context.Context) ([]shared.Division, error) {
		return uc.geo.Wards(ctx, in.DistrictCode)
	}, &addr.WardName)

	if err := g.Wait(); err != nil {
		return order.ShippingAddress{}, err
	}
	return addr, nil
}

// clearOrderedLines removes the ordered lines and the used vouchers from the
// stored cart. The order is already committed, so a failure is only logged.
func (uc *checkoutCommandsImpl) clearOrderedLines(ctx context.Context, userID uuid.UUID, lines []cart.Line) {
	ids := make([]cart.LineID, 0, len(lines))
	for _, l := range lines {
		ids = append(ids, l.ID())
	}
	_, err := uc.writer.updateLocked(context.WithoutCancel(ctx), userID, func(c *shared.StoredCart) error {
		c.Ledger.RemoveLines(ids)
		c.Vouchers.ClearAll()
		return nil
	})
	if err != nil {
		slog.Error("failed to clear ordered lines from cart",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()))
	}
}
