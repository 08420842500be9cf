package commands

import (
	"context"
	"errors"
	"log/slog"

	"cosme-store/internal/domain/cart"
	"cosme-store/internal/domain/order"
	"cosme-store/internal/domain/product"
	"cosme-store/internal/domain/voucher"
	"cosme-store/internal/infra"
	"cosme-store/internal/pkg/clock"
	"cosme-store/internal/pkg/errs"
	"cosme-store/internal/pkg/keylock"
	"cosme-store/internal/usecase/shared"

	"github.com/google/uuid"
)

// CartState is a cart as the client sees it after a command.
type CartState struct {
	Lines          []cart.Line
	Selected       []cart.LineID
	Totals         cart.Totals
	SelectedTotals cart.Totals
	Vouchers       []voucher.Applied
	// Pricing previews checkout of the selected lines with the applied vouchers.
	Pricing order.Pricing
	// InvalidatedVouchers lists vouchers dropped because the cart stopped
	// qualifying for them.
	InvalidatedVouchers []voucher.Invalidation
	Version             int64
}

type AddItemInput struct {
	ProductID   string
	VariantSize string
	Quantity    int
}

type CartLineInput struct {
	ProductID   string
	VariantSize string
	Quantity    int
	Selected    bool
}

type CartCommands interface {
	Get(ctx context.Context, userID uuid.UUID) (*CartState, error)
	// Replace overwrites the whole cart with lines, re-priced from the catalog.
	// Lines whose product or variant no longer exists are dropped.
	Replace(ctx context.Context, userID uuid.UUID, lines []CartLineInput) (*CartState, error)
	AddItem(ctx context.Context, userID uuid.UUID, in AddItemInput) (*CartState, error)
	UpdateQuantity(ctx context.Context, userID uuid.UUID, lineID cart.LineID, quantity int) (*CartState, error)
	RemoveItem(ctx context.Context, userID uuid.UUID, lineID cart.LineID) (*CartState, error)
	ToggleSelect(ctx context.Context, userID uuid.UUID, lineID cart.LineID) (*CartState, error)
	SelectAll(ctx context.Context, userID uuid.UUID) (*CartState, error)
	DeselectAll(ctx context.Context, userID uuid.UUID) (*CartState, error)
	SetSelection(ctx context.Context, userID uuid.UUID, ids []cart.LineID) (*CartState, error)
	ApplyVoucher(ctx context.Context, userID uuid.UUID, category voucher.Type, code string) (*CartState, error)
	RemoveVoucher(ctx context.Context, userID uuid.UUID, category voucher.Type) (*CartState, error)
}

type cartCommandsImpl struct {
	uow         shared.UnitOfWork
	writer      *cartWriter
	clock       clock.Clock
	shippingFee int64
}

func NewCartCommands(uow shared.UnitOfWork, store shared.CartStore, locks *keylock.Locker, clk clock.Clock, settings CartSettings) CartCommands {
	return &cartCommandsImpl{
		uow:         uow,
		writer:      newCartWriter(store, locks, settings.SaveRetries),
		clock:       clk,
		shippingFee: settings.ShippingFee,
	}
}

// Get re-evaluates applied vouchers for display without writing the result back.
func (uc *cartCommandsImpl) Get(ctx context.Context, userID uuid.UUID) (*CartState, error) {
	c, err := uc.writer.store.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	dropped, err := uc.reevaluate(ctx, &c)
	if err != nil {
		return nil, err
	}
	return uc.state(c, dropped), nil
}

func (uc *cartCommandsImpl) Replace(ctx context.Context, userID uuid.UUID, lines []CartLineInput) (*CartState, error) {
	now := uc.clock.Now()
	ledger := cart.NewLedger()
	var selected []cart.LineID
	for _, in := range lines {
		snap, stock, err := uc.snapshot(ctx, in.ProductID, in.VariantSize)
		if err != nil {
			if errors.Is(err, ErrProductNotFound) || errors.Is(err, product.ErrVariantNotFound) {
				slog.Info("dropping cart line for unknown variant",
					slog.String("product_id", in.ProductID),
					slog.String("variant_size", in.VariantSize))
				continue
			}
			return nil, err
		}
		if err := withinStock(ledger, cart.NewLineID(in.ProductID, in.VariantSize), in.Quantity, stock); err != nil {
			return nil, err
		}
		line, err := ledger.AddLine(in.ProductID, in.VariantSize, in.Quantity, snap, now)
		if err != nil {
			return nil, err
		}
		if in.Selected {
			selected = append(selected, line.ID())
		}
	}
	ledger.SetSelection(selected)

	return uc.mutate(ctx, userID, func(c *shared.StoredCart) error {
		c.Ledger = ledger
		return nil
	})
}

func (uc *cartCommandsImpl) AddItem(ctx context.Context, userID uuid.UUID, in AddItemInput) (*CartState, error) {
	if in.Quantity < 1 {
		return nil, cart.ErrInvalidQuantity
	}
	snap, stock, err := uc.snapshot(ctx, in.ProductID, in.VariantSize)
	if err != nil {
		return nil, err
	}
	id := cart.NewLineID(in.ProductID, in.VariantSize)

	return uc.mutate(ctx, userID, func(c *shared.StoredCart) error {
		if err := withinStock(c.Ledger, id, in.Quantity, stock); err != nil {
			return err
		}
		_, err := c.Ledger.AddLine(in.ProductID, in.VariantSize, in.Quantity, snap, uc.clock.Now())
		return err
	})
}

// withinStock refuses adding quantity to line id when the result would exceed
// stock. Non-positive quantities are left to the ledger.
func withinStock(l *cart.Ledger, id cart.LineID, quantity, stock int) error {
	have := 0
	if line, ok := l.Line(id); ok {
		have = line.Quantity
	}
	if quantity > 0 && quantity > stock-have {
		return errs.Mark(errs.Newf("%s: %d in cart, %d requested, %d in stock", id, have, quantity, stock), product.ErrInsufficientStock)
	}
	return nil
}

func (uc *cartCommandsImpl) UpdateQuantity(ctx context.Context, userID uuid.UUID, lineID cart.LineID, quantity int) (*CartState, error) {
	if quantity < 1 {
		return nil, cart.ErrInvalidQuantity
	}
	productID, size, ok := lineID.Split()
	if !ok {
		return nil, cart.ErrLineNotFound
	}
	_, stock, err := uc.snapshot(ctx, productID, size)
	if err != nil {
		return nil, err
	}
	if quantity > stock {
		return nil, errs.Mark(errs.Newf("%s: %d requested, %d in stock", lineID, quantity, stock), product.ErrInsufficientStock)
	}

	return uc.mutate(ctx, userID, func(c *shared.StoredCart) error {
		return c.Ledger.SetQuantity(lineID, quantity)
	})
}

func (uc *cartCommandsImpl) RemoveItem(ctx context.Context, userID uuid.UUID, lineID cart.LineID) (*CartState, error) {
	return uc.mutate(ctx, userID, func(c *shared.StoredCart) error {
		c.Ledger.RemoveLine(lineID)
		return nil
	})
}

func (uc *cartCommandsImpl) ToggleSelect(ctx context.Context, userID uuid.UUID, lineID cart.LineID) (*CartState, error) {
	return uc.mutate(ctx, userID, func(c *shared.StoredCart) error {
		return c.Ledger.ToggleSelect(lineID)
	})
}

func (uc *cartCommandsImpl) SelectAll(ctx context.Context, userID uuid.UUID) (*CartState, error) {
	return uc.mutate(ctx, userID, func(c *shared.StoredCart) error {
		c.Ledger.SelectAll()
		return nil
	})
}

func (uc *cartCommandsImpl) DeselectAll(ctx context.Context, userID uuid.UUID) (*CartState, error) {
	return uc.mutate(ctx, userID, func(c *shared.StoredCart) error {
		c.Ledger.DeselectAll()
		return nil
	})
}

func (uc *cartCommandsImpl) SetSelection(ctx context.Context, userID uuid.UUID, ids []cart.LineID) (*CartState, error) {
	return uc.mutate(ctx, userID, func(c *shared.StoredCart) error {
		c.Ledger.SetSelection(ids)
		return nil
	})
}

func (uc *cartCommandsImpl) ApplyVoucher(ctx context.Context, userID uuid.UUID, category voucher.Type, code string) (*CartState, error) {
	if !category.IsValid() {
		return nil, errs.Mark(errs.Newf("unknown voucher type %q", category), errs.ErrValidation)
	}
	v, err := uc.lookupVoucher(ctx, code)
	if err != nil {
		return nil, err
	}

	return uc.mutate(ctx, userID, func(c *shared.StoredCart) error {
		_, err := voucher.Apply(&c.Vouchers, category, code, v, uc.voucherContext(c.Ledger))
		return err
	})
}

func (uc *cartCommandsImpl) RemoveVoucher(ctx context.Context, userID uuid.UUID, category voucher.Type) (*CartState, error) {
	if !category.IsValid() {
		return nil, errs.Mark(errs.Newf("unknown voucher type %q", category), errs.ErrValidation)
	}
	return uc.mutate(ctx, userID, func(c *shared.StoredCart) error {
		c.Vouchers.Clear(category)
		return nil
	})
}

// mutate applies fn, re-evaluates the applied vouchers against the new
// selection and saves the cart.
func (uc *cartCommandsImpl) mutate(ctx context.Context, userID uuid.UUID, fn func(c *shared.StoredCart) error) (*CartState, error) {
	var dropped []voucher.Invalidation
	c, err := uc.writer.update(ctx, userID, func(c *shared.StoredCart) error {
		if err := fn(c); err != nil {
			return err
		}
		var err error
		dropped, err = uc.reevaluate(ctx, c)
		return err
	})
	if err != nil {
		return nil, err
	}
	for _, d := range dropped {
		slog.Info("voucher dropped from cart",
			slog.String("user_id", userID.String()),
			slog.String("code", d.Code),
			slog.String("reason", string(d.Reason)))
	}
	return uc.state(c, dropped), nil
}

func (uc *cartCommandsImpl) reevaluate(ctx context.Context, c *shared.StoredCart) ([]voucher.Invalidation, error) {
	applied := c.Vouchers.Applied()
	if len(applied) == 0 {
		return nil, nil
	}
	current := make(map[voucher.Type]*voucher.Voucher, len(applied))
	for _, a := range applied {
		v, err := uc.lookupVoucher(ctx, a.Code)
		if err != nil {
			return nil, err
		}
		current[a.Type] = v
	}
	return voucher.Reevaluate(&c.Vouchers, current, uc.voucherContext(c.Ledger)), nil
}

// lookupVoucher returns nil without error for an unknown code so that
// validation reports it as not found.
func (uc *cartCommandsImpl) lookupVoucher(ctx context.Context, code string) (*voucher.Voucher, error) {
	v, err := uc.uow.CommandReads().VoucherByCode(ctx, voucher.NormalizeCode(code))
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return v, nil
}

func (uc *cartCommandsImpl) voucherContext(l *cart.Ledger) voucher.Context {
	return voucher.Context{
		OrderAmount:  l.SelectedTotals().TotalAmount,
		ShippingCost: uc.shippingFee,
		Now:          uc.clock.Now(),
	}
}

// snapshot reads the catalog entry for one variant and returns its display
// data together with the current stock.
func (uc *cartCommandsImpl) snapshot(ctx context.Context, productID, size string) (cart.Snapshot, int, error) {
	p, err := uc.uow.CommandReads().ProductByID(ctx, productID)
	if err != nil {
		return cart.Snapshot{}, 0, notFoundAs(err, ErrProductNotFound)
	}
	v, err := p.Variant(size)
	if err != nil {
		return cart.Snapshot{}, 0, err
	}
	return cart.Snapshot{
		Name:        p.Name(),
		Image:       p.Image(),
		Description: p.Description(),
		Category:    p.Category(),
		UnitPrice:   v.Price(),
	}, v.StockQty(), nil
}

func (uc *cartCommandsImpl) state(c shared.StoredCart, dropped []voucher.Invalidation) *CartState {
	selected := c.Ledger.SelectedTotals()
	return &CartState{
		Lines:          c.Ledger.Lines(),
		Selected:       c.Ledger.SelectedIDs(),
		Totals:         c.Ledger.Totals(),
		SelectedTotals: selected,
		Vouchers:       c.Vouchers.Applied(),
		Pricing: order.ComputePricing(selected.TotalAmount,
			c.Vouchers.ProductDiscount(), c.Vouchers.ShippingDiscount(), uc.shippingFee),
		InvalidatedVouchers: dropped,
		Version:             c.Version,
	}
}
