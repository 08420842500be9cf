//go:build unit

package commands_test

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"
	"time"

	"cosme-store/internal/domain/cart"
	"cosme-store/internal/domain/product"
	"cosme-store/internal/domain/voucher"
	"cosme-store/internal/pkg/clock"
	"cosme-store/internal/pkg/errs"
	"cosme-store/internal/pkg/keylock"
	"cosme-store/internal/usecase/commands"
	"cosme-store/internal/usecase/shared"
	"cosme-store/tests/common/builder"
	"cosme-store/tests/common/fakes"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cartSettings = commands.CartSettings{ShippingFee: 30000, SaveRetries: 3}

var (
	serum30 = cart.NewLineID("prod-serum", "30ml")
	serum50 = cart.NewLineID("prod-serum", "50ml")
)

type cartFixture struct {
	uc     commands.CartCommands
	uow    *fakes.UnitOfWork
	store  *fakes.CartStore
	locks  *keylock.Locker
	clock  *clock.MockClock
	userID uuid.UUID
}

// newCartFixture seeds the serum (30ml at 100.000, 10 in stock; 50ml at
// 150.000, 5 in stock), SALE10 and FREESHIP.
func newCartFixture(t *testing.T) *cartFixture {
	t.Helper()
	uow := fakes.NewUnitOfWork()
	p, err := builder.NewProductBuilder().BuildDomain()
	require.NoError(t, err)
	uow.AddProduct(p)

	sale := builder.NewVoucherBuilder()
	uow.AddVoucher(sale.ID, sale.Params(), 0)
	ship := builder.NewVoucherBuilder().AsFreeShipping("FREESHIP", 50000)
	uow.AddVoucher(ship.ID, ship.Params(), 0)

	store := fakes.NewCartStore()
	clk := clock.NewMockClock(time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC))
	locks := keylock.New()
	uc := commands.NewCartCommands(uow, store, locks, clk, cartSettings)
	return &cartFixture{uc: uc, uow: uow, store: store, locks: locks, clock: clk, userID: uuid.New()}
}

func (f *cartFixture) add(t *testing.T, size string, qty int) *commands.CartState {
	t.Helper()
	st, err := f.uc.AddItem(context.Background(), f.userID, commands.AddItemInput{ProductID: "prod-serum", VariantSize: size, Quantity: qty})
	require.NoError(t, err)
	return st
}

func TestCartCommands_AddItem(t *testing.T) {
	t.Run("same variant accumulates into one line", func(t *testing.T) {
		f := newCartFixture(t)
		f.add(t, "30ml", 1)
		st := f.add(t, "30ml", 1)

		require.Len(t, st.Lines, 1)
		assert.Equal(t, 2, st.Lines[0].Quantity)
		assert.Equal(t, "Hydrating Serum", st.Lines[0].Name)
		assert.Equal(t, cart.Totals{TotalItems: 2, TotalAmount: 200000}, st.Totals)
		assert.Equal(t, int64(2), st.Version)
	})

	tests := []struct {
		name    string
		in      commands.AddItemInput
		wantErr []error
	}{
		{
			name:    "more than in stock",
			in:      commands.AddItemInput{ProductID: "prod-serum", VariantSize: "50ml", Quantity: 6},
			wantErr: []error{product.ErrInsufficientStock},
		},
		{
			name:    "unknown product",
			in:      commands.AddItemInput{ProductID: "prod-missing", VariantSize: "30ml", Quantity: 1},
			wantErr: []error{commands.ErrProductNotFound, errs.ErrNotFound},
		},
		{
			name:    "unknown variant",
			in:      commands.AddItemInput{ProductID: "prod-serum", VariantSize: "100ml", Quantity: 1},
			wantErr: []error{product.ErrVariantNotFound},
		},
		{
			name:    "non-positive quantity",
			in:      commands.AddItemInput{ProductID: "prod-serum", VariantSize: "30ml", Quantity: 0},
			wantErr: []error{cart.ErrInvalidQuantity},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCartFixture(t)
			_, err := f.uc.AddItem(context.Background(), f.userID, tt.in)
			for _, want := range tt.wantErr {
				assert.ErrorIs(t, err, want)
			}
			assert.Zero(t, f.store.Saves)
		})
	}

	t.Run("stock ceiling counts what is already in the cart", func(t *testing.T) {
		f := newCartFixture(t)
		f.add(t, "50ml", 4)
		_, err := f.uc.AddItem(context.Background(), f.userID, commands.AddItemInput{ProductID: "prod-serum", VariantSize: "50ml", Quantity: 2})
		assert.ErrorIs(t, err, product.ErrInsufficientStock)
	})

	t.Run("huge quantity on an existing line is refused and the line survives", func(t *testing.T) {
		f := newCartFixture(t)
		ctx := context.Background()
		f.add(t, "30ml", 1)

		_, err := f.uc.AddItem(ctx, f.userID, commands.AddItemInput{ProductID: "prod-serum", VariantSize: "30ml", Quantity: math.MaxInt})
		assert.ErrorIs(t, err, product.ErrInsufficientStock)

		st, err := f.uc.Get(ctx, f.userID)
		require.NoError(t, err)
		require.Len(t, st.Lines, 1)
		assert.Equal(t, 1, st.Lines[0].Quantity)
		assert.Equal(t, cart.Totals{TotalItems: 1, TotalAmount: 100000}, st.Totals)
	})
}

func TestCartCommands_SelectionDrivesPricing(t *testing.T) {
	f := newCartFixture(t)
	ctx := context.Background()
	f.add(t, "30ml", 2)
	f.add(t, "50ml", 1)

	st, err := f.uc.ToggleSelect(ctx, f.userID, serum30)
	require.NoError(t, err)
	assert.Equal(t, []cart.LineID{serum30}, st.Selected)
	assert.Equal(t, cart.Totals{TotalItems: 3, TotalAmount: 350000}, st.Totals)
	assert.Equal(t, cart.Totals{TotalItems: 2, TotalAmount: 200000}, st.SelectedTotals)
	assert.Equal(t, int64(230000), st.Pricing.TotalAmount)

	st, err = f.uc.SelectAll(ctx, f.userID)
	require.NoError(t, err)
	assert.Equal(t, int64(350000), st.SelectedTotals.TotalAmount)

	st, err = f.uc.RemoveItem(ctx, f.userID, serum50)
	require.NoError(t, err)
	assert.Equal(t, []cart.LineID{serum30}, st.Selected)

	st, err = f.uc.DeselectAll(ctx, f.userID)
	require.NoError(t, err)
	assert.Empty(t, st.Selected)
	assert.Zero(t, st.SelectedTotals.TotalAmount)

	st, err = f.uc.SetSelection(ctx, f.userID, []cart.LineID{serum30, "ghost|1ml"})
	require.NoError(t, err)
	assert.Equal(t, []cart.LineID{serum30}, st.Selected)

	_, err = f.uc.ToggleSelect(ctx, f.userID, serum50)
	assert.ErrorIs(t, err, cart.ErrLineNotFound)
}

func TestCartCommands_UpdateQuantity(t *testing.T) {
	f := newCartFixture(t)
	ctx := context.Background()
	f.add(t, "30ml", 1)

	st, err := f.uc.UpdateQuantity(ctx, f.userID, serum30, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, st.Lines[0].Quantity)

	_, err = f.uc.UpdateQuantity(ctx, f.userID, serum30, 0)
	assert.ErrorIs(t, err, cart.ErrInvalidQuantity)

	_, err = f.uc.UpdateQuantity(ctx, f.userID, serum30, 11)
	assert.ErrorIs(t, err, product.ErrInsufficientStock)

	_, err = f.uc.UpdateQuantity(ctx, f.userID, serum50, 1)
	assert.ErrorIs(t, err, cart.ErrLineNotFound)
}

func TestCartCommands_Vouchers(t *testing.T) {
	t.Run("product and shipping vouchers price the selection", func(t *testing.T) {
		f := newCartFixture(t)
		ctx := context.Background()
		f.add(t, "30ml", 2)
		_, err := f.uc.SelectAll(ctx, f.userID)
		require.NoError(t, err)

		st, err := f.uc.ApplyVoucher(ctx, f.userID, voucher.TypeProduct, "sale10")
		require.NoError(t, err)
		require.Len(t, st.Vouchers, 1)
		assert.Equal(t, "SALE10", st.Vouchers[0].Code)
		assert.Equal(t, int64(20000), st.Vouchers[0].Discount)

		st, err = f.uc.ApplyVoucher(ctx, f.userID, voucher.TypeShipping, "FREESHIP")
		require.NoError(t, err)
		assert.Equal(t, int64(20000), st.Pricing.ProductDiscount)
		assert.Equal(t, int64(30000), st.Pricing.ShippingDiscount)
		assert.Equal(t, int64(180000), st.Pricing.TotalAmount)

		st, err = f.uc.RemoveVoucher(ctx, f.userID, voucher.TypeShipping)
		require.NoError(t, err)
		assert.Equal(t, int64(210000), st.Pricing.TotalAmount)
	})

	t.Run("rejected voucher leaves the cart untouched", func(t *testing.T) {
		f := newCartFixture(t)
		ctx := context.Background()
		f.add(t, "30ml", 2)
		saves := f.store.Saves

		_, err := f.uc.ApplyVoucher(ctx, f.userID, voucher.TypeProduct, "SALE10")
		reason, ok := voucher.ReasonOf(err)
		require.True(t, ok)
		assert.Equal(t, voucher.ReasonBelowMinimum, reason)
		assert.ErrorIs(t, err, voucher.ErrVoucherInvalid)

		_, err = f.uc.ApplyVoucher(ctx, f.userID, voucher.TypeProduct, "NOPE")
		reason, _ = voucher.ReasonOf(err)
		assert.Equal(t, voucher.ReasonNotFound, reason)

		_, err = f.uc.ApplyVoucher(ctx, f.userID, voucher.Type("gift"), "SALE10")
		assert.ErrorIs(t, err, errs.ErrValidation)
		assert.Equal(t, saves, f.store.Saves)
	})

	t.Run("discount follows the selected subtotal", func(t *testing.T) {
		f := newCartFixture(t)
		ctx := context.Background()
		f.add(t, "30ml", 2)
		_, err := f.uc.SelectAll(ctx, f.userID)
		require.NoError(t, err)
		_, err = f.uc.ApplyVoucher(ctx, f.userID, voucher.TypeProduct, "SALE10")
		require.NoError(t, err)

		st, err := f.uc.UpdateQuantity(ctx, f.userID, serum30, 3)
		require.NoError(t, err)
		assert.Equal(t, int64(30000), st.Pricing.ProductDiscount)
		assert.Empty(t, st.InvalidatedVouchers)
	})

	t.Run("voucher the cart no longer qualifies for is dropped", func(t *testing.T) {
		f := newCartFixture(t)
		ctx := context.Background()
		f.add(t, "30ml", 2)
		_, err := f.uc.SelectAll(ctx, f.userID)
		require.NoError(t, err)
		_, err = f.uc.ApplyVoucher(ctx, f.userID, voucher.TypeProduct, "SALE10")
		require.NoError(t, err)

		st, err := f.uc.DeselectAll(ctx, f.userID)
		require.NoError(t, err)
		assert.Empty(t, st.Vouchers)
		assert.Equal(t, []voucher.Invalidation{
			{Code: "SALE10", Type: voucher.TypeProduct, Reason: voucher.ReasonBelowMinimum},
		}, st.InvalidatedVouchers)

		st, err = f.uc.Get(ctx, f.userID)
		require.NoError(t, err)
		assert.Empty(t, st.Vouchers)
		assert.Empty(t, st.InvalidatedVouchers)
	})

	t.Run("Get reports an expired voucher without saving", func(t *testing.T) {
		f := newCartFixture(t)
		ctx := context.Background()
		f.add(t, "30ml", 2)
		_, err := f.uc.SelectAll(ctx, f.userID)
		require.NoError(t, err)
		_, err = f.uc.ApplyVoucher(ctx, f.userID, voucher.TypeProduct, "SALE10")
		require.NoError(t, err)
		saves := f.store.Saves

		f.clock.Set(time.Date(2027, 1, 2, 0, 0, 0, 0, time.UTC))
		st, err := f.uc.Get(ctx, f.userID)
		require.NoError(t, err)
		require.Len(t, st.InvalidatedVouchers, 1)
		assert.Equal(t, voucher.ReasonExpired, st.InvalidatedVouchers[0].Reason)
		assert.Equal(t, int64(230000), st.Pricing.TotalAmount)
		assert.Equal(t, saves, f.store.Saves)
	})
}

func TestCartCommands_Replace(t *testing.T) {
	f := newCartFixture(t)
	ctx := context.Background()
	f.add(t, "50ml", 1)

	st, err := f.uc.Replace(ctx, f.userID, []commands.CartLineInput{
		{ProductID: "prod-serum", VariantSize: "30ml", Quantity: 2, Selected: true},
		{ProductID: "prod-gone", VariantSize: "30ml", Quantity: 1, Selected: true},
		{ProductID: "prod-serum", VariantSize: "15ml", Quantity: 1},
	})
	require.NoError(t, err)

	require.Len(t, st.Lines, 1)
	assert.Equal(t, serum30, st.Lines[0].ID())
	assert.Equal(t, int64(100000), st.Lines[0].UnitPrice)
	assert.Equal(t, []cart.LineID{serum30}, st.Selected)

	_, err = f.uc.Replace(ctx, f.userID, []commands.CartLineInput{
		{ProductID: "prod-serum", VariantSize: "30ml", Quantity: -1},
	})
	assert.ErrorIs(t, err, cart.ErrInvalidQuantity)

	for name, lines := range map[string][]commands.CartLineInput{
		"one line above stock": {
			{ProductID: "prod-serum", VariantSize: "30ml", Quantity: 1000, Selected: true},
		},
		"repeated lines adding up above stock": {
			{ProductID: "prod-serum", VariantSize: "50ml", Quantity: 3},
			{ProductID: "prod-serum", VariantSize: "50ml", Quantity: 3},
		},
		"quantity that would overflow": {
			{ProductID: "prod-serum", VariantSize: "30ml", Quantity: 1},
			{ProductID: "prod-serum", VariantSize: "30ml", Quantity: math.MaxInt},
		},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := f.uc.Replace(ctx, f.userID, lines)
			assert.ErrorIs(t, err, product.ErrInsufficientStock)

			kept, err := f.uc.Get(ctx, f.userID)
			require.NoError(t, err)
			assert.Equal(t, cart.Totals{TotalItems: 2, TotalAmount: 200000}, kept.Totals)
		})
	}
}

func TestCartCommands_VersionConflicts(t *testing.T) {
	t.Run("retries from a fresh load", func(t *testing.T) {
		f := newCartFixture(t)
		f.store.LoseNextSaves(2)

		st := f.add(t, "30ml", 1)
		assert.Equal(t, 1, st.Lines[0].Quantity)
		assert.Equal(t, int64(3), st.Version)
	})

	t.Run("gives up after the configured attempts", func(t *testing.T) {
		f := newCartFixture(t)
		f.store.LoseNextSaves(3)

		_, err := f.uc.AddItem(context.Background(), f.userID, commands.AddItemInput{ProductID: "prod-serum", VariantSize: "30ml", Quantity: 1})
		assert.ErrorIs(t, err, commands.ErrCartBusy)
		assert.ErrorIs(t, err, shared.ErrCartVersionConflict)
		assert.ErrorIs(t, err, errs.ErrStateConflict)
	})

	t.Run("store failures are not retried", func(t *testing.T) {
		f := newCartFixture(t)
		boom := errors.New("mongo down")
		f.store.FailSave(boom)

		_, err := f.uc.AddItem(context.Background(), f.userID, commands.AddItemInput{ProductID: "prod-serum", VariantSize: "30ml", Quantity: 1})
		assert.ErrorIs(t, err, boom)
	})
}

func TestCartCommands_ConcurrentWritersKeepEveryAdd(t *testing.T) {
	f := newCartFixture(t)
	const writers = 10

	var wg sync.WaitGroup
	for range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.uc.AddItem(context.Background(), f.userID, commands.AddItemInput{ProductID: "prod-serum", VariantSize: "30ml", Quantity: 1})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	st, err := f.uc.Get(context.Background(), f.userID)
	require.NoError(t, err)
	require.Len(t, st.Lines, 1)
	assert.Equal(t, writers, st.Lines[0].Quantity)
	assert.Equal(t, int64(writers), st.Version)
}
