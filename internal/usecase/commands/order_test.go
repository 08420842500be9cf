//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"cosme-store/internal/domain/order"
	"cosme-store/internal/domain/product"
	"cosme-store/internal/domain/voucher"
	"cosme-store/internal/pkg/clock"
	"cosme-store/internal/pkg/errs"
	"cosme-store/internal/usecase/commands"
	"cosme-store/internal/usecase/queries"
	"cosme-store/internal/usecase/shared"
	"cosme-store/tests/common/builder"
	"cosme-store/tests/common/fakes"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type orderFixture struct {
	uc    commands.OrderCommands
	uow   *fakes.UnitOfWork
	clock *clock.MockClock
}

// newOrderFixture stocks the serum at 8 (30ml) and 5 (50ml) with SALE10
// redeemed once.
func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()
	uow := fakes.NewUnitOfWork()
	p, err := builder.NewProductBuilder().With(func(b *builder.ProductBuilder) {
		b.Variants[0].Stock = 8
	}).BuildDomain()
	require.NoError(t, err)
	uow.AddProduct(p)
	sale := builder.NewVoucherBuilder()
	uow.AddVoucher(sale.ID, sale.Params(), 1)

	clk := clock.NewMockClock(time.Date(2026, 6, 2, 10, 0, 0, 0, time.UTC))
	return &orderFixture{
		uc:    commands.NewOrderCommands(uow, commands.NewStockLedger(), clk),
		uow:   uow,
		clock: clk,
	}
}

func (f *orderFixture) seedOrder(status order.Status, mutate ...func(*builder.OrderBuilder)) *order.Order {
	b := builder.NewOrderBuilder().
		WithDiscounts(20000, 0).
		With(func(b *builder.OrderBuilder) {
			b.Vouchers = []voucher.Applied{{Code: "SALE10", Type: voucher.TypeProduct, DiscountType: voucher.DiscountPercentage, Discount: 20000}}
		})
	for _, m := range mutate {
		b.With(m)
	}
	o := b.BuildWithStatus(status)
	f.uow.AddOrder(o)
	return o
}

func TestOrderCommands_CancelOrder(t *testing.T) {
	t.Run("pending order gives back stock and voucher use", func(t *testing.T) {
		f := newOrderFixture(t)
		o := f.seedOrder(order.StatusPending)

		err := f.uc.CancelOrder(context.Background(), o.ID(), o.UserID(), "customer")
		require.NoError(t, err)

		got, _ := f.uow.Order(o.ID())
		assert.Equal(t, order.StatusCancelled, got.Status())
		assert.Equal(t, f.clock.Now(), got.UpdatedAt())
		stock, _ := f.uow.Stock("prod-serum", "30ml")
		assert.Equal(t, 10, stock)
		assert.Zero(t, f.uow.VoucherUsage("SALE10"))

		events := f.uow.Events()
		require.Len(t, events, 1)
		assert.Equal(t, commands.EventOrderCancelled, events[0].Type)
	})

	t.Run("staff may cancel any order", func(t *testing.T) {
		f := newOrderFixture(t)
		o := f.seedOrder(order.StatusProcessing)

		require.NoError(t, f.uc.CancelOrder(context.Background(), o.ID(), uuid.New(), queries.RoleAdmin))
		got, _ := f.uow.Order(o.ID())
		assert.Equal(t, order.StatusCancelled, got.Status())
	})

	t.Run("shipped order is left alone", func(t *testing.T) {
		f := newOrderFixture(t)
		o := f.seedOrder(order.StatusShipped)

		err := f.uc.CancelOrder(context.Background(), o.ID(), o.UserID(), "customer")
		assert.ErrorIs(t, err, order.ErrNotCancellable)

		got, _ := f.uow.Order(o.ID())
		assert.Equal(t, order.StatusShipped, got.Status())
		stock, _ := f.uow.Stock("prod-serum", "30ml")
		assert.Equal(t, 8, stock)
		assert.Equal(t, 1, f.uow.VoucherUsage("SALE10"))
		assert.Empty(t, f.uow.Events())
		assert.Zero(t, f.uow.Calls(fakes.OpUpdateOrder))
	})

	t.Run("someone else's order looks missing", func(t *testing.T) {
		f := newOrderFixture(t)
		o := f.seedOrder(order.StatusPending)

		err := f.uc.CancelOrder(context.Background(), o.ID(), uuid.New(), "customer")
		assert.ErrorIs(t, err, commands.ErrOrderNotFound)
		assert.ErrorIs(t, err, errs.ErrNotFound)
		got, _ := f.uow.Order(o.ID())
		assert.Equal(t, order.StatusPending, got.Status())
	})

	t.Run("unknown order", func(t *testing.T) {
		f := newOrderFixture(t)
		err := f.uc.CancelOrder(context.Background(), uuid.New(), uuid.New(), "customer")
		assert.ErrorIs(t, err, commands.ErrOrderNotFound)
	})

	t.Run("variant removed from the catalog is skipped", func(t *testing.T) {
		f := newOrderFixture(t)
		o := f.seedOrder(order.StatusPending, func(b *builder.OrderBuilder) {
			b.Items = append(b.Items, order.Item{ProductID: "prod-retired", VariantSize: "10ml", Name: "Retired Toner", UnitPrice: 50000, Quantity: 1})
		})

		require.NoError(t, f.uc.CancelOrder(context.Background(), o.ID(), o.UserID(), "customer"))
		got, _ := f.uow.Order(o.ID())
		assert.Equal(t, order.StatusCancelled, got.Status())
		stock, _ := f.uow.Stock("prod-serum", "30ml")
		assert.Equal(t, 10, stock)
	})

	t.Run("failed release rolls everything back", func(t *testing.T) {
		f := newOrderFixture(t)
		o := f.seedOrder(order.StatusPending)
		boom := errs.New("voucher table locked")
		f.uow.Fail(fakes.OpRelease, boom)

		err := f.uc.CancelOrder(context.Background(), o.ID(), o.UserID(), "customer")
		assert.ErrorIs(t, err, boom)
		got, _ := f.uow.Order(o.ID())
		assert.Equal(t, order.StatusPending, got.Status())
		stock, _ := f.uow.Stock("prod-serum", "30ml")
		assert.Equal(t, 8, stock)
	})
}

func TestOrderCommands_AdvanceStatus(t *testing.T) {
	tests := []struct {
		name       string
		from       order.Status
		next       string
		wantErr    error
		wantStatus order.Status
		wantEvent  string
	}{
		{name: "pending to processing", from: order.StatusPending, next: "processing", wantStatus: order.StatusProcessing, wantEvent: commands.EventOrderStatusChanged},
		{name: "shipped to delivered", from: order.StatusShipped, next: "DELIVERED", wantStatus: order.StatusDelivered, wantEvent: commands.EventOrderStatusChanged},
		{name: "skipping a step", from: order.StatusPending, next: "shipped", wantErr: order.ErrInvalidTransition, wantStatus: order.StatusPending},
		{name: "unknown status", from: order.StatusPending, next: "lost", wantErr: order.ErrInvalidStatus, wantStatus: order.StatusPending},
		{name: "cancel via status change", from: order.StatusProcessing, next: "cancelled", wantStatus: order.StatusCancelled, wantEvent: commands.EventOrderCancelled},
		{name: "cancel after delivery", from: order.StatusDelivered, next: "cancelled", wantErr: order.ErrNotCancellable, wantStatus: order.StatusDelivered},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newOrderFixture(t)
			o := f.seedOrder(tt.from)

			err := f.uc.AdvanceStatus(context.Background(), o.ID(), tt.next)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}

			got, _ := f.uow.Order(o.ID())
			assert.Equal(t, tt.wantStatus, got.Status())
			events := f.uow.Events()
			if tt.wantEvent == "" {
				assert.Empty(t, events)
				return
			}
			require.Len(t, events, 1)
			assert.Equal(t, tt.wantEvent, events[0].Type)
		})
	}
}

func TestStockLedger(t *testing.T) {
	ctx := context.Background()
	newUOW := func(t *testing.T) *fakes.UnitOfWork {
		uow := fakes.NewUnitOfWork()
		p, err := builder.NewProductBuilder().BuildDomain()
		require.NoError(t, err)
		uow.AddProduct(p)
		return uow
	}
	ledger := commands.NewStockLedger()

	t.Run("decrease then increase round trips", func(t *testing.T) {
		uow := newUOW(t)
		items := []order.Item{
			{ProductID: "prod-serum", VariantSize: "50ml", Quantity: 2},
			{ProductID: "prod-serum", VariantSize: "30ml", Quantity: 3},
		}
		require.NoError(t, uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return ledger.DecreaseStock(ctx, tx, items)
		}))
		s30, _ := uow.Stock("prod-serum", "30ml")
		s50, _ := uow.Stock("prod-serum", "50ml")
		assert.Equal(t, []int{7, 3}, []int{s30, s50})

		require.NoError(t, uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return ledger.IncreaseStock(ctx, tx, items)
		}))
		s30, _ = uow.Stock("prod-serum", "30ml")
		s50, _ = uow.Stock("prod-serum", "50ml")
		assert.Equal(t, []int{10, 5}, []int{s30, s50})
	})

	t.Run("never goes below zero", func(t *testing.T) {
		uow := newUOW(t)
		err := uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return ledger.Adjust(ctx, tx, "prod-serum", "50ml", -6)
		})
		assert.ErrorIs(t, err, product.ErrInsufficientStock)
		s50, _ := uow.Stock("prod-serum", "50ml")
		assert.Equal(t, 5, s50)
		assert.Zero(t, uow.Calls(fakes.OpUpdateStock))
	})

	t.Run("missing variant", func(t *testing.T) {
		uow := newUOW(t)
		err := uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return ledger.Adjust(ctx, tx, "prod-serum", "5ml", 1)
		})
		assert.ErrorIs(t, err, product.ErrVariantNotFound)
	})

	t.Run("lock failures pass through", func(t *testing.T) {
		uow := newUOW(t)
		boom := errs.New("lock timeout")
		uow.Fail(fakes.OpLockVariant, boom)
		err := uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return ledger.Adjust(ctx, tx, "prod-serum", "30ml", -1)
		})
		assert.ErrorIs(t, err, boom)
		assert.NotErrorIs(t, err, product.ErrVariantNotFound)
	})
}
