package commands

import (
	"context"
	"errors"
	"log/slog"

	"cosme-store/internal/domain/order"
	"cosme-store/internal/domain/product"
	"cosme-store/internal/pkg/clock"
	"cosme-store/internal/usecase/queries"
	"cosme-store/internal/usecase/shared"

	"github.com/google/uuid"
)

type OrderCommands interface {
	// CancelOrder cancels a pending or processing order, puts its stock back
	// and releases its vouchers. Customers can only cancel their own orders.
	CancelOrder(ctx context.Context, orderID, actorID uuid.UUID, actorRole string) error
	// AdvanceStatus moves an order one step forward, or cancels it.
	AdvanceStatus(ctx context.Context, orderID uuid.UUID, next string) error
}

type orderCommandsImpl struct {
	uow   shared.UnitOfWork
	stock *StockLedger
	clock clock.Clock
}

func NewOrderCommands(uow shared.UnitOfWork, stock *StockLedger, clk clock.Clock) OrderCommands {
	return &orderCommandsImpl{uow: uow, stock: stock, clock: clk}
}

func (uc *orderCommandsImpl) CancelOrder(ctx context.Context, orderID, actorID uuid.UUID, actorRole string) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, err := tx.Orders().FindForUpdate(ctx, tx.DB(), orderID)
		if err != nil {
			return notFoundAs(err, ErrOrderNotFound)
		}
		if !o.BelongsTo(actorID) && !queries.IsStaff(actorRole) {
			return ErrOrderNotFound
		}
		return uc.cancel(ctx, tx, o)
	})
}

func (uc *orderCommandsImpl) AdvanceStatus(ctx context.Context, orderID uuid.UUID, next string) error {
	status, err := order.ParseStatus(next)
	if err != nil {
		return err
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, err := tx.Orders().FindForUpdate(ctx, tx.DB(), orderID)
		if err != nil {
			return notFoundAs(err, ErrOrderNotFound)
		}
		if status == order.StatusCancelled {
			return uc.cancel(ctx, tx, o)
		}

		now := uc.clock.Now()
		if err := o.AdvanceTo(status, now); err != nil {
			return err
		}
		if err := tx.Orders().UpdateStatus(ctx, tx.DB(), o); err != nil {
			return err
		}
		return tx.Outbox().Append(ctx, tx.DB(), o.ID(), EventOrderStatusChanged, newOrderEvent(o), now)
	})
}

// cancel checks the status before writing anything. Stock for a variant that
// has since been removed from the catalog cannot be restored; that item is
// logged and skipped while the cancellation stands.
func (uc *orderCommandsImpl) cancel(ctx context.Context, tx shared.Tx, o *order.Order) error {
	now := uc.clock.Now()
	if err := o.Cancel(now); err != nil {
		return err
	}
	if err := tx.Orders().UpdateStatus(ctx, tx.DB(), o); err != nil {
		return err
	}

	for _, it := range lockOrder(o.Items()) {
		err := uc.stock.Adjust(ctx, tx, it.ProductID, it.VariantSize, it.Quantity)
		if errors.Is(err, product.ErrVariantNotFound) {
			slog.Warn("skipping stock restore for missing variant",
				slog.String("order_id", o.ID().String()),
				slog.String("product_id", it.ProductID),
				slog.String("variant_size", it.VariantSize),
				slog.Int("quantity", it.Quantity))
			continue
		}
		if err != nil {
			return err
		}
	}

	for _, a := range o.Vouchers() {
		if err := tx.Vouchers().Release(ctx, tx.DB(), a.Code); err != nil {
			return err
		}
	}

	slog.Info("order cancelled", slog.String("order_id", o.ID().String()))
	return tx.Outbox().Append(ctx, tx.DB(), o.ID(), EventOrderCancelled, newOrderEvent(o), now)
}
