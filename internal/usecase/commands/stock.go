package commands

import (
	"cmp"
	"context"
	"slices"

	"cosme-store/internal/domain/order"
	"cosme-store/internal/domain/product"
	"cosme-store/internal/infra"
	"cosme-store/internal/pkg/errs"
	"cosme-store/internal/usecase/shared"
)

// StockLedger adjusts per-variant stock inside the caller's unit of work.
// Each adjustment locks the variant row, so concurrent checkouts serialize
// on the rows they share and a decrement can never pass zero.
type StockLedger struct{}

func NewStockLedger() *StockLedger {
	return &StockLedger{}
}

// Adjust adds delta to the stock of one variant and writes back only that
// variant's quantity.
func (s *StockLedger) Adjust(ctx context.Context, tx shared.Tx, productID, size string, delta int) error {
	v, err := tx.Stock().LockVariant(ctx, tx.DB(), productID, size)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(errs.Wrapf(err, "variant %s/%s", productID, size), product.ErrVariantNotFound)
		}
		return err
	}

	next, err := v.Adjust(delta)
	if err != nil {
		return errs.Wrapf(err, "variant %s/%s", productID, size)
	}
	return tx.Stock().UpdateStock(ctx, tx.DB(), productID, size, next.StockQty())
}

// DecreaseStock takes every item's quantity out of stock. The first failure
// aborts the batch; the surrounding transaction undoes earlier items.
func (s *StockLedger) DecreaseStock(ctx context.Context, tx shared.Tx, items []order.Item) error {
	for _, it := range lockOrder(items) {
		if err := s.Adjust(ctx, tx, it.ProductID, it.VariantSize, -it.Quantity); err != nil {
			return err
		}
	}
	return nil
}

// IncreaseStock puts every item's quantity back.
func (s *StockLedger) IncreaseStock(ctx context.Context, tx shared.Tx, items []order.Item) error {
	for _, it := range lockOrder(items) {
		if err := s.Adjust(ctx, tx, it.ProductID, it.VariantSize, it.Quantity); err != nil {
			return err
		}
	}
	return nil
}

// lockOrder sorts a copy of items by variant key so that two transactions
// always lock shared rows in the same order.
func lockOrder(items []order.Item) []order.Item {
	sorted := slices.Clone(items)
	slices.SortFunc(sorted, func(a, b order.Item) int {
		return cmp.Or(cmp.Compare(a.ProductID, b.ProductID), cmp.Compare(a.VariantSize, b.VariantSize))
	})
	return sorted
}
