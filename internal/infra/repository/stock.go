package repository

import (
	"context"

	"cosme-store/internal/domain/product"
	"cosme-store/internal/infra"
	"cosme-store/internal/infra/pgsql"
	"cosme-store/internal/infra/repository/converter"
)

type StockQueries interface {
	LockVariant(ctx context.Context, db pgsql.DBTX, productID, size string) (pgsql.VariantRow, error)
	UpdateVariantStock(ctx context.Context, db pgsql.DBTX, arg pgsql.UpdateVariantStockParams) (int64, error)
}

// StockRepository reads and writes the stock of single product variants.
// Callers run it inside a unit of work so the row lock taken by
// LockVariant is held until UpdateStock commits.
type StockRepository struct {
	queries StockQueries
	db      pgsql.DBTX
}

func NewStockRepository(queries StockQueries, db pgsql.DBTX) *StockRepository {
	return &StockRepository{queries: queries, db: db}
}

func (r *StockRepository) LockVariant(ctx context.Context, tx pgsql.DBTX, productID, size string) (product.Variant, error) {
	row, err := r.queries.LockVariant(ctx, tx, productID, size)
	if err != nil {
		return product.Variant{}, infra.WrapRepoErr("failed to lock variant "+productID+"/"+size, err)
	}
	v, err := converter.VariantFromRow(row)
	if err != nil {
		return product.Variant{}, infra.WrapRepoErr("corrupt variant row", err)
	}
	return v, nil
}

// UpdateStock overwrites stock_qty of exactly one variant.
func (r *StockRepository) UpdateStock(ctx context.Context, tx pgsql.DBTX, productID, size string, qty int) error {
	n, err := r.queries.UpdateVariantStock(ctx, tx, pgsql.UpdateVariantStockParams{
		ProductID: productID,
		Size:      size,
		StockQty:  int32(qty),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update variant stock", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("variant "+productID+"/"+size+" not found", nil, infra.KindNotFound)
	}
	return nil
}
