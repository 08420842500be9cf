package repository

import (
	"context"
	"time"

	"cosme-store/internal/domain/product"
	"cosme-store/internal/infra"
	"cosme-store/internal/infra/pgsql"
	"cosme-store/internal/infra/repository/converter"
)

type ProductWriteQueries interface {
	UpsertProduct(ctx context.Context, db pgsql.DBTX, arg pgsql.UpsertProductParams) error
	UpsertVariant(ctx context.Context, db pgsql.DBTX, arg pgsql.VariantRow) error
	DeleteVariantsNotIn(ctx context.Context, db pgsql.DBTX, productID string, sizes []string) error
}

type ProductRepository struct {
	queries ProductWriteQueries
	db      pgsql.DBTX
}

func NewProductRepository(queries ProductWriteQueries, db pgsql.DBTX) *ProductRepository {
	return &ProductRepository{queries: queries, db: db}
}

// Upsert stores p and replaces its variant list. Variants missing from p are removed.
func (r *ProductRepository) Upsert(ctx context.Context, tx pgsql.DBTX, p *product.Product, now time.Time) error {
	params, variants := converter.ProductToUpsert(p, now)
	if err := r.queries.UpsertProduct(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to upsert product "+p.ID(), err)
	}

	sizes := make([]string, 0, len(variants))
	for _, v := range variants {
		if err := r.queries.UpsertVariant(ctx, tx, v); err != nil {
			return infra.WrapRepoErr("failed to upsert variant "+p.ID()+"/"+v.Size, err)
		}
		sizes = append(sizes, v.Size)
	}

	if err := r.queries.DeleteVariantsNotIn(ctx, tx, p.ID(), sizes); err != nil {
		return infra.WrapRepoErr("failed to prune variants of "+p.ID(), err)
	}
	return nil
}
