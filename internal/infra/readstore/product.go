package readstore

import (
	"context"

	"cosme-store/internal/domain/product"
	"cosme-store/internal/infra"
	"cosme-store/internal/infra/pgsql"
	"cosme-store/internal/infra/repository/converter"
	"cosme-store/internal/usecase/queries"
)

type ProductReadQueries interface {
	GetProduct(ctx context.Context, db pgsql.DBTX, id string) (pgsql.ProductRow, error)
	ListProducts(ctx context.Context, db pgsql.DBTX) ([]pgsql.ProductRow, error)
	ListProductsByCategory(ctx context.Context, db pgsql.DBTX, category string) ([]pgsql.ProductRow, error)
	ListVariantsByProducts(ctx context.Context, db pgsql.DBTX, productIDs []string) ([]pgsql.VariantRow, error)
}

type ProductReadStore struct {
	queries ProductReadQueries
	db      pgsql.DBTX
}

func NewProductReadStore(queries ProductReadQueries, db pgsql.DBTX) *ProductReadStore {
	return &ProductReadStore{queries: queries, db: db}
}

// Load returns the product aggregate with its variants in position order.
func (r *ProductReadStore) Load(ctx context.Context, id string) (*product.Product, error) {
	row, err := r.queries.GetProduct(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get product "+id, err)
	}
	variants, err := r.queries.ListVariantsByProducts(ctx, r.db, []string{id})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get variants of "+id, err)
	}
	p, err := converter.ProductFromRows(row, variants)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt product "+id, err, infra.KindDBFailure)
	}
	return p, nil
}

func (r *ProductReadStore) FindByID(ctx context.Context, id string) (*queries.ProductView, error) {
	p, err := r.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	return toProductView(p), nil
}

func (r *ProductReadStore) List(ctx context.Context) ([]*queries.ProductView, error) {
	rows, err := r.queries.ListProducts(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list products", err)
	}
	return r.withVariants(ctx, rows)
}

func (r *ProductReadStore) ListByCategory(ctx context.Context, category string) ([]*queries.ProductView, error) {
	rows, err := r.queries.ListProductsByCategory(ctx, r.db, category)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list products of "+category, err)
	}
	return r.withVariants(ctx, rows)
}

// withVariants loads the variants of all rows in one query.
func (r *ProductReadStore) withVariants(ctx context.Context, rows []pgsql.ProductRow) ([]*queries.ProductView, error) {
	if len(rows) == 0 {
		return []*queries.ProductView{}, nil
	}
	ids := make([]string, len(rows))
	for i, row := range rows {
		ids[i] = row.ID
	}
	variantRows, err := r.queries.ListVariantsByProducts(ctx, r.db, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list variants", err)
	}
	byProduct := converter.GroupVariants(variantRows)

	views := make([]*queries.ProductView, 0, len(rows))
	for _, row := range rows {
		p, err := converter.ProductFromRows(row, byProduct[row.ID])
		if err != nil {
			return nil, infra.WrapRepoErr("corrupt product "+row.ID, err, infra.KindDBFailure)
		}
		views = append(views, toProductView(p))
	}
	return views, nil
}

func toProductView(p *product.Product) *queries.ProductView {
	view := &queries.ProductView{
		ID:          p.ID(),
		Name:        p.Name(),
		Description: p.Description(),
		Category:    p.Category(),
		Image:       p.Image(),
		Variants:    make([]queries.VariantView, 0, len(p.Variants())),
		CreatedAt:   p.CreatedAt(),
		UpdatedAt:   p.UpdatedAt(),
	}
	for i, v := range p.Variants() {
		if i == 0 || v.Price() < view.PriceFrom {
			view.PriceFrom = v.Price()
		}
		view.Variants = append(view.Variants, queries.VariantView{
			Size:     v.Size(),
			Price:    v.Price(),
			StockQty: v.StockQty(),
			InStock:  v.StockQty() > 0,
		})
	}
	return view
}
