package converter

import (
	"time"

	"cosme-store/internal/domain/product"
	"cosme-store/internal/infra/pgsql"
	"cosme-store/internal/pkg/errs"
	"cosme-store/internal/pkg/pgconv"
)

// ProductFromRows rebuilds a product from its row and its variant rows,
// which must already be in position order.
func ProductFromRows(p pgsql.ProductRow, vs []pgsql.VariantRow) (*product.Product, error) {
	variants := make([]product.Variant, 0, len(vs))
	for _, v := range vs {
		variant, err := VariantFromRow(v)
		if err != nil {
			return nil, err
		}
		variants = append(variants, variant)
	}
	return product.Reconstruct(p.ID, p.Name, p.Description, p.Category, p.Image, variants,
		pgconv.TimeFromPgtype(p.CreatedAt), pgconv.TimeFromPgtype(p.UpdatedAt)), nil
}

func VariantFromRow(v pgsql.VariantRow) (product.Variant, error) {
	variant, err := product.NewVariant(v.Size, v.Price, int(v.StockQty))
	if err != nil {
		return product.Variant{}, errs.Wrapf(err, "stored variant %s/%s", v.ProductID, v.Size)
	}
	return variant, nil
}

func ProductToUpsert(p *product.Product, now time.Time) (pgsql.UpsertProductParams, []pgsql.VariantRow) {
	params := pgsql.UpsertProductParams{
		ID:          p.ID(),
		Name:        p.Name(),
		Description: p.Description(),
		Category:    p.Category(),
		Image:       p.Image(),
		Now:         pgconv.TimeToPgtype(now),
	}
	variants := p.Variants()
	rows := make([]pgsql.VariantRow, len(variants))
	for i, v := range variants {
		rows[i] = pgsql.VariantRow{
			ProductID: p.ID(),
			Position:  int32(i),
			Size:      v.Size(),
			Price:     v.Price(),
			StockQty:  int32(v.StockQty()),
		}
	}
	return params, rows
}

// GroupVariants splits variant rows by product id, keeping their order.
func GroupVariants(rows []pgsql.VariantRow) map[string][]pgsql.VariantRow {
	out := make(map[string][]pgsql.VariantRow)
	for _, r := range rows {
		out[r.ProductID] = append(out[r.ProductID], r)
	}
	return out
}
