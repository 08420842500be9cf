package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type ProductRow struct {
	ID          string
	Name        string
	Description string
	Category    string
	Image       string
	CreatedAt   pgtype.Timestamptz
	UpdatedAt   pgtype.Timestamptz
}

type VariantRow struct {
	ProductID string
	Position  int32
	Size      string
	Price     int64
	StockQty  int32
}

const productColumns = `id, name, description, category, image, created_at, updated_at`

func scanProduct(row pgx.Row) (ProductRow, error) {
	var p ProductRow
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Category, &p.Image, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func scanVariant(row pgx.Row) (VariantRow, error) {
	var v VariantRow
	err := row.Scan(&v.ProductID, &v.Position, &v.Size, &v.Price, &v.StockQty)
	return v, err
}

const getProduct = `SELECT ` + productColumns + ` FROM products WHERE id = $1`

func (q *Queries) GetProduct(ctx context.Context, db DBTX, id string) (ProductRow, error) {
	return scanProduct(db.QueryRow(ctx, getProduct, id))
}

const listProducts = `SELECT ` + productColumns + ` FROM products ORDER BY name, id`

func (q *Queries) ListProducts(ctx context.Context, db DBTX) ([]ProductRow, error) {
	rows, err := db.Query(ctx, listProducts)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanProduct)
}

const listProductsByCategory = `SELECT ` + productColumns + ` FROM products WHERE category = $1 ORDER BY name, id`

func (q *Queries) ListProductsByCategory(ctx context.Context, db DBTX, category string) ([]ProductRow, error) {
	rows, err := db.Query(ctx, listProductsByCategory, category)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanProduct)
}

const listVariantsByProducts = `
SELECT product_id, position, size, price, stock_qty
FROM product_variants
WHERE product_id = ANY($1::text[])
ORDER BY product_id, position`

func (q *Queries) ListVariantsByProducts(ctx context.Context, db DBTX, productIDs []string) ([]VariantRow, error) {
	rows, err := db.Query(ctx, listVariantsByProducts, productIDs)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanVariant)
}

const lockVariant = `
SELECT product_id, position, size, price, stock_qty
FROM product_variants
WHERE product_id = $1 AND size = $2
FOR UPDATE`

// LockVariant reads one variant and holds its row lock until the
// surrounding transaction ends.
func (q *Queries) LockVariant(ctx context.Context, db DBTX, productID, size string) (VariantRow, error) {
	return scanVariant(db.QueryRow(ctx, lockVariant, productID, size))
}

const updateVariantStock = `
UPDATE product_variants SET stock_qty = $3
WHERE product_id = $1 AND size = $2`

type UpdateVariantStockParams struct {
	ProductID string
	Size      string
	StockQty  int32
}

func (q *Queries) UpdateVariantStock(ctx context.Context, db DBTX, arg UpdateVariantStockParams) (int64, error) {
	tag, err := db.Exec(ctx, updateVariantStock, arg.ProductID, arg.Size, arg.StockQty)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const upsertProduct = `
INSERT INTO products (id, name, description, category, image, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $6)
ON CONFLICT (id) DO UPDATE SET
    name = EXCLUDED.name,
    description = EXCLUDED.description,
    category = EXCLUDED.category,
    image = EXCLUDED.image,
    updated_at = EXCLUDED.updated_at`

type UpsertProductParams struct {
	ID          string
	Name        string
	Description string
	Category    string
	Image       string
	Now         pgtype.Timestamptz
}

func (q *Queries) UpsertProduct(ctx context.Context, db DBTX, arg UpsertProductParams) error {
	_, err := db.Exec(ctx, upsertProduct, arg.ID, arg.Name, arg.Description, arg.Category, arg.Image, arg.Now)
	return err
}

const upsertVariant = `
INSERT INTO product_variants (product_id, position, size, price, stock_qty)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (product_id, size) DO UPDATE SET
    position = EXCLUDED.position,
    price = EXCLUDED.price,
    stock_qty = EXCLUDED.stock_qty`

func (q *Queries) UpsertVariant(ctx context.Context, db DBTX, arg VariantRow) error {
	_, err := db.Exec(ctx, upsertVariant, arg.ProductID, arg.Position, arg.Size, arg.Price, arg.StockQty)
	return err
}

const deleteVariantsNotIn = `
DELETE FROM product_variants
WHERE product_id = $1 AND NOT (size = ANY($2::text[]))`

func (q *Queries) DeleteVariantsNotIn(ctx context.Context, db DBTX, productID string, sizes []string) error {
	_, err := db.Exec(ctx, deleteVariantsNotIn, productID, sizes)
	return err
}
