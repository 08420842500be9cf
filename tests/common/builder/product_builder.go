//go:build unit || e2e || integration

package builder

import (
	"time"

	"cosme-store/internal/domain/product"
)

type VariantSpec struct {
	Size  string
	Price int64
	Stock int
}

type ProductBuilder struct {
	ID          string
	Name        string
	Description string
	Category    string
	Image       string
	Variants    []VariantSpec
	Now         time.Time
}

func NewProductBuilder() *ProductBuilder {
	return &ProductBuilder{
		ID:          "prod-serum",
		Name:        "Hydrating Serum",
		Description: "Hyaluronic acid serum",
		Category:    "skincare",
		Image:       "https://cdn.example.com/serum.jpg",
		Variants: []VariantSpec{
			{Size: "30ml", Price: 100000, Stock: 10},
			{Size: "50ml", Price: 150000, Stock: 5},
		},
		Now: time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *ProductBuilder) With(mutate func(*ProductBuilder)) *ProductBuilder {
	mutate(b)
	return b
}

func (b *ProductBuilder) BuildDomain() (*product.Product, error) {
	variants := make([]product.Variant, 0, len(b.Variants))
	for _, s := range b.Variants {
		v, err := product.NewVariant(s.Size, s.Price, s.Stock)
		if err != nil {
			return nil, err
		}
		variants = append(variants, v)
	}
	return product.NewProduct(b.ID, b.Name, b.Description, b.Category, b.Image, variants, b.Now)
}
