package product

import (
	"errors"
	"strings"
	"time"

	"cosme-store/internal/pkg/errs"
)

var (
	ErrVariantNotFound   = errors.New("variant not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrMissingVariantKey = errors.New("variant has neither size nor name")
	ErrInvalidPrice      = errors.New("price must not be negative")
	ErrInvalidStock      = errors.New("stock is out of range")
	ErrInvalidProduct    = errors.New("product requires id, name and at least one variant")
	ErrInvalidProductID  = errors.New("product id must not contain " + reservedIDChars)
	ErrDuplicateVariant  = errors.New("duplicate variant size")
)

// reservedIDChars separates product id and size inside a cart line id.
const reservedIDChars = "|"

type Product struct {
	id          string
	name        string
	description string
	category    string
	image       string
	variants    []Variant
	createdAt   time.Time
	updatedAt   time.Time
}

func NewProduct(id, name, description, category, image string, variants []Variant, now time.Time) (*Product, error) {
	id = strings.TrimSpace(id)
	name = strings.TrimSpace(name)
	if id == "" || name == "" || len(variants) == 0 {
		return nil, ErrInvalidProduct
	}
	if strings.ContainsAny(id, reservedIDChars) {
		return nil, errs.Mark(errs.Newf("product id %q", id), ErrInvalidProductID)
	}
	seen := make(map[string]struct{}, len(variants))
	for _, v := range variants {
		if _, dup := seen[v.size]; dup {
			return nil, errs.Mark(errs.Newf("product %s: size %q listed twice", id, v.size), ErrDuplicateVariant)
		}
		seen[v.size] = struct{}{}
	}
	return &Product{
		id:          id,
		name:        name,
		description: description,
		category:    strings.TrimSpace(category),
		image:       image,
		variants:    append([]Variant(nil), variants...),
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func Reconstruct(id, name, description, category, image string, variants []Variant, createdAt, updatedAt time.Time) *Product {
	return &Product{
		id:          id,
		name:        name,
		description: description,
		category:    category,
		image:       image,
		variants:    variants,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (p *Product) ID() string           { return p.id }
func (p *Product) Name() string         { return p.name }
func (p *Product) Description() string  { return p.description }
func (p *Product) Category() string     { return p.category }
func (p *Product) Image() string        { return p.image }
func (p *Product) CreatedAt() time.Time { return p.createdAt }
func (p *Product) UpdatedAt() time.Time { return p.updatedAt }

func (p *Product) Variants() []Variant {
	return append([]Variant(nil), p.variants...)
}

// Variant looks a variant up by its canonical size.
func (p *Product) Variant(size string) (Variant, error) {
	for _, v := range p.variants {
		if v.size == size {
			return v, nil
		}
	}
	return Variant{}, errs.Mark(errs.Newf("product %s has no variant %q", p.id, size), ErrVariantNotFound)
}
