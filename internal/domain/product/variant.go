package product

import (
	"math"
	"strings"

	"cosme-store/internal/pkg/errs"
)

// MaxStock is the largest stock a variant can hold; the stock column is a
// 32-bit integer.
const MaxStock = math.MaxInt32

// Variant is one purchasable size of a product. Size is the canonical key.
type Variant struct {
	size     string
	price    int64
	stockQty int
}

func NewVariant(size string, price int64, stockQty int) (Variant, error) {
	size = strings.TrimSpace(size)
	if size == "" {
		return Variant{}, ErrMissingVariantKey
	}
	if price < 0 {
		return Variant{}, ErrInvalidPrice
	}
	if stockQty < 0 || stockQty > MaxStock {
		return Variant{}, errs.Mark(errs.Newf("variant %q: stock %d", size, stockQty), ErrInvalidStock)
	}
	return Variant{size: size, price: price, stockQty: stockQty}, nil
}

func (v Variant) Size() string  { return v.size }
func (v Variant) Price() int64  { return v.price }
func (v Variant) StockQty() int { return v.stockQty }

// Adjust returns the variant with delta applied to its stock. The receiver is
// left untouched, so a failed adjustment never leaves a partial change behind.
func (v Variant) Adjust(delta int) (Variant, error) {
	next := v.stockQty + delta
	if next < 0 {
		return v, errs.Mark(
			errs.Newf("variant %q has %d in stock, cannot apply %d", v.size, v.stockQty, delta),
			ErrInsufficientStock,
		)
	}
	if next > MaxStock {
		return v, errs.Mark(errs.Newf("variant %q has %d in stock, cannot apply %d", v.size, v.stockQty, delta), ErrInvalidStock)
	}
	v.stockQty = next
	return v, nil
}

// RawVariant is a variant as it arrives from older catalog exports, where the
// key was stored under either "size" or "name".
type RawVariant struct {
	Size     string `json:"size,omitempty"`
	Name     string `json:"name,omitempty"`
	Price    int64  `json:"price"`
	StockQty int    `json:"stockQty"`
}

// NormalizeVariant maps a raw variant onto the canonical size key: size wins,
// name is the fallback.
func NormalizeVariant(raw RawVariant) (Variant, error) {
	key := strings.TrimSpace(raw.Size)
	if key == "" {
		key = strings.TrimSpace(raw.Name)
	}
	return NewVariant(key, raw.Price, raw.StockQty)
}

func NormalizeVariants(raws []RawVariant) ([]Variant, error) {
	out := make([]Variant, 0, len(raws))
	for i, raw := range raws {
		v, err := NormalizeVariant(raw)
		if err != nil {
			return nil, errs.Wrapf(err, "variant #%d", i)
		}
		out = append(out, v)
	}
	return out, nil
}
