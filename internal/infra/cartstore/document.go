package cartstore

import (
	"time"

	"cosme-store/internal/domain/cart"
	"cosme-store/internal/domain/voucher"
	"cosme-store/internal/usecase/shared"

	"github.com/google/uuid"
)

// cartDocument is the whole cart of one user. Items are denormalized product
// snapshots so a cart renders without touching the catalog.
type cartDocument struct {
	UserID    string         `bson:"user_id"`
	Items     []itemDocument `bson:"items"`
	Selected  []string       `bson:"selected"`
	Vouchers  voucher.Slots  `bson:"vouchers"`
	Version   int64          `bson:"version"`
	UpdatedAt time.Time      `bson:"updated_at"`
}

type itemDocument struct {
	ProductID   string    `bson:"product_id"`
	VariantSize string    `bson:"variant_size"`
	Name        string    `bson:"name"`
	Image       string    `bson:"image"`
	Description string    `bson:"description"`
	Category    string    `bson:"category"`
	Price       int64     `bson:"price"`
	Quantity    int       `bson:"quantity"`
	AddedAt     time.Time `bson:"added_at"`
}

func toDocument(userID uuid.UUID, c shared.StoredCart, now time.Time) cartDocument {
	lines := c.Ledger.Lines()
	items := make([]itemDocument, len(lines))
	for i, l := range lines {
		items[i] = itemDocument{
			ProductID:   l.ProductID,
			VariantSize: l.VariantSize,
			Name:        l.Name,
			Image:       l.Image,
			Description: l.Description,
			Category:    l.Category,
			Price:       l.UnitPrice,
			Quantity:    l.Quantity,
			AddedAt:     l.AddedAt,
		}
	}
	selected := make([]string, 0, len(lines))
	for _, id := range c.Ledger.SelectedIDs() {
		selected = append(selected, string(id))
	}
	return cartDocument{
		UserID:    userID.String(),
		Items:     items,
		Selected:  selected,
		Vouchers:  c.Vouchers,
		UpdatedAt: now,
	}
}

func (d cartDocument) ledger() *cart.Ledger {
	lines := make([]cart.Line, len(d.Items))
	for i, it := range d.Items {
		lines[i] = cart.Line{
			ProductID:   it.ProductID,
			VariantSize: it.VariantSize,
			Quantity:    it.Quantity,
			Snapshot: cart.Snapshot{
				Name:        it.Name,
				Image:       it.Image,
				Description: it.Description,
				Category:    it.Category,
				UnitPrice:   it.Price,
			},
			AddedAt: it.AddedAt,
		}
	}
	selected := make([]cart.LineID, len(d.Selected))
	for i, s := range d.Selected {
		selected[i] = cart.LineID(s)
	}
	return cart.Reconstruct(lines, selected)
}
