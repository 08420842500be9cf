package shared

import (
	"context"
	"errors"
	"time"

	"cosme-store/internal/domain/cart"
	"cosme-store/internal/domain/session"
	"cosme-store/internal/domain/voucher"

	"github.com/google/uuid"
)

var (
	// ErrCartVersionConflict means another writer saved the cart after it was loaded.
	ErrCartVersionConflict = errors.New("cart was modified concurrently")
	ErrSessionNotFound     = errors.New("session not found")
	ErrGeographyNotFound   = errors.New("administrative division not found")
)

// StoredCart is the persisted state of one user's cart. Version 0 means the
// cart has never been saved.
type StoredCart struct {
	Ledger   *cart.Ledger
	Vouchers voucher.Slots
	Version  int64
}

type CartStore interface {
	// Load returns the stored cart of userID, or an empty one.
	Load(ctx context.Context, userID uuid.UUID) (StoredCart, error)
	// Save overwrites the whole cart if its stored version still equals
	// c.Version and returns the new version.
	Save(ctx context.Context, userID uuid.UUID, c StoredCart) (int64, error)
}

type SessionStore interface {
	Save(ctx context.Context, s session.Session, ttl time.Duration) error
	Get(ctx context.Context, id uuid.UUID) (session.Session, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Division is a province, district or ward.
type Division struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type Geography interface {
	Provinces(ctx context.Context) ([]Division, error)
	Districts(ctx context.Context, provinceCode string) ([]Division, error)
	Wards(ctx context.Context, districtCode string) ([]Division, error)
}
