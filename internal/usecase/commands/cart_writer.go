package commands

import (
	"context"
	"errors"
	"log/slog"

	"cosme-store/internal/pkg/errs"
	"cosme-store/internal/pkg/keylock"
	"cosme-store/internal/usecase/shared"

	"github.com/google/uuid"
)

// CartSettings carries the checkout knobs shared by cart and checkout commands.
type CartSettings struct {
	ShippingFee int64
	SaveRetries int
}

// cartWriter runs read-modify-write cycles on a stored cart. Writers in this
// process are serialized per user by the lock; writers elsewhere are caught by
// the store's version check, and the cycle restarts from a fresh load.
type cartWriter struct {
	store   shared.CartStore
	locks   *keylock.Locker
	retries int
}

func newCartWriter(store shared.CartStore, locks *keylock.Locker, retries int) *cartWriter {
	return &cartWriter{store: store, locks: locks, retries: max(retries, 1)}
}

func (w *cartWriter) lock(userID uuid.UUID) func() {
	return w.locks.Lock("cart:" + userID.String())
}

func (w *cartWriter) update(ctx context.Context, userID uuid.UUID, fn func(c *shared.StoredCart) error) (shared.StoredCart, error) {
	unlock := w.lock(userID)
	defer unlock()
	return w.updateLocked(ctx, userID, fn)
}

// updateLocked is update for callers already holding the user's lock.
func (w *cartWriter) updateLocked(ctx context.Context, userID uuid.UUID, fn func(c *shared.StoredCart) error) (shared.StoredCart, error) {
	for attempt := 1; ; attempt++ {
		c, err := w.store.Load(ctx, userID)
		if err != nil {
			return shared.StoredCart{}, err
		}
		if err := fn(&c); err != nil {
			return shared.StoredCart{}, err
		}

		version, err := w.store.Save(ctx, userID, c)
		if err == nil {
			c.Version = version
			return c, nil
		}
		if !errors.Is(err, shared.ErrCartVersionConflict) {
			return shared.StoredCart{}, err
		}
		if attempt >= w.retries {
			return shared.StoredCart{}, errs.Mark(err, ErrCartBusy)
		}
		slog.Warn("cart save lost a version race, retrying",
			slog.String("user_id", userID.String()),
			slog.Int("attempt", attempt))
	}
}
