//go:build unit

package fakes

import (
	"context"
	"slices"
	"sync"

	"cosme-store/internal/domain/cart"
	"cosme-store/internal/domain/voucher"
	"cosme-store/internal/usecase/shared"

	"github.com/google/uuid"
)

type cartDoc struct {
	lines    []cart.Line
	selected []cart.LineID
	vouchers voucher.Slots
	version  int64
}

// CartStore mimics the versioned document store: Save succeeds only when the
// caller's version matches the stored one.
type CartStore struct {
	mu    sync.Mutex
	carts map[uuid.UUID]cartDoc
	// foreignWrites makes the next n saves lose to a simulated writer on
	// another instance.
	foreignWrites int
	loadErr       error
	saveErr       error

	Saves int
}

func NewCartStore() *CartStore {
	return &CartStore{carts: map[uuid.UUID]cartDoc{}}
}

var _ shared.CartStore = (*CartStore)(nil)

func (s *CartStore) LoseNextSaves(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.foreignWrites = n
}

func (s *CartStore) FailLoad(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loadErr = err
}

func (s *CartStore) FailSave(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saveErr = err
}

func (s *CartStore) Load(_ context.Context, userID uuid.UUID) (shared.StoredCart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loadErr != nil {
		return shared.StoredCart{}, s.loadErr
	}
	d, ok := s.carts[userID]
	if !ok {
		return shared.StoredCart{Ledger: cart.NewLedger()}, nil
	}
	return shared.StoredCart{
		Ledger:   cart.Reconstruct(slices.Clone(d.lines), slices.Clone(d.selected)),
		Vouchers: cloneSlots(d.vouchers),
		Version:  d.version,
	}, nil
}

func (s *CartStore) Save(_ context.Context, userID uuid.UUID, c shared.StoredCart) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return 0, s.saveErr
	}
	d := s.carts[userID]
	if s.foreignWrites > 0 {
		s.foreignWrites--
		d.version++
		s.carts[userID] = d
		return 0, shared.ErrCartVersionConflict
	}
	if d.version != c.Version {
		return 0, shared.ErrCartVersionConflict
	}
	s.Saves++
	s.carts[userID] = cartDoc{
		lines:    c.Ledger.Lines(),
		selected: c.Ledger.SelectedIDs(),
		vouchers: cloneSlots(c.Vouchers),
		version:  c.Version + 1,
	}
	return c.Version + 1, nil
}

// Put stores a cart directly, bypassing the version check.
func (s *CartStore) Put(userID uuid.UUID, ledger *cart.Ledger, vouchers voucher.Slots) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.carts[userID]
	s.carts[userID] = cartDoc{
		lines:    ledger.Lines(),
		selected: ledger.SelectedIDs(),
		vouchers: cloneSlots(vouchers),
		version:  d.version + 1,
	}
}

func cloneSlots(s voucher.Slots) voucher.Slots {
	var out voucher.Slots
	for _, a := range s.Applied() {
		out.Set(a)
	}
	return out
}
