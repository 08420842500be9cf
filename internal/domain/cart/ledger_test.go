//go:build unit

package cart_test

import (
	"math"
	"math/rand/v2"
	"testing"
	"time"

	"cosme-store/internal/domain/cart"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)

func snap(price int64) cart.Snapshot {
	return cart.Snapshot{Name: "Hydrating Toner", Image: "toner.png", Category: "skincare", UnitPrice: price}
}

func TestLedger_Totals(t *testing.T) {
	t.Run("single line of two units", func(t *testing.T) {
		l := cart.NewLedger()
		_, err := l.AddLine("X", "50ml", 2, snap(100000), now)
		require.NoError(t, err)

		assert.Equal(t, cart.Totals{TotalItems: 2, TotalAmount: 200000}, l.Totals())
	})

	t.Run("missing price counts as zero", func(t *testing.T) {
		l := cart.NewLedger()
		_, err := l.AddLine("X", "50ml", 3, cart.Snapshot{Name: "Sample"}, now)
		require.NoError(t, err)

		assert.Equal(t, cart.Totals{TotalItems: 3, TotalAmount: 0}, l.Totals())
	})

	t.Run("selected totals only count selected lines", func(t *testing.T) {
		l := cart.NewLedger()
		_, _ = l.AddLine("X", "50ml", 2, snap(100000), now)
		_, _ = l.AddLine("Y", "30ml", 1, snap(250000), now)
		require.NoError(t, l.ToggleSelect(cart.NewLineID("Y", "30ml")))

		assert.Equal(t, cart.Totals{TotalItems: 3, TotalAmount: 450000}, l.Totals())
		assert.Equal(t, cart.Totals{TotalItems: 1, TotalAmount: 250000}, l.SelectedTotals())
	})
}

func TestLedger_AddLine(t *testing.T) {
	t.Run("same product and size merge into one line", func(t *testing.T) {
		l := cart.NewLedger()
		for _, q := range []int{1, 2, 4} {
			_, err := l.AddLine("X", "50ml", q, snap(100000), now.Add(time.Duration(q)*time.Minute))
			require.NoError(t, err)
		}

		require.Equal(t, 1, l.Len())
		line, ok := l.Line(cart.NewLineID("X", "50ml"))
		require.True(t, ok)
		assert.Equal(t, 7, line.Quantity)
		assert.Equal(t, now.Add(time.Minute), line.AddedAt)
	})

	t.Run("different sizes are separate lines", func(t *testing.T) {
		l := cart.NewLedger()
		_, _ = l.AddLine("X", "50ml", 1, snap(100000), now)
		_, _ = l.AddLine("X", "100ml", 1, snap(180000), now)
		assert.Equal(t, 2, l.Len())
	})

	t.Run("non-positive quantity is rejected", func(t *testing.T) {
		l := cart.NewLedger()
		for _, q := range []int{0, -3} {
			_, err := l.AddLine("X", "50ml", q, snap(1), now)
			assert.ErrorIs(t, err, cart.ErrInvalidQuantity)
		}
		assert.Zero(t, l.Len())
	})

	t.Run("blank keys are rejected", func(t *testing.T) {
		_, err := cart.NewLedger().AddLine(" ", "50ml", 1, snap(1), now)
		assert.ErrorIs(t, err, cart.ErrInvalidLine)
	})

	t.Run("merge past MaxQuantity is rejected and the line kept", func(t *testing.T) {
		l := cart.NewLedger()
		_, err := l.AddLine("X", "50ml", 1, snap(100000), now)
		require.NoError(t, err)

		_, err = l.AddLine("X", "50ml", cart.MaxQuantity, snap(100000), now)
		assert.ErrorIs(t, err, cart.ErrInvalidQuantity)
		_, err = l.AddLine("X", "50ml", math.MaxInt, snap(100000), now)
		assert.ErrorIs(t, err, cart.ErrInvalidQuantity)

		assert.Equal(t, cart.Totals{TotalItems: 1, TotalAmount: 100000}, l.Totals())
	})

	t.Run("merge up to MaxQuantity is allowed", func(t *testing.T) {
		l := cart.NewLedger()
		_, _ = l.AddLine("X", "50ml", 1, snap(1), now)
		line, err := l.AddLine("X", "50ml", cart.MaxQuantity-1, snap(1), now)
		require.NoError(t, err)
		assert.Equal(t, cart.MaxQuantity, line.Quantity)
	})
}

func TestLedger_SetQuantity(t *testing.T) {
	l := cart.NewLedger()
	id := cart.NewLineID("X", "50ml")
	_, _ = l.AddLine("X", "50ml", 1, snap(100000), now)

	require.NoError(t, l.SetQuantity(id, 9))
	line, _ := l.Line(id)
	assert.Equal(t, 9, line.Quantity)

	assert.ErrorIs(t, l.SetQuantity(id, 0), cart.ErrInvalidQuantity)
	assert.ErrorIs(t, l.SetQuantity(id, math.MaxInt), cart.ErrInvalidQuantity)
	assert.ErrorIs(t, l.SetQuantity(cart.NewLineID("nope", "x"), 2), cart.ErrLineNotFound)

	line, _ = l.Line(id)
	assert.Equal(t, 9, line.Quantity)
}

func TestLedger_Selection(t *testing.T) {
	newLedger := func() *cart.Ledger {
		l := cart.NewLedger()
		_, _ = l.AddLine("A", "s", 1, snap(10), now)
		_, _ = l.AddLine("B", "s", 1, snap(20), now)
		_, _ = l.AddLine("C", "s", 1, snap(30), now)
		return l
	}
	a, b, c := cart.NewLineID("A", "s"), cart.NewLineID("B", "s"), cart.NewLineID("C", "s")

	t.Run("removing a line prunes its selection", func(t *testing.T) {
		l := newLedger()
		l.SelectAll()
		require.True(t, l.RemoveLine(b))

		assert.False(t, l.IsSelected(b))
		if diff := cmp.Diff([]cart.LineID{a, c}, l.SelectedIDs()); diff != "" {
			t.Errorf("selection mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, int64(40), l.SelectedTotals().TotalAmount)
	})

	t.Run("remove absent line is a no-op", func(t *testing.T) {
		l := newLedger()
		assert.False(t, l.RemoveLine(cart.NewLineID("Z", "s")))
		assert.Equal(t, 3, l.Len())
	})

	t.Run("toggle twice restores", func(t *testing.T) {
		l := newLedger()
		require.NoError(t, l.ToggleSelect(a))
		assert.True(t, l.IsSelected(a))
		require.NoError(t, l.ToggleSelect(a))
		assert.False(t, l.IsSelected(a))
		assert.ErrorIs(t, l.ToggleSelect(cart.NewLineID("Z", "s")), cart.ErrLineNotFound)
	})

	t.Run("set selection filters unknown ids", func(t *testing.T) {
		l := newLedger()
		l.SetSelection([]cart.LineID{c, cart.NewLineID("ghost", "s"), a})
		assert.Equal(t, []cart.LineID{a, c}, l.SelectedIDs())
	})

	t.Run("deselect all", func(t *testing.T) {
		l := newLedger()
		l.SelectAll()
		l.DeselectAll()
		assert.Empty(t, l.SelectedIDs())
		assert.Equal(t, cart.Totals{}, l.SelectedTotals())
	})

	t.Run("select all does not include lines added afterwards", func(t *testing.T) {
		l := newLedger()
		l.SelectAll()
		_, _ = l.AddLine("D", "s", 1, snap(40), now)
		assert.False(t, l.IsSelected(cart.NewLineID("D", "s")))
	})
}

func TestReconstruct(t *testing.T) {
	lines := []cart.Line{
		{ProductID: "A", VariantSize: "s", Quantity: 2, Snapshot: snap(10)},
		{ProductID: "A", VariantSize: "s", Quantity: 3, Snapshot: snap(10)},
		{ProductID: "B", VariantSize: "s", Quantity: 0, Snapshot: snap(10)},
	}
	l := cart.Reconstruct(lines, []cart.LineID{cart.NewLineID("A", "s"), cart.NewLineID("B", "s")})

	require.Equal(t, 1, l.Len())
	assert.Equal(t, 5, l.Lines()[0].Quantity)
	assert.Equal(t, []cart.LineID{cart.NewLineID("A", "s")}, l.SelectedIDs())

	capped := cart.Reconstruct([]cart.Line{
		{ProductID: "A", VariantSize: "s", Quantity: cart.MaxQuantity - 1, Snapshot: snap(10)},
		{ProductID: "A", VariantSize: "s", Quantity: math.MaxInt, Snapshot: snap(10)},
	}, nil)
	require.Equal(t, 1, capped.Len())
	assert.Equal(t, cart.MaxQuantity, capped.Lines()[0].Quantity)
}

func TestLineID_Split(t *testing.T) {
	productID, size, ok := cart.NewLineID("prod-1", "50ml").Split()
	require.True(t, ok)
	assert.Equal(t, "prod-1", productID)
	assert.Equal(t, "50ml", size)
}

// Random operation sequences must keep the ledger's invariants.
func TestLedger_RandomOperations(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 7))
	products := []string{"A", "B", "C", "D"}
	sizes := []string{"30ml", "50ml"}
	prices := map[string]int64{"A": 10000, "B": 25000, "C": 0, "D": 99000}

	for round := 0; round < 50; round++ {
		l := cart.NewLedger()
		added := map[cart.LineID]int{}

		for step := 0; step < 40; step++ {
			p := products[rng.IntN(len(products))]
			s := sizes[rng.IntN(len(sizes))]
			id := cart.NewLineID(p, s)

			switch rng.IntN(6) {
			case 0, 1:
				q := rng.IntN(4) + 1
				_, err := l.AddLine(p, s, q, snap(prices[p]), now)
				require.NoError(t, err)
				added[id] += q
			case 2:
				l.RemoveLine(id)
				delete(added, id)
			case 3:
				q := rng.IntN(5) + 1
				if l.SetQuantity(id, q) == nil {
					added[id] = q
				}
			case 4:
				_ = l.ToggleSelect(id)
			case 5:
				if rng.IntN(2) == 0 {
					l.SelectAll()
				} else {
					l.DeselectAll()
				}
			}

			assertInvariants(t, l, added, prices)
		}
	}
}

func assertInvariants(t *testing.T, l *cart.Ledger, want map[cart.LineID]int, prices map[string]int64) {
	t.Helper()
	require.Equal(t, len(want), l.Len())

	var all, selected cart.Totals
	for _, line := range l.Lines() {
		require.Equal(t, want[line.ID()], line.Quantity)
		amount := prices[line.ProductID] * int64(line.Quantity)
		all.TotalItems += line.Quantity
		all.TotalAmount += amount
		if l.IsSelected(line.ID()) {
			selected.TotalItems += line.Quantity
			selected.TotalAmount += amount
		}
	}
	for _, id := range l.SelectedIDs() {
		_, ok := l.Line(id)
		require.True(t, ok, "selection references missing line %s", id)
	}
	require.Equal(t, all, l.Totals())
	require.Equal(t, selected, l.SelectedTotals())
}
