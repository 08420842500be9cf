package cart

import (
	"errors"
	"math"
	"strings"
	"time"

	"cosme-store/internal/pkg/errs"
)

// MaxQuantity is the most one line can hold, the same ceiling a variant's
// stock has. It keeps merged quantities and line amounts from overflowing.
const MaxQuantity = math.MaxInt32

var (
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")
	ErrLineNotFound    = errors.New("cart line not found")
	ErrInvalidLine     = errors.New("cart line requires product id and variant size")
)

// Ledger holds the lines of one cart and the subset selected for checkout.
// Every selected id refers to a line in the ledger.
type Ledger struct {
	lines    []Line
	index    map[LineID]int
	selected map[LineID]struct{}
}

func NewLedger() *Ledger {
	return &Ledger{
		index:    make(map[LineID]int),
		selected: make(map[LineID]struct{}),
	}
}

// Reconstruct rebuilds a ledger from stored lines. Lines sharing an id are
// merged, non-positive quantities are dropped, quantities above MaxQuantity
// are capped and unknown selection ids pruned.
func Reconstruct(lines []Line, selected []LineID) *Ledger {
	l := NewLedger()
	for _, line := range lines {
		if line.Quantity < 1 || line.ProductID == "" || line.VariantSize == "" {
			continue
		}
		line.Quantity = min(line.Quantity, MaxQuantity)
		if i, ok := l.index[line.ID()]; ok {
			l.lines[i].Quantity = min(l.lines[i].Quantity, MaxQuantity-line.Quantity) + line.Quantity
			continue
		}
		l.index[line.ID()] = len(l.lines)
		l.lines = append(l.lines, line)
	}
	l.SetSelection(selected)
	return l
}

// AddLine inserts a line or, when the (product, size) pair is already present,
// increases its quantity. The snapshot of an existing line is kept. A merged
// quantity above MaxQuantity is rejected and the line left unchanged.
func (l *Ledger) AddLine(productID, variantSize string, quantity int, snap Snapshot, now time.Time) (Line, error) {
	productID = strings.TrimSpace(productID)
	variantSize = strings.TrimSpace(variantSize)
	if productID == "" || variantSize == "" {
		return Line{}, ErrInvalidLine
	}
	if quantity < 1 || quantity > MaxQuantity {
		return Line{}, errs.Mark(errs.Newf("quantity %d", quantity), ErrInvalidQuantity)
	}

	id := NewLineID(productID, variantSize)
	if i, ok := l.index[id]; ok {
		if quantity > MaxQuantity-l.lines[i].Quantity {
			return Line{}, errs.Mark(errs.Newf("line %s: %d more on top of %d", id, quantity, l.lines[i].Quantity), ErrInvalidQuantity)
		}
		l.lines[i].Quantity += quantity
		return l.lines[i], nil
	}

	line := Line{
		ProductID:   productID,
		VariantSize: variantSize,
		Quantity:    quantity,
		Snapshot:    snap,
		AddedAt:     now,
	}
	l.index[id] = len(l.lines)
	l.lines = append(l.lines, line)
	return line, nil
}

// RemoveLine deletes the line and its selection entry. Absent ids are a no-op.
func (l *Ledger) RemoveLine(id LineID) bool {
	i, ok := l.index[id]
	if !ok {
		return false
	}
	l.lines = append(l.lines[:i], l.lines[i+1:]...)
	delete(l.selected, id)
	l.reindex()
	return true
}

func (l *Ledger) RemoveLines(ids []LineID) int {
	removed := 0
	for _, id := range ids {
		if l.RemoveLine(id) {
			removed++
		}
	}
	return removed
}

func (l *Ledger) SetQuantity(id LineID, quantity int) error {
	if quantity < 1 || quantity > MaxQuantity {
		return errs.Mark(errs.Newf("quantity %d", quantity), ErrInvalidQuantity)
	}
	i, ok := l.index[id]
	if !ok {
		return errs.Mark(errs.Newf("line %s", id), ErrLineNotFound)
	}
	l.lines[i].Quantity = quantity
	return nil
}

func (l *Ledger) ToggleSelect(id LineID) error {
	if _, ok := l.index[id]; !ok {
		return errs.Mark(errs.Newf("line %s", id), ErrLineNotFound)
	}
	if _, on := l.selected[id]; on {
		delete(l.selected, id)
	} else {
		l.selected[id] = struct{}{}
	}
	return nil
}

func (l *Ledger) SelectAll() {
	for _, line := range l.lines {
		l.selected[line.ID()] = struct{}{}
	}
}

func (l *Ledger) DeselectAll() {
	clear(l.selected)
}

// SetSelection replaces the selection with ids, ignoring ids not in the ledger.
func (l *Ledger) SetSelection(ids []LineID) {
	clear(l.selected)
	for _, id := range ids {
		if _, ok := l.index[id]; ok {
			l.selected[id] = struct{}{}
		}
	}
}

func (l *Ledger) IsSelected(id LineID) bool {
	_, ok := l.selected[id]
	return ok
}

func (l *Ledger) Line(id LineID) (Line, bool) {
	i, ok := l.index[id]
	if !ok {
		return Line{}, false
	}
	return l.lines[i], true
}

func (l *Ledger) Len() int { return len(l.lines) }

// Lines returns a copy of all lines in insertion order.
func (l *Ledger) Lines() []Line {
	return append([]Line(nil), l.lines...)
}

func (l *Ledger) SelectedLines() []Line {
	out := make([]Line, 0, len(l.selected))
	for _, line := range l.lines {
		if l.IsSelected(line.ID()) {
			out = append(out, line)
		}
	}
	return out
}

// SelectedIDs lists selected ids in line order.
func (l *Ledger) SelectedIDs() []LineID {
	out := make([]LineID, 0, len(l.selected))
	for _, line := range l.lines {
		if l.IsSelected(line.ID()) {
			out = append(out, line.ID())
		}
	}
	return out
}

// Totals covers every line in the cart.
func (l *Ledger) Totals() Totals {
	return sum(l.lines)
}

// SelectedTotals covers only the selected lines; it is the checkout amount.
func (l *Ledger) SelectedTotals() Totals {
	return sum(l.SelectedLines())
}

func (l *Ledger) reindex() {
	clear(l.index)
	for i, line := range l.lines {
		l.index[line.ID()] = i
	}
}
