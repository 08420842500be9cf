//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"cosme-store/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestMark(t *testing.T) {
	base := errs.New("variant 50ml has 2 left")

	t.Run("marked error matches both sentinel and original", func(t *testing.T) {
		marked := errs.Mark(base, errs.ErrStateConflict)
		assert.ErrorIs(t, marked, errs.ErrStateConflict)
		assert.ErrorIs(t, marked, base)
		assert.Equal(t, base.Error(), marked.Error())
	})

	t.Run("nil error returns the mark itself", func(t *testing.T) {
		assert.Same(t, errs.ErrNotFound, errs.Mark(nil, errs.ErrNotFound))
	})

	t.Run("wrap keeps chain", func(t *testing.T) {
		wrapped := errs.Wrap(errs.Mark(base, errs.ErrValidation), "add line")
		assert.True(t, errors.Is(wrapped, errs.ErrValidation))
		assert.Contains(t, wrapped.Error(), "add line")
		assert.Nil(t, errs.Wrap(nil, "noop"))
	})
}

func TestExtractStackLines(t *testing.T) {
	assert.Nil(t, errs.ExtractStackLines(nil, 5))
	lines := errs.ExtractStackLines(errs.New("boom"), 3)
	assert.LessOrEqual(t, len(lines), 3)
	assert.Equal(t, "boom", lines[0])
}
