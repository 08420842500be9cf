//go:build unit

package money_test

import (
	"testing"

	"cosme-store/internal/pkg/money"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	assert.Equal(t, "150.000 ₫", money.Format(150000))
	assert.Equal(t, "0 ₫", money.Format(0))
	assert.Equal(t, "1.250.000 ₫", money.Format(1250000))
}
