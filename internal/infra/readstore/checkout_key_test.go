//go:build unit

package readstore_test

import (
	"context"
	"testing"
	"time"

	"cosme-store/internal/infra"
	"cosme-store/internal/infra/pgsql"
	"cosme-store/internal/infra/readstore"
	"cosme-store/internal/pkg/pgconv"
	readstoremock "cosme-store/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCheckoutKeyReadStore_Load(t *testing.T) {
	ctx := context.Background()
	userID, key, orderID := uuid.New(), uuid.New(), uuid.New()
	created := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockCheckoutKeyReadQueries(ctrl)
		mockQueries.EXPECT().GetCheckoutKey(ctx, gomock.Any(), userID, key).Return(pgsql.CheckoutKeyRow{
			UserID:      userID,
			Key:         key,
			RequestHash: "abc",
			OrderID:     orderID,
			ExpiresAt:   pgconv.TimeToPgtype(created.Add(24 * time.Hour)),
			CreatedAt:   pgconv.TimeToPgtype(created),
		}, nil)

		k, err := readstore.NewCheckoutKeyReadStore(mockQueries, &mockDBTX{}).Load(ctx, userID, key)
		require.NoError(t, err)
		assert.Equal(t, orderID, k.OrderID)
		assert.Equal(t, "abc", k.RequestHash)
		assert.True(t, k.ExpiresAt.Equal(created.Add(24*time.Hour)))
	})

	t.Run("error: unknown key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockCheckoutKeyReadQueries(ctrl)
		mockQueries.EXPECT().GetCheckoutKey(ctx, gomock.Any(), userID, key).Return(pgsql.CheckoutKeyRow{}, pgx.ErrNoRows)

		_, err := readstore.NewCheckoutKeyReadStore(mockQueries, &mockDBTX{}).Load(ctx, userID, key)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
