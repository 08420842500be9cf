//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"cosme-store/internal/infra"
	"cosme-store/internal/infra/pgsql"
	"cosme-store/internal/infra/repository"
	"cosme-store/internal/usecase/shared"
	repositorymock "cosme-store/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCheckoutKeyRepository_Record(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
	k := shared.CheckoutKey{
		UserID:      uuid.New(),
		Key:         uuid.New(),
		RequestHash: "abc",
		OrderID:     uuid.New(),
		ExpiresAt:   now.Add(24 * time.Hour),
		CreatedAt:   now,
	}

	testCases := []struct {
		name       string
		affected   int64
		dbErr      error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: new or expired key", affected: 1},
		{name: "error: live key held by another checkout", affected: 0, expectKind: infra.KindDuplicateKey},
		{name: "error: database failure", dbErr: errors.New("broken pipe"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockCheckoutKeyWriteQueries(ctrl)
			tx := &mockDBTX{}
			mockQueries.EXPECT().UpsertCheckoutKey(ctx, tx, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ pgsql.DBTX, row pgsql.CheckoutKeyRow) (int64, error) {
					assert.Equal(t, k.Key, row.Key)
					assert.Equal(t, k.OrderID, row.OrderID)
					assert.True(t, row.ExpiresAt.Valid)
					return tc.affected, tc.dbErr
				})

			err := repository.NewCheckoutKeyRepository(mockQueries, tx).Record(ctx, tx, k)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
