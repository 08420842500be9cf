//go:build unit

package readstore_test

import (
	"context"
	"testing"

	"cosme-store/internal/infra"
	"cosme-store/internal/infra/pgsql"
	"cosme-store/internal/infra/readstore"
	"cosme-store/internal/infra/repository/converter"
	"cosme-store/tests/common/builder"
	readstoremock "cosme-store/tests/mock/readstore"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUserReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	u, err := builder.NewUserBuilder().BuildDomain()
	require.NoError(t, err)
	row := converter.UserToRow(u)

	tests := []struct {
		name       string
		row        pgsql.UserRow
		dbErr      error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success - active user", row: row},
		{name: "error - not found", dbErr: pgx.ErrNoRows, expectKind: infra.KindNotFound},
		{name: "error - database", dbErr: errDBConnectionLost, expectKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := readstoremock.NewMockUserReadQueries(ctrl)
			mockQueries.EXPECT().GetUserByID(ctx, gomock.Any(), u.ID()).Return(tt.row, tt.dbErr)

			view, err := readstore.NewUserReadStore(mockQueries, &mockDBTX{}).FindByID(ctx, u.ID())
			if tt.expectKind != "" {
				assert.True(t, infra.IsKind(err, tt.expectKind))
				assert.Nil(t, view)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "lan.anh@example.com", view.Email)
			assert.Equal(t, "Lan Anh", view.DisplayName)
			assert.True(t, view.IsActive)
		})
	}
}

func TestUserReadStore_LoadByEmail(t *testing.T) {
	ctx := context.Background()
	u, err := builder.NewUserBuilder().WithRole("admin").BuildDomain()
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockUserReadQueries(ctrl)
	store := readstore.NewUserReadStore(mockQueries, &mockDBTX{})

	mockQueries.EXPECT().GetUserByEmail(ctx, gomock.Any(), "lan.anh@example.com").Return(converter.UserToRow(u), nil)
	got, err := store.LoadByEmail(ctx, "lan.anh@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID(), got.ID())
	assert.Equal(t, "admin", got.Role().String())

	corrupt := converter.UserToRow(u)
	corrupt.Role = "superuser"
	mockQueries.EXPECT().GetUserByEmail(ctx, gomock.Any(), "lan.anh@example.com").Return(corrupt, nil)
	_, err = store.LoadByEmail(ctx, "lan.anh@example.com")
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
}
