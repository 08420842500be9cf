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
	"cosme-store/internal/pkg/pgconv"
	"cosme-store/tests/common/builder"
	repositorymock "cosme-store/tests/mock/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUserRepository_Create(t *testing.T) {
	ctx := context.Background()
	u, err := builder.NewUserBuilder().BuildDomain()
	require.NoError(t, err)

	testCases := []struct {
		name       string
		dbErr      error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success"},
		{name: "error: email already registered", dbErr: &pgconn.PgError{Code: "23505"}, expectKind: infra.KindDuplicateKey},
		{name: "error: database failure", dbErr: errors.New("conn refused"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockUserWriteQueries(ctrl)
			tx := &mockDBTX{}
			mockQueries.EXPECT().CreateUser(ctx, tx, gomock.Any()).DoAndReturn(
				func(_ context.Context, _ pgsql.DBTX, row pgsql.UserRow) error {
					assert.Equal(t, "lan.anh@example.com", row.Email)
					assert.Equal(t, "customer", row.Role)
					return tc.dbErr
				})

			err := repository.NewUserRepository(mockQueries, tx).Create(ctx, tx, u)
			if tc.expectKind != "" {
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestUserRepository_UpdateLastLogin(t *testing.T) {
	ctx := context.Background()
	u, err := builder.NewUserBuilder().BuildDomain()
	require.NoError(t, err)
	at := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockUserWriteQueries(ctrl)
	tx := &mockDBTX{}
	repo := repository.NewUserRepository(mockQueries, tx)

	mockQueries.EXPECT().UpdateUserLastLogin(ctx, tx, u.ID(), pgconv.TimeToPgtype(at)).Return(nil)
	assert.NoError(t, repo.UpdateLastLogin(ctx, tx, u.ID(), at))

	mockQueries.EXPECT().UpdateUserLastLogin(ctx, tx, u.ID(), pgconv.TimeToPgtype(at)).Return(errors.New("down"))
	assert.True(t, infra.IsKind(repo.UpdateLastLogin(ctx, tx, u.ID(), at), infra.KindDBFailure))
}

func TestUserRepository_UpdateProfile(t *testing.T) {
	ctx := context.Background()
	u, err := builder.NewUserBuilder().WithPhone("0912345678").BuildDomain()
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockUserWriteQueries(ctrl)
	tx := &mockDBTX{}
	repo := repository.NewUserRepository(mockQueries, tx)

	mockQueries.EXPECT().UpdateUserProfile(ctx, tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgsql.DBTX, arg pgsql.UpdateUserProfileParams) (int64, error) {
			assert.Equal(t, "0912345678", arg.Phone)
			return 1, nil
		})
	require.NoError(t, repo.UpdateProfile(ctx, tx, u))

	mockQueries.EXPECT().UpdateUserProfile(ctx, tx, gomock.Any()).Return(int64(0), nil)
	assert.True(t, infra.IsKind(repo.UpdateProfile(ctx, tx, u), infra.KindNotFound))
}
