//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"cosme-store/internal/infra"
	"cosme-store/internal/infra/repository"
	repositorymock "cosme-store/tests/mock/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestVoucherRepository_Redeem(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		affected   int64
		dbErr      error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: usage counted", affected: 1},
		{name: "error: usage limit reached", affected: 0, expectKind: infra.KindConflict},
		{name: "error: database failure", dbErr: errors.New("broken pipe"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockVoucherWriteQueries(ctrl)
			tx := &mockDBTX{}
			mockQueries.EXPECT().RedeemVoucher(ctx, tx, "SALE10").Return(tc.affected, tc.dbErr)

			err := repository.NewVoucherRepository(mockQueries, tx).Redeem(ctx, tx, "SALE10")

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestVoucherRepository_Release(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockVoucherWriteQueries(ctrl)
	tx := &mockDBTX{}
	repo := repository.NewVoucherRepository(mockQueries, tx)

	mockQueries.EXPECT().ReleaseVoucher(ctx, tx, "FREESHIP").Return(nil)
	require.NoError(t, repo.Release(ctx, tx, "FREESHIP"))

	mockQueries.EXPECT().ReleaseVoucher(ctx, tx, "FREESHIP").Return(errors.New("down"))
	err := repo.Release(ctx, tx, "FREESHIP")
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
}
