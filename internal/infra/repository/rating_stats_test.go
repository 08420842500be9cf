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

func TestRatingStatsRepository_Recalc(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		dbErr         error
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{name: "success: rating stats recalculated successfully"},
		{name: "error: database error occurs", dbErr: errors.New("database connection error"), expectedError: true, expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockRatingStatsQueries(ctrl)
			mockDB := &mockDBTX{}
			mockQueries.EXPECT().RecalcProductRatingStats(ctx, mockDB, "prod-serum").Return(tc.dbErr)

			err := repository.NewRatingStatsRepository(mockQueries, mockDB).Recalc(ctx, mockDB, "prod-serum")

			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, err, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
