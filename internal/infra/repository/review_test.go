//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"cosme-store/internal/domain/review"
	"cosme-store/internal/infra"
	"cosme-store/internal/infra/pgsql"
	"cosme-store/internal/infra/repository"
	"cosme-store/tests/common/builder"
	repositorymock "cosme-store/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// Create Review Tests
// =============================================================================

func TestRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockReviewWriteQueries, *review.Review, pgsql.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: review created successfully",
			setupMock: func(mock *repositorymock.MockReviewWriteQueries, rev *review.Review, tx pgsql.DBTX) {
				mock.EXPECT().CreateReview(ctx, tx, gomock.Any()).Return(nil)
			},
			expectedError: false,
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockReviewWriteQueries, rev *review.Review, tx pgsql.DBTX) {
				mock.EXPECT().CreateReview(ctx, tx, gomock.Any()).Return(errors.New("database connection error"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
		{
			name: "error: second review of the same product",
			setupMock: func(mock *repositorymock.MockReviewWriteQueries, rev *review.Review, tx pgsql.DBTX) {
				dup := &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}
				mock.EXPECT().CreateReview(ctx, tx, gomock.Any()).Return(dup)
			},
			expectedError: true,
			expectKind:    infra.KindDuplicateKey,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockReviewWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewReviewRepository(mockQueries, mockDB)

			domainReview, err := builder.NewReviewBuilder().BuildDomain()
			require.NoError(t, err)

			tc.setupMock(mockQueries, domainReview, mockDB)

			reviewID, actualError := repo.Create(ctx, mockDB, domainReview)

			if tc.expectedError {
				require.Error(t, actualError)
				if tc.expectKind != "" {
					assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
				}
				assert.Equal(t, uuid.Nil, reviewID, "reviewID should be nil when error occurs")
			} else {
				assert.NoError(t, actualError)
				assert.Equal(t, domainReview.ID(), reviewID)
			}
		})
	}
}

// =============================================================================
// Update Review Tests
// =============================================================================

func TestRepository_Update(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockReviewWriteQueries, *review.Review, pgsql.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: review updated successfully",
			setupMock: func(mock *repositorymock.MockReviewWriteQueries, rev *review.Review, tx pgsql.DBTX) {
				mock.EXPECT().UpdateReview(ctx, tx, gomock.Any()).DoAndReturn(
					func(_ context.Context, _ pgsql.DBTX, arg pgsql.UpdateReviewParams) (int64, error) {
						assert.Equal(t, rev.ID(), arg.ID)
						assert.Equal(t, int32(1), arg.Rating)
						return 1, nil
					})
			},
			expectedError: false,
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockReviewWriteQueries, rev *review.Review, tx pgsql.DBTX) {
				mock.EXPECT().UpdateReview(ctx, tx, gomock.Any()).Return(int64(0), errors.New("database connection error"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
		{
			name: "error: review not found",
			setupMock: func(mock *repositorymock.MockReviewWriteQueries, rev *review.Review, tx pgsql.DBTX) {
				mock.EXPECT().UpdateReview(ctx, tx, gomock.Any()).Return(int64(0), nil)
			},
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockReviewWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewReviewRepository(mockQueries, mockDB)

			domainReview, err := builder.NewReviewBuilder().AsPoorRating().BuildDomain()
			require.NoError(t, err)

			tc.setupMock(mockQueries, domainReview, mockDB)

			actualError := repo.Update(ctx, mockDB, domainReview)

			if tc.expectedError {
				require.Error(t, actualError)
				if tc.expectKind != "" {
					assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
				}
			} else {
				assert.NoError(t, actualError)
			}
		})
	}
}

// =============================================================================
// Delete Review Tests
// =============================================================================

func TestRepository_Delete(t *testing.T) {
	ctx := context.Background()
	reviewID := uuid.New()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockReviewWriteQueries, uuid.UUID, pgsql.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: review deleted successfully",
			setupMock: func(mock *repositorymock.MockReviewWriteQueries, id uuid.UUID, tx pgsql.DBTX) {
				mock.EXPECT().DeleteReview(ctx, tx, id).Return(int64(1), nil)
			},
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockReviewWriteQueries, id uuid.UUID, tx pgsql.DBTX) {
				mock.EXPECT().DeleteReview(ctx, tx, id).Return(int64(0), errors.New("database connection error"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
		{
			name: "error: review not found",
			setupMock: func(mock *repositorymock.MockReviewWriteQueries, id uuid.UUID, tx pgsql.DBTX) {
				mock.EXPECT().DeleteReview(ctx, tx, id).Return(int64(0), nil)
			},
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockReviewWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewReviewRepository(mockQueries, mockDB)

			tc.setupMock(mockQueries, reviewID, mockDB)

			actualError := repo.Delete(ctx, mockDB, reviewID)

			if tc.expectedError {
				require.Error(t, actualError)
				if tc.expectKind != "" {
					assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
				}
			} else {
				assert.NoError(t, actualError)
			}
		})
	}
}
