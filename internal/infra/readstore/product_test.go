//go:build unit

package readstore_test

import (
	"context"
	"testing"

	"cosme-store/internal/infra"
	"cosme-store/internal/infra/pgsql"
	"cosme-store/internal/infra/readstore"
	"cosme-store/internal/usecase/queries"
	readstoremock "cosme-store/tests/mock/readstore"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestProductReadStore_FindByID(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		setupMock  func(*readstoremock.MockProductReadQueries)
		want       *queries.ProductView
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: variants and lowest price",
			setupMock: func(m *readstoremock.MockProductReadQueries) {
				m.EXPECT().GetProduct(ctx, gomock.Any(), "prod-toner").
					Return(pgsql.ProductRow{ID: "prod-toner", Name: "Rose Toner", Category: "skincare"}, nil)
				m.EXPECT().ListVariantsByProducts(ctx, gomock.Any(), []string{"prod-toner"}).Return([]pgsql.VariantRow{
					{ProductID: "prod-toner", Position: 0, Size: "200ml", Price: 250000, StockQty: 0},
					{ProductID: "prod-toner", Position: 1, Size: "100ml", Price: 150000, StockQty: 3},
				}, nil)
			},
			want: &queries.ProductView{
				ID:        "prod-toner",
				Name:      "Rose Toner",
				Category:  "skincare",
				PriceFrom: 150000,
				Variants: []queries.VariantView{
					{Size: "200ml", Price: 250000, StockQty: 0, InStock: false},
					{Size: "100ml", Price: 150000, StockQty: 3, InStock: true},
				},
			},
		},
		{
			name: "error: product not found",
			setupMock: func(m *readstoremock.MockProductReadQueries) {
				m.EXPECT().GetProduct(ctx, gomock.Any(), "prod-toner").Return(pgsql.ProductRow{}, pgx.ErrNoRows)
			},
			expectKind: infra.KindNotFound,
		},
		{
			name: "error: variants query fails",
			setupMock: func(m *readstoremock.MockProductReadQueries) {
				m.EXPECT().GetProduct(ctx, gomock.Any(), "prod-toner").Return(pgsql.ProductRow{ID: "prod-toner"}, nil)
				m.EXPECT().ListVariantsByProducts(ctx, gomock.Any(), gomock.Any()).Return(nil, errDBConnectionLost)
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := readstoremock.NewMockProductReadQueries(ctrl)
			store := readstore.NewProductReadStore(mockQueries, &mockDBTX{})
			tc.setupMock(mockQueries)

			got, err := store.FindByID(ctx, "prod-toner")

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, got, cmpopts.IgnoreFields(queries.ProductView{}, "CreatedAt", "UpdatedAt")); diff != "" {
				t.Errorf("view mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestProductReadStore_ListByCategory(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockProductReadQueries(ctrl)
	store := readstore.NewProductReadStore(mockQueries, &mockDBTX{})

	mockQueries.EXPECT().ListProductsByCategory(ctx, gomock.Any(), "makeup").Return([]pgsql.ProductRow{
		{ID: "prod-lip", Name: "Velvet Lip"},
		{ID: "prod-mascara", Name: "Volume Mascara"},
	}, nil)
	mockQueries.EXPECT().ListVariantsByProducts(ctx, gomock.Any(), []string{"prod-lip", "prod-mascara"}).Return([]pgsql.VariantRow{
		{ProductID: "prod-lip", Size: "3g", Price: 180000, StockQty: 2},
		{ProductID: "prod-mascara", Size: "8ml", Price: 220000, StockQty: 9},
		{ProductID: "prod-mascara", Size: "4ml", Price: 120000, StockQty: 1},
	}, nil)

	got, err := store.ListByCategory(ctx, "makeup")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Len(t, got[0].Variants, 1)
	assert.Len(t, got[1].Variants, 2)
	assert.Equal(t, int64(120000), got[1].PriceFrom)
}

func TestProductReadStore_ListEmpty(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockProductReadQueries(ctrl)
	mockQueries.EXPECT().ListProducts(ctx, gomock.Any()).Return(nil, nil)

	got, err := readstore.NewProductReadStore(mockQueries, &mockDBTX{}).List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
