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
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func voucherRow(code string) pgsql.VoucherRow {
	return pgsql.VoucherRow{
		ID:            uuid.New(),
		Code:          code,
		Type:          "product",
		DiscountType:  "percentage",
		DiscountValue: "12.50",
		MinOrder:      100000,
		StartDate:     pgconv.TimeToPgtype(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)),
		EndDate:       pgconv.TimeToPgtype(time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)),
		Status:        "active",
		UsageCount:    7,
		UsageLimit:    pgtype.Int4{Int32: 10, Valid: true},
	}
}

func TestVoucherReadStore_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("success: code looked up upper-cased", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockVoucherReadQueries(ctrl)
		mockQueries.EXPECT().GetVoucherByCode(ctx, gomock.Any(), "SALE10").Return(voucherRow("SALE10"), nil)

		v, err := readstore.NewVoucherReadStore(mockQueries, &mockDBTX{}).Load(ctx, "  sale10 ")
		require.NoError(t, err)
		assert.Equal(t, "SALE10", v.Code())
		assert.Equal(t, "12.5", v.DiscountValue().String())
		assert.Equal(t, 7, v.UsageCount())
	})

	t.Run("error: unknown code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockVoucherReadQueries(ctrl)
		mockQueries.EXPECT().GetVoucherByCode(ctx, gomock.Any(), "NOPE").Return(pgsql.VoucherRow{}, pgx.ErrNoRows)

		_, err := readstore.NewVoucherReadStore(mockQueries, &mockDBTX{}).Load(ctx, "nope")
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("error: unparsable discount value", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockVoucherReadQueries(ctrl)
		bad := voucherRow("SALE10")
		bad.DiscountValue = "ten"
		mockQueries.EXPECT().GetVoucherByCode(ctx, gomock.Any(), "SALE10").Return(bad, nil)

		_, err := readstore.NewVoucherReadStore(mockQueries, &mockDBTX{}).Load(ctx, "SALE10")
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestVoucherReadStore_FindActive(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockVoucherReadQueries(ctrl)

	unlimited := voucherRow("FREESHIP")
	unlimited.Type = "shipping"
	unlimited.UsageLimit = pgtype.Int4{}
	mockQueries.EXPECT().ListActiveVouchers(ctx, gomock.Any(), pgconv.TimeToPgtype(at)).
		Return([]pgsql.VoucherRow{voucherRow("SALE10"), unlimited}, nil)

	views, err := readstore.NewVoucherReadStore(mockQueries, &mockDBTX{}).FindActive(ctx, at)
	require.NoError(t, err)
	require.Len(t, views, 2)
	require.NotNil(t, views[0].Remaining)
	assert.Equal(t, 3, *views[0].Remaining)
	assert.Nil(t, views[1].Remaining)
}
