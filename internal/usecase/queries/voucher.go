package queries

import (
	"context"
	"time"

	"cosme-store/internal/pkg/clock"
)

type VoucherReadStore interface {
	FindActive(ctx context.Context, at time.Time) ([]*VoucherView, error)
}

type VoucherQueries interface {
	// ListActive returns vouchers that are active, inside their validity
	// window and not exhausted.
	ListActive(ctx context.Context) ([]*VoucherView, error)
}

type voucherQueriesImpl struct {
	repo  VoucherReadStore
	clock clock.Clock
}

func NewVoucherQueries(repo VoucherReadStore, clk clock.Clock) VoucherQueries {
	return &voucherQueriesImpl{repo: repo, clock: clk}
}

func (q *voucherQueriesImpl) ListActive(ctx context.Context) ([]*VoucherView, error) {
	vs, err := q.repo.FindActive(ctx, q.clock.Now())
	if err != nil {
		return nil, err
	}
	out := vs[:0]
	for _, v := range vs {
		if v.Remaining != nil && *v.Remaining <= 0 {
			continue
		}
		out = append(out, v)
	}
	return out, nil
}
