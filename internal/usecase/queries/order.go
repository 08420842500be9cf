package queries

import (
	"context"
	"time"

	"cosme-store/internal/infra"

	"github.com/google/uuid"
)

type OrderReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*OrderView, error)
	FindByUserFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*OrderListItem, error)
	FindByUserKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*OrderListItem, error)
}

type OrderQueries interface {
	// GetByID returns the order if it belongs to actorID or the actor is staff.
	GetByID(ctx context.Context, orderID, actorID uuid.UUID, actorRole string) (*OrderView, error)
	ListByUser(ctx context.Context, userID uuid.UUID, cursor *Cursor, limit int) ([]*OrderListItem, *Cursor, error)
}

type orderQueriesImpl struct {
	repo OrderReadStore
}

func NewOrderQueries(repo OrderReadStore) OrderQueries {
	return &orderQueriesImpl{repo: repo}
}

func (q *orderQueriesImpl) GetByID(ctx context.Context, orderID, actorID uuid.UUID, actorRole string) (*OrderView, error) {
	o, err := q.repo.FindByID(ctx, orderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	// Someone else's order is reported as missing rather than forbidden.
	if o.UserID != actorID && !IsStaff(actorRole) {
		return nil, ErrOrderNotFound
	}
	return o, nil
}

func (q *orderQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID, cursor *Cursor, limit int) ([]*OrderListItem, *Cursor, error) {
	limit = ValidateLimit(limit)
	var rows []*OrderListItem
	var err error
	if cursor.isFirstPage() {
		rows, err = q.repo.FindByUserFirstPage(ctx, userID, int32(limit+1))
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.repo.FindByUserKeyset(ctx, userID, lastCreatedAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}
	rows, next := page(rows, limit, func(o *OrderListItem) (time.Time, uuid.UUID) { return o.CreatedAt, o.ID })
	return rows, next, nil
}
