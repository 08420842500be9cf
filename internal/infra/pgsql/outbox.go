package pgsql

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type OrderEventRow struct {
	ID        uuid.UUID
	OrderID   uuid.UUID
	EventType string
	Payload   []byte
	CreatedAt pgtype.Timestamptz
}

const insertOrderEvent = `
INSERT INTO order_events (id, order_id, event_type, payload, created_at)
VALUES ($1, $2, $3, $4, $5)`

func (q *Queries) InsertOrderEvent(ctx context.Context, db DBTX, e OrderEventRow) error {
	_, err := db.Exec(ctx, insertOrderEvent, e.ID, e.OrderID, e.EventType, e.Payload, e.CreatedAt)
	return err
}

const fetchUnpublishedEvents = `
SELECT id, order_id, event_type, payload, created_at
FROM order_events
WHERE published_at IS NULL
ORDER BY created_at, id
LIMIT $1
FOR UPDATE SKIP LOCKED`

// FetchUnpublishedEvents locks a batch of pending events; concurrent pollers
// skip each other's rows.
func (q *Queries) FetchUnpublishedEvents(ctx context.Context, db DBTX, limit int32) ([]OrderEventRow, error) {
	rows, err := db.Query(ctx, fetchUnpublishedEvents, limit)
	if err != nil {
		return nil, err
	}
	return collect(rows, func(row pgx.Row) (OrderEventRow, error) {
		var e OrderEventRow
		err := row.Scan(&e.ID, &e.OrderID, &e.EventType, &e.Payload, &e.CreatedAt)
		return e, err
	})
}

const markEventsPublished = `UPDATE order_events SET published_at = $2 WHERE id = ANY($1::uuid[])`

func (q *Queries) MarkEventsPublished(ctx context.Context, db DBTX, ids []uuid.UUID, at pgtype.Timestamptz) error {
	_, err := db.Exec(ctx, markEventsPublished, ids, at)
	return err
}
