package repository

import (
	"context"
	"encoding/json"
	"time"

	"cosme-store/internal/infra"
	"cosme-store/internal/infra/pgsql"
	"cosme-store/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type OutboxQueries interface {
	InsertOrderEvent(ctx context.Context, db pgsql.DBTX, e pgsql.OrderEventRow) error
}

// OutboxRepository appends order events in the same transaction as the
// order change they describe. The outbox poller publishes them later.
type OutboxRepository struct {
	queries OutboxQueries
	db      pgsql.DBTX
}

func NewOutboxRepository(queries OutboxQueries, db pgsql.DBTX) *OutboxRepository {
	return &OutboxRepository{queries: queries, db: db}
}

func (r *OutboxRepository) Append(ctx context.Context, tx pgsql.DBTX, orderID uuid.UUID, eventType string, payload any, at time.Time) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return infra.WrapRepoErr("failed to encode "+eventType+" payload", err, infra.KindDBFailure)
	}
	err = r.queries.InsertOrderEvent(ctx, tx, pgsql.OrderEventRow{
		ID:        uuid.New(),
		OrderID:   orderID,
		EventType: eventType,
		Payload:   body,
		CreatedAt: pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to append "+eventType+" event", err)
	}
	return nil
}
