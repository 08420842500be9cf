// Package outbox publishes order events written by the order unit of work
// to Kafka. Each batch is locked, sent and marked inside one transaction so
// a crash re-sends instead of losing events.
package outbox

import (
	"context"
	"log/slog"
	"time"

	"cosme-store/internal/infra/pgsql"
	"cosme-store/internal/pkg/clock"
	"cosme-store/internal/pkg/errs"
	"cosme-store/internal/pkg/pgconv"
	"cosme-store/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/segmentio/kafka-go"
)

type EventQueries interface {
	FetchUnpublishedEvents(ctx context.Context, db pgsql.DBTX, limit int32) ([]pgsql.OrderEventRow, error)
	MarkEventsPublished(ctx context.Context, db pgsql.DBTX, ids []uuid.UUID, at pgtype.Timestamptz) error
}

// MessageWriter is satisfied by *kafka.Writer.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

type Poller struct {
	uow       shared.UnitOfWork
	queries   EventQueries
	writer    MessageWriter
	clock     clock.Clock
	interval  time.Duration
	batchSize int32
}

func NewPoller(uow shared.UnitOfWork, queries EventQueries, writer MessageWriter, clk clock.Clock, interval time.Duration, batchSize int) *Poller {
	return &Poller{
		uow:       uow,
		queries:   queries,
		writer:    writer,
		clock:     clk,
		interval:  interval,
		batchSize: int32(batchSize),
	}
}

func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
	}
}

// Run polls until ctx is done.
func (p *Poller) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			n, err := p.PublishBatch(ctx)
			if err != nil {
				slog.Error("outbox publish failed", "error", err.Error())
				continue
			}
			if n > 0 {
				slog.Debug("outbox events published", "count", n)
			}
		case <-ctx.Done():
			return
		}
	}
}

// PublishBatch sends one batch of pending events and returns how many were sent.
// Keying by order id keeps the events of one order in one partition.
func (p *Poller) PublishBatch(ctx context.Context) (int, error) {
	var sent int
	err := p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		sent = 0
		events, err := p.queries.FetchUnpublishedEvents(ctx, tx.DB(), p.batchSize)
		if err != nil {
			return errs.Wrap(err, "fetch unpublished events")
		}
		if len(events) == 0 {
			return nil
		}

		msgs := make([]kafka.Message, len(events))
		ids := make([]uuid.UUID, len(events))
		for i, e := range events {
			msgs[i] = kafka.Message{
				Key:   []byte(e.OrderID.String()),
				Value: e.Payload,
				Headers: []kafka.Header{
					{Key: "event_type", Value: []byte(e.EventType)},
					{Key: "event_id", Value: []byte(e.ID.String())},
				},
				Time: pgconv.TimeFromPgtype(e.CreatedAt),
			}
			ids[i] = e.ID
		}
		if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
			return errs.Wrap(err, "write to kafka")
		}
		if err := p.queries.MarkEventsPublished(ctx, tx.DB(), ids, pgconv.TimeToPgtype(p.clock.Now())); err != nil {
			return errs.Wrap(err, "mark events published")
		}
		sent = len(events)
		return nil
	})
	return sent, err
}
