//go:build unit

package outbox_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"cosme-store/internal/infra/outbox"
	"cosme-store/internal/infra/pgsql"
	"cosme-store/internal/pkg/clock"
	"cosme-store/internal/pkg/pgconv"
	"cosme-store/tests/common/fakes"
	outboxmock "cosme-store/tests/mock/outbox"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type recordingWriter struct {
	msgs []kafka.Message
	err  error
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func TestPoller_PublishBatch(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
	orderID := uuid.New()
	rows := []pgsql.OrderEventRow{
		{ID: uuid.New(), OrderID: orderID, EventType: "order.created", Payload: []byte(`{"status":"pending"}`), CreatedAt: pgconv.TimeToPgtype(now.Add(-time.Minute))},
		{ID: uuid.New(), OrderID: orderID, EventType: "order.cancelled", Payload: []byte(`{"status":"cancelled"}`), CreatedAt: pgconv.TimeToPgtype(now)},
	}

	t.Run("sends and marks the batch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		queries := outboxmock.NewMockEventQueries(ctrl)
		writer := &recordingWriter{}
		uow := fakes.NewUnitOfWork()
		p := outbox.NewPoller(uow, queries, writer, clock.NewMockClock(now), time.Second, 50)

		queries.EXPECT().FetchUnpublishedEvents(gomock.Any(), gomock.Any(), int32(50)).Return(rows, nil)
		queries.EXPECT().MarkEventsPublished(gomock.Any(), gomock.Any(), []uuid.UUID{rows[0].ID, rows[1].ID}, pgconv.TimeToPgtype(now)).Return(nil)

		n, err := p.PublishBatch(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
		require.Len(t, writer.msgs, 2)
		assert.Equal(t, []byte(orderID.String()), writer.msgs[0].Key)
		assert.Equal(t, rows[1].Payload, writer.msgs[1].Value)
		assert.Equal(t, kafka.Header{Key: "event_type", Value: []byte("order.created")}, writer.msgs[0].Headers[0])
		assert.Equal(t, 1, uow.Commits)
	})

	t.Run("nothing pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		queries := outboxmock.NewMockEventQueries(ctrl)
		writer := &recordingWriter{}
		p := outbox.NewPoller(fakes.NewUnitOfWork(), queries, writer, clock.NewMockClock(now), time.Second, 50)

		queries.EXPECT().FetchUnpublishedEvents(gomock.Any(), gomock.Any(), int32(50)).Return(nil, nil)

		n, err := p.PublishBatch(ctx)
		require.NoError(t, err)
		assert.Zero(t, n)
		assert.Empty(t, writer.msgs)
	})

	t.Run("broker failure leaves events unpublished", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		queries := outboxmock.NewMockEventQueries(ctrl)
		brokerDown := errors.New("kafka: leader not available")
		uow := fakes.NewUnitOfWork()
		p := outbox.NewPoller(uow, queries, &recordingWriter{err: brokerDown}, clock.NewMockClock(now), time.Second, 50)

		queries.EXPECT().FetchUnpublishedEvents(gomock.Any(), gomock.Any(), int32(50)).Return(rows, nil)
		queries.EXPECT().MarkEventsPublished(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		n, err := p.PublishBatch(ctx)
		assert.ErrorIs(t, err, brokerDown)
		assert.Zero(t, n)
		assert.Equal(t, 1, uow.Rollbacks)
	})
}

func TestPoller_RunStopsWithContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	queries := outboxmock.NewMockEventQueries(ctrl)
	queries.EXPECT().FetchUnpublishedEvents(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	p := outbox.NewPoller(fakes.NewUnitOfWork(), queries, &recordingWriter{}, clock.NewMockClock(time.Now()), 5*time.Millisecond, 10)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		p.Run(ctx)
		close(done)
	}()
	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("poller did not stop after cancel")
	}
}
