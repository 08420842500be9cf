package bootstrap

import (
	"context"
	"log/slog"

	"cosme-store/internal/infra/outbox"
	"cosme-store/internal/infra/pgsql"
	"cosme-store/internal/pkg/clock"
	"cosme-store/internal/pkg/config"
	"cosme-store/internal/usecase/shared"

	"go.uber.org/fx"
)

var KafkaModule = fx.Module("kafka",
	fx.Invoke(startOutboxPoller),
)

// startOutboxPoller publishes order events while the app runs. Without
// brokers the events simply accumulate in the outbox table.
func startOutboxPoller(lc fx.Lifecycle, cfg config.Config, uow shared.UnitOfWork, q *pgsql.Queries, clk clock.Clock, logger *slog.Logger) {
	if !cfg.Kafka.Enabled() {
		logger.Warn("kafka brokers not configured, order events stay in the outbox")
		return
	}

	writer := outbox.NewKafkaWriter(cfg.Kafka.Brokers, cfg.Kafka.Topic)
	poller := outbox.NewPoller(uow, q, writer, clk, cfg.Kafka.PollInterval, cfg.Kafka.BatchSize)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				poller.Run(ctx)
			}()
			logger.Info("outbox poller started", "topic", cfg.Kafka.Topic, "interval", cfg.Kafka.PollInterval)
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
			}
			return writer.Close()
		},
	})
}
