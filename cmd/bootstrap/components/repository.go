package components

import (
	"context"

	"cosme-store/internal/infra/cache"
	"cosme-store/internal/infra/cartstore"
	"cosme-store/internal/infra/geography"
	"cosme-store/internal/infra/sessionstore"
	"cosme-store/internal/pkg/clock"
	"cosme-store/internal/pkg/config"
	"cosme-store/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx"
)

const geographyCachePrefix = "geo:"

// RepositoryModule provides the stores that live outside Postgres.
var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			NewCartStore,
			fx.As(fx.Self()),
			fx.As(new(shared.CartStore)),
		),
		fx.Annotate(
			sessionstore.NewRedisSessionStore,
			fx.As(new(shared.SessionStore)),
		),
		fx.Annotate(
			NewGeographyClient,
			fx.As(new(shared.Geography)),
		),
	),
	fx.Invoke(ensureCartIndexes),
)

func NewCartStore(db *mongo.Database, cfg config.Config, clk clock.Clock) *cartstore.MongoCartStore {
	return cartstore.NewMongoCartStore(db, cfg.Mongo.CartCollection, clk)
}

func NewGeographyClient(client *redis.Client, cfg config.Config) *geography.Client {
	return geography.NewClient(geography.Settings{
		BaseURL:            cfg.Geography.BaseURL,
		Timeout:            cfg.Geography.Timeout,
		BreakerMaxFailures: cfg.Geography.BreakerMaxFailures,
		BreakerOpenTimeout: cfg.Geography.BreakerOpenTimeout,
	}, cache.NewRedisCache(client, geographyCachePrefix))
}

func ensureCartIndexes(lc fx.Lifecycle, store *cartstore.MongoCartStore) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return store.CreateIndexes(ctx)
		},
	})
}
