package components

import (
	"cosme-store/internal/pkg/clock"
	"cosme-store/internal/pkg/config"
	"cosme-store/internal/pkg/keylock"
	"cosme-store/internal/usecase/commands"
	"cosme-store/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

// Cart and checkout commands must share one Locker so a checkout and a cart
// edit of the same user never interleave.
var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	keylock.New,
	commands.NewStockLedger,
	func(cfg config.Config) commands.CartSettings {
		return commands.CartSettings{
			ShippingFee: cfg.Checkout.ShippingFee,
			SaveRetries: cfg.Checkout.CartSaveRetries,
		}
	},
	func(cfg config.Config) commands.SessionSettings {
		return commands.SessionSettings{
			IdleTimeout: cfg.Session.IdleTimeout,
			MaxLifetime: cfg.Session.MaxLifetime,
		}
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewAccountCommands,
		commands.NewCartCommands,
		commands.NewCheckoutCommands,
		commands.NewOrderCommands,
		commands.NewReviewUseCase,
		commands.NewCatalogCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewProductQueries,
		queries.NewVoucherQueries,
		queries.NewOrderQueries,
		queries.NewReviewQueries,
		queries.NewGeographyQueries,
	),
)
