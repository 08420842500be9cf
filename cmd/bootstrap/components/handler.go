package components

import (
	"cosme-store/internal/handler"
	"cosme-store/internal/handler/api"
	"cosme-store/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewAccountHandler,
		api.NewCatalogHandler,
		api.NewReviewHandler,
		api.NewCartHandler,
		api.NewOrderHandler,
		api.NewGeographyHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
