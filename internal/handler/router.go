package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"cosme-store/internal/domain/user"
	"cosme-store/internal/handler/api"
	"cosme-store/internal/handler/middleware"
	"cosme-store/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	fx.In

	Auth      *api.AuthHandler
	Account   *api.AccountHandler
	Catalog   *api.CatalogHandler
	Review    *api.ReviewHandler
	Cart      *api.CartHandler
	Order     *api.OrderHandler
	Geography *api.GeographyHandler
	AuthMw    *middleware.AuthMiddleware
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAuth := h.AuthMw.RequireAuth()
	adminOnly := h.AuthMw.RequireRoleAtLeast(user.RoleAdmin)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		addRoutes(auth, []route{
			{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
			{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
			{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout, Mw: []gin.HandlerFunc{requireAuth}},
			{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me, Mw: []gin.HandlerFunc{requireAuth}},
		})

		account := apiGroup.Group("/account", requireAuth)
		addRoutes(account, []route{
			{Method: http.MethodPatch, Path: "/profile", Handler: h.Account.UpdateProfile},
		})

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/products", Handler: h.Catalog.ListProducts},
			{Method: http.MethodGet, Path: "/products/:id", Handler: h.Catalog.GetProduct},
			{Method: http.MethodGet, Path: "/products/:id/reviews", Handler: h.Review.ListByProduct},
			{Method: http.MethodGet, Path: "/products/:id/rating-stats", Handler: h.Review.RatingStats},
			{Method: http.MethodPost, Path: "/products/:id/reviews", Handler: h.Review.Create, Mw: []gin.HandlerFunc{requireAuth}},
			{Method: http.MethodPut, Path: "/reviews/:id", Handler: h.Review.Update, Mw: []gin.HandlerFunc{requireAuth}},
			{Method: http.MethodDelete, Path: "/reviews/:id", Handler: h.Review.Delete, Mw: []gin.HandlerFunc{requireAuth}},
			{Method: http.MethodGet, Path: "/vouchers", Handler: h.Catalog.ListVouchers},
		})

		cart := apiGroup.Group("/cart", requireAuth)
		addRoutes(cart, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Cart.Get},
			{Method: http.MethodPut, Path: "", Handler: h.Cart.Replace},
			{Method: http.MethodPost, Path: "/items", Handler: h.Cart.AddItem},
			{Method: http.MethodPatch, Path: "/items/:lineId", Handler: h.Cart.UpdateQuantity},
			{Method: http.MethodDelete, Path: "/items/:lineId", Handler: h.Cart.RemoveItem},
			{Method: http.MethodPost, Path: "/selection/toggle/:lineId", Handler: h.Cart.ToggleSelect},
			{Method: http.MethodPost, Path: "/selection/select-all", Handler: h.Cart.SelectAll},
			{Method: http.MethodPost, Path: "/selection/deselect-all", Handler: h.Cart.DeselectAll},
			{Method: http.MethodPut, Path: "/selection", Handler: h.Cart.SetSelection},
			{Method: http.MethodPost, Path: "/vouchers", Handler: h.Cart.ApplyVoucher},
			{Method: http.MethodDelete, Path: "/vouchers/:type", Handler: h.Cart.RemoveVoucher},
		})

		orders := apiGroup.Group("", requireAuth)
		addRoutes(orders, []route{
			{Method: http.MethodPost, Path: "/checkout", Handler: h.Order.Checkout},
			{Method: http.MethodGet, Path: "/orders", Handler: h.Order.List},
			{Method: http.MethodGet, Path: "/orders/:id", Handler: h.Order.Get},
			{Method: http.MethodPost, Path: "/orders/:id/cancel", Handler: h.Order.Cancel},
		})

		admin := apiGroup.Group("/admin", requireAuth, adminOnly)
		addRoutes(admin, []route{
			{Method: http.MethodPatch, Path: "/orders/:id/status", Handler: h.Order.AdvanceStatus},
			{Method: http.MethodPost, Path: "/products/import", Handler: h.Catalog.ImportProducts},
		})

		geo := apiGroup.Group("/geo")
		addRoutes(geo, []route{
			{Method: http.MethodGet, Path: "/provinces", Handler: h.Geography.Provinces},
			{Method: http.MethodGet, Path: "/provinces/:code/districts", Handler: h.Geography.Districts},
			{Method: http.MethodGet, Path: "/districts/:code/wards", Handler: h.Geography.Wards},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
