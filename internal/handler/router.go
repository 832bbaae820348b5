package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"parkops/internal/handler/api"
	"parkops/internal/handler/middleware"
	"parkops/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth       *api.AuthHandler
	Assignment *api.AssignmentHandler
	Lot        *api.LotHandler
	Product    *api.ProductHandler
	Sale       *api.SaleHandler
	Vehicle    *api.VehicleHandler
	Prize      *api.PrizeHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		protected := apiGroup.Group("")
		protected.Use(authMiddleware.RequireAuth())
		{
			lots := protected.Group("/lots")
			addRoutes(lots, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Lot.Create},
				{Method: http.MethodGet, Path: "", Handler: h.Lot.List},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Lot.Update},
				{Method: http.MethodGet, Path: "/:id/assignments/active", Handler: h.Assignment.ListActive},
				{Method: http.MethodGet, Path: "/:id/assignments/completed", Handler: h.Assignment.ListCompleted},
				{Method: http.MethodGet, Path: "/:id/products", Handler: h.Product.ListByLot},
				{Method: http.MethodGet, Path: "/:id/sales", Handler: h.Sale.ReportByLot},
			})

			assignments := protected.Group("/assignments")
			addRoutes(assignments, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Assignment.Enter},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Assignment.Checkout},
			})

			vehicles := protected.Group("/vehicles")
			addRoutes(vehicles, []route{
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Vehicle.Edit},
				{Method: http.MethodGet, Path: "/plate/:plate", Handler: h.Vehicle.GetByPlate},
				{Method: http.MethodPost, Path: "/redeem", Handler: h.Vehicle.Redeem},
			})

			products := protected.Group("/products")
			addRoutes(products, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Product.Create},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Product.Get},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Product.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Product.Delete},
				{Method: http.MethodGet, Path: "/:id/sales", Handler: h.Sale.ReportByProduct},
			})

			sales := protected.Group("/sales")
			addRoutes(sales, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Sale.Sell},
			})

			prizes := protected.Group("/prizes")
			addRoutes(prizes, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Prize.List},
				{Method: http.MethodPost, Path: "", Handler: h.Prize.Create},
			})
		}
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
