package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"coach-booking-engine/internal/handler/api"
	"coach-booking-engine/internal/handler/middleware"
	"coach-booking-engine/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	requestHandler *api.RequestHandler,
	bookingHandler *api.BookingHandler,
	webhookHandler *api.WebhookHandler,
	authMiddleware *middleware.AuthMiddleware,
	rateLimiter *middleware.RateLimiter,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, requestHandler, bookingHandler, webhookHandler, authMiddleware, rateLimiter)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	requestHandler *api.RequestHandler,
	bookingHandler *api.BookingHandler,
	webhookHandler *api.WebhookHandler,
	authMiddleware *middleware.AuthMiddleware,
	rateLimiter *middleware.RateLimiter,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Provider ingress authenticates by HMAC signature, never by bearer token.
	webhooks := engine.Group("/webhooks")
	{
		addRoutes(webhooks, []route{
			{Method: http.MethodPost, Path: "/payments", Handler: webhookHandler.HandlePaymentWebhook},
			{Method: http.MethodPost, Path: "/video", Handler: webhookHandler.HandleVideoWebhook},
		})
	}

	apiGroup := engine.Group("/api")
	{
		requests := apiGroup.Group("/requests")
		requests.Use(authMiddleware.RequireAuth())
		{
			addRoutes(requests, []route{
				{Method: http.MethodPost, Path: "", Handler: requestHandler.CreateRequest, Mw: []gin.HandlerFunc{rateLimiter.Limit()}},
				{Method: http.MethodGet, Path: "", Handler: requestHandler.ListRequests},
				{Method: http.MethodGet, Path: "/:id", Handler: requestHandler.GetRequest},
				{Method: http.MethodPost, Path: "/:id/accept", Handler: requestHandler.AcceptRequest, Mw: []gin.HandlerFunc{rateLimiter.Limit()}},
				{Method: http.MethodPost, Path: "/:id/decline", Handler: requestHandler.DeclineRequest, Mw: []gin.HandlerFunc{rateLimiter.Limit()}},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: requestHandler.CancelRequest, Mw: []gin.HandlerFunc{rateLimiter.Limit()}},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodGet, Path: "", Handler: bookingHandler.ListBookings},
				{Method: http.MethodGet, Path: "/:id", Handler: bookingHandler.GetBooking},
				{Method: http.MethodPost, Path: "/:id/session", Handler: bookingHandler.AttachSession, Mw: []gin.HandlerFunc{rateLimiter.Limit()}},
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
