package components

import (
	"coach-booking-engine/internal/handler"
	"coach-booking-engine/internal/handler/api"
	"coach-booking-engine/internal/handler/middleware"
	"coach-booking-engine/internal/pkg/clock"
	"coach-booking-engine/internal/pkg/config"
	"coach-booking-engine/internal/pkg/webhooksig"
	"coach-booking-engine/internal/usecase/commands"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewRequestHandler,
		api.NewBookingHandler,
		NewWebhookHandler,
		middleware.NewAuthMiddleware,
		NewRateLimiter,
	),
	fx.Invoke(handler.NewRouter),
)

// NewWebhookHandler builds one verifier per provider; each provider signs
// with its own shared secret and tolerance.
func NewWebhookHandler(webhookCommands commands.WebhookCommands, cfg config.Config, clk clock.Clock) *api.WebhookHandler {
	paymentsVerifier := webhooksig.NewVerifier(cfg.Payments.WebhookSecret, cfg.Payments.WebhookTolerance)
	videoVerifier := webhooksig.NewVerifier(cfg.Video.Secret, cfg.Video.Tolerance)
	return api.NewWebhookHandler(webhookCommands, paymentsVerifier, videoVerifier, clk)
}

func NewRateLimiter(cfg config.Config) *middleware.RateLimiter {
	return middleware.NewRateLimiter(cfg.RateLimit)
}
