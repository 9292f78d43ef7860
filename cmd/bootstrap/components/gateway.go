package components

import (
	"log/slog"

	"coach-booking-engine/internal/infra/notify"
	"coach-booking-engine/internal/infra/paymentgw"
	"coach-booking-engine/internal/pkg/config"
	"coach-booking-engine/internal/usecase/commands"

	"go.uber.org/fx"
)

// GatewayModule wires the outbound clients: the payment processor API and
// the best-effort conversation notifier.
var GatewayModule = fx.Module("gateway",
	fx.Provide(
		fx.Annotate(
			NewPaymentGateway,
			fx.As(new(commands.PaymentGateway)),
		),
		fx.Annotate(
			NewNotifier,
			fx.As(new(commands.Notifier)),
		),
	),
)

func NewPaymentGateway(cfg config.Config) *paymentgw.Client {
	return paymentgw.NewClient(cfg.Payments)
}

func NewNotifier(cfg config.Config, logger *slog.Logger) *notify.Client {
	return notify.NewClient(cfg.Notifier, logger)
}
