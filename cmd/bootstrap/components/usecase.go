package components

import (
	"coach-booking-engine/internal/pkg/clock"
	"coach-booking-engine/internal/pkg/config"
	"coach-booking-engine/internal/usecase/commands"
	"coach-booking-engine/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewPaymentCapturer,
		commands.NewAttendanceGate,
		commands.NewRequestUseCase,
		commands.NewBookingUseCase,
		commands.NewWebhookUseCase,
		NewPendingSweeper,
	),
)

func NewPendingSweeper(requestRepo commands.RequestRepository, txr commands.TxRunner, clk clock.Clock, cfg config.Config) *commands.PendingSweeper {
	return commands.NewPendingSweeper(requestRepo, txr, clk, cfg.Requests.PendingTTL)
}

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewRequestQueries,
		queries.NewBookingQueries,
	),
)
