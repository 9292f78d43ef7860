package components

import (
	"coach-booking-engine/internal/infra/readstore"
	repo_impl "coach-booking-engine/internal/infra/repository"
	"coach-booking-engine/internal/usecase/commands"
	"coach-booking-engine/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewTxRunner,
			fx.As(new(commands.TxRunner)),
		),
		fx.Annotate(
			repo_impl.NewRequestRepository,
			fx.As(new(commands.RequestRepository)),
		),
		fx.Annotate(
			repo_impl.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
		),
		fx.Annotate(
			repo_impl.NewWebhookEventRepository,
			fx.As(new(commands.WebhookEventRepository)),
		),
		fx.Annotate(
			repo_impl.NewFeeConfigRepository,
			fx.As(new(commands.FeeConfigRepository)),
		),
		fx.Annotate(
			repo_impl.NewPaymentProfileRepository,
			fx.As(new(commands.PaymentProfileRepository)),
		),
		// Read-side repositories for queries
		fx.Annotate(
			readstore.NewRequestReadStore,
			fx.As(new(queries.RequestViewRepo)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingViewRepo)),
		),
	),
)
