package commands

import (
	"context"
	"time"

	"coach-booking-engine/internal/domain/booking"
	"coach-booking-engine/internal/domain/request"
	"coach-booking-engine/internal/domain/webhook"
	"coach-booking-engine/internal/infra/db"
	"coach-booking-engine/internal/infra/paymentgw"
	"coach-booking-engine/internal/infra/repository"

	"github.com/google/uuid"
)

// TxRunner executes fn inside one retryable transaction. It is the only
// way command code opens a transaction.
type TxRunner interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error
}

type RequestRepository interface {
	Create(ctx context.Context, tx db.DBTX, req *request.BookingRequest) error
	FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*request.BookingRequest, error)
	CompareAndTransition(ctx context.Context, id uuid.UUID, expected, next request.Status) (repository.TransitionResult, error)
	CompareAndTransitionTx(ctx context.Context, tx db.DBTX, id uuid.UUID, expected, next request.Status) (repository.TransitionResult, error)
	ExpirePending(ctx context.Context, tx db.DBTX, cutoff time.Time) (int64, error)
}

type BookingRepository interface {
	Create(ctx context.Context, tx db.DBTX, b *booking.Booking) error
	FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*booking.Booking, error)
	FindByRequestID(ctx context.Context, tx db.DBTX, requestID uuid.UUID) (*booking.Booking, error)
	FindByExternalSessionID(ctx context.Context, tx db.DBTX, sessionID string) (*booking.Booking, error)
	UpdateFees(ctx context.Context, tx db.DBTX, id uuid.UUID, commissionCents, serviceFeeCents int64) error
	AttachExternalSession(ctx context.Context, tx db.DBTX, id uuid.UUID, sessionID string) error
	CompareAndTransition(ctx context.Context, id uuid.UUID, expected, next booking.Status, extras repository.TransitionExtras) (repository.TransitionResult, error)
	CompareAndTransitionTx(ctx context.Context, tx db.DBTX, id uuid.UUID, expected, next booking.Status, extras repository.TransitionExtras) (repository.TransitionResult, error)
}

type WebhookEventRepository interface {
	InsertIgnore(ctx context.Context, tx db.DBTX, ev webhook.Event) (bool, error)
	CountDistinctParticipants(ctx context.Context, tx db.DBTX, sessionID string) (int, error)
}

type FeeConfigRepository interface {
	Active(ctx context.Context, tx db.DBTX) (repository.FeeConfig, error)
}

type PaymentProfileRepository interface {
	FindByPartyID(ctx context.Context, tx db.DBTX, partyID uuid.UUID) (repository.PaymentProfile, error)
}

// PaymentGateway is the processor port. Capture returns declines as data,
// not errors; only transport and processor faults surface as errors.
type PaymentGateway interface {
	PayoutReady(ctx context.Context, accountRef string) (bool, error)
	EnsureAttached(ctx context.Context, customerRef, paymentMethodRef string) error
	Capture(ctx context.Context, params paymentgw.CaptureParams) (paymentgw.CaptureResult, error)
}

// Notifier posts fire-and-forget system messages; implementations never
// return errors to the caller.
type Notifier interface {
	PostSystemMessage(ctx context.Context, conversationID *uuid.UUID, kind, body string)
}
