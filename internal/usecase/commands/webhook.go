package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"coach-booking-engine/internal/domain/booking"
	"coach-booking-engine/internal/domain/request"
	"coach-booking-engine/internal/domain/webhook"
	"coach-booking-engine/internal/infra"
	"coach-booking-engine/internal/infra/db"
	"coach-booking-engine/internal/infra/repository"
	"coach-booking-engine/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrUnknownEntity    = errs.New("webhook references unknown entity")
	ErrMalformedPayload = errs.New("malformed webhook payload")
)

// WebhookCommands applies externally delivered events. Handlers tolerate
// any delivery order: a duplicate (same entity, type, occurred-at) is a
// no-op and a missing prerequisite event is absent data, not an error.
type WebhookCommands interface {
	HandlePaymentEvent(ctx context.Context, ev webhook.Event) error
	HandleVideoEvent(ctx context.Context, ev webhook.Event) error
}

type webhookUseCaseImpl struct {
	requestRepo RequestRepository
	bookingRepo BookingRepository
	eventRepo   WebhookEventRepository
	gate        *AttendanceGate
	notifier    Notifier
	db          db.DBTX
	txr         TxRunner
}

func NewWebhookUseCase(
	requestRepo RequestRepository,
	bookingRepo BookingRepository,
	eventRepo WebhookEventRepository,
	gate *AttendanceGate,
	notifier Notifier,
	pool *pgxpool.Pool,
	txr TxRunner,
) WebhookCommands {
	return &webhookUseCaseImpl{
		requestRepo: requestRepo,
		bookingRepo: bookingRepo,
		eventRepo:   eventRepo,
		gate:        gate,
		notifier:    notifier,
		db:          pool,
		txr:         txr,
	}
}

type chargeEventPayload struct {
	BookingID uuid.UUID `json:"booking_id"`
	ChargeRef string    `json:"charge_ref"`
}

type checkoutEventPayload struct {
	RequesterID    uuid.UUID  `json:"requester_id"`
	CounterpartyID uuid.UUID  `json:"counterparty_id"`
	AmountCents    int64      `json:"amount_cents"`
	ChargeRef      string     `json:"charge_ref"`
	FulfillBy      *time.Time `json:"fulfill_by,omitempty"`
}

func (u *webhookUseCaseImpl) HandlePaymentEvent(ctx context.Context, ev webhook.Event) error {
	switch ev.Type {
	case webhook.TypeChargeSucceeded:
		return u.applyChargeSucceeded(ctx, ev)
	case webhook.TypeChargeFailed:
		return u.applyChargeFailed(ctx, ev)
	case webhook.TypeCheckoutCompleted:
		return u.applyCheckoutCompleted(ctx, ev)
	default:
		slog.InfoContext(ctx, "ignoring unhandled payment event", "type", ev.Type)
		return nil
	}
}

// applyChargeSucceeded reconciles the processor's asynchronous confirmation.
// The synchronous capture path usually lands first, leaving the booking
// already paid; the transition conflict then is the expected no-op. The
// event matters when the capture succeeded but the local write failed.
func (u *webhookUseCaseImpl) applyChargeSucceeded(ctx context.Context, ev webhook.Event) error {
	var payload chargeEventPayload
	if err := json.Unmarshal(ev.Payload, &payload); err != nil {
		return errs.Mark(err, ErrMalformedPayload)
	}

	if _, err := u.findBooking(ctx, payload.BookingID); err != nil {
		return err
	}

	return u.txr.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		inserted, err := u.eventRepo.InsertIgnore(ctx, tx, ev)
		if err != nil {
			return err
		}
		if !inserted {
			return nil
		}
		_, err = u.bookingRepo.CompareAndTransitionTx(ctx, tx, payload.BookingID,
			booking.StatusPending, booking.StatusPaid,
			repository.TransitionExtras{ChargeRef: &payload.ChargeRef},
		)
		return err
	})
}

func (u *webhookUseCaseImpl) applyChargeFailed(ctx context.Context, ev webhook.Event) error {
	var payload chargeEventPayload
	if err := json.Unmarshal(ev.Payload, &payload); err != nil {
		return errs.Mark(err, ErrMalformedPayload)
	}

	b, err := u.findBooking(ctx, payload.BookingID)
	if err != nil {
		return err
	}

	var firstSeen bool
	err = u.txr.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		inserted, err := u.eventRepo.InsertIgnore(ctx, tx, ev)
		if err != nil {
			return err
		}
		firstSeen = inserted
		if !inserted {
			return nil
		}
		_, err = u.bookingRepo.CompareAndTransitionTx(ctx, tx, payload.BookingID,
			booking.StatusPending, booking.StatusFailed, repository.TransitionExtras{})
		return err
	})
	if err != nil {
		return err
	}
	// A duplicate delivery must not touch the request: the requester may
	// have re-accepted and re-paid since the first delivery applied.
	if !firstSeen {
		return nil
	}

	// Payment failure is the one event allowed to move a request backward.
	if b.RequestID() != nil {
		res, rbErr := u.requestRepo.CompareAndTransition(ctx, *b.RequestID(),
			request.StatusAccepted, request.StatusPending)
		if rbErr != nil || !res.OK {
			slog.WarnContext(ctx, "request rollback on charge failure did not apply",
				"request_id", *b.RequestID(), "error", rbErr)
		}
	}
	return nil
}

// applyCheckoutCompleted settles a direct purchase: a booking with no
// originating request, created already charged.
func (u *webhookUseCaseImpl) applyCheckoutCompleted(ctx context.Context, ev webhook.Event) error {
	var payload checkoutEventPayload
	if err := json.Unmarshal(ev.Payload, &payload); err != nil {
		return errs.Mark(err, ErrMalformedPayload)
	}

	entity, err := booking.NewBooking(nil, payload.RequesterID, payload.CounterpartyID, payload.AmountCents, payload.FulfillBy)
	if err != nil {
		return errs.Mark(err, ErrMalformedPayload)
	}

	return u.txr.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		inserted, err := u.eventRepo.InsertIgnore(ctx, tx, ev)
		if err != nil {
			return err
		}
		if !inserted {
			return nil
		}
		if err := u.bookingRepo.Create(ctx, tx, entity); err != nil {
			return err
		}
		_, err = u.bookingRepo.CompareAndTransitionTx(ctx, tx, entity.ID(),
			booking.StatusPending, booking.StatusPaid,
			repository.TransitionExtras{ChargeRef: &payload.ChargeRef},
		)
		return err
	})
}

func (u *webhookUseCaseImpl) HandleVideoEvent(ctx context.Context, ev webhook.Event) error {
	b, err := u.bookingRepo.FindByExternalSessionID(ctx, u.db, ev.EntityID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrUnknownEntity
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	switch ev.Type {
	case webhook.TypeSessionEnded:
		return u.applySessionEnded(ctx, ev, b)
	case webhook.TypeSessionStarted, webhook.TypeParticipantJoined, webhook.TypeParticipantLeft:
		return u.txr.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
			_, err := u.eventRepo.InsertIgnore(ctx, tx, ev)
			return err
		})
	default:
		slog.InfoContext(ctx, "ignoring unhandled video event", "type", ev.Type)
		return nil
	}
}

func (u *webhookUseCaseImpl) applySessionEnded(ctx context.Context, ev webhook.Event, b *booking.Booking) error {
	var settled booking.Status
	err := u.txr.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		inserted, err := u.eventRepo.InsertIgnore(ctx, tx, ev)
		if err != nil {
			return err
		}
		if !inserted {
			settled = ""
			return nil
		}
		settled, err = u.gate.Settle(ctx, tx, b.ID(), ev.EntityID)
		return err
	})
	if err != nil {
		return err
	}

	switch settled {
	case booking.StatusCompleted:
		u.notifyOutcome(ctx, b, "session_completed", "The session was completed.")
	case booking.StatusNeedsReview:
		u.notifyOutcome(ctx, b, "session_needs_review",
			"The session ended without verified attendance and is under review.")
	}
	return nil
}

func (u *webhookUseCaseImpl) findBooking(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	b, err := u.bookingRepo.FindByID(ctx, u.db, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUnknownEntity
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return b, nil
}

func (u *webhookUseCaseImpl) notifyOutcome(ctx context.Context, b *booking.Booking, kind, body string) {
	if b.RequestID() == nil {
		return
	}
	req, err := u.requestRepo.FindByID(ctx, u.db, *b.RequestID())
	if err != nil {
		slog.WarnContext(ctx, "failed to resolve request for notification",
			"booking_id", b.ID(), "error", err)
		return
	}
	u.notifier.PostSystemMessage(ctx, req.ConversationID(), kind, body)
}
