//go:build unit

package commands_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"coach-booking-engine/internal/domain/booking"
	"coach-booking-engine/internal/domain/request"
	"coach-booking-engine/internal/domain/webhook"
	"coach-booking-engine/internal/infra"
	"coach-booking-engine/internal/infra/db"
	"coach-booking-engine/internal/infra/repository"
	"coach-booking-engine/internal/usecase/commands"
	"coach-booking-engine/tests/common/builder"
	commandsmock "coach-booking-engine/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type webhookFixture struct {
	requestRepo *commandsmock.MockRequestRepository
	bookingRepo *commandsmock.MockBookingRepository
	eventRepo   *commandsmock.MockWebhookEventRepository
	notifier    *commandsmock.MockNotifier
	txr         *commandsmock.MockTxRunner
	uc          commands.WebhookCommands
}

func newWebhookFixture(t *testing.T) *webhookFixture {
	ctrl := gomock.NewController(t)
	f := &webhookFixture{
		requestRepo: commandsmock.NewMockRequestRepository(ctrl),
		bookingRepo: commandsmock.NewMockBookingRepository(ctrl),
		eventRepo:   commandsmock.NewMockWebhookEventRepository(ctrl),
		notifier:    commandsmock.NewMockNotifier(ctrl),
		txr:         commandsmock.NewMockTxRunner(ctrl),
	}
	gate := commands.NewAttendanceGate(f.eventRepo, f.bookingRepo)
	f.uc = commands.NewWebhookUseCase(f.requestRepo, f.bookingRepo, f.eventRepo, gate, f.notifier, nil, f.txr)
	return f
}

func (f *webhookFixture) runTx() *gomock.Call {
	return f.txr.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, db.DBTX) error) error {
			return fn(ctx, nil)
		})
}

func chargeEvent(eventType string, b *builder.BookingBuilder) webhook.Event {
	payload, _ := json.Marshal(map[string]any{
		"booking_id": b.ID,
		"charge_ref": "ch_hook",
	})
	return webhook.Event{
		Source:     webhook.SourcePayments,
		EntityID:   b.ID.String(),
		Type:       eventType,
		OccurredAt: time.Now().Truncate(time.Second),
		Payload:    payload,
	}
}

func videoEvent(eventType, sessionID string, participant int) webhook.Event {
	payload, _ := json.Marshal(map[string]any{
		"participant_id": fmt.Sprintf("user-%d", participant),
	})
	return webhook.Event{
		Source:     webhook.SourceVideo,
		EntityID:   sessionID,
		Type:       eventType,
		OccurredAt: time.Now().Truncate(time.Second),
		Payload:    payload,
	}
}

func TestHandlePaymentEvent_ChargeSucceeded(t *testing.T) {
	t.Run("reconciles an unpaid booking", func(t *testing.T) {
		f := newWebhookFixture(t)
		bb := builder.NewBookingBuilder()
		ev := chargeEvent(webhook.TypeChargeSucceeded, bb)

		f.bookingRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), bb.ID).Return(bb.BuildDomain(), nil)
		f.runTx()
		f.eventRepo.EXPECT().InsertIgnore(gomock.Any(), gomock.Any(), ev).Return(true, nil)
		f.bookingRepo.EXPECT().CompareAndTransitionTx(gomock.Any(), gomock.Any(), bb.ID,
			booking.StatusPending, booking.StatusPaid, gomock.Any()).
			Return(repository.TransitionResult{OK: true}, nil)

		require.NoError(t, f.uc.HandlePaymentEvent(context.Background(), ev))
	})

	t.Run("replay is a no-op after the dedupe insert", func(t *testing.T) {
		f := newWebhookFixture(t)
		bb := builder.NewBookingBuilder()
		ev := chargeEvent(webhook.TypeChargeSucceeded, bb)

		f.bookingRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), bb.ID).Return(bb.BuildDomain(), nil).Times(2)
		f.runTx().Times(2)
		gomock.InOrder(
			f.eventRepo.EXPECT().InsertIgnore(gomock.Any(), gomock.Any(), ev).Return(true, nil),
			f.eventRepo.EXPECT().InsertIgnore(gomock.Any(), gomock.Any(), ev).Return(false, nil),
		)
		// Exactly one transition across both deliveries.
		f.bookingRepo.EXPECT().CompareAndTransitionTx(gomock.Any(), gomock.Any(), bb.ID,
			booking.StatusPending, booking.StatusPaid, gomock.Any()).
			Return(repository.TransitionResult{OK: true}, nil).Times(1)

		require.NoError(t, f.uc.HandlePaymentEvent(context.Background(), ev))
		require.NoError(t, f.uc.HandlePaymentEvent(context.Background(), ev))
	})

	t.Run("unknown booking", func(t *testing.T) {
		f := newWebhookFixture(t)
		bb := builder.NewBookingBuilder()
		ev := chargeEvent(webhook.TypeChargeSucceeded, bb)

		f.bookingRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), bb.ID).
			Return(nil, infra.WrapRepoErr("not found", nil, infra.KindNotFound))

		err := f.uc.HandlePaymentEvent(context.Background(), ev)
		assert.ErrorIs(t, err, commands.ErrUnknownEntity)
	})
}

func TestHandlePaymentEvent_ChargeFailed(t *testing.T) {
	t.Run("fails the booking and rolls the request back", func(t *testing.T) {
		f := newWebhookFixture(t)
		bb := builder.NewBookingBuilder()
		ev := chargeEvent(webhook.TypeChargeFailed, bb)

		f.bookingRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), bb.ID).Return(bb.BuildDomain(), nil)
		f.runTx()
		f.eventRepo.EXPECT().InsertIgnore(gomock.Any(), gomock.Any(), ev).Return(true, nil)
		f.bookingRepo.EXPECT().CompareAndTransitionTx(gomock.Any(), gomock.Any(), bb.ID,
			booking.StatusPending, booking.StatusFailed, gomock.Any()).
			Return(repository.TransitionResult{OK: true}, nil)
		f.requestRepo.EXPECT().CompareAndTransition(gomock.Any(), *bb.RequestID,
			request.StatusAccepted, request.StatusPending).
			Return(repository.TransitionResult{OK: true}, nil)

		require.NoError(t, f.uc.HandlePaymentEvent(context.Background(), ev))
	})

	t.Run("replay leaves the request alone", func(t *testing.T) {
		f := newWebhookFixture(t)
		bb := builder.NewBookingBuilder()
		ev := chargeEvent(webhook.TypeChargeFailed, bb)

		f.bookingRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), bb.ID).Return(bb.BuildDomain(), nil)
		f.runTx()
		f.eventRepo.EXPECT().InsertIgnore(gomock.Any(), gomock.Any(), ev).Return(false, nil)
		// The requester may have re-accepted since the first delivery; a
		// duplicate must not knock the request back to pending.
		f.requestRepo.EXPECT().CompareAndTransition(gomock.Any(), gomock.Any(),
			gomock.Any(), gomock.Any()).Times(0)

		require.NoError(t, f.uc.HandlePaymentEvent(context.Background(), ev))
	})
}

func TestHandleVideoEvent_SessionEnded(t *testing.T) {
	sessionID := "vid-session-42"

	newPaidBooking := func() *builder.BookingBuilder {
		return builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.Status = booking.StatusPaid
			b.ExternalSessionID = &sessionID
		})
	}

	t.Run("two participants complete the booking", func(t *testing.T) {
		f := newWebhookFixture(t)
		bb := newPaidBooking()
		ev := videoEvent(webhook.TypeSessionEnded, sessionID, 0)
		reqB := builder.NewRequestBuilder()

		f.bookingRepo.EXPECT().FindByExternalSessionID(gomock.Any(), gomock.Any(), sessionID).
			Return(bb.BuildDomain(), nil)
		f.runTx()
		f.eventRepo.EXPECT().InsertIgnore(gomock.Any(), gomock.Any(), ev).Return(true, nil)
		f.eventRepo.EXPECT().CountDistinctParticipants(gomock.Any(), gomock.Any(), sessionID).Return(2, nil)
		f.bookingRepo.EXPECT().CompareAndTransitionTx(gomock.Any(), gomock.Any(), bb.ID,
			booking.StatusPaid, booking.StatusCompleted, repository.TransitionExtras{}).
			Return(repository.TransitionResult{OK: true}, nil)
		f.requestRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), *bb.RequestID).Return(reqB.BuildDomain(), nil)
		f.notifier.EXPECT().PostSystemMessage(gomock.Any(), gomock.Any(), "session_completed", gomock.Any())

		require.NoError(t, f.uc.HandleVideoEvent(context.Background(), ev))
	})

	t.Run("one participant parks the booking for review", func(t *testing.T) {
		f := newWebhookFixture(t)
		bb := newPaidBooking()
		ev := videoEvent(webhook.TypeSessionEnded, sessionID, 0)
		reqB := builder.NewRequestBuilder()

		f.bookingRepo.EXPECT().FindByExternalSessionID(gomock.Any(), gomock.Any(), sessionID).
			Return(bb.BuildDomain(), nil)
		f.runTx()
		f.eventRepo.EXPECT().InsertIgnore(gomock.Any(), gomock.Any(), ev).Return(true, nil)
		f.eventRepo.EXPECT().CountDistinctParticipants(gomock.Any(), gomock.Any(), sessionID).Return(1, nil)

		reason := booking.ReasonInsufficientAttendance
		f.bookingRepo.EXPECT().CompareAndTransitionTx(gomock.Any(), gomock.Any(), bb.ID,
			booking.StatusPaid, booking.StatusNeedsReview, repository.TransitionExtras{ReviewReason: &reason}).
			Return(repository.TransitionResult{OK: true}, nil)
		f.requestRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), *bb.RequestID).Return(reqB.BuildDomain(), nil)
		f.notifier.EXPECT().PostSystemMessage(gomock.Any(), gomock.Any(), "session_needs_review", gomock.Any())

		require.NoError(t, f.uc.HandleVideoEvent(context.Background(), ev))
	})

	t.Run("replayed ended event does not settle twice", func(t *testing.T) {
		f := newWebhookFixture(t)
		bb := newPaidBooking()
		ev := videoEvent(webhook.TypeSessionEnded, sessionID, 0)

		f.bookingRepo.EXPECT().FindByExternalSessionID(gomock.Any(), gomock.Any(), sessionID).
			Return(bb.BuildDomain(), nil)
		f.runTx()
		f.eventRepo.EXPECT().InsertIgnore(gomock.Any(), gomock.Any(), ev).Return(false, nil)

		require.NoError(t, f.uc.HandleVideoEvent(context.Background(), ev))
	})

	t.Run("already-settled booking is not double-processed", func(t *testing.T) {
		f := newWebhookFixture(t)
		bb := newPaidBooking().With(func(b *builder.BookingBuilder) {
			b.Status = booking.StatusCompleted
		})
		ev := videoEvent(webhook.TypeSessionEnded, sessionID, 0)

		f.bookingRepo.EXPECT().FindByExternalSessionID(gomock.Any(), gomock.Any(), sessionID).
			Return(bb.BuildDomain(), nil)
		f.runTx()
		f.eventRepo.EXPECT().InsertIgnore(gomock.Any(), gomock.Any(), ev).Return(true, nil)
		f.eventRepo.EXPECT().CountDistinctParticipants(gomock.Any(), gomock.Any(), sessionID).Return(2, nil)
		f.bookingRepo.EXPECT().CompareAndTransitionTx(gomock.Any(), gomock.Any(), bb.ID,
			booking.StatusPaid, booking.StatusCompleted, repository.TransitionExtras{}).
			Return(repository.TransitionResult{OK: false, CurrentStatus: "completed"}, nil)

		require.NoError(t, f.uc.HandleVideoEvent(context.Background(), ev))
	})
}

func TestHandleVideoEvent_ParticipantJoined(t *testing.T) {
	f := newWebhookFixture(t)
	sessionID := "vid-session-7"
	bb := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
		b.Status = booking.StatusPaid
		b.ExternalSessionID = &sessionID
	})
	ev := videoEvent(webhook.TypeParticipantJoined, sessionID, 1)

	f.bookingRepo.EXPECT().FindByExternalSessionID(gomock.Any(), gomock.Any(), sessionID).
		Return(bb.BuildDomain(), nil)
	f.runTx()
	f.eventRepo.EXPECT().InsertIgnore(gomock.Any(), gomock.Any(), ev).Return(true, nil)

	require.NoError(t, f.uc.HandleVideoEvent(context.Background(), ev))
}

func TestHandleVideoEvent_UnknownSession(t *testing.T) {
	f := newWebhookFixture(t)
	ev := videoEvent(webhook.TypeSessionEnded, "vid-unmapped", 0)

	f.bookingRepo.EXPECT().FindByExternalSessionID(gomock.Any(), gomock.Any(), "vid-unmapped").
		Return(nil, infra.WrapRepoErr("not found", nil, infra.KindNotFound))

	err := f.uc.HandleVideoEvent(context.Background(), ev)
	assert.ErrorIs(t, err, commands.ErrUnknownEntity)
}
