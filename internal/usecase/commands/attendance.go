package commands

import (
	"context"

	"coach-booking-engine/internal/domain/booking"
	"coach-booking-engine/internal/infra/db"
	"coach-booking-engine/internal/infra/repository"
	"coach-booking-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

// MinLiveParticipants is the attendance threshold for payout-eligible
// completion: both parties must have actually joined the session.
const MinLiveParticipants = 2

// AttendanceGate decides, at session end, whether a paid booking completes
// or is parked for manual review. It exists to prevent paying the
// counterparty for a session that never happened with both parties present.
type AttendanceGate struct {
	eventRepo   WebhookEventRepository
	bookingRepo BookingRepository
}

func NewAttendanceGate(eventRepo WebhookEventRepository, bookingRepo BookingRepository) *AttendanceGate {
	return &AttendanceGate{eventRepo: eventRepo, bookingRepo: bookingRepo}
}

// Settle counts distinct joined participants for the session and moves the
// booking paid->completed or paid->needs_review through the guard. A
// booking no longer in paid has already been settled; Settle returns an
// empty status without error so replays stay no-ops and trigger no
// follow-up notifications.
func (g *AttendanceGate) Settle(
	ctx context.Context,
	tx db.DBTX,
	bookingID uuid.UUID,
	externalSessionID string,
) (booking.Status, error) {
	count, err := g.eventRepo.CountDistinctParticipants(ctx, tx, externalSessionID)
	if err != nil {
		return "", errs.Wrap(err, "failed to count session participants")
	}

	next := booking.StatusCompleted
	extras := repository.TransitionExtras{}
	if count < MinLiveParticipants {
		next = booking.StatusNeedsReview
		reason := booking.ReasonInsufficientAttendance
		extras.ReviewReason = &reason
	}

	res, err := g.bookingRepo.CompareAndTransitionTx(ctx, tx, bookingID, booking.StatusPaid, next, extras)
	if err != nil {
		return "", err
	}
	if !res.OK {
		return "", nil
	}
	return next, nil
}
