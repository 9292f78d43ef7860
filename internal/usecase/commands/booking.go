package commands

import (
	"context"

	"coach-booking-engine/internal/infra"
	"coach-booking-engine/internal/infra/db"
	"coach-booking-engine/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrBookingNotFound = errs.New("booking not found")

// BookingCommands covers internal mutations outside the payment flow.
type BookingCommands interface {
	// AttachSession stores the video provider's session id on a booking so
	// later session-lifecycle events can be resolved back to it. Only a
	// party to the booking may bind a session.
	AttachSession(ctx context.Context, bookingID, partyID uuid.UUID, externalSessionID string) error
}

type bookingUseCaseImpl struct {
	bookingRepo BookingRepository
	db          db.DBTX
}

func NewBookingUseCase(bookingRepo BookingRepository, pool *pgxpool.Pool) BookingCommands {
	return &bookingUseCaseImpl{bookingRepo: bookingRepo, db: pool}
}

func (u *bookingUseCaseImpl) AttachSession(ctx context.Context, bookingID, partyID uuid.UUID, externalSessionID string) error {
	if externalSessionID == "" {
		return ErrDomainValidation
	}

	b, err := u.bookingRepo.FindByID(ctx, u.db, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBookingNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	// Outsiders get the same answer as a missing booking.
	if !b.IsParty(partyID) {
		return ErrBookingNotFound
	}

	if err := u.bookingRepo.AttachExternalSession(ctx, u.db, bookingID, externalSessionID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBookingNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
