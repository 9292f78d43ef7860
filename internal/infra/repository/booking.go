package repository

import (
	"context"
	"strconv"
	"time"

	"coach-booking-engine/internal/domain/booking"
	"coach-booking-engine/internal/infra"
	"coach-booking-engine/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{pool: pool}
}

// TransitionExtras are columns written in the same atomic update as a status
// transition.
type TransitionExtras struct {
	ChargeRef    *string
	ReviewReason *string
}

func (r *BookingRepository) Create(ctx context.Context, tx db.DBTX, b *booking.Booking) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO bookings (
			id, request_id, requester_id, counterparty_id,
			price_cents, commission_cents, service_fee_cents,
			status, payment_ref, fulfill_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		b.ID(), b.RequestID(), b.RequesterID(), b.CounterpartyID(),
		b.PriceCents(), b.CommissionCents(), b.ServiceFeeCents(),
		b.Status().String(), b.PaymentRef(), b.FulfillBy(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("booking already exists for request", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*booking.Booking, error) {
	return scanBooking(tx.QueryRow(ctx, selectBooking+" WHERE id = $1", id))
}

func (r *BookingRepository) FindByRequestID(ctx context.Context, tx db.DBTX, requestID uuid.UUID) (*booking.Booking, error) {
	return scanBooking(tx.QueryRow(ctx, selectBooking+" WHERE request_id = $1", requestID))
}

// FindByExternalSessionID resolves the booking a video-provider event
// targets, by the stored foreign key, never by guessing.
func (r *BookingRepository) FindByExternalSessionID(ctx context.Context, tx db.DBTX, sessionID string) (*booking.Booking, error) {
	return scanBooking(tx.QueryRow(ctx, selectBooking+" WHERE external_session_id = $1", sessionID))
}

// UpdateFees records the computed split before the capture attempt.
func (r *BookingRepository) UpdateFees(ctx context.Context, tx db.DBTX, id uuid.UUID, commissionCents, serviceFeeCents int64) error {
	tag, err := tx.Exec(ctx, `
		UPDATE bookings
		SET commission_cents = $2, service_fee_cents = $3, updated_at = now()
		WHERE id = $1`,
		id, commissionCents, serviceFeeCents)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking fees", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

// AttachExternalSession stores the video-provider session id used to match
// later lifecycle events.
func (r *BookingRepository) AttachExternalSession(ctx context.Context, tx db.DBTX, id uuid.UUID, sessionID string) error {
	tag, err := tx.Exec(ctx, `
		UPDATE bookings
		SET external_session_id = $2, updated_at = now()
		WHERE id = $1`,
		id, sessionID)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("session already attached to another booking", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to attach external session", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

// CompareAndTransition moves a booking's status atomically, optionally
// writing the charge reference or review reason in the same update.
func (r *BookingRepository) CompareAndTransition(
	ctx context.Context,
	id uuid.UUID,
	expected, next booking.Status,
	extras TransitionExtras,
) (TransitionResult, error) {
	var result TransitionResult
	err := InTx(ctx, r.pool, func(ctx context.Context, tx db.DBTX) error {
		var txErr error
		result, txErr = r.CompareAndTransitionTx(ctx, tx, id, expected, next, extras)
		return txErr
	})
	return result, err
}

func (r *BookingRepository) CompareAndTransitionTx(
	ctx context.Context,
	tx db.DBTX,
	id uuid.UUID,
	expected, next booking.Status,
	extras TransitionExtras,
) (TransitionResult, error) {
	var (
		extraSet  string
		extraArgs []any
	)
	arg := 3
	if extras.ChargeRef != nil {
		extraSet = "charge_ref = $3"
		extraArgs = append(extraArgs, *extras.ChargeRef)
		arg++
	}
	if extras.ReviewReason != nil {
		if extraSet != "" {
			extraSet += ", "
		}
		extraSet += "review_reason = $" + strconv.Itoa(arg)
		extraArgs = append(extraArgs, *extras.ReviewReason)
	}

	return compareAndTransition(ctx, tx, "bookings", id, expected.String(), next.String(), extraSet, extraArgs...)
}

const selectBooking = `
	SELECT id, request_id, requester_id, counterparty_id,
	       price_cents, commission_cents, service_fee_cents,
	       status, payment_ref, charge_ref, fulfill_by,
	       external_session_id, review_reason, created_at, updated_at
	FROM bookings`

func scanBooking(row rowScanner) (*booking.Booking, error) {
	var (
		id, requesterID, counterpartyID              uuid.UUID
		requestID                                    *uuid.UUID
		priceCents, commissionCents, serviceFeeCents int64
		status, paymentRef                           string
		chargeRef, externalSessionID, reviewReason   *string
		fulfillBy                                    *time.Time
		createdAt, updatedAt                         time.Time
	)

	err := row.Scan(
		&id, &requestID, &requesterID, &counterpartyID,
		&priceCents, &commissionCents, &serviceFeeCents,
		&status, &paymentRef, &chargeRef, &fulfillBy,
		&externalSessionID, &reviewReason, &createdAt, &updatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan booking", err)
	}

	return booking.ReconstructBooking(
		id, requestID, requesterID, counterpartyID,
		priceCents, commissionCents, serviceFeeCents,
		booking.Status(status), paymentRef, chargeRef,
		fulfillBy, externalSessionID, reviewReason,
		createdAt, updatedAt,
	), nil
}
