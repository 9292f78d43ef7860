package repository

import (
	"context"
	"time"

	"coach-booking-engine/internal/domain/request"
	"coach-booking-engine/internal/infra"
	"coach-booking-engine/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RequestRepository struct {
	pool *pgxpool.Pool
}

func NewRequestRepository(pool *pgxpool.Pool) *RequestRepository {
	return &RequestRepository{pool: pool}
}

func (r *RequestRepository) Create(ctx context.Context, tx db.DBTX, req *request.BookingRequest) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO booking_requests (
			id, listing_id, requester_id, counterparty_id,
			start_at, end_at, timezone, status, price_cents,
			conversation_id, payment_method_ref
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		req.ID(), req.ListingID(), req.RequesterID(), req.CounterpartyID(),
		req.Window().Start(), req.Window().End(), req.Window().Timezone(),
		req.Status().String(), req.PriceCents(),
		req.ConversationID(), req.PaymentMethodRef(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("booking request already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create booking request", err)
	}
	return nil
}

func (r *RequestRepository) FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*request.BookingRequest, error) {
	row := tx.QueryRow(ctx, `
		SELECT id, listing_id, requester_id, counterparty_id,
		       start_at, end_at, timezone, status, price_cents,
		       conversation_id, payment_method_ref, created_at, updated_at
		FROM booking_requests
		WHERE id = $1`, id)

	return scanRequest(row)
}

// CompareAndTransition is the sole legal way to change a booking request's
// status. It runs as one transaction: row lock, compare, write.
func (r *RequestRepository) CompareAndTransition(
	ctx context.Context,
	id uuid.UUID,
	expected, next request.Status,
) (TransitionResult, error) {
	var result TransitionResult
	err := InTx(ctx, r.pool, func(ctx context.Context, tx db.DBTX) error {
		var txErr error
		result, txErr = compareAndTransition(ctx, tx, "booking_requests", id, expected.String(), next.String(), "")
		return txErr
	})
	return result, err
}

// CompareAndTransitionTx is the same primitive inside a caller-owned
// transaction, for flows that must move a request and a booking atomically.
func (r *RequestRepository) CompareAndTransitionTx(
	ctx context.Context,
	tx db.DBTX,
	id uuid.UUID,
	expected, next request.Status,
) (TransitionResult, error) {
	return compareAndTransition(ctx, tx, "booking_requests", id, expected.String(), next.String(), "")
}

// ExpirePending cancels pending requests created before the cutoff. The
// write goes through the same status column the guard owns, but needs no
// per-row compare: the WHERE clause is the compare.
func (r *RequestRepository) ExpirePending(ctx context.Context, tx db.DBTX, cutoff time.Time) (int64, error) {
	tag, err := tx.Exec(ctx, `
		UPDATE booking_requests
		SET status = $1, updated_at = now()
		WHERE status = $2 AND created_at < $3`,
		request.StatusCancelled.String(), request.StatusPending.String(), cutoff,
	)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to expire pending requests", err)
	}
	return tag.RowsAffected(), nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRequest(row rowScanner) (*request.BookingRequest, error) {
	var (
		id, listingID, requesterID, counterpartyID uuid.UUID
		startAt, endAt, createdAt, updatedAt       time.Time
		timezone, status                           string
		priceCents                                 int64
		conversationID                             *uuid.UUID
		paymentMethodRef                           *string
	)

	err := row.Scan(
		&id, &listingID, &requesterID, &counterpartyID,
		&startAt, &endAt, &timezone, &status, &priceCents,
		&conversationID, &paymentMethodRef, &createdAt, &updatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("booking request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan booking request", err)
	}

	return request.ReconstructBookingRequest(
		id, listingID, requesterID, counterpartyID,
		request.ReconstructTimeWindow(startAt, endAt, timezone),
		request.Status(status),
		priceCents,
		conversationID,
		paymentMethodRef,
		createdAt, updatedAt,
	), nil
}
