package readstore

import (
	"context"

	"coach-booking-engine/internal/infra"
	"coach-booking-engine/internal/pkg/pgconv"
	"coach-booking-engine/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingReadStore struct {
	pool *pgxpool.Pool
}

func NewBookingReadStore(pool *pgxpool.Pool) *BookingReadStore {
	return &BookingReadStore{pool: pool}
}

const selectBookingView = `
	SELECT id, request_id, requester_id, counterparty_id,
	       price_cents, commission_cents, service_fee_cents,
	       status, payment_ref, charge_ref, fulfill_by,
	       external_session_id, review_reason, created_at, updated_at
	FROM bookings`

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	view, err := scanBookingView(r.pool.QueryRow(ctx, selectBookingView+" WHERE id = $1", id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	return view, nil
}

func (r *BookingReadStore) FindByRequestID(ctx context.Context, requestID uuid.UUID) (*queries.BookingView, error) {
	view, err := scanBookingView(r.pool.QueryRow(ctx, selectBookingView+" WHERE request_id = $1", requestID))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	return view, nil
}

func (r *BookingReadStore) FindByParty(ctx context.Context, partyID uuid.UUID) ([]*queries.BookingView, error) {
	rows, err := r.pool.Query(ctx,
		selectBookingView+` WHERE requester_id = $1 OR counterparty_id = $1 ORDER BY created_at DESC`,
		partyID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	var views []*queries.BookingView
	for rows.Next() {
		view, err := scanBookingView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate bookings", err)
	}
	return views, nil
}

func scanBookingView(row pgx.Row) (*queries.BookingView, error) {
	var v queries.BookingView
	err := row.Scan(
		&v.ID, &v.RequestID, &v.RequesterID, &v.CounterpartyID,
		&v.PriceCents, &v.CommissionCents, &v.ServiceFeeCents,
		&v.Status, &v.PaymentRef, &v.ChargeRef, &v.FulfillBy,
		&v.ExternalSessionID, &v.ReviewReason, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
