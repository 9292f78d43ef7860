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

type RequestReadStore struct {
	pool *pgxpool.Pool
}

func NewRequestReadStore(pool *pgxpool.Pool) *RequestReadStore {
	return &RequestReadStore{pool: pool}
}

const selectRequestView = `
	SELECT id, listing_id, requester_id, counterparty_id,
	       start_at, end_at, timezone, status, price_cents,
	       conversation_id, payment_method_ref, created_at, updated_at
	FROM booking_requests`

func (r *RequestReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RequestView, error) {
	view, err := scanRequestView(r.pool.QueryRow(ctx, selectRequestView+" WHERE id = $1", id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking request", err)
	}
	return view, nil
}

// FindByParty lists requests the party sees from either side, newest first.
func (r *RequestReadStore) FindByParty(ctx context.Context, partyID uuid.UUID) ([]*queries.RequestView, error) {
	rows, err := r.pool.Query(ctx,
		selectRequestView+` WHERE requester_id = $1 OR counterparty_id = $1 ORDER BY created_at DESC`,
		partyID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list booking requests", err)
	}
	defer rows.Close()

	var views []*queries.RequestView
	for rows.Next() {
		view, err := scanRequestView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking request row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking requests", err)
	}
	return views, nil
}

func scanRequestView(row pgx.Row) (*queries.RequestView, error) {
	var v queries.RequestView
	err := row.Scan(
		&v.ID, &v.ListingID, &v.RequesterID, &v.CounterpartyID,
		&v.StartAt, &v.EndAt, &v.Timezone, &v.Status, &v.PriceCents,
		&v.ConversationID, &v.PaymentMethodRef, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
