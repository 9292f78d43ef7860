package repository

import (
	"context"

	"coach-booking-engine/internal/infra"
	"coach-booking-engine/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PaymentProfile maps a party to its processor identities. Onboarding owns
// the writes; this engine only reads.
type PaymentProfile struct {
	PartyID          uuid.UUID
	CustomerRef      string
	PayoutAccountRef *string
}

type PaymentProfileRepository struct {
	pool *pgxpool.Pool
}

func NewPaymentProfileRepository(pool *pgxpool.Pool) *PaymentProfileRepository {
	return &PaymentProfileRepository{pool: pool}
}

func (r *PaymentProfileRepository) FindByPartyID(ctx context.Context, tx db.DBTX, partyID uuid.UUID) (PaymentProfile, error) {
	var p PaymentProfile
	err := tx.QueryRow(ctx, `
		SELECT party_id, customer_ref, payout_account_ref
		FROM payment_profiles
		WHERE party_id = $1`,
		partyID,
	).Scan(&p.PartyID, &p.CustomerRef, &p.PayoutAccountRef)
	if err != nil {
		if isNoRows(err) {
			return PaymentProfile{}, infra.WrapRepoErr("payment profile not found", err, infra.KindNotFound)
		}
		return PaymentProfile{}, infra.WrapRepoErr("failed to load payment profile", err)
	}
	return p, nil
}
