package queries

import (
	"time"

	"github.com/google/uuid"
)

// RequestView is the read model returned by request queries.
type RequestView struct {
	ID               uuid.UUID  `json:"id"`
	ListingID        uuid.UUID  `json:"listing_id"`
	RequesterID      uuid.UUID  `json:"requester_id"`
	CounterpartyID   uuid.UUID  `json:"counterparty_id"`
	StartAt          time.Time  `json:"start_at"`
	EndAt            time.Time  `json:"end_at"`
	Timezone         string     `json:"timezone"`
	Status           string     `json:"status"`
	PriceCents       int64      `json:"price_cents"`
	ConversationID   *uuid.UUID `json:"conversation_id,omitempty"`
	PaymentMethodRef *string    `json:"payment_method_ref,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// BookingView is the read model returned by booking queries.
type BookingView struct {
	ID                uuid.UUID  `json:"id"`
	RequestID         *uuid.UUID `json:"request_id,omitempty"`
	RequesterID       uuid.UUID  `json:"requester_id"`
	CounterpartyID    uuid.UUID  `json:"counterparty_id"`
	PriceCents        int64      `json:"price_cents"`
	CommissionCents   int64      `json:"commission_cents"`
	ServiceFeeCents   int64      `json:"service_fee_cents"`
	Status            string     `json:"status"`
	PaymentRef        string     `json:"payment_ref"`
	ChargeRef         *string    `json:"charge_ref,omitempty"`
	FulfillBy         *time.Time `json:"fulfill_by,omitempty"`
	ExternalSessionID *string    `json:"external_session_id,omitempty"`
	ReviewReason      *string    `json:"review_reason,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}
