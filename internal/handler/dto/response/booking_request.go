package response

import (
	"time"

	"coach-booking-engine/internal/usecase/commands"
	"coach-booking-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingRequestResponse struct {
	ID               uuid.UUID  `json:"id"`
	ListingID        uuid.UUID  `json:"listingId"`
	RequesterID      uuid.UUID  `json:"requesterId"`
	CounterpartyID   uuid.UUID  `json:"counterpartyId"`
	StartAt          time.Time  `json:"startAt"`
	EndAt            time.Time  `json:"endAt"`
	Timezone         string     `json:"timezone"`
	Status           string     `json:"status"`
	PriceCents       int64      `json:"priceCents"`
	ConversationID   *uuid.UUID `json:"conversationId,omitempty"`
	HasPaymentMethod bool       `json:"hasPaymentMethod"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

// AcceptResponse reports the outcome of accepting a request. A decline is
// a structured payload, not an opaque failure, so the client can show the
// counterparty what to do next.
type AcceptResponse struct {
	BookingID         uuid.UUID `json:"bookingId"`
	ChargeRef         string    `json:"chargeRef"`
	PriceCents        int64     `json:"priceCents"`
	CommissionCents   int64     `json:"commissionCents"`
	ServiceFeeCents   int64     `json:"serviceFeeCents"`
	TotalChargedCents int64     `json:"totalChargedCents"`
	RetainedCents     int64     `json:"retainedCents"`
}

type PaymentDeclinedResponse struct {
	Error          string `json:"error"`
	DeclineCode    string `json:"declineCode"`
	Message        string `json:"message"`
	RequiresAction bool   `json:"requiresAction"`
}

func FromRequestView(rm *queries.RequestView) *BookingRequestResponse {
	return &BookingRequestResponse{
		ID:               rm.ID,
		ListingID:        rm.ListingID,
		RequesterID:      rm.RequesterID,
		CounterpartyID:   rm.CounterpartyID,
		StartAt:          rm.StartAt,
		EndAt:            rm.EndAt,
		Timezone:         rm.Timezone,
		Status:           rm.Status,
		PriceCents:       rm.PriceCents,
		ConversationID:   rm.ConversationID,
		HasPaymentMethod: rm.PaymentMethodRef != nil && *rm.PaymentMethodRef != "",
		CreatedAt:        rm.CreatedAt,
		UpdatedAt:        rm.UpdatedAt,
	}
}

func FromAcceptResult(result *commands.AcceptRequestResult) *AcceptResponse {
	return &AcceptResponse{
		BookingID:         result.BookingID,
		ChargeRef:         result.ChargeRef,
		PriceCents:        result.Breakdown.BasePriceCents,
		CommissionCents:   result.Breakdown.CommissionCents,
		ServiceFeeCents:   result.Breakdown.ServiceFeeCents,
		TotalChargedCents: result.Breakdown.TotalChargedCents,
		RetainedCents:     result.Breakdown.RetainedCents,
	}
}
