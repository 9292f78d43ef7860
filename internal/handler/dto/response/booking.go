package response

import (
	"time"

	"coach-booking-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID                uuid.UUID  `json:"id"`
	RequestID         *uuid.UUID `json:"requestId,omitempty"`
	RequesterID       uuid.UUID  `json:"requesterId"`
	CounterpartyID    uuid.UUID  `json:"counterpartyId"`
	PriceCents        int64      `json:"priceCents"`
	CommissionCents   int64      `json:"commissionCents"`
	ServiceFeeCents   int64      `json:"serviceFeeCents"`
	Status            string     `json:"status"`
	ChargeRef         *string    `json:"chargeRef,omitempty"`
	FulfillBy         *time.Time `json:"fulfillBy,omitempty"`
	ExternalSessionID *string    `json:"externalSessionId,omitempty"`
	ReviewReason      *string    `json:"reviewReason,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

func FromBookingView(rm *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:                rm.ID,
		RequestID:         rm.RequestID,
		RequesterID:       rm.RequesterID,
		CounterpartyID:    rm.CounterpartyID,
		PriceCents:        rm.PriceCents,
		CommissionCents:   rm.CommissionCents,
		ServiceFeeCents:   rm.ServiceFeeCents,
		Status:            rm.Status,
		ChargeRef:         rm.ChargeRef,
		FulfillBy:         rm.FulfillBy,
		ExternalSessionID: rm.ExternalSessionID,
		ReviewReason:      rm.ReviewReason,
		CreatedAt:         rm.CreatedAt,
		UpdatedAt:         rm.UpdatedAt,
	}
}
