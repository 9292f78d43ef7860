package request

import (
	"strings"
	"time"

	"coach-booking-engine/internal/domain/request"

	"github.com/google/uuid"
)

type CreateBookingRequestRequest struct {
	ListingID        uuid.UUID  `json:"listing_id" binding:"required"`
	CounterpartyID   uuid.UUID  `json:"counterparty_id" binding:"required"`
	StartTime        time.Time  `json:"start_time" binding:"required"`
	EndTime          time.Time  `json:"end_time" binding:"required"`
	Timezone         string     `json:"timezone" binding:"required"`
	PriceCents       int64      `json:"price_cents" binding:"required,gt=0"`
	ConversationID   *uuid.UUID `json:"conversation_id,omitempty"`
	PaymentMethodRef *string    `json:"payment_method_ref,omitempty"`
}

func (r CreateBookingRequestRequest) GetPaymentMethodRef() *string {
	if r.PaymentMethodRef == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.PaymentMethodRef)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func (r CreateBookingRequestRequest) ToDomain(requesterID uuid.UUID, now time.Time) (*request.BookingRequest, error) {
	window, err := request.NewTimeWindow(r.StartTime, r.EndTime, r.Timezone, now)
	if err != nil {
		return nil, err
	}

	return request.NewBookingRequest(
		r.ListingID,
		requesterID,
		r.CounterpartyID,
		window,
		r.PriceCents,
		r.ConversationID,
		r.GetPaymentMethodRef(),
	)
}

type AttachSessionRequest struct {
	ExternalSessionID string `json:"external_session_id" binding:"required"`
}
