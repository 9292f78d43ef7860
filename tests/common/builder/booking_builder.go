//go:build unit || e2e

package builder

import (
	"time"

	dombooking "coach-booking-engine/internal/domain/booking"
	"coach-booking-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID                uuid.UUID
	RequestID         *uuid.UUID
	RequesterID       uuid.UUID
	CounterpartyID    uuid.UUID
	PriceCents        int64
	CommissionCents   int64
	ServiceFeeCents   int64
	Status            dombooking.Status
	ChargeRef         *string
	FulfillBy         *time.Time
	ExternalSessionID *string
	ReviewReason      *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Now()
	requestID := uuid.New()
	fulfillBy := now.Add(72 * time.Hour)
	return &BookingBuilder{
		ID:              uuid.New(),
		RequestID:       &requestID,
		RequesterID:     uuid.New(),
		CounterpartyID:  uuid.New(),
		PriceCents:      10000,
		CommissionCents: 1000,
		ServiceFeeCents: 500,
		Status:          dombooking.StatusPending,
		FulfillBy:       &fulfillBy,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildDomain() *dombooking.Booking {
	return dombooking.ReconstructBooking(
		b.ID, b.RequestID, b.RequesterID, b.CounterpartyID,
		b.PriceCents, b.CommissionCents, b.ServiceFeeCents,
		b.Status, dombooking.CaptureIdempotencyKey(b.ID),
		b.ChargeRef, b.FulfillBy, b.ExternalSessionID, b.ReviewReason,
		b.CreatedAt, b.UpdatedAt,
	)
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:                b.ID,
		RequestID:         b.RequestID,
		RequesterID:       b.RequesterID,
		CounterpartyID:    b.CounterpartyID,
		PriceCents:        b.PriceCents,
		CommissionCents:   b.CommissionCents,
		ServiceFeeCents:   b.ServiceFeeCents,
		Status:            b.Status.String(),
		PaymentRef:        dombooking.CaptureIdempotencyKey(b.ID),
		ChargeRef:         b.ChargeRef,
		FulfillBy:         b.FulfillBy,
		ExternalSessionID: b.ExternalSessionID,
		ReviewReason:      b.ReviewReason,
		CreatedAt:         b.CreatedAt,
		UpdatedAt:         b.UpdatedAt,
	}
}
