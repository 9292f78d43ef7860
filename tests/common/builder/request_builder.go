//go:build unit || e2e

package builder

import (
	"time"

	domrequest "coach-booking-engine/internal/domain/request"
	reqdto "coach-booking-engine/internal/handler/dto/request"
	"coach-booking-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

type RequestBuilder struct {
	ID               uuid.UUID
	ListingID        uuid.UUID
	RequesterID      uuid.UUID
	CounterpartyID   uuid.UUID
	StartAt          time.Time
	EndAt            time.Time
	Timezone         string
	Status           domrequest.Status
	PriceCents       int64
	ConversationID   *uuid.UUID
	PaymentMethodRef *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func NewRequestBuilder() *RequestBuilder {
	now := time.Now()
	start := now.Add(48 * time.Hour).Truncate(time.Hour)
	conversationID := uuid.New()
	paymentMethodRef := "pm_test_visa"
	return &RequestBuilder{
		ID:               uuid.New(),
		ListingID:        uuid.New(),
		RequesterID:      uuid.New(),
		CounterpartyID:   uuid.New(),
		StartAt:          start,
		EndAt:            start.Add(time.Hour),
		Timezone:         "America/New_York",
		Status:           domrequest.StatusPending,
		PriceCents:       10000,
		ConversationID:   &conversationID,
		PaymentMethodRef: &paymentMethodRef,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

func (b *RequestBuilder) With(mutate func(*RequestBuilder)) *RequestBuilder {
	mutate(b)
	return b
}

func (b *RequestBuilder) BuildDomain() *domrequest.BookingRequest {
	window := domrequest.ReconstructTimeWindow(b.StartAt, b.EndAt, b.Timezone)
	return domrequest.ReconstructBookingRequest(
		b.ID, b.ListingID, b.RequesterID, b.CounterpartyID,
		window, b.Status, b.PriceCents,
		b.ConversationID, b.PaymentMethodRef,
		b.CreatedAt, b.UpdatedAt,
	)
}

func (b *RequestBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequestRequest {
	return reqdto.CreateBookingRequestRequest{
		ListingID:        b.ListingID,
		CounterpartyID:   b.CounterpartyID,
		StartTime:        b.StartAt,
		EndTime:          b.EndAt,
		Timezone:         b.Timezone,
		PriceCents:       b.PriceCents,
		ConversationID:   b.ConversationID,
		PaymentMethodRef: b.PaymentMethodRef,
	}
}

func (b *RequestBuilder) BuildView() *queries.RequestView {
	return &queries.RequestView{
		ID:               b.ID,
		ListingID:        b.ListingID,
		RequesterID:      b.RequesterID,
		CounterpartyID:   b.CounterpartyID,
		StartAt:          b.StartAt,
		EndAt:            b.EndAt,
		Timezone:         b.Timezone,
		Status:           b.Status.String(),
		PriceCents:       b.PriceCents,
		ConversationID:   b.ConversationID,
		PaymentMethodRef: b.PaymentMethodRef,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}
}
