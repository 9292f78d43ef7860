package request

import (
	"time"

	"coach-booking-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrSelfBooking      = errs.New("requester and counterparty must differ")
	ErrNonPositivePrice = errs.New("proposed price must be positive")
)

// BookingRequest is a proposed session awaiting the counterparty's approval.
// Status is never written directly; every change goes through the
// compare-and-transition guard in the repository layer.
type BookingRequest struct {
	id               uuid.UUID
	listingID        uuid.UUID
	requesterID      uuid.UUID
	counterpartyID   uuid.UUID
	window           TimeWindow
	status           Status
	priceCents       int64
	conversationID   *uuid.UUID
	paymentMethodRef *string
	createdAt        time.Time
	updatedAt        time.Time
}

func NewBookingRequest(
	listingID, requesterID, counterpartyID uuid.UUID,
	window TimeWindow,
	priceCents int64,
	conversationID *uuid.UUID,
	paymentMethodRef *string,
) (*BookingRequest, error) {
	if requesterID == counterpartyID {
		return nil, ErrSelfBooking
	}
	if priceCents <= 0 {
		return nil, ErrNonPositivePrice
	}

	return &BookingRequest{
		id:               uuid.New(),
		listingID:        listingID,
		requesterID:      requesterID,
		counterpartyID:   counterpartyID,
		window:           window,
		status:           StatusPending,
		priceCents:       priceCents,
		conversationID:   conversationID,
		paymentMethodRef: paymentMethodRef,
	}, nil
}

func ReconstructBookingRequest(
	id, listingID, requesterID, counterpartyID uuid.UUID,
	window TimeWindow,
	status Status,
	priceCents int64,
	conversationID *uuid.UUID,
	paymentMethodRef *string,
	createdAt, updatedAt time.Time,
) *BookingRequest {
	return &BookingRequest{
		id:               id,
		listingID:        listingID,
		requesterID:      requesterID,
		counterpartyID:   counterpartyID,
		window:           window,
		status:           status,
		priceCents:       priceCents,
		conversationID:   conversationID,
		paymentMethodRef: paymentMethodRef,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

func (r *BookingRequest) IsPending() bool {
	return r.status == StatusPending
}

// IsCounterparty reports whether the given party may accept or decline.
func (r *BookingRequest) IsCounterparty(partyID uuid.UUID) bool {
	return r.counterpartyID == partyID
}

func (r *BookingRequest) HasStoredPaymentMethod() bool {
	return r.paymentMethodRef != nil && *r.paymentMethodRef != ""
}

func (r *BookingRequest) ID() uuid.UUID              { return r.id }
func (r *BookingRequest) ListingID() uuid.UUID       { return r.listingID }
func (r *BookingRequest) RequesterID() uuid.UUID     { return r.requesterID }
func (r *BookingRequest) CounterpartyID() uuid.UUID  { return r.counterpartyID }
func (r *BookingRequest) Window() TimeWindow         { return r.window }
func (r *BookingRequest) Status() Status             { return r.status }
func (r *BookingRequest) PriceCents() int64          { return r.priceCents }
func (r *BookingRequest) ConversationID() *uuid.UUID { return r.conversationID }
func (r *BookingRequest) PaymentMethodRef() *string  { return r.paymentMethodRef }
func (r *BookingRequest) CreatedAt() time.Time       { return r.createdAt }
func (r *BookingRequest) UpdatedAt() time.Time       { return r.updatedAt }
