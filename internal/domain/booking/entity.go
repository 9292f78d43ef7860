package booking

import (
	"fmt"
	"time"

	"coach-booking-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrNonPositivePrice = errs.New("booking price must be positive")

const ReasonInsufficientAttendance = "insufficient attendance"

// Booking is the financially-settled counterpart of a request (or of a
// direct purchase, in which case requestID is nil). PaymentRef doubles as
// the processor idempotency key: at most one successful capture may ever be
// associated with a booking id.
type Booking struct {
	id                uuid.UUID
	requestID         *uuid.UUID
	requesterID       uuid.UUID
	counterpartyID    uuid.UUID
	priceCents        int64
	commissionCents   int64
	serviceFeeCents   int64
	status            Status
	paymentRef        string
	chargeRef         *string
	fulfillBy         *time.Time
	externalSessionID *string
	reviewReason      *string
	createdAt         time.Time
	updatedAt         time.Time
}

// CaptureIdempotencyKey derives the processor-level idempotency key from the
// booking id, so retries of the capture step can never mint a second charge.
func CaptureIdempotencyKey(bookingID uuid.UUID) string {
	return fmt.Sprintf("capture-%s", bookingID)
}

func NewBooking(
	requestID *uuid.UUID,
	requesterID, counterpartyID uuid.UUID,
	priceCents int64,
	fulfillBy *time.Time,
) (*Booking, error) {
	if priceCents <= 0 {
		return nil, ErrNonPositivePrice
	}

	id := uuid.New()
	return &Booking{
		id:             id,
		requestID:      requestID,
		requesterID:    requesterID,
		counterpartyID: counterpartyID,
		priceCents:     priceCents,
		status:         StatusPending,
		paymentRef:     CaptureIdempotencyKey(id),
		fulfillBy:      fulfillBy,
	}, nil
}

func ReconstructBooking(
	id uuid.UUID,
	requestID *uuid.UUID,
	requesterID, counterpartyID uuid.UUID,
	priceCents, commissionCents, serviceFeeCents int64,
	status Status,
	paymentRef string,
	chargeRef *string,
	fulfillBy *time.Time,
	externalSessionID *string,
	reviewReason *string,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:                id,
		requestID:         requestID,
		requesterID:       requesterID,
		counterpartyID:    counterpartyID,
		priceCents:        priceCents,
		commissionCents:   commissionCents,
		serviceFeeCents:   serviceFeeCents,
		status:            status,
		paymentRef:        paymentRef,
		chargeRef:         chargeRef,
		fulfillBy:         fulfillBy,
		externalSessionID: externalSessionID,
		reviewReason:      reviewReason,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}
}

func (b *Booking) IsPaid() bool {
	return b.status == StatusPaid
}

// IsParty reports whether the given party is on either side of the booking.
func (b *Booking) IsParty(partyID uuid.UUID) bool {
	return b.requesterID == partyID || b.counterpartyID == partyID
}

func (b *Booking) ID() uuid.UUID              { return b.id }
func (b *Booking) RequestID() *uuid.UUID      { return b.requestID }
func (b *Booking) RequesterID() uuid.UUID     { return b.requesterID }
func (b *Booking) CounterpartyID() uuid.UUID  { return b.counterpartyID }
func (b *Booking) PriceCents() int64          { return b.priceCents }
func (b *Booking) CommissionCents() int64     { return b.commissionCents }
func (b *Booking) ServiceFeeCents() int64     { return b.serviceFeeCents }
func (b *Booking) Status() Status             { return b.status }
func (b *Booking) PaymentRef() string         { return b.paymentRef }
func (b *Booking) ChargeRef() *string         { return b.chargeRef }
func (b *Booking) FulfillBy() *time.Time      { return b.fulfillBy }
func (b *Booking) ExternalSessionID() *string { return b.externalSessionID }
func (b *Booking) ReviewReason() *string      { return b.reviewReason }
func (b *Booking) CreatedAt() time.Time       { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time       { return b.updatedAt }
