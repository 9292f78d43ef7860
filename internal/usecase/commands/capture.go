package commands

import (
	"context"
	"fmt"
	"log/slog"

	"coach-booking-engine/internal/domain/booking"
	"coach-booking-engine/internal/domain/fees"
	"coach-booking-engine/internal/domain/request"
	"coach-booking-engine/internal/infra"
	"coach-booking-engine/internal/infra/db"
	"coach-booking-engine/internal/infra/paymentgw"
	"coach-booking-engine/internal/infra/repository"
	"coach-booking-engine/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrPayoutNotReady       = errs.New("counterparty payment setup incomplete")
	ErrPaymentMethodMissing = errs.New("no stored payment method on request")
	ErrPaymentDeclined      = errs.New("payment declined")
	ErrPaymentNotRecorded   = errs.New("payment processed but not recorded")
)

// PaymentDeclinedError carries the decline category so the boundary can
// render per-category guidance.
type PaymentDeclinedError struct {
	Code    paymentgw.DeclineCode
	Message string
}

func (e *PaymentDeclinedError) Error() string {
	return fmt.Sprintf("payment declined (%s): %s", e.Code, e.Message)
}

// CaptureOutcome is the result of one capture attempt. Declined is set
// instead of an error so the caller must handle the category explicitly.
type CaptureOutcome struct {
	Paid      bool
	ChargeRef string
	Breakdown fees.Breakdown
	Declined  *paymentgw.Decline
}

// PaymentCapturer charges a stored payment method for an approved request
// and records the outcome. At most one charge can ever succeed per booking.
type PaymentCapturer interface {
	CaptureForBooking(ctx context.Context, b *booking.Booking, req *request.BookingRequest) (*CaptureOutcome, error)
}

type captureUseCaseImpl struct {
	bookingRepo BookingRepository
	feeRepo     FeeConfigRepository
	profileRepo PaymentProfileRepository
	gateway     PaymentGateway
	db          db.DBTX
	txr         TxRunner
}

func NewPaymentCapturer(
	bookingRepo BookingRepository,
	feeRepo FeeConfigRepository,
	profileRepo PaymentProfileRepository,
	gateway PaymentGateway,
	pool *pgxpool.Pool,
	txr TxRunner,
) PaymentCapturer {
	return &captureUseCaseImpl{
		bookingRepo: bookingRepo,
		feeRepo:     feeRepo,
		profileRepo: profileRepo,
		gateway:     gateway,
		db:          pool,
		txr:         txr,
	}
}

// CaptureForBooking runs the delayed-capture flow: capability check, fee
// computation, payment-method attachment, charge, then the paid transition.
// All reads and the charge itself happen before any row lock; the guard
// transaction covers only the final status-and-reference write.
func (u *captureUseCaseImpl) CaptureForBooking(
	ctx context.Context,
	b *booking.Booking,
	req *request.BookingRequest,
) (*CaptureOutcome, error) {
	if !req.HasStoredPaymentMethod() {
		return nil, ErrPaymentMethodMissing
	}

	payoutAccount, err := u.verifyPayoutDestination(ctx, b.CounterpartyID())
	if err != nil {
		return nil, err
	}

	breakdown, err := u.computeFees(ctx, b)
	if err != nil {
		return nil, err
	}

	customerRef, err := u.attachPaymentMethod(ctx, b.RequesterID(), *req.PaymentMethodRef())
	if err != nil {
		return nil, err
	}

	result, err := u.gateway.Capture(ctx, paymentgw.CaptureParams{
		IdempotencyKey:      b.PaymentRef(),
		AmountCents:         breakdown.TotalChargedCents,
		ApplicationFeeCents: breakdown.CommissionCents + breakdown.ServiceFeeCents,
		Currency:            "usd",
		CustomerRef:         customerRef,
		PaymentMethodRef:    *req.PaymentMethodRef(),
		DestinationAccount:  payoutAccount,
		Metadata: map[string]string{
			"booking_id": b.ID().String(),
			"request_id": req.ID().String(),
		},
	})
	if err != nil {
		return nil, errs.Wrap(err, "charge submission failed")
	}

	if !result.Succeeded {
		return &CaptureOutcome{
			Paid:      false,
			Breakdown: breakdown,
			Declined:  result.Decline,
		}, nil
	}

	if err := u.recordPaid(ctx, b.ID(), result.ChargeRef); err != nil {
		// Funds already moved. Never retry the charge here: surface the
		// inconsistency loudly so an operator reconciles manually.
		slog.ErrorContext(ctx, "charge succeeded but booking was not recorded as paid",
			"booking_id", b.ID(),
			"charge_ref", result.ChargeRef,
			"error", err,
		)
		return nil, errs.Mark(err, ErrPaymentNotRecorded)
	}

	return &CaptureOutcome{
		Paid:      true,
		ChargeRef: result.ChargeRef,
		Breakdown: breakdown,
	}, nil
}

func (u *captureUseCaseImpl) verifyPayoutDestination(ctx context.Context, counterpartyID uuid.UUID) (string, error) {
	profile, err := u.profileRepo.FindByPartyID(ctx, u.db, counterpartyID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return "", errs.Mark(err, ErrPayoutNotReady)
		}
		return "", errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if profile.PayoutAccountRef == nil {
		return "", ErrPayoutNotReady
	}

	ready, err := u.gateway.PayoutReady(ctx, *profile.PayoutAccountRef)
	if err != nil {
		return "", errs.Wrap(err, "payout capability check failed")
	}
	if !ready {
		return "", ErrPayoutNotReady
	}
	return *profile.PayoutAccountRef, nil
}

// computeFees reads the active fee configuration exactly once and persists
// the computed split on the booking before any charge is submitted.
func (u *captureUseCaseImpl) computeFees(ctx context.Context, b *booking.Booking) (fees.Breakdown, error) {
	cfg, err := u.feeRepo.Active(ctx, u.db)
	if err != nil {
		return fees.Breakdown{}, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	breakdown, err := fees.ComputeBreakdown(b.PriceCents(), cfg.CommissionPercent, cfg.ServiceFeeRates())
	if err != nil {
		return fees.Breakdown{}, errs.Mark(err, ErrDomainValidation)
	}
	if !fees.Validate(b.PriceCents(), breakdown.CommissionCents) {
		return fees.Breakdown{}, errs.Mark(errs.New("fee split fails payout floor"), ErrDomainValidation)
	}

	if err := u.bookingRepo.UpdateFees(ctx, u.db, b.ID(), breakdown.CommissionCents, breakdown.ServiceFeeCents); err != nil {
		return fees.Breakdown{}, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return breakdown, nil
}

func (u *captureUseCaseImpl) attachPaymentMethod(ctx context.Context, requesterID uuid.UUID, paymentMethodRef string) (string, error) {
	profile, err := u.profileRepo.FindByPartyID(ctx, u.db, requesterID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return "", errs.Mark(err, ErrPaymentMethodMissing)
		}
		return "", errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := u.gateway.EnsureAttached(ctx, profile.CustomerRef, paymentMethodRef); err != nil {
		return "", errs.Wrap(err, "payment method attachment failed")
	}
	return profile.CustomerRef, nil
}

func (u *captureUseCaseImpl) recordPaid(ctx context.Context, bookingID uuid.UUID, chargeRef string) error {
	return u.txr.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		result, err := u.bookingRepo.CompareAndTransitionTx(ctx, tx, bookingID,
			booking.StatusPending, booking.StatusPaid,
			repository.TransitionExtras{ChargeRef: &chargeRef},
		)
		if err != nil {
			return err
		}
		if !result.OK {
			return errs.Newf("booking no longer pending (currently %s)", result.CurrentStatus)
		}
		return nil
	})
}
