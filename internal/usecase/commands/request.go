package commands

import (
	"context"
	"fmt"
	"log/slog"

	"coach-booking-engine/internal/domain/booking"
	"coach-booking-engine/internal/domain/fees"
	"coach-booking-engine/internal/domain/request"
	reqdto "coach-booking-engine/internal/handler/dto/request"
	"coach-booking-engine/internal/infra"
	"coach-booking-engine/internal/infra/db"
	"coach-booking-engine/internal/infra/repository"
	"coach-booking-engine/internal/pkg/clock"
	"coach-booking-engine/internal/pkg/errs"
	"coach-booking-engine/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrRequestNotFound         = errs.New("booking request not found")
	ErrStatusMismatch          = errs.New("status mismatch")
	ErrAlreadyProcessed        = errs.New("payment has already been processed for this request")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// StatusConflictError carries the actual persisted status when a guarded
// transition loses a race, so the boundary can say who won.
type StatusConflictError struct {
	Current string
}

func (e *StatusConflictError) Error() string {
	return fmt.Sprintf("status conflict: request is currently %s", e.Current)
}

type AcceptRequestResult struct {
	BookingID uuid.UUID
	ChargeRef string
	Breakdown fees.Breakdown
}

type RequestCommands interface {
	CreateRequest(ctx context.Context, req reqdto.CreateBookingRequestRequest, requesterID uuid.UUID) (*queries.RequestView, error)
	AcceptRequest(ctx context.Context, requestID, partyID uuid.UUID) (*AcceptRequestResult, error)
	DeclineRequest(ctx context.Context, requestID, partyID uuid.UUID) error
	CancelRequest(ctx context.Context, requestID, partyID uuid.UUID) error
}

type requestUseCaseImpl struct {
	requestRepo    RequestRepository
	bookingRepo    BookingRepository
	capturer       PaymentCapturer
	requestQueries queries.RequestQueries
	notifier       Notifier
	db             db.DBTX
	clock          clock.Clock
}

func NewRequestUseCase(
	requestRepo RequestRepository,
	bookingRepo BookingRepository,
	capturer PaymentCapturer,
	requestQueries queries.RequestQueries,
	notifier Notifier,
	pool *pgxpool.Pool,
	clock clock.Clock,
) RequestCommands {
	return &requestUseCaseImpl{
		requestRepo:    requestRepo,
		bookingRepo:    bookingRepo,
		capturer:       capturer,
		requestQueries: requestQueries,
		notifier:       notifier,
		db:             pool,
		clock:          clock,
	}
}

func (u *requestUseCaseImpl) CreateRequest(
	ctx context.Context,
	req reqdto.CreateBookingRequestRequest,
	requesterID uuid.UUID,
) (*queries.RequestView, error) {
	entity, err := req.ToDomain(requesterID, u.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := u.requestRepo.Create(ctx, u.db, entity); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	u.notifier.PostSystemMessage(ctx, entity.ConversationID(), "request_created",
		"A new session request was sent.")

	return u.requestQueries.GetByID(ctx, requesterID, entity.ID())
}

// AcceptRequest claims the request for the counterparty and runs the
// delayed capture. The guarded pending->accepted write happens before the
// charge so a concurrent decline loses cleanly; a declined or failed charge
// rolls the request back to pending through the same guard.
func (u *requestUseCaseImpl) AcceptRequest(
	ctx context.Context,
	requestID, partyID uuid.UUID,
) (*AcceptRequestResult, error) {
	req, err := u.authorizedRequest(ctx, requestID, partyID)
	if err != nil {
		return nil, err
	}
	if !req.HasStoredPaymentMethod() {
		return nil, ErrPaymentMethodMissing
	}

	res, err := u.requestRepo.CompareAndTransition(ctx, requestID, request.StatusPending, request.StatusAccepted)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !res.OK {
		return nil, u.conflictError(res.CurrentStatus)
	}

	bookingEntity, err := u.createBookingRecord(ctx, req)
	if err != nil {
		u.rollbackAccept(ctx, requestID)
		return nil, err
	}

	outcome, err := u.capturer.CaptureForBooking(ctx, bookingEntity, req)
	if err != nil {
		if errs.Is(err, ErrPaymentNotRecorded) {
			// Funds moved; rolling back would contradict the charge.
			return nil, err
		}
		u.rollbackAccept(ctx, requestID)
		u.failBooking(ctx, bookingEntity.ID())
		return nil, err
	}
	if !outcome.Paid {
		u.rollbackAccept(ctx, requestID)
		u.failBooking(ctx, bookingEntity.ID())
		return nil, errs.Mark(&PaymentDeclinedError{
			Code:    outcome.Declined.Code,
			Message: outcome.Declined.Message,
		}, ErrPaymentDeclined)
	}

	u.notifier.PostSystemMessage(ctx, req.ConversationID(), "request_accepted",
		"The session request was accepted and payment completed.")

	return &AcceptRequestResult{
		BookingID: bookingEntity.ID(),
		ChargeRef: outcome.ChargeRef,
		Breakdown: outcome.Breakdown,
	}, nil
}

func (u *requestUseCaseImpl) DeclineRequest(ctx context.Context, requestID, partyID uuid.UUID) error {
	req, err := u.authorizedRequest(ctx, requestID, partyID)
	if err != nil {
		return err
	}

	res, err := u.requestRepo.CompareAndTransition(ctx, requestID, request.StatusPending, request.StatusDeclined)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !res.OK {
		return u.conflictError(res.CurrentStatus)
	}

	u.notifier.PostSystemMessage(ctx, req.ConversationID(), "request_declined",
		"The session request was declined.")
	return nil
}

// CancelRequest is the requester withdrawing a still-pending request.
func (u *requestUseCaseImpl) CancelRequest(ctx context.Context, requestID, partyID uuid.UUID) error {
	req, err := u.requestRepo.FindByID(ctx, u.db, requestID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrRequestNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if req.RequesterID() != partyID {
		return ErrRequestNotFound
	}

	res, err := u.requestRepo.CompareAndTransition(ctx, requestID, request.StatusPending, request.StatusCancelled)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !res.OK {
		return u.conflictError(res.CurrentStatus)
	}

	u.notifier.PostSystemMessage(ctx, req.ConversationID(), "request_cancelled",
		"The session request was withdrawn.")
	return nil
}

// authorizedRequest loads the request and verifies the caller is its
// counterparty. A wrong-party caller gets the generic not-found so the
// record's existence is never confirmed to outsiders.
func (u *requestUseCaseImpl) authorizedRequest(ctx context.Context, requestID, partyID uuid.UUID) (*request.BookingRequest, error) {
	req, err := u.requestRepo.FindByID(ctx, u.db, requestID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !req.IsCounterparty(partyID) {
		return nil, ErrRequestNotFound
	}
	return req, nil
}

func (u *requestUseCaseImpl) createBookingRecord(ctx context.Context, req *request.BookingRequest) (*booking.Booking, error) {
	requestID := req.ID()
	fulfillBy := req.Window().End()
	entity, err := booking.NewBooking(&requestID, req.RequesterID(), req.CounterpartyID(), req.PriceCents(), &fulfillBy)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	if err := u.bookingRepo.Create(ctx, u.db, entity); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return entity, nil
}

func (u *requestUseCaseImpl) conflictError(current string) error {
	if current == request.StatusAccepted.String() {
		return ErrAlreadyProcessed
	}
	return errs.Mark(&StatusConflictError{Current: current}, ErrStatusMismatch)
}

// rollbackAccept returns an accepted-but-unpaid request to pending, the one
// backward edge in the request lifecycle.
func (u *requestUseCaseImpl) rollbackAccept(ctx context.Context, requestID uuid.UUID) {
	res, err := u.requestRepo.CompareAndTransition(ctx, requestID, request.StatusAccepted, request.StatusPending)
	if err != nil || !res.OK {
		slog.WarnContext(ctx, "failed to roll back request after payment failure",
			"request_id", requestID, "error", err)
	}
}

func (u *requestUseCaseImpl) failBooking(ctx context.Context, bookingID uuid.UUID) {
	res, err := u.bookingRepo.CompareAndTransition(ctx, bookingID,
		booking.StatusPending, booking.StatusFailed, repository.TransitionExtras{})
	if err != nil || !res.OK {
		slog.WarnContext(ctx, "failed to mark booking failed after payment failure",
			"booking_id", bookingID, "error", err)
	}
}
