package queries

import (
	"context"

	"github.com/google/uuid"
)

type BookingQueries interface {
	GetByID(ctx context.Context, viewerID uuid.UUID, id uuid.UUID) (*BookingView, error)
	GetByRequestID(ctx context.Context, viewerID uuid.UUID, requestID uuid.UUID) (*BookingView, error)
	ListByParty(ctx context.Context, partyID uuid.UUID) ([]*BookingView, error)
}

type BookingViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByRequestID(ctx context.Context, requestID uuid.UUID) (*BookingView, error)
	FindByParty(ctx context.Context, partyID uuid.UUID) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	repo BookingViewRepo
}

func NewBookingQueries(repo BookingViewRepo) BookingQueries {
	return &bookingQueriesImpl{repo: repo}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, viewerID uuid.UUID, id uuid.UUID) (*BookingView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return authorizeBookingView(view, viewerID)
}

func (q *bookingQueriesImpl) GetByRequestID(ctx context.Context, viewerID uuid.UUID, requestID uuid.UUID) (*BookingView, error) {
	view, err := q.repo.FindByRequestID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	return authorizeBookingView(view, viewerID)
}

func (q *bookingQueriesImpl) ListByParty(ctx context.Context, partyID uuid.UUID) ([]*BookingView, error) {
	return q.repo.FindByParty(ctx, partyID)
}

func authorizeBookingView(view *BookingView, viewerID uuid.UUID) (*BookingView, error) {
	if view.RequesterID != viewerID && view.CounterpartyID != viewerID {
		return nil, ErrNotFound
	}
	return view, nil
}
