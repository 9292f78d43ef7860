package queries

import (
	"context"

	"coach-booking-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrNotFound covers both a missing record and a viewer who is not a party
// to it. An unauthorized caller must not learn the record exists.
var ErrNotFound = errs.New("record not found")

type RequestQueries interface {
	GetByID(ctx context.Context, viewerID uuid.UUID, id uuid.UUID) (*RequestView, error)
	ListByParty(ctx context.Context, partyID uuid.UUID) ([]*RequestView, error)
}

type RequestViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RequestView, error)
	FindByParty(ctx context.Context, partyID uuid.UUID) ([]*RequestView, error)
}

type requestQueriesImpl struct {
	repo RequestViewRepo
}

func NewRequestQueries(repo RequestViewRepo) RequestQueries {
	return &requestQueriesImpl{repo: repo}
}

func (q *requestQueriesImpl) GetByID(ctx context.Context, viewerID uuid.UUID, id uuid.UUID) (*RequestView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if view.RequesterID != viewerID && view.CounterpartyID != viewerID {
		return nil, ErrNotFound
	}
	return view, nil
}

func (q *requestQueriesImpl) ListByParty(ctx context.Context, partyID uuid.UUID) ([]*RequestView, error) {
	return q.repo.FindByParty(ctx, partyID)
}
