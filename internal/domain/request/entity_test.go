//go:build unit

package request_test

import (
	"testing"
	"time"

	"coach-booking-engine/internal/domain/request"
	"coach-booking-engine/internal/pkg/ptr"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func validWindow(t *testing.T) request.TimeWindow {
	t.Helper()
	w, err := request.NewTimeWindow(now.Add(24*time.Hour), now.Add(25*time.Hour), "America/New_York", now)
	require.NoError(t, err)
	return w
}

func TestNewTimeWindow(t *testing.T) {
	t.Run("start after end rejected", func(t *testing.T) {
		_, err := request.NewTimeWindow(now.Add(2*time.Hour), now.Add(time.Hour), "UTC", now)
		assert.ErrorIs(t, err, request.ErrInvalidWindow)
	})

	t.Run("past start rejected", func(t *testing.T) {
		_, err := request.NewTimeWindow(now.Add(-time.Hour), now.Add(time.Hour), "UTC", now)
		assert.ErrorIs(t, err, request.ErrWindowInPast)
	})

	t.Run("bogus timezone rejected", func(t *testing.T) {
		_, err := request.NewTimeWindow(now.Add(time.Hour), now.Add(2*time.Hour), "Mars/Olympus", now)
		assert.ErrorIs(t, err, request.ErrUnknownTimezone)
	})
}

func TestNewBookingRequest(t *testing.T) {
	listing, requester, counterparty := uuid.New(), uuid.New(), uuid.New()

	t.Run("starts pending", func(t *testing.T) {
		r, err := request.NewBookingRequest(listing, requester, counterparty, validWindow(t), 10000, nil, ptr.To("pm_123"))
		require.NoError(t, err)

		assert.Equal(t, request.StatusPending, r.Status())
		assert.True(t, r.IsPending())
		assert.True(t, r.HasStoredPaymentMethod())
		assert.True(t, r.IsCounterparty(counterparty))
		assert.False(t, r.IsCounterparty(requester))
	})

	t.Run("self booking rejected", func(t *testing.T) {
		_, err := request.NewBookingRequest(listing, requester, requester, validWindow(t), 10000, nil, nil)
		assert.ErrorIs(t, err, request.ErrSelfBooking)
	})

	t.Run("non-positive price rejected", func(t *testing.T) {
		_, err := request.NewBookingRequest(listing, requester, counterparty, validWindow(t), 0, nil, nil)
		assert.ErrorIs(t, err, request.ErrNonPositivePrice)
	})
}

func TestStatusTransitions(t *testing.T) {
	cases := []struct {
		from    request.Status
		to      request.Status
		allowed bool
	}{
		{request.StatusPending, request.StatusAccepted, true},
		{request.StatusPending, request.StatusDeclined, true},
		{request.StatusPending, request.StatusCancelled, true},
		{request.StatusPending, request.StatusPending, false},
		// payment-failure rollback is the only backward edge
		{request.StatusAccepted, request.StatusPending, true},
		{request.StatusAccepted, request.StatusDeclined, false},
		{request.StatusAccepted, request.StatusCancelled, false},
		{request.StatusDeclined, request.StatusPending, false},
		{request.StatusDeclined, request.StatusAccepted, false},
		{request.StatusCancelled, request.StatusAccepted, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, tc.from.CanTransition(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestStatusTerminal(t *testing.T) {
	assert.False(t, request.StatusPending.IsTerminal())
	assert.False(t, request.StatusAccepted.IsTerminal())
	assert.True(t, request.StatusDeclined.IsTerminal())
	assert.True(t, request.StatusCancelled.IsTerminal())
}
