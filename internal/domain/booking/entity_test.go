//go:build unit

package booking_test

import (
	"testing"

	"coach-booking-engine/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBooking(t *testing.T) {
	requestID := uuid.New()

	t.Run("payment ref derived from booking id", func(t *testing.T) {
		b, err := booking.NewBooking(&requestID, uuid.New(), uuid.New(), 10000, nil)
		require.NoError(t, err)

		assert.Equal(t, booking.StatusPending, b.Status())
		assert.Equal(t, "capture-"+b.ID().String(), b.PaymentRef())
	})

	t.Run("non-positive price rejected", func(t *testing.T) {
		_, err := booking.NewBooking(&requestID, uuid.New(), uuid.New(), -1, nil)
		assert.ErrorIs(t, err, booking.ErrNonPositivePrice)
	})
}

func TestBookingStatusTransitions(t *testing.T) {
	cases := []struct {
		from    booking.Status
		to      booking.Status
		allowed bool
	}{
		{booking.StatusPending, booking.StatusPaid, true},
		{booking.StatusPending, booking.StatusFailed, true},
		{booking.StatusPending, booking.StatusCompleted, false},
		{booking.StatusPaid, booking.StatusCompleted, true},
		{booking.StatusPaid, booking.StatusNeedsReview, true},
		{booking.StatusPaid, booking.StatusFailed, false},
		{booking.StatusCompleted, booking.StatusNeedsReview, false},
		{booking.StatusNeedsReview, booking.StatusCompleted, false},
		{booking.StatusFailed, booking.StatusPaid, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, tc.from.CanTransition(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestStatusIsTerminal(t *testing.T) {
	assert.False(t, booking.StatusPending.IsTerminal())
	assert.False(t, booking.StatusPaid.IsTerminal())
	assert.True(t, booking.StatusFailed.IsTerminal())
	assert.True(t, booking.StatusCompleted.IsTerminal())
	assert.True(t, booking.StatusNeedsReview.IsTerminal())
}
