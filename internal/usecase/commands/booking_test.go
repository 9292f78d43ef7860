//go:build unit

package commands_test

import (
	"context"
	"testing"

	"coach-booking-engine/internal/infra"
	"coach-booking-engine/internal/usecase/commands"
	"coach-booking-engine/tests/common/builder"
	commandsmock "coach-booking-engine/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newBookingUseCase(t *testing.T) (*commandsmock.MockBookingRepository, commands.BookingCommands) {
	ctrl := gomock.NewController(t)
	bookingRepo := commandsmock.NewMockBookingRepository(ctrl)
	return bookingRepo, commands.NewBookingUseCase(bookingRepo, nil)
}

func TestAttachSession(t *testing.T) {
	t.Run("a party binds the session id", func(t *testing.T) {
		bookingRepo, uc := newBookingUseCase(t)
		bb := builder.NewBookingBuilder()

		bookingRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), bb.ID).Return(bb.BuildDomain(), nil)
		bookingRepo.EXPECT().AttachExternalSession(gomock.Any(), gomock.Any(), bb.ID, "sess-1").Return(nil)

		require.NoError(t, uc.AttachSession(context.Background(), bb.ID, bb.CounterpartyID, "sess-1"))
	})

	t.Run("an outsider gets the same answer as a missing booking", func(t *testing.T) {
		bookingRepo, uc := newBookingUseCase(t)
		bb := builder.NewBookingBuilder()

		bookingRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), bb.ID).Return(bb.BuildDomain(), nil)

		err := uc.AttachSession(context.Background(), bb.ID, uuid.New(), "sess-1")
		assert.ErrorIs(t, err, commands.ErrBookingNotFound)
	})

	t.Run("unknown booking", func(t *testing.T) {
		bookingRepo, uc := newBookingUseCase(t)
		bb := builder.NewBookingBuilder()

		bookingRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), bb.ID).
			Return(nil, infra.WrapRepoErr("not found", nil, infra.KindNotFound))

		err := uc.AttachSession(context.Background(), bb.ID, bb.RequesterID, "sess-1")
		assert.ErrorIs(t, err, commands.ErrBookingNotFound)
	})

	t.Run("empty session id", func(t *testing.T) {
		_, uc := newBookingUseCase(t)
		bb := builder.NewBookingBuilder()

		err := uc.AttachSession(context.Background(), bb.ID, bb.RequesterID, "")
		assert.ErrorIs(t, err, commands.ErrDomainValidation)
	})
}
