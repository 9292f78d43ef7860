//go:build unit

package commands_test

import (
	"context"
	"testing"

	"coach-booking-engine/internal/domain/booking"
	"coach-booking-engine/internal/infra"
	"coach-booking-engine/internal/infra/db"
	"coach-booking-engine/internal/infra/paymentgw"
	"coach-booking-engine/internal/infra/repository"
	"coach-booking-engine/internal/pkg/errs"
	"coach-booking-engine/internal/usecase/commands"
	"coach-booking-engine/tests/common/builder"
	commandsmock "coach-booking-engine/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type captureFixture struct {
	bookingRepo *commandsmock.MockBookingRepository
	feeRepo     *commandsmock.MockFeeConfigRepository
	profileRepo *commandsmock.MockPaymentProfileRepository
	gateway     *commandsmock.MockPaymentGateway
	txr         *commandsmock.MockTxRunner
	capturer    commands.PaymentCapturer
}

func newCaptureFixture(t *testing.T) *captureFixture {
	ctrl := gomock.NewController(t)
	f := &captureFixture{
		bookingRepo: commandsmock.NewMockBookingRepository(ctrl),
		feeRepo:     commandsmock.NewMockFeeConfigRepository(ctrl),
		profileRepo: commandsmock.NewMockPaymentProfileRepository(ctrl),
		gateway:     commandsmock.NewMockPaymentGateway(ctrl),
		txr:         commandsmock.NewMockTxRunner(ctrl),
	}
	f.capturer = commands.NewPaymentCapturer(f.bookingRepo, f.feeRepo, f.profileRepo, f.gateway, nil, f.txr)
	return f
}

func (f *captureFixture) runTx() *gomock.Call {
	return f.txr.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, db.DBTX) error) error {
			return fn(ctx, nil)
		})
}

func payoutAccount(ref string) repository.PaymentProfile {
	return repository.PaymentProfile{
		PartyID:          uuid.New(),
		CustomerRef:      "cus_counterparty",
		PayoutAccountRef: &ref,
	}
}

func requesterProfile(customerRef string) repository.PaymentProfile {
	return repository.PaymentProfile{PartyID: uuid.New(), CustomerRef: customerRef}
}

func activeFees() repository.FeeConfig {
	return repository.FeeConfig{
		CommissionPercent:   10,
		ServiceFeePercent:   5,
		ServiceFeeFlatCents: 0,
	}
}

func TestCaptureForBooking_Success(t *testing.T) {
	f := newCaptureFixture(t)
	ctx := context.Background()

	reqB := builder.NewRequestBuilder()
	b := builder.NewBookingBuilder().With(func(bb *builder.BookingBuilder) {
		bb.RequesterID = reqB.RequesterID
		bb.CounterpartyID = reqB.CounterpartyID
		bb.PriceCents = 10000
	}).BuildDomain()
	req := reqB.BuildDomain()

	f.profileRepo.EXPECT().FindByPartyID(gomock.Any(), gomock.Any(), b.CounterpartyID()).
		Return(payoutAccount("acct_coach"), nil)
	f.gateway.EXPECT().PayoutReady(gomock.Any(), "acct_coach").Return(true, nil)
	f.feeRepo.EXPECT().Active(gomock.Any(), gomock.Any()).Return(activeFees(), nil)
	f.bookingRepo.EXPECT().UpdateFees(gomock.Any(), gomock.Any(), b.ID(), int64(1000), int64(500)).Return(nil)
	f.profileRepo.EXPECT().FindByPartyID(gomock.Any(), gomock.Any(), b.RequesterID()).
		Return(requesterProfile("cus_requester"), nil)
	f.gateway.EXPECT().EnsureAttached(gomock.Any(), "cus_requester", *req.PaymentMethodRef()).Return(nil)

	var captured paymentgw.CaptureParams
	f.gateway.EXPECT().Capture(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p paymentgw.CaptureParams) (paymentgw.CaptureResult, error) {
			captured = p
			return paymentgw.CaptureResult{Succeeded: true, ChargeRef: "ch_1"}, nil
		})

	f.runTx()
	f.bookingRepo.EXPECT().CompareAndTransitionTx(gomock.Any(), gomock.Any(), b.ID(),
		booking.StatusPending, booking.StatusPaid, gomock.Any()).
		Return(repository.TransitionResult{OK: true, PreviousStatus: "pending"}, nil)

	outcome, err := f.capturer.CaptureForBooking(ctx, b, req)
	require.NoError(t, err)
	require.True(t, outcome.Paid)
	assert.Equal(t, "ch_1", outcome.ChargeRef)

	// Charge totals follow the split: requester pays base plus service fee,
	// the platform keeps commission plus service fee.
	assert.Equal(t, booking.CaptureIdempotencyKey(b.ID()), captured.IdempotencyKey)
	assert.Equal(t, int64(10500), captured.AmountCents)
	assert.Equal(t, int64(1500), captured.ApplicationFeeCents)
	assert.Equal(t, "acct_coach", captured.DestinationAccount)
	assert.Equal(t, b.ID().String(), captured.Metadata["booking_id"])
}

func TestCaptureForBooking_PayoutNotReady(t *testing.T) {
	tests := []struct {
		name  string
		setup func(f *captureFixture, counterpartyID uuid.UUID)
	}{
		{
			name: "no payment profile",
			setup: func(f *captureFixture, counterpartyID uuid.UUID) {
				f.profileRepo.EXPECT().FindByPartyID(gomock.Any(), gomock.Any(), counterpartyID).
					Return(repository.PaymentProfile{}, infra.WrapRepoErr("payment profile not found", nil, infra.KindNotFound))
			},
		},
		{
			name: "no payout account on profile",
			setup: func(f *captureFixture, counterpartyID uuid.UUID) {
				f.profileRepo.EXPECT().FindByPartyID(gomock.Any(), gomock.Any(), counterpartyID).
					Return(repository.PaymentProfile{CustomerRef: "cus_x"}, nil)
			},
		},
		{
			name: "processor reports account not chargeable",
			setup: func(f *captureFixture, counterpartyID uuid.UUID) {
				f.profileRepo.EXPECT().FindByPartyID(gomock.Any(), gomock.Any(), counterpartyID).
					Return(payoutAccount("acct_incomplete"), nil)
				f.gateway.EXPECT().PayoutReady(gomock.Any(), "acct_incomplete").Return(false, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCaptureFixture(t)
			reqB := builder.NewRequestBuilder()
			b := builder.NewBookingBuilder().With(func(bb *builder.BookingBuilder) {
				bb.CounterpartyID = reqB.CounterpartyID
			}).BuildDomain()

			tt.setup(f, b.CounterpartyID())

			outcome, err := f.capturer.CaptureForBooking(context.Background(), b, reqB.BuildDomain())
			require.Error(t, err)
			assert.ErrorIs(t, err, commands.ErrPayoutNotReady)
			assert.Nil(t, outcome)
		})
	}
}

func TestCaptureForBooking_MissingPaymentMethod(t *testing.T) {
	f := newCaptureFixture(t)
	reqB := builder.NewRequestBuilder().With(func(b *builder.RequestBuilder) {
		b.PaymentMethodRef = nil
	})
	b := builder.NewBookingBuilder().BuildDomain()

	outcome, err := f.capturer.CaptureForBooking(context.Background(), b, reqB.BuildDomain())
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrPaymentMethodMissing)
	assert.Nil(t, outcome)
}

func TestCaptureForBooking_Declined(t *testing.T) {
	declines := []paymentgw.DeclineCode{
		paymentgw.DeclineGeneric,
		paymentgw.DeclineExpiredCard,
		paymentgw.DeclineInsufficient,
		paymentgw.DeclineAuthValidation,
	}

	for _, code := range declines {
		t.Run(string(code), func(t *testing.T) {
			f := newCaptureFixture(t)
			reqB := builder.NewRequestBuilder()
			b := builder.NewBookingBuilder().With(func(bb *builder.BookingBuilder) {
				bb.RequesterID = reqB.RequesterID
				bb.CounterpartyID = reqB.CounterpartyID
			}).BuildDomain()
			req := reqB.BuildDomain()

			f.profileRepo.EXPECT().FindByPartyID(gomock.Any(), gomock.Any(), b.CounterpartyID()).
				Return(payoutAccount("acct_coach"), nil)
			f.gateway.EXPECT().PayoutReady(gomock.Any(), "acct_coach").Return(true, nil)
			f.feeRepo.EXPECT().Active(gomock.Any(), gomock.Any()).Return(activeFees(), nil)
			f.bookingRepo.EXPECT().UpdateFees(gomock.Any(), gomock.Any(), b.ID(), gomock.Any(), gomock.Any()).Return(nil)
			f.profileRepo.EXPECT().FindByPartyID(gomock.Any(), gomock.Any(), b.RequesterID()).
				Return(requesterProfile("cus_requester"), nil)
			f.gateway.EXPECT().EnsureAttached(gomock.Any(), "cus_requester", gomock.Any()).Return(nil)
			f.gateway.EXPECT().Capture(gomock.Any(), gomock.Any()).
				Return(paymentgw.CaptureResult{
					Succeeded: false,
					Decline:   &paymentgw.Decline{Code: code, Message: code.UserMessage()},
				}, nil)

			// A decline is data, not an error, and must never reach the guard.
			outcome, err := f.capturer.CaptureForBooking(context.Background(), b, req)
			require.NoError(t, err)
			require.NotNil(t, outcome.Declined)
			assert.False(t, outcome.Paid)
			assert.Equal(t, code, outcome.Declined.Code)
		})
	}
}

func TestCaptureForBooking_PersistenceFailureAfterCharge(t *testing.T) {
	f := newCaptureFixture(t)
	reqB := builder.NewRequestBuilder()
	b := builder.NewBookingBuilder().With(func(bb *builder.BookingBuilder) {
		bb.RequesterID = reqB.RequesterID
		bb.CounterpartyID = reqB.CounterpartyID
	}).BuildDomain()
	req := reqB.BuildDomain()

	f.profileRepo.EXPECT().FindByPartyID(gomock.Any(), gomock.Any(), b.CounterpartyID()).
		Return(payoutAccount("acct_coach"), nil)
	f.gateway.EXPECT().PayoutReady(gomock.Any(), "acct_coach").Return(true, nil)
	f.feeRepo.EXPECT().Active(gomock.Any(), gomock.Any()).Return(activeFees(), nil)
	f.bookingRepo.EXPECT().UpdateFees(gomock.Any(), gomock.Any(), b.ID(), gomock.Any(), gomock.Any()).Return(nil)
	f.profileRepo.EXPECT().FindByPartyID(gomock.Any(), gomock.Any(), b.RequesterID()).
		Return(requesterProfile("cus_requester"), nil)
	f.gateway.EXPECT().EnsureAttached(gomock.Any(), "cus_requester", gomock.Any()).Return(nil)

	// The charge goes through exactly once.
	f.gateway.EXPECT().Capture(gomock.Any(), gomock.Any()).
		Return(paymentgw.CaptureResult{Succeeded: true, ChargeRef: "ch_orphan"}, nil).
		Times(1)

	f.txr.EXPECT().Within(gomock.Any(), gomock.Any()).
		Return(errs.New("connection reset"))

	outcome, err := f.capturer.CaptureForBooking(context.Background(), b, req)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrPaymentNotRecorded)
	assert.Nil(t, outcome)
}

func TestCaptureForBooking_RetryReusesIdempotencyKey(t *testing.T) {
	f := newCaptureFixture(t)
	reqB := builder.NewRequestBuilder()
	b := builder.NewBookingBuilder().With(func(bb *builder.BookingBuilder) {
		bb.RequesterID = reqB.RequesterID
		bb.CounterpartyID = reqB.CounterpartyID
	}).BuildDomain()
	req := reqB.BuildDomain()

	f.profileRepo.EXPECT().FindByPartyID(gomock.Any(), gomock.Any(), b.CounterpartyID()).
		Return(payoutAccount("acct_coach"), nil).Times(2)
	f.gateway.EXPECT().PayoutReady(gomock.Any(), "acct_coach").Return(true, nil).Times(2)
	f.feeRepo.EXPECT().Active(gomock.Any(), gomock.Any()).Return(activeFees(), nil).Times(2)
	f.bookingRepo.EXPECT().UpdateFees(gomock.Any(), gomock.Any(), b.ID(), gomock.Any(), gomock.Any()).Return(nil).Times(2)
	f.profileRepo.EXPECT().FindByPartyID(gomock.Any(), gomock.Any(), b.RequesterID()).
		Return(requesterProfile("cus_requester"), nil).Times(2)
	f.gateway.EXPECT().EnsureAttached(gomock.Any(), "cus_requester", gomock.Any()).Return(nil).Times(2)

	var keys []string
	f.gateway.EXPECT().Capture(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p paymentgw.CaptureParams) (paymentgw.CaptureResult, error) {
			keys = append(keys, p.IdempotencyKey)
			return paymentgw.CaptureResult{Succeeded: true, ChargeRef: "ch_1"}, nil
		}).Times(2)

	f.runTx().Times(2)
	f.bookingRepo.EXPECT().CompareAndTransitionTx(gomock.Any(), gomock.Any(), b.ID(),
		booking.StatusPending, booking.StatusPaid, gomock.Any()).
		Return(repository.TransitionResult{OK: true}, nil).Times(2)

	for range 2 {
		_, err := f.capturer.CaptureForBooking(context.Background(), b, req)
		require.NoError(t, err)
	}

	require.Len(t, keys, 2)
	assert.Equal(t, keys[0], keys[1])
	assert.Equal(t, booking.CaptureIdempotencyKey(b.ID()), keys[0])
}
