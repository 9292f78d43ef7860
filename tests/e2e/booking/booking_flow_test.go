//go:build e2e

package booking_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"testing"
	"time"

	"coach-booking-engine/internal/handler/dto/request"
	"coach-booking-engine/internal/handler/dto/response"
	"coach-booking-engine/internal/infra/repository"
	"coach-booking-engine/internal/pkg/webhooksig"
	"coach-booking-engine/tests/common/authtest"
	"coach-booking-engine/tests/common/builder"
	"coach-booking-engine/tests/common/dbtest"
	"coach-booking-engine/tests/common/httptest"
	"coach-booking-engine/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	requestsURL        = "/api/requests"
	bookingsURL        = "/api/bookings"
	paymentsWebhookURL = "/webhooks/payments"
	videoWebhookURL    = "/webhooks/video"
)

type BookingFlowSuite struct {
	e2e.SharedSuite
}

func TestBookingFlowSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingFlowSuite))
}

func (s *BookingFlowSuite) token(partyID uuid.UUID) string {
	return authtest.MintToken(s.T(), s.Config.JWT, partyID, "party")
}

// postWebhook signs and delivers an event envelope the way the provider
// would. occurredAt must differ between events of the same type for the
// same entity, matching real provider deliveries.
func (s *BookingFlowSuite) postWebhook(url, secret, eventType, entityID string, occurredAt time.Time, data map[string]any) int {
	t := s.T()
	t.Helper()

	payload, err := json.Marshal(data)
	require.NoError(t, err)

	body, err := json.Marshal(map[string]any{
		"type":        eventType,
		"entity_id":   entityID,
		"occurred_at": occurredAt.Unix(),
		"data":        json.RawMessage(payload),
	})
	require.NoError(t, err)

	verifier := webhooksig.NewVerifier(secret, 300*time.Second)
	timestamp := strconv.FormatInt(time.Now().Unix(), 10)

	w := httptest.PerformRawRequest(t, s.Router, http.MethodPost, url, body, map[string]string{
		"X-Webhook-Signature": verifier.Sign(timestamp, body),
		"X-Webhook-Timestamp": timestamp,
	})
	return w.Code
}

func (s *BookingFlowSuite) postVideoEvent(eventType, sessionID string, occurredAt time.Time, data map[string]any) int {
	return s.postWebhook(videoWebhookURL, s.Config.Video.Secret, eventType, sessionID, occurredAt, data)
}

// createRequest posts a booking request as the requester and returns the view.
func (s *BookingFlowSuite) createRequest(requesterID, counterpartyID uuid.UUID, paymentMethodRef string) response.BookingRequestResponse {
	t := s.T()
	t.Helper()

	reqBody := builder.NewRequestBuilder().
		With(func(b *builder.RequestBuilder) {
			b.CounterpartyID = counterpartyID
			if paymentMethodRef == "" {
				b.PaymentMethodRef = nil
			} else {
				b.PaymentMethodRef = &paymentMethodRef
			}
		}).
		BuildCreateRequestDTO()

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, requestsURL, reqBody, s.token(requesterID))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created response.BookingRequestResponse
	err := httptest.DecodeResponseBody(t, w.Body, &created)
	require.NoError(t, err)
	return created
}

func (s *BookingFlowSuite) getBooking(partyID, bookingID uuid.UUID) response.BookingResponse {
	t := s.T()
	t.Helper()

	w := httptest.PerformRequest(t, s.Router, http.MethodGet,
		fmt.Sprintf("%s/%s", bookingsURL, bookingID), nil, s.token(partyID))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var view response.BookingResponse
	err := httptest.DecodeResponseBody(t, w.Body, &view)
	require.NoError(t, err)
	return view
}

func (s *BookingFlowSuite) getRequestStatus(partyID, requestID uuid.UUID) string {
	t := s.T()
	t.Helper()

	w := httptest.PerformRequest(t, s.Router, http.MethodGet,
		fmt.Sprintf("%s/%s", requestsURL, requestID), nil, s.token(partyID))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var view response.BookingRequestResponse
	err := httptest.DecodeResponseBody(t, w.Body, &view)
	require.NoError(t, err)
	return view.Status
}

// =============================================================================
// TestBookingLifecycle - request to settled booking, end to end
// =============================================================================

func (s *BookingFlowSuite) TestBookingLifecycle() {
	s.Run("Normal case: accepted request is charged and attendance completes it", func() {
		t := s.T()

		requesterID := uuid.New()
		counterpartyID := uuid.New()
		dbtest.CreateTestPaymentProfile(t, s.DB, requesterID, "")
		dbtest.CreateTestPaymentProfile(t, s.DB, counterpartyID, "acct_coach_1")

		created := s.createRequest(requesterID, counterpartyID, "pm_test_visa")
		require.Equal(t, "pending", created.Status)
		require.True(t, created.HasPaymentMethod)

		// Counterparty accepts; the delayed capture runs synchronously.
		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf("%s/%s/accept", requestsURL, created.ID), nil, s.token(counterpartyID))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var accepted response.AcceptResponse
		err := httptest.DecodeResponseBody(t, w.Body, &accepted)
		require.NoError(t, err)
		require.NotEmpty(t, accepted.ChargeRef)
		require.Equal(t, int64(10000), accepted.PriceCents)
		require.Equal(t, int64(1000), accepted.CommissionCents)
		require.Equal(t, int64(500), accepted.ServiceFeeCents)
		require.Equal(t, int64(10500), accepted.TotalChargedCents)
		require.Equal(t, int64(9000), accepted.RetainedCents)

		// The processor saw exactly one charge carrying the full split.
		charges := s.Processor.Charges()
		require.Len(t, charges, 1)
		require.Equal(t, int64(10500), charges[0].AmountCents)
		require.Equal(t, int64(1500), charges[0].ApplicationFee)
		require.Equal(t, "acct_coach_1", charges[0].DestinationAccount)

		booking := s.getBooking(requesterID, accepted.BookingID)
		require.Equal(t, "paid", booking.Status)
		require.NotNil(t, booking.ChargeRef)

		// The processor's asynchronous confirmation lands after the
		// synchronous capture; it must be a harmless no-op.
		code := s.postWebhook(paymentsWebhookURL, s.Config.Payments.WebhookSecret,
			"charge.succeeded", accepted.BookingID.String(), time.Now(),
			map[string]any{"booking_id": accepted.BookingID, "charge_ref": accepted.ChargeRef})
		require.Equal(t, http.StatusOK, code)
		require.Equal(t, "paid", s.getBooking(requesterID, accepted.BookingID).Status)

		// Bind the video session and play back a full two-party session.
		// An outsider cannot bind; only a party to the booking can.
		sessionID := "sess-e2e-" + uuid.New().String()
		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf("%s/%s/session", bookingsURL, accepted.BookingID),
			request.AttachSessionRequest{ExternalSessionID: sessionID}, s.token(uuid.New()))
		require.Equal(t, http.StatusNotFound, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf("%s/%s/session", bookingsURL, accepted.BookingID),
			request.AttachSessionRequest{ExternalSessionID: sessionID}, s.token(counterpartyID))
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		base := time.Now()
		require.Equal(t, http.StatusOK, s.postVideoEvent("session.participant_joined", sessionID,
			base, map[string]any{"participant_id": requesterID}))
		require.Equal(t, http.StatusOK, s.postVideoEvent("session.participant_joined", sessionID,
			base.Add(time.Second), map[string]any{"participant_id": counterpartyID}))

		endedAt := base.Add(time.Hour)
		require.Equal(t, http.StatusOK, s.postVideoEvent("session.ended", sessionID, endedAt, map[string]any{}))

		booking = s.getBooking(counterpartyID, accepted.BookingID)

		requestID := created.ID
		expected := response.BookingResponse{
			ID:                accepted.BookingID,
			RequestID:         &requestID,
			RequesterID:       requesterID,
			CounterpartyID:    counterpartyID,
			PriceCents:        10000,
			CommissionCents:   1000,
			ServiceFeeCents:   500,
			Status:            "completed",
			ChargeRef:         &accepted.ChargeRef,
			ExternalSessionID: &sessionID,
		}
		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.BookingResponse{}, "FulfillBy", "CreatedAt", "UpdatedAt"),
		}
		if diff := cmp.Diff(expected, booking, opts...); diff != "" {
			t.Errorf("Booking response mismatch (-want +got):\n%s", diff)
		}

		// Replayed delivery of the same ended event changes nothing.
		require.Equal(t, http.StatusOK, s.postVideoEvent("session.ended", sessionID, endedAt, map[string]any{}))
		require.Equal(t, "completed", s.getBooking(counterpartyID, accepted.BookingID).Status)
	})

	s.Run("Normal case: single-participant session is parked for review", func() {
		t := s.T()

		requesterID := uuid.New()
		counterpartyID := uuid.New()
		dbtest.CreateTestPaymentProfile(t, s.DB, requesterID, "")
		dbtest.CreateTestPaymentProfile(t, s.DB, counterpartyID, "acct_coach_2")

		created := s.createRequest(requesterID, counterpartyID, "pm_test_visa")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf("%s/%s/accept", requestsURL, created.ID), nil, s.token(counterpartyID))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var accepted response.AcceptResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &accepted))

		sessionID := "sess-e2e-" + uuid.New().String()
		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf("%s/%s/session", bookingsURL, accepted.BookingID),
			request.AttachSessionRequest{ExternalSessionID: sessionID}, s.token(counterpartyID))
		require.Equal(t, http.StatusNoContent, w.Code)

		base := time.Now()
		require.Equal(t, http.StatusOK, s.postVideoEvent("session.participant_joined", sessionID,
			base, map[string]any{"participant_id": counterpartyID}))
		require.Equal(t, http.StatusOK, s.postVideoEvent("session.ended", sessionID,
			base.Add(time.Hour), map[string]any{}))

		booking := s.getBooking(counterpartyID, accepted.BookingID)
		require.Equal(t, "needs_review", booking.Status)
		require.NotNil(t, booking.ReviewReason)
		require.Equal(t, "insufficient attendance", *booking.ReviewReason)
	})

	s.Run("Error case: declined charge returns the request to pending", func() {
		t := s.T()

		requesterID := uuid.New()
		counterpartyID := uuid.New()
		dbtest.CreateTestPaymentProfile(t, s.DB, requesterID, "")
		dbtest.CreateTestPaymentProfile(t, s.DB, counterpartyID, "acct_coach_3")

		created := s.createRequest(requesterID, counterpartyID, "pm_decline_insufficient_funds")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf("%s/%s/accept", requestsURL, created.ID), nil, s.token(counterpartyID))
		require.Equal(t, http.StatusPaymentRequired, w.Code, w.Body.String())

		var declined response.PaymentDeclinedResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &declined))
		require.Equal(t, "insufficient_funds", declined.DeclineCode)
		require.False(t, declined.RequiresAction)

		require.Empty(t, s.Processor.Charges())
		require.Equal(t, "pending", s.getRequestStatus(requesterID, created.ID))
	})

	s.Run("Error case: counterparty without payout capability cannot accept", func() {
		t := s.T()

		requesterID := uuid.New()
		counterpartyID := uuid.New()
		dbtest.CreateTestPaymentProfile(t, s.DB, requesterID, "")
		dbtest.CreateTestPaymentProfile(t, s.DB, counterpartyID, "acct_unready_1")

		created := s.createRequest(requesterID, counterpartyID, "pm_test_visa")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf("%s/%s/accept", requestsURL, created.ID), nil, s.token(counterpartyID))
		require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())

		require.Empty(t, s.Processor.Charges())
		require.Equal(t, "pending", s.getRequestStatus(requesterID, created.ID))
	})

	s.Run("Error case: accept without a stored payment method fails upfront", func() {
		t := s.T()

		requesterID := uuid.New()
		counterpartyID := uuid.New()
		dbtest.CreateTestPaymentProfile(t, s.DB, counterpartyID, "acct_coach_4")

		created := s.createRequest(requesterID, counterpartyID, "")
		require.False(t, created.HasPaymentMethod)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf("%s/%s/accept", requestsURL, created.ID), nil, s.token(counterpartyID))
		require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
	})

	s.Run("Normal case: requester withdraws a pending request", func() {
		t := s.T()

		requesterID := uuid.New()
		counterpartyID := uuid.New()

		created := s.createRequest(requesterID, counterpartyID, "pm_test_visa")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf("%s/%s/cancel", requestsURL, created.ID), nil, s.token(requesterID))
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		require.Equal(t, "cancelled", s.getRequestStatus(requesterID, created.ID))
	})

	s.Run("Error case: second accept of the same request conflicts", func() {
		t := s.T()

		requesterID := uuid.New()
		counterpartyID := uuid.New()
		dbtest.CreateTestPaymentProfile(t, s.DB, requesterID, "")
		dbtest.CreateTestPaymentProfile(t, s.DB, counterpartyID, "acct_coach_5")

		created := s.createRequest(requesterID, counterpartyID, "pm_test_visa")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf("%s/%s/accept", requestsURL, created.ID), nil, s.token(counterpartyID))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf("%s/%s/accept", requestsURL, created.ID), nil, s.token(counterpartyID))
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())

		// Only the first accept reached the processor.
		require.Len(t, s.Processor.Charges(), 1)
	})
}

// =============================================================================
// TestPendingExpiry - the sweep's bulk cancel against the live schema
// =============================================================================

func (s *BookingFlowSuite) TestPendingExpiry() {
	s.Run("Normal case: stale pending requests are cancelled, fresh ones survive", func() {
		t := s.T()
		ctx := context.Background()

		requesterID := uuid.New()
		counterpartyID := uuid.New()

		stale := s.createRequest(requesterID, counterpartyID, "pm_test_visa")
		fresh := s.createRequest(requesterID, counterpartyID, "pm_test_visa")

		_, err := s.DB.Exec(ctx,
			`UPDATE booking_requests SET created_at = now() - interval '48 hours' WHERE id = $1`,
			stale.ID)
		require.NoError(t, err)

		expired, err := repository.NewRequestRepository(s.DB).
			ExpirePending(ctx, s.DB, time.Now().Add(-24*time.Hour))
		require.NoError(t, err)
		require.Equal(t, int64(1), expired)

		require.Equal(t, "cancelled", s.getRequestStatus(requesterID, stale.ID))
		require.Equal(t, "pending", s.getRequestStatus(requesterID, fresh.ID))
	})
}

// =============================================================================
// TestWebhookIngress - signature enforcement on the webhook surface
// =============================================================================

func (s *BookingFlowSuite) TestWebhookIngress() {
	s.Run("Error case: unsigned delivery is rejected", func() {
		t := s.T()

		body := []byte(`{"type":"charge.succeeded","entity_id":"x","occurred_at":0,"data":{}}`)
		w := httptest.PerformRawRequest(t, s.Router, http.MethodPost, paymentsWebhookURL, body, nil)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("Normal case: event for an unknown booking is acknowledged", func() {
		t := s.T()

		unknown := uuid.New()
		code := s.postWebhook(paymentsWebhookURL, s.Config.Payments.WebhookSecret,
			"charge.succeeded", unknown.String(), time.Now(),
			map[string]any{"booking_id": unknown, "charge_ref": "ch_orphan"})
		require.Equal(t, http.StatusOK, code)
	})
}
