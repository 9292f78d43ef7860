//go:build unit

package paymentgw_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"coach-booking-engine/internal/infra/paymentgw"
	"coach-booking-engine/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *paymentgw.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return paymentgw.NewClient(config.PaymentsConfig{
		APIBaseURL:     srv.URL,
		APIKey:         "sk_test_dummy",
		RequestTimeout: 5 * time.Second,
	})
}

func writeProcessorError(w http.ResponseWriter, status int, code, declineCode, message string) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]string{
			"code":         code,
			"decline_code": declineCode,
			"message":      message,
		},
	})
}

func TestCapture(t *testing.T) {
	t.Run("successful charge sends the idempotency key and fee split", func(t *testing.T) {
		var gotKey, gotAuth string
		var gotBody map[string]any
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/v1/charges", r.URL.Path)
			gotKey = r.Header.Get("Idempotency-Key")
			gotAuth = r.Header.Get("Authorization")
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			_ = json.NewEncoder(w).Encode(map[string]string{"id": "ch_abc123", "status": "succeeded"})
		})

		result, err := client.Capture(context.Background(), paymentgw.CaptureParams{
			IdempotencyKey:      "capture-9f0c",
			AmountCents:         10500,
			ApplicationFeeCents: 1500,
			Currency:            "usd",
			CustomerRef:         "cus_1",
			PaymentMethodRef:    "pm_1",
			DestinationAccount:  "acct_coach",
			Metadata:            map[string]string{"booking_id": "9f0c"},
		})

		require.NoError(t, err)
		assert.True(t, result.Succeeded)
		assert.Equal(t, "ch_abc123", result.ChargeRef)
		assert.Nil(t, result.Decline)
		assert.Equal(t, "capture-9f0c", gotKey)
		assert.Equal(t, "Bearer sk_test_dummy", gotAuth)
		assert.Equal(t, float64(10500), gotBody["amount"])
		assert.Equal(t, float64(1500), gotBody["application_fee_amount"])
		assert.Equal(t, "acct_coach", gotBody["destination_account"])
	})

	t.Run("decline maps processor codes to the taxonomy", func(t *testing.T) {
		cases := []struct {
			processorCode string
			want          paymentgw.DeclineCode
		}{
			{"expired_card", paymentgw.DeclineExpiredCard},
			{"insufficient_funds", paymentgw.DeclineInsufficient},
			{"authentication_required", paymentgw.DeclineAuthValidation},
			{"do_not_honor", paymentgw.DeclineGeneric},
			{"", paymentgw.DeclineGeneric},
		}
		for _, tc := range cases {
			t.Run("maps "+tc.processorCode, func(t *testing.T) {
				client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
					writeProcessorError(w, http.StatusPaymentRequired, "card_declined", tc.processorCode, "declined")
				})

				result, err := client.Capture(context.Background(), paymentgw.CaptureParams{
					IdempotencyKey: "capture-1", AmountCents: 100, Currency: "usd",
				})

				require.NoError(t, err)
				assert.False(t, result.Succeeded)
				require.NotNil(t, result.Decline)
				assert.Equal(t, tc.want, result.Decline.Code)
				assert.Equal(t, tc.want.UserMessage(), result.Decline.Message)
			})
		}
	})

	t.Run("non-decline processor failure is an error", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeProcessorError(w, http.StatusInternalServerError, "api_error", "", "something broke")
		})

		_, err := client.Capture(context.Background(), paymentgw.CaptureParams{
			IdempotencyKey: "capture-1", AmountCents: 100, Currency: "usd",
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "api_error")
	})
}

func TestEnsureAttached(t *testing.T) {
	t.Run("attaches the payment method to the customer", func(t *testing.T) {
		var gotPath string
		var gotBody map[string]string
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			_ = json.NewEncoder(w).Encode(map[string]string{"id": "pm_1"})
		})

		require.NoError(t, client.EnsureAttached(context.Background(), "cus_1", "pm_1"))
		assert.Equal(t, "/v1/payment_methods/pm_1/attach", gotPath)
		assert.Equal(t, "cus_1", gotBody["customer"])
	})

	t.Run("already attached counts as success", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeProcessorError(w, http.StatusBadRequest, "already_attached", "", "already attached")
		})

		require.NoError(t, client.EnsureAttached(context.Background(), "cus_1", "pm_1"))
	})

	t.Run("other attach failures surface", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeProcessorError(w, http.StatusNotFound, "resource_missing", "", "no such payment method")
		})

		require.Error(t, client.EnsureAttached(context.Background(), "cus_1", "pm_missing"))
	})
}

func TestPayoutReady(t *testing.T) {
	cases := []struct {
		name    string
		charges bool
		payouts bool
		want    bool
	}{
		{"fully enabled", true, true, true},
		{"payouts pending", true, false, false},
		{"charges disabled", false, true, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, "/v1/accounts/acct_1", r.URL.Path)
				_ = json.NewEncoder(w).Encode(map[string]any{
					"id":              "acct_1",
					"charges_enabled": tc.charges,
					"payouts_enabled": tc.payouts,
				})
			})

			ready, err := client.PayoutReady(context.Background(), "acct_1")
			require.NoError(t, err)
			assert.Equal(t, tc.want, ready)
		})
	}
}
