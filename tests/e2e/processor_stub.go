//go:build e2e

package e2e

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// stubProcessor fakes the payment processor API. Decline behavior is driven
// by the payment method ref: "pm_decline_<code>" fails the charge with that
// decline code, anything else succeeds. Charges are idempotent per
// Idempotency-Key, matching the real processor contract.
type stubProcessor struct {
	srv *httptest.Server

	mu      sync.Mutex
	byKey   map[string]string
	charges []stubCharge
	nextID  int
}

type stubCharge struct {
	ChargeID           string
	IdempotencyKey     string
	AmountCents        int64
	ApplicationFee     int64
	DestinationAccount string
	PaymentMethod      string
}

func startStubProcessor(t *testing.T) *stubProcessor {
	p := &stubProcessor{byKey: make(map[string]string)}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/charges", p.handleCharge)
	mux.HandleFunc("POST /v1/payment_methods/{ref}/attach", p.handleAttach)
	mux.HandleFunc("GET /v1/accounts/{ref}", p.handleAccount)

	p.srv = httptest.NewServer(mux)
	t.Cleanup(p.srv.Close)
	return p
}

func (p *stubProcessor) URL() string {
	return p.srv.URL
}

func (p *stubProcessor) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.byKey = make(map[string]string)
	p.charges = nil
}

// Charges returns a copy of every successful charge recorded so far.
func (p *stubProcessor) Charges() []stubCharge {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]stubCharge, len(p.charges))
	copy(out, p.charges)
	return out
}

func (p *stubProcessor) handleCharge(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Amount             int64  `json:"amount"`
		PaymentMethod      string `json:"payment_method"`
		ApplicationFee     int64  `json:"application_fee_amount"`
		DestinationAccount string `json:"destination_account"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProcessorError(w, http.StatusBadRequest, "invalid_request", "", "malformed charge request")
		return
	}

	if code, ok := strings.CutPrefix(req.PaymentMethod, "pm_decline_"); ok {
		writeProcessorError(w, http.StatusPaymentRequired, "card_declined", code, "the card was declined")
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	key := r.Header.Get("Idempotency-Key")
	chargeID, seen := p.byKey[key]
	if !seen {
		p.nextID++
		chargeID = fmt.Sprintf("ch_stub_%04d", p.nextID)
		p.byKey[key] = chargeID
		p.charges = append(p.charges, stubCharge{
			ChargeID:           chargeID,
			IdempotencyKey:     key,
			AmountCents:        req.Amount,
			ApplicationFee:     req.ApplicationFee,
			DestinationAccount: req.DestinationAccount,
			PaymentMethod:      req.PaymentMethod,
		})
	}

	writeJSON(w, http.StatusOK, map[string]string{"id": chargeID, "status": "succeeded"})
}

func (p *stubProcessor) handleAttach(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"id": r.PathValue("ref"), "status": "attached"})
}

// handleAccount reports payout capability: any account ref containing
// "unready" has payouts disabled.
func (p *stubProcessor) handleAccount(w http.ResponseWriter, r *http.Request) {
	ref := r.PathValue("ref")
	writeJSON(w, http.StatusOK, map[string]any{
		"id":              ref,
		"charges_enabled": true,
		"payouts_enabled": !strings.Contains(ref, "unready"),
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeProcessorError(w http.ResponseWriter, status int, code, declineCode, message string) {
	writeJSON(w, status, map[string]any{
		"error": map[string]string{
			"code":         code,
			"decline_code": declineCode,
			"message":      message,
		},
	})
}
