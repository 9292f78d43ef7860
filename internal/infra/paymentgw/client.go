package paymentgw

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"coach-booking-engine/internal/pkg/config"
	"coach-booking-engine/internal/pkg/errs"
)

// DeclineCode is the fixed taxonomy every call site must handle. Processor
// decline reasons outside the taxonomy collapse to DeclineGeneric.
type DeclineCode string

const (
	DeclineGeneric        DeclineCode = "declined"
	DeclineExpiredCard    DeclineCode = "expired_card"
	DeclineInsufficient   DeclineCode = "insufficient_funds"
	DeclineAuthValidation DeclineCode = "authentication_required"
)

// UserMessage returns counterparty-facing guidance per decline category.
func (c DeclineCode) UserMessage() string {
	switch c {
	case DeclineExpiredCard:
		return "The stored card has expired. Ask the requester to update their payment method."
	case DeclineInsufficient:
		return "The charge was declined for insufficient funds."
	case DeclineAuthValidation:
		return "The requester's bank requires additional authentication before this charge can complete."
	default:
		return "The payment was declined by the card issuer."
	}
}

// RequiresFollowUp reports whether the decline needs a requester action
// rather than being a dead end; it is never silently retried.
func (c DeclineCode) RequiresFollowUp() bool {
	return c == DeclineAuthValidation
}

// CaptureParams describes one charge submission. The idempotency key is
// derived from the booking id by the caller, so a retried submission can
// never produce a second charge. Destination and application fee carry the
// split routing: the processor pays the remainder to the counterparty and
// keeps the commission on the platform account.
type CaptureParams struct {
	IdempotencyKey      string
	AmountCents         int64
	ApplicationFeeCents int64
	Currency            string
	CustomerRef         string
	PaymentMethodRef    string
	DestinationAccount  string
	Metadata            map[string]string
}

// CaptureResult is an explicit result type: a decline is data, not an
// error, so call sites are forced to handle each category.
type CaptureResult struct {
	Succeeded bool
	ChargeRef string
	Decline   *Decline
}

type Decline struct {
	Code    DeclineCode
	Message string
}

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(cfg config.PaymentsConfig) *Client {
	return &Client{
		baseURL: cfg.APIBaseURL,
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
	}
}

type accountResponse struct {
	ID             string `json:"id"`
	ChargesEnabled bool   `json:"charges_enabled"`
	PayoutsEnabled bool   `json:"payouts_enabled"`
}

// PayoutReady checks whether the counterparty's payout destination can be
// the target of a split charge.
func (c *Client) PayoutReady(ctx context.Context, accountRef string) (bool, error) {
	var resp accountResponse
	if err := c.do(ctx, http.MethodGet, "/v1/accounts/"+accountRef, "", nil, &resp); err != nil {
		return false, err
	}
	return resp.ChargesEnabled && resp.PayoutsEnabled, nil
}

// EnsureAttached binds the stored payment method to the requester's
// processor identity. An already-attached condition counts as success.
func (c *Client) EnsureAttached(ctx context.Context, customerRef, paymentMethodRef string) error {
	body := map[string]string{"customer": customerRef}
	err := c.do(ctx, http.MethodPost, "/v1/payment_methods/"+paymentMethodRef+"/attach", "", body, nil)
	if err != nil {
		var apiErr *apiError
		if errs.As(err, &apiErr) && apiErr.Code == "already_attached" {
			return nil
		}
		return err
	}
	return nil
}

type chargeRequest struct {
	Amount             int64             `json:"amount"`
	Currency           string            `json:"currency"`
	Customer           string            `json:"customer"`
	PaymentMethod      string            `json:"payment_method"`
	ApplicationFee     int64             `json:"application_fee_amount"`
	DestinationAccount string            `json:"destination_account"`
	Metadata           map[string]string `json:"metadata,omitempty"`
}

type chargeResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// Capture submits the charge. This is a synchronous, potentially multi-
// second network call; retries must reuse the same idempotency key and are
// the caller's decision.
func (c *Client) Capture(ctx context.Context, params CaptureParams) (CaptureResult, error) {
	req := chargeRequest{
		Amount:             params.AmountCents,
		Currency:           params.Currency,
		Customer:           params.CustomerRef,
		PaymentMethod:      params.PaymentMethodRef,
		ApplicationFee:     params.ApplicationFeeCents,
		DestinationAccount: params.DestinationAccount,
		Metadata:           params.Metadata,
	}

	var resp chargeResponse
	err := c.do(ctx, http.MethodPost, "/v1/charges", params.IdempotencyKey, req, &resp)
	if err != nil {
		var apiErr *apiError
		if errs.As(err, &apiErr) && apiErr.StatusCode == http.StatusPaymentRequired {
			code := mapDeclineCode(apiErr.DeclineCode)
			return CaptureResult{
				Succeeded: false,
				Decline:   &Decline{Code: code, Message: code.UserMessage()},
			}, nil
		}
		return CaptureResult{}, err
	}

	return CaptureResult{Succeeded: true, ChargeRef: resp.ID}, nil
}

func mapDeclineCode(processorCode string) DeclineCode {
	switch processorCode {
	case "expired_card":
		return DeclineExpiredCard
	case "insufficient_funds":
		return DeclineInsufficient
	case "authentication_required":
		return DeclineAuthValidation
	default:
		return DeclineGeneric
	}
}

type apiError struct {
	StatusCode  int
	Code        string
	DeclineCode string
	Message     string
}

func (e *apiError) Error() string {
	return fmt.Sprintf("payment processor error (status %d, code %q): %s", e.StatusCode, e.Code, e.Message)
}

type errorEnvelope struct {
	Error struct {
		Code        string `json:"code"`
		DeclineCode string `json:"decline_code"`
		Message     string `json:"message"`
	} `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path, idempotencyKey string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return errs.Wrap(err, "failed to encode processor request")
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errs.Wrap(err, "failed to build processor request")
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	if idempotencyKey != "" {
		req.Header.Set("Idempotency-Key", idempotencyKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errs.Wrap(err, "processor request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var envelope errorEnvelope
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
		_ = json.Unmarshal(data, &envelope)
		return &apiError{
			StatusCode:  resp.StatusCode,
			Code:        envelope.Error.Code,
			DeclineCode: envelope.Error.DeclineCode,
			Message:     envelope.Error.Message,
		}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return errs.Wrap(err, "failed to decode processor response")
		}
	}
	return nil
}
