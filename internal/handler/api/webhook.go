package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"coach-booking-engine/internal/domain/webhook"
	"coach-booking-engine/internal/pkg/clock"
	"coach-booking-engine/internal/pkg/webhooksig"
	"coach-booking-engine/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

const (
	signatureHeader = "X-Webhook-Signature"
	timestampHeader = "X-Webhook-Timestamp"
)

// WebhookHandler is the ingress for both external providers. It verifies
// authenticity before reading anything from the body, and acknowledges
// deliveries whose side effects failed for non-critical reasons so the
// provider does not redeliver forever.
type WebhookHandler struct {
	webhookCommands  commands.WebhookCommands
	paymentsVerifier *webhooksig.Verifier
	videoVerifier    *webhooksig.Verifier
	clock            clock.Clock
}

func NewWebhookHandler(
	webhookCommands commands.WebhookCommands,
	paymentsVerifier *webhooksig.Verifier,
	videoVerifier *webhooksig.Verifier,
	clk clock.Clock,
) *WebhookHandler {
	return &WebhookHandler{
		webhookCommands:  webhookCommands,
		paymentsVerifier: paymentsVerifier,
		videoVerifier:    videoVerifier,
		clock:            clk,
	}
}

// envelope is the wire shape both providers deliver. OccurredAt is unix
// seconds; together with EntityID and Type it forms the dedupe key.
type envelope struct {
	Type       string
	EntityID   string
	OccurredAt int64
	Data       json.RawMessage
}

// UnmarshalJSON accepts both key sets seen on the wire: regular
// deliveries carry type/data, while the video provider's ownership
// handshake carries event/payload.
func (e *envelope) UnmarshalJSON(b []byte) error {
	var wire struct {
		Type       string          `json:"type"`
		Event      string          `json:"event"`
		EntityID   string          `json:"entity_id"`
		OccurredAt int64           `json:"occurred_at"`
		Data       json.RawMessage `json:"data"`
		Payload    json.RawMessage `json:"payload"`
	}
	if err := json.Unmarshal(b, &wire); err != nil {
		return err
	}

	e.Type = wire.Type
	if e.Type == "" {
		e.Type = wire.Event
	}
	e.EntityID = wire.EntityID
	e.OccurredAt = wire.OccurredAt
	e.Data = wire.Data
	if e.Data == nil {
		e.Data = wire.Payload
	}
	return nil
}

// @Summary Payment processor webhook
// @Description Ingest a signed payment processor event
// @Tags webhooks
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /webhooks/payments [post]
func (h *WebhookHandler) HandlePaymentWebhook(c *gin.Context) {
	ev, ok := h.verifiedEvent(c, h.paymentsVerifier, webhook.SourcePayments)
	if !ok {
		return
	}

	h.applyAndAck(c, ev, h.webhookCommands.HandlePaymentEvent)
}

// @Summary Video provider webhook
// @Description Ingest a signed video provider event
// @Tags webhooks
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /webhooks/video [post]
func (h *WebhookHandler) HandleVideoWebhook(c *gin.Context) {
	ev, ok := h.verifiedEvent(c, h.videoVerifier, webhook.SourceVideo)
	if !ok {
		return
	}

	if ev.Type == webhook.TypeURLValidation {
		h.answerURLValidation(c, ev)
		return
	}

	h.applyAndAck(c, ev, h.webhookCommands.HandleVideoEvent)
}

// verifiedEvent authenticates the delivery and decodes the envelope.
// Signature and staleness failures are the only non-acknowledging
// rejections; the provider is expected to retry those.
func (h *WebhookHandler) verifiedEvent(c *gin.Context, verifier *webhooksig.Verifier, source webhook.Source) (webhook.Event, bool) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Failed to read request body",
		})
		return webhook.Event{}, false
	}

	sigErr := verifier.Verify(
		c.GetHeader(signatureHeader),
		c.GetHeader(timestampHeader),
		body,
		h.clock.Now(),
	)
	if sigErr != nil {
		slog.WarnContext(c.Request.Context(), "rejected webhook delivery",
			"source", source, "reason", sigErr.Error(), "client_ip", c.ClientIP())
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Invalid webhook signature",
		})
		return webhook.Event{}, false
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil || env.Type == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Malformed webhook envelope",
		})
		return webhook.Event{}, false
	}

	return webhook.Event{
		Source:     source,
		EntityID:   env.EntityID,
		Type:       env.Type,
		OccurredAt: time.Unix(env.OccurredAt, 0).UTC(),
		Payload:    env.Data,
	}, true
}

func (h *WebhookHandler) applyAndAck(c *gin.Context, ev webhook.Event, apply func(ctx context.Context, ev webhook.Event) error) {
	err := apply(c.Request.Context(), ev)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	case errors.Is(err, commands.ErrMalformedPayload):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Malformed event payload",
		})
	case errors.Is(err, commands.ErrUnknownEntity):
		// Ack rather than invite endless redelivery of an event the
		// engine can never resolve.
		slog.WarnContext(c.Request.Context(), "webhook references unknown entity",
			"source", ev.Source, "type", ev.Type, "entity_id", ev.EntityID)
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
	default:
		slog.ErrorContext(c.Request.Context(), "webhook processing failed",
			"source", ev.Source, "type", ev.Type, "entity_id", ev.EntityID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}

type urlValidationPayload struct {
	PlainToken string `json:"plainToken"`
}

func (h *WebhookHandler) answerURLValidation(c *gin.Context, ev webhook.Event) {
	var payload urlValidationPayload
	if err := json.Unmarshal(ev.Payload, &payload); err != nil || payload.PlainToken == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Malformed validation payload",
		})
		return
	}

	c.JSON(http.StatusOK, h.videoVerifier.ValidateURL(payload.PlainToken))
}
