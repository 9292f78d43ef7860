package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"coach-booking-engine/internal/pkg/config"

	"github.com/google/uuid"
)

// Client posts system messages to the conversation service. Notification
// delivery is best effort: a failed post is logged and dropped, it never
// fails the operation that triggered it.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

func NewClient(cfg config.NotifierConfig, logger *slog.Logger) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
}

type systemMessage struct {
	ConversationID uuid.UUID `json:"conversation_id"`
	Kind           string    `json:"kind"`
	Body           string    `json:"body"`
}

// PostSystemMessage never returns an error: the booking flow must not
// depend on the conversation service being up.
func (c *Client) PostSystemMessage(ctx context.Context, conversationID *uuid.UUID, kind, body string) {
	if conversationID == nil {
		return
	}

	payload, err := json.Marshal(systemMessage{
		ConversationID: *conversationID,
		Kind:           kind,
		Body:           body,
	})
	if err != nil {
		c.logger.WarnContext(ctx, "failed to encode system message", "kind", kind, "error", err)
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/internal/messages", bytes.NewReader(payload))
	if err != nil {
		c.logger.WarnContext(ctx, "failed to build notification request", "kind", kind, "error", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.WarnContext(ctx, "notification post failed", "kind", kind, "conversation_id", conversationID, "error", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		c.logger.WarnContext(ctx, "notification rejected", "kind", kind, "conversation_id", conversationID, "status", resp.StatusCode)
	}
}
