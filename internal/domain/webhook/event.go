package webhook

import (
	"encoding/json"
	"time"
)

// Source distinguishes the external systems that deliver signed events.
type Source string

const (
	SourcePayments Source = "payments"
	SourceVideo    Source = "video"
)

// Payment processor event types.
const (
	TypeCheckoutCompleted = "checkout.completed"
	TypeChargeSucceeded   = "charge.succeeded"
	TypeChargeFailed      = "charge.failed"
)

// Video provider event types.
const (
	TypeSessionStarted    = "session.started"
	TypeSessionEnded      = "session.ended"
	TypeParticipantJoined = "session.participant_joined"
	TypeParticipantLeft   = "session.participant_left"
	TypeURLValidation     = "endpoint.url_validation"
)

// Event is one delivery from an external provider. The triple
// (EntityID, Type, OccurredAt) is the natural dedupe key: applying the same
// triple twice must be a no-op on the second application.
type Event struct {
	Source     Source
	EntityID   string
	Type       string
	OccurredAt time.Time
	Payload    json.RawMessage
}

// DedupeKey groups the three fields the reconciler dedupes on.
type DedupeKey struct {
	EntityID   string
	Type       string
	OccurredAt time.Time
}

func (e Event) Key() DedupeKey {
	return DedupeKey{
		EntityID:   e.EntityID,
		Type:       e.Type,
		OccurredAt: e.OccurredAt,
	}
}
