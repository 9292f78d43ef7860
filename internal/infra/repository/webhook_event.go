package repository

import (
	"context"

	"coach-booking-engine/internal/domain/webhook"
	"coach-booking-engine/internal/infra"
	"coach-booking-engine/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type WebhookEventRepository struct {
	pool *pgxpool.Pool
}

func NewWebhookEventRepository(pool *pgxpool.Pool) *WebhookEventRepository {
	return &WebhookEventRepository{pool: pool}
}

// InsertIgnore persists an event keyed by (entity_id, event_type,
// occurred_at). At-least-once delivery makes duplicates routine, so the
// insert is ON CONFLICT DO NOTHING and the return value reports whether this
// delivery was the first.
func (r *WebhookEventRepository) InsertIgnore(ctx context.Context, tx db.DBTX, ev webhook.Event) (bool, error) {
	tag, err := tx.Exec(ctx, `
		INSERT INTO webhook_events (id, source, entity_id, event_type, occurred_at, payload)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (entity_id, event_type, occurred_at) DO NOTHING`,
		uuid.New(), string(ev.Source), ev.EntityID, ev.Type, ev.OccurredAt, []byte(ev.Payload),
	)
	if err != nil {
		return false, infra.WrapRepoErr("failed to insert webhook event", err)
	}
	return tag.RowsAffected() > 0, nil
}

// CountDistinctParticipants counts distinct participants with a joined event
// for the given session. Distinctness is on the participant id inside the
// payload, so a reconnecting participant counts once.
func (r *WebhookEventRepository) CountDistinctParticipants(ctx context.Context, tx db.DBTX, sessionID string) (int, error) {
	var count int
	err := tx.QueryRow(ctx, `
		SELECT COUNT(DISTINCT payload->>'participant_id')
		FROM webhook_events
		WHERE entity_id = $1 AND event_type = $2`,
		sessionID, webhook.TypeParticipantJoined,
	).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count session participants", err)
	}
	return count, nil
}
