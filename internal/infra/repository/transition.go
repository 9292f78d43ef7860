package repository

import (
	"context"

	"coach-booking-engine/internal/infra"
	"coach-booking-engine/internal/infra/db"

	"github.com/google/uuid"
)

// TransitionResult reports the outcome of a compare-and-transition. On
// conflict, CurrentStatus carries the actual persisted status so callers can
// render an accurate message instead of retrying blind.
type TransitionResult struct {
	OK             bool
	PreviousStatus string
	CurrentStatus  string
}

// compareAndTransition is the single status-change primitive: lock the row,
// compare the persisted status to expected, and only on a match write the
// new status and bump updated_at. extraSet, when non-empty, is appended to
// the UPDATE so related columns (charge reference, review reason) land in
// the same atomic write; its placeholders start at $3.
func compareAndTransition(
	ctx context.Context,
	tx db.DBTX,
	table string,
	id uuid.UUID,
	expected, next string,
	extraSet string,
	extraArgs ...any,
) (TransitionResult, error) {
	var current string
	err := tx.QueryRow(ctx, "SELECT status FROM "+table+" WHERE id = $1 FOR UPDATE", id).Scan(&current)
	if err != nil {
		if isNoRows(err) {
			return TransitionResult{}, infra.WrapRepoErr(table+" row not found", err, infra.KindNotFound)
		}
		return TransitionResult{}, infra.WrapRepoErr("failed to lock "+table+" row", err)
	}

	if current != expected {
		return TransitionResult{OK: false, CurrentStatus: current}, nil
	}

	sql := "UPDATE " + table + " SET status = $2, updated_at = now()"
	if extraSet != "" {
		sql += ", " + extraSet
	}
	sql += " WHERE id = $1"

	args := append([]any{id, next}, extraArgs...)
	if _, err := tx.Exec(ctx, sql, args...); err != nil {
		return TransitionResult{}, infra.WrapRepoErr("failed to transition "+table+" status", err)
	}

	return TransitionResult{OK: true, PreviousStatus: current}, nil
}
