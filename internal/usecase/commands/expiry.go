package commands

import (
	"context"
	"log/slog"
	"time"

	"coach-booking-engine/internal/infra/db"
	"coach-booking-engine/internal/pkg/clock"
	"coach-booking-engine/internal/pkg/errs"
)

// PendingSweeper cancels requests that sat in pending longer than the
// configured TTL. The TTL is a deployment decision: zero disables the
// sweeper entirely and pending requests never expire.
type PendingSweeper struct {
	requestRepo RequestRepository
	txr         TxRunner
	clock       clock.Clock
	ttl         time.Duration
}

func NewPendingSweeper(requestRepo RequestRepository, txr TxRunner, clk clock.Clock, ttl time.Duration) *PendingSweeper {
	return &PendingSweeper{
		requestRepo: requestRepo,
		txr:         txr,
		clock:       clk,
		ttl:         ttl,
	}
}

func (s *PendingSweeper) Enabled() bool {
	return s.ttl > 0
}

// SweepOnce expires everything past the TTL in a single statement. Safe to
// run concurrently with accepts: an expired request simply wins or loses
// the same status guard any other transition does.
func (s *PendingSweeper) SweepOnce(ctx context.Context) (int64, error) {
	if !s.Enabled() {
		return 0, nil
	}

	cutoff := s.clock.Now().Add(-s.ttl)
	var expired int64
	err := s.txr.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		var txErr error
		expired, txErr = s.requestRepo.ExpirePending(ctx, tx, cutoff)
		return txErr
	})
	if err != nil {
		return 0, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if expired > 0 {
		slog.InfoContext(ctx, "expired stale pending requests", "count", expired, "cutoff", cutoff)
	}
	return expired, nil
}
