package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"coach-booking-engine/internal/usecase/commands"

	"go.uber.org/fx"
)

// How often the pending-request sweeper wakes up when a TTL is configured.
const sweepInterval = time.Minute

var SweeperModule = fx.Module("sweeper",
	fx.Invoke(runPendingSweeper),
)

func runPendingSweeper(lc fx.Lifecycle, sweeper *commands.PendingSweeper) {
	if !sweeper.Enabled() {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				ticker := time.NewTicker(sweepInterval)
				defer ticker.Stop()
				for {
					select {
					case <-ctx.Done():
						return
					case <-ticker.C:
						if _, err := sweeper.SweepOnce(ctx); err != nil {
							slog.Error("pending-request sweep failed", "error", err)
						}
					}
				}
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
				return nil
			case <-stopCtx.Done():
				return stopCtx.Err()
			}
		},
	})
}
