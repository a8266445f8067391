package api

import (
	"context"
	"log/slog"
	"time"
)

// SessionPurger deletes expired sessions. The Postgres session store satisfies it.
type SessionPurger interface {
	PurgeExpired(ctx context.Context) (int64, error)
}

// PurgeSessions purges once, then again on every tick until ctx is done.
func PurgeSessions(ctx context.Context, purger SessionPurger, every time.Duration, logger *slog.Logger) {
	purgeOnce(ctx, purger, logger)
	if every <= 0 {
		return
	}
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			purgeOnce(ctx, purger, logger)
		}
	}
}

func purgeOnce(ctx context.Context, purger SessionPurger, logger *slog.Logger) {
	removed, err := purger.PurgeExpired(ctx)
	if err != nil {
		logger.Error("session purge failed", slog.String("error", err.Error()))
		return
	}
	logger.Info("expired sessions purged", slog.Int64("removed", removed))
}
