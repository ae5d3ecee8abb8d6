package workers

import (
	"context"
	"log/slog"
	"time"

	"door-hub/contract"
)

// PendingSweepWorker expires correlation entries older than a bounded
// lifetime. Without it, a responder that never answers leaks an entry
// until the requester disconnects; a zero TTL keeps that original
// behavior and the worker is simply not scheduled.
type PendingSweepWorker struct {
	log      *slog.Logger
	pending  contract.IPendingRequests
	ttl      time.Duration
	interval time.Duration
}

func NewPendingSweepWorker(log *slog.Logger, pending contract.IPendingRequests,
	ttl, interval time.Duration) *PendingSweepWorker {
	return &PendingSweepWorker{log: log, pending: pending, ttl: ttl, interval: interval}
}

func (w *PendingSweepWorker) Run(ctx context.Context) error {
	w.log.Info("Starting pending request sweep", "ttl", w.ttl, "interval", w.interval)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if expired := w.pending.ExpireBefore(time.Now().Add(-w.ttl)); expired > 0 {
				w.log.Info("Expired stale pending requests", "count", expired)
			}
		}
	}
}
