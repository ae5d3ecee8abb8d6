package workers

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/shirou/gopsutil/process"

	"door-hub/observability"
)

// TelemetryWorker periodically logs process self-stats (CPU, RSS)
// together with the relay counters. Purely in-process observability;
// nothing is exported.
type TelemetryWorker struct {
	log        *slog.Logger
	monitoring *observability.Monitoring
	interval   time.Duration
}

func NewTelemetryWorker(log *slog.Logger, monitoring *observability.Monitoring,
	interval time.Duration) *TelemetryWorker {
	return &TelemetryWorker{log: log, monitoring: monitoring, interval: interval}
}

// Run executes the main loop of the worker, reporting health metrics
// every interval.
func (w *TelemetryWorker) Run(ctx context.Context) error {
	w.log.Info("Starting telemetry worker", "interval", w.interval)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			rss, cpu, err := getSelfStats(p)
			if err != nil {
				w.log.Error("Failed to collect self stats", "err", err)
				continue
			}

			stats := w.monitoring.Snapshot()
			w.log.Info("Relay telemetry",
				"cpu_percent", cpu,
				"ram_bytes", rss,
				"active_sessions", stats.ActiveSessions,
				"total_joins", stats.TotalJoins,
				"messages_routed", stats.MessagesRouted,
				"broadcasts_sent", stats.BroadcastsSent,
				"sends_dropped", stats.SendsDropped,
				"errors", stats.ErrorCount)
		}
	}
}

// getSelfStats retrieves memory and CPU metrics for the given process.
func getSelfStats(p *process.Process) (uint64, float64, error) {
	memInfo, err := p.MemoryInfo()
	if err != nil {
		return 0, 0, err
	}

	cpuPercent, err := p.CPUPercent()
	if err != nil {
		return 0, 0, err
	}
	return memInfo.RSS, cpuPercent, nil
}
