// Package observability aggregates in-process relay counters for the
// telemetry worker. No external surface is exposed.
package observability

import (
	"sync/atomic"
	"time"
)

// RelayStats is a point-in-time snapshot of the relay counters.
type RelayStats struct {
	ActiveSessions int64  `json:"active_sessions"`
	TotalJoins     uint64 `json:"total_joins"`
	MessagesRouted uint64 `json:"messages_routed"`
	BroadcastsSent uint64 `json:"broadcasts_sent"`
	SendsDropped   uint64 `json:"sends_dropped"`
	ErrorCount     uint64 `json:"error_count"`
	Since          string `json:"since"`
}

// Monitoring tracks relay activity with atomic counters so hot paths
// never contend on a lock.
type Monitoring struct {
	started        time.Time
	activeSessions int64
	totalJoins     uint64
	messagesRouted uint64
	broadcastsSent uint64
	sendsDropped   uint64
	errorCount     uint64
}

func NewMonitoring() *Monitoring {
	return &Monitoring{started: time.Now().UTC()}
}

func (m *Monitoring) SessionOpened() {
	atomic.AddInt64(&m.activeSessions, 1)
	atomic.AddUint64(&m.totalJoins, 1)
}

func (m *Monitoring) SessionClosed() {
	atomic.AddInt64(&m.activeSessions, -1)
}

func (m *Monitoring) IncrRouted() {
	atomic.AddUint64(&m.messagesRouted, 1)
}

func (m *Monitoring) IncrBroadcast() {
	atomic.AddUint64(&m.broadcastsSent, 1)
}

func (m *Monitoring) IncrDroppedSend() {
	atomic.AddUint64(&m.sendsDropped, 1)
}

func (m *Monitoring) IncrErrorCount() {
	atomic.AddUint64(&m.errorCount, 1)
}

func (m *Monitoring) Snapshot() RelayStats {
	return RelayStats{
		ActiveSessions: atomic.LoadInt64(&m.activeSessions),
		TotalJoins:     atomic.LoadUint64(&m.totalJoins),
		MessagesRouted: atomic.LoadUint64(&m.messagesRouted),
		BroadcastsSent: atomic.LoadUint64(&m.broadcastsSent),
		SendsDropped:   atomic.LoadUint64(&m.sendsDropped),
		ErrorCount:     atomic.LoadUint64(&m.errorCount),
		Since:          m.started.Format(time.RFC3339),
	}
}
