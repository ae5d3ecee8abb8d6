package relay

import (
	"sync"
	"time"
)

type pendingEntry struct {
	originID  string
	createdAt time.Time
}

// PendingRequestTable correlates an in-flight face-recognition request
// with the one session that must receive its eventual result. Entries
// are transient: resolved by a matching result, purged when the origin
// disconnects, or expired by the sweep worker when a TTL is configured.
type PendingRequestTable struct {
	mu      sync.Mutex
	entries map[string]pendingEntry
	now     func() time.Time
}

func NewPendingRequestTable() *PendingRequestTable {
	return &PendingRequestTable{
		entries: make(map[string]pendingEntry),
		now:     time.Now,
	}
}

// Register records the origin of a correlation id. A duplicate id
// overwrites the previous entry: last write wins, the earlier origin
// will simply never match a result.
func (t *PendingRequestTable) Register(requestID, originID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries[requestID] = pendingEntry{originID: originID, createdAt: t.now()}
}

// Resolve removes and returns the origin for a correlation id.
// Resolution is one-shot: a second call for the same id reports not
// found.
func (t *PendingRequestTable) Resolve(requestID string) (string, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	entry, ok := t.entries[requestID]
	if !ok {
		return "", false
	}
	delete(t.entries, requestID)
	return entry.originID, true
}

// PurgeSession removes every entry originated by the session. Called
// exactly once during disconnect handling, before the session leaves
// its group, so a concurrent result sees either the full entry or
// nothing.
func (t *PendingRequestTable) PurgeSession(originID string) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	purged := 0
	for requestID, entry := range t.entries {
		if entry.originID == originID {
			delete(t.entries, requestID)
			purged++
		}
	}
	return purged
}

// ExpireBefore drops entries created before the cutoff and returns how
// many were removed.
func (t *PendingRequestTable) ExpireBefore(cutoff time.Time) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	expired := 0
	for requestID, entry := range t.entries {
		if entry.createdAt.Before(cutoff) {
			delete(t.entries, requestID)
			expired++
		}
	}
	return expired
}

// Len reports the number of live entries.
func (t *PendingRequestTable) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.entries)
}
