// Package relay is the message-broker core: group membership, fan-out
// with self-exclusion, and the transient request/response correlation
// table. Nothing in this package is persisted.
package relay

import (
	"sync"

	"door-hub/contract"
)

type set map[string]struct{}

// GroupRegistry maps a door to its current set of live sessions.
// A session belongs to at most one door; empty member sets are removed
// so an idle hub holds no per-door state.
type GroupRegistry struct {
	mu          sync.RWMutex
	sessions    map[string]contract.EventSink // client id -> outbound sink
	doorMembers map[string]set                // door id -> member client ids
}

func NewGroupRegistry() *GroupRegistry {
	return &GroupRegistry{
		sessions:    make(map[string]contract.EventSink),
		doorMembers: make(map[string]set),
	}
}

// Join registers a session's sink and adds it to the door's member
// set, creating the set on first join. Joining twice is a no-op.
func (r *GroupRegistry) Join(doorID, clientID string, sink contract.EventSink) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[clientID] = sink

	if _, ok := r.doorMembers[doorID]; !ok {
		r.doorMembers[doorID] = make(set)
	}
	r.doorMembers[doorID][clientID] = struct{}{}
}

// Leave removes a session from the door and drops its sink. Leaving a
// door it never joined is a no-op. The last member leaving deletes the
// member set entirely to avoid leaking empty groups over time.
func (r *GroupRegistry) Leave(doorID, clientID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, clientID)

	if members, ok := r.doorMembers[doorID]; ok {
		delete(members, clientID)

		if len(members) == 0 {
			delete(r.doorMembers, doorID)
		}
	}
}

// Members returns a snapshot of the door's member ids. Order is
// unspecified.
func (r *GroupRegistry) Members(doorID string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	members, ok := r.doorMembers[doorID]
	if !ok {
		return nil
	}
	ids := make([]string, 0, len(members))
	for id := range members {
		ids = append(ids, id)
	}
	return ids
}

// SinksForDoor resolves the door's current members to their sinks.
// The returned map is a copy: broadcast iterates a momentary snapshot
// and is never invalidated by concurrent joins or leaves.
func (r *GroupRegistry) SinksForDoor(doorID string) map[string]contract.EventSink {
	r.mu.RLock()
	defer r.mu.RUnlock()

	members, ok := r.doorMembers[doorID]
	if !ok {
		return nil
	}
	active := make(map[string]contract.EventSink, len(members))
	for clientID := range members {
		if sink, exists := r.sessions[clientID]; exists {
			active[clientID] = sink
		}
	}
	return active
}
