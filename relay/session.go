package relay

import (
	"door-hub/contract"
	"door-hub/domain"
)

// Session is one live connection's transient identity. It is owned by
// the connection's own goroutine; the registry and pending table only
// ever hold references to its id and sink.
type Session struct {
	ID         string
	DoorID     string
	ClientType domain.ClientType
	Sink       contract.EventSink

	// DeviceID is set only when the connection authenticated as a
	// registered device. Empty for token-authenticated clients.
	DeviceID string
}

func NewSession(id, doorID string, clientType domain.ClientType, sink contract.EventSink) *Session {
	return &Session{ID: id, DoorID: doorID, ClientType: clientType, Sink: sink}
}
