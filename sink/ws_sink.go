// Package sink holds the outbound side of a live connection: a
// bounded buffer between the relay's fan-out and the connection's
// write pump.
package sink

import (
	"log/slog"
	"sync"
	"time"

	"door-hub/contract"
	"door-hub/errors"
)

// WsSink buffers outbound frames for one WebSocket connection.
// Deliver is called by broadcasting sessions and must never stall
// them: it waits at most deliveryTimeout for buffer space, then gives
// up. Origin-filtered envelopes are dropped here, on the recipient
// side, unless this connection is the resolved origin.
type WsSink struct {
	log             *slog.Logger
	clientID        string
	frames          chan []byte
	done            chan struct{}
	closeOnce       sync.Once
	deliveryTimeout time.Duration
}

func NewWsSink(log *slog.Logger, clientID string, bufferSize int, deliveryTimeout time.Duration) *WsSink {
	return &WsSink{
		log:             log,
		clientID:        clientID,
		frames:          make(chan []byte, bufferSize),
		done:            make(chan struct{}),
		deliveryTimeout: deliveryTimeout,
	}
}

// Deliver implements contract.EventSink.
func (s *WsSink) Deliver(env contract.Envelope) error {
	if env.Filtered && env.OriginID != s.clientID {
		// Transport-level fan-out, application-level restriction: this
		// frame is meant for the request's origin only.
		s.log.Debug("Skipping filtered frame", "client_id", s.clientID, "kind", env.Kind)
		return nil
	}

	timer := time.NewTimer(s.deliveryTimeout)
	defer timer.Stop()

	select {
	case <-s.done:
		return errors.ErrSinkClosed
	case s.frames <- env.Payload:
		return nil
	case <-timer.C:
		return errors.ErrSinkFull
	}
}

// Frames is consumed by the connection's write pump.
func (s *WsSink) Frames() <-chan []byte {
	return s.frames
}

// Done is closed when the sink will accept no further frames.
func (s *WsSink) Done() <-chan struct{} {
	return s.done
}

// Close makes every future Deliver fail fast. The frames channel is
// never closed so concurrent senders cannot panic; buffered frames
// are simply abandoned.
func (s *WsSink) Close() {
	s.closeOnce.Do(func() {
		close(s.done)
	})
}
