package relay

import (
	"log/slog"

	"door-hub/contract"
	"door-hub/observability"
)

// Broadcaster delivers one envelope to every current member of a door
// except an excluded set. Fan-out is best-effort and point-in-time:
// membership changes during iteration are not reflected, a broken
// recipient is logged and skipped, and no error ever reaches the
// caller. The recipient's own disconnect path reaps it later.
type Broadcaster struct {
	log        *slog.Logger
	registry   contract.IGroupRegistry
	monitoring *observability.Monitoring
}

func NewBroadcaster(log *slog.Logger, registry contract.IGroupRegistry,
	monitoring *observability.Monitoring) *Broadcaster {
	return &Broadcaster{log: log, registry: registry, monitoring: monitoring}
}

func (b *Broadcaster) Broadcast(doorID string, env contract.Envelope, exclude ...string) {
	excluded := make(set, len(exclude))
	for _, id := range exclude {
		excluded[id] = struct{}{}
	}

	sinks := b.registry.SinksForDoor(doorID)
	for clientID, sink := range sinks {
		if _, skip := excluded[clientID]; skip {
			continue
		}
		if err := sink.Deliver(env); err != nil {
			b.monitoring.IncrDroppedSend()
			b.log.Warn("Dropping broadcast for unreachable client",
				"door_id", doorID,
				"client_id", clientID,
				"kind", env.Kind,
				"error", err)
			continue
		}
	}
	b.monitoring.IncrBroadcast()
}
