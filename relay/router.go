package relay

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"door-hub/contract"
	"door-hub/domain"
	hub "door-hub/errors"
	"door-hub/observability"
	"door-hub/protocol"
)

// Router classifies each inbound frame by kind and runs the matching
// handler. Handlers may mutate the registry and pending table and fan
// out through the broadcaster; a failure handling one frame never
// terminates the connection or leaks into another session.
type Router struct {
	log         *slog.Logger
	registry    contract.IGroupRegistry
	pending     contract.IPendingRequests
	broadcaster contract.IBroadcaster
	doors       contract.IDoorStatusStore
	vectors     contract.IFaceVectorStore
	devices     contract.IDeviceStore
	monitoring  *observability.Monitoring
}

func NewRouter(
	log *slog.Logger,
	registry contract.IGroupRegistry,
	pending contract.IPendingRequests,
	broadcaster contract.IBroadcaster,
	doors contract.IDoorStatusStore,
	vectors contract.IFaceVectorStore,
	devices contract.IDeviceStore,
	monitoring *observability.Monitoring,
) *Router {
	return &Router{
		log:         log,
		registry:    registry,
		pending:     pending,
		broadcaster: broadcaster,
		doors:       doors,
		vectors:     vectors,
		devices:     devices,
		monitoring:  monitoring,
	}
}

// HandleFrame dispatches one raw frame for a session. This is the
// recovery boundary: a panic inside a handler becomes an error reply
// to the sender and the connection lives on.
func (r *Router) HandleFrame(s *Session, raw []byte) {
	defer func() {
		if rec := recover(); rec != nil {
			r.monitoring.IncrErrorCount()
			r.log.Error("Recovered from handler panic",
				"client_id", s.ID, "door_id", s.DoorID, "panic", rec)
			r.replyError(s, "internal error while processing message")
		}
	}()

	r.log.Info("Received message", "client_id", s.ID, "frame", truncateForLog(raw))

	msg, err := protocol.Parse(raw)
	if err != nil {
		if errors.Is(err, hub.ErrUnknownKind) {
			// Not fatal, not answered. Forward-compatible clients may
			// speak kinds this hub does not know.
			r.log.Warn("Ignoring unknown message kind", "client_id", s.ID, "error", err)
			return
		}
		r.monitoring.IncrErrorCount()
		r.replyError(s, err.Error())
		return
	}

	r.monitoring.IncrRouted()

	switch m := msg.(type) {
	case protocol.StatusUpdate:
		r.handleStatusUpdate(s, m)
	case protocol.FaceRecognitionRequest:
		r.handleFaceRequest(s, m)
	case protocol.FaceRecognitionResult:
		r.handleFaceResult(s, m)
	case protocol.FaceVectorDelete:
		r.handleVectorDelete(s, m)
	case protocol.FaceRegistrationComplete:
		r.reply(s, protocol.KindFaceRegistrationResponse, protocol.RegistrationResponse{
			Type:      protocol.KindFaceRegistrationResponse,
			Success:   true,
			Timestamp: protocol.Timestamp(),
		})
	case protocol.Heartbeat:
		r.handleHeartbeat(s)
	}
}

// Disconnect runs the terminal cleanup for a session: purge every
// pending request it originated, then remove it from its group. The
// ordering matters — a result racing the disconnect must observe the
// full pending entry or none.
func (r *Router) Disconnect(s *Session) {
	purged := r.pending.PurgeSession(s.ID)
	r.registry.Leave(s.DoorID, s.ID)
	r.monitoring.SessionClosed()
	if purged > 0 {
		r.log.Info("Cleaned up pending requests for disconnected client",
			"client_id", s.ID, "purged", purged)
	}
}

// InjectCommand is the inbound injection point for the out-of-band
// control surface: the command is fanned out to every member of the
// door's group, with no exclusions, and relayed verbatim.
func (r *Router) InjectCommand(doorID string, cmd protocol.DoorCommand) {
	r.broadcast(doorID, protocol.KindDoorCommand, cmd)
}

func (r *Router) handleStatusUpdate(s *Session, m protocol.StatusUpdate) {
	status := m.Status
	if canonical, ok := domain.ParseDoorStatus(m.Status); ok {
		status = string(canonical)
	} else {
		r.log.Warn("Status update carries a non-canonical value, relaying as-is",
			"client_id", s.ID, "status", m.Status)
	}

	if err := r.doors.SetStatus(s.DoorID, domain.DoorStatus(status)); err != nil {
		// Collaborator failure: logged, never a connection error. The
		// broadcast still goes out so live clients track the change.
		r.log.Error("Door status store update failed",
			"door_id", s.DoorID, "status", status, "error", err)
	} else {
		r.log.Info("Door status updated", "door_id", s.DoorID, "status", status)
	}

	r.broadcast(s.DoorID, protocol.KindDoorStatus, protocol.DoorStatusEvent{
		Type:      protocol.KindDoorStatus,
		Status:    status,
		ClientID:  s.ID,
		Timestamp: protocol.Timestamp(),
	}, s.ID)
}

// handleHeartbeat answers the sender and, for sessions backed by a
// registered device, refreshes the device's last_online marker.
func (r *Router) handleHeartbeat(s *Session) {
	if s.DeviceID != "" {
		if err := r.devices.Touch(s.DeviceID, time.Now().UTC()); err != nil {
			r.log.Warn("Failed to refresh device last_online",
				"client_id", s.ID, "device_id", s.DeviceID, "error", err)
		}
	}
	r.reply(s, protocol.KindHeartbeatResponse, protocol.HeartbeatResponse{
		Type:      protocol.KindHeartbeatResponse,
		Timestamp: protocol.Timestamp(),
		ClientID:  s.ID,
	})
}

func (r *Router) handleFaceRequest(s *Session, m protocol.FaceRecognitionRequest) {
	requestID := m.RequestID
	if requestID == "" {
		requestID = uuid.NewString()
	}

	if warn := protocol.InspectImagePayload(m.FaceImageBase64); warn != nil {
		// Advisory only. The hub relays the payload untouched, the
		// responder decides whether it can work with it.
		r.log.Warn("Face payload did not sniff as an image, relaying anyway",
			"client_id", s.ID, "request_id", requestID, "error", warn)
	}

	// Register before fanning out: a responder that answers instantly
	// must find the entry already in place.
	r.pending.Register(requestID, s.ID)

	r.broadcast(s.DoorID, protocol.KindFaceRecognitionRequest, protocol.FaceRequestEvent{
		Type:            protocol.KindFaceRecognitionRequest,
		FaceImageBase64: m.FaceImageBase64,
		Name:            m.Name,
		RequestID:       requestID,
		Timestamp:       protocol.Timestamp(),
	}, s.ID)

	r.log.Info("Face recognition request broadcasted",
		"client_id", s.ID, "door_id", s.DoorID, "request_id", requestID)

	// Immediate acknowledgment: the requester is free to move on (or
	// hang up) without waiting for a responder.
	r.reply(s, protocol.KindFaceRecognitionResult, protocol.InProgressAck{
		Type:      protocol.KindFaceRecognitionResult,
		Result:    "in_progress",
		RequestID: requestID,
		Name:      m.Name,
		Timestamp: protocol.Timestamp(),
		Message:   "Face recognition request is being processed",
	})
}

func (r *Router) handleFaceResult(s *Session, m protocol.FaceRecognitionResult) {
	originID, found := r.pending.Resolve(m.RequestID)
	if !found {
		// Origin disconnected or the id was never registered. The
		// broadcast still happens, tagged with an empty origin, and
		// every recipient drops it.
		r.log.Info("Result for unknown or purged request",
			"client_id", s.ID, "request_id", m.RequestID)
	}

	env, err := envelope(protocol.KindFaceRecognitionResult, protocol.FaceResultEvent{
		Type:       protocol.KindFaceRecognitionResult,
		Result:     m.Result,
		RequestID:  m.RequestID,
		Confidence: m.Confidence,
		Timestamp:  protocol.Timestamp(),
	})
	if err != nil {
		r.log.Error("Failed to encode result event", "error", err)
		return
	}
	env.Filtered = true
	env.OriginID = originID
	r.broadcaster.Broadcast(s.DoorID, env, s.ID)

	r.log.Info("Face recognition result broadcasted",
		"client_id", s.ID, "request_id", m.RequestID, "result", m.Result, "origin", originID)
}

func (r *Router) handleVectorDelete(s *Session, m protocol.FaceVectorDelete) {
	result := r.vectors.DeleteByName(m.Name)
	r.log.Info("Face vector delete by name",
		"client_id", s.ID, "name", m.Name,
		"success", result.Success, "deleted_count", result.DeletedCount)

	for _, vectorID := range result.DeletedIDs {
		r.broadcast(s.DoorID, protocol.KindFaceVectorDeleted, protocol.VectorDeletedEvent{
			Type:      protocol.KindFaceVectorDeleted,
			VectorID:  vectorID,
			Name:      m.Name,
			Success:   result.Success,
			Timestamp: protocol.Timestamp(),
		}, s.ID)
	}

	r.reply(s, protocol.KindFaceVectorDeleteByName, protocol.DeleteByNameResult{
		Type:         protocol.KindFaceVectorDeleteByName,
		VectorName:   m.Name,
		Success:      result.Success,
		Message:      result.Message,
		DeletedCount: result.DeletedCount,
		DeletedIDs:   result.DeletedIDs,
		Timestamp:    protocol.Timestamp(),
	})
}

// reply sends a frame to the triggering session only.
func (r *Router) reply(s *Session, kind string, v any) {
	env, err := envelope(kind, v)
	if err != nil {
		r.log.Error("Failed to encode reply", "kind", kind, "error", err)
		return
	}
	if err := s.Sink.Deliver(env); err != nil {
		r.monitoring.IncrDroppedSend()
		r.log.Warn("Failed to deliver reply", "client_id", s.ID, "kind", kind, "error", err)
	}
}

func (r *Router) replyError(s *Session, message string) {
	r.reply(s, protocol.KindError, protocol.ErrorFrame{
		Type:      protocol.KindError,
		Message:   message,
		Timestamp: protocol.Timestamp(),
	})
}

// broadcast fans a frame out to the door's group minus the excluded
// session ids.
func (r *Router) broadcast(doorID, kind string, v any, exclude ...string) {
	env, err := envelope(kind, v)
	if err != nil {
		r.log.Error("Failed to encode broadcast", "kind", kind, "error", err)
		return
	}
	r.broadcaster.Broadcast(doorID, env, exclude...)
}

func envelope(kind string, v any) (contract.Envelope, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return contract.Envelope{}, fmt.Errorf("marshal %s: %w", kind, err)
	}
	return contract.Envelope{Kind: kind, Payload: payload}, nil
}

// truncateForLog keeps frame logging readable: base64 image payloads
// run to megabytes.
func truncateForLog(raw []byte) string {
	const keep = 100
	if len(raw) <= 2*keep {
		return string(raw)
	}
	return string(raw[:keep]) + "..." + string(raw[len(raw)-keep:])
}
