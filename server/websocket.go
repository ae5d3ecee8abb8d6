// Package server exposes the hub's two surfaces: the WebSocket relay
// endpoint clients stay connected to, and the small HTTP admin API
// that injects door commands out-of-band.
package server

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"door-hub/auth"
	"door-hub/contract"
	"door-hub/domain"
	hub "door-hub/errors"
	"door-hub/observability"
	"door-hub/protocol"
	"door-hub/relay"
	"door-hub/sink"
)

const (
	writeWait = 10 * time.Second
	// Short ids keep log lines readable; collisions across live
	// sessions are acceptable at this scale, matching the upstream
	// protocol clients already expect.
	clientIDLength = 8
)

type WsHandler struct {
	log             *slog.Logger
	router          *relay.Router
	registry        contract.IGroupRegistry
	devices         contract.IDeviceStore
	monitoring      *observability.Monitoring
	upgrader        websocket.Upgrader
	bufferSize      int
	deliveryTimeout time.Duration
	readLimit       int64
	authRequired    bool
}

func NewWsHandler(
	log *slog.Logger,
	router *relay.Router,
	registry contract.IGroupRegistry,
	devices contract.IDeviceStore,
	monitoring *observability.Monitoring,
	bufferSize int,
	deliveryTimeout time.Duration,
	readLimit int64,
	authRequired bool,
) *WsHandler {
	return &WsHandler{
		log:        log,
		router:     router,
		registry:   registry,
		devices:    devices,
		monitoring: monitoring,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			// Panels and devices connect from private networks and
			// native clients that send no Origin header.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		bufferSize:      bufferSize,
		deliveryTimeout: deliveryTimeout,
		readLimit:       readLimit,
		authRequired:    authRequired,
	}
}

// HandleDoor upgrades the connection, joins the session to its door
// group, and runs the read loop until the client goes away. The
// goroutine handling the request owns the session for its whole life.
func (h *WsHandler) HandleDoor(w http.ResponseWriter, r *http.Request) {
	doorID := r.PathValue("door_id")
	clientType := domain.ParseClientType(r.URL.Query().Get("client_type"))

	// Handshake auth happens before the upgrade: a rejected client
	// never establishes group or pending state, so there is nothing to
	// clean up.
	deviceID := ""
	if h.authRequired {
		var err error
		if deviceID, err = h.authenticate(r, clientType); err != nil {
			h.log.Warn("Rejected connection at handshake",
				"door_id", doorID, "client_type", clientType, "remote", r.RemoteAddr, "error", err)
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Error("WebSocket upgrade failed", "door_id", doorID, "error", err)
		return
	}

	clientID := uuid.NewString()[:clientIDLength]
	h.log.Info("Client connecting",
		"client_id", clientID, "door_id", doorID,
		"client_type", clientType, "remote", r.RemoteAddr)

	wsSink := sink.NewWsSink(h.log, clientID, h.bufferSize, h.deliveryTimeout)
	session := relay.NewSession(clientID, doorID, clientType, wsSink)
	session.DeviceID = deviceID

	h.registry.Join(doorID, clientID, wsSink)
	h.monitoring.SessionOpened()

	h.sendWelcome(wsSink, clientID, doorID, clientType)

	go h.writePump(conn, wsSink, clientID)
	h.readLoop(conn, session)

	// Terminal state: purge pending entries first, leave the group
	// second. The sink is closed last so a concurrent broadcast fails
	// fast instead of waiting out its delivery timeout.
	h.router.Disconnect(session)
	wsSink.Close()
	_ = conn.Close()
	h.log.Info("Client disconnected", "client_id", clientID, "door_id", doorID)
}

// authenticate validates the handshake credentials and returns the
// device id for device-backed connections, so heartbeats can keep the
// device's last_online fresh for the rest of the session.
func (h *WsHandler) authenticate(r *http.Request, clientType domain.ClientType) (string, error) {
	query := r.URL.Query()

	if clientType == domain.ClientRaspberry {
		deviceID := query.Get("device_id")
		apiKey := query.Get("api_key")
		device, err := h.devices.Authenticate(deviceID, apiKey)
		if err != nil {
			return "", fmt.Errorf("device auth: %w", err)
		}
		id := device.ID.String()
		if err := h.devices.Touch(id, time.Now().UTC()); err != nil {
			h.log.Warn("Failed to update device last_online", "device_id", deviceID, "error", err)
		}
		return id, nil
	}

	if _, err := auth.ValidateToken(query.Get("token")); err != nil {
		return "", fmt.Errorf("%w: %v", hub.ErrInvalidToken, err)
	}
	return "", nil
}

func (h *WsHandler) sendWelcome(s *sink.WsSink, clientID, doorID string, clientType domain.ClientType) {
	welcome := protocol.ConnectionEstablished{
		Type:       protocol.KindConnectionEstablished,
		Message:    fmt.Sprintf("Connection established for door %s", doorID),
		Timestamp:  protocol.Timestamp(),
		ClientID:   clientID,
		ClientType: string(clientType),
	}
	payload, err := json.Marshal(welcome)
	if err != nil {
		h.log.Error("Failed to encode welcome frame", "error", err)
		return
	}
	if err := s.Deliver(contract.Envelope{Kind: protocol.KindConnectionEstablished, Payload: payload}); err != nil {
		h.log.Warn("Failed to queue welcome frame", "client_id", clientID, "error", err)
	}
}

// readLoop processes inbound frames strictly in arrival order. It
// returns when the peer closes, the connection breaks, or the read
// limit is exceeded.
func (h *WsHandler) readLoop(conn *websocket.Conn, session *relay.Session) {
	if h.readLimit > 0 {
		conn.SetReadLimit(h.readLimit)
	}
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.log.Warn("Connection read failed", "client_id", session.ID, "error", err)
			}
			return
		}
		h.router.HandleFrame(session, data)
	}
}

// writePump drains the sink's buffer onto the wire. One writer per
// connection; gorilla allows at most one concurrent writer.
func (h *WsHandler) writePump(conn *websocket.Conn, s *sink.WsSink, clientID string) {
	for {
		select {
		case <-s.Done():
			return
		case frame := <-s.Frames():
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				h.log.Warn("Connection write failed, closing", "client_id", clientID, "error", err)
				// Unblock the read loop so the disconnect path runs.
				_ = conn.Close()
				return
			}
		}
	}
}
