package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"door-hub/auth"
	"door-hub/contract"
	"door-hub/domain"
	hub "door-hub/errors"
	"door-hub/protocol"
	"door-hub/relay"
)

const defaultTokenDuration = 24 * time.Hour

// AdminHandler is the out-of-band control surface: it updates the
// door-status store, injects door_command frames into the door's
// group, and issues access tokens for WebSocket clients, without
// itself holding a relay session.
type AdminHandler struct {
	log           *slog.Logger
	doors         contract.IDoorStatusStore
	router        *relay.Router
	tokenDuration time.Duration
}

func NewAdminHandler(log *slog.Logger, doors contract.IDoorStatusStore, router *relay.Router,
	tokenDuration time.Duration) *AdminHandler {
	if tokenDuration <= 0 {
		tokenDuration = defaultTokenDuration
	}
	return &AdminHandler{log: log, doors: doors, router: router, tokenDuration: tokenDuration}
}

type setStatusRequest struct {
	Status string `json:"status"`
}

type setStatusResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	CurrentStatus string `json:"current_status"`
	UpdatedAt     string `json:"updated_at"`
	CommandID     string `json:"command_id"`
}

// SetStatus handles POST /api/doors/{door_id}/set_status.
func (h *AdminHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	doorID := r.PathValue("door_id")

	var req setStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Status == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "status value must be provided"})
		return
	}

	status, ok := domain.ParseDoorStatus(req.Status)
	if !ok {
		h.log.Warn("Rejected status change", "door_id", doorID,
			"status", req.Status, "error", hub.ErrInvalidStatus)
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "Invalid status value. Must be OPEN or CLOSED.",
		})
		return
	}

	door, err := h.doors.Get(doorID)
	if errors.Is(err, hub.ErrDoorNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "door not found"})
		return
	}
	if err != nil {
		h.log.Error("Door lookup failed", "door_id", doorID, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "door lookup failed"})
		return
	}

	if err := h.doors.SetStatus(doorID, status); err != nil {
		h.log.Error("Door status update failed", "door_id", doorID, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "status update failed"})
		return
	}

	commandID := h.inject(doorID, status)
	h.log.Info("Door status change completed",
		"door_id", doorID, "status", status, "command_id", commandID)

	writeJSON(w, http.StatusOK, setStatusResponse{
		ID:            doorID,
		Name:          door.Name,
		CurrentStatus: string(status),
		UpdatedAt:     time.Now().UTC().Format(time.RFC3339),
		CommandID:     commandID,
	})
}

type openDoorsRequest struct {
	DoorIDs []string `json:"door_ids"`
}

type openDoorResult struct {
	DoorID  string `json:"door_id"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// OpenDoors handles POST /api/doors/open: one shared command id, one
// OPEN command injected per door, per-door results in the response.
func (h *AdminHandler) OpenDoors(w http.ResponseWriter, r *http.Request) {
	var req openDoorsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.DoorIDs) == 0 {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":   "at least one door id must be provided",
			"example": map[string]any{"door_ids": []string{"uuid1", "uuid2"}},
		})
		return
	}

	// One command id shared by the whole batch, so device logs can
	// correlate a building-wide unlock.
	commandID := uuid.NewString()
	results := make([]openDoorResult, 0, len(req.DoorIDs))
	for _, doorID := range req.DoorIDs {
		if err := h.doors.SetStatus(doorID, domain.StatusOpen); err != nil {
			results = append(results, openDoorResult{DoorID: doorID, Success: false, Error: err.Error()})
			continue
		}
		h.injectWith(doorID, domain.StatusOpen, commandID)
		results = append(results, openDoorResult{DoorID: doorID, Success: true})
	}

	writeJSON(w, http.StatusOK, map[string]any{"results": results, "command_id": commandID})
}

func (h *AdminHandler) inject(doorID string, status domain.DoorStatus) string {
	commandID := uuid.NewString()
	h.injectWith(doorID, status, commandID)
	return commandID
}

func (h *AdminHandler) injectWith(doorID string, status domain.DoorStatus, commandID string) {
	h.router.InjectCommand(doorID, protocol.DoorCommand{
		Type:      protocol.KindDoorCommand,
		Command:   "set_status",
		Status:    string(status),
		DoorID:    doorID,
		CommandID: commandID,
		Timestamp: protocol.Timestamp(),
	})
}

type issueTokenRequest struct {
	UserID string   `json:"user_id"`
	Roles  []string `json:"roles"`
}

// IssueToken handles POST /api/auth/token: it signs a JWT that mobile
// clients present on the WebSocket handshake. The admin API sits on a
// trusted network, same as the door command injection.
func (h *AdminHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	var req issueTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.UserID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "user_id must be provided"})
		return
	}

	token, err := auth.GenerateToken(req.UserID, req.Roles, h.tokenDuration)
	if err != nil {
		h.log.Error("Token generation failed", "user_id", req.UserID, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "token generation failed"})
		return
	}

	h.log.Info("Issued access token", "user_id", req.UserID, "roles", req.Roles,
		"expires_in", h.tokenDuration)
	writeJSON(w, http.StatusOK, map[string]any{
		"token":      token,
		"expires_in": int64(h.tokenDuration.Seconds()),
	})
}

// Routes wires both surfaces onto one mux.
func Routes(ws *WsHandler, admin *AdminHandler) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /ws/doors/{door_id}", ws.HandleDoor)
	mux.HandleFunc("POST /api/doors/{door_id}/set_status", admin.SetStatus)
	mux.HandleFunc("POST /api/doors/open", admin.OpenDoors)
	mux.HandleFunc("POST /api/auth/token", admin.IssueToken)
	return mux
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
