package protocol

import "time"

// Timestamp is the wire representation of "now" used in every
// server-generated frame.
func Timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

type ConnectionEstablished struct {
	Type       string `json:"type"`
	Message    string `json:"message"`
	Timestamp  string `json:"timestamp"`
	ClientID   string `json:"client_id"`
	ClientType string `json:"client_type"`
}

type DoorStatusEvent struct {
	Type      string `json:"type"`
	Status    string `json:"status"`
	ClientID  string `json:"client_id"`
	Timestamp string `json:"timestamp"`
}

type FaceRequestEvent struct {
	Type            string `json:"type"`
	FaceImageBase64 string `json:"face_image_base64"`
	Name            string `json:"name"`
	RequestID       string `json:"request_id"`
	Timestamp       string `json:"timestamp"`
}

// InProgressAck is the immediate reply a requester gets, decoupling it
// from the responder's latency.
type InProgressAck struct {
	Type      string `json:"type"`
	Result    string `json:"result"`
	RequestID string `json:"request_id"`
	Name      string `json:"name"`
	Timestamp string `json:"timestamp"`
	Message   string `json:"message"`
}

type FaceResultEvent struct {
	Type       string  `json:"type"`
	Result     string  `json:"result"`
	RequestID  string  `json:"request_id"`
	Confidence float64 `json:"confidence"`
	Timestamp  string  `json:"timestamp"`
}

type DeleteByNameResult struct {
	Type         string   `json:"type"`
	VectorName   string   `json:"vector_name"`
	Success      bool     `json:"success"`
	Message      string   `json:"message"`
	DeletedCount int      `json:"deleted_count"`
	DeletedIDs   []string `json:"deleted_ids"`
	Timestamp    string   `json:"timestamp"`
}

type VectorDeletedEvent struct {
	Type      string `json:"type"`
	VectorID  string `json:"vector_id"`
	Name      string `json:"name"`
	Success   bool   `json:"success"`
	Timestamp string `json:"timestamp"`
}

type HeartbeatResponse struct {
	Type      string `json:"type"`
	Timestamp string `json:"timestamp"`
	ClientID  string `json:"client_id"`
}

type RegistrationResponse struct {
	Type      string `json:"type"`
	Success   bool   `json:"success"`
	Timestamp string `json:"timestamp"`
}

// DoorCommand is server-originated: injected into a group by the admin
// surface and relayed verbatim to every member.
type DoorCommand struct {
	Type      string `json:"type"`
	Command   string `json:"command"`
	Status    string `json:"status"`
	DoorID    string `json:"door_id"`
	CommandID string `json:"command_id"`
	Timestamp string `json:"timestamp"`
}

type ErrorFrame struct {
	Type      string `json:"type"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}
