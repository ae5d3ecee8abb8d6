// Package protocol defines the wire frames exchanged over a door
// connection as a closed set of typed messages. Validation happens
// once, at the parse boundary; handlers never see a half-formed frame.
package protocol

const (
	KindStatusUpdate             = "status_update"
	KindDoorStatus               = "door_status"
	KindFaceRecognitionRequest   = "face_recognition_request"
	KindFaceRecognitionResult    = "face_recognition_result"
	KindFaceVectorDelete         = "face_vector_delete"
	KindFaceVectorDeleteByName   = "face_vector_delete_by_name_result"
	KindFaceVectorDeleted        = "face_vector_deleted"
	KindFaceRegistrationComplete = "face_registration_complete"
	KindFaceRegistrationResponse = "face_registration_response"
	KindHeartbeat                = "heartbeat"
	KindHeartbeatResponse        = "heartbeat_response"
	KindDoorCommand              = "door_command"
	KindConnectionEstablished    = "connection_established"
	KindError                    = "error"
)

// Inbound is the closed union of client-originated frames.
type Inbound interface {
	Kind() string
}

type StatusUpdate struct {
	Type   string `json:"type"`
	Status string `json:"status" validate:"required"`
}

func (StatusUpdate) Kind() string { return KindStatusUpdate }

type FaceRecognitionRequest struct {
	Type string `json:"type"`
	// FaceImageBase64 holds the raw payload after any data-URI prefix
	// has been stripped by Parse.
	FaceImageBase64 string `json:"face_image_base64" validate:"required"`
	RequestID       string `json:"request_id,omitempty"`
	Name            string `json:"name,omitempty"`
}

func (FaceRecognitionRequest) Kind() string { return KindFaceRecognitionRequest }

type FaceRecognitionResult struct {
	Type       string  `json:"type"`
	Result     string  `json:"result"`
	RequestID  string  `json:"request_id" validate:"required"`
	Confidence float64 `json:"confidence,omitempty"`
}

func (FaceRecognitionResult) Kind() string { return KindFaceRecognitionResult }

type FaceVectorDelete struct {
	Type string `json:"type"`
	Name string `json:"name" validate:"required"`
}

func (FaceVectorDelete) Kind() string { return KindFaceVectorDelete }

type FaceRegistrationComplete struct {
	Type string `json:"type"`
}

func (FaceRegistrationComplete) Kind() string { return KindFaceRegistrationComplete }

type Heartbeat struct {
	Type string `json:"type"`
}

func (Heartbeat) Kind() string { return KindHeartbeat }
