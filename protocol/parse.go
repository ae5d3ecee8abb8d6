package protocol

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-playground/validator/v10"

	"door-hub/errors"
)

var validate = validator.New()

// dataURISeparator splits a data-URI prefix from its base64 payload,
// e.g. "data:image/png;base64,iVBOR...".
const dataURISeparator = ";base64,"

// Parse decodes one inbound frame into its typed variant and runs the
// kind-specific validation. Garbage in yields an error; the connection
// stays open either way, that decision belongs to the router.
func Parse(raw []byte) (Inbound, error) {
	var probe struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	switch probe.Type {
	case KindStatusUpdate:
		var m StatusUpdate
		return decode(raw, &m, "status")
	case KindFaceRecognitionRequest:
		return parseFaceRequest(raw)
	case KindFaceRecognitionResult:
		var m FaceRecognitionResult
		return decode(raw, &m, "request_id")
	case KindFaceVectorDelete:
		var m FaceVectorDelete
		return decode(raw, &m, "name")
	case KindFaceRegistrationComplete:
		var m FaceRegistrationComplete
		return decode(raw, &m, "")
	case KindHeartbeat:
		var m Heartbeat
		return decode(raw, &m, "")
	default:
		return nil, fmt.Errorf("%w: %q", errors.ErrUnknownKind, probe.Type)
	}
}

// decode unmarshals into the concrete variant and maps a validation
// failure to the field name clients know from the wire format.
func decode[T Inbound](raw []byte, m *T, wireField string) (Inbound, error) {
	if err := json.Unmarshal(raw, m); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	if err := validate.Struct(m); err != nil {
		return nil, fmt.Errorf("%w: %s field is required", errors.ErrMissingField, wireField)
	}
	return *m, nil
}

func parseFaceRequest(raw []byte) (Inbound, error) {
	var m FaceRecognitionRequest
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	if err := validate.Struct(m); err != nil {
		return nil, fmt.Errorf("%w: face_image_base64 field is required", errors.ErrMissingField)
	}

	m.FaceImageBase64 = StripDataURI(m.FaceImageBase64)
	return m, nil
}

// InspectImagePayload reports whether a face payload looks like a
// base64-encoded image. Diagnostic only: the relay carries the payload
// opaquely either way, the responder decides what it can recognize.
func InspectImagePayload(payload string) error {
	decoded, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		decoded, err = base64.RawStdEncoding.DecodeString(payload)
	}
	if err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidBase64, err)
	}
	if mt := mimetype.Detect(decoded); !strings.HasPrefix(mt.String(), "image/") {
		return fmt.Errorf("%w: detected %s", errors.ErrNotAnImage, mt.String())
	}
	return nil
}

// StripDataURI removes a leading "data:...;base64," prefix, if any.
func StripDataURI(payload string) string {
	if i := strings.Index(payload, dataURISeparator); i >= 0 {
		return payload[i+len(dataURISeparator):]
	}
	return payload
}
