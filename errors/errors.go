package errors

import "fmt"

var (
	ErrWorkerPanic    = fmt.Errorf("worker panic")
	ErrSinkClosed     = fmt.Errorf("sink closed")
	ErrSinkFull       = fmt.Errorf("sink buffer full")
	ErrDoorNotFound   = fmt.Errorf("door not found")
	ErrDeviceNotFound = fmt.Errorf("device not found")
	ErrInvalidAPIKey  = fmt.Errorf("invalid api key")
	ErrInvalidStatus  = fmt.Errorf("invalid door status")
	ErrInvalidToken   = fmt.Errorf("invalid token")
	ErrNotAnImage     = fmt.Errorf("payload is not an image")
	ErrInvalidBase64  = fmt.Errorf("payload is not valid base64")
	ErrUnknownKind    = fmt.Errorf("unknown message kind")
	ErrMissingField   = fmt.Errorf("missing required field")
)
