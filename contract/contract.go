//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"
	"time"

	"door-hub/domain"
)

// Envelope is one outbound frame on its way to a connection.
// Payload is the marshaled JSON frame; Filtered restricts effective
// delivery to OriginID even when the transport fans out group-wide.
type Envelope struct {
	Kind     string
	Payload  []byte
	Filtered bool
	OriginID string
}

// EventSink is the outbound side of one live connection.
// Deliver must never block indefinitely: a slow consumer is dropped,
// not waited for.
type EventSink interface {
	Deliver(env Envelope) error
}

type IGroupRegistry interface {
	Join(doorID, clientID string, sink EventSink)
	Leave(doorID, clientID string)
	Members(doorID string) []string
	SinksForDoor(doorID string) map[string]EventSink
}

type IPendingRequests interface {
	Register(requestID, originID string)
	Resolve(requestID string) (string, bool)
	PurgeSession(originID string) int
	ExpireBefore(cutoff time.Time) int
}

type IBroadcaster interface {
	Broadcast(doorID string, env Envelope, exclude ...string)
}

type IDoorStatusStore interface {
	SetStatus(doorID string, status domain.DoorStatus) error
	Get(doorID string) (domain.Door, error)
}

type IFaceVectorStore interface {
	Store(v domain.FaceVector) error
	StoreAnonymous(v domain.AnonymousFaceVector) error
	DeleteByName(name string) domain.DeleteResult
}

type IDeviceStore interface {
	Create(d domain.Device) error
	Authenticate(deviceID, apiKey string) (domain.Device, error)
	Touch(deviceID string, at time.Time) error
}

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
}

// Worker doesn't protect itself.
// Can be silly, focused.
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// Used for logging and supervision, avoiding manual naming in the
// Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}
