package relay

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"door-hub/domain"
	"door-hub/mocks"
	"door-hub/observability"
	"door-hub/protocol"
)

// pngBase64 is a minimal valid PNG header, enough for content sniffing.
const pngBase64 = "iVBORw0KGgo="

type routerFixture struct {
	router      *Router
	registry    *GroupRegistry
	pending     *PendingRequestTable
	monitoring  *observability.Monitoring
	doorsMock   *mocks.MockIDoorStatusStore
	vectorsMock *mocks.MockIFaceVectorStore
	devicesMock *mocks.MockIDeviceStore
}

func newRouterFixture(t *testing.T) *routerFixture {
	log := logs.GetLoggerFromLevel(slog.LevelError)
	ctrl := gomock.NewController(t)

	registry := NewGroupRegistry()
	pending := NewPendingRequestTable()
	monitoring := observability.NewMonitoring()
	broadcaster := NewBroadcaster(log, registry, monitoring)
	doorsMock := mocks.NewMockIDoorStatusStore(ctrl)
	vectorsMock := mocks.NewMockIFaceVectorStore(ctrl)
	devicesMock := mocks.NewMockIDeviceStore(ctrl)

	return &routerFixture{
		router:      NewRouter(log, registry, pending, broadcaster, doorsMock, vectorsMock, devicesMock, monitoring),
		registry:    registry,
		pending:     pending,
		monitoring:  monitoring,
		doorsMock:   doorsMock,
		vectorsMock: vectorsMock,
		devicesMock: devicesMock,
	}
}

func (f *routerFixture) join(doorID string) (*Session, *captureSink) {
	sink := &captureSink{}
	s := NewSession(uuid.NewString()[:8], doorID, domain.ClientMobile, sink)
	f.registry.Join(doorID, s.ID, sink)
	return s, sink
}

func payloadOf(t *testing.T, sink *captureSink, i int) map[string]any {
	t.Helper()
	require.Greater(t, len(sink.delivered), i)
	frame := map[string]any{}
	require.NoError(t, json.Unmarshal(sink.delivered[i].Payload, &frame))
	return frame
}

func TestRouter_StatusUpdate_Broadcasts_To_Others_Only(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture(t)

	sender, senderSink := f.join("front_entrance")
	_, otherSink := f.join("front_entrance")
	_, strangerSink := f.join("garage")

	f.doorsMock.EXPECT().
		SetStatus("front_entrance", domain.StatusOpen).
		Return(nil).
		Times(1)

	// When a member reports a new status
	f.router.HandleFrame(sender, []byte(`{"type":"status_update","status":"OPEN"}`))

	// Then the sender hears nothing back
	req.Empty(senderSink.delivered)

	// And the other member of the same door gets the event
	frame := payloadOf(t, otherSink, 0)
	req.Equal("door_status", frame["type"])
	req.Equal("OPEN", frame["status"])
	req.Equal(sender.ID, frame["client_id"])
	req.NotEmpty(frame["timestamp"])

	// And the other door is untouched
	req.Empty(strangerSink.delivered)
}

func TestRouter_StatusUpdate_Canonicalizes_Lowercase(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture(t)

	sender, _ := f.join("front_entrance")
	_, otherSink := f.join("front_entrance")

	f.doorsMock.EXPECT().
		SetStatus("front_entrance", domain.StatusClosed).
		Return(nil).
		Times(1)

	f.router.HandleFrame(sender, []byte(`{"type":"status_update","status":"closed"}`))

	frame := payloadOf(t, otherSink, 0)
	req.Equal("CLOSED", frame["status"])
}

func TestRouter_StatusUpdate_Store_Failure_Still_Broadcasts(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture(t)

	sender, senderSink := f.join("front_entrance")
	_, otherSink := f.join("front_entrance")

	f.doorsMock.EXPECT().
		SetStatus("front_entrance", domain.StatusOpen).
		Return(fmt.Errorf("disk on fire")).
		Times(1)

	f.router.HandleFrame(sender, []byte(`{"type":"status_update","status":"OPEN"}`))

	// Then the fan-out happened despite the store failure
	req.Len(otherSink.delivered, 1)
	// And the sender saw no error frame
	req.Empty(senderSink.delivered)
}

func TestRouter_FaceRequest_Acks_InProgress_With_Same_RequestID(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture(t)

	requester, requesterSink := f.join("front_entrance")
	_, deviceSink := f.join("front_entrance")

	requestID := uuid.NewString()
	raw := fmt.Sprintf(`{"type":"face_recognition_request","face_image_base64":%q,"request_id":%q,"name":"alice"}`,
		pngBase64, requestID)

	// When a mobile client requests recognition
	f.router.HandleFrame(requester, []byte(raw))

	// Then the requester gets an immediate in_progress ack carrying the
	// same correlation id
	ack := payloadOf(t, requesterSink, 0)
	req.Equal("face_recognition_result", ack["type"])
	req.Equal("in_progress", ack["result"])
	req.Equal(requestID, ack["request_id"])
	req.Equal("alice", ack["name"])
	req.Equal("Face recognition request is being processed", ack["message"])

	// And the device sees the fanned-out request, never the ack
	req.Len(deviceSink.delivered, 1)
	event := payloadOf(t, deviceSink, 0)
	req.Equal("face_recognition_request", event["type"])
	req.Equal(requestID, event["request_id"])
	req.Equal(pngBase64, event["face_image_base64"])

	// And the correlation is registered to the requester
	origin, found := f.pending.Resolve(requestID)
	req.True(found)
	req.Equal(requester.ID, origin)
}

func TestRouter_FaceRequest_Without_RequestID_Generates_One(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture(t)

	requester, requesterSink := f.join("front_entrance")

	raw := fmt.Sprintf(`{"type":"face_recognition_request","face_image_base64":%q}`, pngBase64)
	f.router.HandleFrame(requester, []byte(raw))

	ack := payloadOf(t, requesterSink, 0)
	generated, ok := ack["request_id"].(string)
	req.True(ok)
	req.NotEmpty(generated)

	_, found := f.pending.Resolve(generated)
	req.True(found)
}

func TestRouter_FaceRequest_Strips_DataURI_Before_Fanout(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture(t)

	requester, _ := f.join("front_entrance")
	_, deviceSink := f.join("front_entrance")

	raw := fmt.Sprintf(`{"type":"face_recognition_request","face_image_base64":"data:image/png;base64,%s"}`, pngBase64)
	f.router.HandleFrame(requester, []byte(raw))

	event := payloadOf(t, deviceSink, 0)
	req.Equal(pngBase64, event["face_image_base64"])
}

func TestRouter_FaceRequest_NonImage_Payload_Still_Relayed(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture(t)

	requester, requesterSink := f.join("front_entrance")
	_, deviceSink := f.join("front_entrance")

	// Given a payload that is valid base64 but decodes to plain text
	raw := `{"type":"face_recognition_request","face_image_base64":"aGVsbG8gd29ybGQ=","request_id":"req-9"}`

	// When the requester sends it
	f.router.HandleFrame(requester, []byte(raw))

	// Then the hub still acks and fans out, carrying the payload as-is
	ack := payloadOf(t, requesterSink, 0)
	req.Equal("face_recognition_result", ack["type"])
	req.Equal("in_progress", ack["result"])
	req.Equal("req-9", ack["request_id"])

	event := payloadOf(t, deviceSink, 0)
	req.Equal("face_recognition_request", event["type"])
	req.Equal("aGVsbG8gd29ybGQ=", event["face_image_base64"])
}

func TestRouter_FaceRequest_Undecodable_Payload_Still_Relayed(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture(t)

	requester, requesterSink := f.join("front_entrance")
	_, deviceSink := f.join("front_entrance")

	raw := `{"type":"face_recognition_request","face_image_base64":"%%% not base64 %%%"}`
	f.router.HandleFrame(requester, []byte(raw))

	ack := payloadOf(t, requesterSink, 0)
	req.Equal("in_progress", ack["result"])

	event := payloadOf(t, deviceSink, 0)
	req.Equal("%%% not base64 %%%", event["face_image_base64"])
}

func TestRouter_FaceResult_Reaches_Origin_Only(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture(t)

	// Given a mobile requester, a responding device and a bystander on
	// the same door
	requester, requesterSink := f.join("front_entrance")
	device, deviceSink := f.join("front_entrance")
	_, bystanderSink := f.join("front_entrance")

	requestID := uuid.NewString()
	f.pending.Register(requestID, requester.ID)

	// When the device answers
	raw := fmt.Sprintf(`{"type":"face_recognition_result","result":"success","request_id":%q,"confidence":0.97}`, requestID)
	f.router.HandleFrame(device, []byte(raw))

	// Then the origin actually receives the filtered result
	req.Len(requesterSink.delivered, 1)
	env := requesterSink.delivered[0]
	req.True(env.Filtered)
	req.Equal(requester.ID, env.OriginID)

	frame := payloadOf(t, requesterSink, 0)
	req.Equal("face_recognition_result", frame["type"])
	req.Equal("success", frame["result"])
	req.Equal(requestID, frame["request_id"])
	req.InDelta(0.97, frame["confidence"], 0.0001)

	// And the bystander only sees a frame tagged for someone else; the
	// transport sink drops it before the client ever reads it
	req.Len(bystanderSink.delivered, 1)
	req.NotEqual("", bystanderSink.delivered[0].OriginID)

	// And the responding device is excluded outright
	req.Empty(deviceSink.delivered)

	// And the correlation entry is consumed
	_, found := f.pending.Resolve(requestID)
	req.False(found)
}

func TestRouter_FaceResult_For_Purged_Request_Delivered_To_Nobody_Effectively(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture(t)

	requester, _ := f.join("front_entrance")
	device, deviceSink := f.join("front_entrance")
	_, bystanderSink := f.join("front_entrance")

	requestID := uuid.NewString()
	f.pending.Register(requestID, requester.ID)

	// Given the requester disconnects before the result arrives
	f.router.Disconnect(NewSession(requester.ID, requester.DoorID, requester.ClientType, requester.Sink))

	// When the device answers late
	raw := fmt.Sprintf(`{"type":"face_recognition_result","result":"success","request_id":%q}`, requestID)
	f.router.HandleFrame(device, []byte(raw))

	// Then the broadcast is tagged with an empty origin: no connected
	// client matches it
	req.Len(bystanderSink.delivered, 1)
	req.True(bystanderSink.delivered[0].Filtered)
	req.Empty(bystanderSink.delivered[0].OriginID)
	req.Empty(deviceSink.delivered)
}

func TestRouter_Disconnect_Purges_Pending_And_Leaves_Group(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture(t)

	s, _ := f.join("front_entrance")
	f.pending.Register(uuid.NewString(), s.ID)
	f.pending.Register(uuid.NewString(), s.ID)
	f.monitoring.SessionOpened()

	// When the session disconnects
	f.router.Disconnect(s)

	// Then its pending requests and membership are gone
	req.Equal(0, f.pending.Len())
	req.Empty(f.registry.Members("front_entrance"))
	req.Equal(int64(0), f.monitoring.Snapshot().ActiveSessions)
}

func TestRouter_VectorDelete_Replies_And_Broadcasts_Per_Vector(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture(t)

	sender, senderSink := f.join("front_entrance")
	_, otherSink := f.join("front_entrance")

	f.vectorsMock.EXPECT().
		DeleteByName("alice").
		Return(domain.DeleteResult{
			Success:      true,
			DeletedCount: 2,
			DeletedIDs:   []string{"vec-1", "vec-2"},
			Message:      "Deleted 2 face vectors with name 'alice'",
		}).
		Times(1)

	f.router.HandleFrame(sender, []byte(`{"type":"face_vector_delete","name":"alice"}`))

	// Then the sender gets the aggregate result
	result := payloadOf(t, senderSink, 0)
	req.Equal("face_vector_delete_by_name_result", result["type"])
	req.Equal("alice", result["vector_name"])
	req.Equal(true, result["success"])
	req.Equal("Deleted 2 face vectors with name 'alice'", result["message"])
	req.Equal(float64(2), result["deleted_count"])

	// And the group gets one notification per deleted vector
	req.Len(otherSink.delivered, 2)
	first := payloadOf(t, otherSink, 0)
	req.Equal("face_vector_deleted", first["type"])
	req.Equal("vec-1", first["vector_id"])
	second := payloadOf(t, otherSink, 1)
	req.Equal("vec-2", second["vector_id"])
}

func TestRouter_VectorDelete_No_Match_Replies_Only(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture(t)

	sender, senderSink := f.join("front_entrance")
	_, otherSink := f.join("front_entrance")

	f.vectorsMock.EXPECT().
		DeleteByName("ghost").
		Return(domain.DeleteResult{
			Success:      false,
			DeletedCount: 0,
			Message:      "No face vectors found with name 'ghost'",
		}).
		Times(1)

	f.router.HandleFrame(sender, []byte(`{"type":"face_vector_delete","name":"ghost"}`))

	result := payloadOf(t, senderSink, 0)
	req.Equal(false, result["success"])
	req.Equal("No face vectors found with name 'ghost'", result["message"])
	req.Empty(otherSink.delivered)
}

func TestRouter_Heartbeat_Replies_To_Sender_Only(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture(t)

	sender, senderSink := f.join("front_entrance")
	_, otherSink := f.join("front_entrance")

	f.router.HandleFrame(sender, []byte(`{"type":"heartbeat"}`))

	frame := payloadOf(t, senderSink, 0)
	req.Equal("heartbeat_response", frame["type"])
	req.Equal(sender.ID, frame["client_id"])
	req.Empty(otherSink.delivered)
}

func TestRouter_Heartbeat_From_Device_Refreshes_LastOnline(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture(t)

	// Given a session backed by an authenticated device
	sender, senderSink := f.join("front_entrance")
	sender.DeviceID = "2f6c1f0e-7d36-4a6d-9c3a-1f9a5b8e4c21"

	f.devicesMock.EXPECT().
		Touch(sender.DeviceID, gomock.Any()).
		Return(nil).
		Times(1)

	// When it heartbeats
	f.router.HandleFrame(sender, []byte(`{"type":"heartbeat"}`))

	// Then last_online is refreshed and the reply still arrives
	frame := payloadOf(t, senderSink, 0)
	req.Equal("heartbeat_response", frame["type"])
}

func TestRouter_Heartbeat_Touch_Failure_Still_Replies(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture(t)

	sender, senderSink := f.join("front_entrance")
	sender.DeviceID = "2f6c1f0e-7d36-4a6d-9c3a-1f9a5b8e4c21"

	f.devicesMock.EXPECT().
		Touch(sender.DeviceID, gomock.Any()).
		Return(fmt.Errorf("store unavailable")).
		Times(1)

	f.router.HandleFrame(sender, []byte(`{"type":"heartbeat"}`))

	frame := payloadOf(t, senderSink, 0)
	req.Equal("heartbeat_response", frame["type"])
}

func TestRouter_RegistrationComplete_Acknowledged(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture(t)

	sender, senderSink := f.join("front_entrance")

	f.router.HandleFrame(sender, []byte(`{"type":"face_registration_complete"}`))

	frame := payloadOf(t, senderSink, 0)
	req.Equal("face_registration_response", frame["type"])
	req.Equal(true, frame["success"])
}

func TestRouter_Malformed_JSON_Gets_Error_Reply(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture(t)

	sender, senderSink := f.join("front_entrance")

	f.router.HandleFrame(sender, []byte(`{"type":"status_update",`))

	frame := payloadOf(t, senderSink, 0)
	req.Equal("error", frame["type"])
	req.NotEmpty(frame["message"])
	req.Equal(uint64(1), f.monitoring.Snapshot().ErrorCount)
}

func TestRouter_Missing_Required_Field_Gets_Error_Reply(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture(t)

	sender, senderSink := f.join("front_entrance")

	f.router.HandleFrame(sender, []byte(`{"type":"status_update"}`))

	frame := payloadOf(t, senderSink, 0)
	req.Equal("error", frame["type"])
	req.Contains(frame["message"], "status")
}

func TestRouter_Unknown_Kind_Is_Ignored_Silently(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture(t)

	sender, senderSink := f.join("front_entrance")
	_, otherSink := f.join("front_entrance")

	f.router.HandleFrame(sender, []byte(`{"type":"telepathy"}`))

	// Then nobody hears anything and the connection stays usable
	req.Empty(senderSink.delivered)
	req.Empty(otherSink.delivered)
	req.Equal(uint64(0), f.monitoring.Snapshot().ErrorCount)
}

func TestRouter_Handler_Panic_Becomes_Error_Reply(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture(t)

	sender, senderSink := f.join("front_entrance")

	f.vectorsMock.EXPECT().
		DeleteByName("alice").
		DoAndReturn(func(name string) domain.DeleteResult {
			panic("store exploded")
		}).
		Times(1)

	f.router.HandleFrame(sender, []byte(`{"type":"face_vector_delete","name":"alice"}`))

	frame := payloadOf(t, senderSink, 0)
	req.Equal("error", frame["type"])
	req.Equal("internal error while processing message", frame["message"])
	req.Equal(uint64(1), f.monitoring.Snapshot().ErrorCount)
}

func TestRouter_InjectCommand_Reaches_Whole_Group(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture(t)

	_, mobileSink := f.join("front_entrance")
	_, deviceSink := f.join("front_entrance")

	f.router.InjectCommand("front_entrance", protocol.DoorCommand{
		Type:      protocol.KindDoorCommand,
		Command:   "set_status",
		Status:    "OPEN",
		CommandID: uuid.NewString(),
		Timestamp: protocol.Timestamp(),
	})

	// Then every member receives the command, no exclusions
	mobileFrame := payloadOf(t, mobileSink, 0)
	req.Equal("door_command", mobileFrame["type"])
	req.Equal("set_status", mobileFrame["command"])
	req.Equal("OPEN", mobileFrame["status"])
	req.Len(deviceSink.delivered, 1)
}

func TestRouter_Truncates_Oversized_Frames_For_Logging(t *testing.T) {
	req := require.New(t)

	small := []byte(`{"type":"heartbeat"}`)
	req.Equal(string(small), truncateForLog(small))

	big := make([]byte, 500)
	for i := range big {
		big[i] = 'a'
	}
	logged := truncateForLog(big)
	req.Len(logged, 203)
	req.Contains(logged, "...")
}
