package server

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"door-hub/domain"
	"door-hub/mocks"
	"door-hub/observability"
	"door-hub/relay"
)

const testPngBase64 = "iVBORw0KGgo="

type wsFixture struct {
	server      *httptest.Server
	doorsMock   *mocks.MockIDoorStatusStore
	vectorsMock *mocks.MockIFaceVectorStore
}

func newWsFixture(t *testing.T) *wsFixture {
	log := logs.GetLoggerFromLevel(slog.LevelError)
	ctrl := gomock.NewController(t)

	registry := relay.NewGroupRegistry()
	pending := relay.NewPendingRequestTable()
	monitoring := observability.NewMonitoring()
	broadcaster := relay.NewBroadcaster(log, registry, monitoring)
	doorsMock := mocks.NewMockIDoorStatusStore(ctrl)
	vectorsMock := mocks.NewMockIFaceVectorStore(ctrl)
	devicesMock := mocks.NewMockIDeviceStore(ctrl)
	router := relay.NewRouter(log, registry, pending, broadcaster, doorsMock, vectorsMock, devicesMock, monitoring)

	handler := NewWsHandler(log, router, registry, devicesMock, monitoring,
		16, 100*time.Millisecond, 1<<20, false)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /ws/doors/{door_id}", handler.HandleDoor)

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return &wsFixture{server: server, doorsMock: doorsMock, vectorsMock: vectorsMock}
}

func (f *wsFixture) dial(t *testing.T, doorID, clientType string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(f.server.URL, "http") +
		fmt.Sprintf("/ws/doors/%s?client_type=%s", doorID, clientType)
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func readFrame(t *testing.T, conn *websocket.Conn) map[string]any {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	frame := map[string]any{}
	require.NoError(t, json.Unmarshal(data, &frame))
	return frame
}

func expectNoFrame(t *testing.T, conn *websocket.Conn) {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(150*time.Millisecond)))
	_, data, err := conn.ReadMessage()
	require.Error(t, err, "unexpected frame: %s", string(data))
}

func TestWs_Handshake_Sends_Welcome(t *testing.T) {
	req := require.New(t)
	f := newWsFixture(t)

	conn := f.dial(t, "front_entrance", "mobile")

	welcome := readFrame(t, conn)
	req.Equal("connection_established", welcome["type"])
	req.Equal("Connection established for door front_entrance", welcome["message"])
	req.Equal("mobile", welcome["client_type"])

	clientID, ok := welcome["client_id"].(string)
	req.True(ok)
	req.Len(clientID, 8)
}

func TestWs_StatusUpdate_Fans_Out_To_Other_Members_Only(t *testing.T) {
	req := require.New(t)
	f := newWsFixture(t)

	f.doorsMock.EXPECT().
		SetStatus("front_entrance", domain.StatusOpen).
		Return(nil).
		Times(1)

	sender := f.dial(t, "front_entrance", "mobile")
	receiver := f.dial(t, "front_entrance", "raspberry")
	readFrame(t, sender)
	readFrame(t, receiver)

	req.NoError(sender.WriteMessage(websocket.TextMessage,
		[]byte(`{"type":"status_update","status":"OPEN"}`)))

	event := readFrame(t, receiver)
	req.Equal("door_status", event["type"])
	req.Equal("OPEN", event["status"])

	// The sender never hears its own update
	expectNoFrame(t, sender)
}

func TestWs_FaceRecognition_Roundtrip_Result_Reaches_Origin_Only(t *testing.T) {
	req := require.New(t)
	f := newWsFixture(t)

	mobile := f.dial(t, "front_entrance", "mobile")
	device := f.dial(t, "front_entrance", "raspberry")
	bystander := f.dial(t, "front_entrance", "mobile")
	readFrame(t, mobile)
	readFrame(t, device)
	readFrame(t, bystander)

	// When the mobile client asks for recognition
	request := fmt.Sprintf(`{"type":"face_recognition_request","face_image_base64":%q,"request_id":"req-42"}`, testPngBase64)
	req.NoError(mobile.WriteMessage(websocket.TextMessage, []byte(request)))

	// Then the device receives the fanned-out request
	fanned := readFrame(t, device)
	req.Equal("face_recognition_request", fanned["type"])
	req.Equal("req-42", fanned["request_id"])

	// And the mobile client gets its in_progress ack
	ack := readFrame(t, mobile)
	req.Equal("face_recognition_result", ack["type"])
	req.Equal("in_progress", ack["result"])
	req.Equal("req-42", ack["request_id"])

	// When the device answers
	result := `{"type":"face_recognition_result","result":"success","request_id":"req-42","confidence":0.97}`
	req.NoError(device.WriteMessage(websocket.TextMessage, []byte(result)))

	// Then only the origin receives the final result
	final := readFrame(t, mobile)
	req.Equal("face_recognition_result", final["type"])
	req.Equal("success", final["result"])
	req.Equal("req-42", final["request_id"])

	expectNoFrame(t, bystander)
}

func TestWs_Heartbeat_Roundtrip(t *testing.T) {
	req := require.New(t)
	f := newWsFixture(t)

	conn := f.dial(t, "garage", "mobile")
	welcome := readFrame(t, conn)

	req.NoError(conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"heartbeat"}`)))

	pong := readFrame(t, conn)
	req.Equal("heartbeat_response", pong["type"])
	req.Equal(welcome["client_id"], pong["client_id"])
}

func TestWs_Malformed_Frame_Keeps_Connection_Alive(t *testing.T) {
	req := require.New(t)
	f := newWsFixture(t)

	conn := f.dial(t, "garage", "mobile")
	readFrame(t, conn)

	req.NoError(conn.WriteMessage(websocket.TextMessage, []byte(`{"broken`)))

	errorFrame := readFrame(t, conn)
	req.Equal("error", errorFrame["type"])

	// The session survived: a heartbeat still answers
	req.NoError(conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"heartbeat"}`)))
	pong := readFrame(t, conn)
	req.Equal("heartbeat_response", pong["type"])
}

func TestWs_Disconnect_Purges_Pending_Late_Result_Dropped(t *testing.T) {
	req := require.New(t)
	f := newWsFixture(t)

	mobile := f.dial(t, "front_entrance", "mobile")
	device := f.dial(t, "front_entrance", "raspberry")
	readFrame(t, mobile)
	readFrame(t, device)

	request := fmt.Sprintf(`{"type":"face_recognition_request","face_image_base64":%q,"request_id":"req-77"}`, testPngBase64)
	req.NoError(mobile.WriteMessage(websocket.TextMessage, []byte(request)))
	readFrame(t, device) // fanned-out request
	readFrame(t, mobile) // in_progress ack

	// Given the requester hangs up before the device answers
	req.NoError(mobile.Close())
	time.Sleep(100 * time.Millisecond)

	// When the device answers late
	result := `{"type":"face_recognition_result","result":"success","request_id":"req-77"}`
	req.NoError(device.WriteMessage(websocket.TextMessage, []byte(result)))

	// Then nobody receives it, the device included
	expectNoFrame(t, device)
}
