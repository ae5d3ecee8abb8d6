// Device simulator: connects to a hub as an edge device, answers
// face_recognition_request frames with a canned result, and keeps the
// connection alive with heartbeats. Useful for exercising the full
// request/result correlation path without hardware.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/websocket"
	"github.com/kelseyhightower/envconfig"
	"github.com/mama165/sdk-go/logs"

	"door-hub/protocol"
)

const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Device simulator terminated with error: %v\n", err)
	}
	os.Exit(code)
}

func run() (int, error) {
	var config Config
	if err := envconfig.Process("device", &config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}

	logger := logs.GetLoggerFromString(config.LogLevel)

	target, err := url.Parse(fmt.Sprintf("%s/ws/doors/%s", config.HubURL, config.DoorID))
	if err != nil {
		return exitConfig, fmt.Errorf("invalid hub url: %w", err)
	}
	query := target.Query()
	query.Set("client_type", "raspberry")
	if config.DeviceID != "" {
		query.Set("device_id", config.DeviceID)
		query.Set("api_key", config.APIKey)
	}
	target.RawQuery = query.Encode()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, target.String(), nil)
	if err != nil {
		return exitRuntime, fmt.Errorf("hub connection failed: %w", err)
	}
	defer conn.Close()

	logger.Info("Connected to hub", "url", target.Redacted(), "door_id", config.DoorID)

	// Single writer goroutine: gorilla allows one concurrent writer,
	// and both the responder and the heartbeat ticker produce frames.
	frames := make(chan any, 16)

	go func() {
		ticker := time.NewTicker(config.HeartbeatInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				frames <- protocol.Heartbeat{Type: protocol.KindHeartbeat}
			}
		}
	}()

	go func() {
		for {
			select {
			case <-ctx.Done():
				_ = conn.Close()
				return
			case frame := <-frames:
				if err := conn.WriteJSON(frame); err != nil {
					logger.Error("Write failed", "error", err)
					_ = conn.Close()
					return
				}
			}
		}
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return exitOK, nil
			}
			return exitRuntime, fmt.Errorf("hub connection lost: %w", err)
		}

		var probe struct {
			Type      string `json:"type"`
			RequestID string `json:"request_id"`
			ClientID  string `json:"client_id"`
		}
		if err := json.Unmarshal(data, &probe); err != nil {
			logger.Warn("Unparseable frame from hub", "error", err)
			continue
		}

		switch probe.Type {
		case protocol.KindConnectionEstablished:
			logger.Info("Session established", "client_id", probe.ClientID)
		case protocol.KindFaceRecognitionRequest:
			logger.Info("Answering recognition request", "request_id", probe.RequestID)
			go func(requestID string) {
				time.Sleep(config.ResponseLatency)
				frames <- protocol.FaceRecognitionResult{
					Type:       protocol.KindFaceRecognitionResult,
					Result:     config.Result,
					RequestID:  requestID,
					Confidence: config.Confidence,
				}
			}(probe.RequestID)
		case protocol.KindDoorCommand:
			logger.Info("Door command received", "frame", string(data))
		case protocol.KindHeartbeatResponse:
			logger.Debug("Heartbeat acknowledged")
		default:
			logger.Debug("Ignoring frame", "type", probe.Type)
		}
	}
}
