package main

import "time"

// Config for the device simulator. Uses envconfig-style DEVICE_*
// variables so a fleet of simulators can be driven from one compose
// file.
type Config struct {
	HubURL            string        `envconfig:"HUB_URL" default:"ws://localhost:8080"`
	DoorID            string        `envconfig:"DOOR_ID" required:"true"`
	DeviceID          string        `envconfig:"DEVICE_ID"`
	APIKey            string        `envconfig:"API_KEY"`
	Result            string        `envconfig:"RESULT" default:"success"`
	Confidence        float64       `envconfig:"CONFIDENCE" default:"0.92"`
	ResponseLatency   time.Duration `envconfig:"RESPONSE_LATENCY" default:"250ms"`
	HeartbeatInterval time.Duration `envconfig:"HEARTBEAT_INTERVAL" default:"30s"`
	LogLevel          string        `envconfig:"LOG_LEVEL" default:"INFO"`
}
