// Package domain contains core concepts of the door access system.
// No runtime, network, or storage logic should be added here.
package domain

import "time"

type DoorStatus string

const (
	StatusOpen    DoorStatus = "OPEN"
	StatusClosed  DoorStatus = "CLOSED"
	StatusUnknown DoorStatus = "UNKNOWN"
)

// ParseDoorStatus normalizes a client-supplied status value.
// The wire protocol is case-insensitive; storage is not.
func ParseDoorStatus(s string) (DoorStatus, bool) {
	switch DoorStatus(normalize(s)) {
	case StatusOpen:
		return StatusOpen, true
	case StatusClosed:
		return StatusClosed, true
	default:
		return StatusUnknown, false
	}
}

// Door is the physical resource every relay group is keyed by.
type Door struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	CurrentStatus DoorStatus `json:"current_status"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
