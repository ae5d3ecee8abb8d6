package domain

import (
	"time"

	"github.com/google/uuid"
)

// Device is an embedded edge client (door controller, camera unit).
// APIKeyHash is an Argon2id hash; the plain key is never stored.
type Device struct {
	ID         uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	Location   string     `json:"location,omitempty"`
	IPAddress  string     `json:"ip_address,omitempty"`
	APIKeyHash string     `json:"api_key_hash"`
	IsActive   bool       `json:"is_active"`
	LastOnline *time.Time `json:"last_online,omitempty"`
}
