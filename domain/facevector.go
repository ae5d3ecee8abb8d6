package domain

import (
	"time"

	"github.com/google/uuid"
)

// FaceVector is an embedding registered for a known user.
type FaceVector struct {
	ID              uuid.UUID `json:"id"`
	UserID          *string   `json:"user_id,omitempty"`
	Name            string    `json:"name"`
	VectorData      []byte    `json:"vector_data"`
	VectorSize      int       `json:"vector_size"`
	FaceImageBase64 string    `json:"face_image_base64,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
	IsActive        bool      `json:"is_active"`
}

// AnonymousFaceVector is an embedding captured at a door without a
// matching user, kept for later identification.
type AnonymousFaceVector struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	VectorData      []byte    `json:"vector_data"`
	VectorSize      int       `json:"vector_size"`
	FaceImageBase64 string    `json:"face_image_base64,omitempty"`
	SourceIP        string    `json:"source_ip,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
	IsActive        bool      `json:"is_active"`
}

// DeleteResult aggregates a delete-by-name across both vector stores.
type DeleteResult struct {
	Success      bool
	DeletedCount int
	DeletedIDs   []string
	Message      string
}
