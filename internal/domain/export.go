package domain

import (
	"time"

	"github.com/google/uuid"
)

type ExportStatus string

const (
	ExportStatusPending   ExportStatus = "pending"
	ExportStatusCompleted ExportStatus = "completed"
	ExportStatusFailed    ExportStatus = "failed"
)

// ExportEvent is the history record of one export attempt. It never carries
// resume content beyond the derived file name.
type ExportEvent struct {
	ID        uuid.UUID    `json:"id"`
	FileName  string       `json:"file_name"`
	Template  string       `json:"template"`
	Status    ExportStatus `json:"status"`
	SizeBytes int          `json:"size_bytes"`
	Error     string       `json:"error,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}
