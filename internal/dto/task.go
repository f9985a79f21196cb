package dto

import (
	"time"

	"github.com/google/uuid"
)

// WatermarkJob is the outbox/Kafka payload asking for a photo to be stamped.
type WatermarkJob struct {
	ID          uuid.UUID  `json:"id"`
	AssetID     uuid.UUID  `json:"asset_id"`
	AssetCode   string     `json:"asset_code"`
	Category    string     `json:"category"`
	OriginalKey string     `json:"original_key"`
	ContentType string     `json:"content_type"`
	CapturedAt  *time.Time `json:"captured_at,omitempty"`
	UploadedAt  time.Time  `json:"uploaded_at"`
	Latitude    *float64   `json:"latitude,omitempty"`
	Longitude   *float64   `json:"longitude,omitempty"`
}

// WatermarkTask is a WatermarkJob with the original bytes loaded.
type WatermarkTask struct {
	Data []byte
	WatermarkJob
}
