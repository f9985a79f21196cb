package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProofPhoto is a stored proof-of-installation photo with its renditions.
type ProofPhoto struct {
	ID      uuid.UUID `json:"id"`
	AssetID uuid.UUID `json:"asset_id"`

	PhotoURL   string     `json:"photo_url"`
	Category   *string    `json:"category,omitempty"`
	UploadedAt *time.Time `json:"uploaded_at,omitempty"`

	OriginalKey    string  `json:"original_key"`
	WatermarkedKey *string `json:"watermarked_key,omitempty"`
	ThumbnailKey   *string `json:"thumbnail_key,omitempty"`

	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
	Status      Status `json:"status"` // pending, processed

	CaptureMeta
}

// Record projects the photo onto the fields the proof resolver reads.
func (p *ProofPhoto) Record() PhotoRecord {
	return PhotoRecord{
		ID:         p.ID,
		PhotoURL:   p.PhotoURL,
		Category:   p.Category,
		UploadedAt: p.UploadedAt,
	}
}

// CaptureMeta is what the camera recorded, when it recorded anything.
type CaptureMeta struct {
	CapturedAt *time.Time `json:"captured_at,omitempty"`
	Latitude   *float64   `json:"latitude,omitempty"`
	Longitude  *float64   `json:"longitude,omitempty"`
}

func (m CaptureMeta) HasLocation() bool {
	return m.Latitude != nil && m.Longitude != nil
}
