package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type PhotoRecord struct {
	ID         uuid.UUID  `json:"id"`
	PhotoURL   string     `json:"photo_url"`
	Category   *string    `json:"category"`
	UploadedAt *time.Time `json:"uploaded_at"`
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05",
	time.DateOnly,
}

// ParseTimestamp accepts the timestamp shapes the upload tools and the database export produce.
// Values without a zone are read as UTC.
func ParseTimestamp(s string) (*time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, false
	}

	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return &t, true
		}
	}

	return nil, false
}
