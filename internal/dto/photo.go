package dto

import (
	"io"

	"github.com/google/uuid"
)

// PhotoUpload is a validated proof photo coming in over HTTP.
type PhotoUpload struct {
	AssetID      uuid.UUID
	AssetCode    string
	Category     string
	OriginalName string
	ContentType  string
	Size         int64
	Data         io.Reader
}

// Rendition is the output of the watermark pipeline for one photo.
type Rendition struct {
	Watermarked []byte
	Thumbnail   []byte
	ContentType string
}
