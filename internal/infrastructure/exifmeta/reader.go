package exifmeta

import (
	"bytes"
	"time"

	"github.com/andreyxaxa/ooh-proofs/internal/entity"
	"github.com/rwcarlsen/goexif/exif"
)

type Reader struct{}

func New() *Reader {
	return &Reader{}
}

// Read extracts capture time and GPS position. Photos without EXIF, or with a
// broken block, yield empty metadata.
func (r *Reader) Read(data []byte) entity.CaptureMeta {
	var meta entity.CaptureMeta

	x, err := exif.Decode(bytes.NewReader(data))
	if err != nil {
		return meta
	}

	if t, err := x.DateTime(); err == nil && !t.IsZero() {
		t = t.UTC().Truncate(time.Second)
		meta.CapturedAt = &t
	}

	if lat, long, err := x.LatLong(); err == nil && validCoordinates(lat, long) {
		meta.Latitude = &lat
		meta.Longitude = &long
	}

	return meta
}

func validCoordinates(lat, long float64) bool {
	if lat == 0 && long == 0 {
		return false
	}
	return lat >= -90 && lat <= 90 && long >= -180 && long <= 180
}
