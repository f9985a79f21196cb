package exifmeta

import (
	"bytes"
	"image"
	"image/jpeg"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andreyxaxa/ooh-proofs/internal/entity"
)

func TestRead_NoExif(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, image.NewGray(image.Rect(0, 0, 8, 8)), nil))

	assert.Equal(t, entity.CaptureMeta{}, New().Read(buf.Bytes()))
}

func TestRead_Garbage(t *testing.T) {
	assert.Equal(t, entity.CaptureMeta{}, New().Read([]byte("definitely not a photo")))
	assert.Equal(t, entity.CaptureMeta{}, New().Read(nil))
}

func TestValidCoordinates(t *testing.T) {
	assert.True(t, validCoordinates(17.385, 78.4867))
	assert.True(t, validCoordinates(-33.86, 151.2))
	assert.False(t, validCoordinates(0, 0))
	assert.False(t, validCoordinates(91, 10))
	assert.False(t, validCoordinates(10, -181))
}
