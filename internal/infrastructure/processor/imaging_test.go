package processor

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andreyxaxa/ooh-proofs/pkg/types/errs"
)

func solidPNG(t *testing.T, w, h int, c color.Color) []byte {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	return buf.Bytes()
}

func decode(t *testing.T, data []byte) image.Image {
	t.Helper()

	img, err := imaging.Decode(bytes.NewReader(data))
	require.NoError(t, err)

	return img
}

func TestWatermark_StampsBottomBand(t *testing.T) {
	p := New()
	src := solidPNG(t, 400, 300, color.White)

	out, err := p.Watermark(context.Background(), "image/png", src, []string{"HYD-0042 | Geo-tagged Photo", "2024-01-02 15:04"})
	require.NoError(t, err)

	img := decode(t, out)
	assert.Equal(t, image.Rect(0, 0, 400, 300), img.Bounds())

	// top-left untouched, bottom-left darkened by the band
	r, g, b, _ := img.At(1, 1).RGBA()
	assert.Equal(t, []uint32{0xffff, 0xffff, 0xffff}, []uint32{r, g, b})

	r, _, _, _ = img.At(1, 298).RGBA()
	assert.Less(t, r, uint32(0xffff))
}

func TestWatermark_NoLines(t *testing.T) {
	p := New()

	out, err := p.Watermark(context.Background(), "image/png", solidPNG(t, 50, 50, color.Black), nil)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 50, 50), decode(t, out).Bounds())
}

func TestResize_CapsWidth(t *testing.T) {
	p := New()

	out, err := p.Resize(context.Background(), "image/png", solidPNG(t, 800, 400, color.Black), 200)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 200, 100), decode(t, out).Bounds())

	out, err = p.Resize(context.Background(), "image/png", solidPNG(t, 100, 50, color.Black), 200)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 100, 50), decode(t, out).Bounds())
}

func TestThumbnail(t *testing.T) {
	p := New()

	out, err := p.Thumbnail(context.Background(), "image/jpeg", solidPNG(t, 640, 480, color.Gray{Y: 128}))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, thumbWidth, thumbHeight), decode(t, out).Bounds())
}

func TestProcessor_RejectsGarbage(t *testing.T) {
	_, err := New().Watermark(context.Background(), "image/png", []byte("not an image"), []string{"x"})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrUnsupportedImage)
}

func TestProcessor_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().Thumbnail(ctx, "image/png", solidPNG(t, 10, 10, color.Black))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFormatFor(t *testing.T) {
	assert.Equal(t, imaging.PNG, FormatFor("image/png"))
	assert.Equal(t, imaging.GIF, FormatFor("image/gif"))
	assert.Equal(t, imaging.JPEG, FormatFor("image/jpeg"))
	assert.Equal(t, imaging.JPEG, FormatFor("application/octet-stream"))
}
