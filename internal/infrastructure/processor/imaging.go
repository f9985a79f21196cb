package processor

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/andreyxaxa/ooh-proofs/pkg/types/errs"
	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	thumbWidth  = 150
	thumbHeight = 150

	stampMargin      = 10
	stampLineSpacing = 4
)

var stampBand = color.NRGBA{R: 0, G: 0, B: 0, A: 140}

type ImageProcessor struct {
	face font.Face
}

func New() *ImageProcessor {
	return &ImageProcessor{face: basicfont.Face7x13}
}

// Resize downscales to maxWidth keeping the aspect ratio. Narrower images are re-encoded as is.
func (p *ImageProcessor) Resize(ctx context.Context, contentType string, data []byte, maxWidth int) ([]byte, error) {
	img, err := decodeImage(data)
	if err != nil {
		return nil, fmt.Errorf("ImageProcessor - Resize - decodeImage: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("ImageProcessor - Resize: %w", err)
	}

	res, err := encodeImage(fitWidth(img, maxWidth), contentType)
	if err != nil {
		return nil, fmt.Errorf("ImageProcessor - Resize - encodeImage: %w", err)
	}

	return res, nil
}

func (p *ImageProcessor) Thumbnail(ctx context.Context, contentType string, data []byte) ([]byte, error) {
	img, err := decodeImage(data)
	if err != nil {
		return nil, fmt.Errorf("ImageProcessor - Thumbnail - decodeImage: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("ImageProcessor - Thumbnail: %w", err)
	}

	thumb := imaging.Thumbnail(img, thumbWidth, thumbHeight, imaging.Lanczos)

	res, err := encodeImage(thumb, contentType)
	if err != nil {
		return nil, fmt.Errorf("ImageProcessor - Thumbnail - encodeImage: %w", err)
	}

	return res, nil
}

// Watermark stamps lines bottom-right over a translucent band, last line lowest.
func (p *ImageProcessor) Watermark(ctx context.Context, contentType string, data []byte, lines []string) ([]byte, error) {
	img, err := decodeImage(data)
	if err != nil {
		return nil, fmt.Errorf("ImageProcessor - Watermark - decodeImage: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("ImageProcessor - Watermark: %w", err)
	}

	rgba := imaging.Clone(img)
	bounds := rgba.Bounds()

	d := &font.Drawer{
		Dst:  rgba,
		Src:  image.NewUniform(color.White),
		Face: p.face,
	}

	metrics := p.face.Metrics()
	lineHeight := (metrics.Ascent + metrics.Descent).Ceil() + stampLineSpacing
	bandHeight := len(lines)*lineHeight + 2*stampMargin

	band := image.Rect(bounds.Min.X, bounds.Max.Y-bandHeight, bounds.Max.X, bounds.Max.Y).Intersect(bounds)
	draw.Draw(rgba, band, image.NewUniform(stampBand), image.Point{}, draw.Over)

	baseline := bounds.Max.Y - stampMargin - metrics.Descent.Ceil()
	for i := len(lines) - 1; i >= 0; i-- {
		textWidth := d.MeasureString(lines[i]).Round()
		d.Dot = fixed.P(bounds.Max.X-textWidth-stampMargin, baseline)
		d.DrawString(lines[i])
		baseline -= lineHeight
	}

	res, err := encodeImage(rgba, contentType)
	if err != nil {
		return nil, fmt.Errorf("ImageProcessor - Watermark - encodeImage: %w", err)
	}

	return res, nil
}

func fitWidth(img image.Image, maxWidth int) image.Image {
	if maxWidth <= 0 || img.Bounds().Dx() <= maxWidth {
		return img
	}
	return imaging.Resize(img, maxWidth, 0, imaging.Lanczos)
}

func decodeImage(data []byte) (image.Image, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("ImageProcessor - decodeImage - imaging.Decode: %w: %w", errs.ErrUnsupportedImage, err)
	}

	return img, nil
}

func encodeImage(img image.Image, contentType string) ([]byte, error) {
	var buf bytes.Buffer

	err := imaging.Encode(&buf, img, FormatFor(contentType), imaging.JPEGQuality(90))
	if err != nil {
		return nil, fmt.Errorf("ImageProcessor - encodeImage - imaging.Encode: %w", err)
	}

	return buf.Bytes(), nil
}

// FormatFor picks the output format for a content type; jpeg when unknown.
func FormatFor(contentType string) imaging.Format {
	switch contentType {
	case "image/png":
		return imaging.PNG
	case "image/gif":
		return imaging.GIF
	default:
		return imaging.JPEG
	}
}
