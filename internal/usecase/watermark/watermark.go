package watermark

import (
	"context"
	"fmt"
	"strings"

	"github.com/andreyxaxa/ooh-proofs/internal/dto"
	"github.com/andreyxaxa/ooh-proofs/internal/infrastructure"
	"github.com/andreyxaxa/ooh-proofs/internal/usecase/proof"
	"github.com/andreyxaxa/ooh-proofs/pkg/types/errs"
)

const stampTimeLayout = "2006-01-02 15:04"

type UseCase struct {
	p        infrastructure.ImageProcessor
	maxWidth int
}

func New(p infrastructure.ImageProcessor, maxWidth int) *UseCase {
	return &UseCase{p: p, maxWidth: maxWidth}
}

// Render downsizes the original, stamps it and cuts a thumbnail from the stamped image.
func (uc *UseCase) Render(ctx context.Context, task dto.WatermarkTask) (*dto.Rendition, error) {
	if len(task.Data) == 0 {
		return nil, fmt.Errorf("WatermarkUseCase - Render: empty image: %w", errs.ErrUnsupportedImage)
	}

	resized, err := uc.p.Resize(ctx, task.ContentType, task.Data, uc.maxWidth)
	if err != nil {
		return nil, fmt.Errorf("WatermarkUseCase - Render - uc.p.Resize: %w", err)
	}

	stamped, err := uc.p.Watermark(ctx, task.ContentType, resized, StampLines(task.WatermarkJob))
	if err != nil {
		return nil, fmt.Errorf("WatermarkUseCase - Render - uc.p.Watermark: %w", err)
	}

	thumb, err := uc.p.Thumbnail(ctx, task.ContentType, stamped)
	if err != nil {
		return nil, fmt.Errorf("WatermarkUseCase - Render - uc.p.Thumbnail: %w", err)
	}

	return &dto.Rendition{
		Watermarked: stamped,
		Thumbnail:   thumb,
		ContentType: task.ContentType,
	}, nil
}

// StampLines builds the proof stamp, top line first:
// asset code and slot label, capture time, coordinates when known.
func StampLines(job dto.WatermarkJob) []string {
	var head []string
	if job.AssetCode != "" {
		head = append(head, job.AssetCode)
	}

	category := job.Category
	if slot, ok := proof.Normalize(&category); ok {
		head = append(head, proof.Label(slot))
	} else if category != "" {
		head = append(head, category)
	}

	var lines []string
	if len(head) > 0 {
		lines = append(lines, strings.Join(head, " | "))
	}

	ts := job.UploadedAt
	if job.CapturedAt != nil {
		ts = *job.CapturedAt
	}
	if !ts.IsZero() {
		lines = append(lines, ts.UTC().Format(stampTimeLayout)+" UTC")
	}

	if job.Latitude != nil && job.Longitude != nil {
		lines = append(lines, fmt.Sprintf("%.6f, %.6f", *job.Latitude, *job.Longitude))
	}

	return lines
}
