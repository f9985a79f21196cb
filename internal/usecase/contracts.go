package usecase

import (
	"context"
	"io"
	"time"

	"github.com/andreyxaxa/ooh-proofs/internal/dto"
	"github.com/andreyxaxa/ooh-proofs/internal/entity"
	"github.com/google/uuid"
)

//go:generate mockgen -source=contracts.go -destination=mocks/mocks.go -package=mocks

type (
	ProofUseCase interface {
		Resolve(ctx context.Context, assetID uuid.UUID) (*entity.ProofSummary, error)
		Export(ctx context.Context, assetID uuid.UUID) ([]entity.ExportItem, error)
	}

	PhotoUseCase interface {
		UploadProofPhoto(ctx context.Context, upload dto.PhotoUpload) (*entity.ProofPhoto, error)
		SaveRenditions(ctx context.Context, photoID uuid.UUID, rendition *dto.Rendition) error
		DownloadPhoto(ctx context.Context, key string) (io.ReadCloser, error)
		DownloadPhotoBytes(ctx context.Context, key string) ([]byte, error)
		DeletePhoto(ctx context.Context, id uuid.UUID) error
		GetWatermarkedKeyByID(ctx context.Context, id uuid.UUID) (string, string, error)
		GetPendingEvents(ctx context.Context, maxRetries, limit int) ([]*entity.OutboxEvent, error)
		MarkAsProcessingBatch(ctx context.Context, events []*entity.OutboxEvent) error
		MarkAsProcessedBatch(ctx context.Context, events []*entity.OutboxEvent) error
		IncrementRetryCountBatch(ctx context.Context, events []*entity.OutboxEvent) error
		MarkMaxRetriesAsFailed(ctx context.Context, maxRetries int) error
		CleanupOutbox(ctx context.Context, retention time.Duration) error
	}

	WatermarkUseCase interface {
		Render(ctx context.Context, task dto.WatermarkTask) (*dto.Rendition, error)
	}

	PricingUseCase interface {
		Quote(ctx context.Context, in entity.PricingInput) (*entity.Pricing, error)
	}
)
