package repo

import (
	"context"
	"io"
	"time"

	"github.com/andreyxaxa/ooh-proofs/internal/entity"
	"github.com/google/uuid"
)

//go:generate mockgen -source=contracts.go -destination=mocks/mocks.go -package=mocks

type (
	PhotoStorage interface {
		UploadBytes(ctx context.Context, key string, data []byte, contentType string) error
		Download(ctx context.Context, key string) (io.ReadCloser, error)
		DownloadBytes(ctx context.Context, key string) ([]byte, error)
		Delete(ctx context.Context, key string) error
	}

	ProofPhotoRepo interface {
		Create(ctx context.Context, photo *entity.ProofPhoto) error
		GetByID(ctx context.Context, id uuid.UUID) (*entity.ProofPhoto, error)
		GetWatermarkedKeyByID(ctx context.Context, id uuid.UUID) (string, string, error)
		ListRecordsByAsset(ctx context.Context, assetID uuid.UUID) ([]entity.PhotoRecord, error)
		UpdateRenditions(ctx context.Context, photo *entity.ProofPhoto) error
		Delete(ctx context.Context, id uuid.UUID) error
	}

	AssetProofRepo interface {
		GetByID(ctx context.Context, id uuid.UUID) (*entity.AssetProof, error)
	}

	OutboxRepo interface {
		Create(ctx context.Context, event *entity.OutboxEvent) error
		GetPendingEvents(ctx context.Context, maxRetries, limit int) ([]*entity.OutboxEvent, error)
		MarkAsProcessingBatch(ctx context.Context, IDs uuid.UUIDs) error
		MarkAsProcessedBatch(ctx context.Context, IDs uuid.UUIDs) error
		IncrementRetryCountBatch(ctx context.Context, IDs uuid.UUIDs) error
		MarkMaxRetriesAsFailed(ctx context.Context, maxRetries int) error
		DeleteOldProcessedAndFailed(ctx context.Context, olderThan time.Time) (int64, error)
	}

	Transactor interface {
		WithinTransaction(ctx context.Context, f func(ctx context.Context) error) error
	}
)
