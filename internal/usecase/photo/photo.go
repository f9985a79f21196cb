package photo

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/andreyxaxa/ooh-proofs/internal/dto"
	"github.com/andreyxaxa/ooh-proofs/internal/entity"
	"github.com/andreyxaxa/ooh-proofs/internal/infrastructure"
	"github.com/andreyxaxa/ooh-proofs/internal/metrics"
	"github.com/andreyxaxa/ooh-proofs/internal/repo"
	"github.com/andreyxaxa/ooh-proofs/internal/usecase/proof"
	"github.com/andreyxaxa/ooh-proofs/pkg/logger"
	"github.com/andreyxaxa/ooh-proofs/pkg/types/errs"
	"github.com/google/uuid"
)

type UseCase struct {
	storage    repo.PhotoStorage
	photoRepo  repo.ProofPhotoRepo
	outboxRepo repo.OutboxRepo
	transactor repo.Transactor
	exif       infrastructure.MetadataReader

	publicBaseURL string
	now           func() time.Time

	metrics *metrics.Metrics
	logger  logger.Interface
}

func New(
	storage repo.PhotoStorage,
	photoRepo repo.ProofPhotoRepo,
	outboxRepo repo.OutboxRepo,
	transactor repo.Transactor,
	exif infrastructure.MetadataReader,
	publicBaseURL string,
	m *metrics.Metrics,
	l logger.Interface,
) *UseCase {
	return &UseCase{
		storage:       storage,
		photoRepo:     photoRepo,
		outboxRepo:    outboxRepo,
		transactor:    transactor,
		exif:          exif,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		now:           time.Now,
		metrics:       m,
		logger:        l,
	}
}

func (uc *UseCase) UploadProofPhoto(ctx context.Context, upload dto.PhotoUpload) (*entity.ProofPhoto, error) {
	slot, ok := proof.Normalize(&upload.Category)
	if !ok {
		return nil, fmt.Errorf("PhotoUseCase - UploadProofPhoto - proof.Normalize(%q): %w", upload.Category, errs.ErrUnknownCategory)
	}

	data, err := io.ReadAll(upload.Data)
	if err != nil {
		return nil, fmt.Errorf("PhotoUseCase - UploadProofPhoto - io.ReadAll: %w", err)
	}

	photoID := uuid.New()
	originalKey := originalKey(upload.AssetID, photoID)
	uploadedAt := uc.now().UTC()
	category := upload.Category

	photo := &entity.ProofPhoto{
		ID:          photoID,
		AssetID:     upload.AssetID,
		PhotoURL:    uc.publicURL(originalKey),
		Category:    &category,
		UploadedAt:  &uploadedAt,
		OriginalKey: originalKey,
		ContentType: upload.ContentType,
		Size:        int64(len(data)),
		Status:      entity.Pending,
		CaptureMeta: uc.exif.Read(data),
	}

	// 1. object storage first, the row must never point at a missing object
	err = uc.storage.UploadBytes(ctx, originalKey, data, upload.ContentType)
	if err != nil {
		return nil, fmt.Errorf("PhotoUseCase - UploadProofPhoto - uc.storage.UploadBytes: %w", err)
	}

	// 2. row and watermark job in one transaction
	err = uc.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := uc.photoRepo.Create(ctx, photo); err != nil {
			return fmt.Errorf("PhotoUseCase - UploadProofPhoto - uc.photoRepo.Create: %w", err)
		}

		event, err := uc.createOutboxEvent(photo, upload.AssetCode)
		if err != nil {
			return fmt.Errorf("PhotoUseCase - UploadProofPhoto - uc.createOutboxEvent: %w", err)
		}
		if err := uc.outboxRepo.Create(ctx, event); err != nil {
			return fmt.Errorf("PhotoUseCase - UploadProofPhoto - uc.outboxRepo.Create: %w", err)
		}

		return nil
	})
	if err != nil {
		deleteErr := uc.storage.Delete(ctx, originalKey)
		if deleteErr != nil {
			uc.logger.Error(deleteErr, "PhotoUseCase - UploadProofPhoto - uc.storage.Delete")
		}
		return nil, fmt.Errorf("PhotoUseCase - UploadProofPhoto - uc.transactor.WithinTransaction: %w", err)
	}

	if uc.metrics != nil {
		uc.metrics.PhotosUploaded.WithLabelValues(string(slot)).Inc()
	}

	return photo, nil
}

// SaveRenditions stores the stamped image and thumbnail and repoints photo_url at the stamped one.
func (uc *UseCase) SaveRenditions(ctx context.Context, photoID uuid.UUID, rendition *dto.Rendition) error {
	photo, err := uc.photoRepo.GetByID(ctx, photoID)
	if err != nil {
		return fmt.Errorf("PhotoUseCase - SaveRenditions - uc.photoRepo.GetByID: %w", err)
	}

	contentType := rendition.ContentType
	if contentType == "" {
		contentType = photo.ContentType
	}

	wmKey := watermarkedKey(photo.AssetID, photoID)
	err = uc.storage.UploadBytes(ctx, wmKey, rendition.Watermarked, contentType)
	if err != nil {
		return fmt.Errorf("PhotoUseCase - SaveRenditions - uc.storage.UploadBytes(watermarked): %w", err)
	}

	thKey := thumbnailKey(photo.AssetID, photoID)
	err = uc.storage.UploadBytes(ctx, thKey, rendition.Thumbnail, contentType)
	if err != nil {
		uc.cleanup(ctx, "SaveRenditions", wmKey)
		return fmt.Errorf("PhotoUseCase - SaveRenditions - uc.storage.UploadBytes(thumbnail): %w", err)
	}

	photo.WatermarkedKey = &wmKey
	photo.ThumbnailKey = &thKey
	photo.PhotoURL = uc.publicURL(wmKey)
	photo.Status = entity.Processed

	err = uc.photoRepo.UpdateRenditions(ctx, photo)
	if err != nil {
		uc.cleanup(ctx, "SaveRenditions", wmKey, thKey)
		return fmt.Errorf("PhotoUseCase - SaveRenditions - uc.photoRepo.UpdateRenditions: %w", err)
	}

	if uc.metrics != nil {
		uc.metrics.PhotosWatermarked.Inc()
	}

	return nil
}

func (uc *UseCase) DownloadPhoto(ctx context.Context, key string) (io.ReadCloser, error) {
	body, err := uc.storage.Download(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("PhotoUseCase - DownloadPhoto - uc.storage.Download: %w", err)
	}

	return body, nil
}

func (uc *UseCase) DownloadPhotoBytes(ctx context.Context, key string) ([]byte, error) {
	b, err := uc.storage.DownloadBytes(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("PhotoUseCase - DownloadPhotoBytes - uc.storage.DownloadBytes: %w", err)
	}

	return b, nil
}

func (uc *UseCase) DeletePhoto(ctx context.Context, id uuid.UUID) error {
	photo, err := uc.photoRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("PhotoUseCase - DeletePhoto - uc.photoRepo.GetByID: %w", err)
	}

	// the outbox row goes with it (on delete cascade)
	err = uc.photoRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("PhotoUseCase - DeletePhoto - uc.photoRepo.Delete: %w", err)
	}

	keys := []string{photo.OriginalKey}
	if photo.WatermarkedKey != nil {
		keys = append(keys, *photo.WatermarkedKey)
	}
	if photo.ThumbnailKey != nil {
		keys = append(keys, *photo.ThumbnailKey)
	}
	uc.cleanup(ctx, "DeletePhoto", keys...)

	return nil
}

func (uc *UseCase) GetWatermarkedKeyByID(ctx context.Context, id uuid.UUID) (string, string, error) {
	key, ctype, err := uc.photoRepo.GetWatermarkedKeyByID(ctx, id)
	if err != nil {
		return "", "", fmt.Errorf("PhotoUseCase - GetWatermarkedKeyByID - uc.photoRepo.GetWatermarkedKeyByID: %w", err)
	}

	return key, ctype, nil
}

// cleanup removes objects whose rows were never written or were just deleted.
// Failures only leave orphans behind, so they are logged.
func (uc *UseCase) cleanup(ctx context.Context, method string, keys ...string) {
	for _, key := range keys {
		if err := uc.storage.Delete(ctx, key); err != nil {
			uc.logger.Warn("PhotoUseCase - %s - failed to delete key=%s, error=%v", method, key, err)
		}
	}
}

func (uc *UseCase) publicURL(key string) string {
	return uc.publicBaseURL + "/" + key
}

func originalKey(assetID, photoID uuid.UUID) string {
	return fmt.Sprintf("originals/%s/%s", assetID, photoID)
}

func watermarkedKey(assetID, photoID uuid.UUID) string {
	return fmt.Sprintf("watermarked/%s/%s", assetID, photoID)
}

func thumbnailKey(assetID, photoID uuid.UUID) string {
	return fmt.Sprintf("thumbnails/%s/%s", assetID, photoID)
}
