package proof

import (
	"context"
	"fmt"

	"github.com/andreyxaxa/ooh-proofs/internal/entity"
	"github.com/andreyxaxa/ooh-proofs/internal/metrics"
	"github.com/andreyxaxa/ooh-proofs/internal/repo"
	"github.com/google/uuid"
)

type UseCase struct {
	photos  repo.ProofPhotoRepo
	assets  repo.AssetProofRepo
	metrics *metrics.Metrics
}

func New(photos repo.ProofPhotoRepo, assets repo.AssetProofRepo, m *metrics.Metrics) *UseCase {
	return &UseCase{
		photos:  photos,
		assets:  assets,
		metrics: m,
	}
}

// Resolve computes the latest photo per slot and the proof status of an asset.
// The aggregated photos column is read only when the asset has no photo records at all.
func (uc *UseCase) Resolve(ctx context.Context, assetID uuid.UUID) (*entity.ProofSummary, error) {
	asset, err := uc.assets.GetByID(ctx, assetID)
	if err != nil {
		return nil, fmt.Errorf("ProofUseCase - Resolve - uc.assets.GetByID: %w", err)
	}

	records, err := uc.photos.ListRecordsByAsset(ctx, assetID)
	if err != nil {
		return nil, fmt.Errorf("ProofUseCase - Resolve - uc.photos.ListRecordsByAsset: %w", err)
	}

	summary := Summarize(assetID, records, asset.PhotosJSON, asset.ExternalStatus())

	if uc.metrics != nil {
		uc.metrics.ObserveResolution(string(summary.Status), summary.FromFallback)
	}

	return summary, nil
}

func (uc *UseCase) Export(ctx context.Context, assetID uuid.UUID) ([]entity.ExportItem, error) {
	summary, err := uc.Resolve(ctx, assetID)
	if err != nil {
		return nil, fmt.Errorf("ProofUseCase - Export - uc.Resolve: %w", err)
	}

	return ToExportList(summary.Photos), nil
}

// Summarize derives the slot photos from records, or from the aggregated
// photos column when there are no records at all, and classifies the result.
func Summarize(assetID uuid.UUID, records []entity.PhotoRecord, photosJSON []byte, externalStatus string) *entity.ProofSummary {
	summary := &entity.ProofSummary{AssetID: assetID}

	if len(records) == 0 {
		summary.Photos = ParseFallback(DecodeFallback(photosJSON))
		summary.FromFallback = true
	} else {
		summary.Photos = DeriveLatestPhotos(records)
	}

	summary.Status = Classify(summary.Photos, externalStatus)

	return summary
}
