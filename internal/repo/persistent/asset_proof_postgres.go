package persistent

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/andreyxaxa/ooh-proofs/internal/entity"
	"github.com/andreyxaxa/ooh-proofs/pkg/postgres"
	"github.com/andreyxaxa/ooh-proofs/pkg/types/errs"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	assetsTable = "campaign_assets"

	campaignIDColumn  = "campaign_id"
	assetCodeColumn   = "asset_code"
	qaStatusColumn    = "qa_status"
	proofPhotosColumn = "proof_photos"
)

type AssetProofRepo struct {
	*postgres.Postgres
}

func NewAssetProofRepo(pg *postgres.Postgres) *AssetProofRepo {
	return &AssetProofRepo{pg}
}

// GetByID reads the asset's QA status and the raw aggregated photos column.
func (r *AssetProofRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.AssetProof, error) {
	sql, args, err := r.Builder.
		Select(
			idColumn,
			campaignIDColumn,
			assetCodeColumn,
			qaStatusColumn,
			proofPhotosColumn,
		).
		From(assetsTable).
		Where(squirrel.Eq{idColumn: id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("AssetProofRepo - GetByID - r.Builder.ToSql: %w", err)
	}

	executor := r.GetExecutor(ctx)

	var asset entity.AssetProof
	err = executor.QueryRow(ctx, sql, args...).Scan(
		&asset.ID,
		&asset.CampaignID,
		&asset.AssetCode,
		&asset.QAStatus,
		&asset.PhotosJSON,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("AssetProofRepo - GetByID: %w", errs.ErrRecordNotFound)
		}
		return nil, fmt.Errorf("AssetProofRepo - GetByID - executor.QueryRow: %w", err)
	}

	return &asset, nil
}
