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
	"github.com/jackc/pgx/v5/pgconn"
)

const foreignKeyViolation = "23503"

const (
	// Table
	photosTable = "proof_photos"

	// Columns
	idColumn             = "id"
	assetIDColumn        = "asset_id"
	photoURLColumn       = "photo_url"
	categoryColumn       = "category"
	uploadedAtColumn     = "uploaded_at"
	originalKeyColumn    = "original_key"
	watermarkedKeyColumn = "watermarked_key"
	thumbnailKeyColumn   = "thumbnail_key"
	contentTypeColumn    = "content_type"
	sizeColumn           = "size"
	statusColumn         = "status"
	capturedAtColumn     = "captured_at"
	latitudeColumn       = "latitude"
	longitudeColumn      = "longitude"
)

type ProofPhotoRepo struct {
	*postgres.Postgres
}

func NewProofPhotoRepo(pg *postgres.Postgres) *ProofPhotoRepo {
	return &ProofPhotoRepo{pg}
}

func (r *ProofPhotoRepo) Create(ctx context.Context, photo *entity.ProofPhoto) error {
	sql, args, err := r.Builder.
		Insert(photosTable).
		Columns(
			idColumn,
			assetIDColumn,
			photoURLColumn,
			categoryColumn,
			uploadedAtColumn,
			originalKeyColumn,
			contentTypeColumn,
			sizeColumn,
			statusColumn,
			capturedAtColumn,
			latitudeColumn,
			longitudeColumn,
		).
		Values(
			photo.ID,
			photo.AssetID,
			photo.PhotoURL,
			photo.Category,
			photo.UploadedAt,
			photo.OriginalKey,
			photo.ContentType,
			photo.Size,
			photo.Status,
			photo.CapturedAt,
			photo.Latitude,
			photo.Longitude,
		).ToSql()
	if err != nil {
		return fmt.Errorf("ProofPhotoRepo - Create - r.Builder.ToSql: %w", err)
	}

	// Pool / Tx
	executor := r.GetExecutor(ctx)

	_, err = executor.Exec(ctx, sql, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
			// unknown asset
			return fmt.Errorf("ProofPhotoRepo - Create: %w", errs.ErrRecordNotFound)
		}
		return fmt.Errorf("ProofPhotoRepo - Create - executor.Exec: %w", err)
	}

	return nil
}

func (r *ProofPhotoRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.ProofPhoto, error) {
	sql, args, err := r.Builder.
		Select(
			idColumn,
			assetIDColumn,
			photoURLColumn,
			categoryColumn,
			uploadedAtColumn,
			originalKeyColumn,
			watermarkedKeyColumn,
			thumbnailKeyColumn,
			contentTypeColumn,
			sizeColumn,
			statusColumn,
			capturedAtColumn,
			latitudeColumn,
			longitudeColumn,
		).
		From(photosTable).
		Where(squirrel.Eq{idColumn: id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("ProofPhotoRepo - GetByID - r.Builder.ToSql: %w", err)
	}

	executor := r.GetExecutor(ctx)

	var photo entity.ProofPhoto
	err = executor.QueryRow(ctx, sql, args...).Scan(
		&photo.ID,
		&photo.AssetID,
		&photo.PhotoURL,
		&photo.Category,
		&photo.UploadedAt,
		&photo.OriginalKey,
		&photo.WatermarkedKey,
		&photo.ThumbnailKey,
		&photo.ContentType,
		&photo.Size,
		&photo.Status,
		&photo.CapturedAt,
		&photo.Latitude,
		&photo.Longitude,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("ProofPhotoRepo - GetByID: %w", errs.ErrRecordNotFound)
		}
		return nil, fmt.Errorf("ProofPhotoRepo - GetByID - executor.QueryRow: %w", err)
	}

	return &photo, nil
}

// GetWatermarkedKeyByID returns the stamped object key and content type of a processed photo.
func (r *ProofPhotoRepo) GetWatermarkedKeyByID(ctx context.Context, id uuid.UUID) (string, string, error) {
	sql, args, err := r.Builder.
		Select(watermarkedKeyColumn, contentTypeColumn).
		From(photosTable).
		Where(squirrel.And{
			squirrel.Eq{idColumn: id},
			squirrel.Eq{statusColumn: string(entity.Processed)},
			squirrel.NotEq{watermarkedKeyColumn: nil},
		}).
		ToSql()
	if err != nil {
		return "", "", fmt.Errorf("ProofPhotoRepo - GetWatermarkedKeyByID - r.Builder.ToSql: %w", err)
	}

	executor := r.GetExecutor(ctx)

	var key, contentType string
	err = executor.QueryRow(ctx, sql, args...).Scan(&key, &contentType)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", "", fmt.Errorf("ProofPhotoRepo - GetWatermarkedKeyByID: %w", errs.ErrRecordNotFound)
		}
		return "", "", fmt.Errorf("ProofPhotoRepo - GetWatermarkedKeyByID - executor.QueryRow: %w", err)
	}

	return key, contentType, nil
}

// ListRecordsByAsset returns the asset's photo records in a stable order:
// undated first, then by upload time, ties by id.
func (r *ProofPhotoRepo) ListRecordsByAsset(ctx context.Context, assetID uuid.UUID) ([]entity.PhotoRecord, error) {
	sql, args, err := r.Builder.
		Select(
			idColumn,
			photoURLColumn,
			categoryColumn,
			uploadedAtColumn,
		).
		From(photosTable).
		Where(squirrel.Eq{assetIDColumn: assetID}).
		OrderBy(uploadedAtColumn+" ASC NULLS FIRST", idColumn+" ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("ProofPhotoRepo - ListRecordsByAsset - r.Builder.ToSql: %w", err)
	}

	executor := r.GetExecutor(ctx)

	rows, err := executor.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("ProofPhotoRepo - ListRecordsByAsset - executor.Query: %w", err)
	}
	defer rows.Close()

	records := make([]entity.PhotoRecord, 0)
	for rows.Next() {
		var rec entity.PhotoRecord
		err = rows.Scan(&rec.ID, &rec.PhotoURL, &rec.Category, &rec.UploadedAt)
		if err != nil {
			return nil, fmt.Errorf("ProofPhotoRepo - ListRecordsByAsset - rows.Scan: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ProofPhotoRepo - ListRecordsByAsset - rows.Err: %w", err)
	}

	return records, nil
}

func (r *ProofPhotoRepo) UpdateRenditions(ctx context.Context, photo *entity.ProofPhoto) error {
	sql, args, err := r.Builder.
		Update(photosTable).
		Set(photoURLColumn, photo.PhotoURL).
		Set(watermarkedKeyColumn, photo.WatermarkedKey).
		Set(thumbnailKeyColumn, photo.ThumbnailKey).
		Set(statusColumn, photo.Status).
		Where(squirrel.Eq{idColumn: photo.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("ProofPhotoRepo - UpdateRenditions - r.Builder.ToSql: %w", err)
	}

	executor := r.GetExecutor(ctx)

	tag, err := executor.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("ProofPhotoRepo - UpdateRenditions - executor.Exec: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("ProofPhotoRepo - UpdateRenditions: %w", errs.ErrRecordNotFound)
	}

	return nil
}

func (r *ProofPhotoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := r.Builder.
		Delete(photosTable).
		Where(squirrel.Eq{idColumn: id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("ProofPhotoRepo - Delete - r.Builder.ToSql: %w", err)
	}

	executor := r.GetExecutor(ctx)

	tag, err := executor.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("ProofPhotoRepo - Delete - executor.Exec: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("ProofPhotoRepo - Delete: %w", errs.ErrRecordNotFound)
	}

	return nil
}
