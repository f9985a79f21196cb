package photo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/andreyxaxa/ooh-proofs/internal/dto"
	"github.com/andreyxaxa/ooh-proofs/internal/entity"
	"github.com/google/uuid"
)

func (uc *UseCase) createOutboxEvent(photo *entity.ProofPhoto, assetCode string) (*entity.OutboxEvent, error) {
	job := dto.WatermarkJob{
		ID:          photo.ID,
		AssetID:     photo.AssetID,
		AssetCode:   assetCode,
		OriginalKey: photo.OriginalKey,
		ContentType: photo.ContentType,
		CapturedAt:  photo.CapturedAt,
		Latitude:    photo.Latitude,
		Longitude:   photo.Longitude,
	}
	if photo.Category != nil {
		job.Category = *photo.Category
	}
	if photo.UploadedAt != nil {
		job.UploadedAt = *photo.UploadedAt
	}

	b, err := json.Marshal(job)
	if err != nil {
		return nil, fmt.Errorf("PhotoUseCase - createOutboxEvent - json.Marshal: %w", err)
	}

	return &entity.OutboxEvent{
		ID:          uuid.New(),
		AggregateID: photo.ID,
		Payload:     b,
		Status:      entity.Pending,
		CreatedAt:   uc.now().UTC(),
		RetryCount:  0,
	}, nil
}

func eventIDs(events []*entity.OutboxEvent) uuid.UUIDs {
	IDs := make(uuid.UUIDs, 0, len(events))
	for _, event := range events {
		IDs = append(IDs, event.ID)
	}
	return IDs
}

func (uc *UseCase) GetPendingEvents(ctx context.Context, maxRetries, limit int) ([]*entity.OutboxEvent, error) {
	events, err := uc.outboxRepo.GetPendingEvents(ctx, maxRetries, limit)
	if err != nil {
		return nil, fmt.Errorf("PhotoUseCase - GetPendingEvents - uc.outboxRepo.GetPendingEvents: %w", err)
	}

	return events, nil
}

func (uc *UseCase) MarkAsProcessingBatch(ctx context.Context, events []*entity.OutboxEvent) error {
	err := uc.outboxRepo.MarkAsProcessingBatch(ctx, eventIDs(events))
	if err != nil {
		return fmt.Errorf("PhotoUseCase - MarkAsProcessingBatch - uc.outboxRepo.MarkAsProcessingBatch: %w", err)
	}

	return nil
}

func (uc *UseCase) MarkAsProcessedBatch(ctx context.Context, events []*entity.OutboxEvent) error {
	err := uc.outboxRepo.MarkAsProcessedBatch(ctx, eventIDs(events))
	if err != nil {
		return fmt.Errorf("PhotoUseCase - MarkAsProcessedBatch - uc.outboxRepo.MarkAsProcessedBatch: %w", err)
	}

	return nil
}

func (uc *UseCase) IncrementRetryCountBatch(ctx context.Context, events []*entity.OutboxEvent) error {
	err := uc.outboxRepo.IncrementRetryCountBatch(ctx, eventIDs(events))
	if err != nil {
		return fmt.Errorf("PhotoUseCase - IncrementRetryCountBatch - uc.outboxRepo.IncrementRetryCountBatch: %w", err)
	}

	return nil
}

func (uc *UseCase) MarkMaxRetriesAsFailed(ctx context.Context, maxRetries int) error {
	err := uc.outboxRepo.MarkMaxRetriesAsFailed(ctx, maxRetries)
	if err != nil {
		return fmt.Errorf("PhotoUseCase - MarkMaxRetriesAsFailed - uc.outboxRepo.MarkMaxRetriesAsFailed: %w", err)
	}

	return nil
}

func (uc *UseCase) CleanupOutbox(ctx context.Context, retention time.Duration) error {
	count, err := uc.outboxRepo.DeleteOldProcessedAndFailed(ctx, uc.now().Add(-retention))
	if err != nil {
		return fmt.Errorf("PhotoUseCase - CleanupOutbox - uc.outboxRepo.DeleteOldProcessedAndFailed: %w", err)
	}

	if count > 0 {
		uc.logger.Info("deleted old outbox events, count = %d", count)
	}

	return nil
}
