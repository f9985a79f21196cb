package outbox

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/andreyxaxa/ooh-proofs/internal/infrastructure"
	"github.com/andreyxaxa/ooh-proofs/internal/usecase"
	"github.com/andreyxaxa/ooh-proofs/pkg/logger"
)

// Settings tunes the relay tickers and batches.
type Settings struct {
	PollInterval        time.Duration
	MarkFailedInterval  time.Duration
	CleanupInterval     time.Duration
	Retention           time.Duration
	ProcessBatchTimeout time.Duration
	BatchSize           int
	MaxRetries          int
}

// Relay moves watermark jobs from the outbox table to Kafka.
type Relay struct {
	photos usecase.PhotoUseCase
	es     infrastructure.EventsSender
	logger logger.Interface
	s      Settings

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	started atomic.Bool
}

func New(photos usecase.PhotoUseCase, es infrastructure.EventsSender, l logger.Interface, s Settings) *Relay {
	return &Relay{
		photos: photos,
		es:     es,
		logger: l,
		s:      s,
	}
}

func (r *Relay) Start(ctx context.Context) error {
	if !r.started.CompareAndSwap(false, true) {
		return fmt.Errorf("Relay - Start - relay already started")
	}

	r.ctx, r.cancel = context.WithCancel(ctx)

	r.every(r.s.PollInterval, func() {
		batchCtx, batchCancel := context.WithTimeout(r.ctx, r.s.ProcessBatchTimeout)
		r.publishBatch(batchCtx)
		batchCancel()
	})

	r.every(r.s.MarkFailedInterval, func() {
		err := r.photos.MarkMaxRetriesAsFailed(r.ctx, r.s.MaxRetries)
		if err != nil {
			r.logger.Error(err, "Relay - Start - r.photos.MarkMaxRetriesAsFailed")
		}
	})

	r.every(r.s.CleanupInterval, func() {
		err := r.photos.CleanupOutbox(r.ctx, r.s.Retention)
		if err != nil {
			r.logger.Error(err, "Relay - Start - r.photos.CleanupOutbox")
		}
	})

	return nil
}

// publishBatch sends one batch of pending jobs. pending -> processing -> processed,
// or back to pending with retry_count+1 when Kafka rejects the batch.
func (r *Relay) publishBatch(ctx context.Context) int {
	events, err := r.photos.GetPendingEvents(ctx, r.s.MaxRetries, r.s.BatchSize)
	if err != nil {
		r.logger.Error(err, "Relay - publishBatch - r.photos.GetPendingEvents")

		return 0
	}
	if len(events) == 0 {
		return 0
	}

	err = r.photos.MarkAsProcessingBatch(ctx, events)
	if err != nil {
		r.logger.Error(err, "Relay - publishBatch - r.photos.MarkAsProcessingBatch")

		return 0
	}

	err = r.es.SendEvents(ctx, events)
	if err != nil {
		r.logger.Error(err, "Relay - publishBatch - r.es.SendEvents", "batch", len(events))

		incErr := r.photos.IncrementRetryCountBatch(ctx, events)
		if incErr != nil {
			r.logger.Error(incErr, "Relay - publishBatch - r.photos.IncrementRetryCountBatch")
		}
		return 0
	}

	err = r.photos.MarkAsProcessedBatch(ctx, events)
	if err != nil {
		// already on the topic; the consumer is idempotent per photo
		r.logger.Error(err, "Relay - publishBatch - r.photos.MarkAsProcessedBatch")
	}

	r.logger.Debug("published %d watermark jobs", len(events))

	return len(events)
}

func (r *Relay) every(interval time.Duration, task func()) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-r.ctx.Done():
				return
			case <-ticker.C:
				task()
			}
		}
	}()
}

func (r *Relay) Shutdown(ctx context.Context) error {
	if !r.started.Load() {
		return nil
	}

	if r.cancel != nil {
		r.cancel()
	}

	done := make(chan struct{})

	go func() {
		r.wg.Wait()
		if err := r.es.Close(); err != nil {
			r.logger.Error(err, "Relay - Shutdown - r.es.Close")
		}
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("Relay - Shutdown: %w", ctx.Err())
	}
}
