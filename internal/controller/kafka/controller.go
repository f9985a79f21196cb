package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/andreyxaxa/ooh-proofs/internal/dto"
	"github.com/andreyxaxa/ooh-proofs/internal/infrastructure"
	kafkapc "github.com/andreyxaxa/ooh-proofs/internal/infrastructure/kafka"
	"github.com/andreyxaxa/ooh-proofs/internal/metrics"
	"github.com/andreyxaxa/ooh-proofs/internal/usecase"
	"github.com/andreyxaxa/ooh-proofs/pkg/logger"
	"github.com/segmentio/kafka-go"
)

// WatermarkController consumes watermark jobs and stores the rendered photos.
type WatermarkController struct {
	wm      usecase.WatermarkUseCase
	photos  usecase.PhotoUseCase
	er      infrastructure.EventsReader
	metrics *metrics.Metrics
	logger  logger.Interface

	commitTimeout  time.Duration
	processTimeout time.Duration
	cpuTimeout     time.Duration

	workers int
	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup

	started atomic.Bool
}

func New(
	wm usecase.WatermarkUseCase,
	photos usecase.PhotoUseCase,
	er infrastructure.EventsReader,
	m *metrics.Metrics,
	l logger.Interface,
	commitTimeout time.Duration,
	processTimeout time.Duration,
	cpuTimeout time.Duration,
	workers int,
) *WatermarkController {
	if workers < 1 {
		workers = 1
	}

	return &WatermarkController{
		wm:             wm,
		photos:         photos,
		er:             er,
		metrics:        m,
		logger:         l,
		commitTimeout:  commitTimeout,
		processTimeout: processTimeout,
		cpuTimeout:     cpuTimeout,
		workers:        workers,
	}
}

func (c *WatermarkController) Start(ctx context.Context) error {
	if !c.started.CompareAndSwap(false, true) {
		return fmt.Errorf("WatermarkController - Start - controller already started")
	}

	c.ctx, c.cancel = context.WithCancel(ctx)

	tasks := make(chan kafka.Message, c.workers*2)

	for i := 0; i < c.workers; i++ {
		c.wg.Add(1)
		go c.worker(tasks)
	}

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		defer close(tasks)

		for {
			select {
			case <-c.ctx.Done():
				return
			default:
				event, err := c.er.ReadEvent(c.ctx)
				if err != nil {
					if !errors.Is(err, context.Canceled) {
						c.logger.Error(err, "WatermarkController - Start - c.er.ReadEvent")
					}
					continue
				}

				select {
				case tasks <- event:
				case <-c.ctx.Done():
					return
				}
			}
		}
	}()

	return nil
}

func (c *WatermarkController) processJob(ctx context.Context, event kafka.Message) error {
	var job dto.WatermarkJob
	err := json.Unmarshal(event.Value, &job)
	if err != nil {
		return fmt.Errorf("WatermarkController - processJob - json.Unmarshal: %w", err)
	}

	// 1. original from S3
	data, err := c.photos.DownloadPhotoBytes(ctx, job.OriginalKey)
	if err != nil {
		return fmt.Errorf("WatermarkController - processJob - c.photos.DownloadPhotoBytes: %w", err)
	}

	// 2. stamp and thumbnail, CPU bound
	cpuCtx, cpuCancel := context.WithTimeout(ctx, c.cpuTimeout)
	defer cpuCancel()
	rendition, err := c.wm.Render(cpuCtx, dto.WatermarkTask{Data: data, WatermarkJob: job})
	if err != nil {
		return fmt.Errorf("WatermarkController - processJob - c.wm.Render: %w", err)
	}

	// 3. renditions to S3, row to processed
	err = c.photos.SaveRenditions(ctx, job.ID, rendition)
	if err != nil {
		return fmt.Errorf("WatermarkController - processJob - c.photos.SaveRenditions: %w", err)
	}

	return nil
}

// handle processes one message and commits it on success. Failed messages stay uncommitted.
func (c *WatermarkController) handle(event kafka.Message) {
	defer func() {
		if r := recover(); r != nil {
			c.fail()
			c.logger.Error(fmt.Errorf("panic %v", r), "WatermarkController - handle - panic")
		}
	}()

	processCtx, processCancel := context.WithTimeout(c.ctx, c.processTimeout)
	err := c.processJob(processCtx, event)
	processCancel()
	if err != nil {
		c.fail()
		c.logger.Error(err, "WatermarkController - handle - c.processJob", "event_id", kafkapc.EventID(event))

		return
	}

	commitCtx, commitCancel := context.WithTimeout(c.ctx, c.commitTimeout)
	err = c.er.CommitEvent(commitCtx, event)
	commitCancel()
	if err != nil {
		c.logger.Error(err, "WatermarkController - handle - c.er.CommitEvent")
	}
}

func (c *WatermarkController) fail() {
	if c.metrics != nil {
		c.metrics.WatermarkFailures.Inc()
	}
}

func (c *WatermarkController) worker(tasks <-chan kafka.Message) {
	defer c.wg.Done()

	for event := range tasks {
		c.handle(event)
	}
}

func (c *WatermarkController) Shutdown(ctx context.Context) error {
	if !c.started.Load() {
		return nil
	}

	if c.cancel != nil {
		c.cancel()
	}

	done := make(chan struct{})

	go func() {
		c.wg.Wait()
		if err := c.er.Close(); err != nil {
			c.logger.Error(err, "WatermarkController - Shutdown - c.er.Close")
		}
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("WatermarkController - Shutdown: %w", ctx.Err())
	}
}
