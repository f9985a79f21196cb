package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/andreyxaxa/ooh-proofs/config"
	kafkactrl "github.com/andreyxaxa/ooh-proofs/internal/controller/kafka"
	"github.com/andreyxaxa/ooh-proofs/internal/controller/restapi"
	"github.com/andreyxaxa/ooh-proofs/internal/controller/worker/outbox"
	"github.com/andreyxaxa/ooh-proofs/internal/infrastructure/exifmeta"
	infrakafka "github.com/andreyxaxa/ooh-proofs/internal/infrastructure/kafka"
	"github.com/andreyxaxa/ooh-proofs/internal/infrastructure/processor"
	"github.com/andreyxaxa/ooh-proofs/internal/metrics"
	"github.com/andreyxaxa/ooh-proofs/internal/repo/persistent"
	"github.com/andreyxaxa/ooh-proofs/internal/usecase/photo"
	"github.com/andreyxaxa/ooh-proofs/internal/usecase/pricing"
	"github.com/andreyxaxa/ooh-proofs/internal/usecase/proof"
	"github.com/andreyxaxa/ooh-proofs/internal/usecase/watermark"
	"github.com/andreyxaxa/ooh-proofs/pkg/httpserver"
	"github.com/andreyxaxa/ooh-proofs/pkg/kafka/consumer"
	"github.com/andreyxaxa/ooh-proofs/pkg/kafka/producer"
	"github.com/andreyxaxa/ooh-proofs/pkg/logger"
	"github.com/andreyxaxa/ooh-proofs/pkg/postgres"
	"github.com/andreyxaxa/ooh-proofs/pkg/s3client"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func Run(cfg *config.Config) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Logger
	l := logger.New(cfg.Log.Level)
	defer func() { _ = l.Sync() }()

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(registry)

	// Repository

	// s3
	s3Ctx, s3Cancel := context.WithTimeout(ctx, cfg.S3.CfgLoadTimeout)
	defer s3Cancel()
	s3c, err := s3client.New(s3Ctx, cfg.S3.Endpoint, cfg.S3.AccessKey, cfg.S3.SecretKey, l,
		s3client.Region(cfg.S3.Region),
		s3client.UsePathStyle(cfg.S3.UsePathStyle),
		s3client.CheckBucket(cfg.S3.Bucket),
	)
	if err != nil {
		l.Fatal(fmt.Errorf("app - Run - s3client.New: %w", err))
	}

	// postgres
	pg, err := postgres.New(cfg.PG.URL, l, postgres.MaxPoolSize(cfg.PG.PoolMax))
	if err != nil {
		l.Fatal(fmt.Errorf("app - Run - postgres.New: %w", err))
	}
	defer pg.Close()

	photoRepo := persistent.NewProofPhotoRepo(pg)

	// Use-Case
	proofUseCase := proof.New(photoRepo, persistent.NewAssetProofRepo(pg), m)

	photoUseCase := photo.New(
		persistent.NewPhotoStorage(s3c, cfg.S3.Bucket),
		photoRepo,
		persistent.NewOutboxRepo(pg),
		pg,
		exifmeta.New(),
		cfg.S3.PublicBaseURL,
		m,
		l,
	)

	watermarkUseCase := watermark.New(processor.New(), cfg.Watermark.MaxWidth)

	pricingUseCase := pricing.New()

	// Kafka Producer
	kafkaProducer, err := producer.New(ctx, cfg.Kafka.Brokers, l)
	if err != nil {
		l.Fatal(fmt.Errorf("app - Run - producer.New: %w", err))
	}

	// Outbox Relay Worker
	outboxRelay := outbox.New(
		photoUseCase,
		infrakafka.NewJobProducer(kafkaProducer, cfg.Kafka.Topic),
		l,
		outbox.Settings{
			PollInterval:        cfg.OutboxRelay.PollInterval,
			MarkFailedInterval:  cfg.OutboxRelay.MarkFailedInterval,
			CleanupInterval:     cfg.OutboxRelay.CleanupInterval,
			Retention:           cfg.OutboxRelay.Retention,
			ProcessBatchTimeout: cfg.OutboxRelay.ProcessBatchTimeout,
			BatchSize:           cfg.OutboxRelay.BatchSize,
			MaxRetries:          cfg.OutboxRelay.MaxRetries,
		},
	)

	// Kafka Consumer
	kafkaConsumer, err := consumer.New(ctx, cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.Topic, l)
	if err != nil {
		l.Fatal(fmt.Errorf("app - Run - consumer.New: %w", err))
	}

	workers := cfg.KafkaController.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	// Kafka as Controller
	watermarkController := kafkactrl.New(
		watermarkUseCase,
		photoUseCase,
		infrakafka.NewJobConsumer(kafkaConsumer),
		m,
		l,
		cfg.KafkaController.CommitTimeout,
		cfg.KafkaController.ProcessTimeout,
		cfg.KafkaController.CPUTimeout,
		workers,
	)

	// HTTP Server
	httpServer := httpserver.New(l, httpserver.Port(cfg.HTTP.Port), httpserver.Prefork(cfg.HTTP.UsePreforkMode))
	restapi.NewRouter(httpServer.App, cfg, registry, proofUseCase, photoUseCase, pricingUseCase, l)

	// Start Components
	err = outboxRelay.Start(ctx)
	if err != nil {
		l.Fatal(fmt.Errorf("app - Run - outboxRelay.Start: %w", err))
	}
	err = watermarkController.Start(ctx)
	if err != nil {
		l.Fatal(fmt.Errorf("app - Run - watermarkController.Start: %w", err))
	}
	httpServer.Start()

	// Waiting Signal
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		l.Info("app - Run - signal: %s", s.String())
	case err = <-httpServer.Notify():
		l.Error(fmt.Errorf("app - Run - httpServer.Notify: %w", err))
	}

	// Shutdown
	err = httpServer.Shutdown()
	if err != nil {
		l.Error(fmt.Errorf("app - Run - httpServer.Shutdown: %w", err))
	}

	orlShutdownCtx, orlShutdownCancel := context.WithTimeout(ctx, cfg.OutboxRelay.ShutdownTimeout)
	defer orlShutdownCancel()
	err = outboxRelay.Shutdown(orlShutdownCtx)
	if err != nil {
		l.Error(fmt.Errorf("app - Run - outboxRelay.Shutdown: %w", err))
	}

	wcShutdownCtx, wcShutdownCancel := context.WithTimeout(ctx, cfg.KafkaController.ShutdownTimeout)
	defer wcShutdownCancel()
	err = watermarkController.Shutdown(wcShutdownCtx)
	if err != nil {
		l.Error(fmt.Errorf("app - Run - watermarkController.Shutdown: %w", err))
	}
}
