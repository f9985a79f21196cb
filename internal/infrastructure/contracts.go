package infrastructure

import (
	"context"

	"github.com/andreyxaxa/ooh-proofs/internal/entity"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=contracts.go -destination=mocks/mocks.go -package=mocks

type (
	EventsSender interface {
		SendEvents(ctx context.Context, events []*entity.OutboxEvent) error
		Close() error
	}

	EventsReader interface {
		ReadEvent(ctx context.Context) (kafka.Message, error)
		CommitEvent(ctx context.Context, event kafka.Message) error
		Close() error
	}

	ImageProcessor interface {
		Resize(ctx context.Context, contentType string, data []byte, maxWidth int) ([]byte, error)
		Thumbnail(ctx context.Context, contentType string, data []byte) ([]byte, error)
		Watermark(ctx context.Context, contentType string, data []byte, lines []string) ([]byte, error)
	}

	MetadataReader interface {
		Read(data []byte) entity.CaptureMeta
	}
)
