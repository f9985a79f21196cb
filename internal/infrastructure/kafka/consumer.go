package kafka

import (
	"context"
	"fmt"

	"github.com/andreyxaxa/ooh-proofs/pkg/kafka/consumer"
	"github.com/segmentio/kafka-go"
)

// JobConsumer fetches watermark jobs with manual commits.
type JobConsumer struct {
	*consumer.Consumer
}

func NewJobConsumer(consumer *consumer.Consumer) *JobConsumer {
	return &JobConsumer{consumer}
}

func (jc *JobConsumer) ReadEvent(ctx context.Context) (kafka.Message, error) {
	msg, err := jc.Reader.FetchMessage(ctx)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("JobConsumer - ReadEvent - jc.Reader.FetchMessage: %w", err)
	}

	return msg, nil
}

func (jc *JobConsumer) CommitEvent(ctx context.Context, event kafka.Message) error {
	err := jc.Reader.CommitMessages(ctx, event)
	if err != nil {
		return fmt.Errorf("JobConsumer - CommitEvent - jc.Reader.CommitMessages: %w", err)
	}

	return nil
}

func (jc *JobConsumer) Close() error {
	err := jc.Consumer.Close()
	if err != nil {
		return fmt.Errorf("JobConsumer - Close: %w", err)
	}

	return nil
}
