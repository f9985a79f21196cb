package kafka

import (
	"context"
	"fmt"

	"github.com/andreyxaxa/ooh-proofs/internal/entity"
	"github.com/andreyxaxa/ooh-proofs/pkg/kafka/producer"
	"github.com/segmentio/kafka-go"
)

const (
	eventIDHeader   = "event_id"
	eventTypeHeader = "event_type"

	WatermarkEventType = "proof_photo.watermark"
)

// JobProducer publishes outbox events as watermark jobs keyed by photo id,
// so every job for one photo lands on the same partition.
type JobProducer struct {
	*producer.Producer
	topic string
}

func NewJobProducer(producer *producer.Producer, topic string) *JobProducer {
	return &JobProducer{
		Producer: producer,
		topic:    topic,
	}
}

func (jp *JobProducer) SendEvents(ctx context.Context, events []*entity.OutboxEvent) error {
	msgs := toMessages(jp.topic, events)
	if len(msgs) == 0 {
		return nil
	}

	err := jp.Writer.WriteMessages(ctx, msgs...)
	if err != nil {
		return fmt.Errorf("JobProducer - SendEvents - jp.Writer.WriteMessages: %w", err)
	}

	return nil
}

func (jp *JobProducer) Close() error {
	err := jp.Producer.Close()
	if err != nil {
		return fmt.Errorf("JobProducer - Close: %w", err)
	}

	return nil
}

func toMessages(topic string, events []*entity.OutboxEvent) []kafka.Message {
	msgs := make([]kafka.Message, 0, len(events))
	for _, event := range events {
		msgs = append(msgs, kafka.Message{
			Topic: topic,
			Key:   []byte(event.AggregateID.String()),
			Value: event.Payload,
			Headers: []kafka.Header{
				{Key: eventIDHeader, Value: []byte(event.ID.String())},
				{Key: eventTypeHeader, Value: []byte(WatermarkEventType)},
			},
		})
	}
	return msgs
}

// EventID returns the outbox event id carried in the message headers.
func EventID(msg kafka.Message) string {
	for _, h := range msg.Headers {
		if h.Key == eventIDHeader {
			return string(h.Value)
		}
	}
	return ""
}
