package consumer

import (
	"context"
	"fmt"
	"time"

	"github.com/andreyxaxa/ooh-proofs/pkg/logger"
	"github.com/segmentio/kafka-go"
)

const (
	_defaultConnAttempts = 10
	_defaultConnTimeout  = time.Second
	_defaultMinBytes     = 10e3
	_defaultMaxBytes     = 10e6
	_defaultMaxWait      = time.Second
)

type Consumer struct {
	connAttempts int
	connTimeout  time.Duration
	minBytes     int
	maxBytes     int
	maxWait      time.Duration

	brokers []string
	groupID string
	topic   string

	logger logger.Interface

	Reader *kafka.Reader
}

func New(ctx context.Context, brokers []string, groupID, topic string, l logger.Interface, opts ...Option) (*Consumer, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("Kafka Consumer - New: no brokers")
	}

	c := &Consumer{
		connAttempts: _defaultConnAttempts,
		connTimeout:  _defaultConnTimeout,
		minBytes:     _defaultMinBytes,
		maxBytes:     _defaultMaxBytes,
		maxWait:      _defaultMaxWait,
		brokers:      brokers,
		groupID:      groupID,
		topic:        topic,
		logger:       l,
	}

	for _, opt := range opts {
		opt(c)
	}

	var err error

	for c.connAttempts > 0 {
		err = c.ping(ctx)
		if err == nil {
			break
		}

		c.logger.Info("Kafka consumer is trying to connect, attempts left: %d", c.connAttempts)

		time.Sleep(c.connTimeout)

		c.connAttempts--
	}

	if err != nil {
		return nil, fmt.Errorf("Kafka Consumer - New - connAttempts == 0: %w", err)
	}

	c.Reader = kafka.NewReader(kafka.ReaderConfig{
		Brokers:  c.brokers,
		GroupID:  c.groupID,
		Topic:    c.topic,
		MinBytes: c.minBytes,
		MaxBytes: c.maxBytes,
		MaxWait:  c.maxWait,
	})

	return c, nil
}

func (c *Consumer) ping(ctx context.Context) error {
	conn, err := kafka.DialContext(ctx, "tcp", c.brokers[0])
	if err != nil {
		return fmt.Errorf("Kafka Consumer - kafka.DialContext: %w", err)
	}
	defer conn.Close()

	_, err = conn.Brokers()
	if err != nil {
		return fmt.Errorf("Kafka Consumer - conn.Brokers: %w", err)
	}

	return nil
}

func (c *Consumer) Close() error {
	if c.Reader != nil {
		return c.Reader.Close()
	}
	return nil
}
