package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/twmb/franz-go/pkg/kgo"

	"github.com/izaldotcom/gerbang-backoffice/pkg/logger"
)

// KafkaClient defines the interface for Kafka operations
type KafkaClient interface {
	Produce(ctx context.Context, topic string, key, value []byte) error
	ProduceJSON(ctx context.Context, topic, key string, payload any) error
	Ping(ctx context.Context) error
	Close() error
	GetClient() *kgo.Client
}

// Client represents a Kafka producer wrapper
type Client struct {
	client *kgo.Client
	logger logger.LoggerInterface
}

// New creates a new Kafka client with the provided options
func New(log logger.LoggerInterface, opts ...kgo.Opt) (KafkaClient, error) {
	kafkaClient, err := kgo.NewClient(opts...)
	if err != nil {
		return nil, err
	}

	if log == nil {
		log = logger.NoOpLogger()
	}

	return &Client{
		client: kafkaClient,
		logger: log,
	}, nil
}

// Produce sends a message to a Kafka topic and waits for the broker ack
func (k *Client) Produce(ctx context.Context, topic string, key, value []byte) error {
	record := &kgo.Record{
		Topic: topic,
		Key:   key,
		Value: value,
	}

	if err := k.client.ProduceSync(ctx, record).FirstErr(); err != nil {
		return fmt.Errorf("produce to %s: %w", topic, err)
	}
	k.logger.DebugContext(ctx, "Record produced", "topic", topic, "key", string(key))
	return nil
}

// ProduceJSON encodes payload as JSON and produces it synchronously
func (k *Client) ProduceJSON(ctx context.Context, topic, key string, payload any) error {
	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s payload: %w", topic, err)
	}
	return k.Produce(ctx, topic, []byte(key), value)
}

// Ping checks that at least one broker answers
func (k *Client) Ping(ctx context.Context) error {
	return k.client.Ping(ctx)
}

// Close flushes buffered records and closes the client
func (k *Client) Close() error {
	if k.client != nil {
		k.client.Close()
	}
	return nil
}

// GetClient returns the underlying Kafka client for advanced operations
func (k *Client) GetClient() *kgo.Client {
	return k.client
}
