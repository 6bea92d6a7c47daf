package checkout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/IBM/sarama"

	"boxoffice/internal/shared/apperr"
	"boxoffice/pkg/logger"
)

// OrderPublisher hands accepted orders to the order-submission service.
type OrderPublisher interface {
	PublishOrder(ctx context.Context, order *OrderSubmitted) error
	Close() error
	HealthCheck(ctx context.Context) error
}

// KafkaProducerConfig contains configuration for the Kafka order producer
type KafkaProducerConfig struct {
	Brokers          []string
	OrderTopic       string
	RetryMax         int
	TimeoutMs        int
	RequiredAcks     sarama.RequiredAcks
	CompressionType  sarama.CompressionCodec
	IdempotentWrites bool
	MaxMessageBytes  int
}

// DefaultKafkaProducerConfig returns a default producer configuration
func DefaultKafkaProducerConfig() *KafkaProducerConfig {
	return &KafkaProducerConfig{
		Brokers:          []string{"localhost:9092"},
		OrderTopic:       "orders.submitted",
		RetryMax:         3,
		TimeoutMs:        10000,             // 10 seconds
		RequiredAcks:     sarama.WaitForAll, // Wait for all in-sync replicas
		CompressionType:  sarama.CompressionSnappy,
		IdempotentWrites: true,
		MaxMessageBytes:  1000000, // 1MB
	}
}

// newSaramaConfig maps the producer config onto sarama's
func newSaramaConfig(config *KafkaProducerConfig) *sarama.Config {
	saramaConfig := sarama.NewConfig()

	saramaConfig.ClientID = "boxoffice-checkout"
	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.Return.Errors = true
	saramaConfig.Producer.RequiredAcks = config.RequiredAcks
	saramaConfig.Producer.Compression = config.CompressionType
	saramaConfig.Producer.Retry.Max = config.RetryMax
	saramaConfig.Producer.Timeout = time.Duration(config.TimeoutMs) * time.Millisecond
	saramaConfig.Producer.Idempotent = config.IdempotentWrites
	saramaConfig.Producer.MaxMessageBytes = config.MaxMessageBytes

	// Idempotent producer needs a single in-flight request
	if config.IdempotentWrites {
		saramaConfig.Net.MaxOpenRequests = 1
	}

	// Hash partitioner keeps an order's messages together
	saramaConfig.Producer.Partitioner = sarama.NewHashPartitioner

	return saramaConfig
}

// KafkaOrderPublisher publishes orders to Kafka
type KafkaOrderPublisher struct {
	producer sarama.SyncProducer
	config   *KafkaProducerConfig
	log      *logger.Logger
}

// NewKafkaOrderPublisher connects a sync producer to the configured brokers
func NewKafkaOrderPublisher(config *KafkaProducerConfig) (OrderPublisher, error) {
	producer, err := sarama.NewSyncProducer(config.Brokers, newSaramaConfig(config))
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	publisher := NewKafkaOrderPublisherWithProducer(producer, config)
	publisher.log.Info("Kafka order producer created", "brokers", config.Brokers, "topic", config.OrderTopic)
	return publisher, nil
}

// NewKafkaOrderPublisherWithProducer wraps an existing producer
func NewKafkaOrderPublisherWithProducer(producer sarama.SyncProducer, config *KafkaProducerConfig) *KafkaOrderPublisher {
	return &KafkaOrderPublisher{
		producer: producer,
		config:   config,
		log:      logger.GetDefault(),
	}
}

// PublishOrder sends one message keyed by the order reference
func (kp *KafkaOrderPublisher) PublishOrder(ctx context.Context, order *OrderSubmitted) error {
	messageBytes, err := order.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal order: %w", err)
	}

	message := &sarama.ProducerMessage{
		Topic:     kp.config.OrderTopic,
		Key:       sarama.StringEncoder(order.GetPartitionKey()),
		Value:     sarama.ByteEncoder(messageBytes),
		Headers:   kp.createHeaders(order),
		Timestamp: order.SubmittedAt,
	}

	partition, offset, err := kp.producer.SendMessage(message)
	if err != nil {
		return fmt.Errorf("%w: failed to send order to Kafka: %v", apperr.ErrUpstream, err)
	}

	kp.log.LogOrderPublished(ctx, order.Reference, kp.config.OrderTopic, partition, offset)
	return nil
}

// createHeaders creates Kafka headers for an order
func (kp *KafkaOrderPublisher) createHeaders(order *OrderSubmitted) []sarama.RecordHeader {
	headers := []sarama.RecordHeader{
		{Key: []byte("order_reference"), Value: []byte(order.Reference)},
		{Key: []byte("event_id"), Value: []byte(order.EventID)},
		{Key: []byte("message_type"), Value: []byte("order.submitted")},
		{Key: []byte("version"), Value: []byte("1.0")},
		{Key: []byte("producer"), Value: []byte("boxoffice-checkout")},
		{Key: []byte("submitted_at"), Value: []byte(order.SubmittedAt.Format(time.RFC3339))},
	}

	if order.SectionID != "" {
		headers = append(headers, sarama.RecordHeader{
			Key:   []byte("section_id"),
			Value: []byte(order.SectionID),
		})
	}

	return headers
}

// Close closes the Kafka producer
func (kp *KafkaOrderPublisher) Close() error {
	if kp.producer != nil {
		if err := kp.producer.Close(); err != nil {
			return fmt.Errorf("failed to close Kafka producer: %w", err)
		}
		kp.log.Info("Kafka order producer closed")
	}
	return nil
}

// HealthCheck validates the producer wiring without sending a message
func (kp *KafkaOrderPublisher) HealthCheck(ctx context.Context) error {
	if kp.producer == nil {
		return errors.New("health check failed - producer is nil")
	}
	if kp.config.OrderTopic == "" {
		return errors.New("health check failed - order topic not configured")
	}
	return nil
}

// LogOrderPublisher only logs orders. Used when Kafka is disabled.
type LogOrderPublisher struct {
	log *logger.Logger
}

func NewLogOrderPublisher(log *logger.Logger) *LogOrderPublisher {
	return &LogOrderPublisher{log: log}
}

func (lp *LogOrderPublisher) PublishOrder(ctx context.Context, order *OrderSubmitted) error {
	lp.log.InfoWithContext(ctx, "Order submitted (Kafka disabled)", map[string]interface{}{
		"reference":  order.Reference,
		"event_id":   order.EventID,
		"section_id": order.SectionID,
		"seat_ids":   order.SeatIDs,
		"quantity":   order.Breakdown.Quantity,
		"total":      order.Breakdown.Total.String(),
	})
	return nil
}

func (lp *LogOrderPublisher) Close() error {
	return nil
}

func (lp *LogOrderPublisher) HealthCheck(ctx context.Context) error {
	return nil
}
