package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/IBM/sarama"

	"boxoffice/pkg/logger"
)

// OrderHandler processes one submitted order read back from the order topic.
type OrderHandler func(ctx context.Context, order *OrderSubmitted) error

// ConsumerConfig configures the order topic consumer group
type ConsumerConfig struct {
	Brokers              []string
	GroupID              string
	OrderTopic           string
	SessionTimeoutMs     int
	HeartbeatMs          int
	OffsetOldest         bool
	MaxRetries           int
	RetryBackoffDuration time.Duration
}

func DefaultConsumerConfig() *ConsumerConfig {
	return &ConsumerConfig{
		Brokers:              []string{"localhost:9092"},
		GroupID:              "boxoffice-order-log",
		OrderTopic:           "orders.submitted",
		SessionTimeoutMs:     30000,
		HeartbeatMs:          3000,
		OffsetOldest:         true,
		MaxRetries:           3,
		RetryBackoffDuration: time.Second,
	}
}

// OrderConsumer reads the order topic through a consumer group
type OrderConsumer struct {
	group   sarama.ConsumerGroup
	config  *ConsumerConfig
	handler *orderClaimHandler
	log     *logger.Logger
}

func NewOrderConsumer(config *ConsumerConfig, handle OrderHandler) (*OrderConsumer, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.ClientID = "boxoffice-order-log"
	saramaConfig.Consumer.Group.Session.Timeout = time.Duration(config.SessionTimeoutMs) * time.Millisecond
	saramaConfig.Consumer.Group.Heartbeat.Interval = time.Duration(config.HeartbeatMs) * time.Millisecond
	saramaConfig.Consumer.Return.Errors = true
	saramaConfig.Consumer.Offsets.AutoCommit.Enable = true
	saramaConfig.Consumer.Offsets.AutoCommit.Interval = time.Second
	if config.OffsetOldest {
		saramaConfig.Consumer.Offsets.Initial = sarama.OffsetOldest
	} else {
		saramaConfig.Consumer.Offsets.Initial = sarama.OffsetNewest
	}

	group, err := sarama.NewConsumerGroup(config.Brokers, config.GroupID, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer group: %w", err)
	}

	return &OrderConsumer{
		group:   group,
		config:  config,
		handler: newOrderClaimHandler(config, handle),
		log:     logger.GetDefault(),
	}, nil
}

// Run consumes until ctx is cancelled
func (oc *OrderConsumer) Run(ctx context.Context) error {
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for err := range oc.group.Errors() {
			oc.log.Error("Order consumer group error", slog.Any("error", err))
		}
	}()

	oc.log.Info("Order consumer started", "topic", oc.config.OrderTopic, "group", oc.config.GroupID)
	defer wg.Wait()

	for {
		if err := oc.group.Consume(ctx, []string{oc.config.OrderTopic}, oc.handler); err != nil {
			if errors.Is(err, sarama.ErrClosedConsumerGroup) {
				return nil
			}
			oc.log.Error("Error consuming orders", slog.Any("error", err))
			select {
			case <-time.After(time.Second):
			case <-ctx.Done():
			}
		}
		if ctx.Err() != nil {
			return oc.Close()
		}
	}
}

func (oc *OrderConsumer) Close() error {
	if err := oc.group.Close(); err != nil && !errors.Is(err, sarama.ErrClosedConsumerGroup) {
		return fmt.Errorf("failed to close consumer group: %w", err)
	}
	return nil
}

// orderClaimHandler implements sarama.ConsumerGroupHandler
type orderClaimHandler struct {
	handle     OrderHandler
	maxRetries int
	backoff    time.Duration
	log        *logger.Logger
}

func newOrderClaimHandler(config *ConsumerConfig, handle OrderHandler) *orderClaimHandler {
	return &orderClaimHandler{
		handle:     handle,
		maxRetries: config.MaxRetries,
		backoff:    config.RetryBackoffDuration,
		log:        logger.GetDefault(),
	}
}

func (h *orderClaimHandler) Setup(sarama.ConsumerGroupSession) error   { return nil }
func (h *orderClaimHandler) Cleanup(sarama.ConsumerGroupSession) error { return nil }

func (h *orderClaimHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				return nil
			}
			if err := h.processMessage(session.Context(), message); err != nil {
				h.log.Error("Failed to process order message",
					slog.Int64("offset", message.Offset),
					slog.Any("error", err))
				continue
			}
			session.MarkMessage(message, "")
		case <-session.Context().Done():
			return nil
		}
	}
}

// processMessage decodes one message and runs the handler with exponential backoff.
// Undecodable messages are dropped without retry.
func (h *orderClaimHandler) processMessage(ctx context.Context, message *sarama.ConsumerMessage) error {
	var order OrderSubmitted
	if err := json.Unmarshal(message.Value, &order); err != nil {
		return fmt.Errorf("failed to unmarshal order: %w", err)
	}

	var err error
	for attempt := 0; attempt <= h.maxRetries; attempt++ {
		if err = h.handle(ctx, &order); err == nil {
			return nil
		}
		if attempt == h.maxRetries {
			break
		}
		delay := h.backoff * time.Duration(1<<attempt)
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return fmt.Errorf("order %s failed after %d attempts: %w", order.Reference, h.maxRetries+1, err)
}
