// Command orderlog tails the order topic and logs every submitted order.
// It stands in for the downstream order-intake service during local runs.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"boxoffice/internal/checkout"
	"boxoffice/internal/shared/config"
	"boxoffice/pkg/logger"

	"github.com/joho/godotenv"
)

func main() {
	fromStart := flag.Bool("from-start", true, "read the topic from the oldest offset")
	group := flag.String("group", "", "consumer group id (default boxoffice-order-log)")
	flag.Parse()

	_ = godotenv.Load()
	cfg := config.Load()
	appLogger := logger.GetDefault()

	consumerConfig := checkout.DefaultConsumerConfig()
	consumerConfig.Brokers = cfg.Kafka.Brokers
	consumerConfig.OrderTopic = cfg.Kafka.OrderTopic
	consumerConfig.OffsetOldest = *fromStart
	if *group != "" {
		consumerConfig.GroupID = *group
	}

	consumer, err := checkout.NewOrderConsumer(consumerConfig, func(ctx context.Context, order *checkout.OrderSubmitted) error {
		appLogger.InfoWithContext(ctx, "Order received", map[string]interface{}{
			"reference":  order.Reference,
			"event_id":   order.EventID,
			"section_id": order.SectionID,
			"seat_ids":   order.SeatIDs,
			"total":      order.Breakdown.Total.String(),
			"email":      checkout.MaskEmail(order.CustomerEmail),
		})
		return nil
	})
	if err != nil {
		appLogger.Error("Failed to start order consumer", slog.Any("error", err))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := consumer.Run(ctx); err != nil {
		appLogger.Error("Order consumer stopped with error", slog.Any("error", err))
		os.Exit(1)
	}
	appLogger.Info("Order consumer stopped")
}
