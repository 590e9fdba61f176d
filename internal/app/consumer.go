package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/TheLeeJungYan/EINV-POS-API/internal/config"
	"github.com/TheLeeJungYan/EINV-POS-API/internal/events"
	"github.com/TheLeeJungYan/EINV-POS-API/internal/messaging/kafka/consumer"
	"github.com/TheLeeJungYan/EINV-POS-API/internal/shared/connection"
	"github.com/TheLeeJungYan/EINV-POS-API/internal/transaction"

	"go.uber.org/zap"
)

// RunConsumer folds transaction_recorded events into the daily sales
// counters until SIGINT/SIGTERM.
func RunConsumer(cfg *config.Config, logger *zap.Logger) error {
	log := logger.Named("app.consumer")

	rdb, err := connection.ConnectRedisWithRetry(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.DB.MaxRetries)
	if err != nil {
		return err
	}
	defer rdb.Close()

	if err := connection.ConnectKafkaWithRetry(cfg.Kafka.Broker, events.Topics(), cfg.DB.MaxRetries); err != nil {
		return err
	}

	reader := connection.NewKafkaReader(cfg.Kafka.Broker, cfg.Kafka.ConsumerGroup, events.TransactionRecordedTopic)
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeTransactionRecorded(ctx, reader, transaction.NewSummaryStore(rdb), logger, consumer.RetryConfig{
		InitialBackoff: cfg.Kafka.RetryBackoff,
		MaxBackoff:     cfg.Kafka.MaxRetryBackoff,
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("consumer shutting down")
	cancel()

	return nil
}
