package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/TheLeeJungYan/EINV-POS-API/internal/config"
	"github.com/TheLeeJungYan/EINV-POS-API/internal/events"
	"github.com/TheLeeJungYan/EINV-POS-API/internal/messaging/kafka"
	"github.com/TheLeeJungYan/EINV-POS-API/internal/messaging/kafka/producer"
	"github.com/TheLeeJungYan/EINV-POS-API/internal/metrics"
	"github.com/TheLeeJungYan/EINV-POS-API/internal/shared/connection"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// RunWorker relays outbox rows to Kafka until SIGINT/SIGTERM.
func RunWorker(cfg *config.Config, logger *zap.Logger) error {
	log := logger.Named("app.worker")

	rx, err := connection.ConnectSQLXWithRetry(cfg.DB.DSN(), cfg.DB.MaxRetries)
	if err != nil {
		return err
	}
	defer rx.Close()

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: rx.DB}), &gorm.Config{})
	if err != nil {
		return err
	}

	if err := connection.ConnectKafkaWithRetry(cfg.Kafka.Broker, events.Topics(), cfg.DB.MaxRetries); err != nil {
		return err
	}

	kafkaWriter := connection.NewKafkaWriter(cfg.Kafka.Broker)
	defer kafkaWriter.Close()

	outboxRepo := kafka.NewOutboxRepository(gormDB, rx)
	domainMetrics := metrics.NewDomainMetrics(prometheus.DefaultRegisterer)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go producer.ProcessOutboxEvents(
		ctx,
		outboxRepo,
		kafkaWriter,
		domainMetrics,
		logger,
		producer.WorkerConfig{
			PollInterval: cfg.Kafka.PollInterval,
			BatchSize:    cfg.Kafka.BatchSize,
		},
	)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("worker shutting down")
	cancel()

	return nil
}
