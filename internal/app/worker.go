package app

import (
	"context"
	"time"

	"go-staffdesk/internal/messaging/kafka"
	"go-staffdesk/internal/messaging/kafka/producer"
	"go-staffdesk/internal/shared/connection"

	"go.uber.org/zap"
)

// startOutboxWorker runs the producer in-process: the outbox lives in memory,
// so only this process can drain it. stop waits for the worker to exit and
// closes the writer.
func startOutboxWorker(ctx context.Context, cfg Config, logger *zap.Logger) (kafka.OutboxRepository, func(), error) {
	writer, err := connection.ConnectKafkaWithRetry(cfg.KafkaBroker, 5)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("kafka writer ready", zap.String("broker", cfg.KafkaBroker))

	outbox := kafka.NewOutboxRepository(time.Now)
	done := make(chan struct{})
	go func() {
		defer close(done)
		producer.ProcessOutboxEvents(ctx, outbox, writer, logger, cfg.OutboxPollInterval)
	}()

	stop := func() {
		<-done
		if err := writer.Close(); err != nil {
			logger.Warn("close kafka writer failed", zap.Error(err))
		}
	}
	return outbox, stop, nil
}
