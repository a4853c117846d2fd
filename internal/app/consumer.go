package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go-staffdesk/internal/bootstrap"
	"go-staffdesk/internal/events"
	"go-staffdesk/internal/messaging/kafka/consumer"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RunConsumer follows attendance and payment events and writes them to the
// audit log until SIGINT or SIGTERM.
func RunConsumer(cfg Config) error {
	logger := zap.L().Named("app.consumer")

	if cfg.KafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.KafkaBroker},
		GroupID:        cfg.KafkaGroupID,
		GroupTopics:    []string{events.AttendanceMarkedTopic, events.PaymentRecordedTopic},
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		consumer.ConsumeActivity(ctx, reader, bootstrap.NewStdoutAuditLogger(), logger)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()
	<-done

	return nil
}
