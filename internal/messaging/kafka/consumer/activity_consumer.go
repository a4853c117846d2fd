package consumer

import (
	"context"
	"encoding/json"
	"go-staffdesk/internal/bootstrap"
	"go-staffdesk/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the part of *kafkago.Reader the consumer needs.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// ConsumeActivity turns attendance and payment events into audit entries.
// Messages that cannot be decoded are committed and skipped.
func ConsumeActivity(
	ctx context.Context,
	reader MessageReader,
	auditLogger bootstrap.AuditLogger,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.activity")
	log.Info("activity consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("activity consumer stopped")
				return
			}
			log.Error("fetch activity message failed", zap.Error(err))
			continue
		}

		entry, err := auditEntry(msg)
		if err != nil {
			log.Error("decode activity event failed",
				zap.String("topic", msg.Topic),
				zap.Int64("offset", msg.Offset),
				zap.Error(err),
			)
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if entry != nil {
			auditLogger.Log(ctx, *entry)
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit activity message failed", zap.Error(err))
			continue
		}
	}
}

func auditEntry(msg kafkago.Message) (*bootstrap.AuditLog, error) {
	switch msg.Topic {
	case events.AttendanceMarkedTopic:
		var event events.AttendanceMarkedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			return nil, err
		}
		return &bootstrap.AuditLog{
			Action:  "ATTENDANCE_MARKED",
			Message: "Attendance recorded as " + event.RecordedStatus,
			Meta: map[string]any{
				"employee_id":      event.EmployeeID,
				"date":             event.Date,
				"requested_status": event.RequestedStatus,
				"recorded_status":  event.RecordedStatus,
				"overridden":       event.Overridden,
				"request_id":       event.RequestID,
			},
		}, nil

	case events.PaymentRecordedTopic:
		var event events.PaymentRecordedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			return nil, err
		}
		return &bootstrap.AuditLog{
			Action:  "PAYMENT_RECORDED",
			Message: "Payment " + event.PaymentID + " recorded",
			Meta: map[string]any{
				"employee_id": event.EmployeeID,
				"payment_id":  event.PaymentID,
				"amount":      event.Amount,
				"status":      event.Status,
				"request_id":  event.RequestID,
			},
		}, nil

	default:
		return nil, nil
	}
}
