package events

import "time"

const (
	PaymentRecordedTopic = "hr.payment.recorded.v1"
	PaymentRecordedType  = "payment_recorded"
)

type PaymentRecordedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	EmployeeID string    `json:"employee_id"`
	PaymentID  string    `json:"payment_id"`
	Amount     float64   `json:"amount"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}
