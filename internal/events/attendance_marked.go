package events

import "time"

const (
	AttendanceMarkedTopic = "hr.attendance.marked.v1"
	AttendanceMarkedType  = "attendance_marked"
)

// AttendanceMarkedEvent is published after today's attendance is upserted.
// RecordedStatus differs from RequestedStatus when the employee's status forced
// an override.
type AttendanceMarkedEvent struct {
	EventType       string    `json:"event_type"`
	RequestID       string    `json:"request_id,omitempty"`
	EmployeeID      string    `json:"employee_id"`
	Date            string    `json:"date"`
	RequestedStatus string    `json:"requested_status"`
	RecordedStatus  string    `json:"recorded_status"`
	Overridden      bool      `json:"overridden"`
	OccurredAt      time.Time `json:"occurred_at"`
}
