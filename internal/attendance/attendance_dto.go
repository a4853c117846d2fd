package attendance

import "go-staffdesk/internal/employee"

type MarkAttendanceRequest struct {
	Status string `json:"status" binding:"required,oneof=Present Absent Late Half-day"`
	Note   string `json:"note" binding:"max=500"`
}

type HistoryFilter struct {
	Status string `form:"status" binding:"omitempty,oneof=Present Absent Late Half-day"`
}

// TodayAttendanceResponse describes the effective attendance for one employee
// today. Recorded is false when nothing applies; Synthesized marks a read-time
// Absent for inactive or on-leave staff that is not stored.
type TodayAttendanceResponse struct {
	EmployeeID      string                             `json:"employee_id"`
	EmployeeName    string                             `json:"employee_name"`
	EmployeeStatus  string                             `json:"employee_status"`
	Date            string                             `json:"date"`
	Recorded        bool                               `json:"recorded"`
	Synthesized     bool                               `json:"synthesized"`
	Attendance      *employee.AttendanceRecordResponse `json:"attendance,omitempty"`
	RequestedStatus string                             `json:"requested_status,omitempty"`
	Overridden      bool                               `json:"overridden,omitempty"`
}
