package attendance_test

import (
	"testing"

	"go-staffdesk/internal/attendance"
	"go-staffdesk/internal/employee"

	"github.com/stretchr/testify/assert"
)

func TestApplyStatusPolicy(t *testing.T) {
	tests := []struct {
		name       string
		empStatus  employee.Status
		requested  employee.AttendanceStatus
		note       string
		wantStatus employee.AttendanceStatus
		wantNote   string
	}{
		{"active present", employee.StatusActive, employee.AttendancePresent, "", employee.AttendancePresent, ""},
		{"active late keeps note", employee.StatusActive, employee.AttendanceLate, "bus", employee.AttendanceLate, "bus"},
		{"inactive present", employee.StatusInactive, employee.AttendancePresent, "", employee.AttendanceAbsent, employee.NoteInactive},
		{"inactive present overwrites note", employee.StatusInactive, employee.AttendancePresent, "came in anyway", employee.AttendanceAbsent, employee.NoteInactive},
		{"inactive half-day untouched", employee.StatusInactive, employee.AttendanceHalfDay, "", employee.AttendanceHalfDay, ""},
		{"on leave present", employee.StatusOnLeave, employee.AttendancePresent, "", employee.AttendanceAbsent, employee.NoteOnLeave},
		{"on leave present keeps note", employee.StatusOnLeave, employee.AttendancePresent, "custom note", employee.AttendanceAbsent, "custom note"},
		{"on leave absent untouched", employee.StatusOnLeave, employee.AttendanceAbsent, "", employee.AttendanceAbsent, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, note := attendance.ApplyStatusPolicy(tt.empStatus, tt.requested, tt.note)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantNote, note)
		})
	}
}
