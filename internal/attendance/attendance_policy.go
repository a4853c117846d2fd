package attendance

import "go-staffdesk/internal/employee"

// ApplyStatusPolicy adjusts a requested attendance status to the employee's
// overall status before it is stored. Inactive staff cannot be marked Present
// and always get the inactivity note. On-leave staff cannot be marked Present
// either, but a note supplied by the caller is kept.
func ApplyStatusPolicy(
	employeeStatus employee.Status,
	requested employee.AttendanceStatus,
	note string,
) (employee.AttendanceStatus, string) {
	if requested != employee.AttendancePresent {
		return requested, note
	}

	switch employeeStatus {
	case employee.StatusInactive:
		return employee.AttendanceAbsent, employee.NoteInactive
	case employee.StatusOnLeave:
		if note == "" {
			note = employee.NoteOnLeave
		}
		return employee.AttendanceAbsent, note
	default:
		return requested, note
	}
}

func validStatus(s employee.AttendanceStatus) bool {
	switch s {
	case employee.AttendancePresent, employee.AttendanceAbsent, employee.AttendanceLate, employee.AttendanceHalfDay:
		return true
	default:
		return false
	}
}
