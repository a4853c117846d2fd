package employee

const (
	NoteInactive = "Employee is inactive"
	NoteOnLeave  = "Employee is on leave"
)

// TodayAttendance is the effective attendance shown for date. A stored record
// wins; otherwise inactive and on-leave staff read as Absent with an explanatory
// note (not persisted), and active staff report ok=false.
func TodayAttendance(e Employee, date string) (AttendanceRecord, bool) {
	if rec, ok := e.AttendanceOn(date); ok {
		return rec, true
	}

	switch e.Status {
	case StatusInactive:
		return AttendanceRecord{Date: date, Status: AttendanceAbsent, Note: NoteInactive}, true
	case StatusOnLeave:
		return AttendanceRecord{Date: date, Status: AttendanceAbsent, Note: NoteOnLeave}, true
	default:
		return AttendanceRecord{}, false
	}
}
