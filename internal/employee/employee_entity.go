package employee

// DateLayout is the calendar date format used for every date field.
const DateLayout = "2006-01-02"

// TimeLayout is the wall clock format for check-in and check-out.
const TimeLayout = "15:04"

type Status string

const (
	StatusActive   Status = "Active"
	StatusOnLeave  Status = "On Leave"
	StatusInactive Status = "Inactive"
)

type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "Present"
	AttendanceAbsent  AttendanceStatus = "Absent"
	AttendanceLate    AttendanceStatus = "Late"
	AttendanceHalfDay AttendanceStatus = "Half-day"
)

type PaymentMode string

const (
	PaymentBankTransfer  PaymentMode = "Bank Transfer"
	PaymentCash          PaymentMode = "Cash"
	PaymentCheck         PaymentMode = "Check"
	PaymentDigitalWallet PaymentMode = "Digital Wallet"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "Pending"
	PaymentCompleted PaymentStatus = "Completed"
	PaymentFailed    PaymentStatus = "Failed"
)

type Employee struct {
	ID               string
	EmployeeID       string
	Name             string
	Email            string
	Phone            string
	Role             string
	Department       string
	JoinDate         string
	Status           Status
	Address          string
	EmergencyContact string
	Salary           *float64
	BirthDate        string
	Gender           string
	Education        string
	Skills           []string

	// Attendance holds at most one record per date, newest first.
	Attendance []AttendanceRecord
	// Payments are kept sorted by date, newest first.
	Payments []PaymentRecord
}

type AttendanceRecord struct {
	Date         string
	Status       AttendanceStatus
	CheckInTime  string
	CheckOutTime string
	Note         string
}

type Period struct {
	From string
	To   string
}

type PaymentRecord struct {
	ID            string
	Date          string
	Amount        float64
	PaymentMode   PaymentMode
	Status        PaymentStatus
	Description   string
	Period        *Period
	TaxDeduction  *float64
	BonusAmount   *float64
	OvertimeHours *float64
	OvertimeRate  *float64
}

// AttendanceOn returns the stored record for date, if any.
func (e Employee) AttendanceOn(date string) (AttendanceRecord, bool) {
	for _, r := range e.Attendance {
		if r.Date == date {
			return r, true
		}
	}
	return AttendanceRecord{}, false
}

// Payment looks up a payment by its display id.
func (e Employee) Payment(id string) (PaymentRecord, bool) {
	for _, p := range e.Payments {
		if p.ID == id {
			return p, true
		}
	}
	return PaymentRecord{}, false
}

// clone returns a deep copy so callers never alias the stored slices.
func (e Employee) clone() Employee {
	out := e
	if e.Salary != nil {
		v := *e.Salary
		out.Salary = &v
	}
	if e.Skills != nil {
		out.Skills = append([]string(nil), e.Skills...)
	}
	out.Attendance = append([]AttendanceRecord(nil), e.Attendance...)
	out.Payments = make([]PaymentRecord, len(e.Payments))
	for i, p := range e.Payments {
		out.Payments[i] = p.clone()
	}
	return out
}

func (p PaymentRecord) clone() PaymentRecord {
	out := p
	if p.Period != nil {
		v := *p.Period
		out.Period = &v
	}
	out.TaxDeduction = cloneFloat(p.TaxDeduction)
	out.BonusAmount = cloneFloat(p.BonusAmount)
	out.OvertimeHours = cloneFloat(p.OvertimeHours)
	out.OvertimeRate = cloneFloat(p.OvertimeRate)
	return out
}

func cloneFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func floatPtr(v float64) *float64 {
	return &v
}
