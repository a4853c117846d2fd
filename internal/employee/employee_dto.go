package employee

type ListFilter struct {
	Query   string `form:"q"`
	Status  string `form:"status" binding:"omitempty,oneof=Active 'On Leave' Inactive"`
	SortBy  string `form:"sort_by" binding:"omitempty,oneof=id name department role join_date"`
	SortDir string `form:"sort_dir" binding:"omitempty,oneof=asc desc"`
}

type EmployeeResponse struct {
	ID               string   `json:"id"`
	EmployeeID       string   `json:"employee_id,omitempty"`
	Name             string   `json:"name"`
	Email            string   `json:"email"`
	Phone            string   `json:"phone"`
	Role             string   `json:"role"`
	Department       string   `json:"department"`
	JoinDate         string   `json:"join_date"`
	Status           string   `json:"status"`
	Address          string   `json:"address,omitempty"`
	EmergencyContact string   `json:"emergency_contact,omitempty"`
	Salary           *float64 `json:"salary,omitempty"`
	BirthDate        string   `json:"birth_date,omitempty"`
	Gender           string   `json:"gender,omitempty"`
	Education        string   `json:"education,omitempty"`
	Skills           []string `json:"skills,omitempty"`
}

type EmployeeDetailResponse struct {
	EmployeeResponse
	Attendance []AttendanceRecordResponse `json:"attendance"`
	Payments   []PaymentRecordResponse    `json:"payments"`
}

type EmployeeOption struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

type AttendanceRecordResponse struct {
	Date         string `json:"date"`
	Status       string `json:"status"`
	CheckInTime  string `json:"check_in_time,omitempty"`
	CheckOutTime string `json:"check_out_time,omitempty"`
	Note         string `json:"note,omitempty"`
}

type PeriodResponse struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type PaymentRecordResponse struct {
	ID            string          `json:"id"`
	Date          string          `json:"date"`
	Amount        float64         `json:"amount"`
	PaymentMode   string          `json:"payment_mode"`
	Status        string          `json:"status"`
	Description   string          `json:"description,omitempty"`
	Period        *PeriodResponse `json:"period,omitempty"`
	TaxDeduction  *float64        `json:"tax_deduction,omitempty"`
	BonusAmount   *float64        `json:"bonus_amount,omitempty"`
	OvertimeHours *float64        `json:"overtime_hours,omitempty"`
	OvertimeRate  *float64        `json:"overtime_rate,omitempty"`
}

type TodayBreakdown struct {
	Date        string `json:"date"`
	Present     int    `json:"present"`
	Late        int    `json:"late"`
	HalfDay     int    `json:"half_day"`
	Absent      int    `json:"absent"`
	NotRecorded int    `json:"not_recorded"`
}

type StatsResponse struct {
	Total    int            `json:"total"`
	Active   int            `json:"active"`
	OnLeave  int            `json:"on_leave"`
	Inactive int            `json:"inactive"`
	Today    TodayBreakdown `json:"today"`
}
