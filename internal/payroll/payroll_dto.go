package payroll

import "go-staffdesk/internal/employee"

// CreatePaymentRequest is the payment form. Date defaults to today; the period
// is optional but both ends must be given together, from on or before to.
type CreatePaymentRequest struct {
	Date          string   `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Amount        float64  `json:"amount" binding:"required,gt=0"`
	PaymentMode   string   `json:"payment_mode" binding:"required,oneof='Bank Transfer' Cash Check 'Digital Wallet'"`
	Status        string   `json:"status" binding:"required,oneof=Pending Completed Failed"`
	Description   string   `json:"description" binding:"max=255"`
	PeriodFrom    string   `json:"period_from" binding:"omitempty,datetime=2006-01-02"`
	PeriodTo      string   `json:"period_to" binding:"omitempty,datetime=2006-01-02"`
	TaxDeduction  *float64 `json:"tax_deduction" binding:"omitempty,gte=0"`
	BonusAmount   *float64 `json:"bonus_amount" binding:"omitempty,gte=0"`
	OvertimeHours *float64 `json:"overtime_hours" binding:"omitempty,gte=0"`
	OvertimeRate  *float64 `json:"overtime_rate" binding:"omitempty,gte=0"`
}

type PaymentResponse struct {
	EmployeeID string `json:"employee_id"`
	employee.PaymentRecordResponse
}

type PaymentListResponse struct {
	EmployeeID   string                           `json:"employee_id"`
	EmployeeName string                           `json:"employee_name"`
	Payments     []employee.PaymentRecordResponse `json:"payments"`
	TotalPaid    float64                          `json:"total_paid"`
	TotalPending float64                          `json:"total_pending"`
}
