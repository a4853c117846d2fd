package payroll

import (
	"bytes"
	"fmt"
	"time"

	"go-staffdesk/internal/employee"

	"github.com/jung-kurt/gofpdf"
)

func buildPayslipPDF(e employee.Employee, p employee.PaymentRecord, issuedAt time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetCreationDate(issuedAt)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	line := func(format string, args ...any) {
		pdf.Cell(0, 8, tr(fmt.Sprintf(format, args...)))
		pdf.Ln(7)
	}

	line("Employee: %s (%s)", e.Name, e.EmployeeID)
	line("Role: %s, %s", e.Role, e.Department)
	line("Payment: %s on %s", p.ID, p.Date)
	if p.Period != nil {
		line("Period: %s to %s", p.Period.From, p.Period.To)
	}
	line("Mode: %s", p.PaymentMode)
	line("Status: %s", p.Status)
	pdf.Ln(3)

	var tax float64
	if p.BonusAmount != nil {
		line("Bonus: %.2f", *p.BonusAmount)
	}
	if p.OvertimeHours != nil && p.OvertimeRate != nil {
		line("Overtime: %.0f h x %.2f = %.2f", *p.OvertimeHours, *p.OvertimeRate, *p.OvertimeHours**p.OvertimeRate)
	}
	line("Gross: %.2f", p.Amount)
	if p.TaxDeduction != nil {
		tax = *p.TaxDeduction
		line("Tax deduction: %.2f", tax)
	}

	pdf.SetFont("Helvetica", "B", 12)
	line("Net: %.2f", p.Amount-tax)

	if p.Description != "" {
		pdf.SetFont("Helvetica", "I", 10)
		line("%s", p.Description)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
