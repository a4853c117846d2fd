package payrollerrors

import (
	"net/http"

	"go-staffdesk/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrPaymentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Payment not found",
		http.StatusNotFound,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidPeriod = apperror.New(
		apperror.CodeInvalidInput,
		"period_from and period_to must both be set, from on or before to",
		http.StatusBadRequest,
	)
	ErrPayslipGeneration = apperror.New(
		apperror.CodeInternalError,
		"failed to generate payslip",
		http.StatusInternalServerError,
	)
)
