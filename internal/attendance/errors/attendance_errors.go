package attendanceerrors

import (
	"go-staffdesk/internal/shared/apperror"
	"net/http"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Attendance status must be one of Present, Absent, Late, Half-day",
		http.StatusBadRequest,
	)
)
