package employeeerrors

import (
	"go-staffdesk/internal/shared/apperror"
	"net/http"
)

var ErrEmployeeNotFound = apperror.New(
	apperror.CodeNotFound,
	"Employee not found",
	http.StatusNotFound,
)
