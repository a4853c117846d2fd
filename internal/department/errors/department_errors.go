package departmenterrors

import (
	"go-staffdesk/internal/shared/apperror"
	"net/http"
)

var ErrDepartmentNotFound = apperror.New(
	apperror.CodeNotFound,
	"Department not found",
	http.StatusNotFound,
)
