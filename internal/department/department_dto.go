package department

import "go-staffdesk/internal/employee"

type DepartmentResponse struct {
	Name      string   `json:"name"`
	Headcount int      `json:"headcount"`
	Active    int      `json:"active"`
	OnLeave   int      `json:"on_leave"`
	Inactive  int      `json:"inactive"`
	Roles     []string `json:"roles"`
}

type DepartmentDetailResponse struct {
	DepartmentResponse
	Members []employee.EmployeeResponse `json:"members"`
}
