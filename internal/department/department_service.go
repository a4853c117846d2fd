package department

import (
	"context"
	"sort"
	"strings"

	departmenterrors "go-staffdesk/internal/department/errors"
	"go-staffdesk/internal/employee"

	"go.uber.org/zap"
)

//go:generate mockgen -source=department_service.go -destination=mock/department_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context) ([]DepartmentResponse, error)
	GetByName(ctx context.Context, name string) (DepartmentDetailResponse, error)
}

type service struct {
	repo   employee.Repository
	logger *zap.Logger
}

// NewService derives departments from the roster; there is no separate
// department store.
func NewService(repo employee.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("department.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("department.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) GetAll(ctx context.Context) ([]DepartmentResponse, error) {
	byName := make(map[string]*DepartmentResponse)
	roles := make(map[string]map[string]struct{})

	for _, e := range s.repo.FindAll(ctx) {
		d, ok := byName[e.Department]
		if !ok {
			d = &DepartmentResponse{Name: e.Department}
			byName[e.Department] = d
			roles[e.Department] = make(map[string]struct{})
		}
		count(d, e)
		roles[e.Department][e.Role] = struct{}{}
	}

	res := make([]DepartmentResponse, 0, len(byName))
	for name, d := range byName {
		d.Roles = sortedKeys(roles[name])
		res = append(res, *d)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Name < res[j].Name })
	return res, nil
}

func (s *service) GetByName(ctx context.Context, name string) (DepartmentDetailResponse, error) {
	name = strings.TrimSpace(name)

	var d DepartmentDetailResponse
	roles := make(map[string]struct{})
	for _, e := range s.repo.FindAll(ctx) {
		if !strings.EqualFold(e.Department, name) {
			continue
		}
		d.Name = e.Department
		count(&d.DepartmentResponse, e)
		roles[e.Role] = struct{}{}
		d.Members = append(d.Members, employee.MapToResponse(e))
	}

	if d.Headcount == 0 {
		s.logger.Debug("department not found", zap.String("department", name))
		return DepartmentDetailResponse{}, departmenterrors.ErrDepartmentNotFound
	}
	d.Roles = sortedKeys(roles)
	return d, nil
}

func count(d *DepartmentResponse, e employee.Employee) {
	d.Headcount++
	switch e.Status {
	case employee.StatusActive:
		d.Active++
	case employee.StatusOnLeave:
		d.OnLeave++
	case employee.StatusInactive:
		d.Inactive++
	}
}

func sortedKeys(m map[string]struct{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
