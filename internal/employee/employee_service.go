package employee

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strconv"
	"strings"
	"time"

	employeeerrors "go-staffdesk/internal/employee/errors"
	"go-staffdesk/internal/shared/contextutil"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	EmployeeOptionsKey = "employees:options"
	optionsTTL         = time.Hour
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context, filter ListFilter) ([]EmployeeResponse, error)
	GetOptions(ctx context.Context) ([]EmployeeOption, error)
	GetByID(ctx context.Context, id string) (EmployeeDetailResponse, error)
	GetStats(ctx context.Context) (StatsResponse, error)
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	now    func() time.Time
	logger *zap.Logger
}

// NewService builds the roster read service. rdb may be nil, in which case
// options are read straight from the repository.
func NewService(repo Repository, rdb *redis.Client, now func() time.Time, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	if now == nil {
		now = time.Now
	}
	return &service{
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		now:    now,
		logger: l,
	}
}

func (s *service) GetAll(ctx context.Context, filter ListFilter) ([]EmployeeResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("get all employees requested",
		zap.String("q", filter.Query),
		zap.String("status", filter.Status),
	)

	all := s.repo.FindAll(ctx)
	q := strings.ToLower(strings.TrimSpace(filter.Query))

	res := make([]EmployeeResponse, 0, len(all))
	for _, e := range all {
		if filter.Status != "" && string(e.Status) != filter.Status {
			continue
		}
		if q != "" && !matchesQuery(e, q) {
			continue
		}
		res = append(res, MapToResponse(e))
	}

	sortEmployees(res, filter.SortBy, filter.SortDir == "desc")
	return res, nil
}

func (s *service) GetOptions(ctx context.Context) ([]EmployeeOption, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, EmployeeOptionsKey).Result(); err == nil {
			var opts []EmployeeOption
			if json.Unmarshal([]byte(cached), &opts) == nil {
				return opts, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			log.Warn("read employee options cache failed", zap.Error(err))
		}
	}

	v, err, _ := s.sf.Do(EmployeeOptionsKey, func() (any, error) {
		all := s.repo.FindAll(ctx)
		opts := make([]EmployeeOption, len(all))
		for i, e := range all {
			opts[i] = EmployeeOption{ID: e.ID, Name: e.Name, Status: string(e.Status)}
		}

		if s.rdb != nil {
			if payload, err := json.Marshal(opts); err == nil {
				if err := s.rdb.Set(ctx, EmployeeOptionsKey, payload, optionsTTL).Err(); err != nil {
					log.Warn("write employee options cache failed", zap.Error(err))
				}
			}
		}
		return opts, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]EmployeeOption), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeDetailResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("get employee by id requested", zap.String("employee_id", id))

	e, ok := s.repo.FindByID(ctx, id)
	if !ok {
		log.Warn("employee not found", zap.String("employee_id", id))
		return EmployeeDetailResponse{}, employeeerrors.ErrEmployeeNotFound
	}
	return MapToDetailResponse(e), nil
}

func (s *service) GetStats(ctx context.Context) (StatsResponse, error) {
	today := s.now().Format(DateLayout)
	stats := StatsResponse{Today: TodayBreakdown{Date: today}}

	for _, e := range s.repo.FindAll(ctx) {
		stats.Total++
		switch e.Status {
		case StatusActive:
			stats.Active++
		case StatusOnLeave:
			stats.OnLeave++
		case StatusInactive:
			stats.Inactive++
		}

		rec, ok := TodayAttendance(e, today)
		if !ok {
			stats.Today.NotRecorded++
			continue
		}
		switch rec.Status {
		case AttendancePresent:
			stats.Today.Present++
		case AttendanceLate:
			stats.Today.Late++
		case AttendanceHalfDay:
			stats.Today.HalfDay++
		case AttendanceAbsent:
			stats.Today.Absent++
		}
	}

	return stats, nil
}

func matchesQuery(e Employee, q string) bool {
	for _, field := range []string{e.Name, e.Email, e.Role, e.Department} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

func sortEmployees(res []EmployeeResponse, sortBy string, desc bool) {
	sort.SliceStable(res, func(i, j int) bool {
		a, b := res[i], res[j]
		if desc {
			a, b = b, a
		}
		switch sortBy {
		case "name":
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		case "department":
			return strings.ToLower(a.Department) < strings.ToLower(b.Department)
		case "role":
			return strings.ToLower(a.Role) < strings.ToLower(b.Role)
		case "join_date":
			return a.JoinDate < b.JoinDate
		default:
			return idLess(a.ID, b.ID)
		}
	})
}

// idLess orders numeric ids numerically and falls back to string order.
func idLess(a, b string) bool {
	ai, errA := strconv.Atoi(a)
	bi, errB := strconv.Atoi(b)
	if errA == nil && errB == nil {
		return ai < bi
	}
	return a < b
}
