package attendance_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-staffdesk/internal/attendance"
	attendanceerrors "go-staffdesk/internal/attendance/errors"
	"go-staffdesk/internal/employee"
	"go-staffdesk/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeAttendanceService struct {
	MarkTodayFn  func(ctx context.Context, employeeID string, req attendance.MarkAttendanceRequest) (attendance.TodayAttendanceResponse, error)
	GetTodayFn   func(ctx context.Context, employeeID string) (attendance.TodayAttendanceResponse, error)
	GetHistoryFn func(ctx context.Context, employeeID string, filter attendance.HistoryFilter) ([]employee.AttendanceRecordResponse, error)
}

func (f *fakeAttendanceService) MarkToday(ctx context.Context, employeeID string, req attendance.MarkAttendanceRequest) (attendance.TodayAttendanceResponse, error) {
	return f.MarkTodayFn(ctx, employeeID, req)
}
func (f *fakeAttendanceService) GetToday(ctx context.Context, employeeID string) (attendance.TodayAttendanceResponse, error) {
	return f.GetTodayFn(ctx, employeeID)
}
func (f *fakeAttendanceService) GetHistory(ctx context.Context, employeeID string, filter attendance.HistoryFilter) ([]employee.AttendanceRecordResponse, error) {
	return f.GetHistoryFn(ctx, employeeID, filter)
}

func setupRouter(svc attendance.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	apperror.Init()
	r := gin.New()
	attendance.RegisterRoutes(r.Group("/api/v1"), attendance.NewHandler(svc))
	return r
}

func TestAttendanceHandler_MarkToday(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeAttendanceService{
			MarkTodayFn: func(ctx context.Context, employeeID string, req attendance.MarkAttendanceRequest) (attendance.TodayAttendanceResponse, error) {
				assert.Equal(t, "4", employeeID)
				assert.Equal(t, "Present", req.Status)
				assert.Equal(t, "custom note", req.Note)
				return attendance.TodayAttendanceResponse{
					EmployeeID: "4",
					Date:       "2026-03-31",
					Recorded:   true,
					Attendance: &employee.AttendanceRecordResponse{Date: "2026-03-31", Status: "Absent", Note: "custom note"},
					Overridden: true,
				}, nil
			},
		}

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/api/v1/employees/4/attendance/today",
			strings.NewReader(`{"status":"Present","note":"custom note"}`))
		req.Header.Set("Content-Type", "application/json")
		setupRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"overridden":true`)
		assert.Contains(t, w.Body.String(), `"status":"Absent"`)
	})

	t.Run("missing status", func(t *testing.T) {
		svc := &fakeAttendanceService{}

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/api/v1/employees/4/attendance/today", strings.NewReader(`{"note":"x"}`))
		req.Header.Set("Content-Type", "application/json")
		setupRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Status is required")
	})

	t.Run("unknown status", func(t *testing.T) {
		svc := &fakeAttendanceService{}

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/api/v1/employees/4/attendance/today", strings.NewReader(`{"status":"Sick"}`))
		req.Header.Set("Content-Type", "application/json")
		setupRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Status is invalid")
	})

	t.Run("employee not found", func(t *testing.T) {
		svc := &fakeAttendanceService{
			MarkTodayFn: func(ctx context.Context, employeeID string, req attendance.MarkAttendanceRequest) (attendance.TodayAttendanceResponse, error) {
				return attendance.TodayAttendanceResponse{}, attendanceerrors.ErrEmployeeNotFound
			},
		}

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/api/v1/employees/99/attendance/today", strings.NewReader(`{"status":"Late"}`))
		req.Header.Set("Content-Type", "application/json")
		setupRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), apperror.CodeNotFound)
	})
}

func TestAttendanceHandler_GetTodayAndHistory(t *testing.T) {
	svc := &fakeAttendanceService{
		GetTodayFn: func(ctx context.Context, employeeID string) (attendance.TodayAttendanceResponse, error) {
			return attendance.TodayAttendanceResponse{EmployeeID: employeeID, Date: "2026-03-31"}, nil
		},
		GetHistoryFn: func(ctx context.Context, employeeID string, filter attendance.HistoryFilter) ([]employee.AttendanceRecordResponse, error) {
			assert.Equal(t, "Late", filter.Status)
			return []employee.AttendanceRecordResponse{
				{Date: "2026-03-30", Status: "Late"},
				{Date: "2026-03-20", Status: "Late"},
			}, nil
		},
	}
	r := setupRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/employees/1/attendance/today", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"recorded":false`)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/employees/1/attendance?status=Late&page_size=1", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":2`)
	assert.Contains(t, w.Body.String(), `"2026-03-30"`)
	assert.NotContains(t, w.Body.String(), `"2026-03-20"`)
}
