package payroll_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go-staffdesk/internal/employee"
	"go-staffdesk/internal/payroll"
	payrollerrors "go-staffdesk/internal/payroll/errors"
	"go-staffdesk/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePayrollService struct {
	RecordFn     func(ctx context.Context, employeeID string, req payroll.CreatePaymentRequest) (payroll.PaymentResponse, error)
	GetAllFn     func(ctx context.Context, employeeID string) (payroll.PaymentListResponse, error)
	GetPayslipFn func(ctx context.Context, employeeID, paymentID string) ([]byte, error)
}

func (f *fakePayrollService) Record(ctx context.Context, employeeID string, req payroll.CreatePaymentRequest) (payroll.PaymentResponse, error) {
	return f.RecordFn(ctx, employeeID, req)
}
func (f *fakePayrollService) GetAll(ctx context.Context, employeeID string) (payroll.PaymentListResponse, error) {
	return f.GetAllFn(ctx, employeeID)
}
func (f *fakePayrollService) GetPayslip(ctx context.Context, employeeID, paymentID string) ([]byte, error) {
	return f.GetPayslipFn(ctx, employeeID, paymentID)
}

func setupRouter(svc payroll.Service, rdb *redis.Client) *gin.Engine {
	gin.SetMode(gin.TestMode)
	apperror.Init()
	r := gin.New()
	if rdb != nil {
		payroll.RegisterRoutes(r.Group("/api/v1"), payroll.NewHandlerWithRedis(svc, rdb), rdb)
	} else {
		payroll.RegisterRoutes(r.Group("/api/v1"), payroll.NewHandler(svc))
	}
	return r
}

func postPayment(r *gin.Engine, body, idempotencyKey string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/employees/1/payments", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if idempotencyKey != "" {
		req.Header.Set("Idempotency-Key", idempotencyKey)
	}
	r.ServeHTTP(w, req)
	return w
}

var recorded = payroll.PaymentResponse{
	EmployeeID: "1",
	PaymentRecordResponse: employee.PaymentRecordResponse{
		ID: "PAY-00042", Date: "2026-03-31", Amount: 4100, PaymentMode: "Cash", Status: "Completed",
	},
}

func TestPayrollHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakePayrollService{
			RecordFn: func(ctx context.Context, employeeID string, req payroll.CreatePaymentRequest) (payroll.PaymentResponse, error) {
				assert.Equal(t, "1", employeeID)
				assert.Equal(t, 4100.0, req.Amount)
				assert.Equal(t, "Cash", req.PaymentMode)
				return recorded, nil
			},
		}

		w := postPayment(setupRouter(svc, nil), `{"amount":4100,"payment_mode":"Cash","status":"Completed"}`, "")
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"id":"PAY-00042"`)
		assert.Contains(t, w.Body.String(), `"employee_id":"1"`)
	})

	validation := []struct {
		name string
		body string
		msg  string
	}{
		{"zero amount", `{"amount":0,"payment_mode":"Cash","status":"Completed"}`, "Amount is required"},
		{"negative amount", `{"amount":-5,"payment_mode":"Cash","status":"Completed"}`, "Amount is invalid"},
		{"missing mode", `{"amount":10,"status":"Completed"}`, "Payment Mode is required"},
		{"unknown status", `{"amount":10,"payment_mode":"Cash","status":"Paid"}`, "Status is invalid"},
		{"bad date", `{"amount":10,"payment_mode":"Cash","status":"Completed","date":"31-03-2026"}`, "Date is invalid"},
	}
	for _, tt := range validation {
		t.Run(tt.name, func(t *testing.T) {
			w := postPayment(setupRouter(&fakePayrollService{}, nil), tt.body, "")
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), tt.msg)
		})
	}

	t.Run("employee not found", func(t *testing.T) {
		svc := &fakePayrollService{
			RecordFn: func(ctx context.Context, employeeID string, req payroll.CreatePaymentRequest) (payroll.PaymentResponse, error) {
				return payroll.PaymentResponse{}, payrollerrors.ErrEmployeeNotFound
			},
		}

		w := postPayment(setupRouter(svc, nil), `{"amount":10,"payment_mode":"Check","status":"Pending"}`, "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestPayrollHandler_CreateIdempotent(t *testing.T) {
	const (
		cacheKey = "idemp:/api/v1/employees/1/payments:192.0.2.1:key-7"
		lockKey  = cacheKey + ":lock"
	)
	payload, err := json.Marshal(recorded)
	require.NoError(t, err)

	calls := 0
	svc := &fakePayrollService{
		RecordFn: func(ctx context.Context, employeeID string, req payroll.CreatePaymentRequest) (payroll.PaymentResponse, error) {
			calls++
			return recorded, nil
		},
	}
	rdb, mock := redismock.NewClientMock()
	r := setupRouter(svc, rdb)
	body := `{"amount":4100,"payment_mode":"Cash","status":"Completed"}`

	mock.ExpectGet(cacheKey).RedisNil()
	mock.ExpectSetNX(lockKey, "locked", 30*time.Second).SetVal(true)
	mock.ExpectSet(cacheKey, payload, 24*time.Hour).SetVal("OK")
	mock.ExpectDel(lockKey).SetVal(1)

	w := postPayment(r, body, "key-7")
	assert.Equal(t, http.StatusCreated, w.Code)

	mock.ExpectGet(cacheKey).SetVal(string(payload))

	w = postPayment(r, body, "key-7")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "true", w.Header().Get("Idempotent-Replayed"))
	assert.Contains(t, w.Body.String(), "PAY-00042")

	assert.Equal(t, 1, calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPayrollHandler_GetAllAndPayslip(t *testing.T) {
	svc := &fakePayrollService{
		GetAllFn: func(ctx context.Context, employeeID string) (payroll.PaymentListResponse, error) {
			return payroll.PaymentListResponse{EmployeeID: employeeID, TotalPaid: 5000}, nil
		},
		GetPayslipFn: func(ctx context.Context, employeeID, paymentID string) ([]byte, error) {
			if paymentID != "PAY-00010" {
				return nil, payrollerrors.ErrPaymentNotFound
			}
			return []byte("%PDF-1.3 fake"), nil
		},
	}
	r := setupRouter(svc, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/employees/1/payments", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total_paid":5000`)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/employees/1/payments/PAY-00010/payslip", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "payslip-PAY-00010.pdf")

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/employees/1/payments/PAY-1/payslip", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Payment not found")
}
