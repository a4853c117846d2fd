package payroll_test

import (
	"bytes"
	"context"
	"encoding/json"
	"math/rand/v2"
	"testing"
	"time"

	"go-staffdesk/internal/employee"
	"go-staffdesk/internal/events"
	"go-staffdesk/internal/messaging/kafka"
	kafkaMock "go-staffdesk/internal/messaging/kafka/mock"
	"go-staffdesk/internal/payroll"
	payrollerrors "go-staffdesk/internal/payroll/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, time.March, 31, 16, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func floatPtr(v float64) *float64 { return &v }

func roster() []employee.Employee {
	return []employee.Employee{
		{
			ID: "1", EmployeeID: "EMP-000001", Name: "Sarah Johnson", Role: "Store Manager", Department: "Management",
			Status: employee.StatusActive,
			Payments: []employee.PaymentRecord{
				{ID: "PAY-00010", Date: "2026-03-01", Amount: 5000, PaymentMode: employee.PaymentBankTransfer, Status: employee.PaymentCompleted,
					Period: &employee.Period{From: "2026-02-01", To: "2026-03-01"}, TaxDeduction: floatPtr(500),
					BonusAmount: floatPtr(200), OvertimeHours: floatPtr(4), OvertimeRate: floatPtr(25)},
				{ID: "PAY-00011", Date: "2026-02-01", Amount: 4800, PaymentMode: employee.PaymentBankTransfer, Status: employee.PaymentPending},
				{ID: "PAY-00012", Date: "2026-01-01", Amount: 4700, PaymentMode: employee.PaymentCash, Status: employee.PaymentFailed},
			},
		},
	}
}

func newRepo() employee.Repository {
	return employee.NewMemoryRepository(roster(),
		employee.WithClock(clock),
		employee.WithRand(rand.New(rand.NewPCG(3, 4))),
	)
}

func validRequest() payroll.CreatePaymentRequest {
	return payroll.CreatePaymentRequest{
		Amount:      4100,
		PaymentMode: "Digital Wallet",
		Status:      "Completed",
		Description: "March bonus",
	}
}

func assertNewestFirst(t *testing.T, payments []employee.PaymentRecord) {
	t.Helper()
	for i := 1; i < len(payments); i++ {
		assert.GreaterOrEqual(t, payments[i-1].Date, payments[i].Date)
	}
}

func TestPayrollService_Record(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults to today and goes first", func(t *testing.T) {
		repo := newRepo()
		svc := payroll.NewService(repo, clock)

		resp, err := svc.Record(ctx, "1", validRequest())
		require.NoError(t, err)
		assert.Equal(t, "1", resp.EmployeeID)
		assert.Regexp(t, `^PAY-\d{5}$`, resp.ID)
		assert.Equal(t, "2026-03-31", resp.Date)
		assert.Equal(t, 4100.0, resp.Amount)
		assert.Equal(t, "Digital Wallet", resp.PaymentMode)

		e, _ := repo.FindByID(ctx, "1")
		require.Len(t, e.Payments, 4)
		assert.Equal(t, resp.ID, e.Payments[0].ID)
		assertNewestFirst(t, e.Payments)
	})

	t.Run("back-dated payment keeps order", func(t *testing.T) {
		repo := newRepo()
		svc := payroll.NewService(repo, clock)

		req := validRequest()
		req.Date = "2026-02-01"
		req.PeriodFrom = "2026-01-01"
		req.PeriodTo = "2026-02-01"
		resp, err := svc.Record(ctx, "1", req)
		require.NoError(t, err)
		require.NotNil(t, resp.Period)
		assert.Equal(t, "2026-01-01", resp.Period.From)

		e, _ := repo.FindByID(ctx, "1")
		require.Len(t, e.Payments, 4)
		assert.Equal(t, resp.ID, e.Payments[1].ID)
		assert.Equal(t, "PAY-00011", e.Payments[2].ID)
		assertNewestFirst(t, e.Payments)
	})

	t.Run("half a period", func(t *testing.T) {
		req := validRequest()
		req.PeriodFrom = "2026-03-01"

		_, err := payroll.NewService(newRepo(), clock).Record(ctx, "1", req)
		assert.ErrorIs(t, err, payrollerrors.ErrInvalidPeriod)
	})

	t.Run("reversed period", func(t *testing.T) {
		req := validRequest()
		req.PeriodFrom = "2026-03-31"
		req.PeriodTo = "2026-03-01"

		_, err := payroll.NewService(newRepo(), clock).Record(ctx, "1", req)
		assert.ErrorIs(t, err, payrollerrors.ErrInvalidPeriod)
	})

	t.Run("bad date", func(t *testing.T) {
		req := validRequest()
		req.Date = "31/03/2026"

		_, err := payroll.NewService(newRepo(), clock).Record(ctx, "1", req)
		assert.ErrorIs(t, err, payrollerrors.ErrInvalidDateFormat)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := payroll.NewService(newRepo(), clock).Record(ctx, "nonexistent", validRequest())
		assert.ErrorIs(t, err, payrollerrors.ErrEmployeeNotFound)
	})
}

func TestPayrollService_RecordQueuesEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	outbox := kafkaMock.NewMockOutboxRepository(ctrl)
	svc := payroll.NewServiceWithOutbox(newRepo(), outbox, clock)
	ctx := context.Background()

	var queued kafka.OutboxEvent
	outbox.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, e kafka.OutboxEvent) error {
		queued = e
		return nil
	})

	resp, err := svc.Record(ctx, "1", validRequest())
	require.NoError(t, err)

	assert.Equal(t, events.PaymentRecordedTopic, queued.Topic)
	assert.Equal(t, events.PaymentRecordedType, queued.EventType)

	var event events.PaymentRecordedEvent
	require.NoError(t, json.Unmarshal(queued.Payload, &event))
	assert.Equal(t, resp.ID, event.PaymentID)
	assert.Equal(t, "1", event.EmployeeID)
	assert.Equal(t, 4100.0, event.Amount)
	assert.Equal(t, "Completed", event.Status)
}

func TestPayrollService_GetAll(t *testing.T) {
	ctx := context.Background()
	svc := payroll.NewService(newRepo(), clock)

	resp, err := svc.GetAll(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Sarah Johnson", resp.EmployeeName)
	require.Len(t, resp.Payments, 3)
	assert.Equal(t, "PAY-00010", resp.Payments[0].ID)
	assert.Equal(t, 5000.0, resp.TotalPaid)
	assert.Equal(t, 4800.0, resp.TotalPending)

	_, err = svc.GetAll(ctx, "nonexistent")
	assert.ErrorIs(t, err, payrollerrors.ErrEmployeeNotFound)
}

func TestPayrollService_GetPayslip(t *testing.T) {
	ctx := context.Background()
	svc := payroll.NewService(newRepo(), clock)

	pdf, err := svc.GetPayslip(ctx, "1", "PAY-00010")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF-")))

	_, err = svc.GetPayslip(ctx, "1", "PAY-99999")
	assert.ErrorIs(t, err, payrollerrors.ErrPaymentNotFound)

	_, err = svc.GetPayslip(ctx, "nonexistent", "PAY-00010")
	assert.ErrorIs(t, err, payrollerrors.ErrEmployeeNotFound)
}
