package payroll

import (
	"context"
	"encoding/json"
	"time"

	"go-staffdesk/internal/employee"
	"go-staffdesk/internal/events"
	"go-staffdesk/internal/messaging/kafka"
	payrollerrors "go-staffdesk/internal/payroll/errors"
	"go-staffdesk/internal/shared/apperror"
	"go-staffdesk/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	Record(ctx context.Context, employeeID string, req CreatePaymentRequest) (PaymentResponse, error)
	GetAll(ctx context.Context, employeeID string) (PaymentListResponse, error)
	GetPayslip(ctx context.Context, employeeID, paymentID string) ([]byte, error)
}

type service struct {
	repo   employee.Repository
	outbox kafka.OutboxRepository
	now    func() time.Time
	logger *zap.Logger
}

func NewService(repo employee.Repository, now func() time.Time, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(repo, nil, now, logger...)
}

func NewServiceWithOutbox(
	repo employee.Repository,
	outbox kafka.OutboxRepository,
	now func() time.Time,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	if now == nil {
		now = time.Now
	}
	return &service{repo: repo, outbox: outbox, now: now, logger: l}
}

// Record stores a payment for the employee. Amount and enum checks belong to
// request binding; Record only resolves defaults and date consistency.
func (s *service) Record(ctx context.Context, employeeID string, req CreatePaymentRequest) (PaymentResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	date := req.Date
	if date == "" {
		date = s.now().Format(employee.DateLayout)
	}
	if !validDate(date) {
		return PaymentResponse{}, payrollerrors.ErrInvalidDateFormat
	}

	payment := employee.PaymentRecord{
		Date:          date,
		Amount:        req.Amount,
		PaymentMode:   employee.PaymentMode(req.PaymentMode),
		Status:        employee.PaymentStatus(req.Status),
		Description:   req.Description,
		TaxDeduction:  req.TaxDeduction,
		BonusAmount:   req.BonusAmount,
		OvertimeHours: req.OvertimeHours,
		OvertimeRate:  req.OvertimeRate,
	}

	if req.PeriodFrom != "" || req.PeriodTo != "" {
		if req.PeriodFrom == "" || req.PeriodTo == "" || req.PeriodFrom > req.PeriodTo ||
			!validDate(req.PeriodFrom) || !validDate(req.PeriodTo) {
			return PaymentResponse{}, payrollerrors.ErrInvalidPeriod
		}
		payment.Period = &employee.Period{From: req.PeriodFrom, To: req.PeriodTo}
	}

	updated, ok := s.repo.AddPayment(ctx, employeeID, payment)
	if !ok {
		log.Warn("record payment for unknown employee", zap.String("employee_id", employeeID))
		return PaymentResponse{}, payrollerrors.ErrEmployeeNotFound
	}

	stored, ok := insertedPayment(updated, date)
	if !ok {
		return PaymentResponse{}, apperror.ErrInternal
	}

	log.Info("payment recorded",
		zap.String("employee_id", employeeID),
		zap.String("payment_id", stored.ID),
		zap.Float64("amount", stored.Amount),
		zap.String("status", string(stored.Status)),
	)

	s.publishRecorded(ctx, employeeID, stored)

	return PaymentResponse{
		EmployeeID:            employeeID,
		PaymentRecordResponse: employee.MapPayment(stored),
	}, nil
}

func (s *service) GetAll(ctx context.Context, employeeID string) (PaymentListResponse, error) {
	e, ok := s.repo.FindByID(ctx, employeeID)
	if !ok {
		return PaymentListResponse{}, payrollerrors.ErrEmployeeNotFound
	}

	resp := PaymentListResponse{
		EmployeeID:   e.ID,
		EmployeeName: e.Name,
		Payments:     make([]employee.PaymentRecordResponse, 0, len(e.Payments)),
	}
	for _, p := range e.Payments {
		switch p.Status {
		case employee.PaymentCompleted:
			resp.TotalPaid += p.Amount
		case employee.PaymentPending:
			resp.TotalPending += p.Amount
		}
		resp.Payments = append(resp.Payments, employee.MapPayment(p))
	}
	return resp, nil
}

func (s *service) GetPayslip(ctx context.Context, employeeID, paymentID string) ([]byte, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	e, ok := s.repo.FindByID(ctx, employeeID)
	if !ok {
		return nil, payrollerrors.ErrEmployeeNotFound
	}
	p, ok := e.Payment(paymentID)
	if !ok {
		return nil, payrollerrors.ErrPaymentNotFound
	}

	pdf, err := buildPayslipPDF(e, p, s.now())
	if err != nil {
		log.Error("build payslip failed",
			zap.String("employee_id", employeeID),
			zap.String("payment_id", paymentID),
			zap.Error(err),
		)
		return nil, apperror.Wrap(err, payrollerrors.ErrPayslipGeneration)
	}
	return pdf, nil
}

func (s *service) publishRecorded(ctx context.Context, employeeID string, p employee.PaymentRecord) {
	if s.outbox == nil {
		return
	}
	log := contextutil.GetLogger(ctx, s.logger)
	rid := contextutil.GetRequestID(ctx)

	event := events.PaymentRecordedEvent{
		EventType:  events.PaymentRecordedType,
		RequestID:  rid,
		EmployeeID: employeeID,
		PaymentID:  p.ID,
		Amount:     p.Amount,
		Status:     string(p.Status),
		OccurredAt: s.now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		log.Error("marshal payment event failed", zap.Error(err))
		return
	}

	if err := s.outbox.Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "employee",
		AggregateID:   employeeID,
		EventType:     event.EventType,
		Topic:         events.PaymentRecordedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		log.Error("queue payment event failed",
			zap.String("employee_id", employeeID),
			zap.String("payment_id", p.ID),
			zap.Error(err),
		)
	}
}

// insertedPayment finds the record AddPayment just stored: it sits ahead of
// every payment dated on or before it.
func insertedPayment(e employee.Employee, date string) (employee.PaymentRecord, bool) {
	for _, p := range e.Payments {
		if p.Date <= date {
			return p, true
		}
	}
	return employee.PaymentRecord{}, false
}

func validDate(s string) bool {
	_, err := time.Parse(employee.DateLayout, s)
	return err == nil
}
