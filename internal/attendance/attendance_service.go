package attendance

import (
	"context"
	"encoding/json"
	"time"

	attendanceerrors "go-staffdesk/internal/attendance/errors"
	"go-staffdesk/internal/employee"
	"go-staffdesk/internal/events"
	"go-staffdesk/internal/messaging/kafka"
	"go-staffdesk/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	MarkToday(ctx context.Context, employeeID string, req MarkAttendanceRequest) (TodayAttendanceResponse, error)
	GetToday(ctx context.Context, employeeID string) (TodayAttendanceResponse, error)
	GetHistory(ctx context.Context, employeeID string, filter HistoryFilter) ([]employee.AttendanceRecordResponse, error)
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

// NewServiceWithOutbox also queues an attendance_marked event for every upsert.
// now must tell the same day as the repository clock.
func NewServiceWithOutbox(
	repo employee.Repository,
	outbox kafka.OutboxRepository,
	now func() time.Time,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	if now == nil {
		now = time.Now
	}
	return &service{repo: repo, outbox: outbox, now: now, logger: l}
}

func (s *service) MarkToday(ctx context.Context, employeeID string, req MarkAttendanceRequest) (TodayAttendanceResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	requested := employee.AttendanceStatus(req.Status)
	if !validStatus(requested) {
		return TodayAttendanceResponse{}, attendanceerrors.ErrInvalidStatus
	}

	e, ok := s.repo.FindByID(ctx, employeeID)
	if !ok {
		log.Warn("mark attendance for unknown employee", zap.String("employee_id", employeeID))
		return TodayAttendanceResponse{}, attendanceerrors.ErrEmployeeNotFound
	}

	status, note := ApplyStatusPolicy(e.Status, requested, req.Note)
	overridden := status != requested

	updated, ok := s.repo.UpdateAttendance(ctx, employeeID, status, note)
	if !ok {
		return TodayAttendanceResponse{}, attendanceerrors.ErrEmployeeNotFound
	}

	today := s.now().Format(employee.DateLayout)
	rec, found := updated.AttendanceOn(today)
	if !found && len(updated.Attendance) > 0 {
		// repository clock already moved to the next day
		rec = updated.Attendance[0]
	}

	if overridden {
		log.Info("attendance status overridden",
			zap.String("employee_id", employeeID),
			zap.String("employee_status", string(e.Status)),
			zap.String("requested", string(requested)),
			zap.String("recorded", string(status)),
		)
	}

	s.publishMarked(ctx, employeeID, rec.Date, requested, status)

	resp := newTodayResponse(updated, rec.Date)
	view := employee.MapAttendance(rec)
	resp.Recorded = true
	resp.Attendance = &view
	resp.RequestedStatus = string(requested)
	resp.Overridden = overridden
	return resp, nil
}

func (s *service) GetToday(ctx context.Context, employeeID string) (TodayAttendanceResponse, error) {
	e, ok := s.repo.FindByID(ctx, employeeID)
	if !ok {
		return TodayAttendanceResponse{}, attendanceerrors.ErrEmployeeNotFound
	}

	today := s.now().Format(employee.DateLayout)
	resp := newTodayResponse(e, today)

	rec, ok := employee.TodayAttendance(e, today)
	if !ok {
		return resp, nil
	}
	_, stored := e.AttendanceOn(today)

	view := employee.MapAttendance(rec)
	resp.Recorded = true
	resp.Synthesized = !stored
	resp.Attendance = &view
	return resp, nil
}

func (s *service) GetHistory(ctx context.Context, employeeID string, filter HistoryFilter) ([]employee.AttendanceRecordResponse, error) {
	e, ok := s.repo.FindByID(ctx, employeeID)
	if !ok {
		return nil, attendanceerrors.ErrEmployeeNotFound
	}

	res := make([]employee.AttendanceRecordResponse, 0, len(e.Attendance))
	for _, r := range e.Attendance {
		if filter.Status != "" && string(r.Status) != filter.Status {
			continue
		}
		res = append(res, employee.MapAttendance(r))
	}
	return res, nil
}

// publishMarked queues the event after the upsert. The roster is already
// updated at this point, so a failure is logged and the request still succeeds.
func (s *service) publishMarked(
	ctx context.Context,
	employeeID, date string,
	requested, recorded employee.AttendanceStatus,
) {
	if s.outbox == nil {
		return
	}
	log := contextutil.GetLogger(ctx, s.logger)
	rid := contextutil.GetRequestID(ctx)

	event := events.AttendanceMarkedEvent{
		EventType:       events.AttendanceMarkedType,
		RequestID:       rid,
		EmployeeID:      employeeID,
		Date:            date,
		RequestedStatus: string(requested),
		RecordedStatus:  string(recorded),
		Overridden:      requested != recorded,
		OccurredAt:      s.now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		log.Error("marshal attendance event failed", zap.Error(err))
		return
	}

	if err := s.outbox.Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "employee",
		AggregateID:   employeeID,
		EventType:     event.EventType,
		Topic:         events.AttendanceMarkedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		log.Error("queue attendance event failed",
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
	}
}

func newTodayResponse(e employee.Employee, date string) TodayAttendanceResponse {
	return TodayAttendanceResponse{
		EmployeeID:     e.ID,
		EmployeeName:   e.Name,
		EmployeeStatus: string(e.Status),
		Date:           date,
	}
}
