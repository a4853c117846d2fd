package employee

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"
)

// Repository owns the working roster. Lookups that miss return ok=false; every
// returned Employee is a snapshot that shares no memory with the stored one.
//
//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	FindAll(ctx context.Context) []Employee
	FindByID(ctx context.Context, id string) (Employee, bool)
	UpdateAttendance(ctx context.Context, employeeID string, status AttendanceStatus, note string) (Employee, bool)
	AddPayment(ctx context.Context, employeeID string, payment PaymentRecord) (Employee, bool)
}

type RepositoryOption func(*memoryRepository)

// WithClock sets the source of "today" for attendance upserts.
func WithClock(now func() time.Time) RepositoryOption {
	return func(r *memoryRepository) {
		if now != nil {
			r.now = now
		}
	}
}

// WithRand sets the source used for payment display ids.
func WithRand(rng *rand.Rand) RepositoryOption {
	return func(r *memoryRepository) {
		if rng != nil {
			r.rng = rng
		}
	}
}

type memoryRepository struct {
	mu        sync.RWMutex
	employees []Employee
	now       func() time.Time
	rng       *rand.Rand
}

// NewMemoryRepository keeps its own copy of employees; later changes to the
// argument are not seen by the repository.
func NewMemoryRepository(employees []Employee, opts ...RepositoryOption) Repository {
	r := &memoryRepository{
		employees: make([]Employee, len(employees)),
		now:       time.Now,
		rng:       rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	for i, e := range employees {
		r.employees[i] = e.clone()
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *memoryRepository) FindAll(ctx context.Context) []Employee {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Employee, len(r.employees))
	for i, e := range r.employees {
		out[i] = e.clone()
	}
	return out
}

func (r *memoryRepository) FindByID(ctx context.Context, id string) (Employee, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e := r.find(id)
	if e == nil {
		return Employee{}, false
	}
	return e.clone(), true
}

// UpdateAttendance upserts today's record: an existing record for today is
// changed in place, otherwise a new one goes to the front. Status policy is the
// caller's job; the status is stored as given.
func (r *memoryRepository) UpdateAttendance(
	ctx context.Context,
	employeeID string,
	status AttendanceStatus,
	note string,
) (Employee, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e := r.find(employeeID)
	if e == nil {
		return Employee{}, false
	}

	now := r.now()
	today := now.Format(DateLayout)

	for i := range e.Attendance {
		rec := &e.Attendance[i]
		if rec.Date != today {
			continue
		}
		rec.Status = status
		rec.Note = note
		if status != AttendanceAbsent && rec.CheckInTime == "" {
			rec.CheckInTime = now.Format(TimeLayout)
		}
		return e.clone(), true
	}

	rec := AttendanceRecord{Date: today, Status: status, Note: note}
	if status != AttendanceAbsent {
		rec.CheckInTime = now.Format(TimeLayout)
	}
	e.Attendance = append([]AttendanceRecord{rec}, e.Attendance...)
	return e.clone(), true
}

// AddPayment assigns a fresh PAY-NNNNN id and stores the payment ahead of every
// record dated on or before it. A payment dated today lands at the front.
func (r *memoryRepository) AddPayment(ctx context.Context, employeeID string, payment PaymentRecord) (Employee, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e := r.find(employeeID)
	if e == nil {
		return Employee{}, false
	}

	used := make(map[string]struct{}, len(e.Payments))
	for _, p := range e.Payments {
		used[p.ID] = struct{}{}
	}
	payment = payment.clone()
	payment.ID = uniquePaymentID(r.rng, used)

	pos := len(e.Payments)
	for i, p := range e.Payments {
		if p.Date <= payment.Date {
			pos = i
			break
		}
	}
	e.Payments = append(e.Payments, PaymentRecord{})
	copy(e.Payments[pos+1:], e.Payments[pos:])
	e.Payments[pos] = payment

	return e.clone(), true
}

func (r *memoryRepository) find(id string) *Employee {
	for i := range r.employees {
		if r.employees[i].ID == id {
			return &r.employees[i]
		}
	}
	return nil
}
