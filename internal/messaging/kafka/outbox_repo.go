package kafka

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"
)

const (
	OutboxStatusPending = "pending"
	OutboxStatusSent    = "sent"
	OutboxStatusFailed  = "failed"

	maxErrorLength = 500
	retryStep      = 15 * time.Second
	maxRetrySteps  = 10
)

var (
	ErrOutboxEventNotFound = errors.New("outbox event not found")
	ErrOutboxEventExists   = errors.New("outbox event already exists")
)

type OutboxEvent struct {
	ID            string
	RequestID     string
	AggregateType string
	AggregateID   string
	EventType     string
	Topic         string
	Payload       []byte
	Status        string
	RetryCount    int
	LastError     string
	NextRetryAt   time.Time
	CreatedAt     time.Time
	ProcessedAt   time.Time
}

//go:generate mockgen -source=outbox_repo.go -destination=mock/outbox_repo_mock.go -package=mock

type OutboxRepository interface {
	Create(ctx context.Context, event OutboxEvent) error
	ListPending(ctx context.Context, limit int) ([]OutboxEvent, error)
	MarkSent(ctx context.Context, id string) error
	MarkFailed(ctx context.Context, id string, reason string) error
}

// outboxRepository keeps events in process memory. Events queued before a
// restart are lost together with the roster they describe.
type outboxRepository struct {
	mu     sync.Mutex
	events map[string]*OutboxEvent
	now    func() time.Time
}

func NewOutboxRepository(now func() time.Time) OutboxRepository {
	if now == nil {
		now = time.Now
	}
	return &outboxRepository{
		events: make(map[string]*OutboxEvent),
		now:    now,
	}
}

func (r *outboxRepository) Create(ctx context.Context, event OutboxEvent) error {
	if event.Status == "" {
		event.Status = OutboxStatusPending
	}
	if err := ValidateOutboxEvent(event); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.events[event.ID]; ok {
		return fmt.Errorf("%w: %s", ErrOutboxEventExists, event.ID)
	}

	event.Payload = append([]byte(nil), event.Payload...)
	if event.CreatedAt.IsZero() {
		event.CreatedAt = r.now()
	}
	r.events[event.ID] = &event
	return nil
}

// ListPending returns pending events and failed events whose retry time has
// come, oldest first.
func (r *outboxRepository) ListPending(ctx context.Context, limit int) ([]OutboxEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	due := make([]OutboxEvent, 0, len(r.events))
	for _, e := range r.events {
		switch e.Status {
		case OutboxStatusPending:
		case OutboxStatusFailed:
			if e.NextRetryAt.After(now) {
				continue
			}
		default:
			continue
		}
		c := *e
		c.Payload = append([]byte(nil), e.Payload...)
		due = append(due, c)
	}

	sort.Slice(due, func(i, j int) bool {
		if due[i].CreatedAt.Equal(due[j].CreatedAt) {
			return due[i].ID < due[j].ID
		}
		return due[i].CreatedAt.Before(due[j].CreatedAt)
	})

	if limit > 0 && len(due) > limit {
		due = due[:limit]
	}
	return due, nil
}

func (r *outboxRepository) MarkSent(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.events[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrOutboxEventNotFound, id)
	}
	e.Status = OutboxStatusSent
	e.LastError = ""
	e.ProcessedAt = r.now()
	return nil
}

// MarkFailed schedules the next attempt with a linear backoff of 15s per
// failure, capped at ten steps.
func (r *outboxRepository) MarkFailed(ctx context.Context, id string, reason string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.events[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrOutboxEventNotFound, id)
	}
	if len(reason) > maxErrorLength {
		reason = reason[:maxErrorLength]
	}

	e.Status = OutboxStatusFailed
	e.RetryCount++
	e.LastError = reason
	e.NextRetryAt = r.now().Add(time.Duration(min(e.RetryCount, maxRetrySteps)) * retryStep)
	return nil
}

func ValidateOutboxEvent(event OutboxEvent) error {
	if event.ID == "" {
		return errors.New("outbox id is required")
	}
	if event.Topic == "" {
		return errors.New("outbox topic is required")
	}
	if len(event.Payload) == 0 {
		return errors.New("outbox payload is required")
	}
	switch event.Status {
	case OutboxStatusPending, OutboxStatusSent, OutboxStatusFailed:
		return nil
	default:
		return fmt.Errorf("invalid outbox status: %s", event.Status)
	}
}
