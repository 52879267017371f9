package testutil

import (
	"sync"
	"time"

	"github.com/alexanderramin/worklog/internal/domain"
	"github.com/google/uuid"
)

// Session options
type SessionOption func(*domain.WorkSession)

func WithStatus(s domain.SessionStatus) SessionOption {
	return func(w *domain.WorkSession) {
		w.Status = s
	}
}

func WithStartTime(t time.Time) SessionOption {
	return func(w *domain.WorkSession) {
		w.StartTime = &t
	}
}

func WithEndTime(t time.Time) SessionOption {
	return func(w *domain.WorkSession) {
		w.EndTime = &t
	}
}

func WithBreakSeconds(s int) SessionOption {
	return func(w *domain.WorkSession) {
		w.BreakSeconds = s
	}
}

func WithWorkSeconds(s int) SessionOption {
	return func(w *domain.WorkSession) {
		w.WorkSeconds = s
	}
}

func WithWorkNorm(s int) SessionOption {
	return func(w *domain.WorkSession) {
		w.WorkNormSeconds = s
	}
}

func NewTestSession(date string, opts ...SessionOption) *domain.WorkSession {
	now := time.Now().UTC()
	s := domain.NewWorkSession(date, domain.DefaultWorkNormSeconds, now)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Break options
type BreakOption func(*domain.BreakPeriod)

func WithBreakType(t domain.BreakType) BreakOption {
	return func(b *domain.BreakPeriod) {
		b.Type = t
	}
}

func WithBreakStart(t time.Time) BreakOption {
	return func(b *domain.BreakPeriod) {
		b.StartTime = t
	}
}

func WithBreakEnd(t time.Time) BreakOption {
	return func(b *domain.BreakPeriod) {
		b.EndTime = &t
	}
}

func NewTestBreak(date string, opts ...BreakOption) *domain.BreakPeriod {
	now := time.Now().UTC()
	b := &domain.BreakPeriod{
		ID:          uuid.New().String(),
		SessionDate: date,
		Type:        domain.BreakGeneral,
		StartTime:   now,
		CreatedAt:   now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// FixedClock is a settable clock for driving transitions with exact
// timestamps. Pass its Now method to service.WithClock.
type FixedClock struct {
	mu  sync.Mutex
	now time.Time
}

func NewFixedClock(start time.Time) *FixedClock {
	return &FixedClock{now: start}
}

func (c *FixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Set moves the clock to the given instant.
func (c *FixedClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// Advance moves the clock forward by d.
func (c *FixedClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
