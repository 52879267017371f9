package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/worklog/internal/domain"
)

type SessionRepo interface {
	Create(ctx context.Context, s *domain.WorkSession) error
	GetByDate(ctx context.Context, date string) (*domain.WorkSession, error)
	Update(ctx context.Context, s *domain.WorkSession) error
	ListRange(ctx context.Context, from, to string) ([]*domain.WorkSession, error)
}

type BreakRepo interface {
	Create(ctx context.Context, b *domain.BreakPeriod) error
	GetByID(ctx context.Context, id string) (*domain.BreakPeriod, error)
	ListBySession(ctx context.Context, date string) ([]*domain.BreakPeriod, error)
	GetOpen(ctx context.Context, date string) (*domain.BreakPeriod, error)
	Close(ctx context.Context, id string, endTime time.Time) error
	Reopen(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	DeleteBySession(ctx context.Context, date string) error
}

type ActionLogRepo interface {
	Append(ctx context.Context, e *domain.ActionLogEntry) error
	Tail(ctx context.Context, date string, n int) ([]*domain.ActionLogEntry, error)
	ListBySession(ctx context.Context, date string) ([]*domain.ActionLogEntry, error)
	NextSeq(ctx context.Context, date string) (int, error)
}

type SettingsRepo interface {
	Get(ctx context.Context) (*domain.Settings, error)
	Upsert(ctx context.Context, s *domain.Settings) error
}
