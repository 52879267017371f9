package service

import (
	"context"

	"github.com/alexanderramin/worklog/internal/domain"
)

// WorklogService owns the lifecycle of a day's tracking session. Every
// transition runs as one transaction: the row mutations and the ledger
// append commit or fail together.
type WorklogService interface {
	StartDay(ctx context.Context, date string) (*domain.WorkSession, error)
	Stop(ctx context.Context, date string, breakType domain.BreakType) (*domain.WorkSession, error)
	ContinueWork(ctx context.Context, date string) (*domain.WorkSession, error)
	EndDay(ctx context.Context, date string) (*domain.WorkSession, error)
	ResetDay(ctx context.Context, date string) (*domain.WorkSession, error)
	Status(ctx context.Context, date string) (*domain.TimeReport, error)
}

// RevokeService reverses the most recent ledger actions from their stored
// pre-state snapshots.
type RevokeService interface {
	Revoke(ctx context.Context, date string, n int) (*domain.ActionLogEntry, error)
	History(ctx context.Context, date string) ([]*domain.ActionLogEntry, error)
}

// RangeReport is the read-only view of finalized sessions consumed by
// exporters and the report command.
type RangeReport struct {
	From     string
	To       string
	Sessions []*domain.WorkSession
	Breaks   []*domain.BreakPeriod
	Days     []domain.DailyStats

	TotalWorkSeconds     int
	TotalBreakSeconds    int
	TotalOvertimeSeconds int
}

type ReportService interface {
	Range(ctx context.Context, from, to string) (*RangeReport, error)
}

type SettingsService interface {
	Get(ctx context.Context) (*domain.Settings, error)
	Update(ctx context.Context, s *domain.Settings) error
}
