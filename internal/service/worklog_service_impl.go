package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/worklog/internal/db"
	"github.com/alexanderramin/worklog/internal/domain"
	"github.com/alexanderramin/worklog/internal/repository"
	"github.com/google/uuid"
)

type worklogService struct {
	sessions     repository.SessionRepo
	breaks       repository.BreakRepo
	uow          db.UnitOfWork
	now          func() time.Time
	observer     UseCaseObserver
	normOverride int
}

// NewWorklogService creates the session state machine. The service holds
// no cached session state: every transition reloads the row inside its
// own transaction, so a failed commit never leaves the core out of sync
// with the store.
func NewWorklogService(sessions repository.SessionRepo, breaks repository.BreakRepo, uow db.UnitOfWork, opts ...Option) WorklogService {
	o := newOptions(opts)
	return &worklogService{
		sessions:     sessions,
		breaks:       breaks,
		uow:          uow,
		now:          o.now,
		observer:     o.observer,
		normOverride: o.normOverride,
	}
}

// transition runs one state-machine step: load the session, validate the
// action against the current status, apply fn, and append the ledger entry
// carrying the pre-state snapshot. All inside a single transaction. The
// clock is read once so every timestamp of the step agrees.
func (s *worklogService) transition(ctx context.Context, date string, action domain.ActionType, fn func(ctx context.Context, r txRepos, session *domain.WorkSession, snapshot *domain.Snapshot, now time.Time) error) (*domain.WorkSession, error) {
	now := s.now()
	var result *domain.WorkSession

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		r := newTxRepos(tx)

		session, err := loadOrCreateSession(ctx, r, date, s.normOverride, now)
		if err != nil {
			return err
		}

		if !session.CanPerform(action) {
			return fmt.Errorf("%s in state %s: %w", action, session.Status, domain.ErrInvalidTransition)
		}

		snapshot := domain.SnapshotOf(session)
		if err := fn(ctx, r, session, &snapshot, now); err != nil {
			return err
		}

		session.UpdatedAt = now
		if err := r.sessions.Update(ctx, session); err != nil {
			return err
		}

		entry := &domain.ActionLogEntry{
			SessionDate: date,
			Action:      action,
			Timestamp:   now,
			Snapshot:    snapshot,
			CreatedAt:   now.UTC(),
		}
		if err := appendEntry(ctx, r, entry); err != nil {
			return err
		}

		result = session
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *worklogService) StartDay(ctx context.Context, date string) (*domain.WorkSession, error) {
	started := time.Now()
	session, err := s.transition(ctx, date, domain.ActionStartDay,
		func(ctx context.Context, r txRepos, session *domain.WorkSession, _ *domain.Snapshot, now time.Time) error {
			session.StartTime = &now
			session.Status = domain.StatusRunning
			return nil
		})
	observe(ctx, s.observer, "start_day", started, err, map[string]any{"date": date})
	return session, err
}

func (s *worklogService) Stop(ctx context.Context, date string, breakType domain.BreakType) (*domain.WorkSession, error) {
	started := time.Now()
	if !domain.ValidBreakTypes[string(breakType)] {
		breakType = domain.BreakGeneral
	}

	session, err := s.transition(ctx, date, domain.ActionStop,
		func(ctx context.Context, r txRepos, session *domain.WorkSession, snapshot *domain.Snapshot, now time.Time) error {
			b := &domain.BreakPeriod{
				ID:          uuid.New().String(),
				SessionDate: date,
				Type:        breakType,
				StartTime:   now,
				CreatedAt:   now.UTC(),
			}
			if err := r.breaks.Create(ctx, b); err != nil {
				return err
			}

			// The snapshot records the break this action opened so a
			// revoke can remove it again.
			snapshot.BreakID = &b.ID
			snapshot.BreakType = &b.Type
			snapshot.BreakStartTime = &b.StartTime

			session.Status = domain.StatusOnBreak
			return nil
		})
	observe(ctx, s.observer, "stop", started, err, map[string]any{"date": date, "break_type": string(breakType)})
	return session, err
}

func (s *worklogService) ContinueWork(ctx context.Context, date string) (*domain.WorkSession, error) {
	started := time.Now()
	session, err := s.transition(ctx, date, domain.ActionContinue,
		func(ctx context.Context, r txRepos, session *domain.WorkSession, snapshot *domain.Snapshot, now time.Time) error {
			open, err := r.breaks.GetOpen(ctx, date)
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					return fmt.Errorf("session %s is on break but has no open break period: %w", date, err)
				}
				return err
			}

			if err := r.breaks.Close(ctx, open.ID, now); err != nil {
				return err
			}

			snapshot.BreakID = &open.ID
			snapshot.BreakType = &open.Type
			snapshot.BreakStartTime = &open.StartTime

			session.BreakSeconds += open.DurationSeconds(now)
			session.Status = domain.StatusRunning
			return nil
		})
	observe(ctx, s.observer, "continue_work", started, err, map[string]any{"date": date})
	return session, err
}

func (s *worklogService) EndDay(ctx context.Context, date string) (*domain.WorkSession, error) {
	started := time.Now()
	session, err := s.transition(ctx, date, domain.ActionEndDay,
		func(ctx context.Context, r txRepos, session *domain.WorkSession, _ *domain.Snapshot, now time.Time) error {
			session.Finalize(now)
			return nil
		})
	observe(ctx, s.observer, "end_day", started, err, map[string]any{"date": date})
	return session, err
}

// ResetDay wipes the day back to not_started: break rows are deleted and
// the accumulators zeroed, but the ledger keeps every prior entry plus the
// reset's own record. Double confirmation is the caller's responsibility.
func (s *worklogService) ResetDay(ctx context.Context, date string) (*domain.WorkSession, error) {
	started := time.Now()
	session, err := s.transition(ctx, date, domain.ActionResetDay,
		func(ctx context.Context, r txRepos, session *domain.WorkSession, _ *domain.Snapshot, now time.Time) error {
			if err := r.breaks.DeleteBySession(ctx, date); err != nil {
				return err
			}
			session.Reset(now)
			return nil
		})
	observe(ctx, s.observer, "reset_day", started, err, map[string]any{"date": date})
	return session, err
}

// Status computes the live time report for a date. Read-only; sessions
// that were never touched report as not started.
func (s *worklogService) Status(ctx context.Context, date string) (*domain.TimeReport, error) {
	session, err := s.sessions.GetByDate(ctx, date)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			norm := s.normOverride
			if norm <= 0 {
				norm = domain.DefaultWorkNormSeconds
			}
			report := domain.ComputeReport(domain.NewWorkSession(date, norm, s.now()), nil, s.now())
			return &report, nil
		}
		return nil, err
	}

	breaks, err := s.breaks.ListBySession(ctx, date)
	if err != nil {
		return nil, err
	}

	report := domain.ComputeReport(session, breaks, s.now())
	return &report, nil
}
