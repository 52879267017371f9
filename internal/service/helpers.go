package service

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/worklog/internal/db"
	"github.com/alexanderramin/worklog/internal/domain"
	"github.com/alexanderramin/worklog/internal/repository"
)

// Option configures a service at construction time.
type Option func(*options)

type options struct {
	now          func() time.Time
	observer     UseCaseObserver
	normOverride int
}

func newOptions(opts []Option) options {
	o := options{
		now:      time.Now,
		observer: NoopUseCaseObserver{},
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithClock overrides the wall clock. Tests use this to drive transitions
// with deterministic timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// WithObserver attaches a use-case observer.
func WithObserver(obs UseCaseObserver) Option {
	return func(o *options) {
		if obs != nil {
			o.observer = obs
		}
	}
}

// WithNormOverride forces the daily work norm for newly created sessions,
// taking precedence over the persisted settings row. Zero or negative
// values are ignored.
func WithNormOverride(seconds int) Option {
	return func(o *options) {
		if seconds > 0 {
			o.normOverride = seconds
		}
	}
}

// txRepos bundles the tx-scoped repositories used by a transition.
type txRepos struct {
	sessions repository.SessionRepo
	breaks   repository.BreakRepo
	actions  repository.ActionLogRepo
	settings repository.SettingsRepo
}

func newTxRepos(tx db.DBTX) txRepos {
	return txRepos{
		sessions: repository.NewSQLiteSessionRepo(tx),
		breaks:   repository.NewSQLiteBreakRepo(tx),
		actions:  repository.NewSQLiteActionLogRepo(tx),
		settings: repository.NewSQLiteSettingsRepo(tx),
	}
}

// loadOrCreateSession fetches the session for the date, creating a fresh
// not-started row on first touch. The work norm comes from the override
// when one is configured, then the persisted settings, then the compiled
// default.
func loadOrCreateSession(ctx context.Context, r txRepos, date string, normOverride int, now time.Time) (*domain.WorkSession, error) {
	s, err := r.sessions.GetByDate(ctx, date)
	if err == nil {
		return s, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	norm := normOverride
	if norm <= 0 {
		norm = domain.DefaultWorkNormSeconds
		if settings, serr := r.settings.Get(ctx); serr == nil {
			norm = settings.WorkNormSeconds
		}
	}

	s = domain.NewWorkSession(date, norm, now)
	if err := r.sessions.Create(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

// appendEntry writes one ledger entry with the next seq for the session.
func appendEntry(ctx context.Context, r txRepos, e *domain.ActionLogEntry) error {
	seq, err := r.actions.NextSeq(ctx, e.SessionDate)
	if err != nil {
		return err
	}
	e.Seq = seq
	return r.actions.Append(ctx, e)
}
