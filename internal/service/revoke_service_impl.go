package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/worklog/internal/db"
	"github.com/alexanderramin/worklog/internal/domain"
	"github.com/alexanderramin/worklog/internal/repository"
)

// MaxRevoke is the hard cap on how many actions one revoke may reverse.
const MaxRevoke = 5

type revokeService struct {
	actions  repository.ActionLogRepo
	uow      db.UnitOfWork
	now      func() time.Time
	observer UseCaseObserver
}

// NewRevokeService creates the revoke engine. A revoke holds one
// transaction across all of its inverse operations plus the compensating
// ledger entry, so it either applies fully or not at all.
func NewRevokeService(actions repository.ActionLogRepo, uow db.UnitOfWork, opts ...Option) RevokeService {
	o := newOptions(opts)
	return &revokeService{
		actions:  actions,
		uow:      uow,
		now:      o.now,
		observer: o.observer,
	}
}

func (s *revokeService) History(ctx context.Context, date string) ([]*domain.ActionLogEntry, error) {
	return s.actions.ListBySession(ctx, date)
}

// Revoke reverses the n most recent actions for the date, newest first,
// restoring each entry's pre-state snapshot, then appends one compensating
// revoke entry listing the reversed seqs.
func (s *revokeService) Revoke(ctx context.Context, date string, n int) (*domain.ActionLogEntry, error) {
	started := time.Now()
	entry, err := s.revoke(ctx, date, n)
	observe(ctx, s.observer, "revoke", started, err, map[string]any{"date": date, "n": n})
	return entry, err
}

func (s *revokeService) revoke(ctx context.Context, date string, n int) (*domain.ActionLogEntry, error) {
	if n < 1 || n > MaxRevoke {
		return nil, fmt.Errorf("revoke %d actions (max %d): %w", n, MaxRevoke, domain.ErrRevokeOutOfRange)
	}

	now := s.now()
	var compensating *domain.ActionLogEntry

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		r := newTxRepos(tx)

		tail, err := r.actions.Tail(ctx, date, n)
		if err != nil {
			return err
		}
		if len(tail) < n {
			return fmt.Errorf("revoke %d actions but only %d logged: %w", n, len(tail), domain.ErrRevokeOutOfRange)
		}

		// The targeted entries must be a contiguous suffix of revocable
		// actions ending at the log head. A revoke or day reset in the
		// suffix blocks reversal past it.
		for i, e := range tail {
			if !e.Revocable() {
				return fmt.Errorf("entry seq %d (%s) is not revokable: %w", e.Seq, e.Action, domain.ErrRevokeOutOfRange)
			}
			if i > 0 && e.Seq != tail[i-1].Seq-1 {
				return fmt.Errorf("log entries %d..%d are not contiguous: %w", e.Seq, tail[i-1].Seq, domain.ErrRevokeOutOfRange)
			}
		}

		session, err := r.sessions.GetByDate(ctx, date)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("no session for %s: %w", date, domain.ErrRevokeConflict)
			}
			return err
		}

		preRevoke := domain.SnapshotOf(session)
		revokedSeqs := make([]int, 0, n)

		for _, e := range tail {
			if err := s.applyInverse(ctx, r, session, e, now); err != nil {
				return err
			}
			revokedSeqs = append(revokedSeqs, e.Seq)
		}

		if err := r.sessions.Update(ctx, session); err != nil {
			return err
		}

		compensating = &domain.ActionLogEntry{
			SessionDate: date,
			Action:      domain.ActionRevoke,
			Timestamp:   now,
			Snapshot:    preRevoke,
			RevokedSeqs: revokedSeqs,
			CreatedAt:   now.UTC(),
		}
		return appendEntry(ctx, r, compensating)
	})
	if err != nil {
		return nil, err
	}
	return compensating, nil
}

// applyInverse reverses a single logged action against the session and the
// break rows, verifying the rows still match the snapshot. Any mismatch
// means the ledger and the current state have diverged, which aborts the
// whole revoke.
func (s *revokeService) applyInverse(ctx context.Context, r txRepos, session *domain.WorkSession, e *domain.ActionLogEntry, now time.Time) error {
	switch e.Action {
	case domain.ActionStartDay, domain.ActionEndDay:
		// Pure session-row actions: restoring the snapshot is the inverse.

	case domain.ActionStop:
		// Stop opened a break; the inverse removes it. The break must
		// still exist and still be open.
		if e.Snapshot.BreakID == nil {
			return fmt.Errorf("stop entry seq %d has no break reference: %w", e.Seq, domain.ErrRevokeConflict)
		}
		b, err := r.breaks.GetByID(ctx, *e.Snapshot.BreakID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("break %s from entry seq %d no longer exists: %w", *e.Snapshot.BreakID, e.Seq, domain.ErrRevokeConflict)
			}
			return err
		}
		if !b.Open() {
			return fmt.Errorf("break %s was closed after entry seq %d: %w", b.ID, e.Seq, domain.ErrRevokeConflict)
		}
		if err := r.breaks.Delete(ctx, b.ID); err != nil {
			return err
		}

	case domain.ActionContinue:
		// Continue closed a break; the inverse reopens it. The break must
		// still exist and be closed.
		if e.Snapshot.BreakID == nil {
			return fmt.Errorf("continue entry seq %d has no break reference: %w", e.Seq, domain.ErrRevokeConflict)
		}
		b, err := r.breaks.GetByID(ctx, *e.Snapshot.BreakID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("break %s from entry seq %d no longer exists: %w", *e.Snapshot.BreakID, e.Seq, domain.ErrRevokeConflict)
			}
			return err
		}
		if b.Open() {
			return fmt.Errorf("break %s is already open: %w", b.ID, domain.ErrRevokeConflict)
		}
		if err := r.breaks.Reopen(ctx, b.ID); err != nil {
			return err
		}

	default:
		return fmt.Errorf("entry seq %d (%s) is not revokable: %w", e.Seq, e.Action, domain.ErrRevokeOutOfRange)
	}

	e.Snapshot.RestoreTo(session, now)
	return nil
}
