package domain

import "time"

// Snapshot captures the session state immediately before an action, with
// enough detail to reverse it. The entry's Action is the discriminant:
// stop and continue entries additionally carry the affected break period.
type Snapshot struct {
	Status          SessionStatus
	StartTime       *time.Time
	EndTime         *time.Time
	WorkSeconds     int
	BreakSeconds    int
	OvertimeSeconds int

	// Break fields, set for stop (the break that was opened) and continue
	// (the break that was closed).
	BreakID        *string
	BreakType      *BreakType
	BreakStartTime *time.Time
	BreakEndTime   *time.Time
}

// SnapshotOf captures the reversible fields of a session.
func SnapshotOf(s *WorkSession) Snapshot {
	return Snapshot{
		Status:          s.Status,
		StartTime:       s.StartTime,
		EndTime:         s.EndTime,
		WorkSeconds:     s.WorkSeconds,
		BreakSeconds:    s.BreakSeconds,
		OvertimeSeconds: s.OvertimeSeconds,
	}
}

// RestoreTo writes the snapshot's session fields back onto the session.
func (sn Snapshot) RestoreTo(s *WorkSession, now time.Time) {
	s.Status = sn.Status
	s.StartTime = sn.StartTime
	s.EndTime = sn.EndTime
	s.WorkSeconds = sn.WorkSeconds
	s.BreakSeconds = sn.BreakSeconds
	s.OvertimeSeconds = sn.OvertimeSeconds
	s.UpdatedAt = now
}

// ActionLogEntry is one append-only ledger record. Seq is strictly
// increasing per session and never reused, even across a day reset.
type ActionLogEntry struct {
	ID          int64
	SessionDate string
	Seq         int
	Action      ActionType
	Timestamp   time.Time
	Snapshot    Snapshot

	// RevokedSeqs lists the seq values reversed by a revoke entry.
	// Empty for every other action.
	RevokedSeqs []int

	CreatedAt time.Time
}

// Revocable reports whether the entry can be targeted by a revoke.
// Compensating revoke entries and day resets are not reversible.
func (e *ActionLogEntry) Revocable() bool {
	switch e.Action {
	case ActionStartDay, ActionStop, ActionContinue, ActionEndDay:
		return true
	default:
		return false
	}
}
