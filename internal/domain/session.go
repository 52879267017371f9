package domain

import "time"

// DateLayout is the canonical session date format (one session per date).
const DateLayout = "2006-01-02"

// DefaultWorkNormSeconds is the configured daily work target: 7.5 hours.
const DefaultWorkNormSeconds = 27000

// WorkSession tracks one calendar day. WorkSeconds and OvertimeSeconds are
// finalized by end_day; BreakSeconds accumulates as breaks close.
type WorkSession struct {
	Date            string
	Status          SessionStatus
	StartTime       *time.Time
	EndTime         *time.Time
	WorkSeconds     int
	BreakSeconds    int
	WorkNormSeconds int
	OvertimeSeconds int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewWorkSession returns a fresh not-started session for the given date.
func NewWorkSession(date string, normSeconds int, now time.Time) *WorkSession {
	if normSeconds <= 0 {
		normSeconds = DefaultWorkNormSeconds
	}
	return &WorkSession{
		Date:            date,
		Status:          StatusNotStarted,
		WorkNormSeconds: normSeconds,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// CanPerform reports whether the given transition is legal from the
// session's current status. reset_day is always allowed.
func (s *WorkSession) CanPerform(action ActionType) bool {
	if action == ActionResetDay {
		return true
	}
	for _, a := range validTransitions[s.Status] {
		if a == action {
			return true
		}
	}
	return false
}

// ElapsedSeconds returns wall-clock time since the day started. Ended
// sessions measure to their end time; not-started sessions report zero.
func (s *WorkSession) ElapsedSeconds(now time.Time) int {
	if s.StartTime == nil {
		return 0
	}
	end := now
	if s.EndTime != nil {
		end = *s.EndTime
	}
	d := int(end.Sub(*s.StartTime).Seconds())
	if d < 0 {
		return 0
	}
	return d
}

// Finalize computes the end-of-day figures: accumulated work is elapsed
// wall time minus accumulated breaks, and overtime is work beyond the norm.
func (s *WorkSession) Finalize(endTime time.Time) {
	s.EndTime = &endTime
	s.WorkSeconds = s.ElapsedSeconds(endTime) - s.BreakSeconds
	if s.WorkSeconds < 0 {
		s.WorkSeconds = 0
	}
	s.OvertimeSeconds = s.WorkSeconds - s.WorkNormSeconds
	if s.OvertimeSeconds < 0 {
		s.OvertimeSeconds = 0
	}
	s.Status = StatusEnded
}

// Reset returns the session to a pristine not-started state, zeroing the
// accumulators. The ledger is not touched here.
func (s *WorkSession) Reset(now time.Time) {
	s.Status = StatusNotStarted
	s.StartTime = nil
	s.EndTime = nil
	s.WorkSeconds = 0
	s.BreakSeconds = 0
	s.OvertimeSeconds = 0
	s.UpdatedAt = now
}
