package domain

import "time"

// BreakPeriod is one pause within a work session. EndTime is nil while the
// break is still open.
type BreakPeriod struct {
	ID          string
	SessionDate string
	Type        BreakType
	StartTime   time.Time
	EndTime     *time.Time
	CreatedAt   time.Time
}

// Open reports whether the break has not been closed yet.
func (b *BreakPeriod) Open() bool {
	return b.EndTime == nil
}

// DurationSeconds returns the break length. Open breaks are measured
// against the given reference time.
func (b *BreakPeriod) DurationSeconds(now time.Time) int {
	end := now
	if b.EndTime != nil {
		end = *b.EndTime
	}
	d := int(end.Sub(b.StartTime).Seconds())
	if d < 0 {
		return 0
	}
	return d
}
