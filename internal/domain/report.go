package domain

import "time"

// TimeReport holds the live time figures for a session. All values are in
// seconds. For ended sessions the finalized accumulators are reported; for
// running or on-break sessions the figures are recomputed against now.
type TimeReport struct {
	Date                  string
	Status                SessionStatus
	WorkSeconds           int
	BreakSeconds          int
	ProductiveSeconds     int
	OvertimeSeconds       int
	RemainingSeconds      int
	DeficitSeconds        int
	CurrentSegmentSeconds int
	WorkNormSeconds       int
	OpenBreak             *BreakPeriod
}

// ComputeReport derives the current time figures for a session given its
// break periods. Productive time is elapsed running time excluding breaks;
// while on break it is frozen at the break's start.
func ComputeReport(s *WorkSession, breaks []*BreakPeriod, now time.Time) TimeReport {
	r := TimeReport{
		Date:            s.Date,
		Status:          s.Status,
		WorkNormSeconds: s.WorkNormSeconds,
	}

	var open *BreakPeriod
	var lastClosedEnd *time.Time
	for _, b := range breaks {
		if b.Open() {
			open = b
		} else if lastClosedEnd == nil || b.EndTime.After(*lastClosedEnd) {
			lastClosedEnd = b.EndTime
		}
	}
	r.OpenBreak = open

	switch s.Status {
	case StatusNotStarted:
		r.RemainingSeconds = s.WorkNormSeconds
		return r

	case StatusEnded:
		r.WorkSeconds = s.WorkSeconds
		r.BreakSeconds = s.BreakSeconds
		r.ProductiveSeconds = s.WorkSeconds
		r.OvertimeSeconds = s.OvertimeSeconds
		if s.WorkSeconds < s.WorkNormSeconds {
			r.DeficitSeconds = s.WorkNormSeconds - s.WorkSeconds
		}
		return r
	}

	breakSoFar := s.BreakSeconds
	if open != nil {
		breakSoFar += open.DurationSeconds(now)
	}

	productive := s.ElapsedSeconds(now) - breakSoFar
	if productive < 0 {
		productive = 0
	}

	r.WorkSeconds = productive
	r.BreakSeconds = breakSoFar
	r.ProductiveSeconds = productive
	if productive > s.WorkNormSeconds {
		r.OvertimeSeconds = productive - s.WorkNormSeconds
	} else {
		r.RemainingSeconds = s.WorkNormSeconds - productive
	}

	// Length of the current uninterrupted segment: time worked since the
	// last break ended (or since start), or time on the open break.
	switch s.Status {
	case StatusRunning:
		segStart := *s.StartTime
		if lastClosedEnd != nil && lastClosedEnd.After(segStart) {
			segStart = *lastClosedEnd
		}
		r.CurrentSegmentSeconds = int(now.Sub(segStart).Seconds())
	case StatusOnBreak:
		if open != nil {
			r.CurrentSegmentSeconds = open.DurationSeconds(now)
		}
	}
	if r.CurrentSegmentSeconds < 0 {
		r.CurrentSegmentSeconds = 0
	}

	return r
}

// DailyStats aggregates one finalized day for reporting.
type DailyStats struct {
	Date            string
	WorkSeconds     int
	BreakSeconds    int
	OvertimeSeconds int
	BreaksCount     int
	LunchBreaks     int
	CoffeeBreaks    int
	GeneralBreaks   int
	FirstStart      *time.Time
	LastEnd         *time.Time
}

// ProductivityPercent is the share of tracked time spent working.
func (d DailyStats) ProductivityPercent() float64 {
	total := d.WorkSeconds + d.BreakSeconds
	if total == 0 {
		return 0
	}
	return float64(d.WorkSeconds) / float64(total) * 100
}
