package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeReport_NotStarted(t *testing.T) {
	now := time.Now().UTC()
	s := NewWorkSession("2026-08-29", 27000, now)

	r := ComputeReport(s, nil, now)

	assert.Equal(t, StatusNotStarted, r.Status)
	assert.Zero(t, r.WorkSeconds)
	assert.Equal(t, 27000, r.RemainingSeconds)
}

func TestComputeReport_Running(t *testing.T) {
	start := time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC)
	s := &WorkSession{
		Date:            "2026-08-29",
		Status:          StatusRunning,
		StartTime:       &start,
		WorkNormSeconds: 27000,
	}

	r := ComputeReport(s, nil, start.Add(2*time.Hour))

	assert.Equal(t, 7200, r.WorkSeconds)
	assert.Equal(t, 7200, r.ProductiveSeconds)
	assert.Equal(t, 27000-7200, r.RemainingSeconds)
	assert.Equal(t, 7200, r.CurrentSegmentSeconds)
	assert.Zero(t, r.OvertimeSeconds)
}

func TestComputeReport_OnBreak_FreezesProductive(t *testing.T) {
	start := time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC)
	breakStart := start.Add(time.Hour)
	s := &WorkSession{
		Date:            "2026-08-29",
		Status:          StatusOnBreak,
		StartTime:       &start,
		WorkNormSeconds: 27000,
	}
	open := &BreakPeriod{ID: "b1", SessionDate: s.Date, Type: BreakLunch, StartTime: breakStart}

	// 20 minutes into the break: productive time stays at one hour.
	now := breakStart.Add(20 * time.Minute)
	r := ComputeReport(s, []*BreakPeriod{open}, now)

	assert.Equal(t, 3600, r.ProductiveSeconds)
	assert.Equal(t, 1200, r.BreakSeconds)
	assert.Equal(t, 1200, r.CurrentSegmentSeconds, "segment tracks the open break")
	require.NotNil(t, r.OpenBreak)
	assert.Equal(t, "b1", r.OpenBreak.ID)
}

func TestComputeReport_Running_SegmentAfterBreak(t *testing.T) {
	start := time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC)
	bStart := start.Add(time.Hour)
	bEnd := bStart.Add(30 * time.Minute)
	s := &WorkSession{
		Date:            "2026-08-29",
		Status:          StatusRunning,
		StartTime:       &start,
		BreakSeconds:    1800,
		WorkNormSeconds: 27000,
	}
	closed := &BreakPeriod{ID: "b1", SessionDate: s.Date, Type: BreakCoffee, StartTime: bStart, EndTime: &bEnd}

	now := bEnd.Add(15 * time.Minute)
	r := ComputeReport(s, []*BreakPeriod{closed}, now)

	assert.Equal(t, 3600+900, r.ProductiveSeconds)
	assert.Equal(t, 1800, r.BreakSeconds)
	assert.Equal(t, 900, r.CurrentSegmentSeconds, "segment restarts when the break ends")
	assert.Nil(t, r.OpenBreak)
}

func TestComputeReport_Running_Overtime(t *testing.T) {
	start := time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC)
	s := &WorkSession{
		Date:            "2026-08-29",
		Status:          StatusRunning,
		StartTime:       &start,
		WorkNormSeconds: 27000,
	}

	r := ComputeReport(s, nil, start.Add(9*time.Hour))

	assert.Equal(t, 32400, r.ProductiveSeconds)
	assert.Equal(t, 32400-27000, r.OvertimeSeconds)
	assert.Zero(t, r.RemainingSeconds)
}

func TestComputeReport_Ended_UsesFinalizedFigures(t *testing.T) {
	start := time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC)
	end := start.Add(8 * time.Hour)
	s := &WorkSession{
		Date:            "2026-08-29",
		Status:          StatusEnded,
		StartTime:       &start,
		EndTime:         &end,
		WorkSeconds:     25000,
		BreakSeconds:    3800,
		WorkNormSeconds: 27000,
	}

	// now is far in the future; ended figures must not drift.
	r := ComputeReport(s, nil, end.Add(48*time.Hour))

	assert.Equal(t, 25000, r.WorkSeconds)
	assert.Equal(t, 3800, r.BreakSeconds)
	assert.Equal(t, 2000, r.DeficitSeconds)
	assert.Zero(t, r.OvertimeSeconds)
}

func TestProductivityPercent(t *testing.T) {
	d := DailyStats{WorkSeconds: 27000, BreakSeconds: 3000}
	assert.InDelta(t, 90.0, d.ProductivityPercent(), 0.01)

	assert.Zero(t, DailyStats{}.ProductivityPercent())
}
