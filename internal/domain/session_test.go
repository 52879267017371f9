package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanPerform_Transitions(t *testing.T) {
	tests := []struct {
		status  SessionStatus
		action  ActionType
		allowed bool
	}{
		{StatusNotStarted, ActionStartDay, true},
		{StatusNotStarted, ActionStop, false},
		{StatusNotStarted, ActionContinue, false},
		{StatusNotStarted, ActionEndDay, false},
		{StatusRunning, ActionStop, true},
		{StatusRunning, ActionEndDay, true},
		{StatusRunning, ActionStartDay, false},
		{StatusRunning, ActionContinue, false},
		{StatusOnBreak, ActionContinue, true},
		{StatusOnBreak, ActionStop, false},
		{StatusOnBreak, ActionEndDay, false},
		{StatusEnded, ActionStartDay, false},
		{StatusEnded, ActionStop, false},
		{StatusEnded, ActionEndDay, false},
	}

	for _, tt := range tests {
		s := &WorkSession{Status: tt.status}
		assert.Equal(t, tt.allowed, s.CanPerform(tt.action),
			"%s from %s", tt.action, tt.status)
	}
}

func TestCanPerform_ResetAlwaysAllowed(t *testing.T) {
	for _, status := range []SessionStatus{StatusNotStarted, StatusRunning, StatusOnBreak, StatusEnded} {
		s := &WorkSession{Status: status}
		assert.True(t, s.CanPerform(ActionResetDay), "reset from %s", status)
	}
}

func TestNewWorkSession_Defaults(t *testing.T) {
	now := time.Now().UTC()
	s := NewWorkSession("2026-08-29", 0, now)

	assert.Equal(t, StatusNotStarted, s.Status)
	assert.Equal(t, DefaultWorkNormSeconds, s.WorkNormSeconds)
	assert.Nil(t, s.StartTime)
	assert.Equal(t, now, s.CreatedAt)
}

func TestElapsedSeconds(t *testing.T) {
	start := time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC)
	s := &WorkSession{Status: StatusRunning, StartTime: &start}

	assert.Equal(t, 0, (&WorkSession{}).ElapsedSeconds(start))
	assert.Equal(t, 3600, s.ElapsedSeconds(start.Add(time.Hour)))

	// Ended sessions measure to their end time, not now.
	end := start.Add(2 * time.Hour)
	s.EndTime = &end
	assert.Equal(t, 7200, s.ElapsedSeconds(start.Add(10*time.Hour)))
}

func TestFinalize_ComputesWorkAndOvertime(t *testing.T) {
	start := time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC)
	s := &WorkSession{
		Status:          StatusRunning,
		StartTime:       &start,
		BreakSeconds:    1800,
		WorkNormSeconds: 27000,
	}

	// 8.5h elapsed, 30m break: 8h worked against a 7.5h norm.
	s.Finalize(start.Add(8*time.Hour + 30*time.Minute))

	assert.Equal(t, StatusEnded, s.Status)
	require.NotNil(t, s.EndTime)
	assert.Equal(t, 28800, s.WorkSeconds)
	assert.Equal(t, 1800, s.OvertimeSeconds)
}

func TestFinalize_NoNegativeFigures(t *testing.T) {
	start := time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC)
	s := &WorkSession{
		Status:          StatusRunning,
		StartTime:       &start,
		BreakSeconds:    7200,
		WorkNormSeconds: 27000,
	}

	// Break longer than the elapsed time clamps work to zero.
	s.Finalize(start.Add(time.Hour))

	assert.Equal(t, 0, s.WorkSeconds)
	assert.Equal(t, 0, s.OvertimeSeconds)
}

func TestReset_ClearsAccumulators(t *testing.T) {
	start := time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC)
	end := start.Add(8 * time.Hour)
	s := &WorkSession{
		Status:          StatusEnded,
		StartTime:       &start,
		EndTime:         &end,
		WorkSeconds:     27000,
		BreakSeconds:    1800,
		OvertimeSeconds: 600,
		WorkNormSeconds: 27000,
	}

	s.Reset(end.Add(time.Minute))

	assert.Equal(t, StatusNotStarted, s.Status)
	assert.Nil(t, s.StartTime)
	assert.Nil(t, s.EndTime)
	assert.Zero(t, s.WorkSeconds)
	assert.Zero(t, s.BreakSeconds)
	assert.Zero(t, s.OvertimeSeconds)
	assert.Equal(t, 27000, s.WorkNormSeconds, "norm survives a reset")
}
