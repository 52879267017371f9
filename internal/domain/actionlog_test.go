package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRevocable(t *testing.T) {
	assert.True(t, (&ActionLogEntry{Action: ActionStartDay}).Revocable())
	assert.True(t, (&ActionLogEntry{Action: ActionStop}).Revocable())
	assert.True(t, (&ActionLogEntry{Action: ActionContinue}).Revocable())
	assert.True(t, (&ActionLogEntry{Action: ActionEndDay}).Revocable())

	assert.False(t, (&ActionLogEntry{Action: ActionResetDay}).Revocable())
	assert.False(t, (&ActionLogEntry{Action: ActionRevoke}).Revocable())
}

func TestSnapshotRoundTrip(t *testing.T) {
	start := time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC)
	s := &WorkSession{
		Date:            "2026-08-29",
		Status:          StatusRunning,
		StartTime:       &start,
		BreakSeconds:    1200,
		WorkNormSeconds: 27000,
	}

	snap := SnapshotOf(s)

	// Mutate the session the way end_day would.
	s.Finalize(start.Add(8 * time.Hour))
	assert.Equal(t, StatusEnded, s.Status)

	now := start.Add(9 * time.Hour)
	snap.RestoreTo(s, now)

	assert.Equal(t, StatusRunning, s.Status)
	assert.Equal(t, &start, s.StartTime)
	assert.Nil(t, s.EndTime)
	assert.Equal(t, 1200, s.BreakSeconds)
	assert.Zero(t, s.WorkSeconds)
	assert.Equal(t, now, s.UpdatedAt)
}
