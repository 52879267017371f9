package formatter

import (
	"strings"
	"testing"

	"github.com/alexanderramin/worklog/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatSeconds(t *testing.T) {
	assert.Equal(t, "0s", FormatSeconds(0))
	assert.Equal(t, "45s", FormatSeconds(45))
	assert.Equal(t, "5m", FormatSeconds(300))
	assert.Equal(t, "1h 00m", FormatSeconds(3600))
	assert.Equal(t, "7h 30m", FormatSeconds(27000))
	assert.Equal(t, "0s", FormatSeconds(-10), "negative clamps to zero")
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "00:00:00", FormatClock(0))
	assert.Equal(t, "01:30:05", FormatClock(5405))
	assert.Equal(t, "00:00:00", FormatClock(-1))
}

func TestTruncID(t *testing.T) {
	assert.Equal(t, "short", TruncID("short"))
	assert.Equal(t, "abcdefgh", TruncID("abcdefgh-1234-5678"))
}

func TestStatusIndicator(t *testing.T) {
	assert.Contains(t, StatusIndicator(domain.StatusRunning), "RUNNING")
	assert.Contains(t, StatusIndicator(domain.StatusOnBreak), "ON BREAK")
	assert.Contains(t, StatusIndicator(domain.StatusEnded), "ENDED")
	assert.Contains(t, StatusIndicator(domain.StatusNotStarted), "NOT STARTED")
}

func TestRenderTable(t *testing.T) {
	out := RenderTable(
		[]string{"DATE", "WORKED"},
		[][]string{
			{"2026-08-29", "8h 00m"},
			{"2026-08-28", "7h 15m"},
		},
	)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4, "header, separator, two rows")
	assert.Contains(t, lines[0], "DATE")
	assert.Contains(t, lines[2], "2026-08-29")

	assert.Empty(t, RenderTable(nil, nil))
}

func TestRenderProgress(t *testing.T) {
	out := RenderProgress(0.5, 10)
	assert.Contains(t, out, "50%")

	assert.Contains(t, RenderProgress(-1, 10), "  0%")
	assert.Contains(t, RenderProgress(2, 10), "100%")

	assert.Contains(t, NormProgress(13500, 27000, 10), "50%")
	assert.Contains(t, NormProgress(100, 0, 10), "0%")
}
