package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/worklog/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const statusProgressBarWidth = 20

// FormatStatus formats a TimeReport into a styled status dashboard.
func FormatStatus(r *domain.TimeReport) string {
	var b strings.Builder

	b.WriteString(StatusIndicator(r.Status))
	b.WriteString("  ")
	b.WriteString(Dim(r.Date))
	b.WriteString("\n\n")

	rows := [][]string{
		{Dim("Worked"), Bold(FormatSeconds(r.WorkSeconds))},
		{Dim("Breaks"), StyleFg.Render(FormatSeconds(r.BreakSeconds))},
	}

	switch {
	case r.OvertimeSeconds > 0:
		rows = append(rows, []string{Dim("Overtime"), StyleGreen.Render("+" + FormatSeconds(r.OvertimeSeconds))})
	case r.Status == domain.StatusEnded && r.DeficitSeconds > 0:
		rows = append(rows, []string{Dim("Deficit"), StyleRed.Render("-" + FormatSeconds(r.DeficitSeconds))})
	default:
		rows = append(rows, []string{Dim("Remaining"), StyleYellow.Render(FormatSeconds(r.RemainingSeconds))})
	}

	switch r.Status {
	case domain.StatusRunning:
		rows = append(rows, []string{Dim("Segment"), StyleFg.Render(FormatSeconds(r.CurrentSegmentSeconds))})
	case domain.StatusOnBreak:
		label := "On break"
		if r.OpenBreak != nil {
			label = fmt.Sprintf("On %s break", r.OpenBreak.Type)
		}
		rows = append(rows, []string{Dim(label), StyleYellow.Render(FormatSeconds(r.CurrentSegmentSeconds))})
	}

	for _, row := range rows {
		b.WriteString(fmt.Sprintf("%s  %s\n", padRight(row[0], 12), row[1]))
	}

	b.WriteString("\n")
	b.WriteString(NormProgress(r.WorkSeconds, r.WorkNormSeconds, statusProgressBarWidth))
	b.WriteString(Dim(fmt.Sprintf(" of %s", FormatSeconds(r.WorkNormSeconds))))
	b.WriteString("\n")

	return RenderBox("Worklog", b.String())
}

// FormatTransition renders the one-line acknowledgement printed after a
// successful state change.
func FormatTransition(action domain.ActionType, s *domain.WorkSession) string {
	switch action {
	case domain.ActionStartDay:
		return fmt.Sprintf("%s  day started at %s", StyleGreen.Render("✔"), ClockTime(*s.StartTime))
	case domain.ActionStop:
		return fmt.Sprintf("%s  break started", StyleYellow.Render("✔"))
	case domain.ActionContinue:
		return fmt.Sprintf("%s  back to work (breaks so far: %s)", StyleGreen.Render("✔"), FormatSeconds(s.BreakSeconds))
	case domain.ActionEndDay:
		line := fmt.Sprintf("%s  day ended, worked %s", StyleBlue.Render("✔"), FormatSeconds(s.WorkSeconds))
		if s.OvertimeSeconds > 0 {
			line += StyleGreen.Render(fmt.Sprintf(" (+%s overtime)", FormatSeconds(s.OvertimeSeconds)))
		}
		return line
	case domain.ActionResetDay:
		return fmt.Sprintf("%s  day reset to a clean slate", StyleRed.Render("✔"))
	default:
		return fmt.Sprintf("%s  %s", StyleGreen.Render("✔"), action)
	}
}

func padRight(s string, width int) string {
	// lipgloss styles carry escape codes, so pad on visible width.
	visible := lipgloss.Width(s)
	if visible >= width {
		return s
	}
	return s + strings.Repeat(" ", width-visible)
}
