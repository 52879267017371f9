package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/worklog/internal/domain"
)

// FormatHistory renders the action ledger for a day, newest first.
func FormatHistory(date string, entries []*domain.ActionLogEntry) string {
	if len(entries) == 0 {
		return Dim(fmt.Sprintf("No actions recorded for %s.", date)) + "\n"
	}

	headers := []string{"SEQ", "ACTION", "TIME", "DETAIL"}
	rows := make([][]string, 0, len(entries))

	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		rows = append(rows, []string{
			Dim(fmt.Sprintf("%d", e.Seq)),
			actionLabel(e.Action),
			StyleFg.Render(ClockTime(e.Timestamp)),
			entryDetail(e),
		})
	}

	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("History %s", date)))
	b.WriteString("\n")
	b.WriteString(RenderTable(headers, rows))
	return b.String()
}

func actionLabel(a domain.ActionType) string {
	switch a {
	case domain.ActionStartDay:
		return StyleGreen.Render("start")
	case domain.ActionStop:
		return StyleYellow.Render("stop")
	case domain.ActionContinue:
		return StyleGreen.Render("continue")
	case domain.ActionEndDay:
		return StyleBlue.Render("end")
	case domain.ActionResetDay:
		return StyleRed.Render("reset")
	case domain.ActionRevoke:
		return StylePurple.Render("revoke")
	default:
		return StyleFg.Render(string(a))
	}
}

func entryDetail(e *domain.ActionLogEntry) string {
	switch e.Action {
	case domain.ActionStop:
		if e.Snapshot.BreakType != nil {
			return Dim(string(*e.Snapshot.BreakType))
		}
	case domain.ActionRevoke:
		if len(e.RevokedSeqs) > 0 {
			parts := make([]string, len(e.RevokedSeqs))
			for i, seq := range e.RevokedSeqs {
				parts[i] = fmt.Sprintf("%d", seq)
			}
			return Dim("undid seq " + strings.Join(parts, ", "))
		}
	}
	return ""
}
