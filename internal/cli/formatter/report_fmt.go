package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/worklog/internal/service"
)

// FormatRangeReport renders the finalized-days report for a date range.
func FormatRangeReport(r *service.RangeReport) string {
	var b strings.Builder

	if len(r.Days) == 0 {
		b.WriteString(Dim(fmt.Sprintf("No finished days between %s and %s.", r.From, r.To)))
		b.WriteString("\n")
		return RenderBox("Report", b.String())
	}

	headers := []string{"DATE", "WORKED", "BREAKS", "OVERTIME", "PRODUCTIVITY"}
	rows := make([][]string, 0, len(r.Days))

	for _, d := range r.Days {
		overtime := Dim("--")
		if d.OvertimeSeconds > 0 {
			overtime = StyleGreen.Render("+" + FormatSeconds(d.OvertimeSeconds))
		}
		rows = append(rows, []string{
			Bold(d.Date),
			StyleFg.Render(FormatSeconds(d.WorkSeconds)),
			Dim(fmt.Sprintf("%s (%d)", FormatSeconds(d.BreakSeconds), d.BreaksCount)),
			overtime,
			StyleFg.Render(fmt.Sprintf("%.0f%%", d.ProductivityPercent())),
		})
	}

	b.WriteString(RenderTable(headers, rows))
	b.WriteString("\n")

	totals := fmt.Sprintf("%s worked, %s on break over %d days",
		Bold(FormatSeconds(r.TotalWorkSeconds)),
		StyleFg.Render(FormatSeconds(r.TotalBreakSeconds)),
		len(r.Days))
	if r.TotalOvertimeSeconds > 0 {
		totals += StyleGreen.Render(fmt.Sprintf(", +%s overtime", FormatSeconds(r.TotalOvertimeSeconds)))
	}
	b.WriteString(totals + "\n")

	return RenderBox(fmt.Sprintf("Report %s to %s", r.From, r.To), b.String())
}
