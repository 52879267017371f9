package cli

import (
	"time"

	"github.com/alexanderramin/worklog/internal/domain"
	"github.com/alexanderramin/worklog/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Worklog  service.WorklogService
	Revoke   service.RevokeService
	Reports  service.ReportService
	Settings service.SettingsService

	// IsInteractive reports whether stdin is attached to a terminal.
	// Confirmation prompts are skipped when it returns false.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "worklog" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "worklog",
		Short: "Work session tracker with a revocable action ledger",
	}

	root.AddCommand(
		newStartCmd(app),
		newStopCmd(app),
		newContinueCmd(app),
		newEndCmd(app),
		newResetCmd(app),
		newRevokeCmd(app),
		newHistoryCmd(app),
		newStatusCmd(app),
		newReportCmd(app),
		newConfigCmd(app),
		newWatchCmd(app),
	)

	return root
}

// resolveDate returns the explicit --date value or today's local date.
func resolveDate(date string) string {
	if date != "" {
		return date
	}
	return time.Now().Format(domain.DateLayout)
}

func addDateFlag(cmd *cobra.Command, date *string) {
	cmd.Flags().StringVar(date, "date", "", "Session date (YYYY-MM-DD, defaults to today)")
}
