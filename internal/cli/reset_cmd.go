package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/worklog/internal/cli/formatter"
	"github.com/alexanderramin/worklog/internal/domain"
	"github.com/spf13/cobra"
)

func newResetCmd(app *App) *cobra.Command {
	var date string
	var force int

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Wipe the day's session back to a clean slate",
		Long: "Reset deletes the day's break periods and zeroes its totals. " +
			"The action log is kept and the reset itself is recorded, but a " +
			"reset cannot be revoked. Requires confirming twice.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			target := resolveDate(date)

			confirmed, err := confirmReset(app, target, force)
			if err != nil {
				return err
			}
			if !confirmed {
				fmt.Println(formatter.Dim("Reset aborted."))
				return nil
			}

			session, err := app.Worklog.ResetDay(context.Background(), target)
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatTransition(domain.ActionResetDay, session))
			return nil
		},
	}

	addDateFlag(cmd, &date)
	cmd.Flags().CountVarP(&force, "force", "f", "Skip prompts; pass twice (-f -f) to confirm non-interactively")
	return cmd
}

// confirmReset enforces the double confirmation: two interactive prompts,
// or -f given twice when no terminal is attached.
func confirmReset(app *App, date string, force int) (bool, error) {
	if force >= 2 {
		return true, nil
	}
	if app.IsInteractive == nil || !app.IsInteractive() {
		return false, fmt.Errorf("reset requires confirmation: re-run with -f -f")
	}

	var first bool
	form := confirmForm(
		fmt.Sprintf("Reset %s?", date),
		"All break periods and totals for this day will be discarded.",
		&first,
	)
	if err := form.Run(); err != nil {
		return false, err
	}
	if !first {
		return false, nil
	}

	var second bool
	form = confirmForm(
		"Really reset?",
		"This cannot be revoked.",
		&second,
	)
	if err := form.Run(); err != nil {
		return false, err
	}
	return second, nil
}
