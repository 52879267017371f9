package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/worklog/internal/cli/formatter"
	"github.com/alexanderramin/worklog/internal/domain"
	"github.com/spf13/cobra"
)

func newStopCmd(app *App) *cobra.Command {
	var date string
	breakType := newBreakTypeValue(domain.BreakGeneral)

	cmd := &cobra.Command{
		Use:   "stop [break-type]",
		Short: "Pause work and start a break",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			bt := breakType.BreakType()
			switch {
			case len(args) == 1:
				// Positional type wins; unknown values fall back to a
				// general break inside the service.
				bt = domain.BreakType(args[0])
			case !cmd.Flags().Changed("type"):
				if settings, err := app.Settings.Get(ctx); err == nil {
					bt = settings.DefaultBreakType
				}
			}

			session, err := app.Worklog.Stop(ctx, resolveDate(date), bt)
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatTransition(domain.ActionStop, session))
			return nil
		},
	}

	addDateFlag(cmd, &date)
	cmd.Flags().Var(breakType, "type", "Break type: lunch, coffee or general")
	return cmd
}
