package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/worklog/internal/cli/formatter"
	"github.com/alexanderramin/worklog/internal/domain"
	"github.com/spf13/cobra"
)

func newConfigCmd(app *App) *cobra.Command {
	var normSeconds int
	defaultBreak := newBreakTypeValue(domain.BreakGeneral)

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change persisted settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			settings, err := app.Settings.Get(ctx)
			if err != nil {
				return err
			}

			changed := false
			if cmd.Flags().Changed("norm") {
				settings.WorkNormSeconds = normSeconds
				changed = true
			}
			if cmd.Flags().Changed("default-break") {
				settings.DefaultBreakType = defaultBreak.BreakType()
				changed = true
			}

			if changed {
				if err := app.Settings.Update(ctx, settings); err != nil {
					return err
				}
			}

			fmt.Printf("%s  %s\n", formatter.Dim("Daily norm"), formatter.Bold(formatter.FormatSeconds(settings.WorkNormSeconds)))
			fmt.Printf("%s  %s\n", formatter.Dim("Default break"), formatter.StyleFg.Render(string(settings.DefaultBreakType)))
			return nil
		},
	}

	cmd.Flags().IntVar(&normSeconds, "norm", 0, "Daily work norm in seconds")
	cmd.Flags().Var(defaultBreak, "default-break", "Default break type for stop: lunch, coffee or general")
	return cmd
}
