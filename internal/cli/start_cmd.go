package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/worklog/internal/cli/formatter"
	"github.com/alexanderramin/worklog/internal/domain"
	"github.com/spf13/cobra"
)

func newStartCmd(app *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start the work day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := app.Worklog.StartDay(context.Background(), resolveDate(date))
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatTransition(domain.ActionStartDay, session))
			return nil
		},
	}

	addDateFlag(cmd, &date)
	return cmd
}
