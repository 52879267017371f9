package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/worklog/internal/cli/formatter"
	"github.com/alexanderramin/worklog/internal/domain"
	"github.com/spf13/cobra"
)

func newEndCmd(app *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "end",
		Short: "Finish the work day and finalize totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := app.Worklog.EndDay(context.Background(), resolveDate(date))
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatTransition(domain.ActionEndDay, session))
			return nil
		},
	}

	addDateFlag(cmd, &date)
	return cmd
}
