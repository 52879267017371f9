package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/worklog/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the current session and time figures",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := app.Worklog.Status(context.Background(), resolveDate(date))
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatStatus(report))
			return nil
		},
	}

	addDateFlag(cmd, &date)
	return cmd
}
