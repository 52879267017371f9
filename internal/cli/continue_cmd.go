package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/worklog/internal/cli/formatter"
	"github.com/alexanderramin/worklog/internal/domain"
	"github.com/spf13/cobra"
)

func newContinueCmd(app *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "continue",
		Short: "End the current break and resume work",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := app.Worklog.ContinueWork(context.Background(), resolveDate(date))
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatTransition(domain.ActionContinue, session))
			return nil
		},
	}

	addDateFlag(cmd, &date)
	return cmd
}
