package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/worklog/internal/cli/formatter"
	"github.com/alexanderramin/worklog/internal/domain"
	"github.com/spf13/cobra"
)

func newRevokeCmd(app *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "revoke [n]",
		Short: "Undo the most recent actions (up to 5)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n := 1
			if len(args) == 1 {
				parsed, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("revoke count must be a number, got %q", args[0])
				}
				n = parsed
			}

			entry, err := app.Revoke.Revoke(context.Background(), resolveDate(date), n)
			if err != nil {
				return err
			}

			seqs := make([]string, len(entry.RevokedSeqs))
			for i, s := range entry.RevokedSeqs {
				seqs[i] = strconv.Itoa(s)
			}
			fmt.Printf("%s  revoked %d action(s): seq %s\n",
				formatter.StylePurple.Render("✔"), n, strings.Join(seqs, ", "))
			return nil
		},
	}

	addDateFlag(cmd, &date)
	return cmd
}

func newHistoryCmd(app *App) *cobra.Command {
	var date string
	var days int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show the action ledger",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			// An explicit --date pins the ledger to one day.
			if date != "" || days <= 1 {
				target := resolveDate(date)
				entries, err := app.Revoke.History(ctx, target)
				if err != nil {
					return err
				}
				fmt.Print(formatter.FormatHistory(target, entries))
				return nil
			}

			for i := days - 1; i >= 0; i-- {
				target := time.Now().AddDate(0, 0, -i).Format(domain.DateLayout)
				entries, err := app.Revoke.History(ctx, target)
				if err != nil {
					return err
				}
				if len(entries) == 0 {
					continue
				}
				fmt.Print(formatter.FormatHistory(target, entries))
				fmt.Println()
			}
			return nil
		},
	}

	addDateFlag(cmd, &date)
	cmd.Flags().IntVar(&days, "days", 1, "Show ledgers for the last n days")
	return cmd
}
