package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/alexanderramin/worklog/internal/cli/formatter"
	"github.com/alexanderramin/worklog/internal/domain"
	"github.com/spf13/cobra"
)

func newReportCmd(app *App) *cobra.Command {
	var from, to string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Summarize finished days over a date range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default range: the last seven days.
			if to == "" {
				to = time.Now().Format(domain.DateLayout)
			}
			if from == "" {
				from = time.Now().AddDate(0, 0, -6).Format(domain.DateLayout)
			}

			report, err := app.Reports.Range(context.Background(), from, to)
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}

			fmt.Println(formatter.FormatRangeReport(report))
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Range start (YYYY-MM-DD, defaults to 6 days ago)")
	cmd.Flags().StringVar(&to, "to", "", "Range end (YYYY-MM-DD, defaults to today)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the raw report as JSON")
	return cmd
}
