package cmd

import (
	"fmt"

	"github.com/theirongolddev/alphawin/internal/cli"
	"github.com/theirongolddev/alphawin/internal/ledger"
	"github.com/theirongolddev/alphawin/internal/model"

	"github.com/spf13/cobra"
)

var flagForwardDays int

var forwardCmd = &cobra.Command{
	Use:   "forward",
	Short: "Preview the window over the coming days",
	RunE:  runForward,
}

func init() {
	forwardCmd.Flags().IntVarP(&flagForwardDays, "days", "n", 15, "Days to preview")
	rootCmd.AddCommand(forwardCmd)
}

func runForward(_ *cobra.Command, _ []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	rows := env.calc.ForwardTable(ledger.Today(), flagForwardDays)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("FORWARD  next %d days", len(rows))))
	fmt.Println()

	table := make([][]string, 0, len(rows))
	for _, r := range rows {
		table = append(table, dayTableRow(r))
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Date", "Day", "Raw", "Claims", "Accounted", "Window"},
		Rows:    table,
	}))
	fmt.Println("\n  Edit a hypothetical day with `alphawin set <date> raw|claim <value>`.")
	fmt.Println()

	return nil
}

// dayTableRow renders one DayRow for the shared history/forward layout.
// Explicit entries get a marker so user edits stand out from defaults.
func dayTableRow(r model.DayRow) []string {
	date := r.Date
	if r.Explicit {
		date += " *"
	}
	accounted := cli.GoodStyle.Render(cli.FormatSigned(r.AccountedScore))
	if r.AccountedScore < 0 {
		accounted = cli.BadStyle.Render(cli.FormatSigned(r.AccountedScore))
	}
	return []string{
		date,
		cli.FormatDayOfWeek(ledger.Weekday(r.Date)),
		cli.FormatScore(r.RawScore),
		cli.FormatScore(r.ClaimCount),
		accounted,
		cli.MarkStyle.Render(cli.FormatScore(r.WindowSum)),
	}
}
