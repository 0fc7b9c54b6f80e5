package cmd

import (
	"fmt"

	"github.com/theirongolddev/alphawin/internal/cli"
	"github.com/theirongolddev/alphawin/internal/ledger"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "The 15 days behind today's window",
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
}

func runHistory(_ *cobra.Command, _ []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	today := ledger.Today()
	rows := env.calc.HistoryTable(today)

	fmt.Println()
	fmt.Println(cli.RenderTitle("HISTORY  last 15 days"))
	fmt.Println()

	table := make([][]string, 0, len(rows)+2)
	for _, r := range rows {
		table = append(table, dayTableRow(r))
	}
	// Divider row for today: the accounted sum above is today's window.
	table = append(table, []string{"---"})
	table = append(table, []string{
		cli.MarkStyle.Render(today + " (today)"),
		cli.FormatDayOfWeek(ledger.Weekday(today)),
		"", "", "",
		cli.MarkStyle.Render(cli.FormatScore(env.calc.WindowSum(today))),
	})

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Date", "Day", "Raw", "Claims", "Accounted", "Window"},
		Rows:    table,
	}))
	fmt.Println()

	return nil
}
