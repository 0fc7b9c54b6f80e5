package cmd

import (
	"fmt"

	"github.com/theirongolddev/alphawin/internal/cli"
	"github.com/theirongolddev/alphawin/internal/ledger"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Current rolling window and eligibility",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(_ *cobra.Command, _ []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	calc := env.calc
	today := ledger.Today()
	params := calc.Params()
	window := calc.WindowSum(today)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("ALPHA POINTS  %s", env.profile)))
	fmt.Println()

	verdict := cli.BadStyle.Render("below target")
	if window >= params.Threshold {
		verdict = cli.GoodStyle.Render("eligible")
	}

	rows := [][]string{
		{"Rolling window (15d)", cli.MarkStyle.Render(cli.FormatScore(window))},
		{"Target", cli.FormatScore(params.Threshold)},
		{"Daily score", cli.FormatScore(params.DefaultScore)},
		{"Today's accounted", cli.FormatSigned(calc.AccountedScore(today))},
		{"Status", verdict},
	}
	if max := calc.MaxClaimable(today); max > 0 {
		rows = append(rows, []string{"Claims possible", cli.FormatScore(max)})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}))

	// Window trend over the last 15 days
	history := calc.HistoryTable(today)
	sums := make([]int, 0, len(history))
	for _, r := range history {
		sums = append(sums, r.WindowSum)
	}
	fmt.Printf("\n  Window trend: %s\n", cli.RenderSparkline(sums))

	advice := calc.Advise(today)
	if len(advice) > 0 {
		fmt.Println()
		for _, a := range advice {
			fmt.Printf("  %s\n", cli.WarnStyle.Render(a))
		}
	}
	fmt.Println()

	return nil
}
