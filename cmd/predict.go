package cmd

import (
	"fmt"

	"github.com/theirongolddev/alphawin/internal/cli"
	"github.com/theirongolddev/alphawin/internal/ledger"
	"github.com/theirongolddev/alphawin/internal/model"

	"github.com/spf13/cobra"
)

var flagHorizon int

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Find future dates where the window reaches the target",
	RunE:  runPredict,
}

func init() {
	predictCmd.Flags().IntVar(&flagHorizon, "horizon", 0, "Days to scan forward (default from config)")
	rootCmd.AddCommand(predictCmd)
}

func runPredict(_ *cobra.Command, _ []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	calc := env.calc
	threshold := calc.Params().Threshold
	res := calc.FindCrossings(ledger.Today(), threshold, flagHorizon)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("PREDICTION  target %d", threshold)))
	fmt.Println()

	switch res.Kind {
	case model.OutcomeInvalidThreshold:
		fmt.Printf("  %s\n", cli.BadStyle.Render("target must be positive"))

	case model.OutcomeAlreadySatisfied:
		fmt.Printf("  %s\n", cli.GoodStyle.Render(
			fmt.Sprintf("already satisfied: current window is %d", res.CurrentWindow)))

	case model.OutcomeUnreachable:
		fmt.Printf("  %s\n", cli.BadStyle.Render("target unreachable within the horizon"))
		for _, a := range res.Advice {
			fmt.Printf("  %s\n", cli.WarnStyle.Render(a))
		}

	case model.OutcomeFound:
		fmt.Printf("  Current window: %d. %d qualifying day(s):\n\n",
			res.CurrentWindow, len(res.Hits))

		rows := make([][]string, 0, len(res.Hits))
		for _, h := range res.Hits {
			rows = append(rows, []string{
				h.Date,
				cli.FormatDayOfWeek(ledger.Weekday(h.Date)),
				cli.FormatRelativeDay(h.DayOffset),
				cli.MarkStyle.Render(cli.FormatScore(h.Score)),
				cli.FormatSigned(h.Score - threshold),
			})
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Headers: []string{"Date", "Day", "When", "Window", "Over"},
			Rows:    rows,
		}))
	}
	fmt.Println()

	return nil
}
