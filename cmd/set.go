package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/alphawin/internal/cli"
	"github.com/theirongolddev/alphawin/internal/ledger"

	"github.com/spf13/cobra"
)

var setCmd = &cobra.Command{
	Use:   "set <date> <raw|claim> <value>",
	Short: "Record a day's raw score or claim count",
	Long: `Record a day's raw score or claim count.

The date accepts YYYY-MM-DD, "today", or a relative offset like +3 or -1.
Values that fail to parse are recorded as 0, matching manual entry
in the tables. An empty value clears the field.`,
	Args: cobra.ExactArgs(3),
	RunE: runSet,
}

func init() {
	rootCmd.AddCommand(setCmd)
}

func runSet(_ *cobra.Command, args []string) error {
	date, err := resolveDate(args[0])
	if err != nil {
		return err
	}
	field := strings.ToLower(strings.TrimSpace(args[1]))
	if field != ledger.FieldRaw && field != ledger.FieldClaim {
		return fmt.Errorf("unknown field %q: want raw or claim", args[1])
	}

	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	env.calc.SetDay(date, field, args[2])
	rec, _ := env.calc.Ledger().Get(date)
	if err := env.store.SaveDay(env.profile, date, rec); err != nil {
		return err
	}

	led := env.calc.Ledger()
	fmt.Printf("%s %s: raw=%d claims=%d accounted=%s window(next day)=%d\n",
		cli.MarkStyle.Render(date),
		cli.FormatDayOfWeek(ledger.Weekday(date)),
		led.EffectiveRaw(date, env.calc.Params().DefaultScore),
		led.EffectiveClaim(date),
		cli.FormatSigned(env.calc.AccountedScore(date)),
		env.calc.WindowSum(ledger.AddDays(date, 1)))

	return nil
}

// resolveDate expands the "today" and signed-offset shorthands into a
// concrete date key.
func resolveDate(arg string) (string, error) {
	s := strings.TrimSpace(strings.ToLower(arg))
	switch {
	case s == "today":
		return ledger.Today(), nil
	case strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-"):
		n, err := strconv.Atoi(s)
		if err != nil {
			return "", fmt.Errorf("bad relative date %q", arg)
		}
		return ledger.AddDays(ledger.Today(), n), nil
	}
	if _, err := ledger.ParseDate(s); err != nil {
		return "", fmt.Errorf("bad date %q: want YYYY-MM-DD, today, or +/-N", arg)
	}
	return s, nil
}
