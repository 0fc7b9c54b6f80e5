// Package cmd implements the alphawin CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/theirongolddev/alphawin/internal/config"
	"github.com/theirongolddev/alphawin/internal/ledger"
	"github.com/theirongolddev/alphawin/internal/rolling"
	"github.com/theirongolddev/alphawin/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagProfile string
	flagDataDir string
	flagScore   int
	flagTarget  int
)

var rootCmd = &cobra.Command{
	Use:   "alphawin",
	Short: "Alpha points rolling-window tracker",
	Long:  "Track daily alpha points under the 15-day rolling-window rule and predict when your score reaches a target.",
	RunE:  runStatus,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagProfile, "profile", "u", "", "Profile to operate on (default: last used)")
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Override the data directory")
	rootCmd.PersistentFlags().IntVar(&flagScore, "score", 0, "Override the default daily score")
	rootCmd.PersistentFlags().IntVar(&flagTarget, "target", 0, "Override the eligibility target")
}

// appEnv bundles everything a command needs: config, the open store,
// the active profile, and a calculator over its ledger.
type appEnv struct {
	cfg     config.Config
	store   *store.Store
	profile string
	calc    *rolling.Calculator
}

func (e *appEnv) Close() {
	if e.store != nil {
		_ = e.store.Close()
	}
}

// openEnv loads config, opens the store, and builds a calculator for the
// active profile. Stale hypothetical entries past today+15 are pruned on
// the way in, mirroring the day-rollover cleanup of the data.
func openEnv() (*appEnv, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if flagDataDir != "" {
		cfg.General.DataDir = flagDataDir
	}

	st, err := store.Open(cfg.DBPath())
	if err != nil {
		return nil, err
	}

	profile := flagProfile
	if profile == "" {
		profile = cfg.General.Profile
	}

	p, err := st.GetProfile(profile)
	if err != nil {
		_ = st.Close()
		return nil, fmt.Errorf("profile %q: %w", profile, err)
	}

	led, err := st.LoadLedger(p.Name)
	if err != nil {
		_ = st.Close()
		return nil, err
	}

	if removed := led.PruneAfter(ledger.AddDays(ledger.Today(), rolling.DefaultWindowDays)); removed > 0 {
		_ = st.SaveLedger(p.Name, led)
	}

	params := cfg.Params()
	if p.DailyScore > 0 {
		params.DefaultScore = p.DailyScore
	}
	if p.Threshold > 0 {
		params.Threshold = p.Threshold
	}
	if flagScore > 0 {
		params.DefaultScore = flagScore
	}
	if flagTarget > 0 {
		params.Threshold = flagTarget
	}

	return &appEnv{
		cfg:     cfg,
		store:   st,
		profile: p.Name,
		calc:    rolling.New(led, params),
	}, nil
}
