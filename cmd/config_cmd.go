package cmd

import (
	"fmt"

	"github.com/theirongolddev/alphawin/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Active profile: %s\n", cfg.General.Profile)
	fmt.Printf("    Database:       %s\n", cfg.DBPath())
	fmt.Println()

	fmt.Println("  [Scoring]")
	fmt.Printf("    Default daily score: %d\n", cfg.Scoring.DefaultScore)
	fmt.Printf("    Eligibility target:  %d\n", cfg.Scoring.Threshold)
	fmt.Printf("    Per-claim deduction: %d\n", cfg.Scoring.ClaimDeduction)
	fmt.Printf("    Prediction horizon:  %d days\n", cfg.Scoring.HorizonDays)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  Run `alphawin setup` to reconfigure.")
	return nil
}
