package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/theirongolddev/alphawin/internal/config"
	"github.com/theirongolddev/alphawin/internal/ledger"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)

	// Load existing config or defaults
	cfg, _ := config.Load()

	fmt.Println()
	fmt.Println("  Welcome to alphawin!")
	fmt.Println()

	// 1. Daily score
	fmt.Println("  1. Default daily score")
	fmt.Printf("     Points earned on a day with no explicit entry. Current: %d\n",
		cfg.Scoring.DefaultScore)
	fmt.Print("     > ")
	if n := readInt(reader); n > 0 {
		cfg.Scoring.DefaultScore = n
	}
	fmt.Println()

	// 2. Target
	fmt.Println("  2. Eligibility target")
	fmt.Printf("     Window sum needed to claim. Current: %d\n", cfg.Scoring.Threshold)
	fmt.Print("     > ")
	if n := readInt(reader); n > 0 {
		cfg.Scoring.Threshold = n
	}
	fmt.Println()

	// 3. Horizon
	fmt.Println("  3. Prediction horizon (days)")
	fmt.Printf("     How far ahead `alphawin predict` scans. Current: %d\n",
		cfg.Scoring.HorizonDays)
	fmt.Print("     > ")
	if n := readInt(reader); n > 0 {
		cfg.Scoring.HorizonDays = n
	}
	fmt.Println()

	// 4. Theme
	fmt.Println("  4. Color theme")
	fmt.Println("     (1) Flexoki Dark [default]")
	fmt.Println("     (2) Catppuccin Mocha")
	fmt.Println("     (3) Tokyo Night")
	fmt.Println("     (4) Terminal (ANSI 16)")
	fmt.Print("     > ")
	themeChoice, _ := reader.ReadString('\n')
	switch strings.TrimSpace(themeChoice) {
	case "2":
		cfg.Appearance.Theme = "catppuccin-mocha"
	case "3":
		cfg.Appearance.Theme = "tokyo-night"
	case "4":
		cfg.Appearance.Theme = "terminal"
	default:
		cfg.Appearance.Theme = "flexoki-dark"
	}

	// Save
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Printf("  Today is %s; record it with `alphawin set today raw <points>`.\n",
		ledger.Today())
	fmt.Println("  Run `alphawin setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}

// readInt reads one line and coerces it the same way table edits do.
// Blank or malformed input yields 0, which callers treat as "keep current".
func readInt(reader *bufio.Reader) int {
	line, _ := reader.ReadString('\n')
	if strings.TrimSpace(line) == "" {
		return 0
	}
	if n := ledger.ParseAmount(line); n > 0 {
		return n
	}
	return 0
}
