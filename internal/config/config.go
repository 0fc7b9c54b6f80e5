// Package config handles alphawin configuration loading and saving.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/theirongolddev/alphawin/internal/rolling"
)

// Config holds all alphawin configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Scoring    ScoringConfig    `toml:"scoring"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	Profile string `toml:"profile"`
	DataDir string `toml:"data_dir,omitempty"`
}

// ScoringConfig holds the rolling-window rule settings. A missing or
// non-positive value falls back to the documented default at use time
// rather than failing.
type ScoringConfig struct {
	DefaultScore   int `toml:"default_score"`
	Threshold      int `toml:"threshold"`
	ClaimDeduction int `toml:"claim_deduction"`
	HorizonDays    int `toml:"horizon_days"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			Profile: "default",
		},
		Scoring: ScoringConfig{
			DefaultScore:   rolling.DefaultDailyScore,
			Threshold:      rolling.DefaultThreshold,
			ClaimDeduction: rolling.DefaultClaimDeduction,
			HorizonDays:    rolling.DefaultHorizonDays,
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// Params converts the scoring section into calculator parameters.
// Non-positive entries are normalized inside the calculator.
func (c Config) Params() rolling.Params {
	return rolling.Params{
		DefaultScore:   c.Scoring.DefaultScore,
		Threshold:      c.Scoring.Threshold,
		ClaimDeduction: c.Scoring.ClaimDeduction,
		HorizonDays:    c.Scoring.HorizonDays,
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "alphawin")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "alphawin")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// DataDir returns the directory holding the profile database, honoring
// the config override.
func (c Config) DataDir() string {
	if c.General.DataDir != "" {
		return c.General.DataDir
	}
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "alphawin")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "alphawin")
}

// DBPath returns the full path to the profile database.
func (c Config) DBPath() string {
	return filepath.Join(c.DataDir(), "profiles.db")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	if err := os.MkdirAll(Dir(), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}
