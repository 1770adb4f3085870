// Package config provides YAML-based gameplay configuration for the
// bridge game: the difficulty tier table, engine tuning, and the
// leaderboard reset gate.
package config

import (
	"fmt"

	"github.com/okhmel/bridgefall/internal/games/bridge/core"
)

// BridgeConfig contains all configuration for the bridge game.
type BridgeConfig struct {
	Tuning TuningConfig          `yaml:"tuning"`
	Tiers  map[string]TierConfig `yaml:"tiers"`
	Reset  ResetConfig           `yaml:"reset"`
}

// TuningConfig defines engine-wide timing parameters.
type TuningConfig struct {
	BarHalfWidth     float64 `yaml:"bar_half_width"`
	CollapseInterval float64 `yaml:"collapse_interval"`
	GameOverDelay    float64 `yaml:"game_over_delay"`
}

// TierConfig defines one difficulty tier.
type TierConfig struct {
	Label               string           `yaml:"label"`
	BridgeLength        int              `yaml:"bridge_length"`
	RequiredStrikes     int              `yaml:"required_strikes"`
	TimeLimitSeconds    float64          `yaml:"time_limit_seconds"`
	TimingWindowSeconds float64          `yaml:"timing_window_seconds"`
	FragileTileCount    int              `yaml:"fragile_tile_count"`
	Thresholds          ThresholdsConfig `yaml:"thresholds"`
}

// ThresholdsConfig defines the judgment cutoffs in accuracy percent.
type ThresholdsConfig struct {
	Perfect float64 `yaml:"perfect"`
	Good    float64 `yaml:"good"`
	Bad     float64 `yaml:"bad"`
}

// ResetConfig gates the destructive leaderboard reset command.
type ResetConfig struct {
	Passphrase string `yaml:"passphrase"`
}

// ToTuning converts the yaml tuning into engine tuning.
func (c TuningConfig) ToTuning() core.Tuning {
	return core.Tuning{
		BarHalfWidth:     c.BarHalfWidth,
		CollapseInterval: c.CollapseInterval,
		GameOverDelay:    c.GameOverDelay,
	}
}

// ToProfile converts a tier entry into an engine difficulty profile.
func (c TierConfig) ToProfile(id string) core.DifficultyProfile {
	return core.DifficultyProfile{
		ID:                  id,
		Label:               c.Label,
		BridgeLength:        c.BridgeLength,
		RequiredStrikes:     c.RequiredStrikes,
		TimeLimitSeconds:    c.TimeLimitSeconds,
		TimingWindowSeconds: c.TimingWindowSeconds,
		FragileTileCount:    c.FragileTileCount,
		Thresholds: core.Thresholds{
			PerfectMin: c.Thresholds.Perfect,
			GoodMin:    c.Thresholds.Good,
			BadMin:     c.Thresholds.Bad,
		},
	}
}

// Validate checks every tier and the tuning for configuration errors.
// Malformed configuration is rejected at load, never mid-run.
func (c BridgeConfig) Validate() error {
	if err := c.Tuning.ToTuning().Validate(); err != nil {
		return fmt.Errorf("tuning: %w", err)
	}
	if len(c.Tiers) == 0 {
		return fmt.Errorf("no difficulty tiers defined")
	}
	for id, tier := range c.Tiers {
		if err := tier.ToProfile(id).Validate(); err != nil {
			return fmt.Errorf("tier %q: %w", id, err)
		}
	}
	return nil
}

// Profile returns the profile for the given tier id.
func (c BridgeConfig) Profile(tier string) (core.DifficultyProfile, error) {
	t, ok := c.Tiers[tier]
	if !ok {
		return core.DifficultyProfile{}, fmt.Errorf("unknown difficulty tier %q", tier)
	}
	return t.ToProfile(tier), nil
}
