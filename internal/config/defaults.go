package config

import (
	_ "embed"
)

//go:embed defaults/bridge.yaml
var defaultBridgeYAML []byte

// DefaultBridgeConfig returns the built-in bridge configuration. The values
// mirror defaults/bridge.yaml and serve as the fallback when the embedded
// file cannot be parsed.
func DefaultBridgeConfig() BridgeConfig {
	return BridgeConfig{
		Tuning: TuningConfig{
			BarHalfWidth:     500,
			CollapseInterval: 0.35,
			GameOverDelay:    1.5,
		},
		Tiers: map[string]TierConfig{
			"easy": {
				Label:               "Easy",
				BridgeLength:        8,
				RequiredStrikes:     3,
				TimeLimitSeconds:    60,
				TimingWindowSeconds: 2.4,
				FragileTileCount:    3,
				Thresholds:          ThresholdsConfig{Perfect: 75, Good: 55, Bad: 35},
			},
			"normal": {
				Label:               "Normal",
				BridgeLength:        10,
				RequiredStrikes:     4,
				TimeLimitSeconds:    45,
				TimingWindowSeconds: 2.0,
				FragileTileCount:    5,
				Thresholds:          ThresholdsConfig{Perfect: 85, Good: 67.5, Bad: 50},
			},
			"hard": {
				Label:               "Hard",
				BridgeLength:        12,
				RequiredStrikes:     5,
				TimeLimitSeconds:    40,
				TimingWindowSeconds: 1.6,
				FragileTileCount:    7,
				Thresholds:          ThresholdsConfig{Perfect: 90, Good: 75, Bad: 60},
			},
			"tutorial": {
				Label:               "Tutorial",
				BridgeLength:        4,
				RequiredStrikes:     2,
				TimeLimitSeconds:    90,
				TimingWindowSeconds: 3.0,
				FragileTileCount:    2,
				Thresholds:          ThresholdsConfig{Perfect: 70, Good: 50, Bad: 30},
			},
		},
		Reset: ResetConfig{
			Passphrase: "bridgefall",
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultBridgeYAML
}
