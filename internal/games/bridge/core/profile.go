package core

import "fmt"

// Thresholds holds the accuracy cutoffs for judging a timing input,
// in percent. They must be strictly descending: an accuracy at or above
// PerfectMin is Perfect, at or above GoodMin is Good, at or above BadMin
// is Bad, and anything below BadMin is a Miss.
type Thresholds struct {
	PerfectMin float64
	GoodMin    float64
	BadMin     float64
}

// Validate checks threshold ordering. Violations are configuration errors
// and must be caught at profile-load time, never at runtime.
func (t Thresholds) Validate() error {
	if !(t.PerfectMin > t.GoodMin && t.GoodMin > t.BadMin && t.BadMin >= 0) {
		return fmt.Errorf("thresholds must satisfy perfect > good > bad >= 0, got %.2f/%.2f/%.2f",
			t.PerfectMin, t.GoodMin, t.BadMin)
	}
	if t.PerfectMin > 100 {
		return fmt.Errorf("perfect threshold %.2f exceeds 100%%", t.PerfectMin)
	}
	return nil
}

// Judge maps an accuracy percentage to a judgment.
// Boundaries are inclusive: accuracy exactly at a cutoff earns that tier.
func (t Thresholds) Judge(accuracy float64) Judgment {
	switch {
	case accuracy >= t.PerfectMin:
		return JudgmentPerfect
	case accuracy >= t.GoodMin:
		return JudgmentGood
	case accuracy >= t.BadMin:
		return JudgmentBad
	default:
		return JudgmentMiss
	}
}

// DifficultyProfile holds the static per-difficulty parameters for a run.
// Profiles are immutable once a run starts.
type DifficultyProfile struct {
	ID                  string  // Tier id ("easy", "normal", "hard", "tutorial")
	Label               string  // Display name
	BridgeLength        int     // Number of platforms
	RequiredStrikes     int     // Hammer strikes before a fragile tile falls
	TimeLimitSeconds    float64 // Run time budget used by the score formula
	TimingWindowSeconds float64 // Duration of the catch window
	FragileTileCount    int     // Fragile tiles placed along the bridge
	Thresholds          Thresholds
}

// Validate checks the profile for configuration errors.
func (p DifficultyProfile) Validate() error {
	if p.BridgeLength <= 0 {
		return fmt.Errorf("profile %s: bridge length must be positive, got %d", p.ID, p.BridgeLength)
	}
	if p.RequiredStrikes <= 0 {
		return fmt.Errorf("profile %s: required strikes must be positive, got %d", p.ID, p.RequiredStrikes)
	}
	if p.TimeLimitSeconds <= 0 {
		return fmt.Errorf("profile %s: time limit must be positive, got %f", p.ID, p.TimeLimitSeconds)
	}
	if p.TimingWindowSeconds <= 0 {
		return fmt.Errorf("profile %s: timing window must be positive, got %f", p.ID, p.TimingWindowSeconds)
	}
	if p.FragileTileCount < 0 || p.FragileTileCount > p.BridgeLength {
		return fmt.Errorf("profile %s: fragile tile count %d out of range [0, %d]",
			p.ID, p.FragileTileCount, p.BridgeLength)
	}
	if err := p.Thresholds.Validate(); err != nil {
		return fmt.Errorf("profile %s: %w", p.ID, err)
	}
	return nil
}

// Built-in difficulty tiers. Easier tiers use wider windows and more
// forgiving thresholds.
var builtinProfiles = map[string]DifficultyProfile{
	"easy": {
		ID:                  "easy",
		Label:               "Easy",
		BridgeLength:        8,
		RequiredStrikes:     3,
		TimeLimitSeconds:    60,
		TimingWindowSeconds: 2.4,
		FragileTileCount:    3,
		Thresholds:          Thresholds{PerfectMin: 75, GoodMin: 55, BadMin: 35},
	},
	"normal": {
		ID:                  "normal",
		Label:               "Normal",
		BridgeLength:        10,
		RequiredStrikes:     4,
		TimeLimitSeconds:    45,
		TimingWindowSeconds: 2.0,
		FragileTileCount:    5,
		Thresholds:          Thresholds{PerfectMin: 85, GoodMin: 67.5, BadMin: 50},
	},
	"hard": {
		ID:                  "hard",
		Label:               "Hard",
		BridgeLength:        12,
		RequiredStrikes:     5,
		TimeLimitSeconds:    40,
		TimingWindowSeconds: 1.6,
		FragileTileCount:    7,
		Thresholds:          Thresholds{PerfectMin: 90, GoodMin: 75, BadMin: 60},
	},
	"tutorial": {
		ID:                  "tutorial",
		Label:               "Tutorial",
		BridgeLength:        4,
		RequiredStrikes:     2,
		TimeLimitSeconds:    90,
		TimingWindowSeconds: 3.0,
		FragileTileCount:    2,
		Thresholds:          Thresholds{PerfectMin: 70, GoodMin: 50, BadMin: 30},
	},
}

// ProfileFor returns the built-in profile for the given tier id.
func ProfileFor(tier string) (DifficultyProfile, error) {
	p, ok := builtinProfiles[tier]
	if !ok {
		return DifficultyProfile{}, fmt.Errorf("unknown difficulty tier %q", tier)
	}
	return p, nil
}

// Tiers lists the selectable tier ids in ascending difficulty order.
func Tiers() []string {
	return []string{"easy", "normal", "hard"}
}

// Tuning holds engine-wide timing parameters that are not part of the
// difficulty table.
type Tuning struct {
	BarHalfWidth     float64 // Half-width of the cursor sweep, in bar units
	CollapseInterval float64 // Delay between chain-collapse steps, seconds
	GameOverDelay    float64 // Pause after the last collapse before game over
}

// DefaultTuning returns the standard engine tuning.
func DefaultTuning() Tuning {
	return Tuning{
		BarHalfWidth:     500,
		CollapseInterval: 0.35,
		GameOverDelay:    1.5,
	}
}

// Validate checks the tuning for configuration errors.
func (t Tuning) Validate() error {
	if t.BarHalfWidth <= 0 {
		return fmt.Errorf("bar half-width must be positive, got %f", t.BarHalfWidth)
	}
	if t.CollapseInterval <= 0 {
		return fmt.Errorf("collapse interval must be positive, got %f", t.CollapseInterval)
	}
	if t.GameOverDelay < 0 {
		return fmt.Errorf("game-over delay must not be negative, got %f", t.GameOverDelay)
	}
	return nil
}
