// Package bridge provides the Bridgefall single-lane repair game: hammer the
// broken tiles back into place and catch the fragile ones before they fall.
package bridge

import (
	"math/rand"

	"github.com/okhmel/bridgefall/internal/config"
	platformcore "github.com/okhmel/bridgefall/internal/core"
	"github.com/okhmel/bridgefall/internal/games/bridge/core"
	"github.com/okhmel/bridgefall/internal/registry"
)

// judgmentFlashTicks is how long a judgment banner stays on screen.
const judgmentFlashTicks = 45

// Game implements the bridge-repair game on top of the pure engine.
// It owns input mapping, the fixed-tick clock, and rendering; all run rules
// live in the core engine.
type Game struct {
	id    string
	title string

	tutorial bool

	rng    *rand.Rand
	engine *core.Engine

	// Screen dimensions
	screenW int
	screenH int

	// Status
	tick     uint64
	dt       float64
	paused   bool
	tooSmall bool
	broken   bool // Engine construction failed

	// Judgment banner state
	flash         core.Judgment
	flashAccuracy float64
	flashUntil    uint64
	collapseFlash uint64
}

// Package-level variables for configuration
var (
	selectedDifficulty = "normal"
	configPath         string
)

// SetDifficulty selects the tier for the next run ("easy", "normal", "hard").
func SetDifficulty(tier string) {
	selectedDifficulty = tier
}

// GetDifficulty returns the currently selected tier.
func GetDifficulty() string {
	return selectedDifficulty
}

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

func init() {
	registry.Register("bridge", func() registry.Game {
		return New(false)
	})
	registry.Register("bridge_tutorial", func() registry.Game {
		return New(true)
	})
}

// New creates a new bridge game. Tutorial mode uses the fixed teaching
// bridge and the forgiving tutorial profile.
func New(tutorial bool) *Game {
	id, title := "bridge", "Bridgefall"
	if tutorial {
		id, title = "bridge_tutorial", "Bridgefall Tutorial"
	}
	return &Game{
		id:       id,
		title:    title,
		tutorial: tutorial,
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.title
}

// Reset initializes or restarts the game.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tick = 0
	g.paused = false
	g.broken = false
	g.flashUntil = 0
	g.collapseFlash = 0

	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	g.dt = 1.0 / float64(tickRate)

	bcfg, err := config.LoadBridge(configPath)
	if err != nil {
		bcfg = config.DefaultBridgeConfig()
	}

	profile, layout := g.runSetup(bcfg)

	g.engine, err = core.NewEngine(profile, bcfg.Tuning.ToTuning(), layout, g)
	if err != nil {
		// Only reachable with a corrupt difficulty table.
		g.broken = true
		return
	}

	g.checkSize()
}

// runSetup picks the profile and bridge layout for a fresh run.
func (g *Game) runSetup(cfg config.BridgeConfig) (core.DifficultyProfile, []core.TileKind) {
	if g.tutorial {
		profile, err := cfg.Profile("tutorial")
		if err != nil {
			profile, _ = core.ProfileFor("tutorial")
		}
		return profile, core.TutorialLayout()
	}

	profile, err := cfg.Profile(selectedDifficulty)
	if err != nil {
		// Unknown tier in a custom config; fall back to the built-in table.
		if profile, err = core.ProfileFor(selectedDifficulty); err != nil {
			profile, _ = core.ProfileFor("normal")
		}
	}
	return profile, core.GenerateLayout(profile, g.rng)
}

// checkSize verifies the bridge and HUD fit the terminal.
func (g *Game) checkSize() {
	needW := len(g.engine.Platforms())*tileW + 4
	if barW := timingBarWidth + 4; barW > needW {
		needW = barW
	}
	g.tooSmall = g.screenW < needW || g.screenH < minScreenH
}

// Step advances the game by one tick.
func (g *Game) Step(input platformcore.InputFrame) platformcore.StepResult {
	g.tick++

	if g.broken {
		return platformcore.StepResult{State: g.State()}
	}

	// Handle restart
	if input.Has(platformcore.ActionRestart) && g.engine.Ended() {
		g.Reset(platformcore.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: int(1.0/g.dt + 0.5),
		})
		return platformcore.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if input.Has(platformcore.ActionPause) && !g.engine.Ended() {
		g.paused = !g.paused
	}

	if g.paused || g.tooSmall || g.engine.Ended() {
		return platformcore.StepResult{State: g.State()}
	}

	// One key does both jobs: a strike while the tile holds still, the
	// catch once it is falling.
	if input.Has(platformcore.ActionHit) {
		if g.engine.Session().Challenging() {
			g.engine.TimingInput()
		} else {
			g.engine.Strike()
		}
	}

	g.engine.Tick(g.dt)

	return platformcore.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	if g.broken {
		return platformcore.GameState{GameOver: true}
	}

	score := g.engine.Score()
	accuracy := 100.0
	if score.TotalRepairs > 0 {
		accuracy = score.AccuracySum / float64(score.TotalRepairs)
	}

	return platformcore.GameState{
		Score:        g.engine.FinalScore(),
		GameOver:     g.engine.Ended(),
		Won:          g.engine.Success(),
		Paused:       g.paused,
		Difficulty:   g.engine.Profile().ID,
		Rank:         string(g.engine.FinalRank()),
		Accuracy:     accuracy,
		MaxCombo:     score.MaxCombo,
		DurationSecs: g.engine.Clock(),
	}
}

// PlatformStateChanged implements the engine listener.
func (g *Game) PlatformStateChanged(index int, state core.TileState) {}

// JudgmentMade flashes the judgment banner.
func (g *Game) JudgmentMade(index int, j core.Judgment, accuracy float64) {
	g.flash = j
	g.flashAccuracy = accuracy
	g.flashUntil = g.tick + judgmentFlashTicks
}

// ChainCollapseStep keeps the collapse banner alive while tiles drop.
func (g *Game) ChainCollapseStep(index int) {
	g.collapseFlash = g.tick + judgmentFlashTicks
}

// RunEnded implements the engine listener. Outcome state is read from the
// engine at render time.
func (g *Game) RunEnded(success bool, finalScore int, rank core.Rank) {}
