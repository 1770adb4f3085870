package core

import "fmt"

// Engine orchestrates one run across the bridge. It owns the platforms, the
// run clock, and the player position, and wires the repair session, the
// collapse sequencer, and the score accumulator together. All timing is
// tick-driven: the engine has no clock of its own beyond accumulated dt.
//
// The engine is not safe for concurrent use; its methods must be called from
// one goroutine (the platform's tick loop).
type Engine struct {
	profile  DifficultyProfile
	tuning   Tuning
	listener Listener

	platforms   []*Platform
	playerIndex int
	clock       float64

	session  *Session
	collapse *Sequencer
	score    *Accumulator

	ended   bool
	success bool
	final   int
	rank    Rank
}

// NewEngine creates an engine for the given layout. The profile and tuning
// are validated here: malformed configuration fails fast at construction,
// never mid-run.
func NewEngine(profile DifficultyProfile, tuning Tuning, layout []TileKind, listener Listener) (*Engine, error) {
	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("bridge: %w", err)
	}
	if err := tuning.Validate(); err != nil {
		return nil, fmt.Errorf("bridge: %w", err)
	}
	if len(layout) == 0 {
		return nil, fmt.Errorf("bridge: empty layout")
	}
	if listener == nil {
		listener = NopListener{}
	}

	e := &Engine{
		profile:  profile,
		tuning:   tuning,
		listener: listener,
		score:    NewAccumulator(),
	}
	e.session = NewSession(profile, tuning.BarHalfWidth, e.emitState)
	e.collapse = NewSequencer(tuning.CollapseInterval, tuning.GameOverDelay,
		e.platformList, e.emitCollapseStep, e.finishCollapsed)

	e.start(layout)
	return e, nil
}

// start resets all run state for the given layout.
func (e *Engine) start(layout []TileKind) {
	e.platforms = BuildPlatforms(layout)
	e.playerIndex = 0
	e.clock = 0
	e.ended = false
	e.success = false
	e.final = 0
	e.rank = ""
	e.score.Reset()
	e.session.Reset()
	e.collapse.Reset()

	// The player steps onto the first tile immediately.
	e.session.BeginRepair(e.platforms[0])
}

// Reset cancels the current run, dropping any in-flight challenge or
// collapse without their pending side effects, and starts over on a fresh
// layout.
func (e *Engine) Reset(layout []TileKind) error {
	if len(layout) == 0 {
		return fmt.Errorf("bridge: empty layout")
	}
	e.start(layout)
	return nil
}

// Profile returns the run's difficulty profile.
func (e *Engine) Profile() DifficultyProfile { return e.profile }

// Platforms returns the bridge tiles in index order.
func (e *Engine) Platforms() []*Platform { return e.platforms }

// PlayerIndex returns the tile the player currently stands on.
func (e *Engine) PlayerIndex() int { return e.playerIndex }

// Clock returns the run's elapsed time in seconds.
func (e *Engine) Clock() float64 { return e.clock }

// TimeRemaining returns the time left before the limit expires.
func (e *Engine) TimeRemaining() float64 {
	remaining := e.profile.TimeLimitSeconds - e.clock
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Score returns a snapshot of the running totals.
func (e *Engine) Score() ScoreState { return e.score.State() }

// Session returns the repair session for read access.
func (e *Engine) Session() *Session { return e.session }

// Collapsing reports whether the chain collapse is in progress.
func (e *Engine) Collapsing() bool { return e.collapse.Active() }

// Ended reports whether the run is over.
func (e *Engine) Ended() bool { return e.ended }

// Success reports whether the run ended with the bridge crossed.
func (e *Engine) Success() bool { return e.ended && e.success }

// FinalScore returns the final score. Zero until the run ends.
func (e *Engine) FinalScore() int { return e.final }

// FinalRank returns the letter rank. Empty until the run ends.
func (e *Engine) FinalRank() Rank { return e.rank }

// Strike lands a hammer blow on the tile under repair. Ignored once the
// collapse is running or the run is over.
func (e *Engine) Strike() {
	if e.ended || e.collapse.Active() {
		return
	}
	if e.session.Strike(e.clock) {
		// A plain tile completed; move on.
		e.advance()
	}
}

// TimingInput attempts the catch at the current engine time. A call with no
// open challenge is a no-op.
func (e *Engine) TimingInput() {
	if e.ended || e.collapse.Active() {
		return
	}
	if outcome, ok := e.session.TimingInput(e.clock); ok {
		e.applyOutcome(outcome)
	}
}

// Tick advances all timers by dt seconds: the run clock, the fall and catch
// window of an open challenge, the collapse cascade, and the time limit.
func (e *Engine) Tick(dt float64) {
	if e.ended || dt <= 0 {
		return
	}

	e.clock += dt

	if e.collapse.Active() {
		e.collapse.Tick(dt)
		return
	}

	if outcome, ok := e.session.Tick(dt, e.clock); ok {
		e.applyOutcome(outcome)
		if e.ended || e.collapse.Active() {
			return
		}
	}

	// Running out the clock ends the run the hard way.
	if e.clock >= e.profile.TimeLimitSeconds {
		e.collapse.Trigger(e.playerIndex)
	}
}

// applyOutcome records a judgment and routes the run: a Miss triggers the
// chain collapse from the current tile, anything else advances the player.
func (e *Engine) applyOutcome(o Outcome) {
	e.listener.JudgmentMade(o.Index, o.Judgment, o.Accuracy)
	e.score.Record(o.Judgment, o.Accuracy)

	if o.Judgment == JudgmentMiss {
		e.collapse.Trigger(o.Index)
		return
	}
	e.advance()
}

// advance moves the player to the next tile and begins its repair. The
// absence of a next tile is the win condition, not a fault.
func (e *Engine) advance() {
	e.playerIndex++
	if e.playerIndex >= len(e.platforms) {
		e.finishCrossed()
		return
	}
	e.session.BeginRepair(e.platforms[e.playerIndex])
}

// finishCrossed ends the run in success.
func (e *Engine) finishCrossed() {
	e.ended = true
	e.success = true
	e.final, e.rank = e.score.Finalize(e.clock, e.profile.TimeLimitSeconds)
	e.listener.RunEnded(true, e.final, e.rank)
}

// finishCollapsed ends the run after the collapse cascade completes.
// Failed runs always rank F regardless of score.
func (e *Engine) finishCollapsed() {
	e.ended = true
	e.success = false
	e.final, _ = e.score.Finalize(e.clock, e.profile.TimeLimitSeconds)
	e.rank = RankF
	e.listener.RunEnded(false, e.final, e.rank)
}

// emitState forwards tile transitions to the listener.
func (e *Engine) emitState(index int, state TileState) {
	e.listener.PlatformStateChanged(index, state)
}

// emitCollapseStep forwards collapse steps, mirroring the state change.
func (e *Engine) emitCollapseStep(index int) {
	e.listener.PlatformStateChanged(index, StateCollapsed)
	e.listener.ChainCollapseStep(index)
}

// platformList is the sequencer's view of the bridge.
func (e *Engine) platformList() []*Platform {
	return e.platforms
}

// SpawnPlatform appends a replacement tile past the current end of the
// bridge. Tiles spawned while a collapse is running are dropped by its
// final sweep.
func (e *Engine) SpawnPlatform(kind TileKind) *Platform {
	p := NewPlatform(len(e.platforms), kind)
	e.platforms = append(e.platforms, p)
	return p
}
