package core

// Sequencer runs the chain collapse: once triggered, it walks the bridge in
// ascending index order and drops every tile that is not already terminal,
// pausing a fixed interval between steps. Tiles created during the pass are
// caught by a final sweep. After the last collapse plus the game-over delay
// it signals terminal game over. The sequence is irreversible and driven
// entirely by Tick, independent of player input.
type Sequencer struct {
	interval      float64
	gameOverDelay float64
	platforms     func() []*Platform
	step          func(index int)
	finished      func()

	active bool
	done   bool
	next   int     // Next index to consider
	timer  float64 // Countdown to the next action
	swept  bool    // Final sweep completed, waiting out the game-over delay
}

// NewSequencer creates an inactive collapse sequencer. The platforms
// provider is consulted on every step so dynamically spawned tiles are seen;
// step and finished are the outbound signals.
func NewSequencer(interval, gameOverDelay float64, platforms func() []*Platform, step func(index int), finished func()) *Sequencer {
	return &Sequencer{
		interval:      interval,
		gameOverDelay: gameOverDelay,
		platforms:     platforms,
		step:          step,
		finished:      finished,
	}
}

// Active reports whether the collapse is in progress (or already finished).
// The engine refuses new repairs while this is true.
func (q *Sequencer) Active() bool { return q.active }

// Done reports whether the game-over signal has fired.
func (q *Sequencer) Done() bool { return q.done }

// Reset cancels the sequence without applying pending collapses.
func (q *Sequencer) Reset() {
	q.active = false
	q.done = false
	q.next = 0
	q.timer = 0
	q.swept = false
}

// Trigger starts the collapse. The first tile drops immediately; the rest
// follow on the interval. Triggering an already-running sequence is a no-op.
func (q *Sequencer) Trigger(originIndex int) {
	if q.active {
		return
	}
	q.active = true
	q.next = 0
	q.swept = false
	q.timer = 0

	// Drop the first still-standing tile right away.
	q.advance()
}

// Tick drives the cascade forward by dt seconds.
func (q *Sequencer) Tick(dt float64) {
	if !q.active || q.done {
		return
	}

	q.timer -= dt
	for q.timer <= 0 && !q.done {
		if q.swept {
			q.done = true
			q.finished()
			return
		}
		q.advance()
	}
}

// advance collapses the next non-terminal tile, or runs the final sweep and
// arms the game-over delay once the ordered pass is exhausted.
func (q *Sequencer) advance() {
	tiles := q.platforms()

	for q.next < len(tiles) {
		p := tiles[q.next]
		q.next++
		if p.Collapse() {
			q.step(p.Index())
			q.timer = q.interval
			return
		}
		// Already terminal: skip with no delay and no event.
	}

	// Ordered pass done. Sweep anything spawned during the pass, then wait
	// out the game-over delay.
	for _, p := range q.platforms() {
		if p.Collapse() {
			q.step(p.Index())
		}
	}
	q.swept = true
	q.timer = q.gameOverDelay
}
