package core

// Listener receives the engine's outbound events. Presentation and audio
// collaborators implement this; the engine never calls into rendering
// directly.
type Listener interface {
	// PlatformStateChanged fires on every tile transition.
	PlatformStateChanged(index int, state TileState)

	// JudgmentMade fires when a timing challenge resolves, including the
	// synthesized Miss on timeout. Plain-tile repairs emit no judgment.
	JudgmentMade(index int, j Judgment, accuracy float64)

	// ChainCollapseStep fires for each tile the collapse sequencer drops.
	ChainCollapseStep(index int)

	// RunEnded fires exactly once per run, after the win condition or
	// after the collapse sequence finishes.
	RunEnded(success bool, finalScore int, rank Rank)
}

// NopListener is a Listener that discards all events.
type NopListener struct{}

func (NopListener) PlatformStateChanged(int, TileState) {}
func (NopListener) JudgmentMade(int, Judgment, float64) {}
func (NopListener) ChainCollapseStep(int)               {}
func (NopListener) RunEnded(bool, int, Rank)            {}

var _ Listener = NopListener{}
