// Package core implements the bridge repair engine: the per-tile repair
// state machine, the timing-window evaluator, the chain-collapse sequencer,
// and score accounting. It is pure logic with no rendering or I/O; time only
// advances through explicit Tick calls, so every run is deterministic and
// replayable.
package core

// Judgment is the categorical outcome of a timing challenge.
type Judgment int

const (
	JudgmentPerfect Judgment = iota
	JudgmentGood
	JudgmentBad
	JudgmentMiss
)

// String returns the display name of the judgment.
func (j Judgment) String() string {
	switch j {
	case JudgmentPerfect:
		return "Perfect"
	case JudgmentGood:
		return "Good"
	case JudgmentBad:
		return "Bad"
	case JudgmentMiss:
		return "Miss"
	default:
		return "Unknown"
	}
}

// Success reports whether the judgment keeps the tile (anything but Miss).
func (j Judgment) Success() bool {
	return j != JudgmentMiss
}
