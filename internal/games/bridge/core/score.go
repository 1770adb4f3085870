package core

import "math"

// Rank is the letter grade for a finished run.
type Rank string

const (
	RankS Rank = "S"
	RankA Rank = "A"
	RankB Rank = "B"
	RankC Rank = "C"
	RankD Rank = "D"
	RankF Rank = "F" // Failed runs, regardless of score
)

// RankFor maps a final score to a letter rank for a successful run.
func RankFor(score int) Rank {
	switch {
	case score >= 800:
		return RankS
	case score >= 600:
		return RankA
	case score >= 400:
		return RankB
	case score >= 200:
		return RankC
	default:
		return RankD
	}
}

// ScoreState holds the running totals for a run.
type ScoreState struct {
	TotalRepairs int
	AccuracySum  float64
	TimingBonus  float64
	Combo        int
	MaxCombo     int
}

// Accumulator consumes judgments and computes the final score.
// It is reset at run start and mutated only through Record.
type Accumulator struct {
	state ScoreState
}

// NewAccumulator creates a zeroed score accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{}
}

// Reset clears all totals for a new run.
func (a *Accumulator) Reset() {
	a.state = ScoreState{}
}

// State returns a snapshot of the running totals.
func (a *Accumulator) State() ScoreState {
	return a.state
}

// Record applies one judgment to the running totals.
// Perfect and Good extend the combo and add a timing bonus; Bad and Miss
// reset the combo and subtract from the bonus.
func (a *Accumulator) Record(j Judgment, accuracyPercent float64) {
	a.state.TotalRepairs++
	a.state.AccuracySum += accuracyPercent

	switch j {
	case JudgmentPerfect:
		a.state.TimingBonus += 0.02
		a.state.Combo++
	case JudgmentGood:
		a.state.TimingBonus += 0.01
		a.state.Combo++
	case JudgmentBad:
		a.state.TimingBonus -= 0.01
		a.state.Combo = 0
	case JudgmentMiss:
		a.state.TimingBonus -= 0.1
		a.state.Combo = 0
	}

	if a.state.Combo > a.state.MaxCombo {
		a.state.MaxCombo = a.state.Combo
	}
}

// RepairRate returns the average accuracy percent across all judged
// repairs, or 100 if none occurred.
func (a *Accumulator) RepairRate() float64 {
	if a.state.TotalRepairs == 0 {
		return 100
	}
	return a.state.AccuracySum / float64(a.state.TotalRepairs)
}

// Finalize computes the final score for a completed run.
//
//	timeRatio  = clamp01(1 - elapsed/timeLimit)
//	baseScore  = 1000 * timeRatio * repairRate/100
//	finalScore = round(baseScore ^ (1 + timingBonus))
//
// A non-positive base short-circuits to 0: raising it to a fractional
// exponent is undefined, and pow(0, 0) would yield 1.
func (a *Accumulator) Finalize(elapsedTime, timeLimit float64) (int, Rank) {
	timeRatio := clamp01(1 - elapsedTime/timeLimit)
	baseScore := 1000 * timeRatio * (a.RepairRate() / 100)

	if baseScore <= 0 {
		return 0, RankFor(0)
	}

	finalScore := int(math.Round(math.Pow(baseScore, 1+a.state.TimingBonus)))
	return finalScore, RankFor(finalScore)
}
