package core

import (
	"math"
	"testing"
)

func TestAccumulatorRecord(t *testing.T) {
	a := NewAccumulator()

	a.Record(JudgmentPerfect, 100)
	a.Record(JudgmentGood, 70)
	a.Record(JudgmentPerfect, 95)

	s := a.State()
	if s.TotalRepairs != 3 {
		t.Errorf("TotalRepairs = %d, expected 3", s.TotalRepairs)
	}
	if s.AccuracySum != 265 {
		t.Errorf("AccuracySum = %f, expected 265", s.AccuracySum)
	}
	if want := 0.02 + 0.01 + 0.02; !closeTo(s.TimingBonus, want) {
		t.Errorf("TimingBonus = %f, expected %f", s.TimingBonus, want)
	}
	if s.Combo != 3 || s.MaxCombo != 3 {
		t.Errorf("combo = %d/%d, expected 3/3", s.Combo, s.MaxCombo)
	}
}

func TestAccumulatorComboResets(t *testing.T) {
	a := NewAccumulator()

	a.Record(JudgmentPerfect, 100)
	a.Record(JudgmentPerfect, 100)
	a.Record(JudgmentBad, 55)

	s := a.State()
	if s.Combo != 0 {
		t.Errorf("Bad should reset combo, got %d", s.Combo)
	}
	if s.MaxCombo != 2 {
		t.Errorf("MaxCombo = %d, expected 2", s.MaxCombo)
	}

	a.Record(JudgmentGood, 70)
	a.Record(JudgmentMiss, 10)
	s = a.State()
	if s.Combo != 0 {
		t.Errorf("Miss should reset combo, got %d", s.Combo)
	}
	if s.MaxCombo != 2 {
		t.Errorf("MaxCombo must be non-decreasing, got %d", s.MaxCombo)
	}
	if want := 0.02 + 0.02 - 0.01 + 0.01 - 0.1; !closeTo(s.TimingBonus, want) {
		t.Errorf("TimingBonus = %f, expected %f", s.TimingBonus, want)
	}
}

func TestMaxComboMonotonic(t *testing.T) {
	a := NewAccumulator()
	sequence := []Judgment{
		JudgmentPerfect, JudgmentGood, JudgmentMiss, JudgmentPerfect,
		JudgmentPerfect, JudgmentPerfect, JudgmentBad, JudgmentGood,
	}

	prev := 0
	for _, j := range sequence {
		a.Record(j, 50)
		if got := a.State().MaxCombo; got < prev {
			t.Fatalf("MaxCombo decreased from %d to %d", prev, got)
		} else {
			prev = got
		}
	}
	if a.State().MaxCombo != 3 {
		t.Errorf("MaxCombo = %d, expected 3", a.State().MaxCombo)
	}
}

func TestFinalizeConcreteScenario(t *testing.T) {
	// accuracySum=450 over 5 repairs -> repairRate=90; elapsed=20 of 45
	// -> timeRatio=5/9; baseScore=1000*(5/9)*0.9 = exactly 500;
	// timingBonus=0.08 -> round(500^1.08) = 822 -> rank S.
	a := NewAccumulator()
	a.state = ScoreState{
		TotalRepairs: 5,
		AccuracySum:  450,
		TimingBonus:  0.08,
	}

	if rate := a.RepairRate(); rate != 90 {
		t.Fatalf("RepairRate = %f, expected 90", rate)
	}

	score, rank := a.Finalize(20, 45)
	if want := int(math.Round(math.Pow(500, 1.08))); score != want {
		t.Errorf("finalScore = %d, expected %d", score, want)
	}
	if score != 822 {
		t.Errorf("finalScore = %d, expected 822", score)
	}
	if rank != RankS {
		t.Errorf("rank = %v, expected S", rank)
	}
}

func TestFinalizeNoRepairs(t *testing.T) {
	// A bridge with only plain tiles produces no judgments; the repair
	// rate defaults to 100.
	a := NewAccumulator()

	score, rank := a.Finalize(0, 45)
	if score != 1000 {
		t.Errorf("finalScore = %d, expected 1000", score)
	}
	if rank != RankS {
		t.Errorf("rank = %v, expected S", rank)
	}
}

func TestFinalizeOvertimeClampsToZero(t *testing.T) {
	a := NewAccumulator()
	a.Record(JudgmentPerfect, 100)

	// Elapsed past the limit gives timeRatio 0 and base 0; the power
	// formula must not produce NaN or 1 from pow(0, x).
	score, rank := a.Finalize(100, 45)
	if score != 0 {
		t.Errorf("finalScore = %d, expected 0", score)
	}
	if rank != RankD {
		t.Errorf("rank = %v, expected D", rank)
	}
}

func TestFinalizeNegativeBonus(t *testing.T) {
	a := NewAccumulator()
	for i := 0; i < 12; i++ {
		a.Record(JudgmentMiss, 0)
	}

	// TimingBonus is -1.2, exponent -0.2: the zero base still
	// short-circuits instead of exploding.
	score, _ := a.Finalize(45, 45)
	if score != 0 {
		t.Errorf("finalScore = %d, expected 0", score)
	}
}

func TestRankFor(t *testing.T) {
	tests := []struct {
		score    int
		expected Rank
	}{
		{1000, RankS},
		{800, RankS},
		{799, RankA},
		{600, RankA},
		{599, RankB},
		{400, RankB},
		{399, RankC},
		{200, RankC},
		{199, RankD},
		{0, RankD},
	}
	for _, tt := range tests {
		if got := RankFor(tt.score); got != tt.expected {
			t.Errorf("RankFor(%d) = %v, expected %v", tt.score, got, tt.expected)
		}
	}
}

func TestAccumulatorReset(t *testing.T) {
	a := NewAccumulator()
	a.Record(JudgmentPerfect, 100)
	a.Reset()

	if a.State() != (ScoreState{}) {
		t.Errorf("Reset should zero the state, got %+v", a.State())
	}
}

func closeTo(a, b float64) bool {
	d := a - b
	return d > -1e-9 && d < 1e-9
}
