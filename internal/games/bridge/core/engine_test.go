package core

import (
	"math/rand"
	"testing"
)

type eventRecorder struct {
	states     []TileState
	judgments  []Judgment
	collapsed  []int
	runEnded   int
	success    bool
	finalScore int
	rank       Rank
}

func (r *eventRecorder) PlatformStateChanged(index int, state TileState) {
	r.states = append(r.states, state)
}

func (r *eventRecorder) JudgmentMade(index int, j Judgment, accuracy float64) {
	r.judgments = append(r.judgments, j)
}

func (r *eventRecorder) ChainCollapseStep(index int) {
	r.collapsed = append(r.collapsed, index)
}

func (r *eventRecorder) RunEnded(success bool, finalScore int, rank Rank) {
	r.runEnded++
	r.success = success
	r.finalScore = finalScore
	r.rank = rank
}

func newTestEngine(t *testing.T, layout []TileKind) (*Engine, *eventRecorder) {
	t.Helper()
	rec := &eventRecorder{}
	e, err := NewEngine(testProfile(), DefaultTuning(), layout, rec)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return e, rec
}

// strikeUntilChallenge hammers the current fragile tile until the catch
// window opens.
func strikeUntilChallenge(t *testing.T, e *Engine) {
	t.Helper()
	for i := 0; i < e.Profile().RequiredStrikes; i++ {
		e.Strike()
	}
	if !e.Session().Challenging() {
		t.Fatal("challenge should be open after the required strikes")
	}
}

// catchAtCenter ticks to the center of the open window and catches.
func catchAtCenter(e *Engine) {
	c := e.Session().Challenge()
	target := c.Start + c.Duration/2
	for e.Clock() < target {
		e.Tick(0.01)
	}
	e.TimingInput()
}

func TestEngineAllPlainRun(t *testing.T) {
	e, rec := newTestEngine(t, []TileKind{KindPlain, KindPlain, KindPlain})

	for i := 0; i < 3; i++ {
		e.Tick(1.0 / 60)
		e.Strike()
	}

	if !e.Ended() || !e.Success() {
		t.Fatal("crossing the last tile should end the run in success")
	}
	if len(rec.judgments) != 0 {
		t.Errorf("plain repairs must emit no judgments, got %v", rec.judgments)
	}
	if rec.runEnded != 1 || !rec.success {
		t.Errorf("RunEnded fired %d times (success=%v), expected once with success",
			rec.runEnded, rec.success)
	}
	// No judged repairs: repair rate defaults to 100 and only elapsed
	// time eats into the score.
	if e.FinalScore() <= 900 {
		t.Errorf("finalScore = %d, expected a near-full score for a fast clean run", e.FinalScore())
	}
	if e.FinalRank() != RankS {
		t.Errorf("rank = %v, expected S", e.FinalRank())
	}
}

func TestEngineFragileRunPerfect(t *testing.T) {
	e, rec := newTestEngine(t, []TileKind{KindFragile, KindPlain, KindFragile})

	strikeUntilChallenge(t, e)
	catchAtCenter(e)

	e.Strike() // Plain tile

	strikeUntilChallenge(t, e)
	catchAtCenter(e)

	if !e.Success() {
		t.Fatal("run should succeed")
	}
	if len(rec.judgments) != 2 {
		t.Fatalf("judgments = %v, expected two", rec.judgments)
	}
	for _, j := range rec.judgments {
		if j != JudgmentPerfect {
			t.Errorf("judgment = %v, expected Perfect at window center", j)
		}
	}

	s := e.Score()
	if s.MaxCombo != 2 {
		t.Errorf("MaxCombo = %d, expected 2", s.MaxCombo)
	}
	if !closeTo(s.TimingBonus, 0.04) {
		t.Errorf("TimingBonus = %f, expected 0.04", s.TimingBonus)
	}
}

func TestEngineMissTriggersChainCollapse(t *testing.T) {
	layout := []TileKind{KindFragile, KindPlain, KindFragile, KindPlain}
	e, rec := newTestEngine(t, layout)

	strikeUntilChallenge(t, e)
	e.TimingInput() // Immediate input at the window edge: Miss

	if !e.Collapsing() {
		t.Fatal("a Miss must start the chain collapse")
	}

	// Repair input is refused while the collapse runs.
	e.Strike()
	e.TimingInput()

	// Drive the cascade to completion.
	for i := 0; i < 2000 && !e.Ended(); i++ {
		e.Tick(1.0 / 60)
	}

	if !e.Ended() || e.Success() {
		t.Fatal("collapse should end the run in failure")
	}
	if e.FinalRank() != RankF {
		t.Errorf("rank = %v, failed runs always rank F", e.FinalRank())
	}
	if rec.runEnded != 1 {
		t.Errorf("RunEnded fired %d times, expected once", rec.runEnded)
	}

	// Every remaining tile collapsed in ascending order; the missed tile
	// itself dropped before the cascade and is skipped by it.
	if len(rec.collapsed) != 3 {
		t.Fatalf("collapse steps = %v, expected the three standing tiles", rec.collapsed)
	}
	for i := 1; i < len(rec.collapsed); i++ {
		if rec.collapsed[i] <= rec.collapsed[i-1] {
			t.Errorf("collapse steps %v not in ascending order", rec.collapsed)
		}
	}
	for _, p := range e.Platforms() {
		if p.State() != StateCollapsed {
			t.Errorf("tile %d state = %v, expected Collapsed", p.Index(), p.State())
		}
	}
}

func TestEngineTimeoutSynthesizesMiss(t *testing.T) {
	e, rec := newTestEngine(t, []TileKind{KindFragile})

	strikeUntilChallenge(t, e)

	// No input: let the window elapse.
	for i := 0; i < 300 && len(rec.judgments) == 0; i++ {
		e.Tick(0.01)
	}

	if len(rec.judgments) != 1 || rec.judgments[0] != JudgmentMiss {
		t.Fatalf("judgments = %v, expected a single synthesized Miss", rec.judgments)
	}
	if !e.Collapsing() && !e.Ended() {
		t.Error("timeout Miss should have triggered the collapse")
	}
}

func TestEngineTimeLimitExpiryCollapses(t *testing.T) {
	e, _ := newTestEngine(t, []TileKind{KindFragile, KindFragile})

	// Stand idle until the clock runs out.
	for i := 0; i < 60*60 && !e.Ended(); i++ {
		e.Tick(1.0 / 60)
	}

	if !e.Ended() || e.Success() {
		t.Fatal("running out the clock should end the run in failure")
	}
	if e.FinalRank() != RankF {
		t.Errorf("rank = %v, expected F", e.FinalRank())
	}
}

func TestEngineResetCancelsEverything(t *testing.T) {
	e, rec := newTestEngine(t, []TileKind{KindFragile, KindFragile})

	strikeUntilChallenge(t, e)
	e.TimingInput() // Miss at the edge: collapse starts

	judgments := len(rec.judgments)
	if err := e.Reset([]TileKind{KindPlain, KindPlain}); err != nil {
		t.Fatalf("Reset: %v", err)
	}

	if e.Collapsing() || e.Ended() {
		t.Error("Reset should cancel the collapse")
	}
	if e.Clock() != 0 {
		t.Errorf("clock = %f, expected 0 after reset", e.Clock())
	}
	if e.Score() != (ScoreState{}) {
		t.Errorf("score = %+v, expected zeroed state", e.Score())
	}

	// No pending side effects fire after cancellation.
	for i := 0; i < 100; i++ {
		e.Tick(1.0 / 60)
	}
	if len(rec.judgments) != judgments {
		t.Error("cancelled challenge emitted a judgment after reset")
	}
	if rec.runEnded != 0 {
		t.Error("cancelled collapse signalled game over after reset")
	}

	// The fresh run is playable.
	e.Strike()
	e.Strike()
	if !e.Success() {
		t.Error("fresh plain run should succeed")
	}
}

func TestEngineInputIgnoredAfterEnd(t *testing.T) {
	e, rec := newTestEngine(t, []TileKind{KindPlain})

	e.Strike()
	if !e.Ended() {
		t.Fatal("run should be over")
	}

	e.Strike()
	e.TimingInput()
	e.Tick(1)

	if rec.runEnded != 1 {
		t.Errorf("RunEnded fired %d times, expected exactly once", rec.runEnded)
	}
}

func TestEngineRejectsInvalidConfig(t *testing.T) {
	bad := testProfile()
	bad.TimingWindowSeconds = 0
	if _, err := NewEngine(bad, DefaultTuning(), []TileKind{KindPlain}, nil); err == nil {
		t.Error("non-positive timing window must fail at construction")
	}

	badTuning := DefaultTuning()
	badTuning.BarHalfWidth = -1
	if _, err := NewEngine(testProfile(), badTuning, []TileKind{KindPlain}, nil); err == nil {
		t.Error("invalid tuning must fail at construction")
	}

	if _, err := NewEngine(testProfile(), DefaultTuning(), nil, nil); err == nil {
		t.Error("empty layout must fail at construction")
	}
}

func TestGenerateLayoutDeterministic(t *testing.T) {
	profile := testProfile()

	a := GenerateLayout(profile, rand.New(rand.NewSource(42)))
	b := GenerateLayout(profile, rand.New(rand.NewSource(42)))

	if len(a) != profile.BridgeLength {
		t.Fatalf("layout length = %d, expected %d", len(a), profile.BridgeLength)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatal("same seed must produce the same layout")
		}
	}

	fragile := 0
	for _, k := range a {
		if k == KindFragile {
			fragile++
		}
	}
	if fragile != profile.FragileTileCount {
		t.Errorf("fragile tiles = %d, expected %d", fragile, profile.FragileTileCount)
	}
}

func TestTutorialLayout(t *testing.T) {
	layout := TutorialLayout()
	if len(layout) == 0 {
		t.Fatal("tutorial layout must not be empty")
	}

	var plain, fragile bool
	for _, k := range layout {
		switch k {
		case KindPlain:
			plain = true
		case KindFragile:
			fragile = true
		}
	}
	if !plain || !fragile {
		t.Error("tutorial layout should teach both tile kinds")
	}
}

func TestBuiltinProfilesValid(t *testing.T) {
	for _, tier := range append(Tiers(), "tutorial") {
		p, err := ProfileFor(tier)
		if err != nil {
			t.Fatalf("ProfileFor(%q): %v", tier, err)
		}
		if err := p.Validate(); err != nil {
			t.Errorf("built-in profile %q invalid: %v", tier, err)
		}
	}

	if _, err := ProfileFor("nightmare"); err == nil {
		t.Error("unknown tier should error")
	}
}
