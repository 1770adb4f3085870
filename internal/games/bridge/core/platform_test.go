package core

import "testing"

func TestPlainTileNeverFalls(t *testing.T) {
	p := NewPlatform(0, KindPlain)

	// A plain tile rejects the fragile path entirely.
	if p.StartRepair() {
		t.Error("plain tile must not enter Repairing")
	}
	if p.StartFall(1) {
		t.Error("plain tile must not enter Falling")
	}

	// One strike takes it Broken -> Completed.
	if !p.CompleteDirect() {
		t.Fatal("plain tile should complete directly from Broken")
	}
	if p.State() != StateCompleted {
		t.Errorf("state = %v, expected Completed", p.State())
	}

	// Completed is terminal.
	if p.CompleteDirect() {
		t.Error("completing a Completed tile must be a no-op")
	}
	if p.Collapse() {
		t.Error("collapsing a Completed tile must be a no-op")
	}
}

func TestFragileTileLifecycle(t *testing.T) {
	const required = 3
	p := NewPlatform(2, KindFragile)

	// Fragile tiles cannot skip Repairing.
	if p.CompleteDirect() {
		t.Error("fragile tile must not complete directly")
	}
	if p.StartFall(required) {
		t.Error("fragile tile must not fall before Repairing")
	}

	if !p.StartRepair() {
		t.Fatal("StartRepair should succeed from Broken")
	}
	if p.State() != StateRepairing {
		t.Fatalf("state = %v, expected Repairing", p.State())
	}

	// Strikes accumulate up to the requirement and no further.
	for i := 1; i <= required; i++ {
		if got := p.AddStrike(required); got != i {
			t.Fatalf("strike %d: count = %d", i, got)
		}
	}
	if got := p.AddStrike(required); got != required {
		t.Errorf("extra strike should not count, got %d", got)
	}

	// Falling cannot start before the requirement is met elsewhere.
	if !p.StartFall(required) {
		t.Fatal("StartFall should succeed once strikes are complete")
	}
	if p.State() != StateFalling {
		t.Fatalf("state = %v, expected Falling", p.State())
	}

	p.AdvanceFall(0.5)
	p.AdvanceFall(0.25)
	if p.FallElapsed() != 0.75 {
		t.Errorf("fallElapsed = %f, expected 0.75", p.FallElapsed())
	}

	if !p.Catch() {
		t.Fatal("Catch should succeed while Falling")
	}
	if p.State() != StateCompleted {
		t.Errorf("state = %v, expected Completed", p.State())
	}
	if p.FallElapsed() != 0 {
		t.Errorf("fallElapsed should reset on catch, got %f", p.FallElapsed())
	}
}

func TestFragileTileDrop(t *testing.T) {
	p := NewPlatform(1, KindFragile)
	p.StartRepair()
	p.AddStrike(1)
	p.StartFall(1)

	if !p.Drop() {
		t.Fatal("Drop should succeed while Falling")
	}
	if p.State() != StateCollapsed {
		t.Errorf("state = %v, expected Collapsed", p.State())
	}

	// Collapsed is terminal and idempotent.
	if p.Drop() || p.Catch() || p.Collapse() {
		t.Error("transitions out of Collapsed must be no-ops")
	}
}

func TestCollapseFromAnyNonTerminalState(t *testing.T) {
	broken := NewPlatform(0, KindFragile)
	if !broken.Collapse() {
		t.Error("Collapse should succeed from Broken")
	}

	repairing := NewPlatform(1, KindFragile)
	repairing.StartRepair()
	if !repairing.Collapse() {
		t.Error("Collapse should succeed from Repairing")
	}

	falling := NewPlatform(2, KindFragile)
	falling.StartRepair()
	falling.AddStrike(1)
	falling.StartFall(1)
	if !falling.Collapse() {
		t.Error("Collapse should succeed from Falling")
	}

	for _, p := range []*Platform{broken, repairing, falling} {
		if p.State() != StateCollapsed {
			t.Errorf("tile %d state = %v, expected Collapsed", p.Index(), p.State())
		}
	}
}

func TestCollapseIdempotence(t *testing.T) {
	p := NewPlatform(0, KindFragile)

	if !p.Collapse() {
		t.Fatal("first Collapse should report a change")
	}
	if p.Collapse() {
		t.Error("second Collapse must report no change")
	}
	if p.State() != StateCollapsed {
		t.Errorf("state = %v, expected Collapsed", p.State())
	}
}

func TestStrikesIgnoredOutsideRepairing(t *testing.T) {
	p := NewPlatform(0, KindFragile)

	if got := p.AddStrike(3); got != 0 {
		t.Errorf("strike on Broken tile should not count, got %d", got)
	}

	p.StartRepair()
	p.AddStrike(3)
	p.Collapse()
	if got := p.AddStrike(3); got != 1 {
		t.Errorf("strike on Collapsed tile should not count, got %d", got)
	}
}

func TestTileStateTerminal(t *testing.T) {
	terminal := map[TileState]bool{
		StateBroken:    false,
		StateRepairing: false,
		StateFalling:   false,
		StateCompleted: true,
		StateCollapsed: true,
	}
	for state, expected := range terminal {
		if state.Terminal() != expected {
			t.Errorf("%v.Terminal() = %v, expected %v", state, state.Terminal(), expected)
		}
	}
}
