package core

// TileKind distinguishes plain tiles from fragile ones.
type TileKind int

const (
	// KindPlain tiles are restored by a single strike with no timing
	// challenge. They can never fail.
	KindPlain TileKind = iota
	// KindFragile tiles need repeated strikes, then a timed catch while
	// the tile falls back into place.
	KindFragile
)

// String returns the display name of the tile kind.
func (k TileKind) String() string {
	if k == KindFragile {
		return "Fragile"
	}
	return "Plain"
}

// TileState is the lifecycle state of a platform.
type TileState int

const (
	StateBroken TileState = iota
	StateRepairing
	StateFalling
	StateCompleted
	StateCollapsed
)

// String returns the display name of the tile state.
func (s TileState) String() string {
	switch s {
	case StateBroken:
		return "Broken"
	case StateRepairing:
		return "Repairing"
	case StateFalling:
		return "Falling"
	case StateCompleted:
		return "Completed"
	case StateCollapsed:
		return "Collapsed"
	default:
		return "Unknown"
	}
}

// Terminal reports whether no further transitions are allowed.
func (s TileState) Terminal() bool {
	return s == StateCompleted || s == StateCollapsed
}

// Platform is a single tile of the bridge. All mutation goes through the
// transition methods below; each enforces its guard and reports whether the
// transition happened, so illegal calls are no-ops rather than errors.
//
// Plain tiles move Broken -> Completed directly and never enter Falling.
// Fragile tiles move Broken -> Repairing -> Falling -> Completed/Collapsed.
type Platform struct {
	index       int
	kind        TileKind
	state       TileState
	strikeCount int
	fallElapsed float64 // Valid only while Falling
}

// NewPlatform creates a broken platform at the given bridge position.
func NewPlatform(index int, kind TileKind) *Platform {
	return &Platform{index: index, kind: kind, state: StateBroken}
}

// Index returns the tile's position along the bridge.
func (p *Platform) Index() int { return p.index }

// Kind returns the tile kind.
func (p *Platform) Kind() TileKind { return p.kind }

// State returns the current lifecycle state.
func (p *Platform) State() TileState { return p.state }

// StrikeCount returns the number of strikes accumulated so far.
func (p *Platform) StrikeCount() int { return p.strikeCount }

// FallElapsed returns the time spent falling. Zero unless Falling.
func (p *Platform) FallElapsed() float64 { return p.fallElapsed }

// StartRepair transitions Broken -> Repairing. Fragile tiles only.
func (p *Platform) StartRepair() bool {
	if p.kind != KindFragile || p.state != StateBroken {
		return false
	}
	p.state = StateRepairing
	return true
}

// AddStrike accumulates one hammer strike up to the given requirement and
// returns the new count. Strikes only count while Repairing.
func (p *Platform) AddStrike(required int) int {
	if p.state != StateRepairing || p.strikeCount >= required {
		return p.strikeCount
	}
	p.strikeCount++
	return p.strikeCount
}

// StartFall transitions Repairing -> Falling once the strike requirement is
// met. The catch window opens as the tile falls.
func (p *Platform) StartFall(required int) bool {
	if p.state != StateRepairing || p.strikeCount < required {
		return false
	}
	p.state = StateFalling
	p.fallElapsed = 0
	return true
}

// AdvanceFall accumulates fall time while Falling.
func (p *Platform) AdvanceFall(dt float64) {
	if p.state == StateFalling {
		p.fallElapsed += dt
	}
}

// CompleteDirect transitions Broken -> Completed. Plain tiles only: a single
// strike restores the tile without a timing challenge.
func (p *Platform) CompleteDirect() bool {
	if p.kind != KindPlain || p.state != StateBroken {
		return false
	}
	p.state = StateCompleted
	return true
}

// Catch transitions Falling -> Completed after a non-Miss judgment.
func (p *Platform) Catch() bool {
	if p.state != StateFalling {
		return false
	}
	p.state = StateCompleted
	p.fallElapsed = 0
	return true
}

// Drop transitions Falling -> Collapsed after a Miss.
func (p *Platform) Drop() bool {
	if p.state != StateFalling {
		return false
	}
	p.state = StateCollapsed
	p.fallElapsed = 0
	return true
}

// Collapse forces the tile into Collapsed from any non-terminal state.
// Used by the chain-collapse sequencer. Terminal tiles are untouched and
// the call reports false, so collapsing twice emits no duplicate events.
func (p *Platform) Collapse() bool {
	if p.state.Terminal() {
		return false
	}
	p.state = StateCollapsed
	p.fallElapsed = 0
	return true
}
