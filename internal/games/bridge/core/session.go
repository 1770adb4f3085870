package core

// SessionPhase is the state of the repair session controller.
type SessionPhase int

const (
	// PhaseIdle means no repair is in progress.
	PhaseIdle SessionPhase = iota
	// PhaseCounting means strikes are accumulating on the current tile.
	PhaseCounting
	// PhaseChallenging means the catch window is open.
	PhaseChallenging
)

// Outcome is a resolved timing challenge.
type Outcome struct {
	Index    int
	Judgment Judgment
	Accuracy float64
}

// Session drives one platform through a full repair: strike counting, then
// the timing challenge, then the judgment and tile transition. At most one
// repair is active across the whole bridge; BeginRepair while one is in
// progress is a no-op by contract, since callers cannot always avoid racing
// a timeout that fires in the same tick.
type Session struct {
	profile      DifficultyProfile
	barHalfWidth float64
	emit         func(index int, state TileState)

	phase     SessionPhase
	platform  *Platform
	challenge Challenge
}

// NewSession creates an idle repair session. The emit callback receives
// every tile transition the session performs; it must not be nil.
func NewSession(profile DifficultyProfile, barHalfWidth float64, emit func(index int, state TileState)) *Session {
	return &Session{
		profile:      profile,
		barHalfWidth: barHalfWidth,
		emit:         emit,
	}
}

// Phase returns the current controller phase.
func (s *Session) Phase() SessionPhase { return s.phase }

// Active reports whether a repair is in progress.
func (s *Session) Active() bool { return s.phase != PhaseIdle }

// Challenging reports whether the catch window is open.
func (s *Session) Challenging() bool { return s.phase == PhaseChallenging }

// Platform returns the tile under repair, or nil when idle.
func (s *Session) Platform() *Platform {
	if s.phase == PhaseIdle {
		return nil
	}
	return s.platform
}

// Challenge returns the current catch window.
func (s *Session) Challenge() Challenge { return s.challenge }

// Reset cancels any in-flight repair without applying pending side effects:
// no judgment is emitted for a cancelled challenge.
func (s *Session) Reset() {
	s.phase = PhaseIdle
	s.platform = nil
	s.challenge = Challenge{}
}

// BeginRepair attaches the session to a tile. Guards: no other repair may
// be active, and the tile must be Broken (or already Repairing after an
// interrupted run). Returns false when the guard rejects the call.
func (s *Session) BeginRepair(p *Platform) bool {
	if s.phase != PhaseIdle || p == nil {
		return false
	}
	if p.State() != StateBroken && p.State() != StateRepairing {
		return false
	}

	s.platform = p
	s.phase = PhaseCounting

	if p.Kind() == KindFragile && p.State() == StateBroken {
		p.StartRepair()
		s.emit(p.Index(), p.State())
	}
	return true
}

// Strike lands one hammer blow on the tile under repair at the given engine
// time. A plain tile completes on its first strike with no judgment; a
// fragile tile that reaches the strike requirement starts falling and opens
// the catch window. Strikes outside the counting phase are no-ops.
//
// Returns true when the strike completed a plain tile.
func (s *Session) Strike(now float64) bool {
	if s.phase != PhaseCounting {
		return false
	}

	p := s.platform
	if p.Kind() == KindPlain {
		// Plain repairs succeed unconditionally.
		p.CompleteDirect()
		s.emit(p.Index(), p.State())
		s.phase = PhaseIdle
		s.platform = nil
		return true
	}

	count := p.AddStrike(s.profile.RequiredStrikes)
	if count >= s.profile.RequiredStrikes {
		p.StartFall(s.profile.RequiredStrikes)
		s.emit(p.Index(), p.State())
		s.challenge = Challenge{
			Active:   true,
			Start:    now,
			Duration: s.profile.TimingWindowSeconds,
		}
		s.phase = PhaseChallenging
	}
	return false
}

// TimingInput resolves the catch attempt at the given engine time.
// Valid only while the challenge is open; otherwise it is a no-op, not an
// error. Each challenge produces exactly one irreversible outcome.
func (s *Session) TimingInput(now float64) (Outcome, bool) {
	if s.phase != PhaseChallenging {
		return Outcome{}, false
	}
	return s.resolve(now), true
}

// Tick advances fall time and fires the timeout path: when the window
// elapses with no input, the session synthesizes a Miss exactly as if
// TimingInput were called at the window's end.
func (s *Session) Tick(dt, now float64) (Outcome, bool) {
	if s.phase != PhaseChallenging {
		return Outcome{}, false
	}

	s.platform.AdvanceFall(dt)

	if s.challenge.Expired(now) {
		return s.resolve(s.challenge.Start + s.challenge.Duration), true
	}
	return Outcome{}, false
}

// resolve evaluates the input, applies the tile transition, and returns the
// session to idle.
func (s *Session) resolve(inputAt float64) Outcome {
	p := s.platform
	j, accuracy := EvaluateTiming(inputAt, s.challenge.Start, s.challenge.Duration,
		s.profile.Thresholds, s.barHalfWidth)

	if j.Success() {
		p.Catch()
	} else {
		p.Drop()
	}
	s.emit(p.Index(), p.State())

	s.phase = PhaseIdle
	s.platform = nil
	s.challenge = Challenge{}

	return Outcome{Index: p.Index(), Judgment: j, Accuracy: accuracy}
}
