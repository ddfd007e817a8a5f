package core

// Phase is the global game-state the lifecycle layer is scoped against
type Phase uint8

const (
	PhaseNone Phase = iota
	PhaseCountdown
	PhasePlaying
	PhasePaused
	PhaseRoundOver
	PhaseGameOver
	PhaseCount
)

var phaseNames = [PhaseCount]string{"None", "Countdown", "Playing", "Paused", "RoundOver", "GameOver"}

func (p Phase) String() string {
	if p >= PhaseCount {
		return "Unknown"
	}
	return phaseNames[p]
}

// ParsePhase resolves an exact phase name as used in the flow graph
func ParsePhase(s string) (Phase, bool) {
	for i, n := range phaseNames {
		if n == s {
			return Phase(i), true
		}
	}
	return PhaseNone, false
}

// PhaseMask is a set of phases an entity is allowed to exist in
// Zero mask means unscoped
type PhaseMask uint16

// MaskOf builds a mask from phases
func MaskOf(phases ...Phase) PhaseMask {
	var m PhaseMask
	for _, p := range phases {
		m |= 1 << p
	}
	return m
}

// Has reports whether p is in the mask
func (m PhaseMask) Has(p Phase) bool {
	return m&(1<<p) != 0
}

// Scoped reports whether the mask binds the entity to any phase
func (m PhaseMask) Scoped() bool {
	return m != 0
}

var (
	// ScopeRound covers entities living from countdown until the round is reset
	ScopeRound = MaskOf(PhaseCountdown, PhasePlaying, PhasePaused, PhaseRoundOver)
	// ScopePlay covers entities that only exist while the ball is in play
	ScopePlay = MaskOf(PhasePlaying, PhasePaused)
)
