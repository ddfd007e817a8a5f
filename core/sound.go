package core

// SoundType represents audio cues raised by gameplay
type SoundType int

const (
	SoundDeflect   SoundType = iota // Ball bounced off paddle, wall, barrier or ball
	SoundScore                      // Goal took damage
	SoundEliminate                  // Goal reached zero hit points
	SoundRoundOver                  // A team won the round
	SoundCountdown                  // New round countdown started
	SoundTypeCount
)
