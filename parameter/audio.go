package parameter

import "time"

// Audio output
const (
	AudioSampleRate   = 44100
	AudioBufferWindow = 100 * time.Millisecond
	AudioMaxVoices    = 8
	AudioMasterVolume = 0.6
)

// Cue shapes
const (
	DeflectCueDuration = 45 * time.Millisecond
	DeflectCueAttack   = 2 * time.Millisecond
	DeflectCueRelease  = 35 * time.Millisecond

	ScoreCueDuration         = 220 * time.Millisecond
	ScoreCueAttack           = 5 * time.Millisecond
	ScoreCueFundamentalDecay = 180 * time.Millisecond
	ScoreCueOvertoneDecay    = 90 * time.Millisecond

	EliminateCueDuration = 450 * time.Millisecond
	EliminateCueAttack   = 5 * time.Millisecond
	EliminateCueRelease  = 380 * time.Millisecond

	RoundOverNoteDuration = 160 * time.Millisecond
	RoundOverNoteAttack   = 5 * time.Millisecond
	RoundOverNoteRelease  = 90 * time.Millisecond

	CountdownCueDuration = 90 * time.Millisecond
	CountdownCueAttack   = 3 * time.Millisecond
	CountdownCueRelease  = 60 * time.Millisecond
)
