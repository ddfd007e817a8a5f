package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/ball-arena/core"
	"github.com/lixenwraith/ball-arena/parameter"
	"github.com/lixenwraith/ball-arena/vmath"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// noiseSeed keeps rendered cues identical across runs
const noiseSeed = 0x5eed0b0a

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	noise    *vmath.FastRand
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		noise:    vmath.NewFastRand(noiseSeed),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.noise.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s with a linear attack and release over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly; math.Log2(0) is -Inf so zero maps to silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// cueBuilder returns the unity-gain streamer for one cue
type cueBuilder func(rate beep.SampleRate) beep.Streamer

var cueBuilders = [core.SoundTypeCount]cueBuilder{
	core.SoundDeflect:   deflectCue,
	core.SoundScore:     scoreCue,
	core.SoundEliminate: eliminateCue,
	core.SoundRoundOver: roundOverCue,
	core.SoundCountdown: countdownCue,
}

// buildCue returns nil for unknown sound types
func buildCue(st core.SoundType, rate beep.SampleRate) beep.Streamer {
	if st < 0 || st >= core.SoundTypeCount {
		return nil
	}
	return cueBuilders[st](rate)
}

// deflectCue is a short square blip
func deflectCue(rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(660, parameter.DeflectCueDuration, WaveSquare, rate)
	env := NewEnvelope(osc, parameter.DeflectCueDuration,
		parameter.DeflectCueAttack, parameter.DeflectCueRelease, rate)
	return newVolume(env, 0.35)
}

// scoreCue is a bell: fundamental plus an inharmonic overtone decaying faster
func scoreCue(rate beep.SampleRate) beep.Streamer {
	d := parameter.ScoreCueDuration
	fundamental := NewEnvelope(
		NewOscillator(1046.5, d, WaveSine, rate),
		d, parameter.ScoreCueAttack, parameter.ScoreCueFundamentalDecay, rate,
	)
	overtone := NewEnvelope(
		NewOscillator(1046.5*2.76, d, WaveSine, rate),
		d, parameter.ScoreCueAttack, parameter.ScoreCueOvertoneDecay, rate,
	)
	return beep.Take(rate.N(d), beep.Mix(newVolume(fundamental, 0.5), newVolume(overtone, 0.25)))
}

// eliminateCue layers a noise burst over a low saw rumble
func eliminateCue(rate beep.SampleRate) beep.Streamer {
	d := parameter.EliminateCueDuration
	noise := NewEnvelope(
		NewOscillator(0, d, WaveNoise, rate),
		d, parameter.EliminateCueAttack, parameter.EliminateCueRelease, rate,
	)
	rumble := NewEnvelope(
		NewOscillator(70, d, WaveSaw, rate),
		d, parameter.EliminateCueAttack, parameter.EliminateCueRelease, rate,
	)
	return beep.Take(rate.N(d), beep.Mix(newVolume(noise, 0.3), newVolume(rumble, 0.4)))
}

// roundOverCue plays three descending notes
func roundOverCue(rate beep.SampleRate) beep.Streamer {
	notes := []float64{784, 659.3, 523.3}
	seq := make([]beep.Streamer, 0, len(notes))
	for _, f := range notes {
		d := parameter.RoundOverNoteDuration
		seq = append(seq, NewEnvelope(
			NewOscillator(f, d, WaveSine, rate),
			d, parameter.RoundOverNoteAttack, parameter.RoundOverNoteRelease, rate,
		))
	}
	return newVolume(beep.Seq(seq...), 0.5)
}

// countdownCue is a plain 880Hz tick
func countdownCue(rate beep.SampleRate) beep.Streamer {
	d := parameter.CountdownCueDuration
	tone, err := generators.SineTone(rate, 880)
	if err != nil {
		return NewEnvelope(NewOscillator(880, d, WaveSine, rate), d,
			parameter.CountdownCueAttack, parameter.CountdownCueRelease, rate)
	}
	env := NewEnvelope(beep.Take(rate.N(d), tone), d,
		parameter.CountdownCueAttack, parameter.CountdownCueRelease, rate)
	return newVolume(env, 0.4)
}
