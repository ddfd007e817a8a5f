package audio

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/lixenwraith/ball-arena/core"
	"github.com/lixenwraith/ball-arena/parameter"
)

// Config holds playback settings
type Config struct {
	Enabled      bool
	MasterVolume float64
	Volumes      [core.SoundTypeCount]float64
	SampleRate   int
	MaxVoices    int
}

// DefaultConfig returns enabled playback at the default master volume
func DefaultConfig() *Config {
	cfg := &Config{
		Enabled:      true,
		MasterVolume: parameter.AudioMasterVolume,
		SampleRate:   parameter.AudioSampleRate,
		MaxVoices:    parameter.AudioMaxVoices,
	}
	for i := range cfg.Volumes {
		cfg.Volumes[i] = 1
	}
	// Deflections are the most frequent cue
	cfg.Volumes[core.SoundDeflect] = 0.5
	return cfg
}

var cueNames = map[string]core.SoundType{
	"deflect":    core.SoundDeflect,
	"score":      core.SoundScore,
	"eliminate":  core.SoundEliminate,
	"round_over": core.SoundRoundOver,
	"countdown":  core.SoundCountdown,
}

// LoadConfig reads overrides from the environment
//
//	BALL_ARENA_AUDIO_ENABLED  bool
//	BALL_ARENA_MASTER_VOLUME  0-100
//	BALL_ARENA_CUE_VOLUMES    JSON object of cue name to 0.0-1.0
//	BALL_ARENA_SAMPLE_RATE    Hz
func LoadConfig() *Config {
	cfg := DefaultConfig()

	if enabled := os.Getenv("BALL_ARENA_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	if volume := os.Getenv("BALL_ARENA_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = clampUnit(float64(val) / 100.0)
		}
	}

	if cueVols := os.Getenv("BALL_ARENA_CUE_VOLUMES"); cueVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(cueVols), &volumes); err == nil {
			for name, v := range volumes {
				if st, ok := cueNames[name]; ok {
					cfg.Volumes[st] = clampUnit(v)
				}
			}
		}
	}

	if sampleRate := os.Getenv("BALL_ARENA_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
