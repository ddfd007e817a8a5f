package audio

import (
	"testing"

	"github.com/lixenwraith/ball-arena/core"
)

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("BALL_ARENA_AUDIO_ENABLED", "false")
	t.Setenv("BALL_ARENA_MASTER_VOLUME", "150")
	t.Setenv("BALL_ARENA_CUE_VOLUMES", `{"score":0.25,"bogus":1}`)
	t.Setenv("BALL_ARENA_SAMPLE_RATE", "22050")

	cfg := LoadConfig()
	if cfg.Enabled {
		t.Error("Enabled should be false")
	}
	if cfg.MasterVolume != 1 {
		t.Errorf("MasterVolume = %v, want clamped 1", cfg.MasterVolume)
	}
	if cfg.Volumes[core.SoundScore] != 0.25 {
		t.Errorf("score volume = %v", cfg.Volumes[core.SoundScore])
	}
	if cfg.SampleRate != 22050 {
		t.Errorf("SampleRate = %d", cfg.SampleRate)
	}
}

func TestLoadConfigIgnoresGarbage(t *testing.T) {
	t.Setenv("BALL_ARENA_AUDIO_ENABLED", "maybe")
	t.Setenv("BALL_ARENA_MASTER_VOLUME", "loud")
	t.Setenv("BALL_ARENA_CUE_VOLUMES", "{")
	t.Setenv("BALL_ARENA_SAMPLE_RATE", "-1")

	got, want := LoadConfig(), DefaultConfig()
	if *got != *want {
		t.Errorf("LoadConfig = %+v, want defaults %+v", got, want)
	}
}
