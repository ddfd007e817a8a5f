package audio

import (
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/ball-arena/core"
	"github.com/lixenwraith/ball-arena/parameter"
)

// SoundManager plays gameplay cues through the beep speaker
// Play is non-blocking and drops cues when uninitialized, muted or saturated
type SoundManager struct {
	mu          sync.Mutex
	config      *Config
	format      beep.Format
	mixer       *beep.Mixer
	cache       *cueCache
	initialized bool
	muted       atomic.Bool
	played      atomic.Uint64
	dropped     atomic.Uint64
}

// NewSoundManager creates a sound manager; nil config uses DefaultConfig
func NewSoundManager(cfg *Config) *SoundManager {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = parameter.AudioSampleRate
	}
	if cfg.MaxVoices <= 0 {
		cfg.MaxVoices = parameter.AudioMaxVoices
	}
	format := beep.Format{
		SampleRate:  beep.SampleRate(cfg.SampleRate),
		NumChannels: 2,
		Precision:   2,
	}
	sm := &SoundManager{
		config: cfg,
		format: format,
		mixer:  &beep.Mixer{},
		cache:  newCueCache(format),
	}
	sm.muted.Store(!cfg.Enabled)
	return sm
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	sm.cache.preload()

	rate := sm.format.SampleRate
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferWindow)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Play queues a cue; returns false when the cue was dropped
func (sm *SoundManager) Play(st core.SoundType) bool {
	if sm.muted.Load() {
		sm.dropped.Add(1)
		return false
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		sm.dropped.Add(1)
		return false
	}

	s := sm.voice(st)
	if s == nil {
		sm.dropped.Add(1)
		return false
	}

	speaker.Lock()
	if sm.mixer.Len() >= sm.config.MaxVoices {
		speaker.Unlock()
		sm.dropped.Add(1)
		return false
	}
	sm.mixer.Add(s)
	speaker.Unlock()

	sm.played.Add(1)
	return true
}

// voice builds a fresh streamer for one playback of st at configured gain
func (sm *SoundManager) voice(st core.SoundType) beep.Streamer {
	buf := sm.cache.get(st)
	if buf == nil || buf.Len() == 0 {
		return nil
	}
	vol := sm.config.MasterVolume * sm.config.Volumes[st]
	if vol <= 0 {
		return nil
	}
	return newVolume(buf.Streamer(0, buf.Len()), vol)
}

// ToggleMute flips mute and returns the new state
// Muting clears voices already queued
func (sm *SoundManager) ToggleMute() bool {
	for {
		old := sm.muted.Load()
		if sm.muted.CompareAndSwap(old, !old) {
			if !old {
				sm.clearVoices()
			}
			return !old
		}
	}
}

// IsMuted reports current mute state
func (sm *SoundManager) IsMuted() bool {
	return sm.muted.Load()
}

// Stats returns counts of played and dropped cues
func (sm *SoundManager) Stats() (played, dropped uint64) {
	return sm.played.Load(), sm.dropped.Load()
}

func (sm *SoundManager) clearVoices() {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Clear()
	speaker.Close()
	sm.initialized = false
}
