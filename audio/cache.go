package audio

import (
	"sync"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/ball-arena/core"
)

// cueCache stores rendered unity-gain cue buffers
type cueCache struct {
	mu     sync.RWMutex
	format beep.Format
	store  [core.SoundTypeCount]*beep.Buffer
}

func newCueCache(format beep.Format) *cueCache {
	return &cueCache{format: format}
}

// get returns the cached buffer, rendering it on first use
func (c *cueCache) get(st core.SoundType) *beep.Buffer {
	if st < 0 || st >= core.SoundTypeCount {
		return nil
	}

	c.mu.RLock()
	if buf := c.store[st]; buf != nil {
		c.mu.RUnlock()
		return buf
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring write lock
	if buf := c.store[st]; buf != nil {
		return buf
	}

	buf := beep.NewBuffer(c.format)
	buf.Append(buildCue(st, c.format.SampleRate))
	c.store[st] = buf
	return buf
}

// preload renders every cue
func (c *cueCache) preload() {
	for st := core.SoundType(0); st < core.SoundTypeCount; st++ {
		c.get(st)
	}
}
