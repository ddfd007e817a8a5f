package engine

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/ball-arena/core"
	"github.com/lixenwraith/ball-arena/parameter"
)

// Ticker advances the simulation by one step
type Ticker interface {
	Tick(dt time.Duration)
}

// ClockScheduler drives a Ticker on a fixed interval in its own goroutine
// Measured deltas are capped at parameter.MaxTickDelta after stalls
type ClockScheduler struct {
	target       Ticker
	tickInterval time.Duration

	tickCount atomic.Uint64
	running   atomic.Bool
	cancel    context.CancelFunc
	wg        sync.WaitGroup

	// OnTick runs after every tick, outside the update lock
	OnTick func()
}

// NewClockScheduler creates a scheduler; non-positive interval uses parameter.GameUpdateInterval
func NewClockScheduler(target Ticker, tickInterval time.Duration) *ClockScheduler {
	if tickInterval <= 0 {
		tickInterval = parameter.GameUpdateInterval
	}
	return &ClockScheduler{
		target:       target,
		tickInterval: tickInterval,
	}
}

// Start begins the scheduler loop until ctx is cancelled or Stop is called
func (cs *ClockScheduler) Start(ctx context.Context) {
	if !cs.running.CompareAndSwap(false, true) {
		return
	}
	ctx, cs.cancel = context.WithCancel(ctx)
	cs.wg.Add(1)
	core.Go(func() {
		defer cs.wg.Done()
		defer cs.running.Store(false)
		cs.loop(ctx)
	})
}

// Stop halts the loop and waits for the in-flight tick
func (cs *ClockScheduler) Stop() {
	if cs.cancel != nil {
		cs.cancel()
	}
	cs.wg.Wait()
}

// TickCount returns the number of ticks executed
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}

func (cs *ClockScheduler) loop(ctx context.Context) {
	ticker := time.NewTicker(cs.tickInterval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now
			if dt > parameter.MaxTickDelta {
				dt = parameter.MaxTickDelta
			}
			cs.target.Tick(dt)
			cs.tickCount.Add(1)
			if cs.OnTick != nil {
				cs.OnTick()
			}
		}
	}
}
