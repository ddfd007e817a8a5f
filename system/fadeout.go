package system

import (
	"time"

	"github.com/lixenwraith/ball-arena/component"
	"github.com/lixenwraith/ball-arena/core"
	"github.com/lixenwraith/ball-arena/engine"
	"github.com/lixenwraith/ball-arena/event"
	"github.com/lixenwraith/ball-arena/parameter"
)

// FadeSystem runs spawn-in and exit transitions and reports completion
type FadeSystem struct {
	world *engine.World
}

func NewFadeSystem(world *engine.World) *FadeSystem {
	s := &FadeSystem{
		world: world,
	}
	s.Init()
	return s
}

func (s *FadeSystem) Init() {}

func (s *FadeSystem) Name() string {
	return "fade"
}

func (s *FadeSystem) Priority() int {
	return parameter.PriorityFade
}

func (s *FadeSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventFadeInRequest,
		event.EventFadeOutRequest,
	}
}

func (s *FadeSystem) HandleEvent(ev event.GameEvent) {
	p, ok := ev.Payload.(*event.FadeRequestPayload)
	if !ok {
		return
	}
	switch ev.Type {
	case event.EventFadeInRequest:
		s.begin(p.Entity, component.FadeIn, s.world.Resource.Config.Timing.FadeIn)
	case event.EventFadeOutRequest:
		s.begin(p.Entity, component.FadeOut, s.world.Resource.Config.Timing.FadeOut)
	}
}

func (s *FadeSystem) begin(e core.Entity, dir component.FadeDirection, dur time.Duration) {
	if !s.world.Alive(e) {
		return
	}
	var kind core.EntityKind
	if lc, ok := s.world.Components.Lifecycle.Get(e); ok {
		kind = lc.Kind
	}
	s.world.Components.Fade.Set(e, component.FadeComponent{
		Direction: dir,
		Remaining: dur,
		Duration:  dur,
		Kind:      kind,
	})
}

// Update advances fades; completion is reported, the fade component is dropped
func (s *FadeSystem) Update() {
	dt := s.world.Resource.Time.DeltaTime
	entities := s.world.Query().With(s.world.Components.Fade).Execute()

	for _, entity := range entities {
		fade, ok := s.world.Components.Fade.Get(entity)
		if !ok {
			continue
		}

		fade.Remaining -= dt
		if fade.Remaining > 0 {
			s.world.Components.Fade.Set(entity, fade)
			continue
		}

		s.world.Components.Fade.Remove(entity)
		s.world.PushEvent(event.EventFadeComplete, &event.FadeCompletePayload{
			Entity:    entity,
			Direction: fade.Direction,
		})
	}
}
