package system

import (
	"github.com/lixenwraith/ball-arena/core"
	"github.com/lixenwraith/ball-arena/engine"
	"github.com/lixenwraith/ball-arena/event"
	"github.com/lixenwraith/ball-arena/parameter"
)

// AudioSystem maps gameplay events to sound cues
// Decouples game systems from direct audio engine access
type AudioSystem struct {
	world *engine.World
}

func NewAudioSystem(world *engine.World) *AudioSystem {
	s := &AudioSystem{
		world: world,
	}
	s.Init()
	return s
}

func (s *AudioSystem) Init() {}

func (s *AudioSystem) Name() string {
	return "audio"
}

func (s *AudioSystem) Priority() int {
	return parameter.PriorityAudio
}

func (s *AudioSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventBallDeflected,
		event.EventGoalScored,
		event.EventGoalEliminated,
		event.EventRoundOver,
		event.EventRoundStart,
		event.EventSoundRequest,
	}
}

func (s *AudioSystem) HandleEvent(ev event.GameEvent) {
	res := s.world.Resource.Audio
	if res == nil || res.Player == nil {
		return
	}

	switch ev.Type {
	case event.EventBallDeflected:
		res.Player.Play(core.SoundDeflect)
	case event.EventGoalScored:
		// Elimination has its own cue
		if p, ok := ev.Payload.(*event.GoalScoredPayload); ok && p.HitPoints > 0 {
			res.Player.Play(core.SoundScore)
		}
	case event.EventGoalEliminated:
		res.Player.Play(core.SoundEliminate)
	case event.EventRoundOver:
		res.Player.Play(core.SoundRoundOver)
	case event.EventRoundStart:
		res.Player.Play(core.SoundCountdown)
	case event.EventSoundRequest:
		if p, ok := ev.Payload.(*event.SoundRequestPayload); ok {
			res.Player.Play(p.SoundType)
		}
	}
}

func (s *AudioSystem) Update() {}
