package physics

import (
	"math"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/ball-arena/component"
	"github.com/lixenwraith/ball-arena/core"
	"github.com/lixenwraith/ball-arena/engine"
	"github.com/lixenwraith/ball-arena/event"
	"github.com/lixenwraith/ball-arena/parameter"
	"github.com/lixenwraith/ball-arena/status"
	"github.com/lixenwraith/ball-arena/vmath"
)

// Space is the rigid-body layer: it moves active bodies, detects sphere
// contacts and applies deflection outcomes handed back by the resolver
type Space struct {
	world    *engine.World
	contacts []core.Contact

	statContacts    *atomic.Int64
	statOutOfBounds *atomic.Int64
	statPeakSpeed   *status.AtomicFloat
}

func NewSpace(world *engine.World) *Space {
	s := &Space{
		world:           world,
		statContacts:    world.Resource.Status.Ints.Get("physics.contacts"),
		statOutOfBounds: world.Resource.Status.Ints.Get("physics.out_of_bounds"),
		statPeakSpeed:   world.Resource.Status.Floats.Get("physics.peak_ball_speed"),
	}
	s.Init()
	return s
}

func (s *Space) Init() {
	s.contacts = s.contacts[:0]
}

func (s *Space) Name() string {
	return "physics"
}

func (s *Space) Priority() int {
	return parameter.PriorityPhysics
}

func (s *Space) EventTypes() []event.EventType {
	return nil
}

func (s *Space) HandleEvent(ev event.GameEvent) {}

// Update steps the simulation while playing; contacts are cleared otherwise
func (s *Space) Update() {
	s.contacts = s.contacts[:0]
	if s.world.Resource.Game.Phase != core.PhasePlaying {
		return
	}
	s.Step(s.world.Resource.Time.DeltaTime)
}

// Step integrates, detects contacts and flags balls that left the arena
func (s *Space) Step(dt time.Duration) {
	s.integrate(dt.Seconds())
	s.contacts = s.detect(s.contacts[:0])
	s.statContacts.Add(int64(len(s.contacts)))
	s.outOfBounds()
}

// Contacts returns this tick's overlapping pairs
func (s *Space) Contacts() []core.Contact {
	return s.contacts
}

// Apply sets the resolved velocities in order; later outcomes for one entity win
func (s *Space) Apply(deflections []core.Deflection) {
	for _, d := range deflections {
		k, ok := s.world.Components.Kinetic.Get(d.Entity)
		if !ok {
			continue
		}
		k.Velocity = d.Velocity
		s.world.Components.Kinetic.Set(d.Entity, k)
		s.statPeakSpeed.SetMax(vmath.V3FMag(d.Velocity))
	}
	s.separate(deflections)
}

// separate resolves penetration for deflected balls against the active bodies
// they touched this tick; goal contacts are left alone
func (s *Space) separate(deflections []core.Deflection) {
	if len(deflections) == 0 {
		return
	}
	cs := &s.world.Components
	deflected := make(map[core.Entity]bool, len(deflections))
	for _, d := range deflections {
		deflected[d.Entity] = true
	}

	for _, c := range s.contacts {
		if !deflected[c.A] || !cs.Active.Has(c.A) || !cs.Active.Has(c.B) {
			continue
		}
		ka, okA := cs.Kinetic.Get(c.A)
		sa, _ := cs.Shape.Get(c.A)
		kb, okB := cs.Kinetic.Get(c.B)
		sb, _ := cs.Shape.Get(c.B)
		if !okA || !okB {
			continue
		}

		switch {
		case cs.Ball.Has(c.B):
			if SeparateSpheres(&ka.Position, &kb.Position, sa.Radius, sb.Radius, 1, 1) {
				cs.Kinetic.Set(c.A, ka)
				cs.Kinetic.Set(c.B, kb)
			}
		case cs.Collider.Has(c.B):
			// Re-test: an earlier correction may already have cleared this one
			hit, point, normal := overlap(ka.Position, sa.Radius, kb.Position, sb)
			if hit && PushOut(&ka.Position, sa.Radius, point, normal) {
				cs.Kinetic.Set(c.A, ka)
			}
		}
	}
}

// integrate moves Active bodies; paddles follow their desired speed and stay in span
func (s *Space) integrate(dt float64) {
	cs := &s.world.Components
	for _, e := range s.world.Query().With(cs.Kinetic).With(cs.Active).Execute() {
		k, _ := cs.Kinetic.Get(e)

		if p, ok := cs.Paddle.Get(e); ok {
			k.Velocity = vmath.Vec3F{}
			if p.AlongX() {
				k.Velocity.X = p.Desired
				k.Position.X += p.Desired * dt
				if c := vmath.Clamp(k.Position.X, -p.Limit, p.Limit); c != k.Position.X {
					k.Position.X, k.Velocity.X = c, 0
				}
			} else {
				k.Velocity.Z = p.Desired
				k.Position.Z += p.Desired * dt
				if c := vmath.Clamp(k.Position.Z, -p.Limit, p.Limit); c != k.Position.Z {
					k.Position.Z, k.Velocity.Z = c, 0
				}
			}
			cs.Kinetic.Set(e, k)
			continue
		}

		if !cs.Ball.Has(e) {
			continue
		}
		k.Position = vmath.V3FAdd(k.Position, vmath.V3FScale(k.Velocity, dt))
		cs.Kinetic.Set(e, k)
	}
}

// detect reports every sphere overlap; non-sphere pairs are scenery and skipped
// Pairs are emitted in ascending entity order
func (s *Space) detect(dst []core.Contact) []core.Contact {
	cs := &s.world.Components
	bodies := s.world.Query().With(cs.Kinetic).With(cs.Shape).Execute()

	for i, a := range bodies {
		sa, _ := cs.Shape.Get(a)
		ka, _ := cs.Kinetic.Get(a)
		for _, b := range bodies[i+1:] {
			sb, _ := cs.Shape.Get(b)
			kb, _ := cs.Kinetic.Get(b)

			switch {
			case sa.Kind == component.ShapeSphere:
				if hit, point, normal := overlap(ka.Position, sa.Radius, kb.Position, sb); hit {
					dst = append(dst, core.Contact{A: a, B: b, Point: point, Normal: normal})
				}
			case sb.Kind == component.ShapeSphere:
				if hit, point, normal := overlap(kb.Position, sb.Radius, ka.Position, sa); hit {
					dst = append(dst, core.Contact{A: b, B: a, Point: point, Normal: normal})
				}
			}
		}
	}
	return dst
}

// outOfBounds asks the lifecycle to retire active balls that escaped the arena
func (s *Space) outOfBounds() {
	cfg := s.world.Resource.Config
	lim := cfg.Arena.HalfExtent + cfg.Arena.GoalDepth + cfg.Arena.OutOfBoundsMargin
	cs := &s.world.Components

	for _, e := range s.world.Query().With(cs.Ball).With(cs.Active).Execute() {
		k, _ := cs.Kinetic.Get(e)
		if math.Abs(k.Position.X) <= lim && math.Abs(k.Position.Z) <= lim {
			continue
		}
		s.statOutOfBounds.Add(1)
		s.world.PushEvent(event.EventRemovalRequest, &event.RemovalRequestPayload{
			Entity: e,
			Reason: event.RemovalOutOfBounds,
		})
	}
}
