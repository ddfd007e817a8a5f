package system

import (
	"sort"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/ball-arena/component"
	"github.com/lixenwraith/ball-arena/core"
	"github.com/lixenwraith/ball-arena/engine"
	"github.com/lixenwraith/ball-arena/event"
	"github.com/lixenwraith/ball-arena/parameter"
	"github.com/lixenwraith/ball-arena/vmath"
)

// ContactSource is the physics side of the contact hand-off
type ContactSource interface {
	// Contacts returns the overlapping pairs detected this tick
	Contacts() []core.Contact

	// Apply sets new velocities, in order
	Apply(deflections []core.Deflection)
}

// ContactClass is the classification of a contact by tag combination
type ContactClass uint8

const (
	ClassIgnored ContactClass = iota
	ClassStale
	ClassGated
	ClassDeflection
	ClassBallBall
	ClassScoring
)

// classified is a contact normalized so Ball is the ball and Normal points toward it
type classified struct {
	Class    ContactClass
	Ball     core.Entity
	Other    core.Entity
	Normal   vmath.Vec3F
	Collider component.ColliderKind
	Side     core.GoalSide
}

// CollisionSystem resolves contacts reported by physics
// Classification is read-only and may fan out; every mutation is applied serially
type CollisionSystem struct {
	world     *engine.World
	source    ContactSource
	gate      ActivityGate
	lifecycle *LifecycleSystem
	scoring   *ScoringMachine

	statContacts    *atomic.Int64
	statGated       *atomic.Int64
	statStale       *atomic.Int64
	statIgnored     *atomic.Int64
	statDeflections *atomic.Int64
	statScoring     *atomic.Int64
}

func NewCollisionSystem(world *engine.World, source ContactSource, lifecycle *LifecycleSystem, scoring *ScoringMachine) *CollisionSystem {
	s := &CollisionSystem{
		world:     world,
		source:    source,
		gate:      NewActivityGate(world),
		lifecycle: lifecycle,
		scoring:   scoring,
	}

	reg := world.Resource.Status
	s.statContacts = reg.Ints.Get("collision.contacts")
	s.statGated = reg.Ints.Get("collision.gated")
	s.statStale = reg.Ints.Get("collision.stale")
	s.statIgnored = reg.Ints.Get("collision.ignored")
	s.statDeflections = reg.Ints.Get("collision.deflections")
	s.statScoring = reg.Ints.Get("collision.scoring")

	s.Init()
	return s
}

func (s *CollisionSystem) Init() {}

func (s *CollisionSystem) Name() string {
	return "collision"
}

func (s *CollisionSystem) Priority() int {
	return parameter.PriorityCollision
}

func (s *CollisionSystem) EventTypes() []event.EventType {
	return nil
}

func (s *CollisionSystem) HandleEvent(ev event.GameEvent) {}

func (s *CollisionSystem) Update() {
	if s.source == nil || s.world.Resource.Game.Phase != core.PhasePlaying {
		return
	}
	contacts := s.source.Contacts()
	if len(contacts) == 0 {
		return
	}
	s.source.Apply(s.Resolve(contacts))
}

// Resolve processes one tick's contact batch and returns deflection outcomes
//
// Order: gate snapshot at batch start, classification, scoring sorted by
// (goal side, ball), then deflections sorted by (ball, other). A ball retired
// by scoring earlier in the batch produces no deflection
func (s *CollisionSystem) Resolve(contacts []core.Contact) []core.Deflection {
	s.statContacts.Add(int64(len(contacts)))

	snap := s.gate.Snapshot(contacts)
	classes, err := s.classifyAll(contacts, snap)
	if err != nil {
		s.world.Resource.Log.Printf("collision: dropped batch of %d: %v", len(contacts), err)
		return nil
	}

	scoring := make([]classified, 0, 2)
	deflect := make([]classified, 0, len(classes))
	seenScore := make(map[[2]core.Entity]bool)

	for _, c := range classes {
		switch c.Class {
		case ClassStale:
			s.statStale.Add(1)
		case ClassGated:
			s.statGated.Add(1)
		case ClassIgnored:
			s.statIgnored.Add(1)
		case ClassScoring:
			// Repeated reports of one overlap score once
			key := [2]core.Entity{c.Ball, c.Other}
			if seenScore[key] {
				continue
			}
			seenScore[key] = true
			scoring = append(scoring, c)
		default:
			deflect = append(deflect, c)
		}
	}

	sort.SliceStable(scoring, func(i, j int) bool {
		if scoring[i].Side != scoring[j].Side {
			return scoring[i].Side < scoring[j].Side
		}
		return scoring[i].Ball < scoring[j].Ball
	})

	retired := make(map[core.Entity]bool)
	for _, c := range scoring {
		s.scoring.ApplyHit(c.Other, c.Ball)
		s.statScoring.Add(1)
		if !retired[c.Ball] {
			retired[c.Ball] = true
			s.lifecycle.RequestRemoval(c.Ball)
		}
	}

	sort.SliceStable(deflect, func(i, j int) bool {
		if deflect[i].Ball != deflect[j].Ball {
			return deflect[i].Ball < deflect[j].Ball
		}
		return deflect[i].Other < deflect[j].Other
	})

	velocity := make(map[core.Entity]vmath.Vec3F)
	vel := func(e core.Entity) vmath.Vec3F {
		if v, ok := velocity[e]; ok {
			return v
		}
		k, _ := s.world.Components.Kinetic.Get(e)
		velocity[e] = k.Velocity
		return k.Velocity
	}

	out := make([]core.Deflection, 0, len(deflect))
	for _, c := range deflect {
		switch c.Class {
		case ClassDeflection:
			if retired[c.Ball] {
				continue
			}
			v := s.deflectCollider(vel(c.Ball), c)
			velocity[c.Ball] = v
			out = append(out, core.Deflection{Entity: c.Ball, Velocity: v})
			s.world.PushEvent(event.EventBallDeflected, &event.BallDeflectedPayload{
				Ball: c.Ball, Other: c.Other, Collider: c.Collider,
			})

		case ClassBallBall:
			va, vb := vel(c.Ball), vel(c.Other)
			if !retired[c.Ball] {
				v := Deflect(va, c.Normal)
				velocity[c.Ball] = v
				out = append(out, core.Deflection{Entity: c.Ball, Velocity: v})
			}
			if !retired[c.Other] {
				v := Deflect(vb, vmath.V3FScale(c.Normal, -1))
				velocity[c.Other] = v
				out = append(out, core.Deflection{Entity: c.Other, Velocity: v})
			}
			if !retired[c.Ball] || !retired[c.Other] {
				s.world.PushEvent(event.EventBallDeflected, &event.BallDeflectedPayload{
					Ball: c.Ball, Other: c.Other, BallBall: true,
				})
			}
		}
	}
	s.statDeflections.Add(int64(len(out)))
	return out
}

// classifyAll classifies contacts, fanning out above the batch threshold
// Results are index-aligned with the input so both paths are identical
func (s *CollisionSystem) classifyAll(contacts []core.Contact, snap GateSnapshot) ([]classified, error) {
	out := make([]classified, len(contacts))
	if len(contacts) < parameter.ParallelClassifyThreshold {
		for i, c := range contacts {
			out[i] = s.classify(c, snap)
		}
		return out, nil
	}

	var g errgroup.Group
	g.SetLimit(parameter.ParallelClassifyWorkers)
	chunk := (len(contacts) + parameter.ParallelClassifyWorkers - 1) / parameter.ParallelClassifyWorkers
	for start := 0; start < len(contacts); start += chunk {
		lo, hi := start, min(start+chunk, len(contacts))
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				out[i] = s.classify(contacts[i], snap)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *CollisionSystem) classify(c core.Contact, snap GateSnapshot) classified {
	if !s.world.Alive(c.A) || !s.world.Alive(c.B) {
		return classified{Class: ClassStale}
	}
	if !snap.IsActive(c.A) || !snap.IsActive(c.B) {
		return classified{Class: ClassGated}
	}

	cs := &s.world.Components
	aBall, bBall := cs.Ball.Has(c.A), cs.Ball.Has(c.B)

	switch {
	case aBall && bBall:
		// Lower id is the reference ball
		if c.A < c.B {
			return classified{Class: ClassBallBall, Ball: c.A, Other: c.B, Normal: c.Normal}
		}
		return classified{Class: ClassBallBall, Ball: c.B, Other: c.A, Normal: vmath.V3FScale(c.Normal, -1)}
	case aBall:
		return s.classifyPair(c.A, c.B, c.Normal)
	case bBall:
		return s.classifyPair(c.B, c.A, vmath.V3FScale(c.Normal, -1))
	}
	return classified{Class: ClassIgnored}
}

// classifyPair resolves a ball against a non-ball; goal is checked before collider
func (s *CollisionSystem) classifyPair(ball, other core.Entity, normal vmath.Vec3F) classified {
	cs := &s.world.Components
	if g, ok := cs.Goal.Get(other); ok {
		return classified{Class: ClassScoring, Ball: ball, Other: other, Normal: normal, Side: g.Side}
	}
	if col, ok := cs.Collider.Get(other); ok {
		return classified{Class: ClassDeflection, Ball: ball, Other: other, Normal: normal, Collider: col.Kind}
	}
	return classified{Class: ClassIgnored}
}

// deflectCollider applies plain reflection, plus spin and speed bonus for paddles
func (s *CollisionSystem) deflectCollider(v vmath.Vec3F, c classified) vmath.Vec3F {
	if c.Collider != component.ColliderPaddle || vmath.V3FDot(v, c.Normal) >= 0 {
		return Deflect(v, c.Normal)
	}
	cfg := s.world.Resource.Config
	pk, _ := s.world.Components.Kinetic.Get(c.Other)
	return PaddleDeflect(v, c.Normal, pk.Velocity, cfg.Paddle.SpinFactor, cfg.Paddle.SpeedBonus, cfg.Ball.MaxSpeed)
}

// Deflect reflects v about unit normal n; a separating velocity is returned unchanged
func Deflect(v, n vmath.Vec3F) vmath.Vec3F {
	if vmath.V3FDot(v, n) >= 0 {
		return v
	}
	return vmath.V3FReflect(v, n)
}

// PaddleDeflect is reflect(v, n) + spin * tangential(paddle velocity), scaled by bonus and capped
func PaddleDeflect(v, n, paddleVel vmath.Vec3F, spin, bonus, maxSpeed float64) vmath.Vec3F {
	out := Deflect(v, n)
	if vmath.V3FDot(v, n) >= 0 {
		return out
	}
	out = vmath.V3FAdd(out, vmath.V3FScale(vmath.V3FTangent(vmath.V3FFlat(paddleVel), n), spin))
	out = vmath.V3FScale(out, bonus)
	return vmath.V3FClampMag(out, maxSpeed)
}
