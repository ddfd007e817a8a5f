package system

import (
	"math"

	"github.com/lixenwraith/ball-arena/config"
	"github.com/lixenwraith/ball-arena/core"
	"github.com/lixenwraith/ball-arena/vmath"
)

// Layout resolves arena placement from configuration
// Arena is centred on the origin: Top is -Z, Bottom +Z, Left -X, Right +X
type Layout struct {
	cfg *config.Config
}

func NewLayout(cfg *config.Config) Layout {
	return Layout{cfg: cfg}
}

// outward returns the unit vector from the centre toward a side
func outward(side core.GoalSide) vmath.Vec3F {
	switch side {
	case core.SideTop:
		return vmath.Vec3F{Z: -1}
	case core.SideRight:
		return vmath.Vec3F{X: 1}
	case core.SideBottom:
		return vmath.Vec3F{Z: 1}
	default:
		return vmath.Vec3F{X: -1}
	}
}

// slab returns box half extents with length along the side and depth across it
func slab(side core.GoalSide, halfLength, halfDepth float64) (halfX, halfZ float64) {
	if side == core.SideTop || side == core.SideBottom {
		return halfLength, halfDepth
	}
	return halfDepth, halfLength
}

// GoalCenter sits just outside the boundary
func (l Layout) GoalCenter(side core.GoalSide) vmath.Vec3F {
	d := l.cfg.Arena.HalfExtent + l.cfg.Arena.GoalDepth*0.5
	return vmath.V3FScale(outward(side), d)
}

func (l Layout) GoalExtents(side core.GoalSide) (halfX, halfZ float64) {
	return slab(side, l.cfg.Arena.HalfExtent, l.cfg.Arena.GoalDepth*0.5)
}

// WallCenter covers the goal mouth of an eliminated side
func (l Layout) WallCenter(side core.GoalSide) vmath.Vec3F {
	d := l.cfg.Arena.HalfExtent + l.cfg.Arena.WallThickness*0.5
	return vmath.V3FScale(outward(side), d)
}

func (l Layout) WallExtents(side core.GoalSide) (halfX, halfZ float64) {
	return slab(side, l.cfg.Arena.HalfExtent, l.cfg.Arena.WallThickness*0.5)
}

// PaddleCenter is inset from the goal line toward the centre
func (l Layout) PaddleCenter(side core.GoalSide) vmath.Vec3F {
	d := l.cfg.Arena.HalfExtent - l.cfg.Paddle.Offset
	return vmath.V3FScale(outward(side), d)
}

func (l Layout) PaddleExtents(side core.GoalSide) (halfX, halfZ float64) {
	return slab(side, l.cfg.Paddle.Length*0.5, l.cfg.Paddle.Thickness*0.5)
}

// PaddleLimit keeps the paddle clear of the corner barriers
func (l Layout) PaddleLimit() float64 {
	lim := l.cfg.Arena.HalfExtent - l.cfg.Barrier.ShapeRadius() - l.cfg.Paddle.Length*0.5
	return math.Max(lim, 0)
}

// BarrierCenters returns the four corners in Top-Right, Bottom-Right, Bottom-Left, Top-Left order
func (l Layout) BarrierCenters() []vmath.Vec3F {
	h := l.cfg.Arena.HalfExtent
	return []vmath.Vec3F{
		{X: h, Z: -h},
		{X: h, Z: h},
		{X: -h, Z: h},
		{X: -h, Z: -h},
	}
}

// ServeVelocity picks a diagonal-ish heading so a serve never runs parallel to a wall
func (l Layout) ServeVelocity(rng *vmath.FastRand) vmath.Vec3F {
	quadrant := float64(rng.Intn(4))
	jitter := (rng.Float64() - 0.5) * (math.Pi / 4)
	angle := math.Pi/4 + quadrant*(math.Pi/2) + jitter
	return vmath.V3FScale(vmath.V3FFromAngle(angle), l.cfg.Ball.ServeSpeed)
}
