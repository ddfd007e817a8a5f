package physics

import (
	"github.com/lixenwraith/ball-arena/component"
	"github.com/lixenwraith/ball-arena/vmath"
)

// overlap tests a sphere at p against another shape at q
// Normal points from the other shape toward the sphere
func overlap(p vmath.Vec3F, r float64, q vmath.Vec3F, other component.ShapeComponent) (bool, vmath.Vec3F, vmath.Vec3F) {
	switch other.Kind {
	case component.ShapeSphere, component.ShapeCylinder:
		// Cylinders are upright, so the floor-plane test is a circle test
		return vmath.CircleOverlap(p, r, q, other.Radius)
	case component.ShapeBox:
		return vmath.CircleBoxOverlap(p, r, q, other.HalfX, other.HalfZ)
	}
	return false, vmath.Vec3F{}, vmath.Vec3F{}
}
