package component

import "github.com/lixenwraith/ball-arena/vmath"

// KineticComponent is the rigid-body state owned by the physics layer
type KineticComponent struct {
	Position vmath.Vec3F
	Velocity vmath.Vec3F
}

// ShapeKind selects the overlap test used by the physics layer
type ShapeKind uint8

const (
	ShapeSphere ShapeKind = iota
	ShapeCylinder
	ShapeBox
)

// ShapeComponent describes collision geometry on the floor plane
type ShapeComponent struct {
	Kind   ShapeKind
	Radius float64 // Sphere, Cylinder
	HalfX  float64 // Box
	HalfZ  float64 // Box
	Height float64
}
