package core

import "github.com/lixenwraith/ball-arena/vmath"

// Contact is one overlapping shape pair reported by the physics layer
// Normal points from B toward A
type Contact struct {
	A, B   Entity
	Point  vmath.Vec3F
	Normal vmath.Vec3F
}

// Deflection is a velocity correction handed back to the physics layer
type Deflection struct {
	Entity   Entity
	Velocity vmath.Vec3F
}
