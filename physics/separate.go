package physics

import (
	"math"

	"github.com/lixenwraith/ball-arena/vmath"
)

// separationMargin is the extra gap left after resolving a penetration
const separationMargin = 0.0625

// SeparateSpheres pushes overlapping circles apart on the floor plane,
// splitting the correction by inverse mass
// Returns false when the pair does not overlap or the centres coincide
func SeparateSpheres(posA, posB *vmath.Vec3F, radiusA, radiusB, massA, massB float64) bool {
	dx := posB.X - posA.X
	dz := posB.Z - posA.Z

	distSq := dx*dx + dz*dz
	minDist := radiusA + radiusB
	if distSq >= minDist*minDist || distSq == 0 {
		return false
	}

	dist := math.Sqrt(distSq)
	overlap := minDist - dist
	nx, nz := dx/dist, dz/dist

	totalMass := massA + massB
	sepA := (overlap + separationMargin) * (massB / totalMass)
	sepB := (overlap + separationMargin) * (massA / totalMass)

	posA.X -= nx * sepA
	posA.Z -= nz * sepA
	posB.X += nx * sepB
	posB.Z += nz * sepB
	return true
}

// PushOut moves a circle of radius r along normal until it clears the
// surface point; normal must point away from the surface
// Returns false when the circle is already clear
func PushOut(pos *vmath.Vec3F, r float64, point, normal vmath.Vec3F) bool {
	gap := vmath.V3FDot(vmath.V3FSub(vmath.V3FFlat(*pos), point), normal)
	pen := r - gap
	if pen <= 0 {
		return false
	}
	pos.X += normal.X * (pen + separationMargin)
	pos.Z += normal.Z * (pen + separationMargin)
	return true
}
