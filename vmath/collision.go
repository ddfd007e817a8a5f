package vmath

import "math"

// Overlap tests operate on the XZ floor plane; Y is ignored

// CircleOverlap tests two circles; normal points from b toward a
func CircleOverlap(a Vec3F, ra float64, b Vec3F, rb float64) (overlap bool, point, normal Vec3F) {
	d := V3FFlat(V3FSub(a, b))
	distSq := V3FMagSq(d)
	sum := ra + rb
	if distSq >= sum*sum {
		return false, Vec3F{}, Vec3F{}
	}
	if distSq == 0 {
		// Coincident centres, pick a stable axis
		normal = Vec3F{X: 1}
	} else {
		normal = V3FScale(d, 1/math.Sqrt(distSq))
	}
	point = V3FAdd(V3FFlat(b), V3FScale(normal, rb))
	return true, point, normal
}

// CircleBoxOverlap tests a circle against an axis-aligned box given by centre and half extents
// Normal points from the box toward the circle
func CircleBoxOverlap(c Vec3F, r float64, box Vec3F, halfX, halfZ float64) (overlap bool, point, normal Vec3F) {
	minX, maxX := box.X-halfX, box.X+halfX
	minZ, maxZ := box.Z-halfZ, box.Z+halfZ

	closest := Vec3F{X: Clamp(c.X, minX, maxX), Z: Clamp(c.Z, minZ, maxZ)}
	d := Vec3F{X: c.X - closest.X, Z: c.Z - closest.Z}
	distSq := V3FMagSq(d)

	if distSq > 0 {
		if distSq >= r*r {
			return false, Vec3F{}, Vec3F{}
		}
		return true, closest, V3FScale(d, 1/math.Sqrt(distSq))
	}

	// Centre inside the box: push out along the axis of least penetration
	left := c.X - minX
	right := maxX - c.X
	near := c.Z - minZ
	far := maxZ - c.Z
	minPen := math.Min(math.Min(left, right), math.Min(near, far))
	switch minPen {
	case left:
		return true, Vec3F{X: minX, Z: c.Z}, Vec3F{X: -1}
	case right:
		return true, Vec3F{X: maxX, Z: c.Z}, Vec3F{X: 1}
	case near:
		return true, Vec3F{X: c.X, Z: minZ}, Vec3F{Z: -1}
	default:
		return true, Vec3F{X: c.X, Z: maxZ}, Vec3F{Z: 1}
	}
}

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
