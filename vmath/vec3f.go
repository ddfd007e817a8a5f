package vmath

import (
	"math"
)

// Vec3F is a float64 3D vector; the arena floor is the XZ plane, Y is height
type Vec3F struct {
	X, Y, Z float64
}

func V3F(x, y, z float64) Vec3F {
	return Vec3F{x, y, z}
}

func V3FAdd(a, b Vec3F) Vec3F {
	return Vec3F{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func V3FSub(a, b Vec3F) Vec3F {
	return Vec3F{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func V3FScale(v Vec3F, s float64) Vec3F {
	return Vec3F{v.X * s, v.Y * s, v.Z * s}
}

func V3FDot(a, b Vec3F) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

func V3FMagSq(v Vec3F) float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func V3FMag(v Vec3F) float64 {
	return math.Sqrt(V3FMagSq(v))
}

func V3FNormalize(v Vec3F) Vec3F {
	mag := V3FMag(v)
	if mag == 0 {
		return Vec3F{}
	}
	inv := 1.0 / mag
	return Vec3F{v.X * inv, v.Y * inv, v.Z * inv}
}

// V3FReflect returns v reflected about the plane with unit normal n
// v' = v - 2 * dot(v, n) * n
func V3FReflect(v, n Vec3F) Vec3F {
	d := 2 * V3FDot(v, n)
	return Vec3F{v.X - d*n.X, v.Y - d*n.Y, v.Z - d*n.Z}
}

// V3FTangent removes the component of v along unit normal n
func V3FTangent(v, n Vec3F) Vec3F {
	return V3FSub(v, V3FScale(n, V3FDot(v, n)))
}

// V3FClampMag limits magnitude to maxMag while preserving direction
func V3FClampMag(v Vec3F, maxMag float64) Vec3F {
	mag := V3FMag(v)
	if mag <= maxMag || mag == 0 {
		return v
	}
	return V3FScale(v, maxMag/mag)
}

// V3FFlat projects onto the floor plane
func V3FFlat(v Vec3F) Vec3F {
	return Vec3F{v.X, 0, v.Z}
}

// V3FNear reports component-wise equality within eps
func V3FNear(a, b Vec3F, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps && math.Abs(a.Z-b.Z) <= eps
}

// V3FFromAngle returns a floor-plane unit vector at angle radians from +X toward +Z
func V3FFromAngle(angle float64) Vec3F {
	return Vec3F{math.Cos(angle), 0, math.Sin(angle)}
}
