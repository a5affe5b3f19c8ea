package geometry

import (
	"github.com/chewxy/math32"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// Sphere represents a sphere shape.
// A negative radius keeps the same surface but flips the outward normal,
// which models the inner wall of a hollow glass shell.
type Sphere struct {
	Center   core.Vec3
	Radius   float32
	Material core.MaterialID
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float32, material core.MaterialID) Sphere {
	return Sphere{
		Center:   center,
		Radius:   radius,
		Material: material,
	}
}

// Hit tests if a ray intersects with the sphere strictly inside (tMin, tMax)
func (s Sphere) Hit(ray core.Ray, tMin, tMax float32) (core.HitRecord, bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + 2*halfB*t + c = 0
	a := ray.Direction.LengthSquared()
	halfB := oc.Dot(ray.Direction)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant <= 0 {
		return core.HitRecord{}, false
	}

	sqrtD := math32.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (-halfB - sqrtD) / a
	if root <= tMin || root >= tMax {
		// Camera inside the sphere: fall back to the far crossing
		root = (-halfB + sqrtD) / a
		if root <= tMin || root >= tMax {
			return core.HitRecord{}, false
		}
	}

	hit := core.HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: s.Material,
	}

	// Dividing by the signed radius keeps the flip for negative radii
	outwardNormal := hit.Point.Subtract(s.Center).Divide(s.Radius)
	hit.SetFaceNormal(ray, outwardNormal)

	return hit, true
}
