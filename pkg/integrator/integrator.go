package integrator

import (
	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/scene"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor computes the color carried back along ray with at most depth bounces
	RayColor(ray core.Ray, scene *scene.Scene, sampler core.Sampler, depth int) core.Vec3
}

// ShadowAcneEpsilon is the lower bound of the hit interval. Scattered rays
// start on a surface and would otherwise re-hit it through rounding error.
const ShadowAcneEpsilon float32 = 0.001

// Background returns the sky gradient seen along ray: bottom color when
// looking straight down, top color straight up, linear in between.
func Background(ray core.Ray, s *scene.Scene) core.Vec3 {
	topColor, bottomColor := s.GetBackgroundColors()

	unitDirection := ray.Direction.Normalize()
	t := 0.5 * (unitDirection.Y + 1.0)

	return bottomColor.Multiply(1.0 - t).Add(topColor.Multiply(t))
}
