package integrator

import (
	"github.com/chewxy/math32"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/scene"
)

// PathTracingIntegrator implements recursive unidirectional path tracing
type PathTracingIntegrator struct{}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator() *PathTracingIntegrator {
	return &PathTracingIntegrator{}
}

// RayColor computes the color for a single ray. Running out of depth returns
// black: the path's remaining energy is dropped rather than estimated.
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, s *scene.Scene, sampler core.Sampler, depth int) core.Vec3 {
	if depth <= 0 {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}

	hit, isHit := s.Hit(ray, ShadowAcneEpsilon, math32.Inf(1))
	if !isHit {
		return Background(ray, s)
	}

	scatter, didScatter := s.Material(hit.Material).Scatter(ray, hit, sampler)
	if !didScatter {
		return core.Vec3{X: 0, Y: 0, Z: 0} // Material absorbed the ray
	}

	return scatter.Attenuation.MultiplyVec(
		pt.RayColor(scatter.Scattered, s, sampler, depth-1))
}

// IterativeIntegrator computes the same estimate as PathTracingIntegrator
// with a loop that carries the accumulated attenuation instead of recursing.
type IterativeIntegrator struct{}

// NewIterativeIntegrator creates a new loop-based integrator
func NewIterativeIntegrator() *IterativeIntegrator {
	return &IterativeIntegrator{}
}

// RayColor computes the color for a single ray
func (it *IterativeIntegrator) RayColor(ray core.Ray, s *scene.Scene, sampler core.Sampler, depth int) core.Vec3 {
	throughput := core.NewVec3(1, 1, 1)

	for ; depth > 0; depth-- {
		hit, isHit := s.Hit(ray, ShadowAcneEpsilon, math32.Inf(1))
		if !isHit {
			return throughput.MultiplyVec(Background(ray, s))
		}

		scatter, didScatter := s.Material(hit.Material).Scatter(ray, hit, sampler)
		if !didScatter {
			break
		}

		throughput = throughput.MultiplyVec(scatter.Attenuation)
		ray = scatter.Scattered
	}

	return core.Vec3{X: 0, Y: 0, Z: 0}
}
