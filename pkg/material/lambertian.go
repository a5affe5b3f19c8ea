package material

import (
	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// NewLambertian creates a new perfectly diffuse material
func NewLambertian(albedo core.Vec3) Material {
	return Material{Kind: KindLambertian, Albedo: albedo}
}

// scatterLambertian offsets the normal by a random unit vector.
// The sum can cancel out when the sample lands opposite the normal; the
// normal itself is used then so the outgoing ray never has a zero direction.
func (m Material) scatterLambertian(hit core.HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	scatterDirection := hit.Normal.Add(core.RandomUnitVector(sampler))
	if scatterDirection.NearZero() {
		scatterDirection = hit.Normal
	}

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, scatterDirection),
		Attenuation: m.Albedo,
	}, true
}
