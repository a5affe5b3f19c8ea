package material

import (
	"fmt"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// Kind identifies one of the supported scattering models
type Kind int

const (
	KindLambertian Kind = iota // diffuse
	KindMetal                  // specular reflection with optional fuzz
	KindDielectric             // glass-like reflection/refraction
)

func (k Kind) String() string {
	switch k {
	case KindLambertian:
		return "lambertian"
	case KindMetal:
		return "metal"
	case KindDielectric:
		return "dielectric"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Material is a closed set of surface models selected by Kind.
// Only the fields relevant to the kind are meaningful.
// Values are immutable once added to a scene and shared by every sphere that references them.
type Material struct {
	Kind            Kind
	Albedo          core.Vec3 // Lambertian, Metal
	Fuzz            float32   // Metal: 0.0 = perfect mirror, 1.0 = very fuzzy
	RefractiveIndex float32   // Dielectric, e.g. 1.5 for glass
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray  // The outgoing ray
	Attenuation core.Vec3 // Color attenuation
}

// Scatter decides whether the incoming ray scatters off the surface at hit.
// Returns false when the material absorbs the ray.
func (m Material) Scatter(rayIn core.Ray, hit core.HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	switch m.Kind {
	case KindLambertian:
		return m.scatterLambertian(hit, sampler)
	case KindMetal:
		return m.scatterMetal(rayIn, hit, sampler)
	case KindDielectric:
		return m.scatterDielectric(rayIn, hit, sampler)
	}
	panic(fmt.Sprintf("material: unknown kind %v", m.Kind))
}

func (m Material) String() string {
	switch m.Kind {
	case KindLambertian:
		return fmt.Sprintf("lambertian(albedo=%v)", m.Albedo)
	case KindMetal:
		return fmt.Sprintf("metal(albedo=%v, fuzz=%g)", m.Albedo, m.Fuzz)
	case KindDielectric:
		return fmt.Sprintf("dielectric(ior=%g)", m.RefractiveIndex)
	}
	return m.Kind.String()
}
