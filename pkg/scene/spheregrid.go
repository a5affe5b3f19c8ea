package scene

import (
	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
	"github.com/df07/go-sphere-raytracer/pkg/material"
)

// NewSphereGridScene creates a field of small randomly placed spheres around
// three large ones. The same seed always produces the same scene.
func NewSphereGridScene(seed int64, cameraOverrides ...geometry.CameraConfig) *Scene {
	defaultCameraConfig := geometry.CameraConfig{
		Center:        core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		Width:         384,
		AspectRatio:   16.0 / 9.0,
		VFov:          20.0,
		Aperture:      0.1,
		FocusDistance: 10.0,
	}

	cameraConfig := defaultCameraConfig
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(defaultCameraConfig, cameraOverrides[0])
	}

	s := New(cameraConfig, DefaultSamplingConfig(cameraConfig))
	random := core.NewSeededSampler(seed)

	ground := s.AddMaterial(material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))
	s.mustAddSphere(core.NewVec3(0, -1000, 0), 1000, ground)

	// Keep the grid clear of the large metal sphere
	clearance := core.NewVec3(4, 0.2, 0)

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMaterial := random.Get1D()
			center := core.NewVec3(
				float32(a)+0.9*random.Get1D(),
				0.2,
				float32(b)+0.9*random.Get1D(),
			)
			if center.Subtract(clearance).Length() <= 0.9 {
				continue
			}

			var m material.Material
			switch {
			case chooseMaterial < 0.8:
				albedo := core.RandomVec3(random, 0, 1).MultiplyVec(core.RandomVec3(random, 0, 1))
				m = material.NewLambertian(albedo)
			case chooseMaterial < 0.95:
				albedo := core.RandomVec3(random, 0.5, 1)
				m = material.NewMetal(albedo, core.RandomRange(random, 0, 0.5))
			default:
				m = material.NewDielectric(1.5)
			}
			s.mustAddSphere(center, 0.2, s.AddMaterial(m))
		}
	}

	s.mustAddSphere(core.NewVec3(0, 1, 0), 1.0, s.AddMaterial(material.NewDielectric(1.5)))
	s.mustAddSphere(core.NewVec3(-4, 1, 0), 1.0, s.AddMaterial(material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))))
	s.mustAddSphere(core.NewVec3(4, 1, 0), 1.0, s.AddMaterial(material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)))

	return s
}
