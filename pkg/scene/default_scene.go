package scene

import (
	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
	"github.com/df07/go-sphere-raytracer/pkg/material"
)

// DefaultCameraConfig frames the three spheres of the default scene
func DefaultCameraConfig() geometry.CameraConfig {
	return geometry.CameraConfig{
		Center:        core.NewVec3(-2, 2, 1),
		LookAt:        core.NewVec3(0, 0, -1),
		Up:            core.NewVec3(0, 1, 0),
		Width:         384,
		AspectRatio:   16.0 / 9.0,
		VFov:          20.0,
		Aperture:      0.0,
		FocusDistance: 0.0, // Auto-calculate focus distance
	}
}

// DefaultSamplingConfig returns sampling values suited to the built-in scenes
func DefaultSamplingConfig(cameraConfig geometry.CameraConfig) SamplingConfig {
	return SamplingConfig{
		Width:           cameraConfig.Width,
		Height:          cameraConfig.ImageHeight(),
		SamplesPerPixel: 100,
		MaxDepth:        50,
	}
}

// NewDefaultScene creates a scene with a diffuse, a glass and a metal sphere on a ground sphere
func NewDefaultScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	cameraConfig := DefaultCameraConfig()
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}

	s := New(cameraConfig, DefaultSamplingConfig(cameraConfig))

	ground := s.AddMaterial(material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0)))
	center := s.AddMaterial(material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5)))
	glass := s.AddMaterial(material.NewDielectric(1.5))
	gold := s.AddMaterial(material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.0))

	s.mustAddSphere(core.NewVec3(0, -100.5, -1), 100, ground)
	s.mustAddSphere(core.NewVec3(0, 0, -1), 0.5, center)
	// Hollow glass: the inner sphere's negative radius turns its normals inwards
	s.mustAddSphere(core.NewVec3(-1, 0, -1), 0.5, glass)
	s.mustAddSphere(core.NewVec3(-1, 0, -1), -0.45, glass)
	s.mustAddSphere(core.NewVec3(1, 0, -1), 0.5, gold)

	return s
}

// NewDepthOfFieldScene is the default scene viewed through a wide lens focused on the center sphere
func NewDepthOfFieldScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	lookFrom := core.NewVec3(3, 3, 2)
	lookAt := core.NewVec3(0, 0, -1)
	cameraConfig := geometry.CameraConfig{
		Center:        lookFrom,
		LookAt:        lookAt,
		Aperture:      2.0,
		FocusDistance: lookFrom.Subtract(lookAt).Length(),
	}
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}
	return NewDefaultScene(cameraConfig)
}

// NewSimpleScene creates the minimal two-sphere scene: a diffuse sphere resting on a huge ground sphere
func NewSimpleScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	cameraConfig := geometry.CameraConfig{
		Center:        core.NewVec3(0, 0, 0),
		LookAt:        core.NewVec3(0, 0, -1),
		Up:            core.NewVec3(0, 1, 0),
		Width:         384,
		AspectRatio:   16.0 / 9.0,
		VFov:          90.0,
		Aperture:      0.0,
		FocusDistance: 1.0,
	}
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}

	s := New(cameraConfig, DefaultSamplingConfig(cameraConfig))

	blue := s.AddMaterial(material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5)))
	ground := s.AddMaterial(material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0)))

	s.mustAddSphere(core.NewVec3(0, 0, -1), 0.5, blue)
	s.mustAddSphere(core.NewVec3(0, -100.5, -1), 100, ground)

	return s
}
