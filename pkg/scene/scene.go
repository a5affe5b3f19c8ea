package scene

import (
	"errors"
	"fmt"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
	"github.com/df07/go-sphere-raytracer/pkg/material"
)

// Scene contains all the elements needed for rendering.
// It is built once before rendering and only read while tracing.
type Scene struct {
	Camera         *geometry.Camera
	CameraConfig   geometry.CameraConfig
	SamplingConfig SamplingConfig
	Spheres        []geometry.Sphere   // Objects in the scene
	Materials      []material.Material // Registry indexed by core.MaterialID
	TopColor       core.Vec3           // Sky color straight up
	BottomColor    core.Vec3           // Sky color straight down
}

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	Width           int // Image width
	Height          int // Image height
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// Validate reports the first invalid field, if any
func (c SamplingConfig) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("image size must be positive, got %dx%d", c.Width, c.Height)
	case c.SamplesPerPixel <= 0:
		return fmt.Errorf("samples per pixel must be positive, got %d", c.SamplesPerPixel)
	case c.MaxDepth < 0:
		return fmt.Errorf("max depth must not be negative, got %d", c.MaxDepth)
	}
	return nil
}

// ErrUnknownMaterial is returned when a sphere references a missing registry entry
var ErrUnknownMaterial = errors.New("unknown material")

// New creates an empty scene with the default sky and a camera built from cameraConfig
func New(cameraConfig geometry.CameraConfig, samplingConfig SamplingConfig) *Scene {
	return &Scene{
		Camera:         geometry.NewCamera(cameraConfig),
		CameraConfig:   cameraConfig,
		SamplingConfig: samplingConfig,
		TopColor:       core.NewVec3(0.5, 0.7, 1.0), // Blue sky
		BottomColor:    core.NewVec3(1.0, 1.0, 1.0), // White horizon
	}
}

// AddMaterial registers a material and returns its handle
func (s *Scene) AddMaterial(m material.Material) core.MaterialID {
	s.Materials = append(s.Materials, m)
	return core.MaterialID(len(s.Materials) - 1)
}

// Material returns the registered material for id.
// Spheres only receive ids from AddMaterial, so an unknown id is a programming error.
func (s *Scene) Material(id core.MaterialID) material.Material {
	return s.Materials[id]
}

// AddSphere adds a sphere using a previously registered material
func (s *Scene) AddSphere(center core.Vec3, radius float32, id core.MaterialID) error {
	if id < 0 || int(id) >= len(s.Materials) {
		return fmt.Errorf("sphere at %v: %w %d", center, ErrUnknownMaterial, id)
	}
	s.Spheres = append(s.Spheres, geometry.NewSphere(center, radius, id))
	return nil
}

// mustAddSphere is used by the built-in scenes, which only use ids they just registered
func (s *Scene) mustAddSphere(center core.Vec3, radius float32, id core.MaterialID) {
	if err := s.AddSphere(center, radius, id); err != nil {
		panic(err)
	}
}

// Hit returns the closest intersection across every sphere.
// The upper bound shrinks to each accepted hit so later spheres only
// report strictly closer surfaces.
func (s *Scene) Hit(ray core.Ray, tMin, tMax float32) (core.HitRecord, bool) {
	var closestHit core.HitRecord
	closestSoFar := tMax
	hitAnything := false

	for _, sphere := range s.Spheres {
		if hit, isHit := sphere.Hit(ray, tMin, closestSoFar); isHit {
			hitAnything = true
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, hitAnything
}

// GetCamera returns the scene camera
func (s *Scene) GetCamera() *geometry.Camera {
	return s.Camera
}

// GetBackgroundColors returns the sky gradient endpoints
func (s *Scene) GetBackgroundColors() (topColor, bottomColor core.Vec3) {
	return s.TopColor, s.BottomColor
}

// GetSamplingConfig returns the scene's sampling configuration
func (s *Scene) GetSamplingConfig() SamplingConfig {
	return s.SamplingConfig
}

// GetPrimitiveCount returns the number of spheres in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.Spheres)
}
