package geometry

import (
	"testing"

	"github.com/chewxy/math32"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

func pinholeConfig() CameraConfig {
	return CameraConfig{
		Center:        core.NewVec3(0, 0, 0),
		LookAt:        core.NewVec3(0, 0, -1),
		Up:            core.NewVec3(0, 1, 0),
		Width:         400,
		AspectRatio:   16.0 / 9.0,
		VFov:          90.0,
		Aperture:      0.0,
		FocusDistance: 1.0,
	}
}

func TestCamera_CenterRay(t *testing.T) {
	camera := NewCamera(pinholeConfig())

	ray := camera.GetRay(0.5, 0.5, core.NewConstantSampler(0.3))
	if ray.Origin != camera.Origin() {
		t.Errorf("Expected origin %v, got %v", camera.Origin(), ray.Origin)
	}
	if ray.Direction.Normalize().Subtract(core.NewVec3(0, 0, -1)).Length() > tolerance {
		t.Errorf("Expected center ray along -Z, got %v", ray.Direction)
	}
	if camera.Forward().Subtract(core.NewVec3(0, 0, -1)).Length() > tolerance {
		t.Errorf("Expected forward -Z, got %v", camera.Forward())
	}
}

func TestCamera_ViewportCorners(t *testing.T) {
	// vfov 90 gives a viewport height of 2 at focus distance 1
	camera := NewCamera(pinholeConfig())
	width := float32(16.0 / 9.0 * 2.0)

	tests := []struct {
		name     string
		s, t     float32
		expected core.Vec3
	}{
		{"lower left", 0, 0, core.NewVec3(-width/2, -1, -1)},
		{"upper right", 1, 1, core.NewVec3(width/2, 1, -1)},
		{"top middle", 0.5, 1, core.NewVec3(0, 1, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := camera.GetRay(tt.s, tt.t, core.NewConstantSampler(0.5))
			if ray.Direction.Subtract(tt.expected).Length() > tolerance {
				t.Errorf("Expected direction %v, got %v", tt.expected, ray.Direction)
			}
		})
	}
}

func TestCamera_ZeroApertureNeverJitters(t *testing.T) {
	camera := NewCamera(pinholeConfig())
	sampler := core.NewSeededSampler(42)

	for i := 0; i < 100; i++ {
		s, tt := sampler.Get1D(), sampler.Get1D()
		if ray := camera.GetRay(s, tt, sampler); ray.Origin != camera.Origin() {
			t.Fatalf("Pinhole camera moved origin to %v", ray.Origin)
		}
	}
}

func TestCamera_DepthOfField(t *testing.T) {
	config := pinholeConfig()
	config.Aperture = 0.5
	config.FocusDistance = 3.0
	camera := NewCamera(config)
	sampler := core.NewSeededSampler(7)

	focusPoint := core.NewVec3(0, 0, -3)
	moved := false
	for i := 0; i < 200; i++ {
		ray := camera.GetRay(0.5, 0.5, sampler)
		offset := ray.Origin.Subtract(camera.Origin())

		if offset.Length() > config.Aperture/2+tolerance {
			t.Fatalf("Lens offset %v exceeds lens radius", offset)
		}
		if math32.Abs(offset.Z) > tolerance {
			t.Fatalf("Lens offset %v left the lens plane", offset)
		}
		if offset.Length() > 0 {
			moved = true
		}

		// Every ray through the viewport center converges on the focus plane
		if p := ray.At(1); p.Subtract(focusPoint).Length() > 1e-4 {
			t.Fatalf("Ray missed focus point: reached %v", p)
		}
	}

	if !moved {
		t.Error("Expected lens jitter with non-zero aperture")
	}
}

func TestCamera_AutoFocusDistance(t *testing.T) {
	config := pinholeConfig()
	config.Center = core.NewVec3(0, 0, 4)
	config.FocusDistance = 0
	camera := NewCamera(config)

	// The viewport plane sits on LookAt, 5 units away
	ray := camera.GetRay(0.5, 0.5, core.NewConstantSampler(0.5))
	if p := ray.At(1); p.Subtract(config.LookAt).Length() > 1e-4 {
		t.Errorf("Expected viewport center at %v, got %v", config.LookAt, p)
	}
}

func TestCameraConfig_ImageHeight(t *testing.T) {
	tests := []struct {
		width    int
		aspect   float32
		expected int
	}{
		{400, 2.0, 200},
		{400, 1.0, 400},
		{1, 16.0 / 9.0, 1},
	}

	for _, tt := range tests {
		config := CameraConfig{Width: tt.width, AspectRatio: tt.aspect}
		if got := config.ImageHeight(); got != tt.expected {
			t.Errorf("Width %d aspect %f: expected height %d, got %d", tt.width, tt.aspect, tt.expected, got)
		}
	}
}

func TestMergeCameraConfig(t *testing.T) {
	base := pinholeConfig()
	merged := MergeCameraConfig(base, CameraConfig{Width: 800, Aperture: 0.1})

	if merged.Width != 800 || merged.Aperture != 0.1 {
		t.Errorf("Overrides not applied: %+v", merged)
	}
	if merged.VFov != base.VFov || merged.LookAt != base.LookAt {
		t.Errorf("Zero override fields should keep base values: %+v", merged)
	}
}
