package renderer

import (
	"image"
	"sync/atomic"
	"testing"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
	"github.com/df07/go-sphere-raytracer/pkg/scene"
)

// MockIntegrator returns a fixed color and counts how often it was asked
type MockIntegrator struct {
	returnColor core.Vec3
	callCount   atomic.Int64
}

func (m *MockIntegrator) RayColor(ray core.Ray, s *scene.Scene, sampler core.Sampler, depth int) core.Vec3 {
	m.callCount.Add(1)
	return m.returnColor
}

// directionIntegrator encodes the normalized ray direction as a color
type directionIntegrator struct{}

func (directionIntegrator) RayColor(ray core.Ray, s *scene.Scene, sampler core.Sampler, depth int) core.Vec3 {
	return ray.Direction.Normalize()
}

// newTestScene builds the simple scene at a small resolution
func newTestScene(width, samples, depth int) *scene.Scene {
	s := scene.NewSimpleScene(geometry.CameraConfig{Width: width})
	s.SamplingConfig.SamplesPerPixel = samples
	s.SamplingConfig.MaxDepth = depth
	return s
}

func TestNewTileGrid_CoversImage(t *testing.T) {
	width, height, tileSize := 70, 45, 32
	tiles := NewTileGrid(width, height, tileSize, 7)

	if len(tiles) != 6 {
		t.Fatalf("Expected 3x2 tiles, got %d", len(tiles))
	}

	covered := make([]int, width*height)
	for i, tile := range tiles {
		if tile.ID != i {
			t.Errorf("Expected tile %d to have ID %d, got %d", i, i, tile.ID)
		}
		if tile.Bounds.Dx() > tileSize || tile.Bounds.Dy() > tileSize {
			t.Errorf("Tile %d exceeds tile size: %v", i, tile.Bounds)
		}
		for y := tile.Bounds.Min.Y; y < tile.Bounds.Max.Y; y++ {
			for x := tile.Bounds.Min.X; x < tile.Bounds.Max.X; x++ {
				covered[y*width+x]++
			}
		}
	}

	for i, count := range covered {
		if count != 1 {
			t.Fatalf("Pixel (%d, %d) covered %d times, want exactly once", i%width, i/width, count)
		}
	}
}

func TestNewTile_SeedDeterminism(t *testing.T) {
	bounds := image.Rect(0, 0, 8, 8)
	a := NewTile(3, bounds, 100)
	b := NewTile(3, bounds, 100)
	c := NewTile(4, bounds, 100)

	sameAsB, sameAsC := true, true
	for i := 0; i < 10; i++ {
		va, vb, vc := a.Sampler.Get1D(), b.Sampler.Get1D(), c.Sampler.Get1D()
		sameAsB = sameAsB && va == vb
		sameAsC = sameAsC && va == vc
	}

	if !sameAsB {
		t.Error("Tiles with the same ID and seed should draw identical samples")
	}
	if sameAsC {
		t.Error("Tiles with different IDs should draw different samples")
	}
}

func TestRenderTileBounds_ConstantIntegrator(t *testing.T) {
	s := newTestScene(16, 3, 5)
	color := core.NewVec3(0.25, 0.5, 1)
	mock := &MockIntegrator{returnColor: color}
	tr := NewTileRenderer(s, mock, s.GetSamplingConfig())

	fb := NewFramebuffer(16, 9)
	bounds := image.Rect(4, 2, 10, 6)
	stats := tr.RenderTileBounds(bounds, fb, core.NewSeededSampler(1))

	if stats.TotalPixels != 24 {
		t.Errorf("Expected 24 pixels, got %d", stats.TotalPixels)
	}
	if stats.TotalSamples != 72 {
		t.Errorf("Expected 72 samples, got %d", stats.TotalSamples)
	}
	if got := mock.callCount.Load(); got != 72 {
		t.Errorf("Expected 72 integrator calls, got %d", got)
	}

	for y := 0; y < 9; y++ {
		for x := 0; x < 16; x++ {
			got := fb.At(x, y)
			inside := image.Pt(x, y).In(bounds)
			switch {
			case inside && got.Subtract(color).Length() > 1e-6:
				t.Errorf("Pixel (%d, %d): expected %v, got %v", x, y, color, got)
			case !inside && got != (core.Vec3{}):
				t.Errorf("Pixel (%d, %d) outside the tile was written: %v", x, y, got)
			}
		}
	}
}

func TestRenderTileBounds_TopRowLooksUp(t *testing.T) {
	s := newTestScene(16, 1, 1)
	tr := NewTileRenderer(s, directionIntegrator{}, s.GetSamplingConfig())

	fb := NewFramebuffer(16, 9)
	tr.RenderTileBounds(image.Rect(0, 0, 16, 9), fb, core.NewConstantSampler(0.5))

	for x := 0; x < 16; x++ {
		top, bottom := fb.At(x, 0), fb.At(x, 8)
		if top.Y <= 0 || bottom.Y >= 0 {
			t.Errorf("Column %d: expected top row to look up and bottom row down, got %v and %v", x, top, bottom)
		}
	}

	left, right := fb.At(0, 4), fb.At(15, 4)
	if left.X >= 0 || right.X <= 0 {
		t.Errorf("Expected left column to look left and right column right, got %v and %v", left, right)
	}
}
