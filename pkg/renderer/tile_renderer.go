package renderer

import (
	"image"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/integrator"
	"github.com/df07/go-sphere-raytracer/pkg/scene"
)

// TileRenderer handles the actual rendering of individual tiles using an integrator.
// It only reads shared state, so one instance serves every worker.
type TileRenderer struct {
	scene      *scene.Scene
	integrator integrator.Integrator
	config     scene.SamplingConfig
}

// NewTileRenderer creates a new tile renderer with the given scene and integrator
func NewTileRenderer(s *scene.Scene, integ integrator.Integrator, config scene.SamplingConfig) *TileRenderer {
	return &TileRenderer{
		scene:      s,
		integrator: integ,
		config:     config,
	}
}

// RenderTileBounds renders pixels within bounds into fb using sampler for every random draw
func (tr *TileRenderer) RenderTileBounds(bounds image.Rectangle, fb *Framebuffer, sampler core.Sampler) RenderStats {
	stats := RenderStats{TotalPixels: bounds.Dx() * bounds.Dy()}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			var ps PixelStats
			tr.samplePixel(x, y, &ps, sampler)
			fb.Set(x, y, ps.GetColor())
			stats.TotalSamples += ps.SampleCount
		}
	}

	return stats
}

// samplePixel accumulates SamplesPerPixel jittered camera rays for the pixel at
// framebuffer position (x, y). Viewport t runs bottom to top, so the row is flipped.
func (tr *TileRenderer) samplePixel(x, y int, ps *PixelStats, sampler core.Sampler) {
	camera := tr.scene.GetCamera()
	j := tr.config.Height - 1 - y

	// Single-pixel dimensions would divide by zero
	sDenominator := float32(max(1, tr.config.Width-1))
	tDenominator := float32(max(1, tr.config.Height-1))

	for sample := 0; sample < tr.config.SamplesPerPixel; sample++ {
		s := (float32(x) + sampler.Get1D()) / sDenominator
		t := (float32(j) + sampler.Get1D()) / tDenominator

		ray := camera.GetRay(s, t, sampler)
		ps.AddSample(tr.integrator.RayColor(ray, tr.scene, sampler, tr.config.MaxDepth))
	}
}
