package renderer

import (
	"context"
	"fmt"
	"io"
	"log"
	"runtime"
	"time"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/integrator"
	"github.com/df07/go-sphere-raytracer/pkg/scene"
)

// RenderConfig contains configuration for parallel rendering
type RenderConfig struct {
	TileSize   int   // Size of each square tile in pixels
	NumWorkers int   // Number of parallel workers (0 = use CPU count)
	Seed       int64 // Base seed; tile i draws from Seed+i
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		TileSize:   32,
		NumWorkers: 0, // Auto-detect CPU count
		Seed:       42,
	}
}

// Raytracer renders a scene into a framebuffer by splitting the image into tiles
type Raytracer struct {
	scene        *scene.Scene
	config       RenderConfig
	sampling     scene.SamplingConfig
	tileRenderer *TileRenderer
	logger       core.Logger
}

// NewRaytracer creates a new raytracer. A nil logger discards progress output.
func NewRaytracer(s *scene.Scene, integ integrator.Integrator, config RenderConfig, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	if config.TileSize <= 0 {
		config.TileSize = DefaultRenderConfig().TileSize
	}

	sampling := s.GetSamplingConfig()
	return &Raytracer{
		scene:        s,
		config:       config,
		sampling:     sampling,
		tileRenderer: NewTileRenderer(s, integ, sampling),
		logger:       logger,
	}
}

// Render traces every pixel of the scene and returns the averaged linear colors.
// The result depends only on the scene and the seed, not on the number of workers.
func (rt *Raytracer) Render(ctx context.Context) (*Framebuffer, RenderStats, error) {
	var stats RenderStats
	if err := rt.sampling.Validate(); err != nil {
		return nil, stats, fmt.Errorf("invalid sampling config: %w", err)
	}

	startTime := time.Now()
	width, height := rt.sampling.Width, rt.sampling.Height
	fb := NewFramebuffer(width, height)
	tiles := NewTileGrid(width, height, rt.config.TileSize, rt.config.Seed)

	numWorkers := rt.config.NumWorkers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	numWorkers = min(numWorkers, len(tiles))

	rt.logger.Printf("Rendering %dx%d at %d samples per pixel, max depth %d (%d tiles, %d workers)\n",
		width, height, rt.sampling.SamplesPerPixel, rt.sampling.MaxDepth, len(tiles), numWorkers)

	pool := NewWorkerPool(rt.tileRenderer, numWorkers, len(tiles))
	pool.Start(ctx)
	for i, tile := range tiles {
		pool.SubmitTask(TileTask{Tile: tile, TaskID: i, Framebuffer: fb})
	}
	go pool.Stop()

	// Report progress roughly every tenth of the image
	reportEvery := max(1, len(tiles)/10)
	remaining := len(tiles)
	var renderErr error
	for {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		remaining--
		if result.Error != nil {
			if renderErr == nil {
				renderErr = result.Error
			}
			continue
		}
		stats.merge(result.Stats)
		if remaining%reportEvery == 0 {
			rt.logger.Printf("Tiles remaining: %d\n", remaining)
		}
	}

	stats.finalize(time.Since(startTime))
	if renderErr != nil {
		rt.logger.Printf("Rendering cancelled after %v\n", stats.Duration)
		return nil, stats, fmt.Errorf("render interrupted: %w", renderErr)
	}

	rt.logger.Printf("Done in %v (%d samples, %.1f per pixel)\n",
		stats.Duration, stats.TotalSamples, stats.AverageSamples)
	return fb, stats, nil
}
