package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
	"github.com/df07/go-sphere-raytracer/pkg/integrator"
	"github.com/df07/go-sphere-raytracer/pkg/ppm"
	"github.com/df07/go-sphere-raytracer/pkg/renderer"
	"github.com/df07/go-sphere-raytracer/pkg/scene"
)

// options holds the parsed command line
type options struct {
	sceneName      string
	integratorName string
	output         string
	width          int
	samples        int
	depth          int
	workers        int
	seed           int64
}

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stdout)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		os.Exit(2)
	}

	logger := log.New(os.Stderr, "", 0)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, opts, os.Stdout, logger); err != nil {
		logger.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

// parseFlags reads the command line. Help text goes to usageOut.
func parseFlags(args []string, usageOut io.Writer) (options, error) {
	var opts options

	fs := flag.NewFlagSet("sphere-raytracer", flag.ContinueOnError)
	fs.SetOutput(usageOut)
	fs.StringVar(&opts.sceneName, "scene", "default", "Scene to render (see list below)")
	fs.StringVar(&opts.integratorName, "integrator", "recursive", "Integrator: 'recursive' or 'iterative'")
	fs.StringVar(&opts.output, "output", "-", "Output PPM file ('-' for stdout)")
	fs.IntVar(&opts.width, "width", 0, "Image width in pixels (0 = scene default)")
	fs.IntVar(&opts.samples, "samples", 100, "Samples per pixel")
	fs.IntVar(&opts.depth, "depth", 50, "Maximum ray bounce depth")
	fs.IntVar(&opts.workers, "workers", 0, "Number of parallel workers (0 = CPU count)")
	fs.Int64Var(&opts.seed, "seed", 42, "Random seed for sampling and scene generation")
	help := fs.Bool("help", false, "Show help information")

	fs.Usage = func() {
		fmt.Fprintln(usageOut, "Sphere Raytracer")
		fmt.Fprintln(usageOut, "Usage: sphere-raytracer [options] > image.ppm")
		fmt.Fprintln(usageOut)
		fmt.Fprintln(usageOut, "Options:")
		fs.PrintDefaults()
		fmt.Fprintln(usageOut)
		fmt.Fprintln(usageOut, "Available scenes:")
		for _, info := range scene.ListAllScenes() {
			fmt.Fprintf(usageOut, "  %-15s %s\n", info.ID, info.Description)
		}
	}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if *help {
		fs.Usage()
		return opts, flag.ErrHelp
	}
	return opts, nil
}

// createScene builds the named scene and applies the command line overrides
func createScene(opts options) (*scene.Scene, error) {
	s, err := scene.Create(opts.sceneName, opts.seed, geometry.CameraConfig{Width: opts.width})
	if err != nil {
		return nil, err
	}

	s.SamplingConfig.SamplesPerPixel = opts.samples
	s.SamplingConfig.MaxDepth = opts.depth
	if err := s.SamplingConfig.Validate(); err != nil {
		return nil, fmt.Errorf("scene %q: %w", opts.sceneName, err)
	}
	return s, nil
}

// createIntegrator selects the light transport implementation by name
func createIntegrator(name string) (integrator.Integrator, error) {
	switch strings.ToLower(name) {
	case "recursive", "path-tracing":
		return integrator.NewPathTracingIntegrator(), nil
	case "iterative":
		return integrator.NewIterativeIntegrator(), nil
	default:
		return nil, fmt.Errorf("unknown integrator %q", name)
	}
}

// run renders the selected scene and writes it as PPM to stdout or opts.output
func run(ctx context.Context, opts options, stdout io.Writer, logger core.Logger) error {
	s, err := createScene(opts)
	if err != nil {
		return err
	}

	integ, err := createIntegrator(opts.integratorName)
	if err != nil {
		return err
	}

	logger.Printf("Using %s scene with %d spheres...\n", opts.sceneName, s.GetPrimitiveCount())

	config := renderer.RenderConfig{
		TileSize:   renderer.DefaultRenderConfig().TileSize,
		NumWorkers: opts.workers,
		Seed:       opts.seed,
	}
	fb, _, err := renderer.NewRaytracer(s, integ, config, logger).Render(ctx)
	if err != nil {
		return err
	}

	if opts.output == "-" {
		return ppm.Encode(stdout, fb)
	}
	return writeFile(opts.output, fb)
}

// writeFile encodes the image to the named file
func writeFile(filename string, img ppm.Image) (err error) {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); err == nil && closeErr != nil {
			err = fmt.Errorf("closing output file: %w", closeErr)
		}
	}()

	if err := ppm.Encode(file, img); err != nil {
		return fmt.Errorf("writing %s: %w", filename, err)
	}
	return nil
}
