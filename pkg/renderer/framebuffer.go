package renderer

import (
	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// Framebuffer holds the averaged linear color of every pixel in row-major
// order, row 0 being the top of the image.
type Framebuffer struct {
	width, height int
	pixels        []core.Vec3
}

// NewFramebuffer creates a black framebuffer
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		width:  width,
		height: height,
		pixels: make([]core.Vec3, width*height),
	}
}

// Size returns the framebuffer dimensions
func (fb *Framebuffer) Size() (width, height int) {
	return fb.width, fb.height
}

// At returns the color of pixel (x, y), y counted from the top
func (fb *Framebuffer) At(x, y int) core.Vec3 {
	return fb.pixels[y*fb.width+x]
}

// Set stores the color of pixel (x, y). Concurrent calls are safe as long as
// they target different pixels.
func (fb *Framebuffer) Set(x, y int, color core.Vec3) {
	fb.pixels[y*fb.width+x] = color
}
