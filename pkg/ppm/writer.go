// Package ppm writes images in the plain-text PPM (P3) format.
package ppm

import (
	"bufio"
	"fmt"
	"io"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// MaxValue is the largest channel value written to the header
const MaxValue = 255

// Image is a grid of linear colors with row 0 at the top
type Image interface {
	Size() (width, height int)
	At(x, y int) core.Vec3
}

// Writer emits a P3 header followed by one "R G B" line per pixel
type Writer struct {
	w *bufio.Writer
}

// NewWriter creates a buffered PPM writer. Call Flush when done.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// WriteHeader writes the magic number, the dimensions and the maximum channel value
func (pw *Writer) WriteHeader(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("ppm: invalid image size %dx%d", width, height)
	}
	_, err := fmt.Fprintf(pw.w, "P3\n%d %d\n%d\n", width, height, MaxValue)
	return err
}

// WriteColor writes one pixel. Channels are clamped to [0, 0.999] and scaled by 256.
func (pw *Writer) WriteColor(color core.Vec3) error {
	_, err := fmt.Fprintf(pw.w, "%d %d %d\n", Quantize(color.X), Quantize(color.Y), Quantize(color.Z))
	return err
}

// Flush writes any buffered data to the underlying writer
func (pw *Writer) Flush() error {
	return pw.w.Flush()
}

// Quantize maps a linear channel value to an integer in [0, 255]
func Quantize(c float32) int {
	return int(256 * min(max(c, 0), 0.999))
}

// Encode writes img to w as a complete P3 file, top row first
func Encode(w io.Writer, img Image) error {
	width, height := img.Size()

	pw := NewWriter(w)
	if err := pw.WriteHeader(width, height); err != nil {
		return err
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if err := pw.WriteColor(img.At(x, y)); err != nil {
				return fmt.Errorf("ppm: writing pixel (%d, %d): %w", x, y, err)
			}
		}
	}

	return pw.Flush()
}
