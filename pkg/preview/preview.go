// Package preview renders a flat-shaded offscreen image of the meshed
// part, for a quick visual check without a CAD viewer.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	"github.com/circleprints/plategen/pkg/geometry"
	"github.com/circleprints/plategen/pkg/mesh"
)

// Options controls the rendered image
type Options struct {
	Width      int
	Height     int
	Background color.RGBA
}

// DefaultOptions returns the options used by the CLI
func DefaultOptions() Options {
	return Options{
		Width:      800,
		Height:     600,
		Background: color.RGBA{R: 24, G: 24, B: 28, A: 255},
	}
}

// Render rasterizes the model into an image, flat-shaded with a
// single directional light from the camera's upper left.
func Render(model *mesh.Model, opts Options) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	for y := 0; y < opts.Height; y++ {
		for x := 0; x < opts.Width; x++ {
			img.SetRGBA(x, y, opts.Background)
		}
	}

	zbuffer := make([]float64, opts.Width*opts.Height)
	for i := range zbuffer {
		zbuffer[i] = math.MaxFloat64
	}

	camera := NewCamera(model.BoundingBox())
	view := camera.ViewDirection()
	light := geometry.NewVector3(-0.4, -0.5, 0.77).Normalize()

	w := float64(opts.Width)
	h := float64(opts.Height)

	for _, triangle := range model.Triangles {
		normal := triangle.CalculateNormal()

		// Back-face culling.
		if normal.Dot(view) >= 0 {
			continue
		}

		// Lambertian shade over a steel-gray base.
		intensity := math.Max(0.15, normal.Dot(light))
		shade := uint8(60 + intensity*180)
		col := color.RGBA{R: shade, G: shade, B: uint8(math.Min(255, float64(shade)+15)), A: 255}

		x1, y1, z1 := camera.Project(triangle.V1, w, h)
		x2, y2, z2 := camera.Project(triangle.V2, w, h)
		x3, y3, z3 := camera.Project(triangle.V3, w, h)

		fillTriangleWithDepth(img, zbuffer, x1, y1, z1, x2, y2, z2, x3, y3, z3, col)
	}

	return img
}

// WritePNG renders the model and writes it to a PNG file
func WritePNG(filename string, model *mesh.Model, opts Options) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, Render(model, opts)); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}

	return nil
}
