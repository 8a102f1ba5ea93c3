package preview

import (
	"image"
	"image/color"
	"math"
)

// fillTriangleWithDepth rasterizes a projected triangle into img with
// z-buffer testing. Vertices are screen coordinates plus view depth.
func fillTriangleWithDepth(img *image.RGBA, zbuffer []float64, x1, y1, z1, x2, y2, z2, x3, y3, z3 float64, col color.RGBA) {
	bounds := img.Bounds()
	width := bounds.Max.X

	minX := int(math.Max(0, math.Floor(math.Min(x1, math.Min(x2, x3)))))
	maxX := int(math.Min(float64(bounds.Max.X-1), math.Ceil(math.Max(x1, math.Max(x2, x3)))))
	minY := int(math.Max(0, math.Floor(math.Min(y1, math.Min(y2, y3)))))
	maxY := int(math.Min(float64(bounds.Max.Y-1), math.Ceil(math.Max(y1, math.Max(y2, y3)))))
	if minX > maxX || minY > maxY {
		return
	}

	area := (x2-x1)*(y3-y1) - (x3-x1)*(y2-y1)
	if area == 0 {
		return // degenerate on screen
	}

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			px := float64(x) + 0.5
			py := float64(y) + 0.5

			// Barycentric weights of the pixel center.
			w1 := ((x2-px)*(y3-py) - (x3-px)*(y2-py)) / area
			w2 := ((x3-px)*(y1-py) - (x1-px)*(y3-py)) / area
			w3 := 1 - w1 - w2
			if w1 < 0 || w2 < 0 || w3 < 0 {
				continue
			}

			depth := w1*z1 + w2*z2 + w3*z3
			idx := y*width + x
			if depth >= zbuffer[idx] {
				continue
			}
			zbuffer[idx] = depth
			img.SetRGBA(x, y, col)
		}
	}
}
