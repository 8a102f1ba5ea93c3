package mesh

import (
	"math"

	"github.com/circleprints/plategen/pkg/geometry"
)

// Model is a triangle-soup representation of a solid, as produced by
// meshing the part or by parsing an exported STL file.
type Model struct {
	Name      string
	Triangles []geometry.Triangle
}

// NewModel creates a new, empty model
func NewModel(name string) *Model {
	return &Model{
		Name:      name,
		Triangles: make([]geometry.Triangle, 0),
	}
}

// AddTriangle adds a triangle to the model
func (m *Model) AddTriangle(triangle geometry.Triangle) {
	m.Triangles = append(m.Triangles, triangle)
}

// TriangleCount returns the number of triangles in the model
func (m *Model) TriangleCount() int {
	return len(m.Triangles)
}

// BoundingBox calculates the bounding box of the entire model
func (m *Model) BoundingBox() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, triangle := range m.Triangles {
		bbox.Extend(triangle.V1)
		bbox.Extend(triangle.V2)
		bbox.Extend(triangle.V3)
	}
	return bbox
}

// SurfaceArea calculates the total surface area of the model
func (m *Model) SurfaceArea() float64 {
	totalArea := 0.0
	for _, triangle := range m.Triangles {
		totalArea += triangle.Area()
	}
	return totalArea
}

// Volume calculates the enclosed volume of the model by summing the
// signed volumes of the tetrahedra spanned by each facet and the
// origin. Only meaningful for closed, consistently wound surfaces.
func (m *Model) Volume() float64 {
	volume := 0.0
	for _, triangle := range m.Triangles {
		volume += triangle.SignedVolume()
	}
	return math.Abs(volume)
}
