package part

import (
	"fmt"

	"github.com/soypat/sdf"
	"github.com/soypat/sdf/render"

	"github.com/circleprints/plategen/pkg/geometry"
	"github.com/circleprints/plategen/pkg/mesh"
)

// Mesh triangulates the solid with the octree renderer at the given
// cell resolution and returns it as a named triangle model.
func Mesh(s sdf.SDF3, cells int, name string) (*mesh.Model, error) {
	triangles, err := render.RenderAll(render.NewOctreeRenderer(s, cells))
	if err != nil {
		return nil, fmt.Errorf("failed to mesh solid: %w", err)
	}

	model := mesh.NewModel(name)
	for _, t := range triangles {
		model.AddTriangle(geometry.TriangleFromVertices(
			geometry.NewVector3(t[0].X, t[0].Y, t[0].Z),
			geometry.NewVector3(t[1].X, t[1].Y, t[1].Z),
			geometry.NewVector3(t[2].X, t[2].Y, t[2].Z),
		))
	}
	return model, nil
}
