// Package part constructs the plate-and-cylinder solid as signed
// distance field CSG and meshes it into a triangle model.
package part

import (
	"github.com/soypat/sdf"
	form3 "github.com/soypat/sdf/form3/must3"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/circleprints/plategen/pkg/params"
)

// EngraveDepth is the depth of the label recess in the plate bottom,
// in millimetres.
const EngraveDepth = 0.8

// Label sizing relative to the annulus between cylinder and plate
// edge: glyph cap height is fontScale times the radial gap, and the
// text centerline sits at the midpoint radius.
const fontScale = 0.6

// Solid builds the part from resolved parameters. Construction order
// matters: the subtractive steps cut into the union accumulated so
// far. Degenerate inputs (non-positive radii, hole wider than the
// part) panic inside the kernel; there is no validation layer.
func Solid(p params.Resolved) sdf.SDF3 {
	// Base plate, bottom face at z=0. Kernel cylinders are centered
	// on the origin, so every slab is lifted by half its height.
	var plate sdf.SDF3 = form3.Cylinder(p.PlateThickness, p.PlateRadius, 0)
	plate = sdf.Transform3D(plate, sdf.Translate3D(r3.Vec{Z: p.PlateThickness / 2}))

	// Concentric cylinder stacked on the plate.
	var cylinder sdf.SDF3 = form3.Cylinder(p.CylinderHeight, p.CylinderRadius, 0)
	cylinder = sdf.Transform3D(cylinder, sdf.Translate3D(r3.Vec{Z: p.PlateThickness + p.CylinderHeight/2}))
	var solid sdf.SDF3 = sdf.Union3D(plate, cylinder)

	// Through-bore over the full stack height, omitted entirely for
	// a non-positive hole diameter.
	if p.HoleDiameter > 0 {
		var bore sdf.SDF3 = form3.Cylinder(p.TotalHeight(), p.HoleRadius, 0)
		bore = sdf.Transform3D(bore, sdf.Translate3D(r3.Vec{Z: p.TotalHeight() / 2}))
		solid = sdf.Difference3D(solid, bore)
	}

	// Plate-diameter label engraved into the plate bottom, centered
	// on the midpoint radius between cylinder edge and plate edge.
	fontSize := fontScale * (p.PlateRadius - p.CylinderRadius)
	offsetY := (p.CylinderRadius + p.PlateRadius) / 2

	label := Text(p.Label(), fontSize)
	label = sdf.Transform2D(label, sdf.Translate2D(r2.Vec{Y: offsetY}))
	recess := sdf.Extrude3D(label, EngraveDepth)
	recess = sdf.Transform3D(recess, sdf.Translate3D(r3.Vec{Z: EngraveDepth / 2}))

	return sdf.Difference3D(solid, recess)
}
