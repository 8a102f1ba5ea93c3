// Package params resolves the command-line inputs of the generator
// into the derived values the rest of the pipeline consumes.
package params

import "fmt"

// Defaults for every input, in millimetres.
const (
	DefaultPlateDiameter    = 11.0
	DefaultCylinderDiameter = 4.0
	DefaultCylinderHeight   = 10.0
	DefaultPlateThickness   = 1.0
	DefaultHoleDiameter     = 1.0
	DefaultMeshCells        = 200
)

// Build plate of the target printer, in millimetres.
const (
	BuildPlateWidth = 256.0
	BuildPlateDepth = 256.0
)

// Params holds the raw user inputs. Dimensions are millimetres.
// Values are not validated: geometrically inconsistent combinations
// (hole wider than cylinder, cylinder wider than plate) are passed
// through to the kernel, which fails fatally on degenerate input.
type Params struct {
	PlateDiameter    float64
	CylinderDiameter float64
	CylinderHeight   float64
	PlateThickness   float64
	HoleDiameter     float64
	NoExport         bool
	Preview          bool
	MeshCells        int
}

// Default returns the parameter set used when no flags are given
func Default() Params {
	return Params{
		PlateDiameter:    DefaultPlateDiameter,
		CylinderDiameter: DefaultCylinderDiameter,
		CylinderHeight:   DefaultCylinderHeight,
		PlateThickness:   DefaultPlateThickness,
		HoleDiameter:     DefaultHoleDiameter,
		MeshCells:        DefaultMeshCells,
	}
}

// Resolved carries the inputs together with the derived radii
type Resolved struct {
	Params
	PlateRadius    float64
	CylinderRadius float64
	HoleRadius     float64
}

// Resolve derives the radii from the diameters
func (p Params) Resolve() Resolved {
	return Resolved{
		Params:         p,
		PlateRadius:    p.PlateDiameter / 2.0,
		CylinderRadius: p.CylinderDiameter / 2.0,
		HoleRadius:     p.HoleDiameter / 2.0,
	}
}

// TotalHeight returns the height of the solid stack: plate thickness
// plus cylinder height. The engraving is a recess and adds nothing.
func (r Resolved) TotalHeight() float64 {
	return r.PlateThickness + r.CylinderHeight
}

// Label returns the text engraved into the plate bottom: the plate
// diameter, formatted as an integer when it is a whole number and to
// one decimal place otherwise.
func (r Resolved) Label() string {
	if r.PlateDiameter == float64(int(r.PlateDiameter)) {
		return fmt.Sprintf("%.0f", r.PlateDiameter)
	}
	return fmt.Sprintf("%.1f", r.PlateDiameter)
}

// FilenameStem returns the base name of the exported files
func (r Resolved) FilenameStem() string {
	return fmt.Sprintf("%dmmCircle-%dmm", int(r.CylinderDiameter), int(r.PlateDiameter))
}

// FitsBuildPlate reports whether the plate footprint fits on a bed of
// the given dimensions
func (r Resolved) FitsBuildPlate(width, depth float64) bool {
	return r.PlateDiameter <= width && r.PlateDiameter <= depth
}
