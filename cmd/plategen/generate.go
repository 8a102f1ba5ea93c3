package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/circleprints/plategen/pkg/analysis"
	"github.com/circleprints/plategen/pkg/export"
	"github.com/circleprints/plategen/pkg/mesh"
	"github.com/circleprints/plategen/pkg/params"
	"github.com/circleprints/plategen/pkg/part"
	"github.com/circleprints/plategen/pkg/preview"
)

var inputs = params.Default()

func init() {
	flags := rootCmd.Flags()
	flags.Float64VarP(&inputs.PlateDiameter, "plate-diameter", "p", params.DefaultPlateDiameter,
		"Diameter of the circular base plate in mm")
	flags.Float64VarP(&inputs.CylinderDiameter, "cylinder-diameter", "c", params.DefaultCylinderDiameter,
		"Diameter of the concentric cylinder in mm")
	flags.Float64Var(&inputs.CylinderHeight, "cylinder-height", params.DefaultCylinderHeight,
		"Height of the cylinder in mm")
	flags.Float64Var(&inputs.PlateThickness, "plate-thickness", params.DefaultPlateThickness,
		"Thickness of the base plate in mm")
	flags.Float64Var(&inputs.HoleDiameter, "hole-diameter", params.DefaultHoleDiameter,
		"Diameter of the hole through the cylinder in mm (0 for solid cylinder)")
	flags.BoolVar(&inputs.NoExport, "no-export", false,
		"Skip exporting STL and STEP files")
	flags.BoolVar(&inputs.Preview, "preview", false,
		"Render an offscreen PNG preview of the part")
	flags.IntVar(&inputs.MeshCells, "mesh-cells", params.DefaultMeshCells,
		"Octree cell resolution used when meshing the solid")
}

func runGenerate(cmd *cobra.Command, args []string) {
	generate(inputs, cmd.OutOrStdout())
}

// generate runs the full pipeline: resolve, build, mesh if anything
// consumes the mesh, export unless skipped, then report.
func generate(p params.Params, out io.Writer) {
	resolved := p.Resolve()

	// Construction errors are fatal by design: degenerate parameters
	// panic inside the geometry kernel and terminate the process.
	solid := part.Solid(resolved)

	// Meshing is only needed when something consumes the mesh.
	var model *mesh.Model
	if !resolved.NoExport || resolved.Preview {
		var err error
		model, err = part.Mesh(solid, resolved.MeshCells, resolved.FilenameStem())
		if err != nil {
			panic(err)
		}
	}

	if resolved.NoExport {
		fmt.Fprintln(out, "Export skipped (--no-export flag set)")
	} else {
		result := export.Export(model, resolved.FilenameStem())
		if result.STLErr != nil {
			fmt.Fprintf(out, "STL export error: %v\n", result.STLErr)
		} else {
			fmt.Fprintf(out, "✓ Exported to %s\n", result.STLPath)
		}
		if result.STEPErr != nil {
			fmt.Fprintf(out, "STEP export error: %v\n", result.STEPErr)
		} else {
			fmt.Fprintf(out, "✓ Exported to %s\n", result.STEPPath)
		}
	}

	if resolved.Preview {
		filename := resolved.FilenameStem() + ".png"
		if err := preview.WritePNG(filename, model, preview.DefaultOptions()); err != nil {
			fmt.Fprintf(out, "Preview error: %v\n", err)
		} else {
			fmt.Fprintf(out, "✓ Preview written to %s\n", filename)
		}
	}

	printSummary(out, resolved, model)
}

func printSummary(out io.Writer, r params.Resolved, model *mesh.Model) {
	fmt.Fprintln(out, "\nDesign Parameters:")
	fmt.Fprintf(out, "  Plate diameter: %gmm\n", r.PlateDiameter)
	fmt.Fprintf(out, "  Plate thickness: %gmm\n", r.PlateThickness)
	fmt.Fprintf(out, "  Cylinder diameter: %gmm\n", r.CylinderDiameter)
	fmt.Fprintf(out, "  Cylinder height: %gmm\n", r.CylinderHeight)
	if r.HoleDiameter == 0 {
		fmt.Fprintf(out, "  Hole diameter: %gmm (solid)\n", r.HoleDiameter)
	} else {
		fmt.Fprintf(out, "  Hole diameter: %gmm\n", r.HoleDiameter)
	}
	fmt.Fprintf(out, "  Engraved text depth: %gmm (bottom of plate)\n", part.EngraveDepth)
	fmt.Fprintf(out, "  Total height: %gmm\n", r.TotalHeight()+part.EngraveDepth)

	if model != nil {
		result := analysis.AnalyzeModel(model)
		fmt.Fprintln(out, "\nMesh:")
		fmt.Fprintf(out, "  Triangles: %d\n", result.TriangleCount)
		fmt.Fprintf(out, "  Dimensions: %s\n", analysis.FormatVector(result.Dimensions))
		fmt.Fprintf(out, "  Surface area: %s\n", analysis.FormatMeasurement(result.SurfaceArea, "mm²"))
		fmt.Fprintf(out, "  Volume: %s\n", analysis.FormatMeasurement(result.Volume, "mm³"))
	}

	fmt.Fprintln(out, "\nFDM Printability:")
	fmt.Fprintf(out, "  - Engraved text '%s' (plate diameter) on plate bottom, off-center\n", r.Label())
	if r.FitsBuildPlate(params.BuildPlateWidth, params.BuildPlateDepth) {
		fmt.Fprintf(out, "Build plate fit: ✓ Fits within %gx%gmm\n", params.BuildPlateWidth, params.BuildPlateDepth)
	} else {
		fmt.Fprintf(out, "Build plate fit: ✗ Exceeds %gx%gmm\n", params.BuildPlateWidth, params.BuildPlateDepth)
	}
}
