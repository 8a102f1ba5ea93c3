// Package export serializes the meshed part to its output files.
package export

import (
	"github.com/circleprints/plategen/pkg/mesh"
	"github.com/circleprints/plategen/pkg/step"
	"github.com/circleprints/plategen/pkg/stl"
)

// Result records the outcome of one export run. Each format is
// attempted independently: a failed STL export does not abort the
// STEP export, and neither aborts the process.
type Result struct {
	STLPath  string
	STLErr   error
	STEPPath string
	STEPErr  error
}

// Export writes <stem>.stl and <stem>.step and reports both
// outcomes. The stem may carry a directory prefix.
func Export(model *mesh.Model, stem string) Result {
	result := Result{
		STLPath:  stem + ".stl",
		STEPPath: stem + ".step",
	}

	result.STLErr = stl.Write(result.STLPath, model)
	result.STEPErr = step.Write(result.STEPPath, model)

	return result
}
