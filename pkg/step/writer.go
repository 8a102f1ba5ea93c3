// Package step serializes a triangulated model to an ISO 10303-21
// (STEP AP214) file as a faceted boundary representation: one planar
// FACE with a POLY_LOOP bound per facet, collected into a closed
// shell. Coordinates are millimetres.
package step

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/circleprints/plategen/pkg/geometry"
	"github.com/circleprints/plategen/pkg/mesh"
)

// The FILE_NAME timestamp is pinned so identical models serialize to
// identical bytes.
const fixedTimestamp = "1970-01-01T00:00:00"

// Write serializes the model to a STEP file
func Write(filename string, model *mesh.Model) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	if err := Encode(writer, model, filepath.Base(filename)); err != nil {
		return err
	}
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush file: %w", err)
	}

	return nil
}

// Encode writes the model to w in STEP Part 21 format. name is the
// value recorded in the FILE_NAME header entity.
func Encode(w io.Writer, model *mesh.Model, name string) error {
	e := &encoder{w: w}

	e.printf("ISO-10303-21;\n")
	e.printf("HEADER;\n")
	e.printf("FILE_DESCRIPTION(('faceted brep of %s'),'2;1');\n", model.Name)
	e.printf("FILE_NAME('%s','%s',(''),(''),'plategen','plategen','');\n", name, fixedTimestamp)
	e.printf("FILE_SCHEMA(('AUTOMOTIVE_DESIGN { 1 0 10303 214 1 1 1 1 }'));\n")
	e.printf("ENDSEC;\n")
	e.printf("DATA;\n")

	e.entity("APPLICATION_CONTEXT('automotive design')")                                                    // #1
	e.entity("APPLICATION_PROTOCOL_DEFINITION('draft international standard','automotive_design',1998,#1)") // #2
	e.entity("PRODUCT_CONTEXT('',#1,'mechanical')")                                                         // #3
	e.entity(fmt.Sprintf("PRODUCT('%s','%s','',(#3))", model.Name, model.Name))                             // #4
	e.entity("PRODUCT_DEFINITION_FORMATION('','',#4)")                                                      // #5
	e.entity("PRODUCT_DEFINITION_CONTEXT('part definition',#1,'design')")                                   // #6
	e.entity("PRODUCT_DEFINITION('design','',#5,#6)")                                                       // #7
	e.entity("PRODUCT_DEFINITION_SHAPE('','',#7)")                                                          // #8
	e.entity("(LENGTH_UNIT()NAMED_UNIT(*)SI_UNIT(.MILLI.,.METRE.))")                                        // #9
	e.entity("(NAMED_UNIT(*)PLANE_ANGLE_UNIT()SI_UNIT($,.RADIAN.))")                                        // #10
	e.entity("(NAMED_UNIT(*)SI_UNIT($,.STERADIAN.)SOLID_ANGLE_UNIT())")                                     // #11
	e.entity("UNCERTAINTY_MEASURE_WITH_UNIT(LENGTH_MEASURE(1.E-6),#9,'distance_accuracy_value','')")        // #12
	context := e.entity("(GEOMETRIC_REPRESENTATION_CONTEXT(3)" +
		"GLOBAL_UNCERTAINTY_ASSIGNED_CONTEXT((#12))" +
		"GLOBAL_UNIT_ASSIGNED_CONTEXT((#9,#10,#11))" +
		"REPRESENTATION_CONTEXT('',''))") // #13

	// Vertices are deduplicated so shared facet corners reference a
	// single CARTESIAN_POINT.
	pointIDs := make(map[geometry.Vector3]int)
	pointID := func(v geometry.Vector3) int {
		if id, ok := pointIDs[v]; ok {
			return id
		}
		id := e.entity(fmt.Sprintf("CARTESIAN_POINT('',(%s,%s,%s))",
			formatReal(v.X), formatReal(v.Y), formatReal(v.Z)))
		pointIDs[v] = id
		return id
	}

	faces := make([]int, 0, model.TriangleCount())
	for _, triangle := range model.Triangles {
		p1 := pointID(triangle.V1)
		p2 := pointID(triangle.V2)
		p3 := pointID(triangle.V3)

		loop := e.entity(fmt.Sprintf("POLY_LOOP('',(#%d,#%d,#%d))", p1, p2, p3))
		bound := e.entity(fmt.Sprintf("FACE_OUTER_BOUND('',#%d,.T.)", loop))
		faces = append(faces, e.entity(fmt.Sprintf("FACE('',(#%d))", bound)))
	}

	shell := e.entity("CLOSED_SHELL('',(" + refList(faces) + "))")
	brep := e.entity(fmt.Sprintf("FACETED_BREP('',#%d)", shell))
	rep := e.entity(fmt.Sprintf("FACETED_BREP_SHAPE_REPRESENTATION('%s',(#%d),#%d)",
		model.Name, brep, context))
	e.entity(fmt.Sprintf("SHAPE_DEFINITION_REPRESENTATION(#8,#%d)", rep))

	e.printf("ENDSEC;\n")
	e.printf("END-ISO-10303-21;\n")

	return e.err
}

// encoder numbers entity instances sequentially and tracks the first
// write error instead of checking every line.
type encoder struct {
	w    io.Writer
	next int
	err  error
}

func (e *encoder) printf(format string, args ...interface{}) {
	if e.err != nil {
		return
	}
	if _, err := fmt.Fprintf(e.w, format, args...); err != nil {
		e.err = fmt.Errorf("failed to write STEP data: %w", err)
	}
}

func (e *encoder) entity(body string) int {
	e.next++
	e.printf("#%d=%s;\n", e.next, body)
	return e.next
}

// formatReal renders a coordinate as a STEP real, which must contain
// a decimal point.
func formatReal(v float64) string {
	return fmt.Sprintf("%.6f", v)
}

func refList(ids []int) string {
	buf := make([]byte, 0, len(ids)*6)
	for i, id := range ids {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, fmt.Sprintf("#%d", id)...)
	}
	return string(buf)
}
