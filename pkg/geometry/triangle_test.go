package geometry

import (
	"math"
	"testing"
)

func TestTriangleArea(t *testing.T) {
	// Create a right triangle with sides 3, 4, 5
	tri := NewTriangle(
		NewVector3(0, 0, 1),
		NewVector3(0, 0, 0),
		NewVector3(3, 0, 0),
		NewVector3(0, 4, 0),
	)

	area := tri.Area()
	expected := 6.0 // (3 * 4) / 2 = 6

	if math.Abs(area-expected) > 1e-10 {
		t.Errorf("Area failed: expected %v, got %v", expected, area)
	}
}

func TestTriangleEdgeLengths(t *testing.T) {
	tri := NewTriangle(
		NewVector3(0, 0, 1),
		NewVector3(0, 0, 0),
		NewVector3(3, 0, 0),
		NewVector3(0, 4, 0),
	)

	lengths := tri.EdgeLengths()

	// Expected lengths: 3, 5, 4 (Pythagorean triple)
	if math.Abs(lengths[0]-3.0) > 1e-10 {
		t.Errorf("Edge 0 length failed: expected 3.0, got %v", lengths[0])
	}
	if math.Abs(lengths[1]-5.0) > 1e-10 {
		t.Errorf("Edge 1 length failed: expected 5.0, got %v", lengths[1])
	}
	if math.Abs(lengths[2]-4.0) > 1e-10 {
		t.Errorf("Edge 2 length failed: expected 4.0, got %v", lengths[2])
	}
}

func TestTrianglePerimeter(t *testing.T) {
	tri := NewTriangle(
		NewVector3(0, 0, 1),
		NewVector3(0, 0, 0),
		NewVector3(3, 0, 0),
		NewVector3(0, 4, 0),
	)

	perimeter := tri.Perimeter()
	expected := 12.0 // 3 + 4 + 5 = 12

	if math.Abs(perimeter-expected) > 1e-10 {
		t.Errorf("Perimeter failed: expected %v, got %v", expected, perimeter)
	}
}

func TestTriangleCenter(t *testing.T) {
	tri := NewTriangle(
		NewVector3(0, 0, 1),
		NewVector3(0, 0, 0),
		NewVector3(3, 0, 0),
		NewVector3(0, 3, 0),
	)

	center := tri.Center()
	expected := NewVector3(1, 1, 0)

	if center != expected {
		t.Errorf("Center failed: expected %v, got %v", expected, center)
	}
}

func TestTriangleFromVertices(t *testing.T) {
	tri := TriangleFromVertices(
		NewVector3(0, 0, 0),
		NewVector3(1, 0, 0),
		NewVector3(0, 1, 0),
	)

	expected := NewVector3(0, 0, 1)
	if tri.Normal != expected {
		t.Errorf("Normal failed: expected %v, got %v", expected, tri.Normal)
	}
}

func TestTriangleSignedVolume(t *testing.T) {
	// Unit cube built from 12 consistently wound triangles
	// must enclose exactly one cubic unit.
	cube := unitCubeTriangles()

	volume := 0.0
	for _, tri := range cube {
		volume += tri.SignedVolume()
	}

	if math.Abs(volume-1.0) > 1e-10 {
		t.Errorf("SignedVolume failed: expected 1.0, got %v", volume)
	}
}

// unitCubeTriangles returns the unit cube [0,1]^3 as a closed surface
// with outward-facing counter-clockwise winding.
func unitCubeTriangles() []Triangle {
	p := [8]Vector3{
		NewVector3(0, 0, 0), NewVector3(1, 0, 0),
		NewVector3(1, 1, 0), NewVector3(0, 1, 0),
		NewVector3(0, 0, 1), NewVector3(1, 0, 1),
		NewVector3(1, 1, 1), NewVector3(0, 1, 1),
	}
	quads := [6][4]int{
		{3, 2, 1, 0}, // bottom, normal -z
		{4, 5, 6, 7}, // top, normal +z
		{0, 1, 5, 4}, // front, normal -y
		{2, 3, 7, 6}, // back, normal +y
		{3, 0, 4, 7}, // left, normal -x
		{1, 2, 6, 5}, // right, normal +x
	}

	var tris []Triangle
	for _, q := range quads {
		tris = append(tris,
			TriangleFromVertices(p[q[0]], p[q[1]], p[q[2]]),
			TriangleFromVertices(p[q[0]], p[q[2]], p[q[3]]),
		)
	}
	return tris
}
