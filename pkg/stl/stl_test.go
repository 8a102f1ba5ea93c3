package stl

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/circleprints/plategen/pkg/geometry"
	"github.com/circleprints/plategen/pkg/mesh"
)

func testModel() *mesh.Model {
	model := mesh.NewModel("test-part")
	model.AddTriangle(geometry.TriangleFromVertices(
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(1, 0, 0),
		geometry.NewVector3(0, 1, 0),
	))
	model.AddTriangle(geometry.TriangleFromVertices(
		geometry.NewVector3(0, 0, 1),
		geometry.NewVector3(0, 1, 1),
		geometry.NewVector3(1, 0, 1),
	))
	return model
}

func TestEncodeLength(t *testing.T) {
	model := testModel()

	var buf bytes.Buffer
	if err := Encode(&buf, model); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	// 80-byte header + 4-byte count + 50 bytes per triangle
	expected := 80 + 4 + 50*model.TriangleCount()
	if buf.Len() != expected {
		t.Errorf("Encoded length failed: expected %d bytes, got %d", expected, buf.Len())
	}
}

func TestEncodeDeterministic(t *testing.T) {
	model := testModel()

	var first, second bytes.Buffer
	if err := Encode(&first, model); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if err := Encode(&second, model); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Error("Encode is not deterministic: two runs produced different bytes")
	}
}

func TestWriteParseRoundTrip(t *testing.T) {
	model := testModel()
	filename := filepath.Join(t.TempDir(), "roundtrip.stl")

	if err := Write(filename, model); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	parsed, err := Parse(filename)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if parsed.Name != model.Name {
		t.Errorf("Name failed: expected %q, got %q", model.Name, parsed.Name)
	}
	if parsed.TriangleCount() != model.TriangleCount() {
		t.Fatalf("TriangleCount failed: expected %d, got %d",
			model.TriangleCount(), parsed.TriangleCount())
	}

	for i, tri := range model.Triangles {
		got := parsed.Triangles[i]
		vertices := [][2]geometry.Vector3{
			{tri.V1, got.V1},
			{tri.V2, got.V2},
			{tri.V3, got.V3},
		}
		for _, pair := range vertices {
			if pair[0].Distance(pair[1]) > 1e-6 {
				t.Errorf("Triangle %d vertex failed: expected %v, got %v", i, pair[0], pair[1])
			}
		}
	}
}

func TestParseASCII(t *testing.T) {
	ascii := `solid ascii-part
facet normal 0 0 1
  outer loop
    vertex 0 0 0
    vertex 1 0 0
    vertex 0 1 0
  endloop
endfacet
endsolid ascii-part
`
	filename := filepath.Join(t.TempDir(), "ascii.stl")
	if err := os.WriteFile(filename, []byte(ascii), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	model, err := Parse(filename)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if model.Name != "ascii-part" {
		t.Errorf("Name failed: expected %q, got %q", "ascii-part", model.Name)
	}
	if model.TriangleCount() != 1 {
		t.Fatalf("TriangleCount failed: expected 1, got %d", model.TriangleCount())
	}

	area := model.Triangles[0].Area()
	if math.Abs(area-0.5) > 1e-10 {
		t.Errorf("Area failed: expected 0.5, got %v", area)
	}
}

func TestParseASCIIRejectsMalformedCoordinates(t *testing.T) {
	ascii := `solid broken
facet normal 0 0 1
  outer loop
    vertex 0 0 0
    vertex 1 0 bogus
    vertex 0 1 0
  endloop
endfacet
endsolid broken
`
	filename := filepath.Join(t.TempDir(), "broken.stl")
	if err := os.WriteFile(filename, []byte(ascii), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	_, err := Parse(filename)
	if err == nil {
		t.Fatal("Parse accepted a malformed vertex coordinate")
	}
	if !strings.Contains(err.Error(), "line 5") {
		t.Errorf("error does not point at the offending line: %v", err)
	}
}
