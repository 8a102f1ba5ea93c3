package main

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/circleprints/plategen/pkg/params"
)

// chdirTemp moves the test into a fresh temporary directory and
// restores the previous working directory on cleanup. Stand-in for
// t.Chdir, which needs Go 1.24.
func chdirTemp(t *testing.T) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(old) })
}

func TestGenerateNoExportProducesNoFiles(t *testing.T) {
	chdirTemp(t)

	p := params.Default()
	p.NoExport = true

	var out bytes.Buffer
	generate(p, &out)

	entries, err := os.ReadDir(".")
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 0 {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("no-export run created files: %v", names)
	}

	for _, want := range []string{
		"Export skipped (--no-export flag set)",
		"Design Parameters:",
		"Plate diameter: 11mm",
		"Build plate fit:",
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("summary missing %q", want)
		}
	}
}

func TestGenerateDefaultFilenames(t *testing.T) {
	if testing.Short() {
		t.Skip("meshing is slow")
	}
	chdirTemp(t)

	p := params.Default()
	p.MeshCells = 48

	var out bytes.Buffer
	generate(p, &out)

	for _, name := range []string{"4mmCircle-11mm.stl", "4mmCircle-11mm.step"} {
		info, err := os.Stat(name)
		if err != nil {
			t.Errorf("missing export %s: %v", name, err)
			continue
		}
		if info.Size() == 0 {
			t.Errorf("export %s is empty", name)
		}
	}

	if !strings.Contains(out.String(), "✓ Exported to 4mmCircle-11mm.stl") {
		t.Error("output missing STL export confirmation")
	}
	if !strings.Contains(out.String(), "✓ Exported to 4mmCircle-11mm.step") {
		t.Error("output missing STEP export confirmation")
	}
}
