package stl

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/circleprints/plategen/pkg/mesh"
)

// Encode writes the model to w in binary STL format. The 80-byte
// header carries the model name only; no timestamps or counters are
// embedded, so identical models encode to identical bytes.
func Encode(w io.Writer, model *mesh.Model) error {
	var header [80]byte
	copy(header[:], model.Name)
	if _, err := w.Write(header[:]); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	if err := binary.Write(w, binary.LittleEndian, uint32(model.TriangleCount())); err != nil {
		return fmt.Errorf("failed to write triangle count: %w", err)
	}

	for i, triangle := range model.Triangles {
		record := [12]float32{
			float32(triangle.Normal.X), float32(triangle.Normal.Y), float32(triangle.Normal.Z),
			float32(triangle.V1.X), float32(triangle.V1.Y), float32(triangle.V1.Z),
			float32(triangle.V2.X), float32(triangle.V2.Y), float32(triangle.V2.Z),
			float32(triangle.V3.X), float32(triangle.V3.Y), float32(triangle.V3.Z),
		}
		if err := binary.Write(w, binary.LittleEndian, record); err != nil {
			return fmt.Errorf("failed to write triangle %d: %w", i, err)
		}
		// Attribute byte count, unused but required by the format
		if err := binary.Write(w, binary.LittleEndian, uint16(0)); err != nil {
			return fmt.Errorf("failed to write attribute for triangle %d: %w", i, err)
		}
	}

	return nil
}

// Write serializes the model to a binary STL file
func Write(filename string, model *mesh.Model) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	if err := Encode(writer, model); err != nil {
		return err
	}
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush file: %w", err)
	}

	return nil
}
