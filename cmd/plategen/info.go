package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/circleprints/plategen/pkg/analysis"
	"github.com/circleprints/plategen/pkg/stl"
)

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Display measurements of an exported STL file",
	Long:  "Show dimensions, triangle count, surface area, enclosed volume, and edge statistics of a generated (or any) STL file.",
	Args:  cobra.ExactArgs(1),
	Run:   runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) {
	filename := args[0]

	model, err := stl.Parse(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing STL file: %v\n", err)
		os.Exit(1)
	}

	result := analysis.AnalyzeModel(model)

	fmt.Println("STL File Information")
	fmt.Println("====================")
	if model.Name != "" {
		fmt.Printf("Name: %s\n", model.Name)
	}
	fmt.Printf("File: %s\n\n", filename)

	fmt.Println("Model Statistics:")
	fmt.Printf("  Triangles: %d\n", result.TriangleCount)
	fmt.Printf("  Edges: %d\n", result.EdgeCount)
	fmt.Printf("  Surface Area: %s\n\n", analysis.FormatMeasurement(result.SurfaceArea, "mm²"))

	fmt.Println("Bounding Box:")
	fmt.Printf("  Min: %s\n", analysis.FormatVector(result.BoundingBox.Min))
	fmt.Printf("  Max: %s\n", analysis.FormatVector(result.BoundingBox.Max))
	fmt.Printf("  Center: %s\n\n", analysis.FormatVector(result.BoundingBox.Center()))

	fmt.Println("Dimensions:")
	fmt.Printf("  Width (X): %s\n", analysis.FormatMeasurement(result.Dimensions.X, "mm"))
	fmt.Printf("  Depth (Y): %s\n", analysis.FormatMeasurement(result.Dimensions.Y, "mm"))
	fmt.Printf("  Height (Z): %s\n", analysis.FormatMeasurement(result.Dimensions.Z, "mm"))
	fmt.Printf("  Diagonal: %s\n", analysis.FormatMeasurement(result.BoundingBox.Diagonal(), "mm"))
	fmt.Printf("  Volume: %s\n\n", analysis.FormatMeasurement(result.Volume, "mm³"))

	fmt.Println("Edge Lengths:")
	fmt.Printf("  Minimum: %s\n", analysis.FormatMeasurement(result.MinEdgeLength, "mm"))
	fmt.Printf("  Maximum: %s\n", analysis.FormatMeasurement(result.MaxEdgeLength, "mm"))
	fmt.Printf("  Average: %s\n", analysis.FormatMeasurement(result.AvgEdgeLength, "mm"))
}
