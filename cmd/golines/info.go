package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/golines/pkg/analysis"
	"github.com/philipparndt/golines/pkg/scene"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info [scene-file]",
	Short: "Display statistics for a scene without opening a window",
	Long:  "Generate the scene and show line, point and segment counts, bounding box and length statistics.",
	Args:  cobra.ExactArgs(1),
	Run:   runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) {
	filename := args[0]

	s, err := scene.Load(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading scene: %v\n", err)
		os.Exit(1)
	}

	store := scene.Generate(s)
	stats := analysis.AnalyzeStore(store)

	fmt.Println("Scene Information")
	fmt.Println("=================")
	fmt.Printf("Name: %s\n", s.Name)
	fmt.Printf("File: %s\n\n", filename)

	fmt.Println("Generation:")
	fmt.Printf("  Seed: %d\n", s.Seed)
	fmt.Printf("  Points per line: %d-%d\n", s.Points.Min, s.Points.Max)
	fmt.Printf("  Bounds size: %.1f\n\n", s.Bounds.Size)

	fmt.Println("Geometry:")
	fmt.Printf("  Lines: %d\n", stats.AliveLines)
	fmt.Printf("  Points: %d\n", stats.PointCount)
	fmt.Printf("  Segments: %d\n\n", stats.SegmentCount)

	fmt.Println("Bounding Box:")
	fmt.Printf("  Min: %s\n", analysis.FormatVector(stats.BoundingBox.Min))
	fmt.Printf("  Max: %s\n", analysis.FormatVector(stats.BoundingBox.Max))
	fmt.Printf("  Center: %s\n\n", analysis.FormatVector(stats.BoundingBox.Center()))

	fmt.Println("Line Lengths:")
	fmt.Printf("  Total: %.3f units\n", stats.TotalLength)
	fmt.Printf("  Minimum: %.3f units\n", stats.MinLineLength)
	fmt.Printf("  Maximum: %.3f units\n", stats.MaxLineLength)
	fmt.Printf("  Average: %.3f units\n", stats.AvgLineLength)
}
