package analysis

import (
	"fmt"
	"math"

	"github.com/philipparndt/golines/pkg/geometry"
	"github.com/philipparndt/golines/pkg/lines"
)

// StoreStats contains aggregate measurements of a line store
type StoreStats struct {
	BoundingBox   geometry.BoundingBox
	Dimensions    geometry.Vector3
	LineCount     int // slots, dead lines included
	AliveLines    int
	DeadLines     int
	PointCount    int
	SegmentCount  int
	TotalLength   float64
	MinLineLength float64
	MaxLineLength float64
	AvgLineLength float64
}

// AnalyzeStore measures the alive lines of a store
func AnalyzeStore(store *lines.Store) *StoreStats {
	stats := &StoreStats{
		BoundingBox:   geometry.NewBoundingBox(),
		LineCount:     store.LineCount(),
		MinLineLength: math.MaxFloat64,
	}

	for i := range store.Lines {
		line := &store.Lines[i]
		if !line.Alive() {
			stats.DeadLines++
			continue
		}
		stats.AliveLines++
		stats.PointCount += len(line.Points)
		stats.SegmentCount += line.SegmentCount()

		length := 0.0
		for p := 0; p+1 < len(line.Points); p++ {
			length += line.Points[p].Distance(line.Points[p+1])
			stats.BoundingBox.Extend(line.Points[p])
		}
		stats.BoundingBox.Extend(line.Points[len(line.Points)-1])

		stats.TotalLength += length
		if length < stats.MinLineLength {
			stats.MinLineLength = length
		}
		if length > stats.MaxLineLength {
			stats.MaxLineLength = length
		}
	}

	if stats.AliveLines > 0 {
		stats.AvgLineLength = stats.TotalLength / float64(stats.AliveLines)
		stats.Dimensions = stats.BoundingBox.Size()
	} else {
		stats.MinLineLength = 0
	}

	return stats
}

// FormatVector formats a 3D vector for display
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f)", v.X, v.Y, v.Z)
}
