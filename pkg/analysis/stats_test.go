package analysis

import (
	"math"
	"testing"

	"github.com/philipparndt/golines/pkg/geometry"
	"github.com/philipparndt/golines/pkg/lines"
)

func TestAnalyzeStore(t *testing.T) {
	store := lines.NewStore([]lines.Line{
		{Points: []geometry.Vector3{{X: 0, Y: 0, Z: 0}, {X: 3, Y: 4, Z: 0}}},
		{Points: []geometry.Vector3{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 2, Y: 0, Z: 0}}},
		{}, // dead line
	})

	stats := AnalyzeStore(store)

	if stats.LineCount != 3 || stats.AliveLines != 2 || stats.DeadLines != 1 {
		t.Errorf("line counts wrong: %+v", stats)
	}
	if stats.PointCount != 5 {
		t.Errorf("PointCount = %d, expected 5", stats.PointCount)
	}
	if stats.SegmentCount != 3 {
		t.Errorf("SegmentCount = %d, expected 3", stats.SegmentCount)
	}
	if math.Abs(stats.TotalLength-7.0) > 1e-10 {
		t.Errorf("TotalLength = %v, expected 7", stats.TotalLength)
	}
	if math.Abs(stats.MinLineLength-2.0) > 1e-10 || math.Abs(stats.MaxLineLength-5.0) > 1e-10 {
		t.Errorf("line length range wrong: min=%v max=%v", stats.MinLineLength, stats.MaxLineLength)
	}
	if math.Abs(stats.AvgLineLength-3.5) > 1e-10 {
		t.Errorf("AvgLineLength = %v, expected 3.5", stats.AvgLineLength)
	}
	if stats.Dimensions != geometry.NewVector3(3, 4, 0) {
		t.Errorf("Dimensions = %v", stats.Dimensions)
	}
}

func TestAnalyzeEmptyStore(t *testing.T) {
	stats := AnalyzeStore(lines.NewStore(nil))

	if stats.AliveLines != 0 || stats.SegmentCount != 0 {
		t.Errorf("empty store stats wrong: %+v", stats)
	}
	if stats.MinLineLength != 0 {
		t.Errorf("MinLineLength must be 0 for empty store, got %v", stats.MinLineLength)
	}
}
