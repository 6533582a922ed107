package lines

import (
	"fmt"

	"github.com/philipparndt/golines/pkg/geometry"
)

// Color is an RGB triple with components in [0, 1]
type Color [3]float32

// Line is an open polyline with a stable index in the store.
// A line is alive while it has at least 2 points; deleting a line
// empties its point slice but keeps its slot so other indices stay valid.
type Line struct {
	Points    []geometry.Vector3
	BaseColor Color
}

// Alive reports whether the line still contributes segments
func (l *Line) Alive() bool {
	return len(l.Points) >= 2
}

// SegmentCount returns the number of segments the line contributes
func (l *Line) SegmentCount() int {
	if !l.Alive() {
		return 0
	}
	return len(l.Points) - 1
}

// Store owns the authoritative per-line point sequences.
// It is the single source of truth from which render buffers are rebuilt.
type Store struct {
	Lines []Line
}

// NewStore creates a store from pre-built lines
func NewStore(lines []Line) *Store {
	return &Store{Lines: lines}
}

// LineCount returns the number of slots, dead lines included
func (s *Store) LineCount() int {
	return len(s.Lines)
}

// SegmentCount returns the total number of segments over all alive lines
func (s *Store) SegmentCount() int {
	total := 0
	for i := range s.Lines {
		total += s.Lines[i].SegmentCount()
	}
	return total
}

// MovePoint replaces one point of a line. Out-of-range indices are a no-op;
// in practice they cannot occur because they originate from picking results.
func (s *Store) MovePoint(lineIndex, pointIndex int, pos geometry.Vector3) {
	if lineIndex < 0 || lineIndex >= len(s.Lines) {
		return
	}
	line := &s.Lines[lineIndex]
	if pointIndex < 0 || pointIndex >= len(line.Points) {
		return
	}
	line.Points[pointIndex] = pos
}

// DeletePoint removes one point from a line. Refused when the line has
// 2 or fewer points: a line must keep at least 2 points or be fully dead.
func (s *Store) DeletePoint(lineIndex, pointIndex int) {
	if lineIndex < 0 || lineIndex >= len(s.Lines) {
		return
	}
	line := &s.Lines[lineIndex]
	if pointIndex < 0 || pointIndex >= len(line.Points) {
		return
	}
	if len(line.Points) <= 2 {
		fmt.Printf("Refusing to delete point %d of line %d: a line needs at least 2 points\n", pointIndex, lineIndex)
		return
	}
	points := make([]geometry.Vector3, 0, len(line.Points)-1)
	points = append(points, line.Points[:pointIndex]...)
	points = append(points, line.Points[pointIndex+1:]...)
	line.Points = points
}

// InsertPoint inserts a point immediately after the first endpoint of the
// given intra-line segment. afterSegment is relative to the line, so the
// new point lands at index afterSegment+1.
func (s *Store) InsertPoint(lineIndex, afterSegment int, pos geometry.Vector3) {
	if lineIndex < 0 || lineIndex >= len(s.Lines) {
		return
	}
	line := &s.Lines[lineIndex]
	if afterSegment < 0 || afterSegment >= line.SegmentCount() {
		return
	}
	at := afterSegment + 1
	points := make([]geometry.Vector3, 0, len(line.Points)+1)
	points = append(points, line.Points[:at]...)
	points = append(points, pos)
	points = append(points, line.Points[at:]...)
	line.Points = points
}

// DeleteLine marks a line dead by emptying its points. The slot is kept so
// indices of other lines, the reverse index and any external selection
// references stay valid.
func (s *Store) DeleteLine(lineIndex int) {
	if lineIndex < 0 || lineIndex >= len(s.Lines) {
		return
	}
	s.Lines[lineIndex].Points = nil
}

// Line returns the line at the given index, or nil when out of range
func (s *Store) Line(lineIndex int) *Line {
	if lineIndex < 0 || lineIndex >= len(s.Lines) {
		return nil
	}
	return &s.Lines[lineIndex]
}
