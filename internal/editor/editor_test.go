package editor

import (
	"testing"

	"github.com/philipparndt/golines/pkg/geometry"
	"github.com/philipparndt/golines/pkg/lines"
)

// Three horizontal 2-point lines at y = 0, 1, 2 in the z=0 plane
func testStore() *lines.Store {
	return lines.NewStore([]lines.Line{
		{Points: []geometry.Vector3{{X: -1, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}}, BaseColor: lines.Color{1, 0, 0}},
		{Points: []geometry.Vector3{{X: -1, Y: 1, Z: 0}, {X: 1, Y: 1, Z: 0}}, BaseColor: lines.Color{0, 1, 0}},
		{Points: []geometry.Vector3{{X: -1, Y: 2, Z: 0}, {X: 1, Y: 2, Z: 0}}, BaseColor: lines.Color{0, 0, 1}},
	})
}

// rayAt casts straight down the -Z axis onto the z=0 plane at (x, y)
func rayAt(x, y float64) geometry.Ray {
	return geometry.NewRay(geometry.NewVector3(x, y, 10), geometry.NewVector3(0, 0, -1))
}

const tolerance = 0.1

func TestHoverSetsStateAndColors(t *testing.T) {
	e := New(testStore())

	e.HoverAt(rayAt(0, 1), tolerance)
	if e.Hovered() != 1 {
		t.Fatalf("Hovered = %d, expected 1", e.Hovered())
	}

	b := e.Buffers()
	// Line 1 owns segment 1: both endpoints carry the hover color
	for i := 6; i < 12; i += 3 {
		if b.Colors[i] != lines.HoverColor[0] || b.Colors[i+1] != lines.HoverColor[1] || b.Colors[i+2] != lines.HoverColor[2] {
			t.Errorf("hovered segment colors wrong: %v", b.Colors[6:12])
		}
	}
	// Other segments unchanged
	for i := 0; i < 6; i++ {
		if b.Colors[i] != b.OriginalColors[i] {
			t.Errorf("segment 0 color changed at %d", i)
		}
		if b.Colors[12+i] != b.OriginalColors[12+i] {
			t.Errorf("segment 2 color changed at %d", i)
		}
	}
}

func TestHoverMissClearsState(t *testing.T) {
	e := New(testStore())

	e.HoverAt(rayAt(0, 1), tolerance)
	e.HoverAt(rayAt(0, 50), tolerance)
	if e.Hovered() != -1 {
		t.Errorf("hover miss should clear state, got %d", e.Hovered())
	}
	for i, c := range e.Buffers().Colors {
		if c != e.Buffers().OriginalColors[i] {
			t.Fatalf("colors not restored at %d", i)
		}
	}
}

func TestClickSelectsLineAndCreatesHandles(t *testing.T) {
	e := New(testStore())

	e.ClickAt(rayAt(0, 2), tolerance)
	if e.Selected() != 2 {
		t.Fatalf("Selected = %d, expected 2", e.Selected())
	}
	if len(e.Handles()) != 2 {
		t.Fatalf("expected 2 handles, got %d", len(e.Handles()))
	}
	for i, h := range e.Handles() {
		if h.Line != 2 || h.Point != i {
			t.Errorf("handle %d tagged (%d, %d)", i, h.Line, h.Point)
		}
	}
}

func TestClickSwitchesSelection(t *testing.T) {
	e := New(testStore())

	e.ClickAt(rayAt(0, 0), tolerance)
	e.ClickAt(rayAt(0, 2), tolerance)
	if e.Selected() != 2 {
		t.Fatalf("Selected = %d, expected 2", e.Selected())
	}
	for _, h := range e.Handles() {
		if h.Line != 2 {
			t.Errorf("stale handle for line %d survived re-selection", h.Line)
		}
	}
}

func TestClickMissDeselects(t *testing.T) {
	e := New(testStore())

	e.ClickAt(rayAt(0, 0), tolerance)
	e.ClickAt(rayAt(0, 50), tolerance)
	if e.Selected() != -1 {
		t.Errorf("miss should deselect, got %d", e.Selected())
	}
	if len(e.Handles()) != 0 {
		t.Errorf("handles must be removed on deselect, got %d", len(e.Handles()))
	}
}

func TestClickSelectedLineAddsPoint(t *testing.T) {
	e := New(testStore())

	e.ClickAt(rayAt(0, 0), tolerance) // select line 0
	e.ClickAt(rayAt(0, 0), tolerance) // click midpoint: equidistant between endpoints

	line := e.Store().Line(0)
	if len(line.Points) != 3 {
		t.Fatalf("expected 3 points after insert, got %d", len(line.Points))
	}
	if line.Points[1].Distance(geometry.NewVector3(0, 0, 0)) > 1e-9 {
		t.Errorf("new point at wrong position: %v", line.Points[1])
	}

	b := e.Buffers()
	if b.SegmentCount() != 4 {
		t.Fatalf("expected 4 segments after insert, got %d", b.SegmentCount())
	}
	// Higher-indexed lines shift by one in the reverse index
	expected := []int{0, 0, 1, 2}
	for i, lineIndex := range b.SegmentToLine {
		if lineIndex != expected[i] {
			t.Errorf("SegmentToLine[%d] = %d, expected %d", i, lineIndex, expected[i])
		}
	}
	if len(e.Handles()) != 3 {
		t.Errorf("handles must be regenerated after insert, got %d", len(e.Handles()))
	}
}

func TestDeleteLineClearsSelection(t *testing.T) {
	e := New(testStore())

	e.ClickAt(rayAt(0, 1), tolerance)
	e.DeleteLine(1)

	if e.Store().Line(1).Alive() {
		t.Fatal("line 1 should be dead")
	}
	if e.Selected() != -1 {
		t.Errorf("selection must be cleared, got %d", e.Selected())
	}
	if len(e.Handles()) != 0 {
		t.Errorf("handles must be removed, got %d", len(e.Handles()))
	}

	b := e.Buffers()
	if b.SegmentCount() != 2 {
		t.Fatalf("expected 2 segments, got %d", b.SegmentCount())
	}
	for _, lineIndex := range b.SegmentToLine {
		if lineIndex == 1 {
			t.Error("reverse index still references the deleted line")
		}
	}
	if e.Store().LineCount() != 3 {
		t.Errorf("line slots must not be compacted, got %d", e.Store().LineCount())
	}
}

func TestDeleteLineStaleCommandIgnored(t *testing.T) {
	e := New(testStore())

	e.ClickAt(rayAt(0, 1), tolerance)
	e.DeleteLine(0) // does not match the selection

	if !e.Store().Line(0).Alive() {
		t.Error("stale delete command must be ignored")
	}
	if e.Selected() != 1 {
		t.Errorf("selection must survive a stale command, got %d", e.Selected())
	}
}

func TestDragMovesPointAndLeavesOthersIdentical(t *testing.T) {
	e := New(testStore())
	e.ClickAt(rayAt(0, 1), tolerance) // select line 1

	before := append([]float32(nil), e.Buffers().Positions...)

	// Grab the second handle (point 1 at (1, 1, 0)), camera looking down -Z
	viewDir := geometry.NewVector3(0, 0, -1)
	if !e.StartDrag(rayAt(1, 1), 0.2, viewDir) {
		t.Fatal("drag should start on the handle")
	}
	if !e.Dragging() {
		t.Fatal("editor should be dragging")
	}

	// Drag plane is z=0, so this lands exactly at (2, 1.5, 0)
	e.DragTo(rayAt(2, 1.5))
	e.EndDrag()

	moved := e.Store().Line(1).Points[1]
	if moved.Distance(geometry.NewVector3(2, 1.5, 0)) > 1e-9 {
		t.Fatalf("point not moved to plane intersection: %v", moved)
	}

	after := e.Buffers().Positions
	// Segment 1 end point reflects the new coordinates exactly
	if after[9] != 2 || after[10] != 1.5 || after[11] != 0 {
		t.Errorf("moved endpoint not in buffers: %v", after[6:12])
	}
	// Unrelated lines' buffer entries are identical to before the drag
	for i := 0; i < 6; i++ {
		if after[i] != before[i] {
			t.Errorf("line 0 buffer changed at %d", i)
		}
		if after[12+i] != before[12+i] {
			t.Errorf("line 2 buffer changed at %d", i)
		}
	}
}

func TestDragSuppressesHoverAndClick(t *testing.T) {
	e := New(testStore())
	e.ClickAt(rayAt(0, 1), tolerance)
	if !e.StartDrag(rayAt(-1, 1), 0.2, geometry.NewVector3(0, 0, -1)) {
		t.Fatal("drag should start")
	}

	e.HoverAt(rayAt(0, 2), tolerance)
	if e.Hovered() != -1 {
		t.Error("hover must be ignored while dragging")
	}
	e.ClickAt(rayAt(0, 2), tolerance)
	if e.Selected() != 1 {
		t.Error("click must be ignored while dragging")
	}
}

func TestDeletePointAtHandle(t *testing.T) {
	store := testStore()
	store.InsertPoint(0, 0, geometry.NewVector3(0, 0, 0))
	e := New(store)

	e.ClickAt(rayAt(-1, 0), tolerance) // select line 0 (3 points now)
	e.DeletePointAt(rayAt(0, 0), 0.2)  // delete the middle point

	if len(e.Store().Line(0).Points) != 2 {
		t.Fatalf("expected 2 points after delete, got %d", len(e.Store().Line(0).Points))
	}
	if len(e.Handles()) != 2 {
		t.Errorf("handles must be regenerated, got %d", len(e.Handles()))
	}
}

func TestDeletePointRefusedOnTwoPointLine(t *testing.T) {
	e := New(testStore())

	e.ClickAt(rayAt(0, 0), tolerance)
	e.DeletePointAt(rayAt(-1, 0), 0.2)

	if len(e.Store().Line(0).Points) != 2 {
		t.Errorf("2-point line must keep both points, got %d", len(e.Store().Line(0).Points))
	}
	if len(e.Handles()) != 2 {
		t.Errorf("handles must be unchanged after refused delete, got %d", len(e.Handles()))
	}
}

// fakeTarget records attribute pushes like the GPU geometry would
type fakeTarget struct {
	positions []float32
	colors    []float32
	pushes    int
}

func (f *fakeTarget) SetPositions(p []float32) { f.positions = p; f.pushes++ }
func (f *fakeTarget) SetColors(c []float32)    { f.colors = c; f.pushes++ }

func TestAttachTargetPushesBuffers(t *testing.T) {
	e := New(testStore()) // no target yet: rebuild skips the push

	target := &fakeTarget{}
	e.AttachTarget(target)
	if len(target.positions) != 18 || len(target.colors) != 18 {
		t.Fatalf("attach must push current buffers: pos=%d col=%d", len(target.positions), len(target.colors))
	}

	e.ClickAt(rayAt(0, 0), tolerance)
	e.ClickAt(rayAt(0, 0), tolerance) // insert point -> rebuild -> push
	if len(target.positions) != 24 {
		t.Errorf("rebuild must push new positions, got %d floats", len(target.positions))
	}
}

func TestDiscretePickMatchesBatched(t *testing.T) {
	e := New(testStore())

	e.ToggleDiscretePick()
	if !e.DiscretePick() {
		t.Fatal("discrete mode should be active")
	}
	e.HoverAt(rayAt(0, 2), tolerance)
	if e.Hovered() != 2 {
		t.Errorf("discrete hover failed: got %d", e.Hovered())
	}

	e.ToggleDiscretePick()
	e.HoverAt(rayAt(0, 2), tolerance)
	if e.Hovered() != 2 {
		t.Errorf("batched hover failed: got %d", e.Hovered())
	}
}

func TestReplaceStoreResetsState(t *testing.T) {
	e := New(testStore())
	e.ClickAt(rayAt(0, 0), tolerance)

	e.ReplaceStore(lines.NewStore([]lines.Line{
		{Points: []geometry.Vector3{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}}},
	}))

	if e.Selected() != -1 || e.Hovered() != -1 || len(e.Handles()) != 0 {
		t.Error("ReplaceStore must reset interaction state")
	}
	if e.Buffers().SegmentCount() != 1 {
		t.Errorf("buffers not rebuilt: %d segments", e.Buffers().SegmentCount())
	}
}
