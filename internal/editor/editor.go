// Package editor owns the interaction state machine of the line editor:
// hover, selection, point dragging and the structural edits they trigger.
// Every mutation of the store synchronously rebuilds the flat segment
// buffers and pushes them into the attached render target, so a render pass
// always sees a committed, consistent snapshot.
package editor

import (
	"fmt"
	"time"

	"github.com/philipparndt/golines/pkg/geometry"
	"github.com/philipparndt/golines/pkg/lines"
	"github.com/philipparndt/golines/pkg/picking"
)

// RenderTarget is the GPU-resident geometry the editor feeds. Attribute
// replacement happens in place on the same object; implementations mark
// themselves dirty and re-upload on the next frame.
type RenderTarget interface {
	SetPositions(positions []float32)
	SetColors(colors []float32)
}

// Editor drives hover/select/drag state over a line store and keeps the
// batched segment buffers in sync with every edit
type Editor struct {
	store   *lines.Store
	buffers *lines.Buffers
	target  RenderTarget
	timings *Timings

	hovered  int
	selected int

	dragging  bool
	dragLine  int
	dragPoint int
	dragPlane geometry.Plane

	handles []picking.Handle

	// discretePick switches the comparison mode: picking scans the store's
	// per-line primitives instead of the flattened buffers
	discretePick bool
}

// New creates an editor over the given store and builds the initial buffers
func New(store *lines.Store) *Editor {
	e := &Editor{
		store:    store,
		timings:  NewTimings(),
		hovered:  -1,
		selected: -1,
	}
	e.rebuild()
	return e
}

// AttachTarget connects the render geometry and pushes the current buffers
func (e *Editor) AttachTarget(target RenderTarget) {
	e.target = target
	if target != nil {
		target.SetPositions(e.buffers.Positions)
		target.SetColors(e.buffers.Colors)
	}
}

// ReplaceStore swaps in a freshly generated store (scene reload) and resets
// all interaction state
func (e *Editor) ReplaceStore(store *lines.Store) {
	e.store = store
	e.hovered = -1
	e.selected = -1
	e.dragging = false
	e.clearHandles()
	e.rebuild()
}

// Store returns the authoritative line store
func (e *Editor) Store() *lines.Store { return e.store }

// Buffers returns the current flat segment buffers
func (e *Editor) Buffers() *lines.Buffers { return e.buffers }

// Timings returns the per-operation timing table for the overlay
func (e *Editor) Timings() *Timings { return e.timings }

// Hovered returns the hovered line index, or -1
func (e *Editor) Hovered() int { return e.hovered }

// Selected returns the selected line index, or -1
func (e *Editor) Selected() int { return e.selected }

// Dragging reports whether a point drag is in progress
func (e *Editor) Dragging() bool { return e.dragging }

// DragTarget returns the line and point being dragged, ok when a drag is
// active
func (e *Editor) DragTarget() (line, point int, ok bool) {
	return e.dragLine, e.dragPoint, e.dragging
}

// Handles returns the point markers of the selected line
func (e *Editor) Handles() []picking.Handle { return e.handles }

// DiscretePick reports whether the comparison pick path is active
func (e *Editor) DiscretePick() bool { return e.discretePick }

// ToggleDiscretePick switches between the batched and the per-line pick path
func (e *Editor) ToggleDiscretePick() {
	e.discretePick = !e.discretePick
}

// rebuild regenerates the flat buffers from the store and replaces the
// render target's attributes in place. Skipped buffer push when no target
// is attached yet: nothing to update is not an error.
func (e *Editor) rebuild() {
	start := time.Now()
	e.buffers = lines.BuildBuffers(e.store)
	if e.target != nil {
		e.target.SetPositions(e.buffers.Positions)
	}
	e.timings.Observe("rebuild", time.Since(start))
	e.recolor()
}

// recolor recomputes the color buffer from hover/selection state without
// touching positions
func (e *Editor) recolor() {
	start := time.Now()
	e.buffers.Colors = lines.HighlightColors(e.buffers, e.hovered, e.selected)
	if e.target != nil {
		e.target.SetColors(e.buffers.Colors)
	}
	e.timings.Observe("colorize", time.Since(start))
}

func (e *Editor) pick(ray geometry.Ray, tolerance float64) (picking.Hit, bool) {
	if e.discretePick {
		return picking.PickStore(ray, e.store, tolerance)
	}
	return picking.PickSegments(ray, e.buffers, tolerance)
}

// HoverAt updates hover state from a pointer ray. The tolerance widens the
// effective hit radius so visually thin lines remain selectable.
func (e *Editor) HoverAt(ray geometry.Ray, tolerance float64) {
	if e.dragging {
		return
	}
	start := time.Now()
	hit, ok := e.pick(ray, tolerance)
	e.timings.Observe("hover pick", time.Since(start))

	hovered := -1
	if ok {
		hovered = hit.Line
	}
	if hovered != e.hovered {
		e.hovered = hovered
		e.recolor()
	}
}

// ClickAt handles a pointer click: selects the hit line, adds a point when
// the hit line is already selected, or deselects on a miss.
func (e *Editor) ClickAt(ray geometry.Ray, tolerance float64) {
	if e.dragging {
		return
	}
	start := time.Now()
	hit, ok := e.pick(ray, tolerance)
	e.timings.Observe("select pick", time.Since(start))

	if !ok {
		if e.selected >= 0 {
			e.selected = -1
			e.clearHandles()
			e.recolor()
		}
		return
	}

	if hit.Line == e.selected {
		// Click on the already selected line adds a point. The closest
		// segment is re-derived by scanning the line itself: the global
		// segment index refers to the pre-edit buffer layout.
		seg, _, found := picking.ClosestSegmentOnLine(e.store.Line(e.selected), hit.Point)
		if !found {
			return
		}
		e.store.InsertPoint(e.selected, seg, hit.Point)
		fmt.Printf("Inserted point on line %d after segment %d\n", e.selected, seg)
		e.rebuild()
		e.rebuildHandles()
		return
	}

	e.selected = hit.Line
	e.rebuildHandles()
	e.recolor()
}

// StartDrag begins dragging the handle hit by the ray. The drag plane goes
// through the handle and faces the camera, so later ray/plane intersections
// track the pointer naturally at any camera angle. Returns true when a drag
// started; the caller suspends camera orbiting for its duration.
func (e *Editor) StartDrag(ray geometry.Ray, handleRadius float64, viewDir geometry.Vector3) bool {
	if e.selected < 0 || e.dragging {
		return false
	}
	idx, ok := picking.PickHandle(ray, e.handles, handleRadius)
	if !ok {
		return false
	}

	h := e.handles[idx]
	e.dragging = true
	e.dragLine = h.Line
	e.dragPoint = h.Point
	e.dragPlane = geometry.Plane{Point: h.Position, Normal: viewDir.Normalize()}
	return true
}

// DragTo moves the dragged point to the intersection of the pointer ray
// with the drag plane and rebuilds the geometry
func (e *Editor) DragTo(ray geometry.Ray) {
	if !e.dragging {
		return
	}
	pos, ok := ray.IntersectPlane(e.dragPlane)
	if !ok {
		return
	}

	e.store.MovePoint(e.dragLine, e.dragPoint, pos)
	if e.dragPoint < len(e.handles) {
		e.handles[e.dragPoint].Position = pos
	}
	e.rebuild()
}

// EndDrag leaves dragging state. Safe to call when no drag is active, since
// the pointer-up event arrives window-level.
func (e *Editor) EndDrag() {
	e.dragging = false
}

// DeletePointAt removes the point whose handle is hit by the ray. Deletion
// is refused by the store when the line would drop below 2 points.
func (e *Editor) DeletePointAt(ray geometry.Ray, handleRadius float64) {
	if e.selected < 0 || e.dragging {
		return
	}
	idx, ok := picking.PickHandle(ray, e.handles, handleRadius)
	if !ok {
		return
	}
	h := e.handles[idx]
	if h.Line != e.selected {
		return
	}

	before := len(e.store.Line(h.Line).Points)
	e.store.DeletePoint(h.Line, h.Point)
	if len(e.store.Line(h.Line).Points) == before {
		return
	}
	e.rebuild()
	e.rebuildHandles()
}

// DeleteLine handles the external delete command. It is only honored when
// the index names the current selection; anything else is a stale command
// and ignored.
func (e *Editor) DeleteLine(lineIndex int) {
	if lineIndex < 0 || lineIndex != e.selected {
		return
	}
	e.store.DeleteLine(lineIndex)
	fmt.Printf("Deleted line %d\n", lineIndex)

	e.selected = -1
	if e.hovered == lineIndex {
		e.hovered = -1
	}
	e.clearHandles()
	e.rebuild()
}

// rebuildHandles regenerates the point markers from the selected line's
// current point list, replacing any previous set
func (e *Editor) rebuildHandles() {
	e.clearHandles()
	line := e.store.Line(e.selected)
	if line == nil || !line.Alive() {
		return
	}
	for i, p := range line.Points {
		e.handles = append(e.handles, picking.Handle{Line: e.selected, Point: i, Position: p})
	}
}

// clearHandles releases all point markers before they are repopulated
func (e *Editor) clearHandles() {
	e.handles = e.handles[:0]
}

// DebugString summarizes the interaction state for the overlay
func (e *Editor) DebugString() string {
	mode := "batched"
	if e.discretePick {
		mode = "discrete"
	}
	return fmt.Sprintf("mode=%s hovered=%d selected=%d segments=%d handles=%d",
		mode, e.hovered, e.selected, e.buffers.SegmentCount(), len(e.handles))
}
