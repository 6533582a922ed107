package viewer

import (
	"image/color"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/philipparndt/golines/pkg/analysis"
	"github.com/philipparndt/golines/pkg/lines"
)

var (
	selectionTint = color.RGBA{R: 255, G: 217, B: 26, A: 255}
	markerStroke  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// LineRenderer draws a line store as individual canvas lines. One canvas
// object per segment, projected in software on every camera change.
type LineRenderer struct {
	widget.BaseWidget
	store        *lines.Store
	camera       *Camera
	segments     []*canvas.Line
	pointMarkers []*canvas.Circle
	selected     int
	dragStart    *fyne.Position
	isDragging   bool
	width        float64
	height       float64
	onSelect     func(lineIndex int)
}

// NewLineRenderer creates a renderer over the given store
func NewLineRenderer(store *lines.Store) *LineRenderer {
	stats := analysis.AnalyzeStore(store)
	r := &LineRenderer{
		store:    store,
		camera:   NewCamera(stats.BoundingBox),
		selected: -1,
	}
	r.ExtendBaseWidget(r)
	return r
}

// SetOnSelect sets the callback for selection changes; -1 means deselected
func (r *LineRenderer) SetOnSelect(callback func(lineIndex int)) {
	r.onSelect = callback
}

// Selected returns the selected line index, or -1
func (r *LineRenderer) Selected() int {
	return r.selected
}

// CreateRenderer creates the fyne renderer for the widget
func (r *LineRenderer) CreateRenderer() fyne.WidgetRenderer {
	return &lineWidgetRenderer{
		renderer: r,
		objects:  []fyne.CanvasObject{},
	}
}

// Render projects all alive lines into canvas objects
func (r *LineRenderer) Render(width, height float64) {
	r.width = width
	r.height = height

	r.segments = r.segments[:0]

	for i := range r.store.Lines {
		line := &r.store.Lines[i]
		if !line.Alive() {
			continue
		}

		tint := r.lineTint(i, line)
		for s := 0; s+1 < len(line.Points); s++ {
			x1, y1, z1 := r.camera.Project(line.Points[s], width, height)
			x2, y2, z2 := r.camera.Project(line.Points[s+1], width, height)

			// Depth-based dimming keeps far lines readable without a z-buffer
			avgZ := (z1 + z2) / 2
			dim := math.Max(0.35, math.Min(1.0, r.camera.Distance/avgZ*0.6))

			seg := canvas.NewLine(dimColor(tint, dim))
			seg.StrokeWidth = 1
			if i == r.selected {
				seg.StrokeWidth = 2
			}
			seg.Position1 = fyne.NewPos(float32(x1), float32(y1))
			seg.Position2 = fyne.NewPos(float32(x2), float32(y2))

			r.segments = append(r.segments, seg)
		}
	}

	r.updatePointMarkers()
	r.Refresh()
}

func (r *LineRenderer) lineTint(index int, line *lines.Line) color.RGBA {
	if index == r.selected {
		return selectionTint
	}
	return color.RGBA{
		R: colorByte(line.BaseColor[0]),
		G: colorByte(line.BaseColor[1]),
		B: colorByte(line.BaseColor[2]),
		A: 255,
	}
}

// updatePointMarkers places a marker on every point of the selected line
func (r *LineRenderer) updatePointMarkers() {
	r.pointMarkers = r.pointMarkers[:0]
	if r.selected < 0 {
		return
	}
	line := r.store.Line(r.selected)
	if line == nil || !line.Alive() {
		return
	}

	for _, point := range line.Points {
		x, y, z := r.camera.Project(point, r.width, r.height)
		if z <= 0.01 {
			continue
		}

		marker := canvas.NewCircle(selectionTint)
		marker.StrokeColor = markerStroke
		marker.StrokeWidth = 1
		size := float32(8)
		marker.Resize(fyne.NewSize(size, size))
		marker.Move(fyne.NewPos(float32(x)-size/2, float32(y)-size/2))

		r.pointMarkers = append(r.pointMarkers, marker)
	}
}

// Dragged rotates the camera
func (r *LineRenderer) Dragged(event *fyne.DragEvent) {
	if r.dragStart != nil {
		deltaX := event.Position.X - r.dragStart.X
		deltaY := event.Position.Y - r.dragStart.Y

		r.camera.Rotate(float64(-deltaY)*0.01, float64(deltaX)*0.01)
		r.Render(r.width, r.height)
	}
	r.dragStart = &event.Position
	r.isDragging = true
}

// DragEnd ends a camera rotation
func (r *LineRenderer) DragEnd() {
	r.dragStart = nil
	r.isDragging = false
}

// Tapped selects the line nearest to the tap, or deselects on a miss
func (r *LineRenderer) Tapped(event *fyne.PointEvent) {
	if r.isDragging {
		return
	}

	nearest, minDist := r.findNearestLine(float64(event.Position.X), float64(event.Position.Y))

	selected := -1
	if minDist < 12 {
		selected = nearest
	}
	if selected == r.selected {
		return
	}
	r.selected = selected
	r.Render(r.width, r.height)

	if r.onSelect != nil {
		r.onSelect(r.selected)
	}
}

// findNearestLine returns the line whose projected segments pass closest to
// the given screen position
func (r *LineRenderer) findNearestLine(screenX, screenY float64) (int, float64) {
	nearest := -1
	minDist := math.MaxFloat64

	for i := range r.store.Lines {
		line := &r.store.Lines[i]
		if !line.Alive() {
			continue
		}
		for s := 0; s+1 < len(line.Points); s++ {
			x1, y1, z1 := r.camera.Project(line.Points[s], r.width, r.height)
			x2, y2, z2 := r.camera.Project(line.Points[s+1], r.width, r.height)
			if z1 <= 0.01 && z2 <= 0.01 {
				continue
			}

			dist := pointToSegment2D(screenX, screenY, x1, y1, x2, y2)
			if dist < minDist {
				minDist = dist
				nearest = i
			}
		}
	}

	return nearest, minDist
}

// ClearSelection deselects the current line
func (r *LineRenderer) ClearSelection() {
	if r.selected < 0 {
		return
	}
	r.selected = -1
	r.Render(r.width, r.height)
	if r.onSelect != nil {
		r.onSelect(-1)
	}
}

// Scrolled zooms the camera
func (r *LineRenderer) Scrolled(event *fyne.ScrollEvent) {
	delta := -float64(event.Scrolled.DY) * 0.001
	r.camera.Zoom(delta)
	r.Render(r.width, r.height)
}

// pointToSegment2D returns the distance from a point to a 2D segment
func pointToSegment2D(px, py, x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	lengthSq := dx*dx + dy*dy
	t := 0.0
	if lengthSq > 0 {
		t = ((px-x1)*dx + (py-y1)*dy) / lengthSq
		t = math.Max(0, math.Min(1, t))
	}
	cx := x1 + t*dx
	cy := y1 + t*dy
	return math.Hypot(px-cx, py-cy)
}

func dimColor(c color.RGBA, factor float64) color.Color {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}

func colorByte(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// lineWidgetRenderer implements fyne.WidgetRenderer
type lineWidgetRenderer struct {
	renderer *LineRenderer
	objects  []fyne.CanvasObject
}

func (m *lineWidgetRenderer) Layout(size fyne.Size) {
	m.renderer.Render(float64(size.Width), float64(size.Height))
}

func (m *lineWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 400)
}

func (m *lineWidgetRenderer) Refresh() {
	m.objects = m.objects[:0]

	for _, seg := range m.renderer.segments {
		m.objects = append(m.objects, seg)
	}
	for _, marker := range m.renderer.pointMarkers {
		m.objects = append(m.objects, marker)
	}

	canvas.Refresh(m.renderer)
}

func (m *lineWidgetRenderer) Objects() []fyne.CanvasObject {
	return m.objects
}

func (m *lineWidgetRenderer) Destroy() {}
