package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// LineMesh is the render-side geometry object for the batched path. The
// editor replaces its position/color attributes in place (same object, same
// backing arrays when the segment count is unchanged) and marks it dirty;
// the raylib-facing vertex cache is refreshed once on the next draw, so a
// frame never converts or allocates unless an edit happened.
type LineMesh struct {
	positions []float32
	colors    []float32
	dirty     bool

	endpoints []rl.Vector3
	tints     []rl.Color
}

// NewLineMesh creates an empty mesh; the editor pushes data into it
func NewLineMesh() *LineMesh {
	return &LineMesh{}
}

// SetPositions replaces the position attribute in place when the size is
// unchanged, reallocating only when the segment count changed
func (m *LineMesh) SetPositions(positions []float32) {
	m.positions = replaceFloats(m.positions, positions)
	m.dirty = true
}

// SetColors replaces the color attribute, never touching positions
func (m *LineMesh) SetColors(colors []float32) {
	m.colors = replaceFloats(m.colors, colors)
	m.dirty = true
}

// SegmentCount returns the number of segments currently held
func (m *LineMesh) SegmentCount() int {
	return len(m.positions) / 6
}

// Draw submits all segments inside an active 3D mode. Raylib batches the
// emitted line vertices into its internal GPU buffer, so the whole set goes
// out in a single batch flush.
func (m *LineMesh) Draw() {
	if m.dirty {
		m.refresh()
		m.dirty = false
	}
	for i := 0; i < len(m.tints); i++ {
		rl.DrawLine3D(m.endpoints[i*2], m.endpoints[i*2+1], m.tints[i])
	}
}

// refresh rebuilds the raylib vertex cache from the flat attributes
func (m *LineMesh) refresh() {
	segments := len(m.positions) / 6

	if cap(m.endpoints) < segments*2 {
		m.endpoints = make([]rl.Vector3, segments*2)
	} else {
		m.endpoints = m.endpoints[:segments*2]
	}
	if cap(m.tints) < segments {
		m.tints = make([]rl.Color, segments)
	} else {
		m.tints = m.tints[:segments]
	}

	for i := 0; i < segments; i++ {
		base := i * 6
		m.endpoints[i*2] = rl.Vector3{
			X: m.positions[base+0],
			Y: m.positions[base+1],
			Z: m.positions[base+2],
		}
		m.endpoints[i*2+1] = rl.Vector3{
			X: m.positions[base+3],
			Y: m.positions[base+4],
			Z: m.positions[base+5],
		}
		// Flat per-segment tint: both endpoints carry the same color
		m.tints[i] = floatsToColor(m.colors[base+0], m.colors[base+1], m.colors[base+2])
	}
}

func replaceFloats(dst, src []float32) []float32 {
	if len(dst) != len(src) {
		dst = make([]float32, len(src))
	}
	copy(dst, src)
	return dst
}

func floatsToColor(r, g, b float32) rl.Color {
	return rl.NewColor(floatToByte(r), floatToByte(g), floatToByte(b), 255)
}

func floatToByte(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
