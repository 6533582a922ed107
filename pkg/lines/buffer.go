package lines

// Buffers holds the flat interleaved vertex data for segment rendering.
// Each segment contributes two endpoints, so Positions, Colors and
// OriginalColors each hold 6 floats per segment. SegmentToLine maps a
// global segment index back to its owning line. The buffers are caches:
// they are rebuilt wholesale from the store after every structural
// mutation and never mutated directly.
type Buffers struct {
	Positions      []float32
	Colors         []float32
	OriginalColors []float32
	SegmentToLine  []int
}

// SegmentCount returns the number of segments in the buffers
func (b *Buffers) SegmentCount() int {
	return len(b.SegmentToLine)
}

// BuildBuffers flattens all alive lines into segment buffers. Lines are
// visited in ascending index order and each consecutive point pair emits
// one segment colored flat with the line's base color. Dead lines (fewer
// than 2 points) contribute nothing. The result is deterministic for a
// given store snapshot.
func BuildBuffers(store *Store) *Buffers {
	total := store.SegmentCount()

	b := &Buffers{
		Positions:      make([]float32, 0, total*6),
		Colors:         make([]float32, 0, total*6),
		OriginalColors: make([]float32, 0, total*6),
		SegmentToLine:  make([]int, 0, total),
	}

	for lineIndex := range store.Lines {
		line := &store.Lines[lineIndex]
		if !line.Alive() {
			continue
		}
		c := line.BaseColor
		for i := 0; i+1 < len(line.Points); i++ {
			start := line.Points[i]
			end := line.Points[i+1]
			b.Positions = append(b.Positions,
				float32(start.X), float32(start.Y), float32(start.Z),
				float32(end.X), float32(end.Y), float32(end.Z),
			)
			// Flat per-line coloring: both endpoints get the base color
			b.Colors = append(b.Colors, c[0], c[1], c[2], c[0], c[1], c[2])
			b.OriginalColors = append(b.OriginalColors, c[0], c[1], c[2], c[0], c[1], c[2])
			b.SegmentToLine = append(b.SegmentToLine, lineIndex)
		}
	}

	return b
}
