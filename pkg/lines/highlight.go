package lines

// Highlight colors applied on top of the base palette. Selection wins
// over hover when both target the same line.
var (
	SelectionColor = Color{1.0, 0.85, 0.1}
	HoverColor     = Color{1.0, 1.0, 1.0}
)

// HighlightColors returns a fresh color buffer: a copy of OriginalColors
// with every segment of the selected line tinted SelectionColor and every
// segment of the hovered line (when it is not the selected one) tinted
// HoverColor. Pass -1 for "no line". Positions are never touched.
func HighlightColors(b *Buffers, hovered, selected int) []float32 {
	colors := make([]float32, len(b.OriginalColors))
	copy(colors, b.OriginalColors)

	for seg, lineIndex := range b.SegmentToLine {
		var tint Color
		switch {
		case selected >= 0 && lineIndex == selected:
			tint = SelectionColor
		case hovered >= 0 && lineIndex == hovered && hovered != selected:
			tint = HoverColor
		default:
			continue
		}
		base := seg * 6
		colors[base+0], colors[base+1], colors[base+2] = tint[0], tint[1], tint[2]
		colors[base+3], colors[base+4], colors[base+5] = tint[0], tint[1], tint[2]
	}

	return colors
}
