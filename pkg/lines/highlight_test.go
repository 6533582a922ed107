package lines

import "testing"

func TestHighlightHoverColorsOneLine(t *testing.T) {
	store := testStore()
	b := BuildBuffers(store)

	colors := HighlightColors(b, 1, -1)

	// Segment 1 (line 1) is tinted with the hover color on both endpoints
	for i := 0; i < 6; i += 3 {
		if colors[6+i] != HoverColor[0] || colors[7+i] != HoverColor[1] || colors[8+i] != HoverColor[2] {
			t.Errorf("hovered segment not tinted: %v", colors[6:12])
		}
	}
	// Other segments keep their original colors
	for i := 0; i < 6; i++ {
		if colors[i] != b.OriginalColors[i] {
			t.Errorf("segment 0 changed at %d", i)
		}
		if colors[12+i] != b.OriginalColors[12+i] {
			t.Errorf("segment 2 changed at %d", i)
		}
	}
}

func TestHighlightSelectionBeatsHover(t *testing.T) {
	store := testStore()
	b := BuildBuffers(store)

	colors := HighlightColors(b, 1, 1)
	if colors[6] != SelectionColor[0] || colors[7] != SelectionColor[1] || colors[8] != SelectionColor[2] {
		t.Errorf("selection must take precedence over hover: %v", colors[6:9])
	}
}

func TestHighlightClearRestoresOriginal(t *testing.T) {
	store := testStore()
	b := BuildBuffers(store)

	highlighted := HighlightColors(b, 0, 2)
	_ = highlighted
	restored := HighlightColors(b, -1, -1)

	for i := range restored {
		if restored[i] != b.OriginalColors[i] {
			t.Fatalf("clearing highlight did not restore colors at %d", i)
		}
	}
}

func TestHighlightDoesNotMutateOriginals(t *testing.T) {
	store := testStore()
	b := BuildBuffers(store)
	snapshot := append([]float32(nil), b.OriginalColors...)

	HighlightColors(b, 0, 1)

	for i := range snapshot {
		if b.OriginalColors[i] != snapshot[i] {
			t.Fatalf("OriginalColors mutated at %d", i)
		}
	}
}
