package lines

import (
	"testing"

	"github.com/philipparndt/golines/pkg/geometry"
)

func testStore() *Store {
	return NewStore([]Line{
		{Points: []geometry.Vector3{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}}, BaseColor: Color{1, 0, 0}},
		{Points: []geometry.Vector3{{X: 0, Y: 1, Z: 0}, {X: 1, Y: 1, Z: 0}}, BaseColor: Color{0, 1, 0}},
		{Points: []geometry.Vector3{{X: 0, Y: 2, Z: 0}, {X: 1, Y: 2, Z: 0}}, BaseColor: Color{0, 0, 1}},
	})
}

func TestMovePoint(t *testing.T) {
	store := testStore()
	pos := geometry.NewVector3(5, 6, 7)
	store.MovePoint(1, 1, pos)

	if store.Lines[1].Points[1] != pos {
		t.Errorf("MovePoint failed: got %v", store.Lines[1].Points[1])
	}
}

func TestMovePointOutOfRange(t *testing.T) {
	store := testStore()
	store.MovePoint(7, 0, geometry.NewVector3(1, 1, 1))
	store.MovePoint(0, 9, geometry.NewVector3(1, 1, 1))

	if store.Lines[0].Points[0] != geometry.NewVector3(0, 0, 0) {
		t.Error("MovePoint out of range should be a no-op")
	}
}

func TestDeletePointRefusedAtTwoPoints(t *testing.T) {
	store := testStore()
	store.DeletePoint(0, 0)

	if len(store.Lines[0].Points) != 2 {
		t.Errorf("DeletePoint on a 2-point line must be refused, got %d points", len(store.Lines[0].Points))
	}
}

func TestInsertThenDeleteRoundTrip(t *testing.T) {
	store := testStore()
	original := append([]geometry.Vector3(nil), store.Lines[0].Points...)

	store.InsertPoint(0, 0, geometry.NewVector3(0.5, 0, 0))
	if len(store.Lines[0].Points) != 3 {
		t.Fatalf("InsertPoint failed: expected 3 points, got %d", len(store.Lines[0].Points))
	}
	if store.Lines[0].Points[1] != geometry.NewVector3(0.5, 0, 0) {
		t.Errorf("InsertPoint placed point at wrong index: %v", store.Lines[0].Points)
	}

	store.DeletePoint(0, 1)
	if len(store.Lines[0].Points) != len(original) {
		t.Fatalf("round trip failed: expected %d points, got %d", len(original), len(store.Lines[0].Points))
	}
	for i, p := range original {
		if store.Lines[0].Points[i] != p {
			t.Errorf("round trip changed point %d: expected %v, got %v", i, p, store.Lines[0].Points[i])
		}
	}
}

func TestInsertPointOutOfRangeSegment(t *testing.T) {
	store := testStore()
	store.InsertPoint(0, 5, geometry.NewVector3(9, 9, 9))

	if len(store.Lines[0].Points) != 2 {
		t.Error("InsertPoint with out-of-range segment should be a no-op")
	}
}

func TestDeleteLineKeepsIndices(t *testing.T) {
	store := testStore()
	store.DeleteLine(1)

	if store.LineCount() != 3 {
		t.Errorf("DeleteLine must not compact the array, got %d slots", store.LineCount())
	}
	if store.Lines[1].Alive() {
		t.Error("deleted line should be dead")
	}
	if len(store.Lines[1].Points) != 0 {
		t.Errorf("dead line should have 0 points, got %d", len(store.Lines[1].Points))
	}
	if !store.Lines[0].Alive() || !store.Lines[2].Alive() {
		t.Error("unrelated lines must stay alive")
	}
	if store.SegmentCount() != 2 {
		t.Errorf("expected 2 segments after deletion, got %d", store.SegmentCount())
	}
}

func TestAliveInvariant(t *testing.T) {
	store := testStore()
	store.InsertPoint(2, 0, geometry.NewVector3(0.5, 2, 0))
	store.DeleteLine(0)
	store.DeletePoint(2, 1)
	store.DeletePoint(2, 0) // now at 2 points, refused

	for i := range store.Lines {
		line := &store.Lines[i]
		if line.Alive() && len(line.Points) < 2 {
			t.Errorf("line %d alive with %d points", i, len(line.Points))
		}
		if !line.Alive() && len(line.Points) != 0 {
			t.Errorf("line %d dead with %d points", i, len(line.Points))
		}
	}
}
