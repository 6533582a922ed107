// Package picking resolves rays against the batched segment buffers and
// against point handles. It is pure: rays come in, hits come out, and the
// caller decides what hover/selection state to derive from them.
package picking

import (
	"math"

	"github.com/philipparndt/golines/pkg/geometry"
	"github.com/philipparndt/golines/pkg/lines"
)

// Hit describes the nearest primitive intersected by a pick ray
type Hit struct {
	Line    int              // owning line index, via the reverse index
	Segment int              // global segment index in the flattened buffers
	Point   geometry.Vector3 // closest point on the hit segment
	RayT    float64          // distance along the ray to the hit
}

// PickSegments casts a ray against every segment in the buffers and returns
// the nearest hit along the ray within the given tolerance. The tolerance is
// the effective pick radius around a segment; it is deliberately larger than
// the visual line width so thin lines stay selectable.
func PickSegments(ray geometry.Ray, b *lines.Buffers, tolerance float64) (Hit, bool) {
	best := Hit{Line: -1, Segment: -1, RayT: math.MaxFloat64}
	found := false

	for seg := 0; seg < b.SegmentCount(); seg++ {
		base := seg * 6
		start := geometry.NewVector3(
			float64(b.Positions[base+0]),
			float64(b.Positions[base+1]),
			float64(b.Positions[base+2]),
		)
		end := geometry.NewVector3(
			float64(b.Positions[base+3]),
			float64(b.Positions[base+4]),
			float64(b.Positions[base+5]),
		)

		dist, rayT, segT := ray.DistanceToSegment(start, end)
		if dist > tolerance || rayT >= best.RayT {
			continue
		}
		best = Hit{
			Line:    b.SegmentToLine[seg],
			Segment: seg,
			Point:   start.Lerp(end, segT),
			RayT:    rayT,
		}
		found = true
	}

	return best, found
}

// PickStore is the discrete comparison path: it scans the store's lines
// directly, one primitive per line, without the flattened buffers. The
// returned global segment index is derived by counting emission order so
// both paths produce interchangeable results.
func PickStore(ray geometry.Ray, store *lines.Store, tolerance float64) (Hit, bool) {
	best := Hit{Line: -1, Segment: -1, RayT: math.MaxFloat64}
	found := false

	offset := 0
	for lineIndex := range store.Lines {
		line := &store.Lines[lineIndex]
		for i := 0; i+1 < len(line.Points); i++ {
			dist, rayT, segT := ray.DistanceToSegment(line.Points[i], line.Points[i+1])
			if dist <= tolerance && rayT < best.RayT {
				best = Hit{
					Line:    lineIndex,
					Segment: offset + i,
					Point:   line.Points[i].Lerp(line.Points[i+1], segT),
					RayT:    rayT,
				}
				found = true
			}
		}
		offset += line.SegmentCount()
	}

	return best, found
}

// ClosestSegmentOnLine scans every segment of one line and returns the
// intra-line index of the segment closest to the target point, along with
// the clamped projection of the target onto it. The scan is per-line on
// purpose: after a pick the global segment index refers to the pre-edit
// buffer layout, so local topology is re-derived from the store instead.
func ClosestSegmentOnLine(line *lines.Line, target geometry.Vector3) (int, geometry.Vector3, bool) {
	if line == nil || !line.Alive() {
		return -1, geometry.Vector3{}, false
	}

	bestSeg := -1
	bestDist := math.MaxFloat64
	var bestPoint geometry.Vector3

	for i := 0; i+1 < len(line.Points); i++ {
		proj, _ := geometry.ClosestPointOnSegment(target, line.Points[i], line.Points[i+1])
		dist := proj.Distance(target)
		if dist < bestDist {
			bestDist = dist
			bestSeg = i
			bestPoint = proj
		}
	}

	return bestSeg, bestPoint, bestSeg >= 0
}

// Handle is a pickable point marker for one point of the selected line
type Handle struct {
	Line     int
	Point    int
	Position geometry.Vector3
}

// PickHandle casts a ray against the handle markers, treated as spheres of
// the given radius, and returns the index of the nearest hit handle.
func PickHandle(ray geometry.Ray, handles []Handle, radius float64) (int, bool) {
	best := -1
	bestT := math.MaxFloat64

	for i := range handles {
		dist := ray.DistanceToPoint(handles[i].Position)
		if dist > radius {
			continue
		}
		t := handles[i].Position.Sub(ray.Origin).Dot(ray.Direction)
		if t >= 0 && t < bestT {
			bestT = t
			best = i
		}
	}

	return best, best >= 0
}
