package geometry

// Ray is a half-line defined by an origin and a unit direction
type Ray struct {
	Origin    Vector3
	Direction Vector3
}

// NewRay creates a ray, normalizing the direction
func NewRay(origin, direction Vector3) Ray {
	return Ray{Origin: origin, Direction: direction.Normalize()}
}

// Point returns the point at distance t along the ray
func (r Ray) Point(t float64) Vector3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// DistanceToPoint returns the distance from the ray to a point,
// clamped so that points behind the origin measure to the origin
func (r Ray) DistanceToPoint(point Vector3) float64 {
	t := point.Sub(r.Origin).Dot(r.Direction)
	if t < 0 {
		t = 0
	}
	return point.Distance(r.Point(t))
}

// DistanceToSegment returns the shortest distance between the ray and the
// segment [a, b], plus the ray parameter of the closest approach and the
// clamped segment parameter in [0, 1].
func (r Ray) DistanceToSegment(a, b Vector3) (dist, rayT, segT float64) {
	ab := b.Sub(a)
	length := ab.Length()
	if length == 0 {
		rayT = a.Sub(r.Origin).Dot(r.Direction)
		if rayT < 0 {
			rayT = 0
		}
		return a.Distance(r.Point(rayT)), rayT, 0
	}
	dir := ab.Mul(1.0 / length)

	// Closest approach of two lines, then clamp to the segment and ray.
	w := r.Origin.Sub(a)
	dd := r.Direction.Dot(dir)
	denom := 1 - dd*dd
	var s float64
	if denom > 1e-12 {
		s = (w.Dot(dir) - w.Dot(r.Direction)*dd) / denom
	}
	if s < 0 {
		s = 0
	} else if s > length {
		s = length
	}

	onSegment := a.Add(dir.Mul(s))
	rayT = onSegment.Sub(r.Origin).Dot(r.Direction)
	if rayT < 0 {
		rayT = 0
	}
	return onSegment.Distance(r.Point(rayT)), rayT, s / length
}

// Plane is defined by a point on the plane and its normal
type Plane struct {
	Point  Vector3
	Normal Vector3
}

// IntersectPlane returns the intersection of the ray with the plane.
// Returns false when the ray is parallel to the plane or the intersection
// lies behind the ray origin.
func (r Ray) IntersectPlane(p Plane) (Vector3, bool) {
	denom := r.Direction.Dot(p.Normal)
	if denom > -1e-9 && denom < 1e-9 {
		return Vector3{}, false
	}
	t := p.Point.Sub(r.Origin).Dot(p.Normal) / denom
	if t < 0 {
		return Vector3{}, false
	}
	return r.Point(t), true
}

// ClosestPointOnSegment projects p onto the segment [a, b], clamped to the
// segment bounds. Returns the projected point and its parameter in [0, 1].
func ClosestPointOnSegment(p, a, b Vector3) (Vector3, float64) {
	ab := b.Sub(a)
	lenSq := ab.Dot(ab)
	if lenSq == 0 {
		return a, 0
	}
	t := p.Sub(a).Dot(ab) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return a.Add(ab.Mul(t)), t
}
