package geometry

import "math"

// BoundingBox is an axis-aligned box spanning Min to Max
type BoundingBox struct {
	Min Vector3
	Max Vector3
}

// NewBoundingBox creates an empty bounding box ready to be extended
func NewBoundingBox() BoundingBox {
	return BoundingBox{
		Min: NewVector3(math.MaxFloat64, math.MaxFloat64, math.MaxFloat64),
		Max: NewVector3(-math.MaxFloat64, -math.MaxFloat64, -math.MaxFloat64),
	}
}

// Extend grows the box to include the given point
func (b *BoundingBox) Extend(point Vector3) {
	b.Min = b.Min.Min(point)
	b.Max = b.Max.Max(point)
}

// Center returns the center of the box
func (b BoundingBox) Center() Vector3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Size returns the extents of the box along each axis
func (b BoundingBox) Size() Vector3 {
	return b.Max.Sub(b.Min)
}

// MaxDimension returns the largest extent of the box
func (b BoundingBox) MaxDimension() float64 {
	size := b.Size()
	return math.Max(size.X, math.Max(size.Y, size.Z))
}

// IsEmpty reports whether the box was never extended
func (b BoundingBox) IsEmpty() bool {
	return b.Min.X > b.Max.X
}
