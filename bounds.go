package slideview

import "math"

// BoundingBox represents an axis-aligned bounding box, as gathered from every renderable triangle of a loaded asset.
// A non-empty BoundingBox always has Min <= Max on each axis; a box with zero width, height, or depth is still valid.
type BoundingBox struct {
	Min Vector
	Max Vector
}

// NewBoundingBox returns an empty BoundingBox, ready to be grown with Extend(). An empty box has Min above Max on each axis.
func NewBoundingBox() BoundingBox {
	return BoundingBox{
		Min: Vector{math.MaxFloat64, math.MaxFloat64, math.MaxFloat64},
		Max: Vector{-math.MaxFloat64, -math.MaxFloat64, -math.MaxFloat64},
	}
}

// NewBoundingBoxFromPoints returns the smallest BoundingBox containing each point given.
func NewBoundingBoxFromPoints(points ...Vector) BoundingBox {
	box := NewBoundingBox()
	for _, p := range points {
		box = box.Extend(p)
	}
	return box
}

// Extend returns a copy of the BoundingBox grown to include the point given.
func (box BoundingBox) Extend(point Vector) BoundingBox {
	box.Min = box.Min.Min(point)
	box.Max = box.Max.Max(point)
	return box
}

// Union returns a copy of the BoundingBox grown to include the other BoundingBox. Empty boxes are ignored.
func (box BoundingBox) Union(other BoundingBox) BoundingBox {
	if other.IsEmpty() {
		return box
	}
	return box.Extend(other.Min).Extend(other.Max)
}

// IsEmpty returns true if the BoundingBox hasn't had any points added to it.
func (box BoundingBox) IsEmpty() bool {
	return box.Min.X > box.Max.X || box.Min.Y > box.Max.Y || box.Min.Z > box.Max.Z
}

// Size returns the width, height, and depth of the BoundingBox. An empty box has a size of zero.
func (box BoundingBox) Size() Vector {
	if box.IsEmpty() {
		return Vector{}
	}
	return box.Max.Sub(box.Min)
}

// Center returns the center point of the BoundingBox.
func (box BoundingBox) Center() Vector {
	if box.IsEmpty() {
		return Vector{}
	}
	return box.Min.Add(box.Max).Scale(0.5)
}

// MaxDimension returns the largest of the BoundingBox's width, height, and depth.
func (box BoundingBox) MaxDimension() float64 {
	return box.Size().MaxComponent()
}

// Corners returns the eight corners of the BoundingBox.
func (box BoundingBox) Corners() [8]Vector {
	return [8]Vector{
		{box.Min.X, box.Min.Y, box.Min.Z},
		{box.Max.X, box.Min.Y, box.Min.Z},
		{box.Min.X, box.Max.Y, box.Min.Z},
		{box.Max.X, box.Max.Y, box.Min.Z},
		{box.Min.X, box.Min.Y, box.Max.Z},
		{box.Max.X, box.Min.Y, box.Max.Z},
		{box.Min.X, box.Max.Y, box.Max.Z},
		{box.Max.X, box.Max.Y, box.Max.Z},
	}
}

// Transform returns the axis-aligned BoundingBox that contains this box after being transformed by the Matrix4 given.
// Rotated boxes grow to fit, as with any AABB.
func (box BoundingBox) Transform(transform Matrix4) BoundingBox {
	if box.IsEmpty() {
		return box
	}
	out := NewBoundingBox()
	for _, c := range box.Corners() {
		out = out.Extend(transform.MultVec(c))
	}
	return out
}
