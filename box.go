package bezmesh

import (
	"fmt"
	"math"
)

// Box is an axis-aligned bounding box.
type Box struct {
	Min Vec3
	Max Vec3
}

// EmptyBox returns a box that contains no points. Its union with any point is
// the box containing only that point.
func EmptyBox() Box {
	inf := math.Inf(1)
	return Box{
		Min: Vec(inf, inf, inf),
		Max: Vec(-inf, -inf, -inf),
	}
}

// NewBoxFromPoints returns the smallest box containing all of pts. It returns
// an empty box if pts is empty.
func NewBoxFromPoints(pts ...Vec3) Box {
	b := EmptyBox()
	for _, pt := range pts {
		b = b.UnionPoint(pt)
	}
	return b
}

func (b Box) String() string {
	return fmt.Sprintf("Box(%v – %v)", b.Min, b.Max)
}

// IsEmpty reports whether the box contains no points.
func (b Box) IsEmpty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z
}

// Size returns the extents of the box along each axis.
func (b Box) Size() Vec3 {
	if b.IsEmpty() {
		return Vec3{}
	}
	return b.Max.Sub(b.Min)
}

func (b Box) Center() Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Contains reports whether pt lies inside the box or on its boundary.
func (b Box) Contains(pt Vec3) bool {
	return pt.X >= b.Min.X && pt.X <= b.Max.X &&
		pt.Y >= b.Min.Y && pt.Y <= b.Max.Y &&
		pt.Z >= b.Min.Z && pt.Z <= b.Max.Z
}

// Union returns the smallest box enclosing b and o.
func (b Box) Union(o Box) Box {
	return Box{
		Min: b.Min.Min(o.Min),
		Max: b.Max.Max(o.Max),
	}
}

// UnionPoint returns the smallest box enclosing b and pt.
func (b Box) UnionPoint(pt Vec3) Box {
	return Box{
		Min: b.Min.Min(pt),
		Max: b.Max.Max(pt),
	}
}

// PatchBounds returns the bounding box of the control points of p. By the
// convex hull property of Bézier patches, it encloses the whole surface.
func PatchBounds(p Patch[Vec3]) Box {
	return NewBoxFromPoints(p.points...)
}
