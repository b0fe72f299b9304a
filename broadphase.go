package collide2d

// BoundingCircle is a cheap conservative bound on a Shape's world-space
// extent: every point of the shape lies within Radius of Center. It
// gives callers a fast, allocation-free rejection test ahead of an
// exact GJK/EPA query.
type BoundingCircle struct {
	Center Vector
	Radius float64
}

// BoundingCircleOf computes shape's bounding circle: its position as
// center, and its precomputed bounding radius (the disk's own radius,
// or a polygon's farthest corner distance) as the radius. Because
// rotation does not move a corner farther from the shape's own origin,
// the radius is independent of Angle and never needs recomputing when
// only Angle changes.
func BoundingCircleOf(shape Shape) BoundingCircle {
	return BoundingCircle{
		Center: shape.Pos,
		Radius: shape.boundingRadiusOf(),
	}
}

// TestOverlapBoundingCircles reports whether two bounding circles might
// overlap: the cheap necessary condition a precise query can still
// refute. A false result is conclusive; a true result only means the
// pair is worth the exact query.
func TestOverlapBoundingCircles(a, b BoundingCircle) bool {
	r := a.Radius + b.Radius
	return a.Center.Distance(b.Center) <= r
}
