package collide2d

// Overlaps reports whether shapes A and B intersect. It first runs a
// cheap bounding-circle rejection; a pair that clears it falls through
// to an exact GJK descent. A nil t uses DefaultTunables().
func Overlaps(a, b Shape, t *Tunables) bool {
	tunables := resolveTunables(t)

	if !TestOverlapBoundingCircles(BoundingCircleOf(a), BoundingCircleOf(b)) {
		return false
	}

	eps := lineThicknessEPS(a, b, tunables)
	overlap, _ := gjkOverlap(a, b, eps, tunables.GJKMaxIter)
	return overlap
}

// Penetration returns the minimum translation vector that separates A
// and B: a world-space vector such that translating B by it (or A by
// its negation) just clears the overlap. It is the zero Vector when A
// and B do not overlap. A nil t uses DefaultTunables().
//
// Penetration always runs its own GJK descent rather than accept a
// precomputed overlap result, because EPA needs the simplex GJK ended
// on, not merely its true/false verdict.
func Penetration(a, b Shape, t *Tunables) Vector {
	tunables := resolveTunables(t)
	eps := lineThicknessEPS(a, b, tunables)

	overlap, simplex := gjkOverlap(a, b, eps, tunables.GJKMaxIter)
	if !overlap {
		return Zero
	}

	return EPAPenetration(a, b, simplex, eps, tunables.EPAMaxIter)
}
