package collide2d

import "math"

// EPAPenetration refines a GJK simplex that contains the origin into
// a minimum translation vector. It maintains a closed polygonal
// boundary in Minkowski space, initialized to the simplex's vertices,
// and repeatedly walks its closest edge outward toward the true
// Minkowski boundary.
//
// If simplex holds fewer than three vertices (the origin landed on a
// 0- or 1-simplex), there is no well-defined penetration direction;
// EPA is skipped in favor of degenerateShortcut.
func EPAPenetration(a, b Shape, simplex Simplex, eps float64, maxIter int) Vector {
	if simplex.Len() < 3 {
		return degenerateShortcut(a, b, eps)
	}

	polytope := append([]Vector(nil), simplex.Points()...)

	var lastP, lastQ, lastNormal Vector
	iterations := 0

	for iterations < maxIter {
		iterations++

		s0, p, q, normal, ok := closestEdge(polytope)
		if !ok {
			// The polytope encloses no area or has a zero-length edge:
			// it is degenerate. Fall back rather than divide by an
			// undefined direction.
			recordEPARun(iterations)
			return degenerateShortcut(a, b, eps)
		}
		lastP, lastQ, lastNormal = p, q, normal

		w := MinkowskiSupport(a, b, normal)

		if withinEPSOfAny(polytope, w, eps) || Dot(Sub(w, p), normal) <= eps {
			// w adds no new vertex, or lies on e's line within EPS:
			// e is a face of the true Minkowski boundary.
			recordEPARun(iterations)
			return penetrationFromEdge(p, q, normal, eps)
		}

		polytope = insertAfter(polytope, s0, w)
	}

	// Iteration cap reached: numerical pathology. Return the
	// best-so-far edge result rather than diverge.
	recordEPARun(iterations)
	return penetrationFromEdge(lastP, lastQ, lastNormal, eps)
}

// closestEdge finds the edge of the polytope (in order) minimizing
// the perpendicular distance from the origin to its infinite line,
// ties broken by lowest index. The outward normal of each edge points
// away from the polygon interior: it is the edge's right normal when
// the polytope winds counter-clockwise and its negation otherwise, so
// it stays well defined even when neighbouring vertices are collinear.
func closestEdge(polytope []Vector) (index int, p, q, normal Vector, ok bool) {
	n := len(polytope)
	closestDistance := math.Inf(1)

	// Twice the signed area: positive for a counter-clockwise winding.
	area := 0.0
	for s0 := 0; s0 < n; s0++ {
		area += Cross(polytope[s0], polytope[(s0+1)%n])
	}
	if area == 0 {
		return 0, Zero, Zero, Zero, false
	}

	for s0 := 0; s0 < n; s0++ {
		s1 := (s0 + 1) % n

		edgeNormal := Sub(polytope[s1], polytope[s0]).RightNormal()
		if area < 0 {
			edgeNormal = Negate(edgeNormal)
		}
		if edgeNormal.IsZero() {
			return 0, Zero, Zero, Zero, false
		}

		distance := Dot(edgeNormal, polytope[s0])
		if distance < closestDistance {
			closestDistance = distance
			index, p, q, normal = s0, polytope[s0], polytope[s1], edgeNormal
		}
	}

	return index, p, q, normal, true
}

// withinEPSOfAny reports whether w has converged onto the existing
// polytope: within EPS of any vertex already present, including both
// endpoints of the edge under test.
func withinEPSOfAny(polytope []Vector, w Vector, eps float64) bool {
	for _, v := range polytope {
		if v.Distance(w) < eps {
			return true
		}
	}
	return false
}

// insertAfter inserts w immediately after index s0 in the polytope,
// preserving order and turning the old edge (s0, s0+1) into two edges
// (s0, w) and (w, s0+1).
func insertAfter(polytope []Vector, s0 int, w Vector) []Vector {
	s1 := s0 + 1
	out := make([]Vector, 0, len(polytope)+1)
	out = append(out, polytope[:s1]...)
	out = append(out, w)
	out = append(out, polytope[s1:]...)
	return out
}

// penetrationFromEdge projects the origin onto the line through p and
// q and returns the minimum translation vector: the direction from
// the origin to that foot, scaled by the distance to the foot plus a
// small outward margin so the resolved configuration is just
// non-overlapping rather than tangent.
func penetrationFromEdge(p, q, normal Vector, eps float64) Vector {
	u := Sub(q, p).NormalizedOrZero()
	t := Dot(u, Negate(p))
	foot := Add(p, Scale(u, t))

	direction := foot.NormalizedOrZero()
	if direction.IsZero() {
		// The foot lands exactly on the origin (the boundary passes
		// through it): fall back to the edge's outward normal.
		direction = normal
		if direction.IsZero() {
			direction = Vector{1, 0}
		}
	}

	return Scale(direction, foot.Length()+eps)
}

// degenerateShortcut returns the fallback nudge used when no
// well-defined penetration direction exists: the direction from A to
// B, scaled by EPS, defaulting to (EPS, 0) when the two positions
// coincide.
func degenerateShortcut(a, b Shape, eps float64) Vector {
	direction := Sub(b.Pos, a.Pos).NormalizedOrZero()
	if direction.IsZero() {
		direction = Vector{1, 0}
	}
	return Scale(direction, eps)
}
