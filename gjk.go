package collide2d

import "math"

// Simplex is an ordered sequence of one, two, or three Minkowski-
// difference vectors, never containing duplicates. It is built by a
// single GJK descent, consumed by EPA (or the facade's degenerate
// shortcut), and discarded when the query returns.
type Simplex struct {
	pts [3]Vector
	n   int
}

// Points returns the simplex's vertices in construction order.
func (s Simplex) Points() []Vector {
	return s.pts[:s.n]
}

// Len reports how many vertices the simplex currently holds.
func (s Simplex) Len() int {
	return s.n
}

func (s *Simplex) set1(a Vector) {
	s.pts[0] = a
	s.n = 1
}

func (s *Simplex) set2(a, b Vector) {
	s.pts[0], s.pts[1] = a, b
	s.n = 2
}

func (s *Simplex) push(v Vector) {
	s.pts[s.n] = v
	s.n++
}

func (s Simplex) isDuplicate(v Vector, eps float64) bool {
	for i := 0; i < s.n; i++ {
		if s.pts[i].Distance(v) <= eps {
			return true
		}
	}
	return false
}

// gjkOverlap runs the GJK descent: it builds and refines a 1-, 2-, or
// 3-point simplex in Minkowski space until it either contains the
// origin (overlap) or proves no simplex can (no overlap). The returned
// Simplex is only meaningful when overlap is true; EPA (or the
// facade's degenerate-simplex shortcut) consumes it next.
func gjkOverlap(a, b Shape, eps float64, maxIter int) (overlap bool, simplex Simplex) {
	seed := Sub(b.Pos, a.Pos).RightNormal()
	if seed.IsZero() {
		seed = Vector{1, 0}
	}

	s0 := MinkowskiSupport(a, b, seed)
	simplex.set1(s0)
	direction := Negate(s0)

	iterations := 0
	for iterations < maxIter {
		iterations++

		s := MinkowskiSupport(a, b, direction)

		// Progress has stalled: in exact arithmetic this means the
		// origin is outside the Minkowski set.
		if simplex.isDuplicate(s, eps) {
			recordGJKRun(iterations)
			return false, simplex
		}

		simplex.push(s)

		// d points toward the origin; if the farthest reachable point
		// in direction d does not even cross the origin (within EPS
		// slack), the origin is outside the Minkowski set.
		if Dot(s, direction) <= eps {
			recordGJKRun(iterations)
			return false, simplex
		}

		inside, newDirection := refineSimplex(&simplex, eps)
		if inside {
			if simplex.n == 2 {
				// The origin lies on segment pq. Where the Minkowski set
				// reaches off that line on either side, add that support
				// point so EPA can start from a triangle.
				p, q := simplex.pts[0], simplex.pts[1]
				n := Sub(q, p).RightNormal()
				if w := MinkowskiSupport(a, b, n); Dot(Sub(w, p), n) > eps {
					simplex.push(w)
				} else if w := MinkowskiSupport(a, b, Negate(n)); Dot(Sub(p, w), n) > eps {
					simplex.push(w)
				}
			}
			recordGJKRun(iterations)
			return true, simplex
		}
		if newDirection.IsZero() {
			// Degeneracy guard: a zero search direction only occurs
			// when the origin sits exactly on a vertex or edge after
			// reduction. Treat that as containment.
			recordGJKRun(iterations)
			return true, simplex
		}
		direction = newDirection
	}

	// Iteration cap reached: numerical pathology. The conservative
	// policy is to report no overlap rather than guess.
	recordGJKRun(iterations)
	return false, simplex
}

// refineSimplex dispatches to the 2- or 3-point refinement rule.
// simplex always holds 2 or 3 points when this is called: the caller
// starts at 1 point and pushes exactly one point before the first
// call.
func refineSimplex(simplex *Simplex, eps float64) (originInside bool, newDirection Vector) {
	if simplex.n == 3 {
		return refine3(simplex, eps)
	}
	return refine2(simplex, eps)
}

// refine2 classifies the origin against segment ab and either narrows
// the simplex to the nearest vertex or keeps the edge and points the
// search direction at the origin. The "between" test uses ≥0 on both
// ends: strict "<0" fails a vertex-nearest test, so anything not
// strictly nearest a vertex counts as between.
func refine2(simplex *Simplex, eps float64) (originInside bool, newDirection Vector) {
	a, b := simplex.pts[0], simplex.pts[1]

	if Dot(Sub(b, a), Negate(a)) < 0 {
		simplex.set1(a)
		d := Negate(a).NormalizedOrZero()
		return d.IsZero(), d
	}

	if Dot(Sub(a, b), Negate(b)) < 0 {
		simplex.set1(b)
		d := Negate(b).NormalizedOrZero()
		return d.IsZero(), d
	}

	// The origin projects between a and b.
	ab := Sub(b, a)
	toOrigin := Negate(a)
	normal := ab.NormalInDirection(toOrigin)
	if normal.IsZero() {
		// ab is parallel to the direction to the origin: the origin
		// is colinear with the edge.
		return true, Zero
	}

	distance := Dot(normal, toOrigin)
	if math.Abs(distance) <= eps {
		// The origin lies within the EPS-thick strip around ab: the
		// signature robustness trick, treating the edge as a thin
		// strip rather than testing for an exact zero.
		return true, Zero
	}

	return false, normal
}

// refine3 classifies the origin against triangle abc. If the origin
// is outside one of the three edges (by the edge's outward normal,
// the perpendicular pointing away from the triangle's third vertex),
// the excluded vertex is dropped and refine2 runs on the remaining
// edge. Ties (an exactly-zero dot product) fall into the 2-point path,
// which the EPS-strip rule in refine2 then resolves.
func refine3(simplex *Simplex, eps float64) (originInside bool, newDirection Vector) {
	a, b, c := simplex.pts[0], simplex.pts[1], simplex.pts[2]

	abOut := Sub(b, a).NormalInDirection(Sub(a, c))
	bcOut := Sub(c, b).NormalInDirection(Sub(b, a))
	caOut := Sub(a, c).NormalInDirection(Sub(c, b))

	if abOut.IsZero() || bcOut.IsZero() || caOut.IsZero() {
		// A vertex sits exactly on the opposite edge's line: the
		// triangle is degenerate and no reliable outward side exists.
		// Treat conservatively as containment rather than looping.
		return true, Zero
	}

	if Dot(abOut, Negate(a)) > 0 {
		simplex.set2(a, b)
		return refine2(simplex, eps)
	}
	if Dot(bcOut, Negate(b)) > 0 {
		simplex.set2(b, c)
		return refine2(simplex, eps)
	}
	if Dot(caOut, Negate(c)) > 0 {
		simplex.set2(c, a)
		return refine2(simplex, eps)
	}

	return true, Zero
}
