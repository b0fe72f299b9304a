// Package collide2d detects overlap between convex 2D shapes (disks
// and convex polygons) and, when they overlap, computes the minimum
// translation vector that separates them.
//
// The two exact queries, Overlaps and Penetration, are both built on
// GJK (a descent that builds and refines a simplex in Minkowski-
// difference space to test origin containment) and EPA (an expansion
// of that simplex's polytope toward the true Minkowski boundary, used
// only when a translation vector, not just a yes/no answer, is
// needed). BoundingCircleOf and TestOverlapBoundingCircles offer a
// cheap broad-phase rejection ahead of either query; Overlaps already
// applies it internally.
//
// The package does no I/O and holds no shared state beyond the
// diagnostics counters exposed by Stats, which a host may sample but
// which the package itself never reads back.
package collide2d
