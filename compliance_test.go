package collide2d

import (
	"fmt"
	"strings"
	"testing"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/stretchr/testify/require"
)

// scenario is one named check in the compliance report: a predicate
// over the package's public API, expected to hold.
type scenario struct {
	name string
	ok   func() bool
}

// runComplianceReport runs every scenario in order and renders a
// report with one "<name>: ok"/"<name>: FAIL" line per scenario. It
// is compared line-by-line against an all-ok golden report, and on
// mismatch the unified diff pinpoints exactly which scenarios regressed
// rather than dumping every passing line along with the failures.
func runComplianceReport(scenarios []scenario) string {
	var b strings.Builder
	for _, s := range scenarios {
		status := "ok"
		if !s.ok() {
			status = "FAIL"
		}
		fmt.Fprintf(&b, "%s: %s\n", s.name, status)
	}
	return b.String()
}

func goldenReport(scenarios []scenario) string {
	var b strings.Builder
	for _, s := range scenarios {
		fmt.Fprintf(&b, "%s: ok\n", s.name)
	}
	return b.String()
}

// TestComplianceReport exercises the same scenario families as the
// algorithm's original acceptance tests — convexity validation,
// identical polygons overlapping at and away from the origin, the
// non-overlapping case, and overlapping disks — end to end through the
// public facade, and reports any regression as
// a unified diff against an all-passing baseline.
func TestComplianceReport(t *testing.T) {
	halfWidth := 0.1
	square := squareCorners(halfWidth)

	scenarios := []scenario{
		{"valid polygon, clockwise winding", func() bool {
			_, err := TryMakePolygon([]Vector{{0, 0}, {0, 1}, {1, 1}})
			return err == nil
		}},
		{"valid polygon, anti-clockwise winding", func() bool {
			_, err := TryMakePolygon([]Vector{{0, 0}, {1, 0}, {1, 1}})
			return err == nil
		}},
		{"invalid polygon, collinear triple", func() bool {
			_, err := TryMakePolygon([]Vector{{2, 0}, {1, 1}, {2, 1}, {3, 1}})
			return err != nil
		}},
		{"invalid polygon, concave", func() bool {
			_, err := TryMakePolygon([]Vector{{0, 0}, {0, 1}, {1, 1}, {0.1, 0.9}})
			return err != nil
		}},
		{"invalid polygon, duplicate corners", func() bool {
			_, err := TryMakePolygon([]Vector{{0, 0}, {0, 0}, {1, 0}, {0, 1}})
			return err != nil
		}},
		{"identical polygons overlap at origin", func() bool {
			a, _ := TryMakePolygon(square)
			b, _ := TryMakePolygon(square)
			return Overlaps(a, b, nil)
		}},
		{"identical polygons overlap away from origin", func() bool {
			a, _ := TryMakePolygon(square)
			b, _ := TryMakePolygon(square)
			a.Pos, b.Pos = Vector{124.32, 74.428}, Vector{124.32, 74.428}
			return Overlaps(a, b, nil)
		}},
		{"far apart polygons do not overlap", func() bool {
			a, _ := TryMakePolygon(square)
			b, _ := TryMakePolygon(square)
			a.Pos, b.Pos = Vector{-10, 3}, Vector{10, 3}
			return !Overlaps(a, b, nil)
		}},
		{"far apart polygons have zero penetration", func() bool {
			a, _ := TryMakePolygon(square)
			b, _ := TryMakePolygon(square)
			a.Pos, b.Pos = Vector{-10, 3}, Vector{10, 3}
			return Penetration(a, b, nil).IsZero()
		}},
		{"overlapping disks", func() bool {
			a, _ := MakeDisk(1)
			b, _ := MakeDisk(1)
			b.Pos = Vector{1.5, 0}
			return Overlaps(a, b, nil)
		}},
	}

	got := runComplianceReport(scenarios)
	want := goldenReport(scenarios)

	if got != want {
		diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
			A:        difflib.SplitLines(want),
			B:        difflib.SplitLines(got),
			FromFile: "expected",
			ToFile:   "actual",
			Context:  2,
		})
		require.NoError(t, err)
		t.Fatalf("compliance report regressed:\n%s", diff)
	}
}
