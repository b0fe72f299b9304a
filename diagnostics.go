package collide2d

// Package-level call/iteration counters. They exist purely for a host
// application to sample; nothing in this package reads them to make a
// decision.
//
// They are plain package variables, not atomics: concurrent queries
// racing on them is a known, documented limitation. Queries themselves
// need no synchronization; these counters are the one piece of shared
// state that opts out of that guarantee.
var (
	gjkCalls      int
	gjkIterations int
	gjkMaxIters   int

	epaCalls      int
	epaIterations int
	epaMaxIters   int
)

// DiagnosticsSnapshot is a point-in-time copy of the counters.
type DiagnosticsSnapshot struct {
	GJKCalls      int
	GJKIterations int
	GJKMaxIters   int

	EPACalls      int
	EPAIterations int
	EPAMaxIters   int
}

// Stats returns the current diagnostics counters.
func Stats() DiagnosticsSnapshot {
	return DiagnosticsSnapshot{
		GJKCalls:      gjkCalls,
		GJKIterations: gjkIterations,
		GJKMaxIters:   gjkMaxIters,
		EPACalls:      epaCalls,
		EPAIterations: epaIterations,
		EPAMaxIters:   epaMaxIters,
	}
}

// ResetStats zeroes every counter. Intended for test isolation.
func ResetStats() {
	gjkCalls, gjkIterations, gjkMaxIters = 0, 0, 0
	epaCalls, epaIterations, epaMaxIters = 0, 0, 0
}

func recordGJKRun(iterations int) {
	gjkCalls++
	gjkIterations += iterations
	if iterations > gjkMaxIters {
		gjkMaxIters = iterations
	}
}

func recordEPARun(iterations int) {
	epaCalls++
	epaIterations += iterations
	if iterations > epaMaxIters {
		epaMaxIters = iterations
	}
}
