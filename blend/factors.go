package blend

import "math"

// linFrac returns the fraction of the distance from lo to hi that v
// represents, with no clamping: 0 at lo, 1 at hi, and values outside
// [0,1] when v extrapolates past either end. Callers that need to
// prevent overshoot clamp separately using a Bracket.
func linFrac(v, lo, hi float64) float64 {
	if hi == lo {
		return 0
	}
	return (v - lo) / (hi - lo)
}

// onAxisFactor computes the piecewise-linear on-axis factor for a
// master at coordinate mv, given the query's coordinate qv and the
// sorted, deduplicated coordinate list for that axis — every on-axis
// master's coordinate plus the synthetic origin sentinel (see
// buildAxisIndex).
//
// The list is partitioned around qv into coordinates below, matching,
// and above it, and the weight follows from which buckets are
// populated:
//
//   - A coordinate matches qv exactly: the master sitting there gets
//     weight 1, every other master 0 — a point a master owns outright
//     is never shared.
//   - qv lies strictly between two coordinates: the two nearest
//     neighbours split the weight linearly; everything else gets 0.
//   - qv lies past every coordinate on one side: the two outermost
//     coordinates on that side extrapolate the line. The outermost
//     master's weight keeps growing past 1 and the second-outermost
//     goes negative, so the blend continues the segment between them
//     linearly instead of flattening. Coordinates further in get 0.
//
// degenerate is true only when mv cannot be located in sorted at all,
// which indicates a caller bug rather than a legitimate sparse axis
// (even a single real master interpolates/extrapolates correctly
// against the sentinel).
func onAxisFactor(qv, mv float64, sorted []float64, eps float64) (factor float64, degenerate bool) {
	eq := func(a, b float64) bool { return math.Abs(a-b) <= eps }

	found := false
	for _, v := range sorted {
		if eq(v, mv) {
			found = true
			break
		}
	}
	if !found {
		return 0, true
	}

	var below, above []float64
	match := false
	for _, v := range sorted {
		switch {
		case v < qv-eps:
			below = append(below, v)
		case v > qv+eps:
			above = append(above, v)
		default:
			match = true
		}
	}

	switch {
	case match:
		if eq(mv, qv) {
			return 1, false
		}
		return 0, false
	case len(below) > 0 && len(above) > 0:
		lo, hi := below[len(below)-1], above[0]
		switch {
		case eq(mv, hi):
			return linFrac(qv, lo, hi), false
		case eq(mv, lo):
			return linFrac(qv, hi, lo), false
		}
		return 0, false
	case len(above) > 1:
		// Query below every coordinate: extrapolate off the two
		// smallest.
		first, second := above[0], above[1]
		switch {
		case eq(mv, first):
			return linFrac(qv, second, first), false
		case eq(mv, second):
			return linFrac(qv, first, second), false
		}
		return 0, false
	case len(below) > 1:
		// Query above every coordinate: extrapolate off the two
		// largest, symmetrically.
		first, second := below[len(below)-1], below[len(below)-2]
		switch {
		case eq(mv, first):
			return linFrac(qv, second, first), false
		case eq(mv, second):
			return linFrac(qv, first, second), false
		}
		return 0, false
	}
	return 0, false
}

// offAxisFactor computes the multiplicative projection factor for an
// off-axis master: the product, over every axis the query and the
// master share (per location.Common), of that axis's linear fraction
// of the query toward the master, clamped by that axis's Bracket as
// clampExtrapolation describes.
func offAxisFactor(shared map[string][2]float64, limits map[string]Bracket) float64 {
	factor := 1.0
	for axis, qm := range shared {
		qv, mv := qm[0], qm[1]
		f := linFrac(qv, 0, mv)
		f = clampExtrapolation(f, qv, mv, limits[axis])
		factor *= f
	}
	return factor
}

// clampExtrapolation limits how far an off-axis factor projects past
// mv on an axis: once qv passes mv (moving away from the origin), the
// factor is held at the value it would have at the next known
// coordinate beyond mv (br.A for a positive mv, br.B for a negative
// one). When mv is the farthest known coordinate on its side, nothing
// lies beyond it and f is returned unchanged, so the projection keeps
// extrapolating linearly.
func clampExtrapolation(f, qv, mv float64, br Bracket) float64 {
	movingAway := (mv >= 0 && qv > mv) || (mv < 0 && qv < mv)
	beyond := br.A
	if mv < 0 {
		beyond = br.B
	}
	if !movingAway || beyond == nil {
		return f
	}
	return linFrac(*beyond, 0, mv)
}
