package blend

import (
	"sort"
)

// Bracket is the (below, match, above) triple used to bound a single
// axis's contribution to an off-axis projection: the nearest known
// coordinate strictly below the target, the coordinate matching it (if
// any), and the nearest known coordinate strictly above it. Any slot
// may be nil when no such coordinate exists.
//
// The math only ever reads the middle slot as a scalar, so it is a
// single representative *float64 even when several masters coincide
// there. See DESIGN.md.
type Bracket struct {
	B, M, A *float64
}

// axisPool collects every coordinate any stored delta carries on axis,
// deduplicated and sorted ascending. Unlike the on-axis index
// buildAxisIndex builds (which only considers on-axis masters plus the
// synthetic sentinel), the pool backing a Bracket draws on every
// delta's coordinate on axis, on-axis or not: an off-axis master still
// bounds how far another off-axis master on the same axis may
// extrapolate.
func (m *Mutator) axisPool(axis string) []float64 {
	var coords []float64
	for _, d := range m.deltas {
		if d.Location.Has(axis) {
			coords = append(coords, d.Location.Get(axis))
		}
	}
	coords = append(coords, axisSentinel)
	sort.Float64s(coords)
	return dedupeSorted(coords, m.cfg.epsilon)
}

// computeLimits finds the Bracket for target within the sorted,
// deduplicated coordinate pool: B is set to the largest value still
// below target, M to the value matching it (within eps), and A is set
// once, to the first value above target, after which the scan stops —
// any further coordinates are farther from target and cannot tighten
// the bracket.
func computeLimits(pool []float64, target, eps float64) Bracket {
	var br Bracket
	for _, v := range pool {
		switch {
		case v < target-eps:
			val := v
			br.B = &val
		case v > target+eps:
			val := v
			br.A = &val
			return br
		default:
			val := v
			br.M = &val
		}
	}
	return br
}

// limitsFor returns the Bracket bounding coordinate on axis among every
// coordinate any stored delta carries there.
func (m *Mutator) limitsFor(axis string, coordinate float64) Bracket {
	pool := m.axisPool(axis)
	return computeLimits(pool, coordinate, m.cfg.epsilon)
}
