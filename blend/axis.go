package blend

import (
	"sort"

	"github.com/katalvlaran/blendspace/location"
)

// axisSentinel is the synthetic (axis, 0) master every axis implicitly
// carries: the neutral itself always qualifies as an interpolation
// endpoint, even when no real on-axis master was ever placed at 0.
// buildAxisIndex inserts it into every axis's coordinate list, so
// onAxisFactor brackets against it exactly as it would against a real
// master sitting at the origin.
const axisSentinel = 0.0

// buildAxisIndex is the one-time (sync.Once-guarded) construction of
// the per-axis sorted coordinate lists used by onAxisFactor: every
// on-axis master's coordinate plus the synthetic origin sentinel. It
// is built lazily, on first query, rather than eagerly at construction
// time: many Mutators are queried only once or twice, and the index
// itself never changes afterwards, so paying for it once behind a
// publish barrier is cheaper than building it speculatively in Build.
func (m *Mutator) buildAxisIndex() {
	m.axisOnce.Do(func() {
		index := make(map[string][]float64)
		for _, d := range m.deltas {
			class, axis := d.Location.Classify()
			if class != location.ClassOnAxis {
				continue
			}
			index[axis] = append(index[axis], d.Location.Get(axis))
		}
		for axis, coords := range index {
			coords = append(coords, axisSentinel)
			sort.Float64s(coords)
			index[axis] = dedupeSorted(coords, m.cfg.epsilon)
		}
		m.axisIndex = index
	})
}

// dedupeSorted collapses runs of values within eps of each other into a
// single representative, keeping the list buildAxisIndex produces free
// of near-duplicate brackets.
func dedupeSorted(sorted []float64, eps float64) []float64 {
	if len(sorted) == 0 {
		return sorted
	}
	out := sorted[:1]
	for _, v := range sorted[1:] {
		if v-out[len(out)-1] > eps {
			out = append(out, v)
		}
	}
	return out
}
