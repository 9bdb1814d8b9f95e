package blend

import (
	"sort"

	"github.com/katalvlaran/blendspace/algebra"
	"github.com/katalvlaran/blendspace/location"
)

// evalAt blends every stored delta against loc under mode, returning
// the surviving contributions sorted by Factor descending, with equal
// factors ordered by location.Less on the delta's location. Sorting
// this way before summation (done by the callers below) keeps the
// result bit-reproducible regardless of map iteration order.
func (m *Mutator) evalAt(loc location.Location, mode EvalMode) []Contribution {
	m.buildAxisIndex()

	var contributions []Contribution
	for _, d := range m.deltas {
		class, axis := d.Location.Classify()
		switch class {
		case location.ClassOrigin:
			continue
		case location.ClassOnAxis:
			qv := loc.Get(axis)
			mv := d.Location.Get(axis)
			f, degenerate := onAxisFactor(qv, mv, m.axisIndex[axis], m.cfg.epsilon)
			if f == 0 && !degenerate {
				continue
			}
			contributions = append(contributions, Contribution{
				Delta: d, Factor: f, Class: class, Axis: axis, Degenerate: degenerate,
			})
		case location.ClassOffAxis:
			if mode == AxisOnly {
				continue
			}
			selfOut, otherOut, ok := loc.Common(d.Location)
			if !ok {
				continue
			}
			shared := make(map[string][2]float64)
			limits := make(map[string]Bracket)
			for _, axis := range selfOut.AxisNames() {
				shared[axis] = [2]float64{selfOut.Get(axis), otherOut.Get(axis)}
				limits[axis] = m.limitsFor(axis, otherOut.Get(axis))
			}
			f := offAxisFactor(shared, limits)
			if f == 0 {
				continue
			}
			contributions = append(contributions, Contribution{
				Delta: d, Factor: f, Class: class,
			})
		}
	}
	sort.SliceStable(contributions, func(i, j int) bool {
		if contributions[i].Factor != contributions[j].Factor {
			return contributions[i].Factor > contributions[j].Factor
		}
		return location.Less(contributions[i].Delta.Location, contributions[j].Delta.Location)
	})
	return contributions
}

// sumContributions folds contributions onto base, in the order given
// (callers pass factor-descending order for deterministic summation).
func sumContributions(base algebra.Value, contributions []Contribution) algebra.Value {
	result := base
	for _, c := range contributions {
		result = result.Add(c.Delta.Value.Scale(c.Factor))
	}
	return result
}

// Factors returns the diagnostic breakdown of every delta that
// contributes a non-zero factor to q, sorted by Factor descending, plus
// any on-axis delta flagged Degenerate (which carries factor 0). It
// does not include the neutral itself. Like GetInstance, q is given in
// bias-relative (delta-space) coordinates.
func (m *Mutator) Factors(q Query) ([]Contribution, error) {
	if !m.hasNeutral {
		return nil, ErrUninitialisedNeutral
	}
	locs := q.Locations()
	contributions := m.evalAt(locs[0], Full)
	if len(locs) == 1 {
		return contributions, nil
	}
	contributions = append(contributions, m.evalAt(locs[1], Full)...)
	sort.SliceStable(contributions, func(i, j int) bool {
		return contributions[i].Factor > contributions[j].Factor
	})
	return contributions, nil
}

// GetInstance blends the Mutator at q under mode and returns the
// result without adding the neutral back in (a pure delta). Most
// callers want MakeInstance; GetInstance exists for the builder's
// punch step, which needs the already-interpolated delta at a location
// before a new master is inserted there.
func (m *Mutator) GetInstance(q Query, mode EvalMode) (algebra.Value, error) {
	if !m.hasNeutral {
		return nil, ErrUninitialisedNeutral
	}
	zero := m.neutral.Scale(0)
	if q.IsPaired() {
		locs := q.Locations()
		a := sumContributions(zero, m.evalAt(locs[0], mode))
		b := sumContributions(zero, m.evalAt(locs[1], mode))
		return a.ScalePair(1, 0).Add(b.ScalePair(0, 1)), nil
	}
	return sumContributions(zero, m.evalAt(q.Locations()[0], mode)), nil
}

// MakeInstance blends the Mutator at q and adds the neutral back in,
// producing the full interpolated object. Unlike GetInstance, q is
// given in absolute (caller-facing) coordinates: MakeInstance shifts it
// by -bias before evaluating, since every stored delta lives in
// bias-relative coordinates (see location.Location.Subtract in Build).
func (m *Mutator) MakeInstance(q Query) (algebra.Value, error) {
	if !m.hasNeutral {
		return nil, ErrUninitialisedNeutral
	}
	if q.IsPaired() {
		locs := q.Locations()
		a := sumContributions(m.neutral, m.evalAt(locs[0].Subtract(m.bias), Full))
		b := sumContributions(m.neutral, m.evalAt(locs[1].Subtract(m.bias), Full))
		return a.ScalePair(1, 0).Add(b.ScalePair(0, 1)), nil
	}
	rel := q.Locations()[0].Subtract(m.bias)
	return sumContributions(m.neutral, m.evalAt(rel, Full)), nil
}
