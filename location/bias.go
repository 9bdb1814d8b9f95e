package location

import (
	"math"
	"sort"
)

// Less defines the deterministic total order every package in
// blendspace sorts locations by: it walks both locations' sorted axis
// names position by position, comparing the axis name first and, when
// the names match, the coordinate on that axis; if one name list is a
// prefix of the other, the shorter location comes first. It exists so
// that bias selection, builder input ordering, and the factor engine's
// ordering of equal factors all agree on one tie-break regardless of
// map iteration order.
func Less(a, b Location) bool {
	an, bn := a.AxisNames(), b.AxisNames()
	for i := 0; i < len(an) && i < len(bn); i++ {
		if an[i] != bn[i] {
			return an[i] < bn[i]
		}
		av, bv := a.Get(an[i]), b.Get(an[i])
		if av != bv {
			return av < bv
		}
	}
	return len(an) < len(bn)
}

// Sort sorts locations in place using Less, giving every caller that
// needs a deterministic processing order (the builder, most notably) a
// single shared definition of "in order".
func Sort(locations []Location) {
	sort.Slice(locations, func(i, j int) bool {
		return Less(locations[i], locations[j])
	})
}

func norm(l Location) float64 {
	var sumSq float64
	for _, name := range l.AxisNames() {
		v := l.Get(name)
		sumSq += v * v
	}
	return math.Sqrt(sumSq)
}

// BiasFrom picks the location, among candidates, best suited to serve
// as the origin of the delta coordinate system: the one that, once
// subtracted from every other candidate, maximises the number of
// "clean" residuals (origin or on-axis). Ties are broken first by
// distance from the geometric origin (closest wins), then by Less.
//
// BiasFrom returns the zero Location if candidates is empty.
func BiasFrom(candidates []Location) Location {
	if len(candidates) == 0 {
		return Origin()
	}
	type scored struct {
		loc   Location
		clean int
		dist  float64
	}
	best := scored{dist: math.Inf(1)}
	haveBest := false
	for _, c := range candidates {
		clean := 0
		for _, other := range candidates {
			class, _ := other.Subtract(c).Classify()
			if class == ClassOrigin || class == ClassOnAxis {
				clean++
			}
		}
		dist := norm(c)
		cand := scored{loc: c, clean: clean, dist: dist}
		if !haveBest {
			best, haveBest = cand, true
			continue
		}
		switch {
		case cand.clean > best.clean:
			best = cand
		case cand.clean < best.clean:
			// keep current best
		case cand.dist < best.dist-Epsilon:
			best = cand
		case cand.dist > best.dist+Epsilon:
			// keep current best
		case Less(cand.loc, best.loc):
			best = cand
		}
	}
	return best.loc
}
