package blend

import "github.com/katalvlaran/blendspace/location"

// queryKind distinguishes an ordinary query from an ambivalent one.
type queryKind int

const (
	kindSingle queryKind = iota
	kindPaired
)

// Query is what MakeInstance and GetInstance accept: either a single
// location, or a pair of locations whose results are combined with
// independent (1,0)/(0,1) masks via Value.ScalePair. Ambivalence lives
// here, at the engine boundary, rather than inside Location itself —
// see DESIGN.md.
type Query struct {
	kind  queryKind
	first location.Location
	// second is only meaningful when kind == kindPaired.
	second location.Location
}

// Single builds an ordinary, unambivalent query at loc.
func Single(loc location.Location) Query {
	return Query{kind: kindSingle, first: loc}
}

// Paired builds an ambivalent query: the result is the blend at a,
// masked to its first component, plus the blend at b, masked to its
// second component. a and b are typically the same location on every
// axis but one.
func Paired(a, b location.Location) Query {
	return Query{kind: kindPaired, first: a, second: b}
}

// IsPaired reports whether q was built with Paired.
func (q Query) IsPaired() bool {
	return q.kind == kindPaired
}

// Locations returns the location(s) making up q: one for Single, two
// for Paired.
func (q Query) Locations() []location.Location {
	if q.kind == kindPaired {
		return []location.Location{q.first, q.second}
	}
	return []location.Location{q.first}
}
