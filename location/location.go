package location

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Epsilon is the tolerance used for every floating-point coordinate
// comparison in this package and in package blend. It is the machine
// epsilon for float64.
const Epsilon = 2.220446049250313e-16

// Location is a finite, immutable mapping from axis-name to a scalar
// coordinate. Axes that are never mentioned are treated as coordinate 0
// by every method below.
//
// The zero value is the geometric origin (no axes at all) and is ready
// to use.
type Location struct {
	coords map[string]float64
}

// New builds a Location from the given axis coordinates. A nil or empty
// map yields the origin. The map is copied; callers may reuse or mutate
// their own map afterwards.
func New(coords map[string]float64) Location {
	if len(coords) == 0 {
		return Location{}
	}
	cp := make(map[string]float64, len(coords))
	for k, v := range coords {
		cp[k] = v
	}
	return Location{coords: cp}
}

// Axis returns a single-axis Location, a shorthand for the common case
// of a master placed on exactly one axis.
func Axis(name string, value float64) Location {
	return New(map[string]float64{name: value})
}

// Origin returns the geometric origin: every axis implicitly 0.
func Origin() Location {
	return Location{}
}

func isZero(v float64) bool {
	return math.Abs(v) <= Epsilon
}

// Get returns the coordinate on the given axis, or 0 if the axis is not
// present.
func (l Location) Get(axis string) float64 {
	return l.coords[axis]
}

// Has reports whether axis was explicitly assigned a coordinate, even if
// that coordinate is 0. Most callers want Get, which treats absence and
// an explicit 0 identically; Has exists for the rare caller that needs
// to distinguish "not mentioned" from "pinned to zero" for bookkeeping
// (e.g. the blend package's per-axis coordinate pool).
func (l Location) Has(axis string) bool {
	_, ok := l.coords[axis]
	return ok
}

// AxisNames returns the explicitly assigned axis names, sorted for
// determinism. It does not include axes that are merely implied to be
// zero by absence.
func (l Location) AxisNames() []string {
	if len(l.coords) == 0 {
		return nil
	}
	names := make([]string, 0, len(l.coords))
	for k := range l.coords {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// nonZeroNames returns the sorted axis names whose coordinate is
// non-zero within Epsilon. This is the set equality and Key are defined
// over: two locations are equal iff their non-zero coordinate sets are
// equal.
func (l Location) nonZeroNames() []string {
	if len(l.coords) == 0 {
		return nil
	}
	names := make([]string, 0, len(l.coords))
	for k, v := range l.coords {
		if !isZero(v) {
			names = append(names, k)
		}
	}
	sort.Strings(names)
	return names
}

// Equal reports whether l and other describe the same point: their
// non-zero coordinates agree. Explicitly-zero and absent axes are
// indistinguishable, so Location{} equals a Location built with every
// coordinate set to 0.
func (l Location) Equal(other Location) bool {
	a, b := l.nonZeroNames(), other.nonZeroNames()
	if len(a) != len(b) {
		return false
	}
	for i, name := range a {
		if b[i] != name {
			return false
		}
		if !isZero(l.Get(name) - other.Get(name)) {
			return false
		}
	}
	return true
}

// Key returns a canonical string identifying the point l describes,
// suitable for use as a map key. Locations that compare Equal produce
// the same Key.
func (l Location) Key() string {
	names := l.nonZeroNames()
	if len(names) == 0 {
		return ""
	}
	var b strings.Builder
	for i, name := range names {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(name)
		b.WriteByte('=')
		b.WriteString(strconv.FormatFloat(l.Get(name), 'g', -1, 64))
	}
	return b.String()
}

// String renders l for diagnostics, e.g. "<Location pop:1, snap:-2>".
func (l Location) String() string {
	names := l.AxisNames()
	if len(names) == 0 {
		return "<Location origin>"
	}
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s:%v", name, l.Get(name))
	}
	return "<Location " + strings.Join(parts, ", ") + ">"
}
