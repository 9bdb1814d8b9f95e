package blend

import (
	"sort"
	"sync"

	"github.com/katalvlaran/blendspace/algebra"
	"github.com/katalvlaran/blendspace/location"
)

// EvalMode selects how much of the delta table a query is allowed to
// draw on. It is an explicit enum rather than a bare bool so that call
// sites read as what they do.
type EvalMode int

const (
	// Full blends on-axis and off-axis deltas. This is what MakeInstance
	// uses for every ordinary query.
	Full EvalMode = iota
	// AxisOnly restricts the blend to on-axis deltas, ignoring any
	// off-axis master. The builder uses this while punching off-axis
	// deltas, so an off-axis master absorbs only the residual the axis
	// masters cannot already explain.
	AxisOnly
)

// Delta is one stored entry in the Mutator: a value expressed as a
// difference from the neutral, keyed by its location, with an optional
// diagnostic name carried through from the caller (it never
// participates in the math).
type Delta struct {
	Location location.Location
	Value    algebra.Value
	Name     string
}

// Contribution is one surviving term of a blend: the factor the engine
// assigned to Delta, alongside a diagnostic classification. Factors
// returns these sorted by Factor descending, which is also the order
// GetInstance sums them in.
type Contribution struct {
	Delta      Delta
	Factor     float64
	Class      location.AxisClass
	Axis       string // set when Class == location.ClassOnAxis
	Degenerate bool   // true when Class == location.ClassOnAxis and the
	// delta's own coordinate could not be located in the axis index;
	// this indicates an internal inconsistency, not a legitimate sparse
	// axis (see onAxisFactor).
}

// Item is one raw (location, value) sample handed to Build.
type Item struct {
	Location location.Location
	Value    algebra.Value
	Name     string
}

// Option configures a Mutator at construction time.
type Option func(*config)

type config struct {
	epsilon float64
}

func newConfig(opts ...Option) config {
	cfg := config{epsilon: location.Epsilon}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithEpsilon overrides the tolerance used for the blend package's own
// coordinate comparisons: axis-index deduplication, on-axis bucketing,
// and the limits brackets. The default is location.Epsilon (machine
// epsilon for float64). Location classification, equality, keys, and
// Common in package location always use location.Epsilon.
func WithEpsilon(eps float64) Option {
	return func(c *config) { c.epsilon = eps }
}

// Mutator is the read-mostly delta store and query engine. Build it
// once with Build, or step through NewMutator+SetNeutral+AddDelta, then
// query it freely — including from multiple goroutines, once
// construction has finished (see package doc).
type Mutator struct {
	cfg config

	buildMu sync.Mutex // guards deltas/bias/neutral during construction

	bias       location.Location
	neutral    algebra.Value
	hasNeutral bool
	deltas     map[string]Delta

	axisOnce  sync.Once
	axisIndex map[string][]float64
}

// NewMutator returns an empty Mutator ready for SetNeutral/AddDelta.
// Most callers should prefer Build, which also performs bias selection.
func NewMutator(opts ...Option) *Mutator {
	return &Mutator{
		cfg:    newConfig(opts...),
		deltas: make(map[string]Delta),
	}
}

// Bias returns the location construction treated as the coordinate
// system's origin.
func (m *Mutator) Bias() location.Location {
	return m.bias
}

// Neutral returns the reference object added back by MakeInstance, and
// whether it has been set yet.
func (m *Mutator) Neutral() (algebra.Value, bool) {
	return m.neutral, m.hasNeutral
}

// Locations returns every location currently stored, including the
// origin entry holding the neutral's own (zero) delta.
func (m *Mutator) Locations() []location.Location {
	locs := make([]location.Location, 0, len(m.deltas))
	for _, d := range m.deltas {
		locs = append(locs, d.Location)
	}
	location.Sort(locs)
	return locs
}

// AxisNames returns every axis name mentioned by any stored delta's
// location, on-axis or not, sorted for determinism. An axis that only
// ever appears on off-axis masters is still reported.
func (m *Mutator) AxisNames() []string {
	names := make(map[string]struct{})
	for _, d := range m.deltas {
		for _, name := range d.Location.AxisNames() {
			names[name] = struct{}{}
		}
	}
	out := make([]string, 0, len(names))
	for n := range names {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
