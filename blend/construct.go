package blend

import (
	"sync"

	"github.com/katalvlaran/blendspace/algebra"
	"github.com/katalvlaran/blendspace/location"
)

// SetNeutral designates bias as the origin of the delta coordinate
// system and obj as the reference object added back by MakeInstance.
// It stores the mandatory origin delta (the algebra's zero) alongside
// it, maintaining the invariant that exactly one delta exists at the
// origin location and its object is the algebra's zero. Most callers
// should prefer Build, which performs the same steps itself after bias
// selection; SetNeutral plus AddDelta exists for callers that already
// know their own bias and want to insert deltas incrementally.
func (m *Mutator) SetNeutral(bias location.Location, obj algebra.Value) error {
	m.buildMu.Lock()
	defer m.buildMu.Unlock()

	if obj == nil {
		return ErrNilValue
	}
	if m.hasNeutral {
		return ErrNeutralAlreadySet
	}
	m.bias = bias
	m.neutral = obj
	m.hasNeutral = true
	zero := obj.Scale(0)
	m.deltas[location.Origin().Key()] = Delta{Location: location.Origin(), Value: zero}
	return nil
}

// AddDelta stores obj at loc, a location already expressed relative to
// the bias (delta-space, the same convention GetInstance uses). When
// punch is false, obj is stored as-is — the caller has already
// subtracted the neutral from the raw master value. When punch is
// true, AddDelta first computes the instance the Mutator would produce
// at loc from its current contents (axis-only for an off-axis loc, so
// an off-axis master absorbs only what on-axis masters do not already
// explain; full otherwise) and stores obj minus that instance, so that
// a subsequent query at loc reproduces obj exactly.
//
// AddDelta requires SetNeutral to have run first, and discards any
// already-built axis index, so the next query rebuilds it from the
// current deltas. Resetting the index is not synchronised with
// readers: callers must not query from other goroutines while they
// are still adding deltas.
func (m *Mutator) AddDelta(loc location.Location, obj algebra.Value, punch bool) error {
	m.buildMu.Lock()
	defer m.buildMu.Unlock()

	if obj == nil {
		return ErrNilValue
	}
	if !m.hasNeutral {
		return ErrUninitialisedNeutral
	}
	if err := validateAxisNames(loc); err != nil {
		return err
	}

	stored := obj
	if punch {
		mode := Full
		if class, _ := loc.Classify(); class == location.ClassOffAxis {
			mode = AxisOnly
		}
		already, err := m.GetInstance(Single(loc), mode)
		if err != nil {
			return err
		}
		stored = obj.Sub(already)
	}
	m.deltas[loc.Key()] = Delta{Location: loc, Value: stored}
	m.axisOnce = sync.Once{}
	m.axisIndex = nil
	return nil
}
