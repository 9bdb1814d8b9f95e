package blend

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/blendspace/location"
)

// validateAxisNames rejects locations carrying an empty axis name,
// which would be unaddressable in the axis index.
func validateAxisNames(loc location.Location) error {
	for _, name := range loc.AxisNames() {
		if name == "" {
			return ErrEmptyAxisName
		}
	}
	return nil
}

// Build assembles a Mutator from a flat list of (location, value)
// samples: it selects the bias (the item whose subtraction leaves the
// most other items clean, see location.BiasFrom), requires an item
// sitting at that bias to serve as the neutral (when several items
// share that location, the last one in items is used), stores every other
// item as a delta from the neutral, and punches off-axis masters so
// that querying the Mutator at an off-axis master's own location
// reproduces that master's value exactly (not merely approximates it
// via the on-axis masters it overlaps).
//
// Items are processed in location.Sort order — on-axis masters before
// off-axis ones, so an off-axis master's punch step can see every
// on-axis master already in place.
func Build(items []Item, opts ...Option) (location.Location, *Mutator, error) {
	if len(items) == 0 {
		return location.Location{}, nil, ErrEmptyInput
	}
	for _, it := range items {
		if it.Value == nil {
			return location.Location{}, nil, ErrNilValue
		}
		if err := validateAxisNames(it.Location); err != nil {
			return location.Location{}, nil, err
		}
	}

	locs := make([]location.Location, len(items))
	byKey := make(map[string]Item, len(items))
	for i, it := range items {
		locs[i] = it.Location
		byKey[it.Location.Key()] = it
	}
	bias := location.BiasFrom(locs)

	neutralItem, ok := byKey[bias.Key()]
	if !ok {
		return location.Location{}, nil, ErrNoNeutral
	}

	m := NewMutator(opts...)
	m.bias = bias
	m.neutral = neutralItem.Value
	m.hasNeutral = true
	m.deltas[location.Origin().Key()] = Delta{
		Location: location.Origin(),
		Value:    neutralItem.Value.Sub(neutralItem.Value),
		Name:     neutralItem.Name,
	}

	ordered := make([]Item, 0, len(items))
	for _, it := range items {
		if it.Location.Key() == bias.Key() {
			continue
		}
		ordered = append(ordered, it)
	}
	sort.Slice(ordered, func(i, j int) bool {
		return location.Less(ordered[i].Location, ordered[j].Location)
	})

	var onAxis, offAxis []Item
	for _, it := range ordered {
		rel := it.Location.Subtract(bias)
		class, _ := rel.Classify()
		if class == location.ClassOffAxis {
			offAxis = append(offAxis, it)
		} else {
			onAxis = append(onAxis, it)
		}
	}

	for _, it := range onAxis {
		rel := it.Location.Subtract(bias)
		delta := it.Value.Sub(m.neutral)
		m.deltas[rel.Key()] = Delta{Location: rel, Value: delta, Name: it.Name}
	}
	for _, it := range offAxis {
		rel := it.Location.Subtract(bias)
		already, err := m.GetInstance(Single(rel), AxisOnly)
		if err != nil {
			return location.Location{}, nil, fmt.Errorf("blend: punching off-axis master %q: %w", it.Name, err)
		}
		delta := it.Value.Sub(m.neutral).Sub(already)
		m.deltas[rel.Key()] = Delta{Location: rel, Value: delta, Name: it.Name}
	}

	return bias, m, nil
}
