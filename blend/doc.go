// Package blend implements the interpolation engine: a Mutator stores
// every master as a delta from a neutral reference, classifies deltas
// as on-axis or off-axis, and blends them for an arbitrary query with a
// factor engine that combines piecewise-linear on-axis interpolation
// with a multiplicative off-axis projection.
//
// Typical use:
//
//	bias, m, err := blend.Build([]blend.Item{
//		{Location: location.Origin(), Value: algebra.Scalar(0)},
//		{Location: location.Axis("pop", 1), Value: algebra.Scalar(100)},
//	})
//	if err != nil { ... }
//	v, err := m.MakeInstance(blend.Single(location.Axis("pop", 0.5)))
//	// v == algebra.Scalar(50)
//
// A Mutator is mutable only during construction (AddDelta/SetNeutral or
// Build); afterwards it is safe to share across goroutines for reads.
// The lazily-built axis index publishes once behind a sync.Once, so the
// first read that touches it is the one responsible for building it;
// concurrent readers block on that single build rather than racing.
package blend
