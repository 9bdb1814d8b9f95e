// Package blendspace is your in-memory toolkit for blending sparse,
// irregularly placed samples across a multi-axis design space.
//
// 🚀 What is blendspace?
//
//	A small, dependency-light library that turns a handful of "master"
//	samples — each pinned to a named-axis coordinate — into a continuous
//	field you can query anywhere:
//
//	  • Location algebra: immutable axis→coordinate maps, subtraction,
//	    geometric classification (origin / on-axis / off-axis), and a
//	    deterministic bias selector that picks the best-fit origin master.
//	  • Delta storage: every master is kept as a difference from a neutral
//	    reference, so extrapolation is symmetric and the neutral carries no
//	    self-weighted influence.
//	  • A factor engine that blends on-axis piecewise-linear interpolation
//	    with an off-axis multiplicative projection, including extrapolation
//	    past the sample envelope.
//
// ✨ Why choose blendspace?
//
//   - Algebra-agnostic — the blended value is any type satisfying
//     algebra.Value; blendspace never looks inside it.
//   - Deterministic    — factor sums are computed in a fixed, documented
//     order so results are bit-reproducible across runs and platforms.
//   - Read-mostly      — build once, then share an immutable Mutator
//     across goroutines; the axis index publishes behind a one-shot guard.
//
// Under the hood, everything is organized under three subpackages:
//
//	location/ — the Location type: algebra, predicates, bias selection.
//	algebra/  — the Value contract blended objects must satisfy, plus a
//	            couple of reference implementations used by tests/examples.
//	blend/    — the Mutator: delta store, axis classifier, limits
//	            computer, factor engine, and the Build/MakeInstance entry
//	            points.
//
// Quick example: a single axis "pop" with one master at pop=1 worth 100.
// Querying pop=0.5 interpolates to 50; querying pop=2 extrapolates to 200.
// See blend's scenario tests for the full worked cases from the design
// notes (population/snap, punched off-axis masters, and the builder
// pipeline).
//
//	go get github.com/katalvlaran/blendspace
package blendspace
