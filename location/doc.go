// Package location defines Location, an immutable association from
// axis-name to scalar coordinate, and the geometry blendspace builds on:
// equality, subtraction, axis classification, bias selection, and the
// deterministic sort order every other package relies on for reproducible
// results.
//
// A Location axis that is never mentioned behaves as coordinate 0 for
// every operation — subtraction, equality, and the classification
// predicates. Two locations are equal iff their non-zero coordinates
// agree; this means Origin() and a Location built from all-zero
// coordinates compare equal.
//
// Complexity: every operation here is O(number of distinct axis names
// touched); there is no hidden global state.
package location
