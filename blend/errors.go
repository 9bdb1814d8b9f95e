// errors.go — sentinel errors for the blend package.
//
// Error policy: only sentinel variables are exposed at package level;
// callers branch on them with errors.Is. Call-site context is attached
// with fmt.Errorf("%w", ...) wrapping, never by formatting a new string
// in place of the sentinel.
package blend

import "errors"

var (
	// ErrEmptyInput is returned by Build when called with no items.
	ErrEmptyInput = errors.New("blend: no items to build from")

	// ErrNoNeutral is returned by Build when no input item's location
	// equals the computed bias, so no sample is available to serve as
	// the neutral reference.
	ErrNoNeutral = errors.New("blend: no item at the computed bias")

	// ErrUninitialisedNeutral is returned by any query method invoked
	// before SetNeutral (directly, or via Build) has run.
	ErrUninitialisedNeutral = errors.New("blend: neutral is not set")

	// ErrNilValue is returned when a nil algebra.Value is supplied where
	// a real value is required (SetNeutral, AddDelta, builder items).
	ErrNilValue = errors.New("blend: nil value")

	// ErrEmptyAxisName is returned when a Location carries an empty
	// string as an axis name; axis names must be non-empty to be
	// addressable in the axis index.
	ErrEmptyAxisName = errors.New("blend: empty axis name")

	// ErrNeutralAlreadySet is returned by SetNeutral when called more
	// than once on the same Mutator.
	ErrNeutralAlreadySet = errors.New("blend: neutral already set")
)
