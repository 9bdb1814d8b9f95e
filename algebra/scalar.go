package algebra

// Scalar is a reference Value implementation over a single float64,
// exercised by this module's own scenario and property tests.
type Scalar float64

// Add returns the scalar sum.
func (s Scalar) Add(other Value) Value {
	return s + other.(Scalar)
}

// Sub returns the scalar difference.
func (s Scalar) Sub(other Value) Value {
	return s - other.(Scalar)
}

// Scale returns the scalar multiplied by factor.
func (s Scalar) Scale(factor float64) Value {
	return Scalar(float64(s) * factor)
}

// ScalePair treats a bare Scalar as carrying the same value on both
// halves of a paired query, so (sx, sy) collapses to a single
// multiplier: sx when sy is 0 (selecting the x-half), sy when sx is 0
// (selecting the y-half), and their sum otherwise. This mirrors how
// blend.Mutator.MakeInstance combines a Paired query's two halves with
// (1,0) and (0,1) masks before summing.
func (s Scalar) ScalePair(sx, sy float64) Value {
	return Scalar(float64(s) * (sx + sy))
}
