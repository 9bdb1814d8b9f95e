package algebra

// Pair is a reference Value implementation carrying two independent
// components, X and Y. It exists to exercise ambivalent (paired-axis)
// queries end-to-end: ScalePair(1,0) isolates X, ScalePair(0,1)
// isolates Y, matching the glyph-style two-axis interpolation use case
// where horizontal and vertical coordinates interpolate independently.
type Pair struct {
	X, Y float64
}

// Add returns the component-wise sum.
func (p Pair) Add(other Value) Value {
	o := other.(Pair)
	return Pair{X: p.X + o.X, Y: p.Y + o.Y}
}

// Sub returns the component-wise difference.
func (p Pair) Sub(other Value) Value {
	o := other.(Pair)
	return Pair{X: p.X - o.X, Y: p.Y - o.Y}
}

// Scale returns both components multiplied by factor.
func (p Pair) Scale(factor float64) Value {
	return Pair{X: p.X * factor, Y: p.Y * factor}
}

// ScalePair multiplies X by sx and Y by sy independently.
func (p Pair) ScalePair(sx, sy float64) Value {
	return Pair{X: p.X * sx, Y: p.Y * sy}
}
