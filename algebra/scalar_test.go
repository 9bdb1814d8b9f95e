package algebra_test

import (
	"testing"

	"github.com/katalvlaran/blendspace/algebra"
	"github.com/stretchr/testify/assert"
)

func TestScalarZero(t *testing.T) {
	v := algebra.Scalar(42)
	zero := v.Scale(0)
	assert.Equal(t, v, zero.Add(v))
}

func TestScalarArithmetic(t *testing.T) {
	a, b := algebra.Scalar(10), algebra.Scalar(4)
	assert.Equal(t, algebra.Scalar(14), a.Add(b))
	assert.Equal(t, algebra.Scalar(6), a.Sub(b))
	assert.Equal(t, algebra.Scalar(25), a.Scale(2.5))
}

func TestPairScalePairIsolatesComponents(t *testing.T) {
	p := algebra.Pair{X: 10, Y: -20}
	assert.Equal(t, algebra.Pair{X: 10, Y: 0}, p.ScalePair(1, 0))
	assert.Equal(t, algebra.Pair{X: 0, Y: -20}, p.ScalePair(0, 1))
}

func TestPairZero(t *testing.T) {
	p := algebra.Pair{X: 3, Y: -7}
	zero := p.Scale(0)
	assert.Equal(t, p, zero.Add(p))
}
