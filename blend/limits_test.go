package blend

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Given master coordinates (0, 1) on an axis: query 0 brackets to
// (nil, 0, 1); query 0.5 brackets to (0, nil, 1); query 1 brackets to
// (0, 1, nil).
func TestComputeLimitsBracketsKnownCoordinates(t *testing.T) {
	pool := []float64{0, 1}
	const eps = 1e-9

	br := computeLimits(pool, 0, eps)
	assert.Nil(t, br.B)
	assert.NotNil(t, br.M)
	assert.Equal(t, 0.0, *br.M)
	assert.NotNil(t, br.A)
	assert.Equal(t, 1.0, *br.A)

	br = computeLimits(pool, 0.5, eps)
	assert.NotNil(t, br.B)
	assert.Equal(t, 0.0, *br.B)
	assert.Nil(t, br.M)
	assert.NotNil(t, br.A)
	assert.Equal(t, 1.0, *br.A)

	br = computeLimits(pool, 1, eps)
	assert.NotNil(t, br.B)
	assert.Equal(t, 0.0, *br.B)
	assert.NotNil(t, br.M)
	assert.Equal(t, 1.0, *br.M)
	assert.Nil(t, br.A)
}

func TestComputeLimitsEmptyPool(t *testing.T) {
	br := computeLimits(nil, 0.5, 1e-9)
	assert.Nil(t, br.B)
	assert.Nil(t, br.M)
	assert.Nil(t, br.A)
}
