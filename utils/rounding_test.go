package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundHalfUp(t *testing.T) {
	assert.Equal(t, 4, RoundHalfUp(3.75))
	assert.Equal(t, 2, RoundHalfUp(1.875))
	assert.Equal(t, 3, RoundHalfUp(2.5), "exact halves round up, not to even")
	assert.Equal(t, 2, RoundHalfUp(2.4))
	assert.Equal(t, 0, RoundHalfUp(0))
	assert.Equal(t, -3, RoundHalfUp(-2.5), "negative halves round away from zero")
	assert.Equal(t, -2, RoundHalfUp(-2.4))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 10.0, Round2(10.004))
	assert.Equal(t, 3.33, Round2(10.0/3.0))
	assert.Equal(t, 2.68, Round2(2.675001))
	assert.Equal(t, 0.0, Round2(0))
}
