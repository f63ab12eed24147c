package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeQuantity(t *testing.T) {
	assert.Equal(t, 2.0, NormalizeQuantity(2, "kg"))
	assert.Equal(t, 0.5, NormalizeQuantity(500, "g"))
	assert.Equal(t, 1.5, NormalizeQuantity(1.5, "L"))
	assert.Equal(t, 0.25, NormalizeQuantity(250, "ml"))
	assert.Equal(t, 0.6, NormalizeQuantity(2, "item"))
	assert.Equal(t, 0.3, NormalizeQuantity(1, "bottle"))
	assert.InDelta(t, 3.6, NormalizeQuantity(1, "dozen"), 1e-9, "a dozen is twelve items")
}

func TestNormalizeQuantityCaseInsensitive(t *testing.T) {
	assert.Equal(t, 2.0, NormalizeQuantity(2, "KG"))
	assert.Equal(t, 0.3, NormalizeQuantity(1, " Loaf "))
}

func TestNormalizeQuantityUnknownUnitFallsBack(t *testing.T) {
	// Unknown units are treated as countable items, never an error.
	assert.Equal(t, 0.6, NormalizeQuantity(2, "handful"))
	assert.Equal(t, 0.3, NormalizeQuantity(1, ""))
}
