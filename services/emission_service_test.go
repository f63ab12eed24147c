package services

import (
	"testing"

	"github.com/YongHui-X/ecoplate-sub001/models"

	"github.com/stretchr/testify/assert"
)

func TestResolveExplicitOverrideWins(t *testing.T) {
	es := &EmissionService{}
	assert.Equal(t, 7.5, es.Resolve("beef", "meat", 7.5))
}

func TestResolveExactKeyword(t *testing.T) {
	es := &EmissionService{}
	assert.Equal(t, models.EmissionKeywords["beef"], es.Resolve("Beef", "", 0))
}

func TestResolveSubstringKeyword(t *testing.T) {
	es := &EmissionService{}
	assert.Equal(t, models.EmissionKeywords["chicken"], es.Resolve("organic chicken breast", "", 0))
}

func TestResolveCategoryFallback(t *testing.T) {
	es := &EmissionService{}
	assert.Equal(t, models.EmissionCategories["dairy"], es.Resolve("mystery product", "Dairy", 0))
}

func TestResolveDefaultFallback(t *testing.T) {
	es := &EmissionService{}
	assert.Equal(t, models.DefaultEmissionFactor, es.Resolve("mystery product", "unknown category", 0))
	assert.Equal(t, models.DefaultEmissionFactor, es.Resolve("", "", 0))
}

func TestResolveNegativeOverrideIgnored(t *testing.T) {
	es := &EmissionService{}
	assert.Equal(t, models.EmissionKeywords["rice"], es.Resolve("rice", "", -1))
}
