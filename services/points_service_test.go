package services

import (
	"testing"

	"github.com/YongHui-X/ecoplate-sub001/models"

	"github.com/stretchr/testify/assert"
)

func newCO2PointsService() *PointsService {
	return &PointsService{Emission: &EmissionService{}, Config: models.DefaultEngineConfig()}
}

func newFixedPointsService() *PointsService {
	cfg := models.DefaultEngineConfig()
	cfg.PointsStrategy = models.PointsStrategyFixed
	return &PointsService{Emission: &EmissionService{}, Config: cfg}
}

func TestCO2PointsSoldMultiplierRoundsHalfUp(t *testing.T) {
	ps := newCO2PointsService()

	// 0.5 kg at 5 kg CO2e/kg → co2Value 2.5; sold → round(3.75) = 4
	assert.Equal(t, 4, ps.CalculatePoints(models.ActionSold, 0.5, "kg", "", "", 5))
	assert.Equal(t, 3, ps.CalculatePoints(models.ActionConsumed, 0.5, "kg", "", "", 5))
	assert.Equal(t, 3, ps.CalculatePoints(models.ActionShared, 0.5, "kg", "", "", 5))
	assert.Equal(t, -3, ps.CalculatePoints(models.ActionWasted, 0.5, "kg", "", "", 5))
}

func TestCO2PointsUsesNormalizedWeight(t *testing.T) {
	ps := newCO2PointsService()

	// 500 g and 0.5 kg must score identically.
	assert.Equal(t,
		ps.CalculatePoints(models.ActionConsumed, 0.5, "kg", "beef", "", 0),
		ps.CalculatePoints(models.ActionConsumed, 500, "g", "beef", "", 0),
	)
}

func TestCO2PointsMinimumMagnitude(t *testing.T) {
	ps := newCO2PointsService()

	// 10 g of lettuce rounds to 0 but must still be felt.
	assert.Equal(t, 1, ps.CalculatePoints(models.ActionConsumed, 10, "g", "lettuce", "", 0))
	assert.Equal(t, -1, ps.CalculatePoints(models.ActionWasted, 10, "g", "lettuce", "", 0))
}

func TestCO2PointsLegacyTypeStrings(t *testing.T) {
	ps := newCO2PointsService()

	assert.Equal(t,
		ps.CalculatePoints(models.ActionConsumed, 1, "kg", "beef", "", 0),
		ps.CalculatePoints("Consume", 1, "kg", "beef", "", 0),
	)
	assert.Equal(t,
		ps.CalculatePoints(models.ActionWasted, 1, "kg", "beef", "", 0),
		ps.CalculatePoints("Waste", 1, "kg", "beef", "", 0),
	)
}

func TestAddActionNeverScores(t *testing.T) {
	assert.Equal(t, 0, newCO2PointsService().CalculatePoints(models.ActionAdd, 5, "kg", "beef", "", 0))
	assert.Equal(t, 0, newFixedPointsService().CalculatePoints(models.ActionAdd, 5, "kg", "beef", "", 0))
}

func TestFixedPointsBaseValues(t *testing.T) {
	ps := newFixedPointsService()

	assert.Equal(t, 5, ps.CalculatePoints(models.ActionConsumed, 1, "item", "", "", 0))
	assert.Equal(t, 10, ps.CalculatePoints(models.ActionShared, 1, "item", "", "", 0))
	assert.Equal(t, 8, ps.CalculatePoints(models.ActionSold, 1, "item", "", "", 0))
	assert.Equal(t, -3, ps.CalculatePoints(models.ActionWasted, 1, "item", "", "", 0))
}

func TestFixedPointsScalesByRawQuantity(t *testing.T) {
	ps := newFixedPointsService()

	assert.Equal(t, 10, ps.CalculatePoints(models.ActionConsumed, 2, "kg", "", "", 0))
	// 10 × 0.25 = 2.5 → rounds half-up to 3
	assert.Equal(t, 3, ps.CalculatePoints(models.ActionShared, 0.25, "kg", "", "", 0))
	// -3 × 0.1 = -0.3 → rounds to 0 → floor at -1
	assert.Equal(t, -1, ps.CalculatePoints(models.ActionWasted, 0.1, "kg", "", "", 0))
}

func TestApplyPointsDeltaClampsAtZero(t *testing.T) {
	assert.Equal(t, 0, ApplyPointsDelta(10, -300), "over-penalization clamps to 0, not -290")
	assert.Equal(t, 15, ApplyPointsDelta(10, 5))
	assert.Equal(t, 0, ApplyPointsDelta(0, -1))
	assert.Equal(t, 5, ApplyPointsDelta(0, 5))
}
