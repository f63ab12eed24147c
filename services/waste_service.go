package services

import (
	"strings"

	"github.com/YongHui-X/ecoplate-sub001/models"
	"github.com/YongHui-X/ecoplate-sub001/utils"
)

// WasteService scores a single meal from its ingredient list and what got
// thrown out afterwards. Pure computation; nothing is persisted.
type WasteService struct {
	Emission *EmissionService
}

// ComputeMealMetrics builds the per-meal waste report. Waste items match
// ingredients by productId first, then case-insensitive name; matched waste
// is clamped to the quantity actually used.
func (ws *WasteService) ComputeMealMetrics(ingredients []models.MealIngredient, wasteItems []models.WasteItem) *models.WasteMetrics {
	metrics := &models.WasteMetrics{Ingredients: []models.IngredientWasteBreakdown{}}

	for _, ingredient := range ingredients {
		factor := ingredient.Factor
		if factor <= 0 {
			factor = ws.Emission.Resolve(ingredient.Name, ingredient.Category, 0)
		}

		wastedQty := matchedWaste(ingredient, wasteItems)
		if wastedQty > ingredient.QuantityUsed {
			wastedQty = ingredient.QuantityUsed
		}
		consumedQty := ingredient.QuantityUsed - wastedQty

		co2Wasted := wastedQty * factor
		co2Saved := consumedQty * factor
		economicWaste := 0.0
		if ingredient.QuantityUsed > 0 {
			economicWaste = (wastedQty / ingredient.QuantityUsed) * ingredient.UnitPrice
		}
		economicConsumed := ingredient.UnitPrice - economicWaste

		metrics.Ingredients = append(metrics.Ingredients, models.IngredientWasteBreakdown{
			ProductID:        ingredient.ProductID,
			Name:             ingredient.Name,
			QuantityUsed:     ingredient.QuantityUsed,
			WastedQty:        wastedQty,
			ConsumedQty:      consumedQty,
			CO2Wasted:        utils.Round2(co2Wasted),
			CO2Saved:         utils.Round2(co2Saved),
			EconomicWaste:    utils.Round2(economicWaste),
			EconomicConsumed: utils.Round2(economicConsumed),
		})

		metrics.TotalCO2 += ingredient.QuantityUsed * factor
		metrics.TotalCO2Wasted += co2Wasted
		metrics.TotalCO2Saved += co2Saved
		metrics.TotalCost += ingredient.UnitPrice
		metrics.TotalEconomicWaste += economicWaste
	}

	if metrics.TotalCO2 > 0 {
		metrics.EnvironmentalScore = metrics.TotalCO2Wasted / metrics.TotalCO2 * 100
		if metrics.EnvironmentalScore > 100 {
			metrics.EnvironmentalScore = 100
		}
	}
	if metrics.TotalCost > 0 {
		metrics.EconomicScore = metrics.TotalEconomicWaste / metrics.TotalCost * 100
		if metrics.EconomicScore > 100 {
			metrics.EconomicScore = 100
		}
	}

	metrics.SustainabilityScore = utils.RoundHalfUp(0.5*metrics.EconomicScore + 0.5*metrics.EnvironmentalScore)
	metrics.Rating = SustainabilityRating(metrics.SustainabilityScore)

	metrics.TotalCO2 = utils.Round2(metrics.TotalCO2)
	metrics.TotalCO2Wasted = utils.Round2(metrics.TotalCO2Wasted)
	metrics.TotalCO2Saved = utils.Round2(metrics.TotalCO2Saved)
	metrics.TotalCost = utils.Round2(metrics.TotalCost)
	metrics.TotalEconomicWaste = utils.Round2(metrics.TotalEconomicWaste)
	metrics.EnvironmentalScore = utils.Round2(metrics.EnvironmentalScore)
	metrics.EconomicScore = utils.Round2(metrics.EconomicScore)

	return metrics
}

// matchedWaste sums the waste recorded against one ingredient.
func matchedWaste(ingredient models.MealIngredient, wasteItems []models.WasteItem) float64 {
	total := 0.0
	for _, waste := range wasteItems {
		if waste.ProductID != "" && waste.ProductID == ingredient.ProductID {
			total += waste.QuantityWasted
			continue
		}
		if waste.ProductID == "" && waste.Name != "" &&
			strings.EqualFold(strings.TrimSpace(waste.Name), strings.TrimSpace(ingredient.Name)) {
			total += waste.QuantityWasted
		}
	}
	return total
}

// SustainabilityRating maps a 0-100 score (lower is better) to its band.
func SustainabilityRating(score int) string {
	switch {
	case score <= 20:
		return models.RatingExcellent
	case score <= 40:
		return models.RatingGood
	case score <= 60:
		return models.RatingModerate
	case score <= 80:
		return models.RatingPoor
	default:
		return models.RatingCritical
	}
}
