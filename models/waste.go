package models

// MealIngredient is one line of a meal's ingredient list as sent by the
// client, with its emission factor already resolved.
type MealIngredient struct {
	ProductID    string  `json:"productId"`
	Name         string  `json:"name,omitempty"`
	QuantityUsed float64 `json:"quantityUsed"`
	UnitPrice    float64 `json:"unitPrice"`
	Factor       float64 `json:"factor,omitempty"` // kg CO2e/kg; resolved server-side when 0
	Category     string  `json:"category,omitempty"`
}

// WasteItem is what got thrown out after the meal, matched to ingredients by
// productId first, then case-insensitive name.
type WasteItem struct {
	ProductID      string  `json:"productId,omitempty"`
	Name           string  `json:"name,omitempty"`
	QuantityWasted float64 `json:"quantityWasted"`
}

// IngredientWasteBreakdown is the per-ingredient slice of a meal's waste
// metrics. Money and CO2 are rounded to 2 decimals.
type IngredientWasteBreakdown struct {
	ProductID        string  `json:"productId"`
	Name             string  `json:"name,omitempty"`
	QuantityUsed     float64 `json:"quantityUsed"`
	WastedQty        float64 `json:"wastedQty"`
	ConsumedQty      float64 `json:"consumedQty"`
	CO2Wasted        float64 `json:"co2Wasted"`
	CO2Saved         float64 `json:"co2Saved"`
	EconomicWaste    float64 `json:"economicWaste"`
	EconomicConsumed float64 `json:"economicConsumed"`
}

// WasteMetrics is the per-meal sustainability report. Scores are 0-100 and
// lower is better.
type WasteMetrics struct {
	Ingredients         []IngredientWasteBreakdown `json:"ingredients"`
	TotalCO2            float64                    `json:"totalCo2"`
	TotalCO2Wasted      float64                    `json:"totalCo2Wasted"`
	TotalCO2Saved       float64                    `json:"totalCo2Saved"`
	TotalCost           float64                    `json:"totalCost"`
	TotalEconomicWaste  float64                    `json:"totalEconomicWaste"`
	EnvironmentalScore  float64                    `json:"environmentalScore"`
	EconomicScore       float64                    `json:"economicScore"`
	SustainabilityScore int                        `json:"sustainabilityScore"`
	Rating              string                     `json:"rating"`
}
