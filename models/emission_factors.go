package models

// Emission factors are kg CO2-equivalent per kg of food. Values follow the
// usual life-cycle figures (ruminant meat worst, plants best).

// DefaultEmissionFactor is used when nothing about a product is recognized.
const DefaultEmissionFactor = 2.5

// EmissionKeywords maps product-name keywords to factors. Lookup is exact
// match first, then substring containment, both lowercased.
var EmissionKeywords = map[string]float64{
	"beef":      27.0,
	"lamb":      39.2,
	"pork":      12.1,
	"chicken":   6.9,
	"turkey":    10.9,
	"fish":      6.1,
	"salmon":    11.9,
	"shrimp":    11.8,
	"cheese":    13.5,
	"butter":    23.8,
	"milk":      3.2,
	"yogurt":    2.2,
	"egg":       4.8,
	"rice":      2.7,
	"bread":     1.4,
	"pasta":     1.2,
	"potato":    0.5,
	"tomato":    2.1,
	"lettuce":   0.4,
	"apple":     0.4,
	"banana":    0.9,
	"orange":    0.4,
	"berries":   1.5,
	"avocado":   2.5,
	"chocolate": 19.0,
	"coffee":    16.5,
	"tofu":      3.0,
	"lentils":   0.9,
	"beans":     2.0,
	"nuts":      2.3,
}

// EmissionCategories is the fallback when the product name matches nothing.
var EmissionCategories = map[string]float64{
	"meat":       20.0,
	"seafood":    8.0,
	"dairy":      8.5,
	"produce":    1.0,
	"fruit":      1.1,
	"vegetables": 2.0,
	"grains":     2.7,
	"bakery":     1.6,
	"beverages":  1.5,
	"snacks":     3.5,
	"frozen":     3.0,
	"pantry":     2.2,
}
