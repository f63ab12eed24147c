package utils

import "strings"

// DefaultItemWeightKg approximates one countable grocery item (a bottle, a
// can, a loaf) when no weight is known.
const DefaultItemWeightKg = 0.3

// unitToKg converts a raw quantity in the given unit to kilograms. Liquids
// are treated 1:1 with water. Countable packaging units use the default
// per-item weight; a dozen is twelve items.
var unitToKg = map[string]float64{
	"kg":     1.0,
	"g":      0.001,
	"l":      1.0,
	"ml":     0.001,
	"item":   DefaultItemWeightKg,
	"piece":  DefaultItemWeightKg,
	"pack":   DefaultItemWeightKg,
	"bottle": DefaultItemWeightKg,
	"can":    DefaultItemWeightKg,
	"loaf":   DefaultItemWeightKg,
	"box":    DefaultItemWeightKg,
	"bunch":  DefaultItemWeightKg,
	"bag":    DefaultItemWeightKg,
	"tray":   DefaultItemWeightKg,
	"dozen":  12 * DefaultItemWeightKg,
}

// NormalizeQuantity converts a raw quantity + unit into canonical kilograms.
// Unknown units fall back to the per-item weight rather than failing; input
// is assumed pre-validated by the caller.
func NormalizeQuantity(quantity float64, unit string) float64 {
	factor, ok := unitToKg[strings.ToLower(strings.TrimSpace(unit))]
	if !ok {
		factor = DefaultItemWeightKg
	}
	return quantity * factor
}
