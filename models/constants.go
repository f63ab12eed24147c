package models

import "strings"

// ✅ Interaction Types (how a food item left the household)
const (
	ActionConsumed = "consumed"
	ActionShared   = "shared"
	ActionSold     = "sold"
	ActionWasted   = "wasted"
	ActionAdd      = "add"
)

// ✅ Point strategies (exactly one is active per deployment)
const (
	PointsStrategyCO2   = "co2"
	PointsStrategyFixed = "fixed"
)

// ✅ Sustainability rating bands (lower score is better)
const (
	RatingExcellent = "Excellent"
	RatingGood      = "Good"
	RatingModerate  = "Moderate"
	RatingPoor      = "Poor"
	RatingCritical  = "Critical"
)

// legacyActionTypes maps historical, case-inconsistent type strings to the
// canonical form. Early mobile clients wrote "Consume"/"Waste".
var legacyActionTypes = map[string]string{
	"consume":  ActionConsumed,
	"consumed": ActionConsumed,
	"share":    ActionShared,
	"shared":   ActionShared,
	"sell":     ActionSold,
	"sold":     ActionSold,
	"waste":    ActionWasted,
	"wasted":   ActionWasted,
	"add":      ActionAdd,
}

// CanonicalActionType normalizes an action type string at the ingestion
// boundary so aggregation code never compares raw case-sensitive strings.
// Unknown strings are lowercased and passed through.
func CanonicalActionType(raw string) string {
	lowered := strings.ToLower(strings.TrimSpace(raw))
	if canonical, ok := legacyActionTypes[lowered]; ok {
		return canonical
	}
	return lowered
}

// IsQualifyingAction reports whether an action type can advance the daily
// streak. Wasting food never does.
func IsQualifyingAction(actionType string) bool {
	switch actionType {
	case ActionConsumed, ActionShared, ActionSold:
		return true
	}
	return false
}
