package models

type Interaction struct {
	PK             string  `dynamodbav:"PK" json:"-"`                                               // ✅ Partition Key: "USER#userId"
	SK             string  `dynamodbav:"SK" json:"-"`                                               // ✅ Sort Key: "INTERACTION#date#id" (queries in date order)
	ID             string  `dynamodbav:"id" json:"id"`                                              // ✅ UUID assigned on append
	UserID         string  `dynamodbav:"userId" json:"userId"`                                      // ✅ Owner of the log entry
	ProductID      *string `dynamodbav:"productId,omitempty" json:"productId,omitempty"`            // ✅ Optional pantry item reference
	ProductName    string  `dynamodbav:"productName,omitempty" json:"productName,omitempty"`        // ✅ Used for emission keyword lookup
	Date           string  `dynamodbav:"date" json:"date"`                                          // ✅ Calendar day, "2006-01-02", no time component
	Type           string  `dynamodbav:"type" json:"type"`                                          // ✅ consumed, shared, sold, wasted, add (canonical)
	Quantity       float64 `dynamodbav:"quantity" json:"quantity"`                                  // ✅ Normalized weight (kg) or item count
	RawQuantity    float64 `dynamodbav:"rawQuantity" json:"rawQuantity"`                            // ✅ Quantity exactly as logged
	Unit           string  `dynamodbav:"unit,omitempty" json:"unit,omitempty"`                      // ✅ Unit exactly as logged
	Category       string  `dynamodbav:"category,omitempty" json:"category,omitempty"`              // ✅ Optional product category
	EmissionFactor float64 `dynamodbav:"emissionFactor,omitempty" json:"emissionFactor,omitempty"`  // ✅ Explicit override captured at log time
	Points         int     `dynamodbav:"points" json:"points"`                                      // ✅ Signed delta applied at write time
	CreatedAt      string  `dynamodbav:"createdAt" json:"createdAt"`                                // ✅ RFC3339 append timestamp
	SkipRecording  bool    `dynamodbav:"skipRecording,omitempty" json:"skipRecording,omitempty"`    // ✅ Draft entries generate no history
}

// ✅ Define table name
const InteractionsTable = "Interactions"

// Key prefixes for the Interactions table
const (
	UserKeyPrefix        = "USER#"
	InteractionKeyPrefix = "INTERACTION#"
)
