package services

import (
	"context"
	"fmt"
	"log"

	"github.com/YongHui-X/ecoplate-sub001/models"
	"github.com/YongHui-X/ecoplate-sub001/utils"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Fixed per-action base values for the "fixed" strategy, scaled linearly by
// raw quantity.
var fixedBasePoints = map[string]int{
	models.ActionConsumed: 5,
	models.ActionShared:   10,
	models.ActionSold:     8,
	models.ActionWasted:   -3,
}

// ledgerCASAttempts bounds the optimistic retry loop on ledger writes.
const ledgerCASAttempts = 5

// PointsService computes point deltas and owns every write to the
// PointsLedger table.
type PointsService struct {
	Dynamo   *DynamoService
	Emission *EmissionService
	Config   models.EngineConfig
}

// CalculatePoints turns a logged action into a signed point delta using the
// configured strategy. "add" actions never score.
func (ps *PointsService) CalculatePoints(actionType string, rawQuantity float64, unit, productName, category string, explicitFactor float64) int {
	actionType = models.CanonicalActionType(actionType)
	if actionType == models.ActionAdd {
		return 0
	}

	if ps.Config.PointsStrategy == models.PointsStrategyFixed {
		return calculateFixedPoints(actionType, rawQuantity)
	}
	return ps.calculateCO2Points(actionType, rawQuantity, unit, productName, category, explicitFactor)
}

// calculateCO2Points weights the delta by normalized weight and the resolved
// emission factor: the heavier and dirtier the food, the more it counts.
// Rounding happens once, after the action multiplier, so a co2Value of 2.5
// sold scores round(3.75) = 4.
func (ps *PointsService) calculateCO2Points(actionType string, rawQuantity float64, unit, productName, category string, explicitFactor float64) int {
	weightKg := utils.NormalizeQuantity(rawQuantity, unit)
	co2Value := weightKg * ps.Emission.Resolve(productName, category, explicitFactor)

	var delta int
	switch actionType {
	case models.ActionSold:
		delta = utils.RoundHalfUp(co2Value * 1.5)
	case models.ActionWasted:
		delta = -utils.RoundHalfUp(co2Value)
	default:
		delta = utils.RoundHalfUp(co2Value)
	}

	return applyMinimumMagnitude(actionType, delta)
}

func calculateFixedPoints(actionType string, rawQuantity float64) int {
	base, ok := fixedBasePoints[actionType]
	if !ok {
		return 0
	}
	delta := utils.RoundHalfUp(float64(base) * rawQuantity)
	return applyMinimumMagnitude(actionType, delta)
}

// applyMinimumMagnitude keeps every qualifying action felt: a delta that
// rounds to 0 becomes ±1 with the action's sign.
func applyMinimumMagnitude(actionType string, delta int) int {
	if delta != 0 {
		return delta
	}
	if actionType == models.ActionWasted {
		return -1
	}
	return 1
}

// GetLedger reads a user's ledger row, lazily treating a missing row as the
// zero ledger. The row itself is only materialized on first write.
func (ps *PointsService) GetLedger(ctx context.Context, userID string) (*models.PointsLedger, error) {
	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}

	item, err := ps.Dynamo.GetItem(ctx, models.PointsLedgerTable, key)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return &models.PointsLedger{UserID: userID}, nil
	}

	var ledger models.PointsLedger
	if err := attributevalue.UnmarshalMap(item, &ledger); err != nil {
		return nil, fmt.Errorf("failed to unmarshal ledger for %s: %w", userID, err)
	}
	return &ledger, nil
}

// ApplyPointsDelta adds a signed delta to a total, clamping at 0. The clamp
// happens at the point of write; points lost to over-penalization are gone
// for good.
func ApplyPointsDelta(total, delta int) int {
	total += delta
	if total < 0 {
		total = 0
	}
	return total
}

// AddPoints applies a signed delta to the user's total and returns the new
// total.
func (ps *PointsService) AddPoints(ctx context.Context, userID string, delta int) (int, error) {
	ledger, err := ps.MutateLedger(ctx, userID, func(l *models.PointsLedger) {
		l.TotalPoints = ApplyPointsDelta(l.TotalPoints, delta)
	})
	if err != nil {
		return 0, err
	}
	return ledger.TotalPoints, nil
}

// SetCurrentStreak persists a new current-streak value through the same CAS
// path as point writes.
func (ps *PointsService) SetCurrentStreak(ctx context.Context, userID string, streak int) error {
	_, err := ps.MutateLedger(ctx, userID, func(l *models.PointsLedger) {
		l.CurrentStreak = streak
	})
	return err
}

// MutateLedger is the single atomic read-modify-write on a ledger row: read
// the current row, apply mutate, and write back guarded by the version the
// read observed. A stale version means a concurrent writer won; re-read and
// retry. Two parallel award calls can interleave freely without losing an
// update.
func (ps *PointsService) MutateLedger(ctx context.Context, userID string, mutate func(*models.PointsLedger)) (*models.PointsLedger, error) {
	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}

	for attempt := 0; attempt < ledgerCASAttempts; attempt++ {
		ledger, err := ps.GetLedger(ctx, userID)
		if err != nil {
			return nil, err
		}

		previousVersion := ledger.Version
		mutate(ledger)
		ledger.Version = previousVersion + 1

		if previousVersion == 0 {
			// Row may not exist yet; create it only if nobody else has.
			err = ps.Dynamo.PutItemWithCondition(ctx, models.PointsLedgerTable, ledger, "attribute_not_exists(userId)")
		} else {
			updateExpression := "SET totalPoints = :tp, currentStreak = :cs, version = :nv"
			conditionExpression := "version = :ov"
			err = ps.Dynamo.UpdateItemWithCondition(ctx, models.PointsLedgerTable, updateExpression, conditionExpression, key,
				map[string]types.AttributeValue{
					":tp": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", ledger.TotalPoints)},
					":cs": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", ledger.CurrentStreak)},
					":nv": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", ledger.Version)},
					":ov": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", previousVersion)},
				}, nil)
		}

		if err == nil {
			return ledger, nil
		}
		if IsConditionalCheckFailed(err) {
			log.Printf("🔄 Ledger version conflict for %s (attempt %d), retrying", userID, attempt+1)
			continue
		}
		return nil, fmt.Errorf("failed to write ledger for %s: %w", userID, err)
	}

	return nil, fmt.Errorf("ledger write for %s kept conflicting after %d attempts", userID, ledgerCASAttempts)
}
