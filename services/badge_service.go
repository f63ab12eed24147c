package services

import (
	"context"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/YongHui-X/ecoplate-sub001/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// BadgeService evaluates the static badge catalog against fresh metrics and
// awards idempotently. The store-level uniqueness of (user, badge) is the
// only hard guarantee against concurrent double-awarding; the in-memory
// "already earned" check is advisory.
type BadgeService struct {
	Dynamo        *DynamoService
	Points        *PointsService
	Interactions  *InteractionService
	Notifications *NotificationService
}

// BuildMetrics assembles the snapshot every badge rule sees. Never cached.
func (bs *BadgeService) BuildMetrics(ctx context.Context, userID string) (*models.BadgeMetrics, error) {
	ledger, err := bs.Points.GetLedger(ctx, userID)
	if err != nil {
		return nil, err
	}
	interactions, err := bs.Interactions.ListInteractions(ctx, userID)
	if err != nil {
		return nil, err
	}
	metrics := ComputeBadgeMetrics(interactions)
	metrics.TotalPoints = ledger.TotalPoints
	metrics.CurrentStreak = ledger.CurrentStreak
	return metrics, nil
}

// ComputeBadgeMetrics derives the log-driven half of the metrics snapshot.
func ComputeBadgeMetrics(interactions []models.Interaction) *models.BadgeMetrics {
	metrics := &models.BadgeMetrics{}
	for _, interaction := range interactions {
		switch interaction.Type {
		case models.ActionConsumed:
			metrics.TotalConsumed++
		case models.ActionShared:
			metrics.TotalShared++
		case models.ActionSold:
			metrics.TotalSold++
		case models.ActionWasted:
			metrics.TotalWasted++
		}
	}
	metrics.TotalActions = metrics.TotalConsumed + metrics.TotalShared + metrics.TotalSold
	metrics.TotalItems = metrics.TotalActions + metrics.TotalWasted
	if metrics.TotalItems > 0 {
		metrics.WasteReductionRate = float64(metrics.TotalActions) / float64(metrics.TotalItems) * 100
	}
	metrics.LongestStreak = LongestStreak(interactions)
	return metrics
}

// earnedBadges returns the user's awarded badges keyed by badge code.
func (bs *BadgeService) earnedBadges(ctx context.Context, userID string) (map[string]models.UserBadge, error) {
	keyCondition := "PK = :user AND begins_with(SK, :prefix)"
	expressionValues := map[string]types.AttributeValue{
		":user":   &types.AttributeValueMemberS{Value: models.UserKeyPrefix + userID},
		":prefix": &types.AttributeValueMemberS{Value: models.BadgeKeyPrefix},
	}

	items, err := bs.Dynamo.QueryAllItems(ctx, models.UserBadgesTable, keyCondition, expressionValues)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user badges: %w", err)
	}

	var badges []models.UserBadge
	if err := attributevalue.UnmarshalListOfMaps(items, &badges); err != nil {
		return nil, fmt.Errorf("failed to process user badges: %w", err)
	}

	earned := make(map[string]models.UserBadge, len(badges))
	for _, badge := range badges {
		earned[badge.BadgeID] = badge
	}
	return earned, nil
}

// eligibleAwards walks the catalog in order and returns the badges one sync
// pass should award. Each badge's bonus is applied to the snapshot as the
// walk proceeds, so a bonus crossing the next points threshold awards both
// badges in the same pass instead of deferring to the next sync.
func eligibleAwards(metrics models.BadgeMetrics, earned map[string]models.UserBadge) []models.BadgeDefinition {
	catalog := make([]models.BadgeDefinition, len(models.BadgeCatalog))
	copy(catalog, models.BadgeCatalog)
	sort.SliceStable(catalog, func(i, j int) bool { return catalog[i].SortOrder < catalog[j].SortOrder })

	var awards []models.BadgeDefinition
	for _, definition := range catalog {
		if _, already := earned[definition.Code]; already {
			continue
		}
		if !definition.Condition(metrics) {
			continue
		}
		awards = append(awards, definition)
		metrics.TotalPoints = ApplyPointsDelta(metrics.TotalPoints, definition.PointsAwarded)
	}
	return awards
}

// SyncBadges re-evaluates every unearned badge in catalog order and returns
// only the badges newly awarded by this call. A concurrent award of the
// same badge surfaces as a conditional-check failure and is silently
// skipped — one row, one bonus, no error.
func (bs *BadgeService) SyncBadges(ctx context.Context, userID string) ([]models.BadgeView, error) {
	metrics, err := bs.BuildMetrics(ctx, userID)
	if err != nil {
		return nil, err
	}
	earned, err := bs.earnedBadges(ctx, userID)
	if err != nil {
		return nil, err
	}

	awarded := []models.BadgeView{}
	for _, definition := range eligibleAwards(*metrics, earned) {
		userBadge := models.UserBadge{
			PK:       models.UserKeyPrefix + userID,
			SK:       models.BadgeKeyPrefix + definition.Code,
			UserID:   userID,
			BadgeID:  definition.Code,
			EarnedAt: time.Now().UTC().Format(time.RFC3339),
		}

		err := bs.Dynamo.PutItemWithCondition(ctx, models.UserBadgesTable, userBadge, "attribute_not_exists(SK)")
		if err != nil {
			if IsConditionalCheckFailed(err) {
				log.Printf("ℹ️ Badge %s already awarded to %s concurrently, skipping", definition.Code, userID)
				continue
			}
			return nil, fmt.Errorf("failed to award badge %s: %w", definition.Code, err)
		}

		log.Printf("🏅 Awarded badge %s to %s (+%d points)", definition.Code, userID, definition.PointsAwarded)
		if definition.PointsAwarded > 0 {
			newTotal, err := bs.Points.AddPoints(ctx, userID, definition.PointsAwarded)
			if err != nil {
				return nil, fmt.Errorf("failed to apply bonus for badge %s: %w", definition.Code, err)
			}
			metrics.TotalPoints = newTotal
		}

		// Best-effort: a notification failure never rolls back the award.
		bs.Notifications.NotifyBadgeUnlocked(ctx, userID, definition)

		awarded = append(awarded, models.BadgeView{
			Code:          definition.Code,
			Name:          definition.Name,
			Description:   definition.Description,
			Category:      definition.Category,
			PointsAwarded: definition.PointsAwarded,
			Earned:        true,
			EarnedAt:      userBadge.EarnedAt,
			Progress:      definition.Progress(*metrics),
		})
	}

	return awarded, nil
}

// ListBadges returns the whole catalog annotated with the user's earned
// state and progress, in catalog order.
func (bs *BadgeService) ListBadges(ctx context.Context, userID string) ([]models.BadgeView, error) {
	metrics, err := bs.BuildMetrics(ctx, userID)
	if err != nil {
		return nil, err
	}
	earned, err := bs.earnedBadges(ctx, userID)
	if err != nil {
		return nil, err
	}

	catalog := make([]models.BadgeDefinition, len(models.BadgeCatalog))
	copy(catalog, models.BadgeCatalog)
	sort.SliceStable(catalog, func(i, j int) bool { return catalog[i].SortOrder < catalog[j].SortOrder })

	views := make([]models.BadgeView, 0, len(catalog))
	for _, definition := range catalog {
		view := models.BadgeView{
			Code:          definition.Code,
			Name:          definition.Name,
			Description:   definition.Description,
			Category:      definition.Category,
			PointsAwarded: definition.PointsAwarded,
			Progress:      definition.Progress(*metrics),
		}
		if userBadge, ok := earned[definition.Code]; ok {
			view.Earned = true
			view.EarnedAt = userBadge.EarnedAt
		}
		views = append(views, view)
	}

	return views, nil
}
