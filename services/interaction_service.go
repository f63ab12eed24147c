package services

import (
	"context"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/YongHui-X/ecoplate-sub001/models"
	"github.com/YongHui-X/ecoplate-sub001/utils"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// DateLayout is the calendar-day format used everywhere in the log.
const DateLayout = "2006-01-02"

// InteractionService owns the append-only interaction log and orchestrates
// the full write path: normalize → score → ledger → streak → badges.
type InteractionService struct {
	Dynamo *DynamoService
	Points *PointsService
	Streak *StreakService
	Badges *BadgeService
	Config models.EngineConfig
}

// LogActionRequest is what clients send when recording a food action.
type LogActionRequest struct {
	UserID         string  `json:"userId"`
	ProductID      *string `json:"productId,omitempty"`
	ProductName    string  `json:"productName,omitempty"`
	Type           string  `json:"type"`
	Quantity       float64 `json:"quantity"`
	Unit           string  `json:"unit,omitempty"`
	Category       string  `json:"category,omitempty"`
	EmissionFactor float64 `json:"emissionFactor,omitempty"` // explicit kg CO2e/kg override
	Date           string  `json:"date,omitempty"`           // defaults to today (UTC)
	SkipRecording  bool    `json:"skipRecording,omitempty"`
}

// LogActionResult is returned to the route after the full write path ran.
type LogActionResult struct {
	Interaction   models.Interaction `json:"interaction"`
	PointsAwarded int                `json:"pointsAwarded"`
	TotalPoints   int                `json:"totalPoints"`
	CurrentStreak int                `json:"currentStreak"`
	NewBadges     []models.BadgeView `json:"newBadges"`
}

// LogAction appends an interaction and runs every derived update in order.
// Draft entries (skipRecording) are stored for the client but generate no
// history: no points, no streak movement, no badge evaluation.
func (s *InteractionService) LogAction(ctx context.Context, req LogActionRequest) (*LogActionResult, error) {
	actionType := models.CanonicalActionType(req.Type)
	date := req.Date
	if date == "" {
		date = time.Now().UTC().Format(DateLayout)
	}

	delta := 0
	if !req.SkipRecording {
		delta = s.Points.CalculatePoints(actionType, req.Quantity, req.Unit, req.ProductName, req.Category, req.EmissionFactor)
	}

	interaction := models.Interaction{
		ID:             uuid.NewString(),
		UserID:         req.UserID,
		ProductID:      req.ProductID,
		ProductName:    req.ProductName,
		Date:           date,
		Type:           actionType,
		Quantity:       utils.NormalizeQuantity(req.Quantity, req.Unit),
		RawQuantity:    req.Quantity,
		Unit:           req.Unit,
		Category:       req.Category,
		EmissionFactor: req.EmissionFactor,
		Points:         delta,
		CreatedAt:      time.Now().UTC().Format(time.RFC3339),
		SkipRecording:  req.SkipRecording,
	}
	interaction.PK = models.UserKeyPrefix + req.UserID
	interaction.SK = models.InteractionKeyPrefix + date + "#" + interaction.ID

	log.Printf("📥 Logging %s action for %s on %s", actionType, req.UserID, date)
	if err := s.Dynamo.PutItem(ctx, models.InteractionsTable, interaction); err != nil {
		return nil, fmt.Errorf("failed to append interaction: %w", err)
	}

	result := &LogActionResult{Interaction: interaction, NewBadges: []models.BadgeView{}}
	if req.SkipRecording {
		ledger, err := s.Points.GetLedger(ctx, req.UserID)
		if err != nil {
			return nil, err
		}
		result.TotalPoints = ledger.TotalPoints
		result.CurrentStreak = ledger.CurrentStreak
		return result, nil
	}

	total, err := s.Points.AddPoints(ctx, req.UserID, delta)
	if err != nil {
		return nil, err
	}
	result.PointsAwarded = delta
	result.TotalPoints = total

	streak, err := s.Streak.BumpStreak(ctx, req.UserID, actionType, date)
	if err != nil {
		return nil, err
	}
	result.CurrentStreak = streak

	newBadges, err := s.Badges.SyncBadges(ctx, req.UserID)
	if err != nil {
		// Badge evaluation failing must not undo the recorded action.
		log.Printf("⚠️ Badge sync failed for %s after logging action: %v", req.UserID, err)
	} else {
		result.NewBadges = newBadges
	}

	return result, nil
}

// ListInteractions returns a user's full history in ascending date order.
// Draft entries are filtered out here so aggregation code never sees them,
// and legacy type strings are canonicalized at this same boundary.
func (s *InteractionService) ListInteractions(ctx context.Context, userID string) ([]models.Interaction, error) {
	keyCondition := "PK = :user AND begins_with(SK, :prefix)"
	expressionValues := map[string]types.AttributeValue{
		":user":   &types.AttributeValueMemberS{Value: models.UserKeyPrefix + userID},
		":prefix": &types.AttributeValueMemberS{Value: models.InteractionKeyPrefix},
	}

	items, err := s.Dynamo.QueryAllItems(ctx, models.InteractionsTable, keyCondition, expressionValues)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch interactions: %w", err)
	}

	var raw []models.Interaction
	if err := attributevalue.UnmarshalListOfMaps(items, &raw); err != nil {
		return nil, fmt.Errorf("failed to process interactions: %w", err)
	}

	interactions := make([]models.Interaction, 0, len(raw))
	for _, interaction := range raw {
		if interaction.SkipRecording {
			continue
		}
		interaction.Type = models.CanonicalActionType(interaction.Type)
		interactions = append(interactions, interaction)
	}

	// Sort defensively; the SK order is date-correct but same-day entries
	// land in UUID order.
	sort.SliceStable(interactions, func(i, j int) bool {
		if interactions[i].Date != interactions[j].Date {
			return interactions[i].Date < interactions[j].Date
		}
		return interactions[i].CreatedAt < interactions[j].CreatedAt
	})

	return interactions, nil
}

// TransactionEntry is one row of the user-facing points feed.
type TransactionEntry struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"`
	Type        string  `json:"type"`
	ProductName string  `json:"productName,omitempty"`
	Quantity    float64 `json:"quantity"`
	Points      int     `json:"points"`
}

// defaultFeedLimit bounds the transaction feed query when the client sends
// no limit of its own.
const defaultFeedLimit = 50

// ListTransactions builds the points feed, newest first. Unlike the
// aggregation reads this is a bounded single-page query from the recent end
// of the log; the feed never needs the full history. Shared rows are
// included or filtered per the configured feed policy.
func (s *InteractionService) ListTransactions(ctx context.Context, userID string, limit int32) ([]TransactionEntry, error) {
	if limit <= 0 {
		limit = defaultFeedLimit
	}

	keyCondition := "PK = :user AND begins_with(SK, :prefix)"
	expressionValues := map[string]types.AttributeValue{
		":user":   &types.AttributeValueMemberS{Value: models.UserKeyPrefix + userID},
		":prefix": &types.AttributeValueMemberS{Value: models.InteractionKeyPrefix},
	}

	items, err := s.Dynamo.QueryItems(ctx, models.InteractionsTable, keyCondition, expressionValues, nil, limit, false)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}

	var raw []models.Interaction
	if err := attributevalue.UnmarshalListOfMaps(items, &raw); err != nil {
		return nil, fmt.Errorf("failed to process transactions: %w", err)
	}

	return BuildTransactionFeed(raw, s.Config.SharedInFeed), nil
}

// BuildTransactionFeed filters a newest-first page of the log into feed
// rows: drafts and pantry adds are dropped, legacy type strings
// canonicalized, shared rows gated by the feed policy.
func BuildTransactionFeed(interactions []models.Interaction, sharedInFeed bool) []TransactionEntry {
	feed := make([]TransactionEntry, 0, len(interactions))
	for _, interaction := range interactions {
		if interaction.SkipRecording {
			continue
		}
		actionType := models.CanonicalActionType(interaction.Type)
		if actionType == models.ActionAdd {
			continue
		}
		if actionType == models.ActionShared && !sharedInFeed {
			continue
		}
		feed = append(feed, TransactionEntry{
			ID:          interaction.ID,
			Date:        interaction.Date,
			Type:        actionType,
			ProductName: interaction.ProductName,
			Quantity:    interaction.RawQuantity,
			Points:      interaction.Points,
		})
	}
	return feed
}
