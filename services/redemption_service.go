package services

import (
	"context"
	"fmt"

	"github.com/YongHui-X/ecoplate-sub001/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// RedemptionService reads the rewards service's redemption rows. This
// service never writes them.
type RedemptionService struct {
	Dynamo *DynamoService
}

// ListRedemptions fetches all of a user's redemptions.
func (rs *RedemptionService) ListRedemptions(ctx context.Context, userID string) ([]models.Redemption, error) {
	keyCondition := "PK = :user AND begins_with(SK, :prefix)"
	expressionValues := map[string]types.AttributeValue{
		":user":   &types.AttributeValueMemberS{Value: models.UserKeyPrefix + userID},
		":prefix": &types.AttributeValueMemberS{Value: models.RedemptionKeyPrefix},
	}

	items, err := rs.Dynamo.QueryAllItems(ctx, models.RedemptionsTable, keyCondition, expressionValues)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch redemptions: %w", err)
	}

	var redemptions []models.Redemption
	if err := attributevalue.UnmarshalListOfMaps(items, &redemptions); err != nil {
		return nil, fmt.Errorf("failed to process redemptions: %w", err)
	}
	return redemptions, nil
}

// SumRedeemedPoints totals the points a user has spent on rewards.
func (rs *RedemptionService) SumRedeemedPoints(ctx context.Context, userID string) (int, error) {
	redemptions, err := rs.ListRedemptions(ctx, userID)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, redemption := range redemptions {
		total += redemption.PointsSpent
	}
	return total, nil
}
