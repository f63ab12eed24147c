package services

import (
	"context"

	"github.com/YongHui-X/ecoplate-sub001/models"
	"github.com/YongHui-X/ecoplate-sub001/utils"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// UserProfileService reads display names from the profile table owned by
// the auth service.
type UserProfileService struct {
	Dynamo *DynamoService
}

// GetDisplayName resolves a user's name for the leaderboard. Missing
// profiles fall back to the user id so a ranked user never disappears.
func (ups *UserProfileService) GetDisplayName(ctx context.Context, userID string) string {
	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}

	item, err := ups.Dynamo.GetItem(ctx, models.UserProfilesTable, key)
	if err != nil || item == nil {
		return userID
	}

	if name := utils.ExtractString(item, "fullName"); name != "" {
		return name
	}
	return userID
}
