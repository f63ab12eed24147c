package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/YongHui-X/ecoplate-sub001/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
	socketio "github.com/googollee/go-socket.io"
)

// NotificationService delivers in-app notifications: a best-effort item in
// the Notifications table plus a socket.io broadcast to the user's room.
// Every failure is logged and swallowed; a notification must never undo the
// award or streak that triggered it.
type NotificationService struct {
	Dynamo *DynamoService
	Socket *socketio.Server
}

// NotifyBadgeUnlocked tells a user they earned a badge.
func (ns *NotificationService) NotifyBadgeUnlocked(ctx context.Context, userID string, badge models.BadgeDefinition) {
	ns.deliver(ctx, userID, models.NotificationBadgeUnlocked,
		"Badge unlocked: "+badge.Name,
		fmt.Sprintf("%s — +%d bonus points", badge.Description, badge.PointsAwarded))
}

// NotifyStreakMilestone celebrates a streak milestone.
func (ns *NotificationService) NotifyStreakMilestone(ctx context.Context, userID string, streak int) {
	ns.deliver(ctx, userID, models.NotificationStreakMilestone,
		fmt.Sprintf("%d-day streak!", streak),
		fmt.Sprintf("You've logged sustainable food actions %d days in a row", streak))
}

func (ns *NotificationService) deliver(ctx context.Context, userID, notificationType, title, body string) {
	now := time.Now().UTC().Format(time.RFC3339)
	notification := models.Notification{
		ID:        uuid.NewString(),
		UserID:    userID,
		Type:      notificationType,
		Title:     title,
		Body:      body,
		CreatedAt: now,
	}
	notification.PK = models.UserKeyPrefix + userID
	notification.SK = models.NotificationKeyPrefix + now + "#" + notification.ID

	if err := ns.Dynamo.PutItem(ctx, models.NotificationsTable, notification); err != nil {
		log.Printf("⚠️ Failed to store %s notification for %s: %v", notificationType, userID, err)
	}

	if ns.Socket != nil {
		ns.Socket.BroadcastToRoom("/", "user:"+userID, "notification", notification)
	}
}

// ListNotifications returns a user's notifications, newest first.
func (ns *NotificationService) ListNotifications(ctx context.Context, userID string) ([]models.Notification, error) {
	keyCondition := "PK = :user AND begins_with(SK, :prefix)"
	expressionValues := map[string]types.AttributeValue{
		":user":   &types.AttributeValueMemberS{Value: models.UserKeyPrefix + userID},
		":prefix": &types.AttributeValueMemberS{Value: models.NotificationKeyPrefix},
	}

	items, err := ns.Dynamo.QueryAllItems(ctx, models.NotificationsTable, keyCondition, expressionValues)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch notifications: %w", err)
	}

	var notifications []models.Notification
	if err := attributevalue.UnmarshalListOfMaps(items, &notifications); err != nil {
		return nil, fmt.Errorf("failed to process notifications: %w", err)
	}

	// SK order is oldest-first; clients want the newest on top.
	for i, j := 0, len(notifications)-1; i < j; i, j = i+1, j-1 {
		notifications[i], notifications[j] = notifications[j], notifications[i]
	}
	return notifications, nil
}

// MarkNotificationRead flags one notification as read.
func (ns *NotificationService) MarkNotificationRead(ctx context.Context, userID, createdAt, notificationID string) error {
	key := map[string]types.AttributeValue{
		"PK": &types.AttributeValueMemberS{Value: models.UserKeyPrefix + userID},
		"SK": &types.AttributeValueMemberS{Value: models.NotificationKeyPrefix + createdAt + "#" + notificationID},
	}

	updateExpression := "SET #read = :read"
	expressionValues := map[string]types.AttributeValue{
		":read": &types.AttributeValueMemberBOOL{Value: true},
	}
	expressionNames := map[string]string{"#read": "read"}

	_, err := ns.Dynamo.UpdateItem(ctx, models.NotificationsTable, updateExpression, key, expressionValues, expressionNames)
	return err
}
