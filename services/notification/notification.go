package notification

import (
	"context"
	"fmt"
	"time"

	"villabook/config"
	"villabook/database"
	"villabook/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// NotificationService writes and reads inbox notifications. Delivery
// is pull-based: the client polls its inbox, there is no push channel.
type NotificationService interface {
	Notify(ctx context.Context, userID, notifType, title, body, bookingID string) error
	ListForUser(ctx context.Context, userID string) ([]models.Notification, error)
	MarkRead(ctx context.Context, userID, notificationID string) error
}

// DefaultNotificationService is the Mongo-backed implementation.
type DefaultNotificationService struct {
	coll *mongo.Collection
}

func NewDefaultNotificationService() *DefaultNotificationService {
	coll := database.MongoClient.Database(config.AppConfig.DatabaseName).Collection("notifications")
	return &DefaultNotificationService{coll: coll}
}

// Notify appends an inbox entry for the user.
func (s *DefaultNotificationService) Notify(ctx context.Context, userID, notifType, title, body, bookingID string) error {
	notif := models.Notification{
		ID:        uuid.New().String(),
		UserID:    userID,
		Type:      notifType,
		Title:     title,
		Body:      body,
		BookingID: bookingID,
		CreatedAt: time.Now(),
	}
	if _, err := s.coll.InsertOne(ctx, notif); err != nil {
		return fmt.Errorf("failed to write notification for user %s: %w", userID, err)
	}
	return nil
}

// ListForUser returns the user's notifications, newest first.
func (s *DefaultNotificationService) ListForUser(ctx context.Context, userID string) ([]models.Notification, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}).SetLimit(100)
	cursor, err := s.coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve notifications: %w", err)
	}
	defer cursor.Close(ctx)

	var notifs []models.Notification
	for cursor.Next(ctx) {
		var n models.Notification
		if err := cursor.Decode(&n); err != nil {
			return nil, fmt.Errorf("failed to decode notification: %w", err)
		}
		notifs = append(notifs, n)
	}
	return notifs, nil
}

// MarkRead marks one of the user's notifications as read.
func (s *DefaultNotificationService) MarkRead(ctx context.Context, userID, notificationID string) error {
	filter := bson.M{"id": notificationID, "user_id": userID}
	res, err := s.coll.UpdateOne(ctx, filter, bson.M{"$set": bson.M{"read": true}})
	if err != nil {
		return fmt.Errorf("failed to mark notification %s read: %w", notificationID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("notification %s not found", notificationID)
	}
	return nil
}
