// File: database/repository/notification/interface.go
package notificationRepo

import (
	"context"

	"edunex/config"
	"edunex/database"
	"edunex/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// NotificationRepository stores in-app notification records.
type NotificationRepository interface {
	Create(ctx context.Context, notification *models.Notification) error
	ListByUser(ctx context.Context, userID string) ([]models.Notification, error)
	MarkRead(ctx context.Context, id, userID string) error
}

type mongoNotificationRepo struct {
	coll *mongo.Collection
}

// NewMongoNotificationRepo constructs a new MongoDB NotificationRepository.
func NewMongoNotificationRepo() NotificationRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoNotificationRepo{
		coll: db.Collection("notifications"),
	}
}
