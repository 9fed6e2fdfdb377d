// File: database/repository/availability/interface.go
package availabilityRepo

import (
	"context"

	"edunex/config"
	"edunex/database"
	"edunex/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// AvailabilityRepository stores one DayAvailability document per
// (instructorId, date).
type AvailabilityRepository interface {
	Upsert(ctx context.Context, avail *models.DayAvailability) error
	GetByInstructorAndDate(ctx context.Context, instructorID, date string) (*models.DayAvailability, error)
	SetBlocked(ctx context.Context, instructorID, date string, blocked bool, dayNote string) error
	EnsureIndexes() error
}

type mongoAvailabilityRepo struct {
	coll *mongo.Collection
}

// NewMongoAvailabilityRepo constructs a new MongoDB AvailabilityRepository.
func NewMongoAvailabilityRepo() AvailabilityRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoAvailabilityRepo{
		coll: db.Collection("availability"),
	}
}
