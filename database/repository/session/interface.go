// File: database/repository/session/interface.go
package sessionRepo

import (
	"context"
	"errors"

	"edunex/config"
	"edunex/database"
	"edunex/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrSlotTaken is returned when an insert loses the race for a
// (instructorId, date, start) tuple to a concurrent booking.
var ErrSlotTaken = errors.New("slot already taken")

// SessionRepository stores booked consultation sessions.
type SessionRepository interface {
	Create(ctx context.Context, session *models.Session) error
	GetByID(ctx context.Context, id string) (*models.Session, error)
	GetBookedByInstructorAndDate(ctx context.Context, instructorID, date string) ([]models.Session, error)
	ListByStudent(ctx context.Context, studentID string) ([]models.Session, error)
	ListByInstructor(ctx context.Context, instructorID string) ([]models.Session, error)
	UpdateStatus(ctx context.Context, id, from, to string) error
	FindElapsedBooked(ctx context.Context, today string, nowMinutes int) ([]models.Session, error)
	EnsureIndexes() error
}

type mongoSessionRepo struct {
	coll *mongo.Collection
}

// NewMongoSessionRepo constructs a new MongoDB SessionRepository.
func NewMongoSessionRepo() SessionRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoSessionRepo{
		coll: db.Collection("sessions"),
	}
}
