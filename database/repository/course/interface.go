// File: database/repository/course/interface.go
package courseRepo

import (
	"context"

	"edunex/config"
	"edunex/database"
	"edunex/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// CourseRepository stores courses with their embedded lessons.
type CourseRepository interface {
	Create(ctx context.Context, course *models.Course) error
	GetByID(ctx context.Context, id string) (*models.Course, error)
	ListAll(ctx context.Context) ([]models.Course, error)
	ListByInstructor(ctx context.Context, instructorID string) ([]models.Course, error)
	AddLesson(ctx context.Context, courseID string, lesson models.Lesson) error
	EnsureIndexes() error
}

type mongoCourseRepo struct {
	coll *mongo.Collection
}

// NewMongoCourseRepo constructs a new MongoDB CourseRepository.
func NewMongoCourseRepo() CourseRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoCourseRepo{
		coll: db.Collection("courses"),
	}
}
