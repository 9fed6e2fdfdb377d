// File: database/repository/enrollment/interface.go
package enrollmentRepo

import (
	"context"
	"errors"

	"edunex/config"
	"edunex/database"
	"edunex/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrAlreadyEnrolled is returned when a student enrolls in the same course twice.
var ErrAlreadyEnrolled = errors.New("student already enrolled")

// EnrollmentRepository stores one enrollment document per (courseId, studentId).
type EnrollmentRepository interface {
	Create(ctx context.Context, enrollment *models.Enrollment) error
	GetByCourseAndStudent(ctx context.Context, courseID, studentID string) (*models.Enrollment, error)
	AddCompletedLesson(ctx context.Context, courseID, studentID, lessonID string) error
	EnsureIndexes() error
}

type mongoEnrollmentRepo struct {
	coll *mongo.Collection
}

// NewMongoEnrollmentRepo constructs a new MongoDB EnrollmentRepository.
func NewMongoEnrollmentRepo() EnrollmentRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoEnrollmentRepo{
		coll: db.Collection("enrollments"),
	}
}
