// File: database/repository/enrollment/crud.go
package enrollmentRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"edunex/models"
)

func (r *mongoEnrollmentRepo) Create(ctx context.Context, enrollment *models.Enrollment) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if enrollment.ID == "" {
		enrollment.ID = uuid.New().String()
	}
	now := time.Now()
	enrollment.EnrolledAt = now
	enrollment.UpdatedAt = now
	if enrollment.CompletedLessonIDs == nil {
		enrollment.CompletedLessonIDs = []string{}
	}

	_, err := r.coll.InsertOne(ctx, enrollment)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrAlreadyEnrolled
		}
		return err
	}
	return nil
}

func (r *mongoEnrollmentRepo) GetByCourseAndStudent(ctx context.Context, courseID, studentID string) (*models.Enrollment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"courseId": courseID, "studentId": studentID}
	var enrollment models.Enrollment
	err := r.coll.FindOne(ctx, filter).Decode(&enrollment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &enrollment, nil
}

func (r *mongoEnrollmentRepo) AddCompletedLesson(ctx context.Context, courseID, studentID, lessonID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"courseId": courseID, "studentId": studentID}
	update := bson.M{
		"$addToSet": bson.M{"completedLessonIds": lessonID},
		"$set":      bson.M{"updatedAt": time.Now()},
	}
	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
