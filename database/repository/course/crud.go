// File: database/repository/course/crud.go
package courseRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"edunex/models"
)

func (r *mongoCourseRepo) Create(ctx context.Context, course *models.Course) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if course.ID == "" {
		course.ID = uuid.New().String()
	}
	now := time.Now()
	course.CreatedAt = now
	course.UpdatedAt = now
	if course.Lessons == nil {
		course.Lessons = []models.Lesson{}
	}

	_, err := r.coll.InsertOne(ctx, course)
	return err
}

func (r *mongoCourseRepo) GetByID(ctx context.Context, id string) (*models.Course, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var course models.Course
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&course)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &course, nil
}

func (r *mongoCourseRepo) ListAll(ctx context.Context) ([]models.Course, error) {
	return r.listBy(ctx, bson.M{})
}

func (r *mongoCourseRepo) ListByInstructor(ctx context.Context, instructorID string) ([]models.Course, error) {
	return r.listBy(ctx, bson.M{"instructorId": instructorID})
}

func (r *mongoCourseRepo) listBy(ctx context.Context, filter bson.M) ([]models.Course, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch courses: %w", err)
	}
	defer cursor.Close(ctx)

	var courses []models.Course
	if err := cursor.All(ctx, &courses); err != nil {
		return nil, fmt.Errorf("error decoding courses: %w", err)
	}
	return courses, nil
}

// AddLesson appends a lesson to a course. The lesson's position must already
// be assigned by the service layer.
func (r *mongoCourseRepo) AddLesson(ctx context.Context, courseID string, lesson models.Lesson) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": courseID}
	update := bson.M{
		"$push": bson.M{"lessons": lesson},
		"$set":  bson.M{"updatedAt": time.Now()},
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
